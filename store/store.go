package store

import (
	"fmt"

	"github.com/complyboard/complyboard/model"
)

// ContractStore defines the interface for contract and attestation storage
type ContractStore interface {
	GetContract(contractID string) (*model.Contract, error)
	PutContract(contract *model.Contract) error
	DeleteContract(contractID string) error
	ListContracts() ([]*model.Contract, error)

	// PutAttestation upserts by (contract, term, subpoint): a reviewer
	// changing their mind replaces the earlier decision
	PutAttestation(att *model.Attestation) error
	ListAttestations(contractID string) ([]*model.Attestation, error)
	DeleteAttestations(contractID string) error

	Close() error
}

// Seed loads the given contracts into an empty store. A store that already
// holds contracts is left untouched.
func Seed(s ContractStore, contracts []model.Contract) (int, error) {
	existing, err := s.ListContracts()
	if err != nil {
		return 0, fmt.Errorf("failed to check existing contracts: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	for i := range contracts {
		c := contracts[i]
		if err := s.PutContract(&c); err != nil {
			return 0, fmt.Errorf("failed to seed contract %s: %w", c.ID, err)
		}
	}
	return len(contracts), nil
}
