package store

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/complyboard/complyboard/model"
)

// MemoryStore is an in-memory implementation of ContractStore
type MemoryStore struct {
	contracts    map[string]*model.Contract
	attestations map[string][]*model.Attestation // keyed by contract ID
	mu           sync.RWMutex
}

// NewMemoryStore creates a new in-memory contract store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		contracts:    make(map[string]*model.Contract),
		attestations: make(map[string][]*model.Attestation),
	}
}

// GetContract retrieves a contract by ID
func (s *MemoryStore) GetContract(contractID string) (*model.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	contract, ok := s.contracts[contractID]
	if !ok {
		return nil, fmt.Errorf("contract not found: %s", contractID)
	}
	return contract, nil
}

// PutContract stores or updates a contract
func (s *MemoryStore) PutContract(contract *model.Contract) error {
	if contract == nil {
		return fmt.Errorf("contract cannot be nil")
	}
	if contract.ID == "" {
		return fmt.Errorf("contract ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if contract.CreatedAt.IsZero() {
		contract.CreatedAt = now
	}
	contract.UpdatedAt = now
	s.contracts[contract.ID] = contract

	return nil
}

// DeleteContract removes a contract and its attestations
func (s *MemoryStore) DeleteContract(contractID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.contracts, contractID)
	delete(s.attestations, contractID)
	return nil
}

// ListContracts returns all contracts, most recently reviewed first
func (s *MemoryStore) ListContracts() ([]*model.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	contracts := make([]*model.Contract, 0, len(s.contracts))
	for _, c := range s.contracts {
		contracts = append(contracts, c)
	}
	sort.Slice(contracts, func(i, j int) bool {
		if !contracts[i].ReviewDate.Equal(contracts[j].ReviewDate) {
			return contracts[i].ReviewDate.After(contracts[j].ReviewDate)
		}
		return contracts[i].ID < contracts[j].ID
	})
	return contracts, nil
}

// PutAttestation stores a reviewer decision, replacing any earlier decision
// on the same subpoint
func (s *MemoryStore) PutAttestation(att *model.Attestation) error {
	if att == nil {
		return fmt.Errorf("attestation cannot be nil")
	}
	if att.ContractID == "" || att.TermID == "" {
		return fmt.Errorf("attestation requires contract and term IDs")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if att.CreatedAt.IsZero() {
		att.CreatedAt = time.Now()
	}

	existing := s.attestations[att.ContractID]
	for i, a := range existing {
		if a.TermID == att.TermID && a.SubPointIndex == att.SubPointIndex {
			existing[i] = att
			return nil
		}
	}
	s.attestations[att.ContractID] = append(existing, att)
	return nil
}

// ListAttestations returns all attestations for a contract
func (s *MemoryStore) ListAttestations(contractID string) ([]*model.Attestation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	atts := s.attestations[contractID]
	out := make([]*model.Attestation, len(atts))
	copy(out, atts)
	return out, nil
}

// DeleteAttestations removes all attestations for a contract
func (s *MemoryStore) DeleteAttestations(contractID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.attestations, contractID)
	return nil
}

// Close is a no-op for the in-memory store
func (s *MemoryStore) Close() error {
	return nil
}
