package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/complyboard/complyboard/model"
	_ "modernc.org/sqlite"
)

// SQLiteStore is a SQLite implementation of ContractStore
// It stores contracts in a SQLite database with JSON serialization
type SQLiteStore struct {
	db   *sql.DB
	mu   sync.RWMutex
	path string
}

// NewSQLiteStore creates a new SQLite contract store
// If dbPath is empty, it uses ":memory:" for in-memory database
// For file-based storage, use a path like "./data/contracts.db"
// The function automatically creates the directory if it doesn't exist
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		dbPath = ":memory:"
	}

	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create directory for database: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{
		db:   db,
		path: dbPath,
	}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the necessary tables
func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS contracts (
		contract_id TEXT PRIMARY KEY,
		vendor TEXT NOT NULL,
		status TEXT NOT NULL,
		review_date INTEGER NOT NULL,
		data TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_contracts_status ON contracts(status);
	CREATE INDEX IF NOT EXISTS idx_contracts_vendor ON contracts(vendor);
	CREATE INDEX IF NOT EXISTS idx_contracts_review_date ON contracts(review_date);

	CREATE TABLE IF NOT EXISTS attestations (
		attestation_id TEXT PRIMARY KEY,
		contract_id TEXT NOT NULL,
		term_id TEXT NOT NULL,
		sub_point_index INTEGER NOT NULL,
		data TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_attestations_contract ON attestations(contract_id);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_attestations_subpoint
		ON attestations(contract_id, term_id, sub_point_index);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// GetContract retrieves a contract by ID
func (s *SQLiteStore) GetContract(contractID string) (*model.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var data string
	err := s.db.QueryRow("SELECT data FROM contracts WHERE contract_id = ?", contractID).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("contract not found: %s", contractID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query contract: %w", err)
	}

	var contract model.Contract
	if err := json.Unmarshal([]byte(data), &contract); err != nil {
		return nil, fmt.Errorf("failed to unmarshal contract: %w", err)
	}
	return &contract, nil
}

// PutContract stores or updates a contract
func (s *SQLiteStore) PutContract(contract *model.Contract) error {
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

	data, err := json.Marshal(contract)
	if err != nil {
		return fmt.Errorf("failed to marshal contract: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO contracts (contract_id, vendor, status, review_date, data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(contract_id) DO UPDATE SET
			vendor = excluded.vendor,
			status = excluded.status,
			review_date = excluded.review_date,
			data = excluded.data,
			updated_at = excluded.updated_at`,
		contract.ID, contract.Vendor, string(contract.Status), contract.ReviewDate.Unix(),
		data, contract.CreatedAt.Unix(), contract.UpdatedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to store contract: %w", err)
	}
	return nil
}

// DeleteContract removes a contract and its attestations
func (s *SQLiteStore) DeleteContract(contractID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM contracts WHERE contract_id = ?", contractID); err != nil {
		return fmt.Errorf("failed to delete contract: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM attestations WHERE contract_id = ?", contractID); err != nil {
		return fmt.Errorf("failed to delete attestations: %w", err)
	}
	return nil
}

// ListContracts returns all contracts, most recently reviewed first
func (s *SQLiteStore) ListContracts() ([]*model.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT data FROM contracts ORDER BY review_date DESC, contract_id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query contracts: %w", err)
	}
	defer rows.Close()

	var contracts []*model.Contract
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan contract row: %w", err)
		}
		var contract model.Contract
		if err := json.Unmarshal([]byte(data), &contract); err != nil {
			return nil, fmt.Errorf("failed to unmarshal contract: %w", err)
		}
		contracts = append(contracts, &contract)
	}
	return contracts, rows.Err()
}

// PutAttestation stores a reviewer decision, replacing any earlier decision
// on the same subpoint
func (s *SQLiteStore) PutAttestation(att *model.Attestation) error {
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

	data, err := json.Marshal(att)
	if err != nil {
		return fmt.Errorf("failed to marshal attestation: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO attestations (attestation_id, contract_id, term_id, sub_point_index, data, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(contract_id, term_id, sub_point_index) DO UPDATE SET
			attestation_id = excluded.attestation_id,
			data = excluded.data,
			created_at = excluded.created_at`,
		att.ID, att.ContractID, att.TermID, att.SubPointIndex, data, att.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to store attestation: %w", err)
	}
	return nil
}

// ListAttestations returns all attestations for a contract
func (s *SQLiteStore) ListAttestations(contractID string) ([]*model.Attestation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		"SELECT data FROM attestations WHERE contract_id = ? ORDER BY term_id ASC, sub_point_index ASC",
		contractID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attestations: %w", err)
	}
	defer rows.Close()

	var atts []*model.Attestation
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan attestation row: %w", err)
		}
		var att model.Attestation
		if err := json.Unmarshal([]byte(data), &att); err != nil {
			return nil, fmt.Errorf("failed to unmarshal attestation: %w", err)
		}
		atts = append(atts, &att)
	}
	return atts, rows.Err()
}

// DeleteAttestations removes all attestations for a contract
func (s *SQLiteStore) DeleteAttestations(contractID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM attestations WHERE contract_id = ?", contractID); err != nil {
		return fmt.Errorf("failed to delete attestations: %w", err)
	}
	return nil
}
