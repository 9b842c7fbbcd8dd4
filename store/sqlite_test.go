package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/complyboard/complyboard/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "contracts.db"))
	if err != nil {
		t.Fatalf("Failed to create SQLiteStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testContract(id string, reviewDate time.Time) *model.Contract {
	return &model.Contract{
		ID:                 id,
		Name:               "Master Service Agreement",
		Vendor:             "Acme Corp",
		ReviewDate:         reviewDate,
		Status:             model.StatusCompliant,
		RiskLevel:          model.RiskLow,
		Reviewer:           "Sarah Johnson",
		TermMatchingRate:   95.2,
		PointsMatchingRate: 92.8,
	}
}

func TestSQLiteStore_ContractCRUD(t *testing.T) {
	store := newTestSQLiteStore(t)

	contract := testContract("c1", time.Date(2025, time.October, 8, 0, 0, 0, 0, time.UTC))
	if err := store.PutContract(contract); err != nil {
		t.Fatalf("Failed to put contract: %v", err)
	}

	retrieved, err := store.GetContract("c1")
	if err != nil {
		t.Fatalf("Failed to get contract: %v", err)
	}
	if retrieved.Name != contract.Name {
		t.Errorf("Name mismatch: got %s, want %s", retrieved.Name, contract.Name)
	}
	if retrieved.Vendor != contract.Vendor {
		t.Errorf("Vendor mismatch: got %s, want %s", retrieved.Vendor, contract.Vendor)
	}
	if retrieved.Status != model.StatusCompliant {
		t.Errorf("Status mismatch: got %s", retrieved.Status)
	}
	if retrieved.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set on first put")
	}

	// Update
	contract.Status = model.StatusNeedsReview
	if err := store.PutContract(contract); err != nil {
		t.Fatalf("Failed to update contract: %v", err)
	}
	retrieved, err = store.GetContract("c1")
	if err != nil {
		t.Fatalf("Failed to get updated contract: %v", err)
	}
	if retrieved.Status != model.StatusNeedsReview {
		t.Errorf("Status not updated: got %s", retrieved.Status)
	}

	// Delete
	if err := store.DeleteContract("c1"); err != nil {
		t.Fatalf("Failed to delete contract: %v", err)
	}
	if _, err := store.GetContract("c1"); err == nil {
		t.Error("Expected error for deleted contract")
	}
}

func TestSQLiteStore_GetMissing(t *testing.T) {
	store := newTestSQLiteStore(t)

	if _, err := store.GetContract("nope"); err == nil {
		t.Error("Expected error for missing contract")
	}
}

func TestSQLiteStore_ListOrder(t *testing.T) {
	store := newTestSQLiteStore(t)

	older := testContract("old", time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC))
	newer := testContract("new", time.Date(2025, time.October, 8, 0, 0, 0, 0, time.UTC))
	if err := store.PutContract(older); err != nil {
		t.Fatalf("Failed to put contract: %v", err)
	}
	if err := store.PutContract(newer); err != nil {
		t.Fatalf("Failed to put contract: %v", err)
	}

	contracts, err := store.ListContracts()
	if err != nil {
		t.Fatalf("Failed to list contracts: %v", err)
	}
	if len(contracts) != 2 {
		t.Fatalf("Expected 2 contracts, got %d", len(contracts))
	}
	if contracts[0].ID != "new" || contracts[1].ID != "old" {
		t.Errorf("Expected newest first, got %s, %s", contracts[0].ID, contracts[1].ID)
	}
}

func TestSQLiteStore_AttestationUpsert(t *testing.T) {
	store := newTestSQLiteStore(t)

	att := &model.Attestation{
		ID:            "a1",
		ContractID:    "c1",
		TermID:        "4",
		SubPointIndex: 1,
		Agreed:        true,
	}
	if err := store.PutAttestation(att); err != nil {
		t.Fatalf("Failed to put attestation: %v", err)
	}

	// Same subpoint, new decision replaces the old one
	override := &model.Attestation{
		ID:              "a2",
		ContractID:      "c1",
		TermID:          "4",
		SubPointIndex:   1,
		Agreed:          false,
		OverriddenValue: model.OverrideSupported,
		Reason:          "evidence found in appendix",
	}
	if err := store.PutAttestation(override); err != nil {
		t.Fatalf("Failed to upsert attestation: %v", err)
	}

	atts, err := store.ListAttestations("c1")
	if err != nil {
		t.Fatalf("Failed to list attestations: %v", err)
	}
	if len(atts) != 1 {
		t.Fatalf("Expected 1 attestation after upsert, got %d", len(atts))
	}
	if atts[0].Agreed || atts[0].OverriddenValue != model.OverrideSupported {
		t.Errorf("Upsert did not replace decision: %+v", atts[0])
	}
}

func TestSQLiteStore_AttestationsFollowContract(t *testing.T) {
	store := newTestSQLiteStore(t)

	contract := testContract("c1", time.Now())
	if err := store.PutContract(contract); err != nil {
		t.Fatalf("Failed to put contract: %v", err)
	}
	att := &model.Attestation{ID: "a1", ContractID: "c1", TermID: "1", SubPointIndex: 0, Agreed: true}
	if err := store.PutAttestation(att); err != nil {
		t.Fatalf("Failed to put attestation: %v", err)
	}

	if err := store.DeleteContract("c1"); err != nil {
		t.Fatalf("Failed to delete contract: %v", err)
	}
	atts, err := store.ListAttestations("c1")
	if err != nil {
		t.Fatalf("Failed to list attestations: %v", err)
	}
	if len(atts) != 0 {
		t.Errorf("Attestations should be removed with their contract, got %d", len(atts))
	}
}

func TestSQLiteStore_Validation(t *testing.T) {
	store := newTestSQLiteStore(t)

	if err := store.PutContract(nil); err == nil {
		t.Error("Expected error for nil contract")
	}
	if err := store.PutContract(&model.Contract{}); err == nil {
		t.Error("Expected error for contract without ID")
	}
	if err := store.PutAttestation(&model.Attestation{ID: "a1"}); err == nil {
		t.Error("Expected error for attestation without contract/term")
	}
}
