package store

import (
	"testing"
	"time"

	"github.com/complyboard/complyboard/model"
)

func TestMemoryStore_ContractCRUD(t *testing.T) {
	store := NewMemoryStore()

	contract := testContract("c1", time.Date(2025, time.October, 8, 0, 0, 0, 0, time.UTC))
	if err := store.PutContract(contract); err != nil {
		t.Fatalf("Failed to put contract: %v", err)
	}

	retrieved, err := store.GetContract("c1")
	if err != nil {
		t.Fatalf("Failed to get contract: %v", err)
	}
	if retrieved.Vendor != "Acme Corp" {
		t.Errorf("Vendor mismatch: got %s", retrieved.Vendor)
	}

	if err := store.DeleteContract("c1"); err != nil {
		t.Fatalf("Failed to delete contract: %v", err)
	}
	if _, err := store.GetContract("c1"); err == nil {
		t.Error("Expected error for deleted contract")
	}
}

func TestMemoryStore_ListOrder(t *testing.T) {
	store := NewMemoryStore()

	for _, c := range []*model.Contract{
		testContract("old", time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)),
		testContract("new", time.Date(2025, time.October, 8, 0, 0, 0, 0, time.UTC)),
		testContract("mid", time.Date(2025, time.September, 20, 0, 0, 0, 0, time.UTC)),
	} {
		if err := store.PutContract(c); err != nil {
			t.Fatalf("Failed to put contract %s: %v", c.ID, err)
		}
	}

	contracts, err := store.ListContracts()
	if err != nil {
		t.Fatalf("Failed to list contracts: %v", err)
	}
	want := []string{"new", "mid", "old"}
	for i, id := range want {
		if contracts[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, contracts[i].ID, id)
		}
	}
}

func TestMemoryStore_AttestationUpsert(t *testing.T) {
	store := NewMemoryStore()

	first := &model.Attestation{ID: "a1", ContractID: "c1", TermID: "7", SubPointIndex: 2, Agreed: true}
	if err := store.PutAttestation(first); err != nil {
		t.Fatalf("Failed to put attestation: %v", err)
	}
	second := &model.Attestation{
		ID: "a2", ContractID: "c1", TermID: "7", SubPointIndex: 2,
		Agreed: false, OverriddenValue: model.OverridePartiallySupported,
	}
	if err := store.PutAttestation(second); err != nil {
		t.Fatalf("Failed to upsert attestation: %v", err)
	}

	atts, err := store.ListAttestations("c1")
	if err != nil {
		t.Fatalf("Failed to list attestations: %v", err)
	}
	if len(atts) != 1 {
		t.Fatalf("Expected 1 attestation, got %d", len(atts))
	}
	if atts[0].OverriddenValue != model.OverridePartiallySupported {
		t.Errorf("Upsert did not replace decision: %+v", atts[0])
	}
}

func TestSeed(t *testing.T) {
	store := NewMemoryStore()

	n, err := Seed(store, model.SeedContracts())
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if n != 20 {
		t.Errorf("Seeded %d contracts, want 20", n)
	}

	// Second seed is a no-op on a populated store
	n, err = Seed(store, model.SeedContracts())
	if err != nil {
		t.Fatalf("Second seed failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Second seed inserted %d contracts, want 0", n)
	}
}
