package model

import (
	"strconv"
	"time"
)

// Override values a reviewer can select when disagreeing with a result
const (
	OverrideSupported          = "supported"
	OverridePartiallySupported = "partially-supported"
	OverrideNotSupported       = "not-supported"
)

// Attestation records a reviewer's decision on a single subpoint result.
// Agreed=true means the automated result was approved as-is; Agreed=false
// means it was overridden with OverriddenValue (and optionally a reason).
type Attestation struct {
	ID              string    `json:"id" bson:"attestation_id"`
	ContractID      string    `json:"contractId" bson:"contract_id"`
	TermID          string    `json:"termId" bson:"term_id"`
	SubPointIndex   int       `json:"subPointIndex" bson:"sub_point_index"`
	Agreed          bool      `json:"agreed" bson:"agreed"`
	OverriddenValue string    `json:"overriddenValue,omitempty" bson:"overridden_value,omitempty"`
	Reason          string    `json:"reason,omitempty" bson:"reason,omitempty"`
	CreatedAt       time.Time `json:"createdAt" bson:"created_at"`
}

// SubPointResult converts a boolean result into an override status string
func SubPointResult(met bool) string {
	if met {
		return OverrideSupported
	}
	return OverrideNotSupported
}

// AttestationProgress tracks how far a review attestation has come
type AttestationProgress struct {
	TotalPoints   int
	ReviewedCount int
	Percentage    int
	CanAttest     bool
}

// ComputeAttestationProgress counts reviewed subpoints against the term set.
// Every subpoint must carry an attestation before the review can be attested.
func ComputeAttestationProgress(terms []ComplianceTerm, attestations []Attestation) AttestationProgress {
	p := AttestationProgress{}
	for i := range terms {
		p.TotalPoints += len(terms[i].SubPoints)
	}

	seen := make(map[string]bool, len(attestations))
	for _, a := range attestations {
		key := a.TermID + "#" + strconv.Itoa(a.SubPointIndex)
		if !seen[key] {
			seen[key] = true
			p.ReviewedCount++
		}
	}

	if p.TotalPoints > 0 {
		p.Percentage = p.ReviewedCount * 100 / p.TotalPoints
	}
	p.CanAttest = p.TotalPoints > 0 && p.ReviewedCount >= p.TotalPoints
	return p
}

// FindAttestation returns the attestation for a term subpoint, or nil
func FindAttestation(attestations []Attestation, termID string, subPointIndex int) *Attestation {
	for i := range attestations {
		if attestations[i].TermID == termID && attestations[i].SubPointIndex == subPointIndex {
			return &attestations[i]
		}
	}
	return nil
}

