package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/complyboard/complyboard/model"
)

func testReviewData() (*model.Contract, []model.ComplianceTerm, []model.Attestation) {
	contract := &model.Contract{
		ID:                 "c1",
		Name:               "Master Service Agreement",
		Vendor:             "Acme Corp",
		ReviewDate:         time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
		Status:             model.StatusCompliant,
		RiskLevel:          model.RiskLow,
		Reviewer:           "Sarah Johnson",
		Standard:           "GDPR-2024",
		TermMatchingRate:   92.5,
		PointsMatchingRate: 88.0,
	}
	terms := []model.ComplianceTerm{
		{
			ID:              "encryption",
			Heading:         "Data Encryption Requirements",
			OverallAnalysis: "Encryption controls exceed the baseline.",
			SubPoints: []model.SubPoint{
				{Heading: "Encryption in Transit", Description: "TLS 1.2 or higher", Met: true},
				{Heading: "Key Management", Description: "HSM-backed key storage", Met: false},
			},
		},
	}
	attestations := []model.Attestation{
		{ContractID: "c1", TermID: "encryption", SubPointIndex: 0, Agreed: true},
		{
			ContractID: "c1", TermID: "encryption", SubPointIndex: 1,
			Agreed: false, OverriddenValue: model.OverridePartiallySupported,
			Reason: "Key rotation evidence provided out of band",
		},
	}
	return contract, terms, attestations
}

func TestNewReviewReport(t *testing.T) {
	contract, terms, attestations := testReviewData()

	r, err := NewReviewReport(contract, terms, attestations)
	if err != nil {
		t.Fatalf("Failed to build report: %v", err)
	}

	if r.TotalPoints != 2 || r.ReviewedCount != 2 {
		t.Errorf("Expected 2/2 points, got %d/%d", r.ReviewedCount, r.TotalPoints)
	}
	if len(r.Terms) != 1 {
		t.Fatalf("Expected 1 term, got %d", len(r.Terms))
	}
	if r.Terms[0].Status != model.TermPartiallyMet {
		t.Errorf("Expected partially-met term, got %s", r.Terms[0].Status)
	}
	if got := r.Terms[0].SubPoints[0].Attestation; got != "approved" {
		t.Errorf("Expected approved subpoint, got %q", got)
	}
	if got := r.Terms[0].SubPoints[1].Attestation; got != model.OverridePartiallySupported {
		t.Errorf("Expected override value, got %q", got)
	}
}

func TestNewReviewReportNilContract(t *testing.T) {
	if _, err := NewReviewReport(nil, nil, nil); err == nil {
		t.Error("Expected error for nil contract")
	}
}

func TestReviewReportUnreviewedPoints(t *testing.T) {
	contract, terms, _ := testReviewData()

	r, err := NewReviewReport(contract, terms, nil)
	if err != nil {
		t.Fatalf("Failed to build report: %v", err)
	}

	if r.ReviewedCount != 0 {
		t.Errorf("Expected 0 reviewed points, got %d", r.ReviewedCount)
	}
	for _, sp := range r.Terms[0].SubPoints {
		if sp.Attestation != "unreviewed" {
			t.Errorf("Expected unreviewed subpoint, got %q", sp.Attestation)
		}
	}
}

func TestReviewReportJSON(t *testing.T) {
	contract, terms, attestations := testReviewData()

	r, err := NewReviewReport(contract, terms, attestations)
	if err != nil {
		t.Fatalf("Failed to build report: %v", err)
	}

	data, err := r.JSON()
	if err != nil {
		t.Fatalf("Failed to marshal report: %v", err)
	}

	var decoded ReviewReport
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to decode report JSON: %v", err)
	}
	if decoded.Contract.Name != "Master Service Agreement" {
		t.Errorf("Unexpected contract name: %q", decoded.Contract.Name)
	}
	if decoded.Terms[0].SubPoints[1].Reason == "" {
		t.Error("Expected override reason to survive the round trip")
	}
}

func TestReviewReportMarkdown(t *testing.T) {
	contract, terms, attestations := testReviewData()

	r, err := NewReviewReport(contract, terms, attestations)
	if err != nil {
		t.Fatalf("Failed to build report: %v", err)
	}
	r.SetSummary("Review passed with low residual risk.")

	md := r.Markdown()
	for _, want := range []string{
		"# Compliance Review: Master Service Agreement",
		"| Vendor | Acme Corp |",
		"| Terms Matching | 92.5% |",
		"| Attestation | 2/2 points reviewed |",
		"## Summary",
		"Review passed with low residual risk.",
		"### Data Encryption Requirements (partially-met)",
		"**Key Management** [MISSING, partially-supported]",
		"Override reason: Key rotation evidence provided out of band",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown missing %q", want)
		}
	}
}
