package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/complyboard/complyboard/model"
)

// ReviewReport is the exportable form of a completed compliance review:
// the contract outcome, every term with its subpoint results, and the
// attestation state at export time.
type ReviewReport struct {
	GeneratedAt time.Time `json:"generatedAt"`

	Contract ContractSection `json:"contract"`
	Terms    []TermSection   `json:"terms"`

	TotalPoints   int `json:"totalPoints"`
	ReviewedCount int `json:"reviewedCount"`

	// Summary is the optional AI-generated executive summary
	Summary string `json:"summary,omitempty"`
}

// ContractSection carries the review header fields
type ContractSection struct {
	ID                 string               `json:"id"`
	Name               string               `json:"name"`
	Vendor             string               `json:"vendor"`
	ReviewDate         time.Time            `json:"reviewDate"`
	Status             model.ContractStatus `json:"status"`
	RiskLevel          model.RiskLevel      `json:"riskLevel"`
	Reviewer           string               `json:"reviewer"`
	Standard           string               `json:"standard"`
	TermMatchingRate   float64              `json:"termMatchingRate"`
	PointsMatchingRate float64              `json:"pointsMatchingRate"`
	JiraEngagementURL  string               `json:"jiraEngagementId"`
	AthenaURL          string               `json:"athenaId"`
}

// TermSection is one compliance term with its checked subpoints
type TermSection struct {
	ID              string            `json:"id"`
	Heading         string            `json:"heading"`
	Status          model.TermStatus  `json:"status"`
	OverallAnalysis string            `json:"overallAnalysis,omitempty"`
	SubPoints       []SubPointSection `json:"subPoints"`
}

// SubPointSection is one subpoint result with its reviewer decision
type SubPointSection struct {
	Heading     string `json:"heading"`
	Description string `json:"description"`
	Met         bool   `json:"met"`

	// Attestation state: "unreviewed", "approved", or the override value
	Attestation string `json:"attestation"`
	Reason      string `json:"reason,omitempty"`
}

// NewReviewReport assembles a report from the stored review data
func NewReviewReport(contract *model.Contract, terms []model.ComplianceTerm, attestations []model.Attestation) (*ReviewReport, error) {
	if contract == nil {
		return nil, fmt.Errorf("contract cannot be nil")
	}

	r := &ReviewReport{
		GeneratedAt: time.Now().UTC(),
		Contract: ContractSection{
			ID:                 contract.ID,
			Name:               contract.Name,
			Vendor:             contract.Vendor,
			ReviewDate:         contract.ReviewDate,
			Status:             contract.Status,
			RiskLevel:          contract.RiskLevel,
			Reviewer:           contract.Reviewer,
			Standard:           contract.Standard,
			TermMatchingRate:   contract.TermMatchingRate,
			PointsMatchingRate: contract.PointsMatchingRate,
			JiraEngagementURL:  contract.JiraEngagementURL,
			AthenaURL:          contract.AthenaURL,
		},
	}

	for i := range terms {
		term := &terms[i]
		section := TermSection{
			ID:              term.ID,
			Heading:         term.Heading,
			Status:          term.Status(),
			OverallAnalysis: term.OverallAnalysis,
		}
		for j := range term.SubPoints {
			sp := &term.SubPoints[j]
			sub := SubPointSection{
				Heading:     sp.Heading,
				Description: sp.Description,
				Met:         sp.Met,
				Attestation: "unreviewed",
			}
			if att := model.FindAttestation(attestations, term.ID, j); att != nil {
				r.ReviewedCount++
				if att.Agreed {
					sub.Attestation = "approved"
				} else {
					sub.Attestation = att.OverriddenValue
					sub.Reason = att.Reason
				}
			}
			section.SubPoints = append(section.SubPoints, sub)
			r.TotalPoints++
		}
		r.Terms = append(r.Terms, section)
	}

	return r, nil
}

// SetSummary attaches an executive summary to the report
func (r *ReviewReport) SetSummary(summary string) {
	r.Summary = summary
}

// JSON returns the report as indented JSON
func (r *ReviewReport) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return data, nil
}

// Markdown returns the report as a Markdown document
func (r *ReviewReport) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Compliance Review: %s\n\n", r.Contract.Name)
	fmt.Fprintf(&b, "Generated %s\n\n", r.GeneratedAt.Format("Jan 2, 2006 15:04 MST"))

	fmt.Fprintf(&b, "| Field | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Vendor | %s |\n", r.Contract.Vendor)
	fmt.Fprintf(&b, "| Review Date | %s |\n", r.Contract.ReviewDate.Format("Jan 2, 2006"))
	fmt.Fprintf(&b, "| Status | %s |\n", r.Contract.Status)
	fmt.Fprintf(&b, "| Risk | %s |\n", r.Contract.RiskLevel)
	fmt.Fprintf(&b, "| Reviewer | %s |\n", r.Contract.Reviewer)
	fmt.Fprintf(&b, "| Standard | %s |\n", r.Contract.Standard)
	fmt.Fprintf(&b, "| Terms Matching | %.1f%% |\n", r.Contract.TermMatchingRate)
	fmt.Fprintf(&b, "| Points Matching | %.1f%% |\n", r.Contract.PointsMatchingRate)
	fmt.Fprintf(&b, "| Attestation | %d/%d points reviewed |\n\n", r.ReviewedCount, r.TotalPoints)

	if r.Summary != "" {
		fmt.Fprintf(&b, "## Summary\n\n%s\n\n", r.Summary)
	}

	fmt.Fprintf(&b, "## Terms\n\n")
	for _, term := range r.Terms {
		fmt.Fprintf(&b, "### %s (%s)\n\n", term.Heading, term.Status)
		if term.OverallAnalysis != "" {
			fmt.Fprintf(&b, "%s\n\n", term.OverallAnalysis)
		}
		for _, sp := range term.SubPoints {
			mark := "MISSING"
			if sp.Met {
				mark = "MET"
			}
			fmt.Fprintf(&b, "- **%s** [%s, %s]: %s\n", sp.Heading, mark, sp.Attestation, sp.Description)
			if sp.Reason != "" {
				fmt.Fprintf(&b, "  - Override reason: %s\n", sp.Reason)
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
