package dashboard

import "github.com/complyboard/complyboard/model"

// DashboardStats holds the headline numbers for the analytics view
type DashboardStats struct {
	TotalContracts int
	Compliant      int
	NeedsReview    int
	NonCompliant   int
	HighRisk       int
	AvgTermRate    float64
	AvgPointsRate  float64
	AvgDurationDay float64
}

// ContractFilter narrows the completed reviews list
type ContractFilter struct {
	Status   model.ContractStatus // empty means all
	Risk     model.RiskLevel      // empty means all
	Reviewer string               // empty means all
	Band     model.MatchingBand   // empty means all, applied to term rate
	Search   string               // matches name or vendor, case-insensitive
}

// IsZero reports whether the filter matches everything
func (f ContractFilter) IsZero() bool {
	return f.Status == "" && f.Risk == "" && f.Reviewer == "" && f.Band == "" && f.Search == ""
}

// TermComplianceRow is one row of the per-term compliance table
type TermComplianceRow struct {
	TermID   string
	Heading  string
	Met      int
	Partial  int
	Missing  int
	MetRate  int // percent of contracts fully meeting the term
	Contract int // contracts evaluated
}
