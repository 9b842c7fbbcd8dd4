package model

// TermStatus is the derived compliance status of a term
type TermStatus string

const (
	TermMet          TermStatus = "met"
	TermPartiallyMet TermStatus = "partially-met"
	TermMissing      TermStatus = "missing"
)

// Evidence is a contract excerpt backing a subpoint result
type Evidence struct {
	Excerpt     string `json:"excerpt" yaml:"excerpt"`
	Explanation string `json:"explanation" yaml:"explanation"`
}

// SubPoint is one requirement checked under a compliance term
type SubPoint struct {
	Heading     string     `json:"heading" yaml:"heading"`
	Description string     `json:"description" yaml:"description"`
	Met         bool       `json:"met" yaml:"met"`
	Analysis    string     `json:"analysis,omitempty" yaml:"analysis,omitempty"`
	Evidence    []Evidence `json:"evidence,omitempty" yaml:"evidence,omitempty"`
}

// ComplianceTerm is a contract clause requirement with its checked subpoints
type ComplianceTerm struct {
	ID              string     `json:"id" yaml:"id"`
	Heading         string     `json:"heading" yaml:"heading"`
	Description     string     `json:"description" yaml:"description"`
	OverallAnalysis string     `json:"overallAnalysis,omitempty" yaml:"overall_analysis,omitempty"`
	SubPoints       []SubPoint `json:"subPoints" yaml:"sub_points"`
}

// Status derives the term status from its subpoints: met when all subpoints
// are met, missing when none are, partially-met otherwise
func (t *ComplianceTerm) Status() TermStatus {
	if len(t.SubPoints) == 0 {
		return TermMissing
	}
	met := 0
	for _, sp := range t.SubPoints {
		if sp.Met {
			met++
		}
	}
	switch met {
	case len(t.SubPoints):
		return TermMet
	case 0:
		return TermMissing
	default:
		return TermPartiallyMet
	}
}

// MetPoints returns how many subpoints of the term are met
func (t *ComplianceTerm) MetPoints() int {
	met := 0
	for _, sp := range t.SubPoints {
		if sp.Met {
			met++
		}
	}
	return met
}

// TermSetMetrics summarizes a full set of compliance terms
type TermSetMetrics struct {
	TotalTerms    int
	MetTerms      int
	PartialTerms  int
	MissingTerms  int
	TotalPoints   int
	MetPoints     int
	TermsPercent  int
	PointsPercent int
}

// ComputeTermSetMetrics aggregates term and subpoint counts for a term set
func ComputeTermSetMetrics(terms []ComplianceTerm) TermSetMetrics {
	m := TermSetMetrics{TotalTerms: len(terms)}
	for i := range terms {
		switch terms[i].Status() {
		case TermMet:
			m.MetTerms++
		case TermPartiallyMet:
			m.PartialTerms++
		case TermMissing:
			m.MissingTerms++
		}
		m.TotalPoints += len(terms[i].SubPoints)
		m.MetPoints += terms[i].MetPoints()
	}
	if m.TotalTerms > 0 {
		m.TermsPercent = roundPercent(m.MetTerms, m.TotalTerms)
	}
	if m.TotalPoints > 0 {
		m.PointsPercent = roundPercent(m.MetPoints, m.TotalPoints)
	}
	return m
}

func roundPercent(part, total int) int {
	return int(float64(part)/float64(total)*100 + 0.5)
}
