package dashboard

import (
	"testing"
	"time"

	"github.com/complyboard/complyboard/model"
)

func TestFormatReviewDate(t *testing.T) {
	d := time.Date(2025, time.October, 8, 0, 0, 0, 0, time.UTC)
	if got := FormatReviewDate(d); got != "Oct 8, 2025" {
		t.Errorf("FormatReviewDate = %q, want Oct 8, 2025", got)
	}
	if got := FormatReviewDate(time.Time{}); got != "N/A" {
		t.Errorf("FormatReviewDate(zero) = %q, want N/A", got)
	}
}

func TestFormatRate(t *testing.T) {
	if got := FormatRate(95.25); got != "95.2%" {
		t.Errorf("FormatRate = %q, want 95.2%%", got)
	}
	if got := FormatRate(42); got != "42.0%" {
		t.Errorf("FormatRate = %q, want 42.0%%", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate kept short string wrong: %q", got)
	}
	if got := Truncate("a very long contract name", 6); got != "a very..." {
		t.Errorf("Truncate = %q", got)
	}
}

func TestMatchesFilter(t *testing.T) {
	c := &model.Contract{
		Name:             "Master Service Agreement",
		Vendor:           "Acme Corp",
		Status:           model.StatusCompliant,
		RiskLevel:        model.RiskLow,
		Reviewer:         "Sarah Johnson",
		TermMatchingRate: 95.2,
	}

	if !MatchesFilter(c, ContractFilter{}) {
		t.Error("empty filter should match everything")
	}
	if !MatchesFilter(c, ContractFilter{Status: model.StatusCompliant, Risk: model.RiskLow}) {
		t.Error("matching status and risk should pass")
	}
	if MatchesFilter(c, ContractFilter{Status: model.StatusNonCompliant}) {
		t.Error("wrong status should fail")
	}
	if !MatchesFilter(c, ContractFilter{Band: model.BandExcellent}) {
		t.Error("95.2 should land in the excellent band")
	}
	if MatchesFilter(c, ContractFilter{Band: model.BandPoor}) {
		t.Error("95.2 is not in the poor band")
	}
	if !MatchesFilter(c, ContractFilter{Search: "acme"}) {
		t.Error("search should match vendor case-insensitively")
	}
	if MatchesFilter(c, ContractFilter{Search: "globex"}) {
		t.Error("search should fail on unknown vendor")
	}
}
