package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/complyboard/complyboard/model"
)

// FormatReviewDate formats a review date for display
func FormatReviewDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("Jan 2, 2006")
}

// FormatRate formats a matching rate percentage for display
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate)
}

// StatusLabel returns the display label for a contract status
func StatusLabel(status model.ContractStatus) string {
	switch status {
	case model.StatusCompliant:
		return "Compliant"
	case model.StatusNeedsReview:
		return "Needs Review"
	case model.StatusNonCompliant:
		return "Non-Compliant"
	}
	return string(status)
}

// RiskLabel returns the display label for a risk level
func RiskLabel(risk model.RiskLevel) string {
	switch risk {
	case model.RiskLow:
		return "Low"
	case model.RiskMedium:
		return "Medium"
	case model.RiskHigh:
		return "High"
	}
	return string(risk)
}

// TermStatusLabel returns the display label for a term status
func TermStatusLabel(status model.TermStatus) string {
	switch status {
	case model.TermMet:
		return "Met"
	case model.TermPartiallyMet:
		return "Partially Met"
	case model.TermMissing:
		return "Missing"
	}
	return string(status)
}

// Truncate shortens a string to max runes, appending an ellipsis
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimSpace(string(runes[:max])) + "..."
}

// MatchesFilter reports whether a contract passes the given filter
func MatchesFilter(c *model.Contract, f ContractFilter) bool {
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	if f.Risk != "" && c.RiskLevel != f.Risk {
		return false
	}
	if f.Reviewer != "" && c.Reviewer != f.Reviewer {
		return false
	}
	if f.Band != "" && model.BandForRate(c.TermMatchingRate) != f.Band {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(c.Name), needle) &&
			!strings.Contains(strings.ToLower(c.Vendor), needle) {
			return false
		}
	}
	return true
}
