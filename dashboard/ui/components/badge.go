package components

import (
	"fmt"
	"html/template"

	"github.com/complyboard/complyboard/dashboard"
	"github.com/complyboard/complyboard/model"
)

// Badge generates a Bootstrap badge
func Badge(text, variant string) string {
	return fmt.Sprintf(`<span class="badge bg-%s">%s</span>`, variant, template.HTMLEscapeString(text))
}

// BadgeWithIcon generates a badge with a bootstrap icon prefix
func BadgeWithIcon(text, icon, variant string) string {
	return fmt.Sprintf(`<span class="badge bg-%s"><i class="bi bi-%s me-1"></i>%s</span>`,
		variant, icon, template.HTMLEscapeString(text))
}

// StatusBadge generates a badge for contract statuses
func StatusBadge(status model.ContractStatus) string {
	label := dashboard.StatusLabel(status)
	switch status {
	case model.StatusCompliant:
		return BadgeWithIcon(label, "check-circle", "success")
	case model.StatusNeedsReview:
		return BadgeWithIcon(label, "exclamation-circle", "warning text-dark")
	case model.StatusNonCompliant:
		return BadgeWithIcon(label, "x-circle", "danger")
	}
	return Badge(label, "secondary")
}

// RiskBadge generates a badge for risk levels
func RiskBadge(risk model.RiskLevel) string {
	label := dashboard.RiskLabel(risk)
	switch risk {
	case model.RiskLow:
		return Badge(label, "success")
	case model.RiskMedium:
		return Badge(label, "warning text-dark")
	case model.RiskHigh:
		return Badge(label, "danger")
	}
	return Badge(label, "secondary")
}

// RateBadge generates a matching-rate badge colored by band
func RateBadge(rate float64) string {
	variant := "secondary"
	switch model.BandForRate(rate) {
	case model.BandExcellent:
		variant = "success"
	case model.BandGood:
		variant = "primary"
	case model.BandFair:
		variant = "warning text-dark"
	case model.BandPoor:
		variant = "danger"
	}
	return fmt.Sprintf(`<span class="badge bg-%s rate-badge">%.1f%%</span>`, variant, rate)
}

// TermStatusBadge generates a badge for derived term statuses
func TermStatusBadge(status model.TermStatus) string {
	label := dashboard.TermStatusLabel(status)
	switch status {
	case model.TermMet:
		return BadgeWithIcon(label, "check-circle", "success")
	case model.TermPartiallyMet:
		return BadgeWithIcon(label, "dash-circle", "warning text-dark")
	case model.TermMissing:
		return BadgeWithIcon(label, "x-circle", "danger")
	}
	return Badge(label, "secondary")
}

// StandardStatusBadge generates a badge for review standard statuses
func StandardStatusBadge(status model.StandardStatus) string {
	if status == model.StandardActive {
		return BadgeWithIcon("Active", "check-circle", "success")
	}
	return BadgeWithIcon("Deprecated", "archive", "secondary")
}

// MetBadge generates a badge for subpoint results
func MetBadge(met bool) string {
	if met {
		return BadgeWithIcon("Met", "check-lg", "success")
	}
	return BadgeWithIcon("Not Met", "x-lg", "danger")
}

// AttestationBadge shows a reviewed subpoint's decision
func AttestationBadge(att *model.Attestation) string {
	if att == nil {
		return Badge("Unreviewed", "secondary")
	}
	if att.Agreed {
		return BadgeWithIcon("Approved", "hand-thumbs-up", "success")
	}
	return BadgeWithIcon("Overridden: "+att.OverriddenValue, "pencil", "info")
}

// CountBadge generates a count badge
func CountBadge(count int, variant string) string {
	return fmt.Sprintf(`<span class="badge bg-%s">%d</span>`, variant, count)
}
