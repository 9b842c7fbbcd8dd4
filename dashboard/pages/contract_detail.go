package pages

import (
	"fmt"

	"github.com/complyboard/complyboard/dashboard"
	"github.com/complyboard/complyboard/dashboard/ui"
	"github.com/complyboard/complyboard/dashboard/ui/components"
	"github.com/complyboard/complyboard/model"
)

// RenderContractDetail generates the contract review detail HTML page
func RenderContractDetail(h *dashboard.Handler, collapsed bool, contractID string) (string, error) {
	contract, err := h.Store().GetContract(contractID)
	if err != nil {
		return "", fmt.Errorf("failed to get contract %s: %w", contractID, err)
	}
	stored, err := h.Store().ListAttestations(contractID)
	if err != nil {
		return "", fmt.Errorf("failed to list attestations: %w", err)
	}
	attestations := make([]model.Attestation, 0, len(stored))
	for _, a := range stored {
		attestations = append(attestations, *a)
	}
	terms, err := h.Repo().Terms()
	if err != nil {
		return "", fmt.Errorf("failed to load compliance terms: %w", err)
	}
	items, err := h.Repo().RequestItems()
	if err != nil {
		return "", fmt.Errorf("failed to load request items: %w", err)
	}

	content := ui.ContainerStart()
	content += components.SimpleBreadcrumb("Completed Reviews", "/dashboard/reviews", contract.Name, "")

	content += renderContractHeader(contract)
	content += renderAttestationCard(contract, terms, attestations)
	content += renderTermsAccordion(contract, terms, attestations)

	content += ui.ContainerEnd()

	sidebar := ui.Sidebar("/dashboard/reviews", collapsed, items, h.Registry())
	return ui.RenderPage("ComplyBoard - "+contract.Name, sidebar, content), nil
}

func renderContractHeader(c *model.Contract) string {
	html := `<div class="card mb-4"><div class="card-body">`

	html += `<div class="d-flex justify-content-between align-items-start flex-wrap gap-3">`
	html += `<div>`
	html += fmt.Sprintf(`<h3 class="mb-1">%s</h3>`, escape(c.Name))
	html += fmt.Sprintf(`<p class="text-muted mb-2">%s</p>`, escape(c.Vendor))
	html += `<div class="d-flex gap-2">`
	html += components.StatusBadge(c.Status)
	html += components.RiskBadge(c.RiskLevel)
	html += `</div>`
	html += `</div>`
	html += `<div class="d-flex gap-2">`
	html += components.ExternalLinkButton(c.JiraID(), c.JiraEngagementURL)
	html += components.ExternalLinkButton(c.AthenaID(), c.AthenaURL)
	html += components.ButtonOutlineSmall("Export Report", "/dashboard/contracts/"+c.ID+"/export", "secondary")
	html += `</div>`
	html += `</div>`

	html += `<hr>`
	html += `<div class="row g-3">`
	html += headerField("Review Date", dashboard.FormatReviewDate(c.ReviewDate))
	html += headerField("Reviewer", escape(c.Reviewer))
	html += headerField("Standard", fmt.Sprintf(`<code>%s</code>`, escape(c.Standard)))
	html += headerField("Review Duration", fmt.Sprintf("%d days", c.ReviewDurationDays))
	html += headerField("Terms Matching", components.RateBadge(c.TermMatchingRate))
	html += headerField("Points Matching", components.RateBadge(c.PointsMatchingRate))
	html += `</div>`

	html += `</div></div>`
	return html
}

func headerField(label, valueHTML string) string {
	return fmt.Sprintf(`<div class="col-md-4 col-lg-2"><div class="text-muted small">%s</div><div class="fw-medium">%s</div></div>`,
		label, valueHTML)
}

func renderAttestationCard(c *model.Contract, terms []model.ComplianceTerm, attestations []model.Attestation) string {
	progress := model.ComputeAttestationProgress(terms, attestations)

	html := ui.CardStart("Attestation Progress", "clipboard-check")

	html += `<div class="d-flex justify-content-between align-items-center mb-2">`
	html += fmt.Sprintf(`<span>%d of %d points reviewed</span>`, progress.ReviewedCount, progress.TotalPoints)
	html += fmt.Sprintf(`<span class="fw-medium">%d%%</span>`, progress.Percentage)
	html += `</div>`

	variant := "primary"
	if progress.CanAttest {
		variant = "success"
	}
	html += components.ProgressBar(progress.Percentage, variant)

	html += `<div class="mt-3">`
	if !c.AttestedAt.IsZero() {
		html += components.SuccessAlert(fmt.Sprintf("Review attested on %s", dashboard.FormatReviewDate(c.AttestedAt)))
	} else if progress.CanAttest {
		html += fmt.Sprintf(`<form method="POST" action="/dashboard/contracts/%s/attest" class="d-inline">`, escape(c.ID))
		html += components.SubmitButton("Attest Review", "success")
		html += `</form>`
	} else {
		html += `<button type="button" class="btn btn-success" disabled>Attest Review</button>`
		html += `<span class="text-muted small ms-2">Review every sub-point before attesting</span>`
	}
	html += `</div>`

	html += ui.CardEnd()
	return html
}

func renderTermsAccordion(c *model.Contract, terms []model.ComplianceTerm, attestations []model.Attestation) string {
	html := ui.CardStartWithCount("Compliance Terms", "list-check", len(terms))
	html += components.AccordionStart("terms-accordion")

	for i := range terms {
		term := &terms[i]
		itemID := fmt.Sprintf("term-%s", term.ID)

		header := fmt.Sprintf(`<span class="me-2">%s</span>`, escape(term.Heading))
		header += components.TermStatusBadge(term.Status())
		header += fmt.Sprintf(`<span class="badge bg-light text-dark ms-2">%d/%d points</span>`,
			term.MetPoints(), len(term.SubPoints))

		body := fmt.Sprintf(`<p class="text-muted">%s</p>`, escape(term.Description))
		if term.OverallAnalysis != "" {
			body += components.InfoAlert(escape(term.OverallAnalysis))
		}
		for j := range term.SubPoints {
			body += renderSubPoint(c, term, j, attestations)
		}

		html += components.AccordionItem("terms-accordion", itemID, header, body)
	}

	html += components.AccordionEnd()
	html += ui.CardEnd()
	return html
}

func renderSubPoint(c *model.Contract, term *model.ComplianceTerm, index int, attestations []model.Attestation) string {
	sp := &term.SubPoints[index]
	att := model.FindAttestation(attestations, term.ID, index)

	html := `<div class="border rounded p-3 mb-3">`

	html += `<div class="d-flex justify-content-between align-items-start">`
	html += fmt.Sprintf(`<div><span class="fw-medium">%s</span> %s</div>`,
		escape(sp.Heading), components.MetBadge(sp.Met))
	html += components.AttestationBadge(att)
	html += `</div>`

	html += fmt.Sprintf(`<p class="text-muted small mb-2">%s</p>`, escape(sp.Description))

	if sp.Analysis != "" {
		html += fmt.Sprintf(`<p class="small mb-2">%s</p>`, escape(sp.Analysis))
	}
	for _, ev := range sp.Evidence {
		html += components.EvidenceExcerpt(ev.Excerpt, ev.Explanation)
	}
	if len(sp.Evidence) > 0 {
		html += components.ButtonOutlineSmall("View Evidence",
			fmt.Sprintf("/dashboard/contracts/%s/evidence/%s/%d", c.ID, term.ID, index), "primary")
	}

	if att == nil {
		html += renderAttestationForms(c.ID, term.ID, index)
	}

	html += `</div>`
	return html
}

func renderAttestationForms(contractID, termID string, index int) string {
	html := `<div class="d-flex gap-2 align-items-center mt-2">`

	html += fmt.Sprintf(`<form method="POST" action="/dashboard/contracts/%s/attestations/approve" class="d-inline">`,
		escape(contractID))
	html += fmt.Sprintf(`<input type="hidden" name="term_id" value="%s">`, escape(termID))
	html += fmt.Sprintf(`<input type="hidden" name="sub_point_index" value="%d">`, index)
	html += `<button type="submit" class="btn btn-sm btn-outline-success">Approve</button>`
	html += `</form>`

	html += fmt.Sprintf(`<form method="POST" action="/dashboard/contracts/%s/attestations/override" class="d-inline-flex gap-2">`,
		escape(contractID))
	html += fmt.Sprintf(`<input type="hidden" name="term_id" value="%s">`, escape(termID))
	html += fmt.Sprintf(`<input type="hidden" name="sub_point_index" value="%d">`, index)
	html += `<select class="form-select form-select-sm" name="value" style="width: auto;">`
	html += fmt.Sprintf(`<option value="%s">Supported</option>`, model.OverrideSupported)
	html += fmt.Sprintf(`<option value="%s">Partially Supported</option>`, model.OverridePartiallySupported)
	html += fmt.Sprintf(`<option value="%s">Not Supported</option>`, model.OverrideNotSupported)
	html += `</select>`
	html += `<input type="text" class="form-control form-control-sm" name="reason" placeholder="Reason (optional)">`
	html += `<button type="submit" class="btn btn-sm btn-outline-warning">Override</button>`
	html += `</form>`

	html += `</div>`
	return html
}
