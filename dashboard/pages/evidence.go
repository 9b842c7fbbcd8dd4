package pages

import (
	"fmt"

	"github.com/complyboard/complyboard/dashboard"
	"github.com/complyboard/complyboard/dashboard/ui"
	"github.com/complyboard/complyboard/dashboard/ui/components"
	"github.com/complyboard/complyboard/model"
)

// RenderEvidence generates the evidence source page for one subpoint. The
// page walks the subpoint's evidence sources one at a time with prev/next
// navigation, like a drawer pinned to its own URL.
func RenderEvidence(h *dashboard.Handler, collapsed bool, contractID, termID string, subIndex, evidenceIndex int) (string, error) {
	contract, err := h.Store().GetContract(contractID)
	if err != nil {
		return "", fmt.Errorf("failed to get contract %s: %w", contractID, err)
	}
	terms, err := h.Repo().Terms()
	if err != nil {
		return "", fmt.Errorf("failed to load compliance terms: %w", err)
	}
	items, err := h.Repo().RequestItems()
	if err != nil {
		return "", fmt.Errorf("failed to load request items: %w", err)
	}

	var term *model.ComplianceTerm
	for i := range terms {
		if terms[i].ID == termID {
			term = &terms[i]
			break
		}
	}
	if term == nil {
		return "", fmt.Errorf("unknown term %q", termID)
	}
	if subIndex < 0 || subIndex >= len(term.SubPoints) {
		return "", fmt.Errorf("subpoint index %d out of range for term %q", subIndex, termID)
	}
	sp := &term.SubPoints[subIndex]
	if len(sp.Evidence) == 0 {
		return "", fmt.Errorf("no evidence recorded for %q", sp.Heading)
	}
	if evidenceIndex < 0 || evidenceIndex >= len(sp.Evidence) {
		evidenceIndex = 0
	}
	ev := &sp.Evidence[evidenceIndex]

	content := ui.ContainerStart()
	content += components.SimpleBreadcrumb(
		"Completed Reviews", "/dashboard/reviews",
		contract.Name, "/dashboard/contracts/"+contract.ID,
		sp.Heading, "",
	)

	content += ui.CardStart("Evidence", "file-earmark-richtext")

	content += `<div class="d-flex justify-content-between align-items-center mb-3">`
	content += fmt.Sprintf(`<div><span class="fw-medium">%s</span> %s</div>`,
		escape(sp.Heading), components.MetBadge(sp.Met))
	content += fmt.Sprintf(`<span class="text-muted small">Source %d of %d</span>`,
		evidenceIndex+1, len(sp.Evidence))
	content += `</div>`

	content += `<h6 class="text-muted text-uppercase small">Contract Excerpt</h6>`
	content += components.EvidenceExcerpt(ev.Excerpt, "")
	content += `<h6 class="text-muted text-uppercase small mt-3">Evidence Explanation</h6>`
	content += fmt.Sprintf(`<p>%s</p>`, escape(ev.Explanation))

	content += `<div class="d-flex justify-content-between mt-4">`
	content += evidenceNavButton(contract.ID, termID, subIndex, evidenceIndex-1, evidenceIndex > 0, "Previous")
	content += evidenceNavButton(contract.ID, termID, subIndex, evidenceIndex+1, evidenceIndex < len(sp.Evidence)-1, "Next")
	content += `</div>`

	content += ui.CardEnd()
	content += ui.ContainerEnd()

	sidebar := ui.Sidebar("/dashboard/reviews", collapsed, items, h.Registry())
	return ui.RenderPage("ComplyBoard - Evidence", sidebar, content), nil
}

func evidenceNavButton(contractID, termID string, subIndex, evidenceIndex int, enabled bool, label string) string {
	if !enabled {
		return fmt.Sprintf(`<button type="button" class="btn btn-outline-secondary btn-sm" disabled>%s</button>`, label)
	}
	url := fmt.Sprintf("/dashboard/contracts/%s/evidence/%s/%d?source=%d", contractID, termID, subIndex, evidenceIndex)
	return fmt.Sprintf(`<a href="%s" class="btn btn-outline-primary btn-sm">%s</a>`, url, label)
}
