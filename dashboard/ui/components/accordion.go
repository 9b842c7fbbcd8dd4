package components

import (
	"fmt"
	"html/template"
)

// AccordionStart opens a Bootstrap accordion container
func AccordionStart(id string) string {
	return fmt.Sprintf(`<div class="accordion term-accordion" id="%s">`, id)
}

// AccordionEnd closes the accordion container
func AccordionEnd() string {
	return `</div>`
}

// AccordionItem generates one collapsed accordion entry. The header holds
// raw HTML (badges next to the title); the body is raw HTML built by the
// caller.
func AccordionItem(parentID, itemID, headerHTML, bodyHTML string) string {
	return fmt.Sprintf(`
<div class="accordion-item">
    <h2 class="accordion-header">
        <button class="accordion-button collapsed" type="button" data-bs-toggle="collapse" data-bs-target="#%s">
            %s
        </button>
    </h2>
    <div id="%s" class="accordion-collapse collapse" data-bs-parent="#%s">
        <div class="accordion-body">%s</div>
    </div>
</div>`, itemID, headerHTML, itemID, parentID, bodyHTML)
}

// EvidenceExcerpt renders a quoted contract excerpt with its explanation
func EvidenceExcerpt(excerpt, explanation string) string {
	html := fmt.Sprintf(`<div class="evidence-excerpt mb-2">%s</div>`,
		template.HTMLEscapeString(excerpt))
	if explanation != "" {
		html += fmt.Sprintf(`<p class="text-muted small mb-3">%s</p>`,
			template.HTMLEscapeString(explanation))
	}
	return html
}

// ProgressBar renders a labelled progress bar
func ProgressBar(percent int, variant string) string {
	return fmt.Sprintf(`<div class="progress attestation-progress">
    <div class="progress-bar bg-%s" role="progressbar" style="width: %d%%" aria-valuenow="%d" aria-valuemin="0" aria-valuemax="100"></div>
</div>`, variant, percent, percent)
}
