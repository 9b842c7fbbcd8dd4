package components

import (
	"fmt"
	"html/template"
)

// StatCard generates a statistics card
func StatCard(value, label, icon, color string) string {
	return fmt.Sprintf(`
<div class="card text-center h-100 border-%s">
    <div class="card-body d-flex flex-column justify-content-center">
        <h2 class="card-title text-%s mb-2" style="font-size: 2.2rem; font-weight: bold;">%s</h2>
        <p class="card-text mb-0"><i class="bi bi-%s me-1"></i>%s</p>
    </div>
</div>`, color, color, template.HTMLEscapeString(value), icon, template.HTMLEscapeString(label))
}

// StatCardWithLink generates a statistics card with a link button
func StatCardWithLink(value, label, icon, color, linkURL, linkText string) string {
	return fmt.Sprintf(`
<div class="card text-center h-100 border-%s">
    <div class="card-body d-flex flex-column justify-content-center">
        <h2 class="card-title text-%s mb-2" style="font-size: 2.2rem; font-weight: bold;">%s</h2>
        <p class="card-text mb-3"><i class="bi bi-%s me-1"></i>%s</p>
        <a href="%s" class="btn btn-sm btn-outline-%s mt-auto">%s</a>
    </div>
</div>`, color, color, template.HTMLEscapeString(value), icon, template.HTMLEscapeString(label), linkURL, color, linkText)
}

// StatCardWithSubtext generates a statistics card with subtext
func StatCardWithSubtext(value, label, icon, color, subtext string) string {
	return fmt.Sprintf(`
<div class="card text-center h-100 border-%s">
    <div class="card-body d-flex flex-column justify-content-center">
        <h2 class="card-title text-%s mb-2" style="font-size: 2.2rem; font-weight: bold;">%s</h2>
        <p class="card-text mb-2"><i class="bi bi-%s me-1"></i>%s</p>
        <small class="text-muted">%s</small>
    </div>
</div>`, color, color, template.HTMLEscapeString(value), icon, template.HTMLEscapeString(label), template.HTMLEscapeString(subtext))
}

// InfoCard generates an information card with title and content
func InfoCard(title, content, icon string) string {
	return fmt.Sprintf(`
<div class="card h-100">
    <div class="card-body text-center">
        <div class="mb-3 text-primary" style="font-size: 2.2rem;"><i class="bi bi-%s"></i></div>
        <h6 class="card-title">%s</h6>
        <p class="card-text text-muted small">%s</p>
    </div>
</div>`, icon, template.HTMLEscapeString(title), template.HTMLEscapeString(content))
}

// LinkCard generates a clickable card with link
func LinkCard(title, content, icon, linkURL string) string {
	return fmt.Sprintf(`
<a href="%s" class="card text-decoration-none text-dark h-100">
    <div class="card-body text-center">
        <div class="mb-3 text-primary" style="font-size: 2.2rem;"><i class="bi bi-%s"></i></div>
        <h6 class="card-title">%s</h6>
        <p class="card-text text-muted small">%s</p>
    </div>
</a>`, linkURL, icon, template.HTMLEscapeString(title), template.HTMLEscapeString(content))
}
