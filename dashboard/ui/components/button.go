package components

import (
	"fmt"
	"html/template"
)

// Button generates a Bootstrap button
func Button(text, url, variant string) string {
	return fmt.Sprintf(`<a href="%s" class="btn btn-%s">%s</a>`,
		url, variant, template.HTMLEscapeString(text))
}

// ButtonSmall generates a small Bootstrap button
func ButtonSmall(text, url, variant string) string {
	return fmt.Sprintf(`<a href="%s" class="btn btn-sm btn-%s">%s</a>`,
		url, variant, template.HTMLEscapeString(text))
}

// ButtonOutlineSmall generates a small outline button
func ButtonOutlineSmall(text, url, variant string) string {
	return fmt.Sprintf(`<a href="%s" class="btn btn-sm btn-outline-%s">%s</a>`,
		url, variant, template.HTMLEscapeString(text))
}

// ViewButton generates a "View" button
func ViewButton(url string) string {
	return ButtonOutlineSmall("View", url, "primary")
}

// ExternalLinkButton generates a small button opening a tracker link in a
// new tab
func ExternalLinkButton(text, url string) string {
	return fmt.Sprintf(`<a href="%s" target="_blank" class="btn btn-sm btn-outline-secondary"><i class="bi bi-box-arrow-up-right me-1"></i>%s</a>`,
		url, template.HTMLEscapeString(text))
}

// SubmitButton generates a form submit button
func SubmitButton(text, variant string) string {
	return fmt.Sprintf(`<button type="submit" class="btn btn-sm btn-%s">%s</button>`,
		variant, template.HTMLEscapeString(text))
}

// Link generates a simple link
func Link(text, url string) string {
	return fmt.Sprintf(`<a href="%s" class="text-decoration-none">%s</a>`,
		url, template.HTMLEscapeString(text))
}
