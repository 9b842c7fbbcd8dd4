package components

import (
	"fmt"
	"html/template"
)

// BreadcrumbItem represents a breadcrumb navigation item
type BreadcrumbItem struct {
	Label  string
	URL    string
	Active bool
}

// Breadcrumb generates a Bootstrap breadcrumb navigation
func Breadcrumb(items []BreadcrumbItem) string {
	html := `<nav aria-label="breadcrumb" class="mb-4">
    <ol class="breadcrumb">`

	for _, item := range items {
		if item.Active {
			html += fmt.Sprintf(`
        <li class="breadcrumb-item active">%s</li>`, template.HTMLEscapeString(item.Label))
		} else {
			html += fmt.Sprintf(`
        <li class="breadcrumb-item"><a href="%s">%s</a></li>`, item.URL, template.HTMLEscapeString(item.Label))
		}
	}

	html += `
    </ol>
</nav>`

	return html
}

// SimpleBreadcrumb generates a breadcrumb from label/URL pairs; the last
// item is always active
func SimpleBreadcrumb(items ...string) string {
	if len(items) == 0 {
		return ""
	}

	var breadcrumbItems []BreadcrumbItem
	for i := 0; i < len(items); i += 2 {
		item := BreadcrumbItem{Label: items[i]}
		if i+1 < len(items) {
			item.URL = items[i+1]
		}
		breadcrumbItems = append(breadcrumbItems, item)
	}
	breadcrumbItems[len(breadcrumbItems)-1].Active = true

	return Breadcrumb(breadcrumbItems)
}
