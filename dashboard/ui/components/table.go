package components

import (
	"fmt"
	"html/template"
)

// TableConfig holds configuration for table rendering
type TableConfig struct {
	Striped     bool
	Hover       bool
	Small       bool
	Responsive  bool
	AlignMiddle bool
	ID          string
}

// DefaultTableConfig returns the default table configuration
func DefaultTableConfig() TableConfig {
	return TableConfig{
		Striped:     true,
		Hover:       true,
		Responsive:  true,
		AlignMiddle: true,
	}
}

// TableStart generates the opening tags for a table
func TableStart(headers []string, config TableConfig) string {
	classes := "table"
	if config.Striped {
		classes += " table-striped"
	}
	if config.Hover {
		classes += " table-hover"
	}
	if config.Small {
		classes += " table-sm"
	}
	if config.AlignMiddle {
		classes += " align-middle"
	}

	html := ""
	if config.Responsive {
		html += `<div class="table-responsive">`
	}

	id := ""
	if config.ID != "" {
		id = fmt.Sprintf(` id="%s"`, config.ID)
	}
	html += fmt.Sprintf(`<table%s class="%s">
    <thead>
        <tr>`, id, classes)

	for _, header := range headers {
		html += fmt.Sprintf(`<th class="text-nowrap">%s</th>`, template.HTMLEscapeString(header))
	}

	html += `
        </tr>
    </thead>
    <tbody>`

	return html
}

// TableEnd generates the closing tags for a table
func TableEnd(responsive bool) string {
	html := `    </tbody>
</table>`
	if responsive {
		html += `</div>`
	}
	return html
}

// TableRow generates a table row
func TableRow(cells []string) string {
	html := "<tr>"
	for _, cell := range cells {
		html += fmt.Sprintf("<td>%s</td>", cell)
	}
	html += "</tr>"
	return html
}

// TableRowLink generates a table row that navigates on click
func TableRowLink(cells []string, url string) string {
	html := fmt.Sprintf(`<tr style="cursor: pointer;" onclick="location.href='%s'">`, url)
	for _, cell := range cells {
		html += fmt.Sprintf("<td>%s</td>", cell)
	}
	html += "</tr>"
	return html
}

// EmptyTableMessage generates a message for empty tables
func EmptyTableMessage(message string) string {
	return fmt.Sprintf(`<div class="alert alert-info text-center">
    <i class="bi bi-info-circle me-2"></i>%s
</div>`, template.HTMLEscapeString(message))
}
