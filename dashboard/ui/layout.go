package ui

import (
	"fmt"
	"html/template"
)

// RenderPage renders a complete HTML page with the given sidebar and content
func RenderPage(title, sidebar, content string) string {
	return Header(title) +
		`<div class="app-layout">` + sidebar +
		`<main class="main-content">` + content + `</main></div>` +
		Footer()
}

// Header generates the HTML header with Bootstrap CDN
func Header(title string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.2/dist/css/bootstrap.min.css" rel="stylesheet" integrity="sha384-T3c6CoIi6uLrA9TneNEoa7RxnatzjcDSCmG1MXxSR1GAsXEV/Dwwykc2MPK8M2HN" crossorigin="anonymous">
    <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap-icons@1.11.1/font/bootstrap-icons.css">
    <script src="https://cdn.jsdelivr.net/npm/echarts@5.4.3/dist/echarts.min.js"></script>
    <style>%s</style>
</head>
<body>`, template.HTMLEscapeString(title), GetStyles())
}

// Footer generates the HTML footer with scripts
func Footer() string {
	return fmt.Sprintf(`
    <script src="%s" integrity="%s" crossorigin="anonymous"></script>
    <script>%s</script>
</body>
</html>`, GetBootstrapJS(), GetBootstrapJSIntegrity(), GetScripts())
}

// ContainerStart returns the opening tags for the main container
func ContainerStart() string {
	return `<div class="container-fluid">
    <div class="main-container">`
}

// ContainerEnd returns the closing tags for the main container
func ContainerEnd() string {
	return `    </div>
</div>`
}

// PageTitle renders the heading block above a view
func PageTitle(title, subtitle string) string {
	html := fmt.Sprintf(`<div class="page-title mb-4">
    <h3 class="mb-1">%s</h3>`, template.HTMLEscapeString(title))
	if subtitle != "" {
		html += fmt.Sprintf(`
    <p class="text-muted mb-0">%s</p>`, template.HTMLEscapeString(subtitle))
	}
	html += `
</div>`
	return html
}

// CardStart returns the opening tags for a card with header
func CardStart(title, icon string) string {
	return fmt.Sprintf(`<div class="card mb-4">
    <div class="card-header">
        <h5 class="mb-0"><i class="bi bi-%s me-2"></i>%s</h5>
    </div>
    <div class="card-body">`, icon, template.HTMLEscapeString(title))
}

// CardStartWithCount returns opening tags for a card with count in header
func CardStartWithCount(title, icon string, count int) string {
	return fmt.Sprintf(`<div class="card mb-4">
    <div class="card-header">
        <h5 class="mb-0"><i class="bi bi-%s me-2"></i>%s (%d)</h5>
    </div>
    <div class="card-body">`, icon, template.HTMLEscapeString(title), count)
}

// CardEnd returns the closing tags for a card
func CardEnd() string {
	return `    </div>
</div>`
}

// Row returns a Bootstrap row wrapper
func Row(content string) string {
	return fmt.Sprintf(`<div class="row g-4 mb-4">%s</div>`, content)
}

// Column returns a Bootstrap column wrapper
func Column(size string, content string) string {
	return fmt.Sprintf(`<div class="%s">%s</div>`, size, content)
}
