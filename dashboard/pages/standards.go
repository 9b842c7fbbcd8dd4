package pages

import (
	"fmt"

	"github.com/complyboard/complyboard/dashboard"
	"github.com/complyboard/complyboard/dashboard/ui"
	"github.com/complyboard/complyboard/dashboard/ui/components"
	"github.com/complyboard/complyboard/model"
)

// RenderStandards generates the supported standards HTML page
func RenderStandards(h *dashboard.Handler, collapsed bool) (string, error) {
	standards, err := h.Repo().Standards()
	if err != nil {
		return "", fmt.Errorf("failed to load standards: %w", err)
	}
	items, err := h.Repo().RequestItems()
	if err != nil {
		return "", fmt.Errorf("failed to load request items: %w", err)
	}

	active := model.ActiveStandards(standards)
	deprecated := model.DeprecatedStandards(standards)

	content := ui.ContainerStart()
	content += ui.PageTitle("Standards Supported", "Review types available for contract compliance analysis")

	content += ui.CardStart("Search Review Types", "search")
	content += `<input type="text" id="standards-search" class="form-control" placeholder="Search standards...">`
	content += ui.CardEnd()

	content += ui.CardStartWithCount("Active Review Types", "journal-check", len(active))
	content += renderStandardsTable(active, "standards-table")
	content += ui.CardEnd()

	content += ui.CardStartWithCount("Deprecated Review Types", "journal-x", len(deprecated))
	if len(deprecated) == 0 {
		content += components.EmptyTableMessage("No deprecated review types")
	} else {
		content += renderStandardsTable(deprecated, "")
	}
	content += ui.CardEnd()

	content += ui.ContainerEnd()

	sidebar := ui.Sidebar("/dashboard/standards", collapsed, items, h.Registry())
	return ui.RenderPage("ComplyBoard - Standards", sidebar, content), nil
}

func renderStandardsTable(standards []model.ReviewStandard, tableID string) string {
	config := components.DefaultTableConfig()
	config.ID = tableID
	html := components.TableStart([]string{
		"Type ID", "Type Name", "Published Date", "Author", "Version", "Status",
	}, config)

	for _, s := range standards {
		html += components.TableRow([]string{
			fmt.Sprintf(`<code>%s</code>`, escape(s.TypeID)),
			escape(s.TypeName),
			dashboard.FormatReviewDate(s.PublishedDate),
			escape(s.Author),
			components.Badge(s.Version, "primary"),
			components.StandardStatusBadge(s.Status),
		})
	}

	html += components.TableEnd(config.Responsive)
	return html
}
