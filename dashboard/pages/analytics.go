package pages

import (
	"fmt"

	"github.com/complyboard/complyboard/charts"
	"github.com/complyboard/complyboard/dashboard"
	"github.com/complyboard/complyboard/dashboard/data"
	"github.com/complyboard/complyboard/dashboard/ui"
	"github.com/complyboard/complyboard/dashboard/ui/components"
)

// RenderAnalytics generates the compliance analytics HTML page
func RenderAnalytics(h *dashboard.Handler, collapsed bool) (string, error) {
	dp := data.NewDataProvider(h.Store(), h.Repo())

	stats, err := dp.GetDashboardStats()
	if err != nil {
		return "", fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	items, err := h.Repo().RequestItems()
	if err != nil {
		return "", fmt.Errorf("failed to load request items: %w", err)
	}

	content := ui.ContainerStart()
	content += ui.PageTitle("Compliance Analytics", "Portfolio-wide view of contract compliance performance")

	// Stats cards row
	content += `<div class="row g-4 mb-4">`

	content += `<div class="col-md-6 col-lg-3">`
	content += components.StatCardWithLink(
		fmt.Sprintf("%d", stats.TotalContracts),
		"Contracts Reviewed", "file-earmark-text", "primary",
		"/dashboard/reviews", "View Reviews",
	)
	content += `</div>`

	content += `<div class="col-md-6 col-lg-3">`
	content += components.StatCardWithSubtext(
		fmt.Sprintf("%d", stats.Compliant),
		"Compliant", "check-circle", "success",
		fmt.Sprintf("%d need review, %d non-compliant", stats.NeedsReview, stats.NonCompliant),
	)
	content += `</div>`

	content += `<div class="col-md-6 col-lg-3">`
	content += components.StatCardWithSubtext(
		dashboard.FormatRate(stats.AvgTermRate),
		"Avg Terms Matching", "graph-up", "info",
		fmt.Sprintf("points matching %s", dashboard.FormatRate(stats.AvgPointsRate)),
	)
	content += `</div>`

	content += `<div class="col-md-6 col-lg-3">`
	content += components.StatCardWithSubtext(
		fmt.Sprintf("%d", stats.HighRisk),
		"High Risk", "exclamation-triangle", "danger",
		fmt.Sprintf("avg review %.1f days", stats.AvgDurationDay),
	)
	content += `</div>`

	content += `</div>`

	if h.ChartsEnabled() {
		chartsHTML, err := renderAnalyticsCharts(dp)
		if err != nil {
			return "", err
		}
		content += chartsHTML
	}

	tableHTML, err := renderTermComplianceTable(dp)
	if err != nil {
		return "", err
	}
	content += tableHTML

	content += ui.ContainerEnd()

	sidebar := ui.Sidebar("/dashboard/analytics", collapsed, items, h.Registry())
	return ui.RenderPage("ComplyBoard - Analytics", sidebar, content), nil
}

func renderAnalyticsCharts(dp *data.DataProvider) (string, error) {
	gaps, err := dp.GapCounts(10)
	if err != nil {
		return "", fmt.Errorf("failed to compute gap counts: %w", err)
	}
	statusCounts, err := dp.TermStatusCounts(15)
	if err != nil {
		return "", fmt.Errorf("failed to compute term status counts: %w", err)
	}
	contracts, err := dp.GetContracts(dashboard.ContractFilter{})
	if err != nil {
		return "", fmt.Errorf("failed to list contracts: %w", err)
	}

	html := `<div class="row g-4 mb-4">`

	html += `<div class="col-lg-6">`
	html += ui.CardStart("Top Compliance Gaps", "bar-chart-steps")
	html += charts.EmbedHTML(charts.ComplianceGapsBar(gaps))
	html += ui.CardEnd()
	html += `</div>`

	html += `<div class="col-lg-6">`
	html += ui.CardStart("Term Status Breakdown", "stack")
	html += charts.EmbedHTML(charts.TermStatusStackedBar(statusCounts))
	html += ui.CardEnd()
	html += `</div>`

	html += `</div>`

	html += `<div class="row g-4 mb-4">`

	html += `<div class="col-lg-6">`
	html += ui.CardStart("Matching Rate Trend", "graph-up-arrow")
	html += charts.EmbedHTML(charts.MatchingRateLine(contracts))
	html += ui.CardEnd()
	html += `</div>`

	html += `<div class="col-lg-6">`
	html += ui.CardStart("Review Duration", "stopwatch")
	html += charts.EmbedHTML(charts.ReviewDurationBar(contracts))
	html += ui.CardEnd()
	html += `</div>`

	html += `</div>`

	return html, nil
}

func renderTermComplianceTable(dp *data.DataProvider) (string, error) {
	rows, err := dp.TermComplianceRows()
	if err != nil {
		return "", fmt.Errorf("failed to compute term compliance rows: %w", err)
	}

	html := ui.CardStartWithCount("Terms Compliance", "list-check", len(rows))

	html += `<div class="mb-3">`
	html += `<input type="text" id="terms-search" class="form-control" placeholder="Search terms...">`
	html += `</div>`

	if len(rows) == 0 {
		html += components.EmptyTableMessage("No compliance terms configured")
		html += ui.CardEnd()
		return html, nil
	}

	config := components.DefaultTableConfig()
	config.ID = "terms-table"
	html += components.TableStart([]string{"Term", "Met", "Partial", "Missing", "Met Rate"}, config)

	for _, row := range rows {
		rateVariant := "success"
		switch {
		case row.MetRate < 50:
			rateVariant = "danger"
		case row.MetRate < 80:
			rateVariant = "warning"
		}
		html += components.TableRow([]string{
			fmt.Sprintf(`<span class="fw-medium">%s</span>`, escape(row.Heading)),
			components.Badge(fmt.Sprintf("%d", row.Met), "success"),
			components.Badge(fmt.Sprintf("%d", row.Partial), "warning"),
			components.Badge(fmt.Sprintf("%d", row.Missing), "danger"),
			components.Badge(fmt.Sprintf("%d%%", row.MetRate), rateVariant),
		})
	}

	html += components.TableEnd(config.Responsive)
	html += ui.CardEnd()
	return html, nil
}
