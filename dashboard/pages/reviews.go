package pages

import (
	"fmt"
	"net/url"

	"github.com/complyboard/complyboard/dashboard"
	"github.com/complyboard/complyboard/dashboard/data"
	"github.com/complyboard/complyboard/dashboard/ui"
	"github.com/complyboard/complyboard/dashboard/ui/components"
	"github.com/complyboard/complyboard/model"
)

// RenderReviews generates the completed reviews HTML page
func RenderReviews(h *dashboard.Handler, collapsed bool, filter dashboard.ContractFilter, page int) (string, error) {
	dp := data.NewDataProvider(h.Store(), h.Repo())

	contracts, err := dp.GetContracts(filter)
	if err != nil {
		return "", fmt.Errorf("failed to list contracts: %w", err)
	}
	reviewers, err := dp.Reviewers()
	if err != nil {
		return "", fmt.Errorf("failed to list reviewers: %w", err)
	}
	items, err := h.Repo().RequestItems()
	if err != nil {
		return "", fmt.Errorf("failed to load request items: %w", err)
	}

	startIdx, endIdx, _ := components.GetPaginationInfo(page, len(contracts), components.DefaultItemsPerPage)

	content := ui.ContainerStart()
	content += ui.PageTitle("Completed Reviews", "All contract compliance reviews and their outcomes")

	content += renderReviewFilters(filter, reviewers)

	content += ui.CardStartWithCount("Reviews", "check2-square", len(contracts))
	if len(contracts) == 0 {
		content += components.EmptyTableMessage("No reviews match the current filters")
	} else {
		content += renderReviewsTable(contracts[startIdx:endIdx])
		content += components.Pagination(components.PaginationConfig{
			CurrentPage:  page,
			TotalItems:   len(contracts),
			ItemsPerPage: components.DefaultItemsPerPage,
			BaseURL:      "/dashboard/reviews",
			QueryParams:  filterQuery(filter),
		})
	}
	content += ui.CardEnd()

	content += ui.ContainerEnd()

	sidebar := ui.Sidebar("/dashboard/reviews", collapsed, items, h.Registry())
	return ui.RenderPage("ComplyBoard - Completed Reviews", sidebar, content), nil
}

func renderReviewFilters(filter dashboard.ContractFilter, reviewers []string) string {
	html := `<div class="card mb-4"><div class="card-body">`
	html += `<form method="GET" action="/dashboard/reviews" class="row g-3 align-items-end">`

	html += `<div class="col-md-2">`
	html += `<label class="form-label" for="filter-status">Status</label>`
	html += `<select class="form-select" id="filter-status" name="status">`
	html += selectOption("", "All", string(filter.Status))
	html += selectOption(string(model.StatusCompliant), "Compliant", string(filter.Status))
	html += selectOption(string(model.StatusNeedsReview), "Needs Review", string(filter.Status))
	html += selectOption(string(model.StatusNonCompliant), "Non-Compliant", string(filter.Status))
	html += `</select></div>`

	html += `<div class="col-md-2">`
	html += `<label class="form-label" for="filter-risk">Risk</label>`
	html += `<select class="form-select" id="filter-risk" name="risk">`
	html += selectOption("", "All", string(filter.Risk))
	html += selectOption(string(model.RiskLow), "Low", string(filter.Risk))
	html += selectOption(string(model.RiskMedium), "Medium", string(filter.Risk))
	html += selectOption(string(model.RiskHigh), "High", string(filter.Risk))
	html += `</select></div>`

	html += `<div class="col-md-2">`
	html += `<label class="form-label" for="filter-reviewer">Reviewer</label>`
	html += `<select class="form-select" id="filter-reviewer" name="reviewer">`
	html += selectOption("", "All", filter.Reviewer)
	for _, r := range reviewers {
		html += selectOption(r, r, filter.Reviewer)
	}
	html += `</select></div>`

	html += `<div class="col-md-2">`
	html += `<label class="form-label" for="filter-band">Terms Matching</label>`
	html += `<select class="form-select" id="filter-band" name="band">`
	html += selectOption("", "All", string(filter.Band))
	html += selectOption(string(model.BandExcellent), "Excellent (90%+)", string(filter.Band))
	html += selectOption(string(model.BandGood), "Good (70-89%)", string(filter.Band))
	html += selectOption(string(model.BandFair), "Fair (50-69%)", string(filter.Band))
	html += selectOption(string(model.BandPoor), "Poor (<50%)", string(filter.Band))
	html += `</select></div>`

	html += `<div class="col-md-3">`
	html += `<label class="form-label" for="filter-search">Search</label>`
	html += fmt.Sprintf(`<input type="text" class="form-control" id="filter-search" name="search" value="%s" placeholder="Contract or vendor...">`,
		escape(filter.Search))
	html += `</div>`

	html += `<div class="col-md-1">`
	html += `<button type="submit" class="btn btn-primary w-100">Filter</button>`
	html += `</div>`

	html += `</form></div></div>`
	return html
}

func renderReviewsTable(contracts []*model.Contract) string {
	config := components.DefaultTableConfig()
	html := components.TableStart([]string{
		"Contract Name", "Vendor", "Review Date", "Status", "Risk",
		"Terms Matching", "Points Matching", "Jira ID", "Athena ID", "Reviewer", "Actions",
	}, config)

	for _, c := range contracts {
		html += components.TableRow([]string{
			fmt.Sprintf(`<span class="fw-medium">%s</span>`, escape(dashboard.Truncate(c.Name, 48))),
			escape(c.Vendor),
			dashboard.FormatReviewDate(c.ReviewDate),
			components.StatusBadge(c.Status),
			components.RiskBadge(c.RiskLevel),
			components.RateBadge(c.TermMatchingRate),
			components.RateBadge(c.PointsMatchingRate),
			components.ExternalLinkButton(c.JiraID(), c.JiraEngagementURL),
			components.ExternalLinkButton(c.AthenaID(), c.AthenaURL),
			escape(c.Reviewer),
			components.ViewButton("/dashboard/contracts/" + c.ID),
		})
	}

	html += components.TableEnd(config.Responsive)
	return html
}

// filterQuery converts the active filter into query params so pagination
// links keep it
func filterQuery(f dashboard.ContractFilter) url.Values {
	params := url.Values{}
	if f.Status != "" {
		params.Set("status", string(f.Status))
	}
	if f.Risk != "" {
		params.Set("risk", string(f.Risk))
	}
	if f.Reviewer != "" {
		params.Set("reviewer", f.Reviewer)
	}
	if f.Band != "" {
		params.Set("band", string(f.Band))
	}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	return params
}

func selectOption(value, label, selected string) string {
	sel := ""
	if value == selected {
		sel = " selected"
	}
	return fmt.Sprintf(`<option value="%s"%s>%s</option>`, escape(value), sel, escape(label))
}
