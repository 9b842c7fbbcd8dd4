package components

import (
	"fmt"
	"net/url"
)

// DefaultItemsPerPage is the default page size for the reviews table
const DefaultItemsPerPage = 10

// PaginationConfig holds pagination configuration. QueryParams carries the
// active filters so page links keep them.
type PaginationConfig struct {
	CurrentPage  int
	TotalItems   int
	ItemsPerPage int
	BaseURL      string
	QueryParams  url.Values
}

// GetPaginationInfo clamps the page and returns the item window
func GetPaginationInfo(currentPage, totalItems, itemsPerPage int) (startIdx, endIdx, totalPages int) {
	if itemsPerPage <= 0 {
		itemsPerPage = DefaultItemsPerPage
	}
	if currentPage < 1 {
		currentPage = 1
	}

	totalPages = (totalItems + itemsPerPage - 1) / itemsPerPage
	if totalPages < 1 {
		totalPages = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}

	startIdx = (currentPage - 1) * itemsPerPage
	endIdx = startIdx + itemsPerPage
	if endIdx > totalItems {
		endIdx = totalItems
	}
	return startIdx, endIdx, totalPages
}

// Pagination generates Bootstrap pagination controls. Returns empty HTML
// when everything fits on one page.
func Pagination(config PaginationConfig) string {
	if config.ItemsPerPage <= 0 {
		config.ItemsPerPage = DefaultItemsPerPage
	}

	startIdx, endIdx, totalPages := GetPaginationInfo(config.CurrentPage, config.TotalItems, config.ItemsPerPage)
	if totalPages <= 1 {
		return ""
	}
	if config.CurrentPage < 1 {
		config.CurrentPage = 1
	}
	if config.CurrentPage > totalPages {
		config.CurrentPage = totalPages
	}

	buildURL := func(page int) string {
		params := url.Values{}
		for k, v := range config.QueryParams {
			for _, val := range v {
				params.Add(k, val)
			}
		}
		params.Set("page", fmt.Sprintf("%d", page))
		return config.BaseURL + "?" + params.Encode()
	}

	html := `<nav aria-label="Page navigation" class="mt-3"><ul class="pagination justify-content-center">`

	if config.CurrentPage > 1 {
		html += fmt.Sprintf(`<li class="page-item"><a class="page-link" href="%s">&laquo;</a></li>`,
			buildURL(config.CurrentPage-1))
	} else {
		html += `<li class="page-item disabled"><span class="page-link">&laquo;</span></li>`
	}

	for i := 1; i <= totalPages; i++ {
		if i == config.CurrentPage {
			html += fmt.Sprintf(`<li class="page-item active"><span class="page-link">%d</span></li>`, i)
		} else {
			html += fmt.Sprintf(`<li class="page-item"><a class="page-link" href="%s">%d</a></li>`, buildURL(i), i)
		}
	}

	if config.CurrentPage < totalPages {
		html += fmt.Sprintf(`<li class="page-item"><a class="page-link" href="%s">&raquo;</a></li>`,
			buildURL(config.CurrentPage+1))
	} else {
		html += `<li class="page-item disabled"><span class="page-link">&raquo;</span></li>`
	}

	html += `</ul></nav>`
	html += fmt.Sprintf(`<div class="text-center text-muted"><small>Showing %d-%d of %d reviews</small></div>`,
		startIdx+1, endIdx, config.TotalItems)
	return html
}
