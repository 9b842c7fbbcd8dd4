package ui

import (
	"github.com/complyboard/complyboard/log"
	"github.com/complyboard/complyboard/model"
	"github.com/complyboard/complyboard/uistate"
)

// NavItem represents a sidebar navigation item
type NavItem struct {
	URL  string
	Icon string // bootstrap icon name
	Text string
}

// DefaultNavItems returns the sidebar navigation items
func DefaultNavItems() []NavItem {
	return []NavItem{
		{"/dashboard/analytics", "bar-chart-line", "Analytics"},
		{"/dashboard/reviews", "check2-square", "Completed Reviews"},
		{"/dashboard/standards", "journal-check", "Standards"},
	}
}

// Sidebar renders the collapsible sidebar. The nav tree is built as an
// element tree, the bound toggle callback is invoked with the current
// width style, and the mutated tree is serialized. Label visibility is
// therefore decided by the same callback the tests exercise.
func Sidebar(currentPage string, collapsed bool, items []model.ReviewRequestItem, registry *uistate.Registry) string {
	width := uistate.SidebarExpandedWidth
	if collapsed {
		width = uistate.SidebarCollapsedWidth
	}

	tree := buildSidebarTree(currentPage, collapsed, items)
	tree.SetStyle("width", width)
	tree.SetStyle("min-width", width)

	style := &uistate.SidebarStyle{Width: width, MinWidth: width}
	if _, err := registry.Invoke(uistate.NamespaceSidebar, uistate.FuncToggleNavText, tree, style); err != nil {
		// an unbound callback leaves labels visible, the page still renders
		log.Log.Warnf("Sidebar callback failed: %v", err)
	}

	return tree.HTML()
}

func buildSidebarTree(currentPage string, collapsed bool, items []model.ReviewRequestItem) *uistate.Element {
	sidebar := uistate.NewElement("aside", "sidebar").WithID("sidebar")

	toggleIcon := "chevron-left"
	if collapsed {
		toggleIcon = "chevron-right"
	}

	header := uistate.NewElement("div", "sidebar-header").Append(
		uistate.NewElement("span", "sidebar-brand", uistate.ClassNavText).WithText("Complyboard"),
		toggleButton(collapsed, toggleIcon),
	)
	sidebar.Append(header)

	nav := uistate.NewElement("nav", "sidebar-nav")
	for _, item := range DefaultNavItems() {
		classes := []string{"sidebar-link"}
		if item.URL == currentPage {
			classes = append(classes, "active")
		}
		link := uistate.NewElement("a", classes...).
			WithAttr("href", item.URL).
			Append(
				uistate.NewElement("i", "bi", "bi-"+item.Icon),
				uistate.NewElement("span", uistate.ClassNavText).WithText(item.Text),
			)
		nav.Append(link)
	}

	// request-review entry with its submenu of intake links
	requestLink := uistate.NewElement("a", "sidebar-link", "request-review-toggle").
		WithAttr("href", "#").
		WithAttr("data-bs-toggle", "collapse").
		WithAttr("data-bs-target", "#request-review-submenu").
		Append(
			uistate.NewElement("i", "bi", "bi-plus-circle"),
			uistate.NewElement("span", uistate.ClassNavText).WithText("Request Review"),
		)
	nav.Append(requestLink)

	submenu := uistate.NewElement("div", uistate.ClassRequestReviewSubmenu, "collapse").
		WithID("request-review-submenu")
	for _, item := range items {
		submenu.Append(
			uistate.NewElement("a", "submenu-link").
				WithAttr("href", item.URL).
				WithAttr("target", "_blank").
				WithText(item.Label),
		)
	}
	nav.Append(submenu)

	sidebar.Append(nav)
	return sidebar
}

func toggleButton(collapsed bool, icon string) *uistate.Element {
	action := "collapse"
	if collapsed {
		action = "expand"
	}
	return uistate.NewElement("button", "sidebar-toggle").
		WithID("sidebar-toggle").
		WithAttr("type", "button").
		WithAttr("title", action+" sidebar").
		Append(uistate.NewElement("i", "bi", "bi-"+icon))
}
