package uistate

// Selector classes this callback depends on. They are a contract with the
// sidebar markup and must track it.
const (
	// ClassNavText marks navigation label text. Cardinality: many.
	ClassNavText = "nav-text"

	// ClassRequestReviewSubmenu marks the request-review submenu.
	// Cardinality: zero or one.
	ClassRequestReviewSubmenu = "request-review-submenu"
)

// Widths the sidebar collapse toggle assigns. The collapsed width doubles
// as the collapse sentinel: detection is exact string comparison against
// it, not unit parsing, because the value is an application convention.
const (
	SidebarCollapsedWidth = "60px"
	SidebarExpandedWidth  = "250px"
)

// Namespace and function name the nav-text toggle is bound under.
const (
	NamespaceSidebar  = "sidebar"
	FuncToggleNavText = "toggleNavText"
)

// SidebarStyle describes the sidebar's current width state. Produced by the
// collapse toggle; read-only here.
type SidebarStyle struct {
	Width    string `json:"width"`
	MinWidth string `json:"minWidth"`
}

// Collapsed reports whether the style describes a collapsed sidebar. Either
// field matching the collapsed width is sufficient.
func (s SidebarStyle) Collapsed() bool {
	return s.Width == SidebarCollapsedWidth || s.MinWidth == SidebarCollapsedWidth
}

// ToggleNavText hides nav label text when the sidebar collapses and lets it
// revert to its CSS default when the sidebar expands. A nil style means the
// sidebar has not rendered yet; nothing is touched.
//
// The request-review submenu is only ever force-hidden on collapse. Expand
// leaves it alone: expanded is the submenu's initial state and it manages
// its own open/closed state from there.
func ToggleNavText(doc *Element, style *SidebarStyle) Result {
	if style == nil {
		return NoUpdate()
	}

	collapsed := style.Collapsed()
	for _, el := range doc.QueryAll(ClassNavText) {
		if collapsed {
			el.SetStyle("display", "none")
		} else {
			el.SetStyle("display", "")
		}
	}

	if submenu := doc.QueryFirst(ClassRequestReviewSubmenu); submenu != nil && collapsed {
		submenu.SetStyle("display", "none")
	}

	return NoUpdate()
}

// RegisterSidebarCallbacks binds the sidebar callbacks into a registry.
func RegisterSidebarCallbacks(reg *Registry) error {
	return reg.Bind(NamespaceSidebar, FuncToggleNavText, ToggleNavText)
}
