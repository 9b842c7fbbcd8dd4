package uistate

import "testing"

func sidebarFixture(withSubmenu bool) *Element {
	nav := NewElement("div", "sidebar")
	for _, label := range []string{"Analytics", "Completed Reviews", "Standards"} {
		item := NewElement("div", "nav-item").Append(
			NewElement("span", ClassNavText).WithText(label),
		)
		nav.Append(item)
	}
	if withSubmenu {
		nav.Append(NewElement("div", ClassRequestReviewSubmenu))
	}
	return nav
}

func TestToggleNavTextNilStyle(t *testing.T) {
	doc := sidebarFixture(true)
	before := doc.HTML()

	res := ToggleNavText(doc, nil)

	if !res.IsNoUpdate() {
		t.Error("nil style should return the no-update sentinel")
	}
	if got := doc.HTML(); got != before {
		t.Errorf("nil style must not mutate the tree:\nbefore: %s\nafter:  %s", before, got)
	}
}

func TestToggleNavTextCollapseByWidth(t *testing.T) {
	doc := sidebarFixture(true)

	ToggleNavText(doc, &SidebarStyle{Width: SidebarCollapsedWidth})

	labels := doc.QueryAll(ClassNavText)
	if len(labels) != 3 {
		t.Fatalf("expected 3 nav labels, got %d", len(labels))
	}
	for i, el := range labels {
		if got := el.Style("display"); got != "none" {
			t.Errorf("label %d: display = %q, want none", i, got)
		}
	}
}

func TestToggleNavTextCollapseByMinWidth(t *testing.T) {
	doc := sidebarFixture(false)

	// minWidth alone triggers collapse even with an expanded width
	ToggleNavText(doc, &SidebarStyle{Width: SidebarExpandedWidth, MinWidth: SidebarCollapsedWidth})

	for i, el := range doc.QueryAll(ClassNavText) {
		if got := el.Style("display"); got != "none" {
			t.Errorf("label %d: display = %q, want none", i, got)
		}
	}
}

func TestToggleNavTextExpandRestoresDefault(t *testing.T) {
	doc := sidebarFixture(false)
	ToggleNavText(doc, &SidebarStyle{Width: SidebarCollapsedWidth})

	ToggleNavText(doc, &SidebarStyle{Width: SidebarExpandedWidth})

	for i, el := range doc.QueryAll(ClassNavText) {
		if got := el.Style("display"); got != "" {
			t.Errorf("label %d: display = %q, want empty string reset", i, got)
		}
	}
}

func TestToggleNavTextSubmenuHiddenOnlyOnCollapse(t *testing.T) {
	doc := sidebarFixture(true)
	submenu := doc.QueryFirst(ClassRequestReviewSubmenu)
	if submenu == nil {
		t.Fatal("fixture is missing the submenu")
	}

	ToggleNavText(doc, &SidebarStyle{Width: SidebarCollapsedWidth})
	if got := submenu.Style("display"); got != "none" {
		t.Fatalf("collapsed: submenu display = %q, want none", got)
	}

	// expanding leaves the submenu untouched, it is not un-hidden
	ToggleNavText(doc, &SidebarStyle{Width: SidebarExpandedWidth})
	if got := submenu.Style("display"); got != "none" {
		t.Errorf("expanded: submenu display = %q, want none (left as-is)", got)
	}
}

func TestToggleNavTextMissingSubmenu(t *testing.T) {
	doc := sidebarFixture(false)

	res := ToggleNavText(doc, &SidebarStyle{Width: SidebarCollapsedWidth})

	if !res.IsNoUpdate() {
		t.Error("missing submenu should not change the return value")
	}
	for i, el := range doc.QueryAll(ClassNavText) {
		if got := el.Style("display"); got != "none" {
			t.Errorf("label %d: display = %q, want none", i, got)
		}
	}
}

func TestToggleNavTextAlwaysNoUpdate(t *testing.T) {
	styles := []*SidebarStyle{
		nil,
		{Width: SidebarCollapsedWidth},
		{MinWidth: SidebarCollapsedWidth},
		{Width: SidebarExpandedWidth},
		{},
	}
	for i, style := range styles {
		doc := sidebarFixture(true)
		if res := ToggleNavText(doc, style); !res.IsNoUpdate() {
			t.Errorf("case %d: result is not the no-update sentinel", i)
		}
	}
}

func TestToggleNavTextIdempotent(t *testing.T) {
	doc := sidebarFixture(true)
	style := &SidebarStyle{Width: SidebarCollapsedWidth}

	ToggleNavText(doc, style)
	first := doc.HTML()
	ToggleNavText(doc, style)

	if got := doc.HTML(); got != first {
		t.Errorf("repeat invocation changed the tree:\nfirst:  %s\nsecond: %s", first, got)
	}
}

func TestSidebarStyleCollapsed(t *testing.T) {
	cases := []struct {
		style SidebarStyle
		want  bool
	}{
		{SidebarStyle{Width: "60px"}, true},
		{SidebarStyle{MinWidth: "60px"}, true},
		{SidebarStyle{Width: "250px"}, false},
		{SidebarStyle{Width: "60PX"}, false}, // exact string match, no normalization
		{SidebarStyle{Width: "60px "}, false},
		{SidebarStyle{}, false},
	}
	for _, c := range cases {
		if got := c.style.Collapsed(); got != c.want {
			t.Errorf("Collapsed(%+v) = %v, want %v", c.style, got, c.want)
		}
	}
}

func TestRegistryBindAndInvoke(t *testing.T) {
	reg := NewRegistry()
	if err := RegisterSidebarCallbacks(reg); err != nil {
		t.Fatalf("RegisterSidebarCallbacks: %v", err)
	}

	doc := sidebarFixture(true)
	res, err := reg.Invoke(NamespaceSidebar, FuncToggleNavText, doc, &SidebarStyle{Width: SidebarCollapsedWidth})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if !res.IsNoUpdate() {
		t.Error("invoked callback should return the no-update sentinel")
	}
	if got := doc.QueryAll(ClassNavText)[0].Style("display"); got != "none" {
		t.Errorf("invoked callback did not collapse labels: display = %q", got)
	}
}

func TestRegistryRejectsRebind(t *testing.T) {
	reg := NewRegistry()
	if err := RegisterSidebarCallbacks(reg); err != nil {
		t.Fatalf("first bind: %v", err)
	}
	if err := RegisterSidebarCallbacks(reg); err == nil {
		t.Error("rebinding the same key should fail")
	}
}

func TestRegistryUnknownBinding(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Invoke("sidebar", "missing", sidebarFixture(false), nil); err == nil {
		t.Error("invoking an unbound callback should fail")
	}
}
