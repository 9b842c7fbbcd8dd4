package uistate

import (
	"strings"
	"testing"
)

func TestQueryAllDocumentOrder(t *testing.T) {
	doc := NewElement("div").Append(
		NewElement("span", "nav-text").WithText("first"),
		NewElement("div").Append(
			NewElement("span", "nav-text").WithText("second"),
		),
		NewElement("span", "nav-text").WithText("third"),
	)

	got := doc.QueryAll("nav-text")
	if len(got) != 3 {
		t.Fatalf("QueryAll returned %d elements, want 3", len(got))
	}
	for i, want := range []string{"first", "second", "third"} {
		if got[i].Text != want {
			t.Errorf("match %d: text = %q, want %q", i, got[i].Text, want)
		}
	}

	if matches := doc.QueryAll("absent"); len(matches) != 0 {
		t.Errorf("unknown class matched %d elements, want 0", len(matches))
	}
}

func TestQueryFirst(t *testing.T) {
	doc := NewElement("div").Append(
		NewElement("div", "submenu").WithID("a"),
		NewElement("div", "submenu").WithID("b"),
	)

	first := doc.QueryFirst("submenu")
	if first == nil || first.ID != "a" {
		t.Fatalf("QueryFirst = %+v, want element a", first)
	}
	if doc.QueryFirst("absent") != nil {
		t.Error("QueryFirst on unknown class should be nil")
	}
}

func TestSetStyleEmptyValueResets(t *testing.T) {
	el := NewElement("span")
	el.SetStyle("display", "none")
	if got := el.Style("display"); got != "none" {
		t.Fatalf("display = %q, want none", got)
	}

	el.SetStyle("display", "")
	if got := el.Style("display"); got != "" {
		t.Errorf("display after reset = %q, want empty", got)
	}
	if strings.Contains(el.HTML(), "style=") {
		t.Errorf("reset property still rendered: %s", el.HTML())
	}
}

func TestHTMLEscapesContent(t *testing.T) {
	el := NewElement("span", "nav-text").WithText(`<b>"labels" & such</b>`)
	html := el.HTML()

	if strings.Contains(html, "<b>") {
		t.Errorf("text not escaped: %s", html)
	}
	if !strings.Contains(html, `class="nav-text"`) {
		t.Errorf("class attribute missing: %s", html)
	}
}

func TestHTMLRendersInlineStyles(t *testing.T) {
	el := NewElement("div", "request-review-submenu")
	el.SetStyle("display", "none")
	el.SetStyle("margin-left", "8px")

	html := el.HTML()
	if !strings.Contains(html, `style="display: none; margin-left: 8px"`) {
		t.Errorf("styles not rendered in property order: %s", html)
	}
}
