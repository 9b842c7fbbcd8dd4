// Package uistate models the rendered dashboard fragments whose visibility
// is driven by UI state, and the callback registry that binds state changes
// to mutations on those fragments.
package uistate

import (
	"fmt"
	"html/template"
	"sort"
	"strings"
)

// Element is one node of a rendered document fragment. Elements are built
// fresh on every render; callbacks mutate inline styles on them before the
// tree is serialized.
type Element struct {
	Tag      string
	ID       string
	Classes  []string
	Attrs    map[string]string
	Styles   map[string]string
	Text     string
	Children []*Element
}

// NewElement creates an element with the given tag and classes.
func NewElement(tag string, classes ...string) *Element {
	return &Element{Tag: tag, Classes: classes}
}

// WithID sets the element id and returns the element for chaining.
func (e *Element) WithID(id string) *Element {
	e.ID = id
	return e
}

// WithText sets the element's text content and returns it.
func (e *Element) WithText(text string) *Element {
	e.Text = text
	return e
}

// WithAttr sets an attribute and returns the element.
func (e *Element) WithAttr(key, value string) *Element {
	if e.Attrs == nil {
		e.Attrs = make(map[string]string)
	}
	e.Attrs[key] = value
	return e
}

// Append adds child elements and returns the parent.
func (e *Element) Append(children ...*Element) *Element {
	e.Children = append(e.Children, children...)
	return e
}

// HasClass reports whether the element carries the given class.
func (e *Element) HasClass(class string) bool {
	for _, c := range e.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// SetStyle sets an inline style property. An empty value removes the
// property so the CSS-defined default applies again.
func (e *Element) SetStyle(property, value string) {
	if value == "" {
		delete(e.Styles, property)
		return
	}
	if e.Styles == nil {
		e.Styles = make(map[string]string)
	}
	e.Styles[property] = value
}

// Style returns the inline value of a style property, or the empty string
// when the property is unset.
func (e *Element) Style(property string) string {
	return e.Styles[property]
}

// QueryAll returns every element in the tree, in document order, that
// carries the given class. A class matching nothing yields an empty slice.
func (e *Element) QueryAll(class string) []*Element {
	var matches []*Element
	e.walk(func(el *Element) bool {
		if el.HasClass(class) {
			matches = append(matches, el)
		}
		return true
	})
	return matches
}

// QueryFirst returns the first element in document order carrying the given
// class, or nil when none matches.
func (e *Element) QueryFirst(class string) *Element {
	var match *Element
	e.walk(func(el *Element) bool {
		if el.HasClass(class) {
			match = el
			return false
		}
		return true
	})
	return match
}

// walk visits the tree depth-first. The visitor returns false to stop.
func (e *Element) walk(visit func(*Element) bool) bool {
	if !visit(e) {
		return false
	}
	for _, child := range e.Children {
		if !child.walk(visit) {
			return false
		}
	}
	return true
}

// HTML serializes the element tree. Text content and attribute values are
// escaped; inline styles are emitted in a style attribute.
func (e *Element) HTML() string {
	var b strings.Builder
	e.render(&b)
	return b.String()
}

func (e *Element) render(b *strings.Builder) {
	b.WriteString("<")
	b.WriteString(e.Tag)
	if e.ID != "" {
		fmt.Fprintf(b, ` id="%s"`, template.HTMLEscapeString(e.ID))
	}
	if len(e.Classes) > 0 {
		fmt.Fprintf(b, ` class="%s"`, template.HTMLEscapeString(strings.Join(e.Classes, " ")))
	}
	if len(e.Styles) > 0 {
		fmt.Fprintf(b, ` style="%s"`, template.HTMLEscapeString(inlineStyle(e.Styles)))
	}
	for _, key := range sortedKeys(e.Attrs) {
		fmt.Fprintf(b, ` %s="%s"`, key, template.HTMLEscapeString(e.Attrs[key]))
	}
	if isVoidTag(e.Tag) {
		b.WriteString("/>")
		return
	}
	b.WriteString(">")
	if e.Text != "" {
		b.WriteString(template.HTMLEscapeString(e.Text))
	}
	for _, child := range e.Children {
		child.render(b)
	}
	fmt.Fprintf(b, "</%s>", e.Tag)
}

func inlineStyle(styles map[string]string) string {
	parts := make([]string, 0, len(styles))
	for _, prop := range sortedKeys(styles) {
		parts = append(parts, prop+": "+styles[prop])
	}
	return strings.Join(parts, "; ")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func isVoidTag(tag string) bool {
	switch tag {
	case "br", "hr", "img", "input", "link", "meta":
		return true
	}
	return false
}
