package pages

import "html/template"

func escape(s string) string {
	return template.HTMLEscapeString(s)
}
