package render

import (
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

func escapeHTML(s string) string {
	return string(util.EscapeHTML([]byte(s)))
}

func escapeURL(s string) string {
	return string(util.URLEscape([]byte(s), false))
}

// safeHref escapes href for use in an attribute. Dangerous schemes such as
// javascript: are dropped.
func safeHref(href string) string {
	if html.IsDangerousURL([]byte(href)) {
		return ""
	}
	return escapeHTML(escapeURL(href))
}
