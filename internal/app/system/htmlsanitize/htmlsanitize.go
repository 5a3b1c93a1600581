// Package htmlsanitize cleans catalog text before it is rendered as HTML.
//
// Catalog detail fields may carry light formatting (<b>, <br>, links). They
// are passed through a bluemonday policy and only then marked safe for
// templates; every other field is rendered as escaped text.
package htmlsanitize

import (
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").OnElements("span", "p", "ul", "ol", "li")
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// Sanitize removes unsafe markup from s.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}

// SanitizeToHTML sanitizes s and marks the result safe for templates.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}

// IsPlainText reports whether s contains no markup.
func IsPlainText(s string) bool {
	return !strings.ContainsAny(s, "<>")
}

// PrepareForDisplay returns s ready for a template: plain text is escaped,
// markup is sanitized.
func PrepareForDisplay(s string) template.HTML {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if IsPlainText(s) {
		return template.HTML(template.HTMLEscapeString(s))
	}
	return SanitizeToHTML(s)
}
