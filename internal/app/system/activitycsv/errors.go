package activitycsv

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"
)

// RowError describes a catalog line that was dropped.
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
	Raw    string `json:"raw,omitempty"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// FormatRowErrors formats dropped-line diagnostics for the warning banner.
// If maxShow is <= 0, it defaults to 5.
func FormatRowErrors(errors []RowError, maxShow int) template.HTML {
	if len(errors) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(strconv.Itoa(len(errors)))
	if len(errors) == 1 {
		b.WriteString(" línea del catálogo fue descartada:<br>")
	} else {
		b.WriteString(" líneas del catálogo fueron descartadas:<br>")
	}

	if maxShow <= 0 {
		maxShow = 5
	}
	if len(errors) < maxShow {
		maxShow = len(errors)
	}

	for i := 0; i < maxShow; i++ {
		e := errors[i]
		b.WriteString("• ")
		if e.Line > 0 {
			b.WriteString("línea ")
			b.WriteString(strconv.Itoa(e.Line))
			b.WriteString(": ")
		}
		b.WriteString(template.HTMLEscapeString(e.Reason))
		b.WriteString("<br>")
	}

	if len(errors) > maxShow {
		b.WriteString("... y ")
		b.WriteString(strconv.Itoa(len(errors) - maxShow))
		b.WriteString(" más.")
	}

	return template.HTML(b.String())
}
