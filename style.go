package cssmixin

import "strings"

// Style is a fragment of CSS text: one or more declarations, or whole rules.
type Style string

// String returns the CSS text.
func (s Style) String() string {
	return string(s)
}

// IsEmpty reports whether the fragment contains no CSS.
func (s Style) IsEmpty() bool {
	return strings.TrimSpace(string(s)) == ""
}

// Declare builds a single "property: value;" declaration.
func Declare(property, value string) Style {
	return Style(property + ": " + value + ";")
}

// Join concatenates fragments with single spaces, dropping empty ones.
func Join(styles ...Style) Style {
	parts := make([]string, 0, len(styles))
	for _, s := range styles {
		if s.IsEmpty() {
			continue
		}
		parts = append(parts, strings.TrimSpace(string(s)))
	}
	return Style(strings.Join(parts, " "))
}

// Rule wraps body in a "selector { ... }" block.
func Rule(selector string, body ...Style) Style {
	inner := Join(body...)
	if inner == "" {
		return Style(selector + " {}")
	}
	return Style(selector + " { " + string(inner) + " }")
}
