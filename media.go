package cssmixin

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownBreakpoint is returned when a label has no media query.
var ErrUnknownBreakpoint = errors.New("unknown breakpoint")

// MediaFunc wraps a style block in an @media rule.
type MediaFunc func(block Style) Style

// mediaWrapper accepts either a bare feature ("max-width: 767px"), which is
// parenthesized, or a full query list ("screen and (max-width: 767px)"),
// which is used verbatim.
func mediaWrapper(condition string) MediaFunc {
	prelude := "@media " + condition
	if strings.Contains(condition, ":") && !strings.Contains(condition, "(") {
		prelude = "@media (" + condition + ")"
	}
	return func(block Style) Style {
		return Rule(prelude, block)
	}
}

// Media returns the wrapper for label.
func (m *Mixin) Media(label Breakpoint) (MediaFunc, bool) {
	fn, ok := m.media[label]
	return fn, ok
}

// Wrap wraps block in the media query for label.
func (m *Mixin) Wrap(label Breakpoint, block Style) (Style, error) {
	fn, ok := m.media[label]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownBreakpoint, label)
	}
	return fn(block), nil
}

// Breakpoints lists the configured labels in lexical order.
func (m *Mixin) Breakpoints() []Breakpoint {
	out := make([]Breakpoint, len(m.labels))
	copy(out, m.labels)
	return out
}
