package cssmixin

import (
	"fmt"
	"strings"
)

// DefaultBgPosition is used by BgImg when no position is given.
const DefaultBgPosition = "center top"

// BgOption sets optional parts of a BgImg declaration.
type BgOption func(*bgOptions)

type bgOptions struct {
	repeat string
	color  string
	size   string
}

// WithRepeat sets the background-repeat part of the shorthand.
func WithRepeat(repeat string) BgOption {
	return func(o *bgOptions) { o.repeat = repeat }
}

// WithColor sets the background-color part of the shorthand.
func WithColor(color string) BgOption {
	return func(o *bgOptions) { o.color = color }
}

// WithSize emits a background-size declaration before the shorthand.
func WithSize(size string) BgOption {
	return func(o *bgOptions) { o.size = size }
}

// BgImg emits a single-layer background shorthand.
func BgImg(file, position string, opts ...BgOption) Style {
	var o bgOptions
	for _, opt := range opts {
		opt(&o)
	}
	if position == "" {
		position = DefaultBgPosition
	}

	parts := []string{"url(" + file + ")", position}
	for _, p := range []string{o.repeat, o.color} {
		if p != "" {
			parts = append(parts, p)
		}
	}

	var size Style
	if o.size != "" {
		size = Declare("background-size", o.size)
	}
	return Join(size, Declare("background", strings.Join(parts, " ")))
}

// Layers describes a multi-layer background. The slices are read
// positionally; only FileName decides how many layers are emitted.
type Layers struct {
	FileName  []string
	Positions []string
	Repeat    []string
	BgColor   []string
	Sizes     []string
}

// BgImgMultiple emits one background-image declaration with a layer per
// file name. A slice shorter than FileName contributes an empty segment for
// each missing index.
func BgImgMultiple(l Layers) Style {
	layers := make([]string, len(l.FileName))
	for i, file := range l.FileName {
		layers[i] = fmt.Sprintf("url(%s) %s %s %s %s",
			file, at(l.Positions, i), at(l.Repeat, i), at(l.BgColor, i), at(l.Sizes, i))
	}
	return Declare("background-image", strings.Join(layers, ", "))
}

// at returns s[i], or "" when i is out of range.
func at(s []string, i int) string {
	if i < 0 || i >= len(s) {
		return ""
	}
	return s[i]
}
