package cssmixin

// FontOption adds optional declarations to the font helpers.
type FontOption func(*fontOptions)

type fontOptions struct {
	lineHeight    *float64
	letterSpacing *float64
}

// WithLineHeight emits a unitless line-height matching the given pixel
// line height.
func WithLineHeight(px float64) FontOption {
	return func(o *fontOptions) {
		o.lineHeight = &px
	}
}

// WithLetterSpacing emits a letter-spacing in thousandths of an em.
func WithLetterSpacing(units float64) FontOption {
	return func(o *fontOptions) {
		o.letterSpacing = &units
	}
}

// LineHeight emits line-height as the ratio of lineHeight to fontSize.
func LineHeight(fontSize, lineHeight float64) Style {
	return Declare("line-height", formatNumber(lineHeight/fontSize))
}

// LetterSpacing emits letter-spacing in em, where 1000 units is 1em.
func LetterSpacing(units float64) Style {
	return Declare("letter-spacing", formatNumber(units/1000)+"em")
}

// FontPixel emits a font-size in px, preceded by the optional
// letter-spacing and line-height declarations.
func FontPixel(fontSize float64, opts ...FontOption) Style {
	return font(fontSize, formatNumber(fontSize)+"px", opts)
}

// FontRem is FontPixel with the size expressed in rem.
func FontRem(fontSize float64, opts ...FontOption) Style {
	return font(fontSize, Rem(fontSize), opts)
}

func font(fontSize float64, size string, opts []FontOption) Style {
	var o fontOptions
	for _, opt := range opts {
		opt(&o)
	}

	var style Style
	if o.letterSpacing != nil {
		style = Join(style, LetterSpacing(*o.letterSpacing))
	}
	if o.lineHeight != nil {
		style = Join(style, LineHeight(fontSize, *o.lineHeight))
	}
	return Join(style, Declare("font-size", size))
}

// SmallText scales text below the browser's minimum font size.
func SmallText(scale float64) Style {
	return Join(
		Declare("display", "inline-block"),
		Declare("transform-origin", "0 0"),
		Declare("transform", "scale("+formatNumber(scale)+")"),
	)
}

// TextReplace hides an element's text while keeping it in the document,
// for image replacement.
func TextReplace() Style {
	return Join(
		Declare("overflow", "hidden"),
		Declare("text-decoration", "none"),
		Declare("text-indent", "100%"),
		Declare("white-space", "nowrap"),
	)
}
