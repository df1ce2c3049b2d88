package cssmixin

// Dimension is a CSS length: either a bare number interpreted as pixels, or a
// string that already carries its unit ("50%", "2rem", "calc(100% - 10px)").
type Dimension struct {
	px    float64
	raw   string
	isRaw bool
}

// Px returns a pixel dimension.
func Px(n float64) Dimension {
	return Dimension{px: n}
}

// Len returns a dimension whose text is used verbatim.
func Len(s string) Dimension {
	return Dimension{raw: s, isRaw: true}
}

// String implements fmt.Stringer.
func (d Dimension) String() string {
	return AddPixel(d)
}

// AddPixel appends "px" to numeric dimensions. Dimensions built from a
// string are returned unchanged and are not validated.
func AddPixel(d Dimension) string {
	if d.isRaw {
		return d.raw
	}
	return formatNumber(d.px) + "px"
}

// Percentage returns part/whole as a CSS percentage. A zero whole yields
// "Infinity%" or "NaN%".
func Percentage(part, whole float64) string {
	return formatNumber(part/whole*100) + "%"
}

// VW converts a design-canvas pixel value into viewport width units relative
// to canvasWidth.
func VW(value, canvasWidth float64) string {
	return formatNumber(value/canvasWidth*100) + "vw"
}

// Rem converts pixels to rem against the 62.5% root font size (1rem = 10px).
func Rem(px float64) string {
	return formatNumber(px/10) + "rem"
}
