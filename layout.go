package cssmixin

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotNumeric is returned by ParseFixed when a size has no leading integer.
var ErrNotNumeric = errors.New("not a numeric size")

// Size emits width and height declarations.
func Size(width, height Dimension) Style {
	return Join(
		Declare("width", AddPixel(width)),
		Declare("height", AddPixel(height)),
	)
}

// Square emits equal width and height declarations.
func Square(side Dimension) Style {
	return Size(side, side)
}

// ContentCentering centers a block of the given width horizontally.
func ContentCentering(width Dimension) Style {
	return Join(
		Declare("margin-left", "auto"),
		Declare("margin-right", "auto"),
		Declare("position", "relative"),
		Declare("width", AddPixel(width)),
	)
}

// Centering selects one of the absolute centering strategies understood by
// Center: Fixed, Stretch, Translate or None.
type Centering interface {
	centering() Style
}

// Fixed centers a box of known pixel size using negative margins.
type Fixed struct {
	Width  int
	Height int
}

// Stretch pins the element to all four edges of its positioned ancestor.
type Stretch struct{}

// Translate centers at 50%/50% and corrects with a transform.
type Translate struct{}

// None emits nothing.
type None struct{}

// Center renders the chosen centering strategy. A nil strategy behaves
// like None.
func Center(c Centering) Style {
	if c == nil {
		return ""
	}
	return c.centering()
}

func (f Fixed) centering() Style {
	return Join(
		Size(Px(float64(f.Width)), Px(float64(f.Height))),
		Declare("position", "absolute"),
		Declare("top", "50%"),
		Declare("left", "50%"),
		Declare("margin", fmt.Sprintf("%spx 0 0 %spx",
			formatNumber(float64(f.Height)/-2),
			formatNumber(float64(f.Width)/-2))),
	)
}

func (Stretch) centering() Style {
	return Join(
		Declare("position", "absolute"),
		Declare("top", "0"),
		Declare("right", "0"),
		Declare("bottom", "0"),
		Declare("left", "0"),
	)
}

func (Translate) centering() Style {
	return Join(
		Declare("position", "absolute"),
		Declare("top", "50%"),
		Declare("left", "50%"),
		Declare("transform", "translate(-50%, -50%)"),
	)
}

func (None) centering() Style {
	return ""
}

// ParseFixed builds a Fixed from pixel literals such as "500" or "500px".
// Only the leading integer of each value is used. An empty height means a
// square of the given width.
func ParseFixed(width, height string) (Fixed, error) {
	w, err := leadingInt(width)
	if err != nil {
		return Fixed{}, fmt.Errorf("width %q: %w", width, err)
	}
	if strings.TrimSpace(height) == "" {
		return Fixed{Width: w, Height: w}, nil
	}
	h, err := leadingInt(height)
	if err != nil {
		return Fixed{}, fmt.Errorf("height %q: %w", height, err)
	}
	return Fixed{Width: w, Height: h}, nil
}

// leadingInt mirrors parseInt(s, 10): optional whitespace and sign, then as
// many decimal digits as are present.
func leadingInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, ErrNotNumeric
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotNumeric, err)
	}
	return n, nil
}
