package cssmixin

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "integer", in: 10, want: "10"},
		{name: "fraction", in: 2.4, want: "2.4"},
		{name: "negative", in: -125.5, want: "-125.5"},
		{name: "negative zero", in: math.Copysign(0, -1), want: "0"},
		{name: "small fixed", in: 0.000001, want: "0.000001"},
		{name: "small exponent", in: 1e-7, want: "1e-7"},
		{name: "small exponent with fraction", in: 1.5e-7, want: "1.5e-7"},
		{name: "large fixed", in: 1.2345678901234568e20, want: "123456789012345680000"},
		{name: "large exponent", in: 1e21, want: "1e+21"},
		{name: "nan", in: math.NaN(), want: "NaN"},
		{name: "positive infinity", in: math.Inf(1), want: "Infinity"},
		{name: "negative infinity", in: math.Inf(-1), want: "-Infinity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatNumber(tt.in))
		})
	}
}

func TestAddPixel(t *testing.T) {
	assert.Equal(t, "10px", AddPixel(Px(10)))
	assert.Equal(t, "12.5px", AddPixel(Px(12.5)))
	assert.Equal(t, "50%", AddPixel(Len("50%")))
	assert.Equal(t, "calc(100% - 10px)", AddPixel(Len("calc(100% - 10px)")))
	// Strings are not validated.
	assert.Equal(t, "banana", AddPixel(Len("banana")))
	assert.Equal(t, "10px", Px(10).String())
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, "33.33333333333333%", Percentage(320, 960))
	assert.Equal(t, "50%", Percentage(1, 2))
	assert.Equal(t, "Infinity%", Percentage(1, 0))
	assert.Equal(t, "NaN%", Percentage(0, 0))
	assert.Equal(t, "-Infinity%", Percentage(-1, 0))
}

func TestVW(t *testing.T) {
	assert.Equal(t, "86.66666666666667vw", VW(650, 750))
	assert.Equal(t, "100vw", VW(1440, 1440))
}

func TestRem(t *testing.T) {
	assert.Equal(t, "2rem", Rem(20))
	assert.Equal(t, "2.4rem", Rem(24))
}
