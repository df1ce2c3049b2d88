package cssmixin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineHeightAndLetterSpacing(t *testing.T) {
	assert.Equal(t, Style("line-height: 1.4166666666666667;"), LineHeight(24, 34))
	assert.Equal(t, Style("line-height: 1.5;"), LineHeight(20, 30))
	assert.Equal(t, Style("letter-spacing: 0.1em;"), LetterSpacing(100))
	assert.Equal(t, Style("letter-spacing: -0.05em;"), LetterSpacing(-50))
}

func TestFontHelpers(t *testing.T) {
	m := New(DefaultConfig())

	tests := []struct {
		name string
		got  Style
		want Style
	}{
		{
			name: "rem size only",
			got:  FontRem(20),
			want: "font-size: 2rem;",
		},
		{
			name: "rem with line height and letter spacing",
			got:  FontRem(24, WithLineHeight(34), WithLetterSpacing(100)),
			want: "letter-spacing: 0.1em; line-height: 1.4166666666666667; font-size: 2.4rem;",
		},
		{
			name: "option order does not change declaration order",
			got:  FontRem(24, WithLetterSpacing(100), WithLineHeight(34)),
			want: "letter-spacing: 0.1em; line-height: 1.4166666666666667; font-size: 2.4rem;",
		},
		{
			name: "pixel with line height only",
			got:  FontPixel(20, WithLineHeight(30)),
			want: "line-height: 1.5; font-size: 20px;",
		},
		{
			name: "pixel with letter spacing only",
			got:  FontPixel(16, WithLetterSpacing(50)),
			want: "letter-spacing: 0.05em; font-size: 16px;",
		},
		{
			name: "vw on sp canvas",
			got:  m.FontVW(30),
			want: "font-size: 4vw;",
		},
		{
			name: "zero letter spacing still emitted",
			got:  FontPixel(12, WithLetterSpacing(0)),
			want: "letter-spacing: 0em; font-size: 12px;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestSmallTextAndTextReplace(t *testing.T) {
	assert.Equal(t,
		Style("display: inline-block; transform-origin: 0 0; transform: scale(0.8);"),
		SmallText(0.8))
	assert.Equal(t,
		Style("overflow: hidden; text-decoration: none; text-indent: 100%; white-space: nowrap;"),
		TextReplace())
}
