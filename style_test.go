package cssmixin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoin(t *testing.T) {
	assert.Equal(t, Style("a: 1; b: 2;"), Join("a: 1;", "", "  ", " b: 2; "))
	assert.Equal(t, Style(""), Join())
}

func TestRule(t *testing.T) {
	assert.Equal(t, Style("body { font-size: 2.4rem; }"), Rule("body", FontRem(24)))
	assert.Equal(t, Style("img {}"), Rule("img"))
	assert.Equal(t,
		Style("img { width: 100%; height: auto; vertical-align: bottom; }"),
		Rule("img", Size(Len("100%"), Len("auto")), Declare("vertical-align", "bottom")))
}

func TestHelpersArePure(t *testing.T) {
	m := New(DefaultConfig())
	calls := []func() Style{
		func() Style { return Size(Px(500), Px(250)) },
		func() Style { return Center(Fixed{Width: 500, Height: 250}) },
		func() Style { return FontRem(24, WithLineHeight(34), WithLetterSpacing(100)) },
		func() Style { return m.FontVW(24) },
		func() Style { return BgImgMultiple(Layers{FileName: []string{"a.png"}}) },
		func() Style { return ToggleDisplayTransition(false, 0.3, "ease-out") },
		func() Style { s, _ := m.Wrap(SP, TextReplace()); return s },
	}
	for _, call := range calls {
		assert.Equal(t, call(), call())
	}
}
