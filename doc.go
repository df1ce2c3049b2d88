// Package cssmixin provides small, stateless builders for CSS text fragments.
//
// Each helper maps design tokens (pixel sizes, canvas-relative rates,
// typography settings, background layers) to CSS declarations that are
// meant to be interpolated into larger stylesheets.
//
// # Units
//
//	cssmixin.AddPixel(cssmixin.Px(10))     // "10px"
//	cssmixin.AddPixel(cssmixin.Len("50%")) // "50%"
//	cssmixin.Percentage(320, 960)          // "33.33333333333333%"
//
// # Breakpoint-aware helpers
//
// Helpers that depend on the design canvas or on media queries hang off a
// [Mixin] built from a [Config]:
//
//	m := cssmixin.New(cssmixin.DefaultConfig())
//	m.VWSP(650) // "86.66666666666667vw"
//	sp, _ := m.Media(cssmixin.SP)
//	sp(cssmixin.Rule(".pc", cssmixin.Declare("display", "none")))
//
// No helper validates its input. NaN, infinities and negative sizes flow
// through to the generated text unchanged.
package cssmixin
