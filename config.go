package cssmixin

import (
	"fmt"
	"sort"
)

// Breakpoint labels a media query mode.
type Breakpoint string

// Built-in breakpoint labels.
const (
	// SP is the narrow (smartphone) mode.
	SP Breakpoint = "sp"
	// PC is the wide (desktop) mode.
	PC Breakpoint = "pc"
)

// Mode holds the design reference for one breakpoint.
type Mode struct {
	CanvasWidth float64 // Design canvas width in px, the base for vw conversion
	Breakpoint  int     // Viewport width in px where this mode starts or ends
}

// Config holds the design references for the sp and pc modes and the media
// query condition for each breakpoint label.
type Config struct {
	SP Mode
	PC Mode

	// MediaQueries maps a label to a condition such as "max-width: 767px".
	// When empty, conditions for sp and pc are derived from the modes.
	MediaQueries map[Breakpoint]string
}

// DefaultConfig returns the reference configuration: a 750px mobile canvas
// and a 1440px desktop canvas split at 768px.
func DefaultConfig() Config {
	return Config{
		SP: Mode{CanvasWidth: 750, Breakpoint: 767},
		PC: Mode{CanvasWidth: 1440, Breakpoint: 768},
	}
}

// mediaQueries returns the configured conditions, deriving sp/pc from the
// modes when none are set.
func (c Config) mediaQueries() map[Breakpoint]string {
	if len(c.MediaQueries) > 0 {
		out := make(map[Breakpoint]string, len(c.MediaQueries))
		for label, cond := range c.MediaQueries {
			out[label] = cond
		}
		return out
	}
	return map[Breakpoint]string{
		SP: fmt.Sprintf("max-width: %dpx", c.SP.Breakpoint),
		PC: fmt.Sprintf("min-width: %dpx", c.PC.Breakpoint),
	}
}

// Mixin binds the helpers that depend on configuration. It is immutable
// after New and safe for concurrent use.
type Mixin struct {
	config Config
	media  map[Breakpoint]MediaFunc
	labels []Breakpoint
}

// New builds a Mixin. The media wrappers are created here, one per
// configured label, and never change afterwards.
func New(config Config) *Mixin {
	queries := config.mediaQueries()
	config.MediaQueries = queries

	m := &Mixin{
		config: config,
		media:  make(map[Breakpoint]MediaFunc, len(queries)),
		labels: make([]Breakpoint, 0, len(queries)),
	}
	for label, cond := range queries {
		m.media[label] = mediaWrapper(cond)
		m.labels = append(m.labels, label)
	}
	sort.Slice(m.labels, func(i, j int) bool { return m.labels[i] < m.labels[j] })
	return m
}

// Config returns a copy of the configuration the Mixin was built from.
func (m *Mixin) Config() Config {
	c := m.config
	c.MediaQueries = c.mediaQueries()
	return c
}

// VWSP converts a pixel value on the sp canvas to vw.
func (m *Mixin) VWSP(value float64) string {
	return VW(value, m.config.SP.CanvasWidth)
}

// VWPC converts a pixel value on the pc canvas to vw.
func (m *Mixin) VWPC(value float64) string {
	return VW(value, m.config.PC.CanvasWidth)
}

// FontVW is FontPixel with the size expressed in vw of the sp canvas.
func (m *Mixin) FontVW(fontSize float64, opts ...FontOption) Style {
	return font(fontSize, m.VWSP(fontSize), opts)
}
