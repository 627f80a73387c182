package host

import (
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ColorStop anchors a color at a normalized offset along a gradient.
type ColorStop struct {
	Offset float64
	Color  drawing.Color
}

// Gradient is a vertical linear gradient along the value axis. Offset 0 sits at the
// axis minimum, offset 1 at the axis maximum.
type Gradient struct {
	Stops []ColorStop
}

func NewGradient() *Gradient {
	return &Gradient{Stops: make([]ColorStop, 0)}
}

// SolidGradient spans the whole axis with a single color.
func SolidGradient(c drawing.Color) *Gradient {
	g := NewGradient()
	g.AddColorStop(0, c)
	g.AddColorStop(1, c)
	return g
}

// AddColorStop appends a stop. Offsets are clamped into [0,1] and never allowed to fall
// below the previous stop.
func (g *Gradient) AddColorStop(offset float64, c drawing.Color) {
	switch true {
	case offset != offset, offset < 0:
		offset = 0
	case offset > 1:
		offset = 1
	}
	if n := len(g.Stops); n > 0 && offset < g.Stops[n-1].Offset {
		offset = g.Stops[n-1].Offset
	}
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
}

// At returns the color at offset t. Between two stops the colors are blended linearly,
// where several stops share an offset the last one wins for everything at or above it.
func (g *Gradient) At(t float64) drawing.Color {
	if g == nil || len(g.Stops) == 0 {
		return drawing.ColorTransparent
	}
	i := sort.Search(len(g.Stops), func(i int) bool {
		return g.Stops[i].Offset > t
	})
	switch i {
	case 0:
		return g.Stops[0].Color
	case len(g.Stops):
		return g.Stops[len(g.Stops)-1].Color
	}
	lo, hi := g.Stops[i-1], g.Stops[i]
	span := hi.Offset - lo.Offset
	if span <= 0 || lo.Color == hi.Color {
		return lo.Color
	}
	return blend(lo.Color, hi.Color, (t-lo.Offset)/span)
}

// Boundaries lists the distinct offsets strictly inside (0,1) where the color may change.
func (g *Gradient) Boundaries() []float64 {
	if g == nil {
		return nil
	}
	out := make([]float64, 0, len(g.Stops))
	for _, s := range g.Stops {
		if s.Offset <= 0 || s.Offset >= 1 {
			continue
		}
		if n := len(out); n > 0 && out[n-1] == s.Offset {
			continue
		}
		out = append(out, s.Offset)
	}
	return out
}

// Solid reports whether every stop carries the same color.
func (g *Gradient) Solid() bool {
	if g == nil || len(g.Stops) == 0 {
		return true
	}
	for _, s := range g.Stops[1:] {
		if s.Color != g.Stops[0].Color {
			return false
		}
	}
	return true
}

func blend(a, b drawing.Color, t float64) drawing.Color {
	ca := toColorful(a)
	cb := toColorful(b)
	m := ca.BlendRgb(cb, t).Clamped()
	r, gr, bl := m.RGB255()
	alpha := float64(a.A) + (float64(b.A)-float64(a.A))*t
	return drawing.Color{R: r, G: gr, B: bl, A: uint8(alpha + 0.5)}
}

func toColorful(c drawing.Color) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
