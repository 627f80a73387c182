package host

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var namedColors = map[string]drawing.Color{
	"transparent": drawing.ColorTransparent,
	"black":       {R: 0, G: 0, B: 0, A: 255},
	"white":       {R: 255, G: 255, B: 255, A: 255},
	"gray":        {R: 128, G: 128, B: 128, A: 255},
	"grey":        {R: 128, G: 128, B: 128, A: 255},
	"silver":      {R: 192, G: 192, B: 192, A: 255},
	"red":         {R: 255, G: 0, B: 0, A: 255},
	"maroon":      {R: 128, G: 0, B: 0, A: 255},
	"orange":      {R: 255, G: 165, B: 0, A: 255},
	"yellow":      {R: 255, G: 255, B: 0, A: 255},
	"olive":       {R: 128, G: 128, B: 0, A: 255},
	"lime":        {R: 0, G: 255, B: 0, A: 255},
	"green":       {R: 0, G: 128, B: 0, A: 255},
	"aqua":        {R: 0, G: 255, B: 255, A: 255},
	"cyan":        {R: 0, G: 255, B: 255, A: 255},
	"teal":        {R: 0, G: 128, B: 128, A: 255},
	"blue":        {R: 0, G: 0, B: 255, A: 255},
	"navy":        {R: 0, G: 0, B: 128, A: 255},
	"fuchsia":     {R: 255, G: 0, B: 255, A: 255},
	"magenta":     {R: 255, G: 0, B: 255, A: 255},
	"purple":      {R: 128, G: 0, B: 128, A: 255},
}

// ParseColor understands basic CSS color names, #rgb, #rrggbb, #rrggbbaa and the
// rgb()/rgba() functional forms.
func ParseColor(s string) (drawing.Color, error) {
	raw := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[raw]; ok {
		return c, nil
	}
	switch true {
	case strings.HasPrefix(raw, "#"):
		return parseHex(raw)
	case strings.HasPrefix(raw, "rgba(") && strings.HasSuffix(raw, ")"):
		return parseFunc(raw[5:len(raw)-1], true)
	case strings.HasPrefix(raw, "rgb(") && strings.HasSuffix(raw, ")"):
		return parseFunc(raw[4:len(raw)-1], false)
	}
	return drawing.Color{}, fmt.Errorf("unrecognized color %q", s)
}

// MustParseColor is ParseColor for literals, it panics on bad input.
func MustParseColor(s string) drawing.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic("MustParseColor: " + err.Error())
	}
	return c
}

func parseHex(raw string) (drawing.Color, error) {
	var alpha uint8 = 255
	switch len(raw) {
	case 4:
		raw = "#" + string([]byte{raw[1], raw[1], raw[2], raw[2], raw[3], raw[3]})
	case 9:
		a, err := strconv.ParseUint(raw[7:], 16, 8)
		if err != nil {
			return drawing.Color{}, fmt.Errorf("bad alpha in %q: %w", raw, err)
		}
		alpha = uint8(a)
		raw = raw[:7]
	}
	c, err := colorful.Hex(raw)
	if err != nil {
		return drawing.Color{}, err
	}
	r, g, b := c.RGB255()
	return drawing.Color{R: r, G: g, B: b, A: alpha}, nil
}

func parseFunc(args string, withAlpha bool) (drawing.Color, error) {
	parts := strings.Split(args, ",")
	want := 3
	if withAlpha {
		want = 4
	}
	if len(parts) != want {
		return drawing.Color{}, fmt.Errorf("expected %d components, got %d", want, len(parts))
	}
	var v [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.ParseUint(strings.TrimSpace(parts[i]), 10, 8)
		if err != nil {
			return drawing.Color{}, fmt.Errorf("bad color component %q: %w", parts[i], err)
		}
		v[i] = uint8(n)
	}
	c := drawing.Color{R: v[0], G: v[1], B: v[2], A: 255}
	if withAlpha {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return drawing.Color{}, fmt.Errorf("bad alpha %q: %w", parts[3], err)
		}
		if a < 0 {
			a = 0
		}
		if a > 1 {
			a = 1
		}
		c.A = uint8(a*255 + 0.5)
	}
	return c, nil
}

// Hex renders c as #rrggbb, or #rrggbbaa when it is not fully opaque.
func Hex(c drawing.Color) string {
	if c.A != 255 {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
