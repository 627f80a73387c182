package threshold

import (
	"github.com/frameloss/threshold/host"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Match returns the color of the first rule, in the given order, that value satisfies.
func Match(rules []Rule, value float64) (drawing.Color, bool) {
	for _, rule := range rules {
		if Evaluate(value, rule) {
			return rule.Color, true
		}
	}
	return drawing.Color{}, false
}

// PointColors assigns one color per value, falling back to base where no rule matches.
func PointColors(rules []Rule, values []float64, base drawing.Color) []drawing.Color {
	colors := make([]drawing.Color, len(values))
	for i, v := range values {
		c, ok := Match(rules, v)
		if !ok {
			c = base
		}
		colors[i] = c
	}
	return colors
}

// Recolor rewrites the dataset's point colors and replaces its border with a gradient
// built against yScale. Everything is derived from rules and the points, so running it
// again on unchanged input yields the same result.
func Recolor(rules []Rule, ds *host.Dataset, yScale host.Scale) {
	colors := PointColors(rules, ds.Values(), ds.BackgroundColor)
	border := make([]drawing.Color, len(colors))
	copy(border, colors)

	ds.BorderGradient = Synthesize(rules, yScale, ds.BackgroundColor)
	ds.PointBackgroundColors = colors
	ds.PointBorderColors = border
}
