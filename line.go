package threshold

import (
	"math"

	"github.com/frameloss/threshold/host"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const thresholdLineWidth = 1.5

// LineCanvas is the part of a go-chart renderer the line drawer needs.
type LineCanvas interface {
	SetStrokeColor(c drawing.Color)
	SetStrokeWidth(width float64)
	MoveTo(x, y int)
	LineTo(x, y int)
	Stroke()
}

// DrawThresholdLine strokes a horizontal reference line at value across the full x
// extent. Values outside the visible y range are skipped and false is returned.
func DrawThresholdLine(canvas LineCanvas, x, y host.Scale, value float64, color drawing.Color) bool {
	if !host.Visible(y, value) {
		return false
	}
	py := int(math.Round(y.PixelForValue(value)))
	x0 := int(math.Round(x.PixelForValue(x.Min())))
	x1 := int(math.Round(x.PixelForValue(x.Max())))
	canvas.SetStrokeColor(color)
	canvas.SetStrokeWidth(thresholdLineWidth)
	canvas.MoveTo(x0, py)
	canvas.LineTo(x1, py)
	canvas.Stroke()
	return true
}

// LineOverlay wraps DrawThresholdLine for a rule so it can be handed to a chart.
func LineOverlay(rule Rule) host.Overlay {
	return func(r chart.Renderer, x, y host.Scale) {
		DrawThresholdLine(r, x, y, rule.Value, rule.Color)
	}
}
