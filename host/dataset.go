package host

import (
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	DefaultPointRadius = 3.0
	DefaultBorderWidth = 2.5
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dataset is one named line on the chart. BackgroundColor is the base color every
// derived field falls back to. Empty axis IDs are set to XAxisID and YAxisID.
type Dataset struct {
	Label           string
	Points          []Point
	BackgroundColor drawing.Color
	PointRadius     float64
	BorderWidth     float64
	XAxisID         string
	YAxisID         string

	// derived on every update cycle
	BorderColor           drawing.Color
	BorderGradient        *Gradient
	PointBackgroundColors []drawing.Color
	PointBorderColors     []drawing.Color
}

func (ds *Dataset) Values() []float64 {
	ys := make([]float64, len(ds.Points))
	for i, p := range ds.Points {
		ys[i] = p.Y
	}
	return ys
}

func (ds *Dataset) assignAxes() {
	if ds.XAxisID == "" {
		ds.XAxisID = XAxisID
	}
	if ds.YAxisID == "" {
		ds.YAxisID = YAxisID
	}
}

// applyDefaults is the host's own dataset update. Anything a plugin left unset or
// sized wrong falls back to the base color.
func (ds *Dataset) applyDefaults() {
	if ds.PointRadius == 0 {
		ds.PointRadius = DefaultPointRadius
	}
	if ds.BorderWidth == 0 {
		ds.BorderWidth = DefaultBorderWidth
	}
	if ds.BorderColor == (drawing.Color{}) {
		ds.BorderColor = ds.BackgroundColor
	}
	if len(ds.PointBackgroundColors) != len(ds.Points) {
		ds.PointBackgroundColors = fill(len(ds.Points), ds.BackgroundColor)
	}
	if len(ds.PointBorderColors) != len(ds.Points) {
		ds.PointBorderColors = fill(len(ds.Points), ds.BackgroundColor)
	}
}

func fill(n int, c drawing.Color) []drawing.Color {
	out := make([]drawing.Color, n)
	for i := range out {
		out[i] = c
	}
	return out
}

func (ds *Dataset) pointColors(i int) (bg, border drawing.Color) {
	bg, border = ds.BackgroundColor, ds.BackgroundColor
	if i < len(ds.PointBackgroundColors) {
		bg = ds.PointBackgroundColors[i]
	}
	if i < len(ds.PointBorderColors) {
		border = ds.PointBorderColors[i]
	}
	return
}
