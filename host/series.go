package host

import (
	"fmt"
	"math"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
)

// datasetSeries renders a Dataset as a go-chart series. The stroke follows the
// dataset's gradient, the dots follow the per-point colors.
type datasetSeries struct {
	ds   *Dataset
	axis chart.YAxisType
}

func (s datasetSeries) GetName() string { return s.ds.Label }

func (s datasetSeries) GetYAxis() chart.YAxisType { return s.axis }

func (s datasetSeries) GetStyle() chart.Style {
	return chart.Style{
		StrokeColor: s.ds.BorderColor,
		StrokeWidth: s.ds.BorderWidth,
		DotWidth:    s.ds.PointRadius,
		DotColor:    s.ds.BackgroundColor,
	}
}

func (s datasetSeries) Len() int { return len(s.ds.Points) }

func (s datasetSeries) GetValues(index int) (float64, float64) {
	p := s.ds.Points[index]
	return p.X, p.Y
}

func (s datasetSeries) Validate() error {
	if len(s.ds.Points) == 0 {
		return fmt.Errorf("dataset %q: no points", s.ds.Label)
	}
	return nil
}

func (s datasetSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	style := s.GetStyle().InheritFrom(defaults)
	height := float64(canvasBox.Bottom - canvasBox.Top)
	offset := func(py float64) float64 {
		if height <= 0 {
			return 0
		}
		return (float64(canvasBox.Bottom) - py) / height
	}
	var cuts []float64
	for _, b := range s.ds.BorderGradient.Boundaries() {
		cuts = append(cuts, float64(canvasBox.Bottom)-b*height)
	}

	px := make([]float64, len(s.ds.Points))
	py := make([]float64, len(s.ds.Points))
	for i, p := range s.ds.Points {
		px[i] = float64(canvasBox.Left + xrange.Translate(p.X))
		py[i] = float64(canvasBox.Bottom - yrange.Translate(p.Y))
	}

	r.SetStrokeWidth(style.GetStrokeWidth())
	for i := 1; i < len(px); i++ {
		for _, seg := range splitSegment(px[i-1], py[i-1], px[i], py[i], cuts) {
			c := style.GetStrokeColor()
			if s.ds.BorderGradient != nil {
				c = s.ds.BorderGradient.At(offset((seg.Y0 + seg.Y1) / 2))
			}
			r.SetStrokeColor(c)
			r.MoveTo(round(seg.X0), round(seg.Y0))
			r.LineTo(round(seg.X1), round(seg.Y1))
			r.Stroke()
		}
	}

	radius := style.GetDotWidth()
	if radius <= 0 {
		return
	}
	r.SetStrokeWidth(1)
	for i := range px {
		bg, border := s.ds.pointColors(i)
		r.SetFillColor(bg)
		r.SetStrokeColor(border)
		r.Circle(radius, round(px[i]), round(py[i]))
		r.FillStroke()
	}
}

// Segment is a piece of a polyline stroked in a single color.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// splitSegment cuts the line (x0,y0)-(x1,y1) wherever it crosses one of the horizontal
// pixel rows in cuts. The pieces join end to end and keep the original direction.
func splitSegment(x0, y0, x1, y1 float64, cuts []float64) []Segment {
	dy := y1 - y0
	params := []float64{0}
	if dy != 0 {
		for _, c := range cuts {
			u := (c - y0) / dy
			if u > 0 && u < 1 {
				params = append(params, u)
			}
		}
	}
	params = append(params, 1)
	sort.Float64s(params)

	out := make([]Segment, 0, len(params)-1)
	for i := 1; i < len(params); i++ {
		a, b := params[i-1], params[i]
		if a == b {
			continue
		}
		out = append(out, Segment{
			X0: x0 + a*(x1-x0),
			Y0: y0 + a*dy,
			X1: x0 + b*(x1-x0),
			Y1: y0 + b*dy,
		})
	}
	return out
}

func round(v float64) int {
	return int(math.Round(v))
}

var _ chart.Series = datasetSeries{}
var _ chart.ValuesProvider = datasetSeries{}

