package host

import "math"

// Scale maps logical values on one axis to pixel coordinates.
type Scale interface {
	PixelForValue(v float64) float64
	Min() float64
	Max() float64
}

// LinearScale maps [Minimum, Maximum] onto the pixel span [Start, End]. For a value axis
// Start is the bottom pixel and End the top, so pixels grow downward as values shrink.
type LinearScale struct {
	Minimum float64
	Maximum float64
	Start   float64
	End     float64
}

func (s LinearScale) Min() float64 { return s.Minimum }

func (s LinearScale) Max() float64 { return s.Maximum }

func (s LinearScale) PixelForValue(v float64) float64 {
	delta := s.Maximum - s.Minimum
	if delta == 0 {
		return s.Start
	}
	return s.Start + (v-s.Minimum)/delta*(s.End-s.Start)
}

// Visible reports whether v falls inside the scale's pixel extent.
func Visible(s Scale, v float64) bool {
	p := s.PixelForValue(v)
	a, b := s.PixelForValue(s.Min()), s.PixelForValue(s.Max())
	if a > b {
		a, b = b, a
	}
	return p >= a && p <= b
}

// valueRange returns the min and max over ys, widened by one unit on each side when the
// range is degenerate so pixel mapping never divides by zero.
func valueRange(ys []float64) (min, max float64) {
	min, max = math.MaxFloat64, -math.MaxFloat64
	for _, y := range ys {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		if y < min {
			min = y
		}
		if y > max {
			max = y
		}
	}
	switch true {
	case min > max:
		return 0, 1
	case min == max:
		return min - 1, max + 1
	}
	return min, max
}
