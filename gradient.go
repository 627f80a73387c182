package threshold

import (
	"sort"

	"github.com/frameloss/threshold/host"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Synthesize builds the banded stroke gradient that mirrors the point coloring along
// the value axis of y. Rules are walked in ascending threshold order while a running
// lower boundary advances through the bands:
//   - lt/le rules paint from the boundary up to their own stop,
//   - the first gt/ge rule fills the unmatched middle with base up to its stop, and
//     every gt/ge rule then paints up to the next rule's stop, or to 1 when last,
//   - without any gt/ge rule a final base band runs up to 1.
func Synthesize(rules []Rule, y host.Scale, base drawing.Color) *host.Gradient {
	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value < sorted[j].Value
	})

	g := host.NewGradient()
	var lower, nextStop float64
	var inserted bool
	for i, rule := range sorted {
		stop := StopFor(y, rule.Value)
		if i < len(sorted)-1 {
			nextStop = StopFor(y, sorted[i+1].Value)
		} else {
			nextStop = 1
		}

		switch rule.Mode.Bound() {
		case LowerBound:
			g.AddColorStop(lower, rule.Color)
			g.AddColorStop(stop, rule.Color)
			lower = stop
		case UpperBound:
			if !inserted {
				g.AddColorStop(lower, base)
				g.AddColorStop(stop, base)
				lower = stop
				inserted = true
			}
			g.AddColorStop(lower, rule.Color)
			g.AddColorStop(nextStop, rule.Color)
			lower = nextStop
		case NoBound:
		}
	}
	if !inserted {
		g.AddColorStop(lower, base)
		g.AddColorStop(1, base)
	}
	return g
}

// StopFor maps value to a gradient offset: its pixel distance below the axis maximum,
// as a fraction of the axis height, clamped to [0,1] and inverted so 0 is the axis
// minimum. A collapsed axis puts everything at 1.
func StopFor(y host.Scale, value float64) float64 {
	top := y.PixelForValue(y.Max())
	height := y.PixelForValue(y.Min()) - top
	var stop float64
	if height != 0 {
		stop = (y.PixelForValue(value) - top) / height
	}
	if stop < 0 || stop != stop {
		stop = 0
	}
	if stop > 1 {
		stop = 1
	}
	return 1 - stop
}
