package threshold

import (
	"math"
	"testing"

	"github.com/frameloss/threshold/host"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// testScale maps 0..30 onto a 300px tall canvas, pixels growing downward.
func testScale() host.LinearScale {
	return host.LinearScale{Minimum: 0, Maximum: 30, Start: 300, End: 0}
}

type stop struct {
	offset float64
	color  drawing.Color
}

func assertStops(t *testing.T, g *host.Gradient, want []stop) {
	t.Helper()
	if len(g.Stops) != len(want) {
		t.Fatalf("expected %d stops, got %d: %+v", len(want), len(g.Stops), g.Stops)
	}
	for i, w := range want {
		got := g.Stops[i]
		if math.Abs(got.Offset-w.offset) > 1e-9 || got.Color != w.color {
			t.Errorf("stop %d: got (%.4f, %v), want (%.4f, %v)", i, got.Offset, got.Color, w.offset, w.color)
		}
	}
}

func assertMonotonic(t *testing.T, g *host.Gradient) {
	t.Helper()
	prev := 0.0
	for i, s := range g.Stops {
		if s.Offset < 0 || s.Offset > 1 {
			t.Errorf("stop %d offset %v outside [0,1]", i, s.Offset)
		}
		if s.Offset < prev {
			t.Errorf("stop %d offset %v below previous %v", i, s.Offset, prev)
		}
		prev = s.Offset
	}
}

// ── stops ──

func TestStopFor(t *testing.T) {
	y := testScale()
	cases := map[float64]float64{
		0:   0,
		10:  1.0 / 3,
		15:  0.5,
		30:  1,
		45:  1, // above the axis maximum
		-10: 0, // below the axis minimum
	}
	for v, want := range cases {
		if got := StopFor(y, v); math.Abs(got-want) > 1e-9 {
			t.Errorf("StopFor(%v) = %v, want %v", v, got, want)
		}
	}
}

func TestStopForCollapsedAxis(t *testing.T) {
	y := host.LinearScale{Minimum: 5, Maximum: 5, Start: 300, End: 0}
	if got := StopFor(y, 5); got != 1 {
		t.Errorf("collapsed axis stop = %v, want 1", got)
	}
}

// ── synthesis ──

func TestSynthesizeScenario(t *testing.T) {
	g := Synthesize(scenarioRules(), testScale(), gray)
	assertStops(t, g, []stop{
		{0, blue}, {1.0 / 3, blue},
		{1.0 / 3, gray}, {2.0 / 3, gray},
		{2.0 / 3, red}, {1, red},
	})
	assertMonotonic(t, g)

	if c := g.At(0.1); c != blue {
		t.Errorf("below the lower threshold expected blue, got %v", c)
	}
	if c := g.At(0.5); c != gray {
		t.Errorf("between thresholds expected gray, got %v", c)
	}
	if c := g.At(0.9); c != red {
		t.Errorf("above the upper threshold expected red, got %v", c)
	}
}

func TestSynthesizeEmptyRules(t *testing.T) {
	g := Synthesize(nil, testScale(), gray)
	assertStops(t, g, []stop{{0, gray}, {1, gray}})
	if !g.Solid() {
		t.Error("expected a solid gradient")
	}
}

func TestSynthesizeDoesNotReorderCallerRules(t *testing.T) {
	rules := []Rule{
		{Mode: ModeGE, Value: 20, Color: red},
		{Mode: ModeLT, Value: 10, Color: blue},
	}
	g := Synthesize(rules, testScale(), gray)
	if rules[0].Value != 20 || rules[1].Value != 10 {
		t.Fatalf("caller's rules were reordered: %+v", rules)
	}
	assertStops(t, g, []stop{
		{0, blue}, {1.0 / 3, blue},
		{1.0 / 3, gray}, {2.0 / 3, gray},
		{2.0 / 3, red}, {1, red},
	})
}

func TestSynthesizeOnlyLowerBounds(t *testing.T) {
	rules := []Rule{
		{Mode: ModeLT, Value: 10, Color: blue},
		{Mode: ModeLE, Value: 20, Color: gold},
	}
	g := Synthesize(rules, testScale(), gray)
	assertStops(t, g, []stop{
		{0, blue}, {1.0 / 3, blue},
		{1.0 / 3, gold}, {2.0 / 3, gold},
		{2.0 / 3, gray}, {1, gray},
	})
}

func TestSynthesizeConsecutiveUpperBounds(t *testing.T) {
	rules := []Rule{
		{Mode: ModeGE, Value: 10, Color: gold},
		{Mode: ModeGT, Value: 20, Color: red},
	}
	g := Synthesize(rules, testScale(), gray)
	// each upper band runs to the next rule's stop
	assertStops(t, g, []stop{
		{0, gray}, {1.0 / 3, gray},
		{1.0 / 3, gold}, {2.0 / 3, gold},
		{2.0 / 3, red}, {1, red},
	})
}

func TestSynthesizeRuleAboveAxis(t *testing.T) {
	rules := []Rule{{Mode: ModeGE, Value: 50, Color: red}}
	g := Synthesize(rules, testScale(), gray)
	assertStops(t, g, []stop{
		{0, gray}, {1, gray},
		{1, red}, {1, red},
	})
	assertMonotonic(t, g)
}

func TestSynthesizeRuleBelowAxis(t *testing.T) {
	rules := []Rule{{Mode: ModeLT, Value: -50, Color: blue}}
	g := Synthesize(rules, testScale(), gray)
	assertStops(t, g, []stop{
		{0, blue}, {0, blue},
		{0, gray}, {1, gray},
	})
}

func TestSynthesizeSkipsUnknownModes(t *testing.T) {
	rules := []Rule{{Mode: ModeUnknown, Value: 10, Color: red}}
	g := Synthesize(rules, testScale(), gray)
	assertStops(t, g, []stop{{0, gray}, {1, gray}})
}

func TestSynthesizeStopsStayOrdered(t *testing.T) {
	sets := [][]Rule{
		{{Mode: ModeGE, Value: 10, Color: gold}, {Mode: ModeLT, Value: 20, Color: blue}},
		{{Mode: ModeGT, Value: 5, Color: gold}, {Mode: ModeLE, Value: 12, Color: blue}, {Mode: ModeGE, Value: 28, Color: red}},
		{{Mode: ModeLT, Value: -5, Color: blue}, {Mode: ModeGE, Value: 40, Color: red}, {Mode: ModeGE, Value: 35, Color: gold}},
		{{Mode: ModeLE, Value: 15, Color: blue}, {Mode: ModeLE, Value: 15, Color: gold}, {Mode: ModeGT, Value: 15, Color: red}},
	}
	for _, rules := range sets {
		assertMonotonic(t, Synthesize(rules, testScale(), gray))
	}
}
