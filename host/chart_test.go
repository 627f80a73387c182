package host

import (
	"bytes"
	"errors"
	"image/png"
	"reflect"
	"strings"
	"testing"

	"github.com/wcharczuk/go-chart/v2"
)

type recordingPlugin struct {
	calls      []string
	update     bool
	draw       bool
	overlayRan bool
}

func (p *recordingPlugin) AfterInit(c *Chart) { p.calls = append(p.calls, "afterInit") }

func (p *recordingPlugin) BeforeDatasetsUpdate(c *Chart) bool {
	p.calls = append(p.calls, "beforeDatasetsUpdate")
	return p.update
}

func (p *recordingPlugin) BeforeDraw(c *Chart) bool {
	p.calls = append(p.calls, "beforeDraw")
	c.AddOverlay(func(r chart.Renderer, x, y Scale) {
		p.overlayRan = true
	})
	return p.draw
}

func (p *recordingPlugin) Destroy(c *Chart) { p.calls = append(p.calls, "destroy") }

func sampleDataset() *Dataset {
	return &Dataset{
		Label:           "rtt",
		Points:          []Point{{X: 0, Y: 12}, {X: 1, Y: 30}, {X: 2, Y: 18}},
		BackgroundColor: red,
	}
}

func TestChartLifecycle(t *testing.T) {
	p := &recordingPlugin{update: true, draw: true}
	c := New(Options{Width: 320, Height: 200}, []*Dataset{sampleDataset()}, p)
	if _, err := c.RenderPNG(); err != nil {
		t.Fatalf("render: %v", err)
	}
	c.Destroy()

	want := []string{"afterInit", "beforeDatasetsUpdate", "beforeDraw", "destroy"}
	if !reflect.DeepEqual(p.calls, want) {
		t.Errorf("hooks ran as %v, want %v", p.calls, want)
	}
	if !p.overlayRan {
		t.Error("overlay registered in BeforeDraw was never drawn")
	}
}

func TestChartDefaultsFillColors(t *testing.T) {
	ds := sampleDataset()
	c := New(Options{}, []*Dataset{ds})
	c.Update()
	if len(ds.PointBackgroundColors) != 3 || len(ds.PointBorderColors) != 3 {
		t.Fatalf("defaults not applied: %+v", ds)
	}
	for i := range ds.Points {
		if ds.PointBackgroundColors[i] != red || ds.PointBorderColors[i] != red {
			t.Errorf("point %d not defaulted to the base color", i)
		}
	}
	if ds.BorderColor != red || ds.PointRadius != DefaultPointRadius || ds.BorderWidth != DefaultBorderWidth {
		t.Errorf("dataset defaults %+v", ds)
	}
}

func TestChartPluginCanSkipDefaults(t *testing.T) {
	ds := sampleDataset()
	c := New(Options{}, []*Dataset{ds}, &recordingPlugin{update: false, draw: true})
	c.Update()
	if ds.PointBackgroundColors != nil {
		t.Errorf("host defaults ran although the plugin declined: %v", ds.PointBackgroundColors)
	}
}

func TestChartDrawCancelled(t *testing.T) {
	c := New(Options{}, []*Dataset{sampleDataset()}, &recordingPlugin{update: true, draw: false})
	var buf bytes.Buffer
	if err := c.Render(chart.PNG, &buf); !errors.Is(err, ErrDrawCancelled) {
		t.Fatalf("expected ErrDrawCancelled, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("cancelled draw wrote %d bytes", buf.Len())
	}
}

func TestChartNoData(t *testing.T) {
	c := New(Options{}, []*Dataset{{Label: "empty"}})
	if _, err := c.RenderPNG(); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestChartScales(t *testing.T) {
	c := New(Options{Width: 500, Height: 300}, []*Dataset{sampleDataset()})
	x, y := c.XScale(), c.YScale()
	if x.Min() != 0 || x.Max() != 2 {
		t.Errorf("x scale [%v,%v]", x.Min(), x.Max())
	}
	if y.Min() != 12 || y.Max() != 30 {
		t.Errorf("y scale [%v,%v]", y.Min(), y.Max())
	}
	if y.PixelForValue(y.Max()) >= y.PixelForValue(y.Min()) {
		t.Error("y pixels should grow downward")
	}

	c.Options.YBounds = &Bounds{Min: 0, Max: 100}
	c.Update()
	if y := c.YScale(); y.Min() != 0 || y.Max() != 100 {
		t.Errorf("fixed bounds ignored: [%v,%v]", y.Min(), y.Max())
	}
}

func TestChartScalesPerAxis(t *testing.T) {
	rtt := sampleDataset()
	loss := &Dataset{Label: "loss", Points: []Point{{X: 0, Y: 0.5}, {X: 4, Y: 2}}, BackgroundColor: blue, YAxisID: "loss"}
	c := New(Options{Width: 500, Height: 300, YBounds: &Bounds{Min: 0, Max: 50}}, []*Dataset{rtt, loss})

	if rtt.XAxisID != XAxisID || rtt.YAxisID != YAxisID || loss.XAxisID != XAxisID {
		t.Errorf("axis IDs not defaulted: %q/%q, %q", rtt.XAxisID, rtt.YAxisID, loss.XAxisID)
	}
	if y := c.ScaleFor(rtt); y.Min() != 0 || y.Max() != 50 {
		t.Errorf("default y scale [%v,%v]", y.Min(), y.Max())
	}
	if y := c.ScaleFor(loss); y.Min() != 0.5 || y.Max() != 2 {
		t.Errorf("loss scale [%v,%v], bounds apply to the default axis only", y.Min(), y.Max())
	}
	if x := c.XScale(); x.Min() != 0 || x.Max() != 4 {
		t.Errorf("shared x scale [%v,%v]", x.Min(), x.Max())
	}

	b, err := c.RenderPNG()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(b)); err != nil {
		t.Errorf("decode: %v", err)
	}
}

func TestChartTooManyAxes(t *testing.T) {
	a := &Dataset{Label: "a", Points: []Point{{X: 0, Y: 1}}, BackgroundColor: red, YAxisID: "a"}
	b := &Dataset{Label: "b", Points: []Point{{X: 0, Y: 2}}, BackgroundColor: blue, YAxisID: "b"}
	c := New(Options{}, []*Dataset{sampleDataset(), a, b})
	if _, err := c.RenderPNG(); !errors.Is(err, ErrTooManyAxes) {
		t.Errorf("expected ErrTooManyAxes, got %v", err)
	}
}

func TestChartRenderPNG(t *testing.T) {
	ds := sampleDataset()
	ds.BorderGradient = NewGradient()
	ds.BorderGradient.AddColorStop(0, blue)
	ds.BorderGradient.AddColorStop(0.5, blue)
	ds.BorderGradient.AddColorStop(0.5, red)
	ds.BorderGradient.AddColorStop(1, red)

	for _, theme := range []Theme{DarkTheme, LightTheme} {
		c := New(Options{Title: "rtt", Width: 400, Height: 220, Theme: theme}, []*Dataset{ds})
		b, err := c.RenderPNG()
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		img, err := png.Decode(bytes.NewReader(b))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if img.Bounds().Dx() != 400 || img.Bounds().Dy() != 220 {
			t.Errorf("unexpected size %v", img.Bounds())
		}
	}
}

func TestChartRenderSVG(t *testing.T) {
	c := New(Options{Width: 300, Height: 200}, []*Dataset{sampleDataset()})
	var buf bytes.Buffer
	if err := c.Render(chart.SVG, &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("output is not svg")
	}
}

func TestNumberFormatter(t *testing.T) {
	cases := map[interface{}]string{
		1234567.0: "1,234,567",
		12.5:      "12.50",
		"nope":    "",
	}
	for in, want := range cases {
		if got := NumberFormatter(in); got != want {
			t.Errorf("NumberFormatter(%v) = %q, want %q", in, got, want)
		}
	}
}
