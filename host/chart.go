package host

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	XAxisID = "x"
	YAxisID = "y"
)

var (
	ErrNoData        = errors.New("chart has no data points")
	ErrDrawCancelled = errors.New("draw cancelled by plugin")
	ErrTooManyAxes   = errors.New("chart supports one y axis besides the default")
)

// Plugin is the lifecycle contract a chart extension implements. Plugins are handed to
// New explicitly, there is no shared registry.
type Plugin interface {
	AfterInit(c *Chart)
	// BeforeDatasetsUpdate runs before the host applies its own dataset defaults,
	// returning false skips them.
	BeforeDatasetsUpdate(c *Chart) bool
	// BeforeDraw runs before rendering, returning false cancels the draw.
	BeforeDraw(c *Chart) bool
	Destroy(c *Chart)
}

// Overlay draws on top of the series once the scales are pinned to the canvas.
type Overlay func(r chart.Renderer, x, y Scale)

type Theme uint8

const (
	DarkTheme Theme = iota
	LightTheme
)

type Bounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type Options struct {
	Title   string
	Width   int
	Height  int
	Theme   Theme
	XName   string
	YName   string
	YBounds *Bounds
}

var padding = chart.Box{Top: 20, Left: 10, Right: 10, Bottom: 10}

// Chart keeps one scale per axis ID in Scales. Every x axis ID maps to the same
// horizontal scale, each y axis ID gets the value range of its own datasets.
type Chart struct {
	Options  Options
	Datasets []*Dataset
	Scales   map[string]Scale

	plugins  []Plugin
	overlays []Overlay
}

// New builds a chart with its extensions and runs their AfterInit hooks.
func New(opts Options, datasets []*Dataset, plugins ...Plugin) *Chart {
	if opts.Width == 0 {
		opts.Width = 1024
	}
	if opts.Height == 0 {
		opts.Height = 400
	}
	c := &Chart{
		Options:  opts,
		Datasets: datasets,
		Scales:   make(map[string]Scale),
		plugins:  plugins,
	}
	c.buildScales()
	for _, p := range c.plugins {
		p.AfterInit(c)
	}
	return c
}

func (c *Chart) XScale() Scale { return c.Scales[XAxisID] }

func (c *Chart) YScale() Scale { return c.Scales[YAxisID] }

// ScaleFor returns the y scale ds is plotted against.
func (c *Chart) ScaleFor(ds *Dataset) Scale {
	if s, ok := c.Scales[ds.YAxisID]; ok {
		return s
	}
	return c.YScale()
}

// AddOverlay registers an overlay for the current draw cycle only.
func (c *Chart) AddOverlay(o Overlay) {
	c.overlays = append(c.overlays, o)
}

// Update rebuilds the scales and recomputes every dataset's derived colors.
func (c *Chart) Update() {
	c.buildScales()
	proceed := true
	for _, p := range c.plugins {
		if !p.BeforeDatasetsUpdate(c) {
			proceed = false
		}
	}
	if !proceed {
		return
	}
	for _, ds := range c.Datasets {
		ds.applyDefaults()
	}
}

func (c *Chart) buildScales() {
	var xs []float64
	ys := map[string][]float64{YAxisID: nil}
	for _, ds := range c.Datasets {
		ds.assignAxes()
		for _, p := range ds.Points {
			xs = append(xs, p.X)
			ys[ds.YAxisID] = append(ys[ds.YAxisID], p.Y)
		}
		if _, ok := ys[ds.YAxisID]; !ok {
			ys[ds.YAxisID] = nil
		}
	}

	c.Scales = make(map[string]Scale, len(ys)+1)
	xMin, xMax := valueRange(xs)
	x := LinearScale{
		Minimum: xMin,
		Maximum: xMax,
		Start:   float64(padding.Left),
		End:     float64(c.Options.Width - padding.Right),
	}
	c.Scales[XAxisID] = x
	for _, ds := range c.Datasets {
		c.Scales[ds.XAxisID] = x
	}
	for id, values := range ys {
		yMin, yMax := valueRange(values)
		if b := c.Options.YBounds; id == YAxisID && b != nil && b.Max > b.Min {
			yMin, yMax = b.Min, b.Max
		}
		c.Scales[id] = LinearScale{
			Minimum: yMin,
			Maximum: yMax,
			Start:   float64(c.Options.Height - padding.Bottom),
			End:     float64(padding.Top),
		}
	}
}

// secondaryAxis returns the one y axis ID other than YAxisID in use, or "".
func (c *Chart) secondaryAxis() (string, error) {
	secondary := ""
	for _, ds := range c.Datasets {
		if ds.YAxisID == YAxisID || ds.YAxisID == secondary {
			continue
		}
		if secondary != "" {
			return "", fmt.Errorf("%w: %q and %q", ErrTooManyAxes, secondary, ds.YAxisID)
		}
		secondary = ds.YAxisID
	}
	return secondary, nil
}

// Render runs a full update and draw cycle and writes the result using rp, typically
// chart.PNG or chart.SVG.
func (c *Chart) Render(rp chart.RendererProvider, w io.Writer) error {
	c.Update()
	c.overlays = c.overlays[:0]
	for _, p := range c.plugins {
		if !p.BeforeDraw(c) {
			return ErrDrawCancelled
		}
	}

	secondary, err := c.secondaryAxis()
	if err != nil {
		return err
	}
	series := make([]chart.Series, 0, len(c.Datasets))
	for _, ds := range c.Datasets {
		if len(ds.Points) == 0 {
			continue
		}
		axis := chart.YAxisPrimary
		if ds.YAxisID == secondary && secondary != "" {
			axis = chart.YAxisSecondary
		}
		series = append(series, datasetSeries{ds: ds, axis: axis})
	}
	if len(series) == 0 {
		return ErrNoData
	}

	fc := drawing.ColorWhite
	if c.Options.Theme == LightTheme {
		fc = drawing.ColorBlack
	}
	xs, ys := c.XScale(), c.YScale()
	graph := chart.Chart{
		Title:  c.Options.Title,
		Width:  c.Options.Width,
		Height: c.Options.Height,
		Font:   DefaultFont(),
		TitleStyle: chart.Style{
			FontColor: fc,
		},
		ColorPalette: palette(c.Options.Theme),
		Background: chart.Style{
			Padding: padding,
		},
		XAxis: chart.XAxis{
			Name:           c.Options.XName,
			Style:          chart.Style{FontColor: fc},
			Range:          &chart.ContinuousRange{Min: xs.Min(), Max: xs.Max()},
			ValueFormatter: NumberFormatter,
		},
		YAxis: chart.YAxis{
			Name:           c.Options.YName,
			Style:          chart.Style{FontColor: fc},
			Range:          &chart.ContinuousRange{Min: ys.Min(), Max: ys.Max()},
			ValueFormatter: NumberFormatter,
		},
		Series:   series,
		Elements: c.elements(xs, ys),
	}
	if secondary != "" {
		alt := c.Scales[secondary]
		graph.YAxisSecondary = chart.YAxis{
			Name:           secondary,
			Style:          chart.Style{FontColor: fc},
			Range:          &chart.ContinuousRange{Min: alt.Min(), Max: alt.Max()},
			ValueFormatter: NumberFormatter,
		}
	}
	return graph.Render(rp, w)
}

// RenderPNG renders into a buffer and returns the encoded image.
func (c *Chart) RenderPNG() ([]byte, error) {
	buffer := bytes.NewBuffer([]byte{})
	if err := c.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// elements adapts the cycle's overlays into go-chart renderables whose scales follow
// the final canvas box rather than the estimate used during Update.
func (c *Chart) elements(xs, ys Scale) []chart.Renderable {
	out := make([]chart.Renderable, 0, len(c.overlays))
	for _, o := range c.overlays {
		o := o
		out = append(out, func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
			x := LinearScale{Minimum: xs.Min(), Maximum: xs.Max(), Start: float64(canvasBox.Left), End: float64(canvasBox.Right)}
			y := LinearScale{Minimum: ys.Min(), Maximum: ys.Max(), Start: float64(canvasBox.Bottom), End: float64(canvasBox.Top)}
			o(r, x, y)
		})
	}
	return out
}

// Destroy runs the plugins' teardown hooks.
func (c *Chart) Destroy() {
	for _, p := range c.plugins {
		p.Destroy(c)
	}
	c.plugins = nil
}
