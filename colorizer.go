package threshold

import (
	"github.com/frameloss/threshold/host"
)

// Colorizer is a host.Plugin that recolors line-chart points by threshold rules and
// strokes each line with a matching banded gradient.
type Colorizer struct {
	rules []Rule
	lines bool
}

type Option func(*Colorizer)

// WithThresholdLines also draws a horizontal reference line for every rule.
func WithThresholdLines() Option {
	return func(c *Colorizer) {
		c.lines = true
	}
}

// New returns a colorizer for rules. A nil rules slice means thresholds are not
// configured and the colorizer leaves every chart alone, an empty one still recolors
// everything to the base color.
func New(rules []Rule, opts ...Option) *Colorizer {
	c := &Colorizer{rules: rules}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Colorizer) Rules() []Rule {
	return c.rules
}

func (c *Colorizer) Configured() bool {
	return c.rules != nil
}

func (c *Colorizer) AfterInit(chart *host.Chart) {}

func (c *Colorizer) Destroy(chart *host.Chart) {}

// BeforeDatasetsUpdate recolors every dataset against its own y axis. It always lets
// the host continue.
func (c *Colorizer) BeforeDatasetsUpdate(chart *host.Chart) bool {
	if !c.Configured() {
		return true
	}
	for _, ds := range chart.Datasets {
		Recolor(c.rules, ds, chart.ScaleFor(ds))
	}
	return true
}

// BeforeDraw registers threshold line overlays when they are enabled. It always lets
// the draw proceed.
func (c *Colorizer) BeforeDraw(chart *host.Chart) bool {
	if !c.lines || !c.Configured() {
		return true
	}
	for _, rule := range c.rules {
		chart.AddOverlay(LineOverlay(rule))
	}
	return true
}

var _ host.Plugin = (*Colorizer)(nil)
