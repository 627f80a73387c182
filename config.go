package threshold

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/frameloss/threshold/host"
)

var ErrNoDatasets = errors.New("config has no datasets")

// Config describes a whole chart: its look, its data and its threshold rules.
type Config struct {
	Title          string          `json:"title"`
	Width          int             `json:"width"`
	Height         int             `json:"height"`
	Theme          string          `json:"theme"`
	XName          string          `json:"xName"`
	YName          string          `json:"yName"`
	YBounds        *host.Bounds    `json:"yBounds,omitempty"`
	Threshold      []Rule          `json:"threshold"`
	ThresholdLines bool            `json:"thresholdLines"`
	Datasets       []DatasetConfig `json:"datasets"`
}

type DatasetConfig struct {
	Label       string       `json:"label"`
	Color       string       `json:"color"`
	PointRadius float64      `json:"pointRadius,omitempty"`
	BorderWidth float64      `json:"borderWidth,omitempty"`
	XAxisID     string       `json:"xAxisID,omitempty"`
	YAxisID     string       `json:"yAxisID,omitempty"`
	Data        []host.Point `json:"data"`
}

// LoadConfig reads a chart configuration from a JSON file.
func LoadConfig(fileName string) (*Config, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cfg, err := ReadConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return cfg, nil
}

func ReadConfig(r io.Reader) (*Config, error) {
	cfg := &Config{}
	if err := json.NewDecoder(r).Decode(cfg); err != nil {
		return nil, err
	}
	if len(cfg.Datasets) == 0 {
		return nil, ErrNoDatasets
	}
	for i, rule := range cfg.Threshold {
		if rule.Mode == ModeUnknown {
			log.Printf("threshold: rule %d (value %v) has an unknown mode and will never match", i, rule.Value)
		}
	}
	return cfg, nil
}

// BuildDatasets turns the configured datasets into host datasets, parsing base colors.
func (cfg *Config) BuildDatasets() ([]*host.Dataset, error) {
	out := make([]*host.Dataset, len(cfg.Datasets))
	for i, d := range cfg.Datasets {
		base, err := host.ParseColor(d.Color)
		if err != nil {
			return nil, fmt.Errorf("dataset %q: %w", d.Label, err)
		}
		points := make([]host.Point, len(d.Data))
		copy(points, d.Data)
		out[i] = &host.Dataset{
			Label:           d.Label,
			Points:          points,
			BackgroundColor: base,
			PointRadius:     d.PointRadius,
			BorderWidth:     d.BorderWidth,
			XAxisID:         d.XAxisID,
			YAxisID:         d.YAxisID,
		}
	}
	return out, nil
}

func (cfg *Config) Options() host.Options {
	theme := host.DarkTheme
	if strings.EqualFold(cfg.Theme, "light") {
		theme = host.LightTheme
	}
	return host.Options{
		Title:   cfg.Title,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Theme:   theme,
		XName:   cfg.XName,
		YName:   cfg.YName,
		YBounds: cfg.YBounds,
	}
}

// Colorizer builds the plugin the configuration asks for.
func (cfg *Config) Colorizer() *Colorizer {
	var opts []Option
	if cfg.ThresholdLines {
		opts = append(opts, WithThresholdLines())
	}
	return New(cfg.Threshold, opts...)
}

// Chart assembles a host chart with the configured colorizer plugged in.
func (cfg *Config) Chart() (*host.Chart, error) {
	datasets, err := cfg.BuildDatasets()
	if err != nil {
		return nil, err
	}
	return host.New(cfg.Options(), datasets, cfg.Colorizer()), nil
}
