package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/frameloss/threshold"
	"github.com/frameloss/threshold/host"
	"github.com/wcharczuk/go-chart/v2"
)

var (
	swatchStyle = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

type options struct {
	configFile, outFile, format string
	lines, light, quiet         bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configFile, "f", "", "chart configuration (JSON), defaults to the last one used")
	flag.StringVar(&opts.outFile, "o", "chart.png", "output file, - for stdout")
	flag.StringVar(&opts.format, "format", "png", "output format: png or svg")
	flag.BoolVar(&opts.lines, "lines", false, "draw a reference line for every threshold")
	flag.BoolVar(&opts.light, "light", false, "render with the light theme")
	flag.BoolVar(&opts.quiet, "q", false, "do not print the per-point summary")
	flag.Parse()

	if opts.configFile == "" {
		opts.configFile = threshold.LastFile()
	}
	if opts.configFile == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}

func run(opts options) error {
	var rp chart.RendererProvider
	switch strings.ToLower(opts.format) {
	case "png":
		rp = chart.PNG
	case "svg":
		rp = chart.SVG
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}

	cfg, err := threshold.LoadConfig(opts.configFile)
	if err != nil {
		return err
	}
	threshold.SaveLastFile(opts.configFile)
	if opts.lines {
		cfg.ThresholdLines = true
	}
	if opts.light {
		cfg.Theme = "light"
	}

	datasets, err := cfg.BuildDatasets()
	if err != nil {
		return err
	}
	colorizer := cfg.Colorizer()
	c := host.New(cfg.Options(), datasets, colorizer)
	defer c.Destroy()

	var w io.Writer = os.Stdout
	if opts.outFile != "-" {
		f, err := os.Create(opts.outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := c.Render(rp, w); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if !opts.quiet && opts.outFile != "-" {
		printSummary(os.Stdout, c, colorizer.Rules())
		log.Println("wrote", opts.outFile)
	}
	return nil
}

func printSummary(w io.Writer, c *host.Chart, rules []threshold.Rule) {
	if len(rules) > 0 {
		fmt.Fprintln(w, headerStyle.Render("thresholds"))
		for _, r := range rules {
			swatch := swatchStyle.Copy().Foreground(lipgloss.Color(host.Hex(r.Color))).Render("■")
			fmt.Fprintf(w, "  %s %s %s\n", swatch, r.Mode, host.NumberFormatter(r.Value))
		}
	}
	for _, ds := range c.Datasets {
		fmt.Fprintln(w, headerStyle.Render(ds.Label))
		for i, p := range ds.Points {
			bg := ds.BackgroundColor
			if i < len(ds.PointBackgroundColors) {
				bg = ds.PointBackgroundColors[i]
			}
			swatch := swatchStyle.Copy().Foreground(lipgloss.Color(host.Hex(bg))).Render("●")
			fmt.Fprintf(w, "  %s %s %s\n", swatch, host.NumberFormatter(p.Y), dimStyle.Render(host.Hex(bg)))
		}
		if g := ds.BorderGradient; g != nil {
			parts := make([]string, len(g.Stops))
			for i, s := range g.Stops {
				parts[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(host.Hex(s.Color))).Render(fmt.Sprintf("%.3f", s.Offset))
			}
			fmt.Fprintln(w, dimStyle.Render("  stroke:"), strings.Join(parts, " "))
		}
	}
}
