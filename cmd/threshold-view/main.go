package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"sync"
	"time"

	"fyne.io/fyne"
	"fyne.io/fyne/app"
	"fyne.io/fyne/canvas"
	"fyne.io/fyne/layout"
	"fyne.io/fyne/theme"
	"fyne.io/fyne/widget"
	"github.com/frameloss/prettyfyne"
	"github.com/frameloss/threshold"
	"github.com/frameloss/threshold/host"
)

var (
	LightTheme, Lines bool
	ConfigFile        string
)

func main() {
	var fullscreen bool
	flag.StringVar(&ConfigFile, "f", "", "chart configuration (JSON), defaults to the last one used")
	flag.BoolVar(&LightTheme, "light", false, "render with the light theme")
	flag.BoolVar(&Lines, "lines", false, "draw a reference line for every threshold")
	flag.BoolVar(&fullscreen, "full", false, "start in full-screen mode")
	flag.Parse()

	if ConfigFile == "" {
		ConfigFile = threshold.LastFile()
	}
	if ConfigFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	rect := host.DisplayBounds()
	width, height := host.SizeFor(rect)

	me := app.NewWithID("org.frameloss.threshold")
	if LightTheme {
		me.Settings().SetTheme(theme.LightTheme())
	} else {
		th := prettyfyne.ExampleDracula
		th.TextSize = 13
		th.PlaceHolderColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}
		th.IconColor = th.PlaceHolderColor
		me.Settings().SetTheme(th.ToFyneTheme())
	}

	win := me.NewWindow("Threshold Chart")
	status := widget.NewLabelWithStyle("loading "+ConfigFile, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	chartImage := &canvas.Image{FillMode: canvas.ImageFillContain}
	win.SetContent(fyne.NewContainerWithLayout(layout.NewBorderLayout(nil, status, nil, nil), status, chartImage))

	v := &viewer{file: ConfigFile, image: chartImage, status: status}
	v.reload(width, height)

	closed := make(chan struct{})
	go func() {
		tick := time.NewTicker(time.Second)
		defer tick.Stop()
		lastSize := win.Canvas().Size()
		for {
			select {
			case <-closed:
				return
			case <-tick.C:
				size := win.Canvas().Size()
				switch true {
				case v.changed():
					v.reload(size.Width, size.Height-status.MinSize().Height)
				case size != lastSize:
					v.render(size.Width, size.Height-status.MinSize().Height)
				}
				lastSize = size
			}
		}
	}()
	win.SetOnClosed(func() {
		close(closed)
		v.destroy()
	})

	if fullscreen || rect.Dy() == 0 {
		win.SetFullScreen(true)
	} else {
		win.Resize(fyne.NewSize(width, height+40))
	}
	win.SetMaster()
	win.ShowAndRun()
}

// viewer owns the chart currently on screen and reloads it when its file changes.
type viewer struct {
	sync.Mutex
	file    string
	modTime time.Time
	chart   *host.Chart
	image   *canvas.Image
	status  *widget.Label
}

func (v *viewer) changed() bool {
	info, err := os.Stat(v.file)
	if err != nil {
		return false
	}
	v.Lock()
	defer v.Unlock()
	return info.ModTime().After(v.modTime)
}

func (v *viewer) reload(w, h int) {
	info, err := os.Stat(v.file)
	if err != nil {
		v.fail(err)
		return
	}
	cfg, err := threshold.LoadConfig(v.file)
	if err != nil {
		v.fail(err)
		return
	}
	if Lines {
		cfg.ThresholdLines = true
	}
	if LightTheme {
		cfg.Theme = "light"
	}
	c, err := cfg.Chart()
	if err != nil {
		v.fail(err)
		return
	}
	threshold.SaveLastFile(v.file)

	v.Lock()
	if v.chart != nil {
		v.chart.Destroy()
	}
	v.chart = c
	v.modTime = info.ModTime()
	v.Unlock()
	v.render(w, h)
}

func (v *viewer) render(w, h int) {
	v.Lock()
	defer v.Unlock()
	if v.chart == nil || w <= 0 || h <= 0 {
		return
	}
	v.chart.Options.Width, v.chart.Options.Height = w, h
	b, err := v.chart.RenderPNG()
	if err != nil {
		log.Println("render: ", err)
		v.status.SetText(fmt.Sprintf("render failed: %s", err))
		return
	}
	v.image.Resource = fyne.NewStaticResource("chart", b)
	v.image.Image = nil
	v.image.Refresh()
	v.status.SetText(fmt.Sprintf("%s, %d datasets, updated %s", v.file, len(v.chart.Datasets), time.Now().Format("15:04:05")))
}

func (v *viewer) fail(err error) {
	log.Println(err)
	v.status.SetText(err.Error())
}

func (v *viewer) destroy() {
	v.Lock()
	defer v.Unlock()
	if v.chart != nil {
		v.chart.Destroy()
		v.chart = nil
	}
}
