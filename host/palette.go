package host

import (
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

func palette(t Theme) chart.ColorPalette {
	if t == LightTheme {
		return lightPalette{}
	}
	return darkPalette{}
}

// darkPalette keeps the background transparent so the chart sits on a dark window.
type darkPalette struct{}

func (dp darkPalette) BackgroundColor() drawing.Color {
	return drawing.Color{R: 0, G: 0, B: 0, A: 0}
}

func (dp darkPalette) BackgroundStrokeColor() drawing.Color {
	return drawing.Color{R: 0, G: 0, B: 0, A: 0}
}

func (dp darkPalette) CanvasColor() drawing.Color {
	return drawing.Color{R: 0, G: 0, B: 0, A: 0}
}

func (dp darkPalette) CanvasStrokeColor() drawing.Color {
	return drawing.Color{R: 255, G: 255, B: 255, A: 64}
}

func (dp darkPalette) AxisStrokeColor() drawing.Color {
	return drawing.Color{R: 192, G: 192, B: 192, A: 255}
}

func (dp darkPalette) TextColor() drawing.Color {
	return drawing.ColorWhite
}

func (dp darkPalette) GetSeriesColor(index int) drawing.Color {
	c := chart.GetAlternateColor(index)
	c.A = 255
	return c
}

type lightPalette struct{}

func (lp lightPalette) BackgroundColor() drawing.Color {
	return drawing.ColorWhite
}

func (lp lightPalette) BackgroundStrokeColor() drawing.Color {
	return drawing.Color{R: 0, G: 0, B: 0, A: 0}
}

func (lp lightPalette) CanvasColor() drawing.Color {
	return drawing.ColorWhite
}

func (lp lightPalette) CanvasStrokeColor() drawing.Color {
	return drawing.Color{R: 0, G: 0, B: 0, A: 64}
}

func (lp lightPalette) AxisStrokeColor() drawing.Color {
	return chart.DefaultAxisColor
}

func (lp lightPalette) TextColor() drawing.Color {
	return chart.DefaultTextColor
}

func (lp lightPalette) GetSeriesColor(index int) drawing.Color {
	return chart.GetAlternateColor(index)
}
