package host

import "image"

// SizeFor picks a chart size for a display: four fifths of the width and a third of
// the height, never smaller than 640x240.
func SizeFor(display image.Rectangle) (w, h int) {
	w, h = display.Dx()/5*4, display.Dy()/3
	if w < 640 {
		w = 640
	}
	if h < 240 {
		h = 240
	}
	return w, h
}
