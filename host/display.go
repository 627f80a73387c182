// +build !arm

package host

import (
	"image"

	"github.com/kbinani/screenshot"
)

// DisplayBounds reports the primary display's size so windows and charts can be
// sized to fit it.
func DisplayBounds() image.Rectangle {
	if screenshot.NumActiveDisplays() == 0 {
		return image.Rectangle{}
	}
	return screenshot.GetDisplayBounds(0)
}
