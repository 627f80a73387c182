// +build arm

package host

import "image"

// DisplayBounds is a fixed guess on arm boards, most of them run headless or full screen.
func DisplayBounds() image.Rectangle {
	return image.Rectangle{
		Max: image.Point{
			X: 1024,
			Y: 600,
		},
	}
}
