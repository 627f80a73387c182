package host

import (
	"log"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gomono"
)

var (
	fontOnce sync.Once
	font     *truetype.Font
)

// DefaultFont is the monospace face used for titles and tick labels. A nil result
// makes go-chart fall back to its bundled font.
func DefaultFont() *truetype.Font {
	fontOnce.Do(func() {
		f, err := truetype.Parse(gomono.TTF)
		if err != nil {
			log.Println(err)
			return
		}
		font = f
	})
	return font
}
