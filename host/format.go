package host

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// NumberFormatter labels axis ticks with grouped thousands, integers lose their
// fractional part.
func NumberFormatter(v interface{}) string {
	f, ok := v.(float64)
	if !ok {
		return ""
	}
	if math.Round(f)-f == 0.0 {
		return printer.Sprintf("%d", int64(f))
	}
	return printer.Sprintf("%.2f", f)
}
