package scenario

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatGrams formats a gram mass with thousand separators and no decimals.
// Example: FormatGrams(1392943235.12) returns "1,392,943,235".
func FormatGrams(g float64) string {
	return printer.Sprintf("%d", int64(math.Round(g)))
}

// FormatTonnes formats a metric-ton mass with thousand separators and two
// decimals. Example: FormatTonnes(1397.309) returns "1,397.31".
func FormatTonnes(t float64) string {
	return printer.Sprintf("%.2f", t)
}

// FormatDelta formats a signed metric-ton delta with an explicit sign.
func FormatDelta(t float64) string {
	if t >= 0 {
		return "+" + FormatTonnes(t)
	}
	return "-" + FormatTonnes(math.Abs(t))
}
