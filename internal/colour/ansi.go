package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for 24-bit terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	swatchWidth  = 8
)

// Swatch returns an ANSI-coloured block for a colour, width characters
// wide. Uses the background colour with spaces for a solid block.
func Swatch(c RGB, width int) string {
	if width <= 0 {
		width = swatchWidth
	}
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// SwatchLabelled returns a swatch followed by a label and the hex code,
// for terminal palette listings.
func SwatchLabelled(c RGB, label string) string {
	return fmt.Sprintf("%s  %-22s %s", Swatch(c, swatchWidth), label, c.Hex())
}

// ColourText returns text rendered in the given foreground colour.
func ColourText(c RGB, text string) string {
	fg := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, c.R, c.G, c.B, ansiSuffix)
	return fg + text + ansiReset
}
