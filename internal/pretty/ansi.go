// ANSI color output.
package pretty

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/text"
)

// A color in the 256-color terminal palette.
type Color int

const (
	DefaultColor Color = 244
	BrightWhite  Color = 255
)

// Clears the screen and moves the cursor home.
const ClearScreen string = "\x1bc"

// SetColorEnabled controls whether ANSI color codes are output
func SetColorEnabled(enabled bool) {
	color.NoColor = !enabled
}

// ColorEnabled returns whether ANSI color codes are currently output
func ColorEnabled() bool {
	return !color.NoColor
}

func foreground(c Color) *color.Color {
	return color.New(38, 5, color.Attribute(c))
}

// Wraps s in the escape codes for the given foreground color. The span ends by
// switching back to DefaultColor, so text that follows stays in the default
// gray.
func Colorize(s string, c Color) string {
	var b strings.Builder
	b.WriteString(foreground(c).Sprint(s))
	foreground(DefaultColor).SetWriter(&b)
	return b.String()
}

// Switches the output to DefaultColor. Writes nothing with color disabled.
func StartDefault(w io.Writer) {
	foreground(DefaultColor).SetWriter(w)
}

// Resets all attributes. Writes nothing with color disabled.
func Reset(w io.Writer) {
	foreground(DefaultColor).UnsetWriter(w)
}

// Returns the display width of s, ignoring ANSI escape sequences.
func Width(s string) int {
	return text.RuneWidthWithoutEscSequences(s)
}
