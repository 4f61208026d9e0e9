package pretty

import (
	"os"

	"golang.org/x/term"
)

const fallbackWidth = 80

func AllowDynamic(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Returns the width of the terminal attached to f, or a fallback when f is not
// a terminal.
func TerminalWidth(f *os.File) int {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}

	return width
}
