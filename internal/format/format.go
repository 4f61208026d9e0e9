/*
* Utility functions for formatting output.
 */
package format

import (
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

// Print string with max display width, truncating with ellipsis.
func Abbrev(s string, max int) string {
	if max <= 0 {
		return ""
	}

	if runewidth.StringWidth(s) <= max {
		return s
	}

	return runewidth.Truncate(s, max, "…")
}

// Formats n with thousands separators.
func Number(n int) string {
	return humanize.Comma(int64(n))
}
