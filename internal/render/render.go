// Renders days of commit activity as colored glyphs.
package render

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/sinclairtarget/git-activity/internal/layout"
	"github.com/sinclairtarget/git-activity/internal/pretty"
	"github.com/sinclairtarget/git-activity/internal/tally"
)

// Five shades per hue, from "no commits" to "busiest".
//
// The last colorway is reserved for days with commits to more than one
// repository. Repositories cycle through the rest.
var Colorways = [...][5]pretty.Color{
	{236, 94, 136, 172, 208},  // oranges
	{236, 58, 100, 142, 184},  // yellows
	{236, 22, 28, 34, 40},     // greens
	{236, 23, 30, 37, 44},     // cyans
	{236, 53, 90, 127, 164},   // purples
	{236, 17, 18, 19, 20},     // blues
	{236, 52, 88, 124, 160},   // reds
	{236, 238, 241, 248, 255}, // grays
}

// Index of the colorway used when several repositories were active.
const MultipleHue = len(Colorways) - 1

const (
	block           = "◼"
	emphasizedBlock = "●"
)

type Mode string

const (
	BlockMode   Mode = "block"
	NumericMode Mode = "numeric"
)

var ErrUnknownMode = errors.New("unknown display type")

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case BlockMode, NumericMode:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Renders a single day.
type GADFunc func(tally.GAD, tally.Quartiles) string

// Assigns each configured repository a stable hue.
type Renderer struct {
	repos []tally.RepoID
	hues  map[tally.RepoID]int
}

func NewRenderer(repos []tally.RepoID) *Renderer {
	hues := make(map[tally.RepoID]int, len(repos))
	for i, repo := range repos {
		hues[repo] = i % MultipleHue
	}

	return &Renderer{repos: repos, hues: hues}
}

func (r *Renderer) RepoHue(repo tally.RepoID) int {
	return r.hues[repo]
}

// Returns the colorway index for the day: the active repository's hue, the
// reserved hue if several were active, or the first hue if none were.
func (r *Renderer) Hue(gad tally.GAD) int {
	active := gad.Counts.Active(r.repos)
	switch len(active) {
	case 0:
		return 0
	case 1:
		return r.RepoHue(active[0])
	default:
		return MultipleHue
	}
}

// Returns the color for the day. Hue follows the active repository; intensity
// follows the day's total against the quartiles.
func (r *Renderer) ColorFor(gad tally.GAD, q tally.Quartiles) pretty.Color {
	return Colorways[r.Hue(gad)][q.Level(gad.Counts.Total())]
}

func (r *Renderer) RenderBlock(gad tally.GAD, q tally.Quartiles) string {
	return BlockString(r.ColorFor(gad, q), false)
}

func (r *Renderer) RenderNumeric(gad tally.GAD, q tally.Quartiles) string {
	return NumericString(gad.Counts.Total(), r.ColorFor(gad, q))
}

func (r *Renderer) Func(mode Mode) GADFunc {
	if mode == NumericMode {
		return r.RenderNumeric
	}

	return r.RenderBlock
}

func BlockString(c pretty.Color, emphasize bool) string {
	if emphasize {
		return pretty.Colorize(emphasizedBlock, c)
	}

	return pretty.Colorize(block, c)
}

// Two characters wide: "--" for none, "**" for more than 99.
func NumericString(n int, c pretty.Color) string {
	var s string
	switch {
	case n > 99:
		s = "**"
	case n > 0:
		s = fmt.Sprintf("%2d", n)
	default:
		s = "--"
	}

	return pretty.Colorize(s, c)
}

// Lays out the grid as a stream of tokens, one week per row.
//
// Each row holds seven day tokens then a label token: the month abbreviation
// when the week starts a month or crosses into a new one, blank otherwise.
// Weeks that start a year or cross into a new one are preceded by a row
// spelling out the year one character per token. Rows end with
// layout.Newline.
func RenderWeeks(
	grid tally.Grid,
	render GADFunc,
	q tally.Quartiles,
) []string {
	elementWidth := pretty.Width(render(tally.GAD{Counts: tally.Counts{}}, q))
	blank := fmt.Sprintf("%*s", elementWidth, "")

	tokens := []string{}
	for _, week := range grid {
		if len(week) == 0 {
			continue
		}

		first := week[0].Date
		last := week[len(week)-1].Date
		rowLen := len(week) + 1

		if first.Year != last.Year || (first.Month == 1 && first.Day == 1) {
			year := strconv.Itoa(last.Year)
			for _, c := range year {
				tokens = append(tokens, string(c))
			}
			for range rowLen - len(year) {
				tokens = append(tokens, " ")
			}
			tokens = append(tokens, layout.Newline)
		}

		for _, gad := range week {
			tokens = append(tokens, render(gad, q))
		}

		if first.Month != last.Month || first.Day == 1 {
			tokens = append(tokens, last.Format("Jan"))
		} else {
			tokens = append(tokens, blank)
		}

		tokens = append(tokens, layout.Newline)
	}

	return tokens
}
