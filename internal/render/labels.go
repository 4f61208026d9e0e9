package render

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/sinclairtarget/git-activity/internal/format"
	"github.com/sinclairtarget/git-activity/internal/pretty"
	"github.com/sinclairtarget/git-activity/internal/tally"
)

// Room kept free around a name in a table cell.
const namePadding = 5

// Returns a key mapping each active repository to its hue, followed by the
// hue for days with several active repositories.
func (r *Renderer) Legend(active []tally.RepoID) string {
	lines := []string{}
	for _, repo := range r.repos {
		if !slices.Contains(active, repo) {
			continue
		}

		top := Colorways[r.RepoHue(repo)][4]
		lines = append(
			lines,
			BlockString(top, false)+" "+pretty.Colorize(repoName(repo), pretty.DefaultColor),
		)
	}

	lines = append(
		lines,
		BlockString(Colorways[MultipleHue][4], false)+" "+
			pretty.Colorize("multiple", pretty.DefaultColor),
	)
	return strings.Join(lines, "\n")
}

// Returns the author's name, optionally followed by a total. The total counts
// active days in block mode and commits in numeric mode.
//
// The name is abbreviated to fit a table cell in a terminal of the given
// width.
func AuthorLabel(
	name string,
	dailyTotals []int,
	mode Mode,
	showTotal bool,
	termWidth int,
) string {
	trailing := ""
	if showTotal {
		switch mode {
		case BlockMode:
			trailing = format.Number(len(dailyTotals))
		case NumericMode:
			sum := 0
			for _, n := range dailyTotals {
				sum += n
			}
			trailing = format.Number(sum)
		}
	}

	limit := termWidth - namePadding
	if pretty.Width(name+trailing) > limit {
		name = format.Abbrev(name, limit-pretty.Width(trailing))
	}

	label := pretty.Colorize(name, pretty.BrightWhite)
	if trailing != "" {
		label += " " + pretty.Colorize(trailing, pretty.DefaultColor)
	}

	return label
}

func repoName(repo tally.RepoID) string {
	path := strings.TrimRight(string(repo), "/")
	if path == "" {
		return string(repo)
	}

	return filepath.Base(path)
}
