package subcommands

import (
	"context"
	"fmt"
	"io"

	"github.com/sinclairtarget/git-activity/internal/layout"
	"github.com/sinclairtarget/git-activity/internal/pretty"
	"github.com/sinclairtarget/git-activity/internal/render"
	"github.com/sinclairtarget/git-activity/internal/table"
	"github.com/sinclairtarget/git-activity/internal/tally"
)

// The "show" subcommand prints a table of calendars, one per author, with each
// day colored by repository and commit volume.
func Show(
	ctx context.Context,
	out io.Writer,
	src Source,
	opts Options,
) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error running \"show\": %w", err)
		}
	}()

	logger().Debug("called show()", "opts", opts)

	if err := opts.Validate(); err != nil {
		return err
	}

	data, err := collect(ctx, src, opts)
	if err != nil {
		return err
	}

	renderer := render.NewRenderer(data.repos)
	renderGAD := renderer.Func(opts.Display)

	names := []string{}
	grids := []string{}
	for _, ag := range data.activity {
		totals := tally.DailyTotals(ag.Grid)
		q := tally.CalcQuartiles(totals)

		tokens := render.RenderWeeks(ag.Grid, renderGAD, q)
		grid, err := layout.Orient(tokens, opts.Orientation)
		if err != nil {
			return err
		}

		names = append(
			names,
			render.AuthorLabel(ag.Author, totals, opts.Display, opts.Total, opts.TermWidth),
		)
		grids = append(grids, grid)
	}

	if opts.Legend {
		names = append(names, pretty.Colorize("Legend", pretty.BrightWhite))
		grids = append(
			grids,
			renderer.Legend(tally.ActiveRepositories(data.repos, data.activity)),
		)
	}

	title := pretty.Colorize(
		fmt.Sprintf("%s to %s", data.window.Start(), data.window.End()),
		pretty.BrightWhite,
	)

	if opts.Clear {
		if _, err := io.WriteString(out, pretty.ClearScreen); err != nil {
			return err
		}
	}

	width := table.ColumnWidth(names, grids, opts.TermWidth, opts.Width)
	rows := table.Rows(names, grids, width)
	return table.Render(out, rows, title, opts.Border)
}
