package subcommands

import (
	"context"
	"errors"
	"fmt"

	"github.com/sinclairtarget/git-activity/internal/calendar"
	"github.com/sinclairtarget/git-activity/internal/layout"
	"github.com/sinclairtarget/git-activity/internal/render"
	"github.com/sinclairtarget/git-activity/internal/table"
	"github.com/sinclairtarget/git-activity/internal/tally"
)

var ErrInvalidOption = errors.New("invalid option")

type Options struct {
	ConfigPath  string
	Duration    int // Weeks
	AutoDetect  int // Authors per repository, 0 to disable
	Fetch       bool
	Display     render.Mode
	Orientation layout.Orientation
	Border      table.Border
	Width       int // Authors per table row, 0 for automatic
	Legend      bool
	Total       bool
	Clear       bool
	TermWidth   int
	Today       calendar.Date
}

// Everything the subcommands need from the repositories.
type Source interface {
	tally.Counter
	TopAuthors(
		ctx context.Context,
		repo string,
		since calendar.Date,
		n int,
	) ([]string, error)
	Fetch(ctx context.Context, repo string) error
}

// Checks the options before any repository is touched.
func (o Options) Validate() error {
	if o.Duration < 1 {
		return fmt.Errorf(
			"%w: duration must be a positive number of weeks, got %d",
			ErrInvalidOption,
			o.Duration,
		)
	}

	if o.Width < 0 {
		return fmt.Errorf(
			"%w: width must be a positive integer, got %d",
			ErrInvalidOption,
			o.Width,
		)
	}

	if o.AutoDetect < 0 {
		return fmt.Errorf(
			"%w: auto-detect count must be a positive integer, got %d",
			ErrInvalidOption,
			o.AutoDetect,
		)
	}

	if _, err := render.ParseMode(string(o.Display)); err != nil {
		return err
	}

	if _, err := layout.ParseOrientation(string(o.Orientation)); err != nil {
		return err
	}

	if _, err := table.ParseBorder(string(o.Border)); err != nil {
		return err
	}

	return nil
}
