package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sinclairtarget/git-activity/internal/calendar"
	"github.com/sinclairtarget/git-activity/internal/config"
	"github.com/sinclairtarget/git-activity/internal/git"
	"github.com/sinclairtarget/git-activity/internal/layout"
	"github.com/sinclairtarget/git-activity/internal/pretty"
	"github.com/sinclairtarget/git-activity/internal/render"
	"github.com/sinclairtarget/git-activity/internal/subcommands"
	"github.com/sinclairtarget/git-activity/internal/table"
)

var Commit = "unknown"
var Version = "unknown"

// Auto-detect count used when -A is given without a value.
const defaultAutoDetect = "5"

type flags struct {
	autoDetect  int
	border      string
	clear       bool
	duration    int
	display     string
	exceptions  bool
	fetch       bool
	file        string
	legend      bool
	orientation string
	total       bool
	verbose     int
	width       int
}

// Main builds the command tree and reports any error on stderr.
//
// With no subcommand, we run "show".
func main() {
	var f flags
	root := rootCmd(&f)

	if err := root.Execute(); err != nil {
		printError(os.Stderr, err, f.exceptions)
		os.Exit(1)
	}
}

func rootCmd(f *flags) *cobra.Command {
	root := &cobra.Command{
		Use:   "git-activity",
		Short: "Show a calendar of git commit activity across repositories",
		Long: strings.TrimSpace(`
git-activity draws a calendar of active days for each author, one table cell
per author, with each day colored by repository and commit volume.

Repositories and authors are read from the config file.
		`),
		Version:       fmt.Sprintf("%s %s", Version, Commit),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(logLevel(f.verbose))
			logger().Debug("log level set", "verbose", f.verbose)

			pretty.SetColorEnabled(
				pretty.AllowDynamic(os.Stdout) && os.Getenv("NO_COLOR") == "",
			)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cmd)
			if err != nil {
				return err
			}

			return subcommands.Show(
				cmd.Context(),
				cmd.OutOrStdout(),
				git.Client{},
				opts,
			)
		},
	}

	pf := root.PersistentFlags()
	pf.IntVarP(&f.autoDetect, "auto-detect", "A", 0, "Add the top N authors of each repository")
	pf.Lookup("auto-detect").NoOptDefVal = defaultAutoDetect
	pf.StringVarP(&f.border, "border", "b", string(table.ASCII), "Table border: ascii, single or double")
	pf.BoolVarP(&f.clear, "clear", "c", false, "Clear the screen before printing")
	pf.IntVarP(&f.duration, "duration", "d", 12, "Number of weeks to show")
	pf.StringVarP(&f.display, "display-type", "D", string(render.BlockMode), "Day display: block or numeric")
	pf.BoolVarP(&f.exceptions, "exceptions", "E", false, "Print the full error chain on failure")
	pf.BoolVarP(&f.fetch, "fetch", "F", false, "Fetch every remote before counting")
	pf.StringVarP(&f.file, "file", "f", config.DefaultPath(), "Path to the config file")
	pf.BoolVarP(&f.legend, "legend", "l", false, "Show a legend of repository colors")
	pf.StringVarP(&f.orientation, "orientation", "o", string(layout.Vertical), "Calendar orientation: vertical or horizontal")
	pf.BoolVarP(&f.total, "total", "t", false, "Show totals next to author names")
	pf.CountVarP(&f.verbose, "verbose", "v", "Increase logging (repeat for debug output)")
	pf.IntVarP(&f.width, "width", "w", 0, "Authors per table row (0 picks from terminal width)")

	root.AddCommand(dumpCmd(f))
	return root
}

func dumpCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the aggregated activity as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cmd)
			if err != nil {
				return err
			}

			return subcommands.Dump(
				cmd.Context(),
				cmd.OutOrStdout(),
				git.Client{},
				opts,
			)
		},
	}
}

// Converts flag values into subcommand options. Flag values are checked by
// the subcommands themselves, except that an explicit -A must be positive.
func (f *flags) options(cmd *cobra.Command) (subcommands.Options, error) {
	if cmd.Flags().Changed("auto-detect") && f.autoDetect < 1 {
		return subcommands.Options{}, fmt.Errorf(
			"%w: auto-detect count must be a positive integer, got %d",
			subcommands.ErrInvalidOption,
			f.autoDetect,
		)
	}

	mode, err := render.ParseMode(f.display)
	if err != nil {
		return subcommands.Options{}, err
	}

	orientation, err := layout.ParseOrientation(f.orientation)
	if err != nil {
		return subcommands.Options{}, err
	}

	border, err := table.ParseBorder(f.border)
	if err != nil {
		return subcommands.Options{}, err
	}

	return subcommands.Options{
		ConfigPath:  f.file,
		Duration:    f.duration,
		AutoDetect:  f.autoDetect,
		Fetch:       f.fetch,
		Display:     mode,
		Orientation: orientation,
		Border:      border,
		Width:       f.width,
		Legend:      f.legend,
		Total:       f.total,
		Clear:       f.clear,
		TermWidth:   pretty.TerminalWidth(os.Stdout),
		Today:       calendar.DateOf(time.Now()),
	}, nil
}

func logLevel(verbose int) slog.Level {
	switch {
	case verbose >= 2:
		return slog.LevelDebug
	case verbose == 1:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

func configureLogging(level slog.Level) {
	handler := slog.NewTextHandler(
		os.Stderr,
		&slog.HandlerOptions{
			Level: level,
		},
	)
	logger := slog.New(handler)
	slog.SetDefault(logger)
}

// Executes the root command with the given args, for tests.
func run(ctx context.Context, out io.Writer, args []string) error {
	var f flags
	root := rootCmd(&f)
	root.SetArgs(args)
	root.SetOut(out)
	return root.ExecuteContext(ctx)
}
