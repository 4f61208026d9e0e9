package subcommands

import (
	"context"

	"github.com/sinclairtarget/git-activity/internal/calendar"
	"github.com/sinclairtarget/git-activity/internal/config"
	"github.com/sinclairtarget/git-activity/internal/tally"
)

type collected struct {
	window   calendar.Window
	repos    []tally.RepoID
	activity tally.AuthorActivity
}

// Loads the config, then fetches, detects authors and aggregates as the
// options ask.
func collect(ctx context.Context, src Source, opts Options) (collected, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return collected{}, err
	}

	window, err := calendar.LastNWeeks(opts.Today, opts.Duration)
	if err != nil {
		return collected{}, err
	}

	if opts.Fetch {
		for _, repo := range cfg.Repositories {
			if err := src.Fetch(ctx, repo); err != nil {
				return collected{}, err
			}
		}
	}

	authors := cfg.Authors
	if opts.AutoDetect > 0 {
		for _, repo := range cfg.Repositories {
			detected, err := src.TopAuthors(ctx, repo, window.Start(), opts.AutoDetect)
			if err != nil {
				return collected{}, err
			}

			authors = append(authors, detected...)
		}
	}

	authors = tally.DedupAuthors(authors)
	repos := tally.RepoIDs(cfg.Repositories)

	logger().Debug(
		"aggregating",
		"repos",
		repos,
		"authors",
		authors,
		"start",
		window.Start(),
		"end",
		window.End(),
	)

	activity, err := tally.Aggregate(ctx, src, repos, window, authors)
	if err != nil {
		return collected{}, err
	}

	return collected{window: window, repos: repos, activity: activity}, nil
}
