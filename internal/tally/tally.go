// Folds per-day commit counts onto a calendar window.
package tally

import (
	"context"
	"fmt"
	"slices"

	"github.com/sinclairtarget/git-activity/internal/calendar"
)

// Identifies a configured repository by its path or URL.
type RepoID string

// Commit counts for one day, keyed by repository.
//
// A Counts built with NewCounts always holds an entry for every configured
// repository, even when the count is zero.
type Counts map[RepoID]int

func NewCounts(repos []RepoID) Counts {
	counts := make(Counts, len(repos))
	for _, repo := range repos {
		counts[repo] = 0
	}

	return counts
}

func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}

	return total
}

// Returns the repositories with at least one commit, in the given order.
func (c Counts) Active(repos []RepoID) []RepoID {
	active := []RepoID{}
	for _, repo := range repos {
		if c[repo] > 0 {
			active = append(active, repo)
		}
	}

	return active
}

// A "git active day": one day's commit counts across repositories.
type GAD struct {
	Date   calendar.Date
	Counts Counts
}

// GADs laid out in the same weeks as a calendar.Window.
type Grid [][]GAD

type AuthorGrid struct {
	Author string
	Grid   Grid
}

// Grids per author, in display order.
type AuthorActivity []AuthorGrid

// Counts commits per day. An empty author counts every commit.
type Counter interface {
	CountCommits(
		ctx context.Context,
		repo string,
		weeks int,
		author string,
	) (map[calendar.Date]int, error)
}

// Returns a grid for the window with every count set to zero.
func BlankGrid(window calendar.Window, repos []RepoID) Grid {
	grid := make(Grid, len(window))
	for i, week := range window {
		grid[i] = make([]GAD, len(week))
		for j, day := range week {
			grid[i][j] = GAD{Date: day, Counts: NewCounts(repos)}
		}
	}

	return grid
}

// Records the count for gad's date from counts under the given repository.
// Dates missing from counts record zero.
func ZipCounts(gad GAD, counts map[calendar.Date]int, repo RepoID) GAD {
	gad.Counts[repo] = counts[gad.Date]
	return gad
}

// Counts commits for every (author, repository) pair over the window.
//
// With no authors, each repository gets its own grid keyed by the repository
// name and counted without an author filter.
func Aggregate(
	ctx context.Context,
	counter Counter,
	repos []RepoID,
	window calendar.Window,
	authors []string,
) (_ AuthorActivity, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error aggregating activity: %w", err)
		}
	}()

	weeks := len(window)
	activity := AuthorActivity{}

	if len(authors) > 0 {
		for _, author := range authors {
			grid := BlankGrid(window, repos)
			for _, repo := range repos {
				counts, err := counter.CountCommits(ctx, string(repo), weeks, author)
				if err != nil {
					return nil, err
				}

				zipGrid(grid, counts, repo)
			}

			activity = append(activity, AuthorGrid{Author: author, Grid: grid})
		}

		return activity, nil
	}

	for _, repo := range repos {
		grid := BlankGrid(window, repos)

		counts, err := counter.CountCommits(ctx, string(repo), weeks, "")
		if err != nil {
			return nil, err
		}

		zipGrid(grid, counts, repo)
		activity = append(activity, AuthorGrid{Author: string(repo), Grid: grid})
	}

	return activity, nil
}

func zipGrid(grid Grid, counts map[calendar.Date]int, repo RepoID) {
	for i, week := range grid {
		for j, gad := range week {
			grid[i][j] = ZipCounts(gad, counts, repo)
		}
	}
}

// Returns the repositories with commits anywhere in the activity, in the given
// order.
func ActiveRepositories(repos []RepoID, activity AuthorActivity) []RepoID {
	totals := map[RepoID]int{}
	for _, ag := range activity {
		for _, week := range ag.Grid {
			for _, gad := range week {
				for repo, n := range gad.Counts {
					totals[repo] += n
				}
			}
		}
	}

	return Counts(totals).Active(repos)
}

// Removes duplicate authors, keeping the first occurrence of each.
func DedupAuthors(authors []string) []string {
	deduped := []string{}
	for _, author := range authors {
		if !slices.Contains(deduped, author) {
			deduped = append(deduped, author)
		}
	}

	return deduped
}

func RepoIDs(paths []string) []RepoID {
	repos := make([]RepoID, len(paths))
	for i, path := range paths {
		repos[i] = RepoID(path)
	}

	return repos
}
