/*
* Wraps access to commit data needed from Git.
*
* We invoke Git directly as a subprocess and parse the output rather than using
* a Git library.
 */
package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sinclairtarget/git-activity/internal/calendar"
	"github.com/sinclairtarget/git-activity/internal/git/cmd"
)

// Counts commits and inspects repositories by running git.
type Client struct {
	// Commits are bucketed into days in this location. Defaults to local time.
	Location *time.Location
}

func (c Client) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}

	return c.Location
}

// Returns the number of commits per day in the repository over the last n
// weeks. When author is non-empty, only commits whose author matches are
// counted. Days without commits are absent from the map.
func (c Client) CountCommits(
	ctx context.Context,
	repo string,
	weeks int,
	author string,
) (_ map[calendar.Date]int, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error counting commits in %s: %w", repo, err)
		}
	}()

	filters := cmd.LogFilters{Since: fmt.Sprintf("%d weeks", weeks)}
	if author != "" {
		filters.Authors = []string{author}
	}

	subprocess, err := cmd.RunLog(ctx, ExpandPath(repo), filters)
	if err != nil {
		return nil, err
	}

	defer func() {
		waitErr := subprocess.Wait()
		if err == nil {
			err = waitErr
		}
	}()

	lines, finish := subprocess.StdoutLines()

	counts := map[calendar.Date]int{}
	for ts, err := range ParseTimestamps(lines) {
		if err != nil {
			return nil, err
		}

		counts[calendar.DateOf(ts.In(c.location()))] += 1
	}

	if err := finish(); err != nil {
		return nil, err
	}

	logger().Debug(
		"counted commits",
		"repo",
		repo,
		"author",
		author,
		"days",
		len(counts),
	)
	return counts, nil
}

// Expands a leading "~" to the current user's home directory.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		logger().Warn("could not determine home directory", "err", err)
		return path
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
