package git

import (
	"context"
	"fmt"

	"github.com/sinclairtarget/git-activity/internal/calendar"
	"github.com/sinclairtarget/git-activity/internal/git/cmd"
)

// Returns up to n authors with the most commits since the given date, most
// prolific first.
func (c Client) TopAuthors(
	ctx context.Context,
	repo string,
	since calendar.Date,
	n int,
) (_ []string, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error detecting authors in %s: %w", repo, err)
		}
	}()

	subprocess, err := cmd.RunShortlog(ctx, ExpandPath(repo), since.String())
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

	authors := []string{}
	for author, err := range ParseShortlog(lines) {
		if err != nil {
			return nil, err
		}

		if len(authors) >= n {
			break
		}

		authors = append(authors, author)
	}

	if err := finish(); err != nil {
		return nil, err
	}

	logger().Debug("detected authors", "repo", repo, "authors", authors)
	return authors, nil
}
