package git

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sinclairtarget/git-activity/internal/git/cmd"
)

// Fetches new commits from every remote configured for the repository.
func (c Client) Fetch(ctx context.Context, repo string) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error fetching %s: %w", repo, err)
		}
	}()

	remotes, err := listRemotes(ctx, repo)
	if err != nil {
		return err
	}

	for _, remote := range remotes {
		logger().Info(
			"fetching commits",
			"repo",
			filepath.Base(strings.TrimRight(ExpandPath(repo), "/")),
			"remote",
			remote,
		)

		subprocess, err := cmd.RunFetch(ctx, ExpandPath(repo), remote)
		if err != nil {
			return err
		}

		if err := subprocess.Wait(); err != nil {
			return err
		}
	}

	return nil
}

func listRemotes(ctx context.Context, repo string) (_ []string, err error) {
	subprocess, err := cmd.RunRemote(ctx, ExpandPath(repo))
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

	remotes := []string{}
	for line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			remotes = append(remotes, line)
		}
	}

	if err := finish(); err != nil {
		return nil, err
	}

	return remotes, nil
}
