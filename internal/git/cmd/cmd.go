/*
* Handles invoking Git as a subprocess.
*
* Every command runs against an explicit repository directory via `git -C`.
 */
package cmd

import (
	"context"
	"fmt"
	"slices"
)

// One unix timestamp per commit.
const timestampLogFormat = "--pretty=format:%at"

// Runs git log over all refs, printing the author timestamp of each commit.
func RunLog(
	ctx context.Context,
	dir string,
	filters LogFilters,
) (*Subprocess, error) {
	baseArgs := []string{
		"log",
		"--all",
		timestampLogFormat,
		"--use-mailmap",
		"--no-show-signature",
	}

	args := slices.Concat(baseArgs, filters.ToArgs())

	subprocess, err := run(ctx, dir, args)
	if err != nil {
		return nil, fmt.Errorf("failed to run git log: %w", err)
	}

	return subprocess, nil
}

// Runs git shortlog, summarizing commit counts per author, highest first.
func RunShortlog(
	ctx context.Context,
	dir string,
	since string,
) (*Subprocess, error) {
	args := []string{
		"shortlog",
		"--summary",
		"--numbered",
		"--all",
	}

	if since != "" {
		args = append(args, "--since", since)
	}

	subprocess, err := run(ctx, dir, args)
	if err != nil {
		return nil, fmt.Errorf("failed to run git shortlog: %w", err)
	}

	return subprocess, nil
}

// Runs git remote, listing the names of configured remotes.
func RunRemote(ctx context.Context, dir string) (*Subprocess, error) {
	subprocess, err := run(ctx, dir, []string{"remote"})
	if err != nil {
		return nil, fmt.Errorf("failed to run git remote: %w", err)
	}

	return subprocess, nil
}

// Runs git fetch for a single remote.
func RunFetch(
	ctx context.Context,
	dir string,
	remote string,
) (*Subprocess, error) {
	args := []string{"fetch", "--quiet", remote}

	subprocess, err := run(ctx, dir, args)
	if err != nil {
		return nil, fmt.Errorf("failed to run git fetch: %w", err)
	}

	return subprocess, nil
}
