package git_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/sinclairtarget/git-activity/internal/calendar"
	"github.com/sinclairtarget/git-activity/internal/git"
	"github.com/sinclairtarget/git-activity/internal/git/cmd"
	"github.com/sinclairtarget/git-activity/internal/repotest"
)

func TestCountCommits(t *testing.T) {
	repo := repotest.NewRepo(t)

	now := time.Now()
	yesterday := time.Date(now.Year(), now.Month(), now.Day()-1, 12, 0, 0, 0, time.Local)
	lastWeek := yesterday.AddDate(0, 0, -7)
	longAgo := yesterday.AddDate(0, 0, -100)

	repo.Commit("Bob", "bob@mail.com", yesterday)
	repo.Commit("Bob", "bob@mail.com", yesterday.Add(time.Minute))
	repo.Commit("Jim", "jim@mail.com", yesterday.Add(2*time.Minute))
	repo.Commit("Jim", "jim@mail.com", lastWeek)
	repo.Commit("Jim", "jim@mail.com", longAgo)

	client := git.Client{Location: time.Local}
	ctx := context.Background()

	counts, err := client.CountCommits(ctx, repo.Dir, 4, "")
	if err != nil {
		t.Fatalf("CountCommits() returned error: %v", err)
	}

	expected := map[calendar.Date]int{
		calendar.DateOf(yesterday.Local()): 3,
		calendar.DateOf(lastWeek.Local()):  1,
	}
	if diff := cmp.Diff(expected, counts); diff != "" {
		t.Errorf("commit counts are wrong:\n%s", diff)
	}

	counts, err = client.CountCommits(ctx, repo.Dir, 4, "Bob")
	if err != nil {
		t.Fatalf("CountCommits() returned error: %v", err)
	}

	expected = map[calendar.Date]int{
		calendar.DateOf(yesterday.Local()): 2,
	}
	if diff := cmp.Diff(expected, counts); diff != "" {
		t.Errorf("author-filtered commit counts are wrong:\n%s", diff)
	}
}

func TestCountCommitsBadRepo(t *testing.T) {
	repotest.NewRepo(t) // skips when git is missing

	dir := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := git.Client{}.CountCommits(context.Background(), dir, 2, "")
	if err == nil {
		t.Fatal("expected error for missing repository")
	}

	var subprocessErr cmd.SubprocessErr
	if !errors.As(err, &subprocessErr) {
		t.Errorf("expected SubprocessErr in chain, got %v", err)
	}
}

func TestTopAuthors(t *testing.T) {
	repo := repotest.NewRepo(t)

	now := time.Now()
	for i := range 3 {
		repo.Commit("Jim", "jim@mail.com", now.Add(-time.Duration(i+1)*time.Hour))
	}
	repo.Commit("Bob", "bob@mail.com", now.Add(-5*time.Hour))
	repo.Commit("Ann", "ann@mail.com", now.Add(-60*24*time.Hour))

	since := calendar.DateOf(now.Add(-14 * 24 * time.Hour))
	authors, err := git.Client{}.TopAuthors(context.Background(), repo.Dir, since, 5)
	if err != nil {
		t.Fatalf("TopAuthors() returned error: %v", err)
	}

	if diff := cmp.Diff([]string{"Jim", "Bob"}, authors); diff != "" {
		t.Errorf("authors are wrong:\n%s", diff)
	}

	authors, err = git.Client{}.TopAuthors(context.Background(), repo.Dir, since, 1)
	if err != nil {
		t.Fatalf("TopAuthors() returned error: %v", err)
	}

	if diff := cmp.Diff([]string{"Jim"}, authors); diff != "" {
		t.Errorf("limited authors are wrong:\n%s", diff)
	}
}

func TestFetchWithoutRemotes(t *testing.T) {
	repo := repotest.NewRepo(t)
	repo.Commit("Jim", "jim@mail.com", time.Now())

	if err := (git.Client{}).Fetch(context.Background(), repo.Dir); err != nil {
		t.Fatalf("Fetch() returned error: %v", err)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		path     string
		expected string
	}{
		{"~", home},
		{"~/code/repo", filepath.Join(home, "code/repo")},
		{"./", "./"},
		{"/abs/~path", "/abs/~path"},
	}

	for _, test := range tests {
		got := git.ExpandPath(test.path)
		if got != test.expected {
			t.Errorf("ExpandPath(%q) = %q, expected %q", test.path, got, test.expected)
		}
	}
}
