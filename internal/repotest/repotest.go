// Helpers for running tests against throwaway git repositories.
package repotest

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"
)

type Repo struct {
	Dir string
	t   *testing.T
}

// Creates an empty repository in a temporary directory. Skips the test when
// git is not installed.
func NewRepo(t *testing.T) Repo {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git executable not found")
	}

	repo := Repo{Dir: t.TempDir(), t: t}
	repo.Git("init", "--quiet")
	repo.Git("config", "user.name", "Test User")
	repo.Git("config", "user.email", "test@example.com")
	repo.Git("config", "commit.gpgsign", "false")

	return repo
}

// Runs git in the repository, failing the test on error.
func (r Repo) Git(args ...string) string {
	r.t.Helper()
	return r.gitWithEnv(nil, args...)
}

func (r Repo) gitWithEnv(env []string, args ...string) string {
	r.t.Helper()

	cmd := exec.Command("git", append([]string{"-C", r.Dir}, args...)...)
	cmd.Env = append(os.Environ(), env...)

	out, err := cmd.CombinedOutput()
	if err != nil {
		r.t.Fatalf("git %s failed: %v\n%s", strings.Join(args, " "), err, out)
	}

	return string(out)
}

// Records an empty commit by the given author at the given time.
func (r Repo) Commit(name string, email string, when time.Time) {
	r.t.Helper()

	date := fmt.Sprintf("%d %s", when.Unix(), when.Format("-0700"))
	env := []string{
		"GIT_AUTHOR_NAME=" + name,
		"GIT_AUTHOR_EMAIL=" + email,
		"GIT_AUTHOR_DATE=" + date,
		"GIT_COMMITTER_NAME=" + name,
		"GIT_COMMITTER_EMAIL=" + email,
		"GIT_COMMITTER_DATE=" + date,
	}

	r.gitWithEnv(
		env,
		"commit",
		"--quiet",
		"--allow-empty",
		"--no-verify",
		"-m",
		"commit at "+when.Format(time.RFC3339),
	)
}
