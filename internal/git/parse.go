package git

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
	"time"
)

// Turns lines of unix timestamps from git log into an iterator of times.
//
// Blank lines are skipped. Surrounding quotes are tolerated.
func ParseTimestamps(lines iter.Seq[string]) iter.Seq2[time.Time, error] {
	return func(yield func(time.Time, error) bool) {
		for line := range lines {
			line = strings.Trim(strings.TrimSpace(line), `"`)
			if line == "" {
				continue
			}

			secs, err := strconv.ParseInt(line, 10, 64)
			if err != nil {
				yield(
					time.Time{},
					fmt.Errorf("could not parse timestamp \"%s\": %w", line, err),
				)
				return
			}

			if !yield(time.Unix(secs, 0), nil) {
				return
			}
		}
	}
}

// Turns lines from git shortlog --summary into an iterator of author names.
//
// Each line looks like "    42\tJane Doe".
func ParseShortlog(lines iter.Seq[string]) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for line := range lines {
			if strings.TrimSpace(line) == "" {
				continue
			}

			_, name, ok := strings.Cut(line, "\t")
			if !ok {
				yield("", fmt.Errorf("malformed shortlog line \"%s\"", line))
				return
			}

			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}

			if !yield(name, nil) {
				return
			}
		}
	}
}
