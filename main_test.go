package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/sinclairtarget/git-activity/internal/git/cmd"
	"github.com/sinclairtarget/git-activity/internal/subcommands"
	"github.com/sinclairtarget/git-activity/internal/table"
)

func TestErrorKind(t *testing.T) {
	subprocessErr := cmd.SubprocessErr{ExitCode: 128, Stderr: "not a git repository"}

	tests := []struct {
		name            string
		err             error
		expectedKind    string
		expectedMessage string
	}{
		{
			"typed_error_in_chain",
			fmt.Errorf("error running \"show\": %w", subprocessErr),
			"SubprocessErr",
			subprocessErr.Error(),
		},
		{
			"sentinel_only",
			fmt.Errorf("error running \"show\": %w", table.ErrUnknownBorder),
			"Error",
			"error running \"show\": unknown border style",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			kind, inner := errorKind(test.err)
			if kind != test.expectedKind {
				t.Errorf("expected kind %q but got %q", test.expectedKind, kind)
			}

			if inner.Error() != test.expectedMessage {
				t.Errorf(
					"expected message %q but got %q",
					test.expectedMessage,
					inner.Error(),
				)
			}
		})
	}
}

func TestPrintError(t *testing.T) {
	err := fmt.Errorf(
		"error running \"show\": %w",
		cmd.SubprocessErr{ExitCode: 1},
	)

	var short bytes.Buffer
	printError(&short, err, false)
	if short.String() != "SubprocessErr: Git subprocess exited with code 1\n" {
		t.Errorf("unexpected short error: %q", short.String())
	}

	var full bytes.Buffer
	printError(&full, err, true)
	expected := "error running \"show\": Git subprocess exited with code 1\n"
	if full.String() != expected {
		t.Errorf("unexpected full error: %q", full.String())
	}
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		verbose  int
		expected slog.Level
	}{
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{5, slog.LevelDebug},
	}

	for _, test := range tests {
		if got := logLevel(test.verbose); got != test.expected {
			t.Errorf("verbose %d: expected %v but got %v", test.verbose, test.expected, got)
		}
	}
}

func TestAutoDetectFlag(t *testing.T) {
	tests := []struct {
		args     []string
		expected int
	}{
		{[]string{}, 0},
		{[]string{"-A"}, 5},
		{[]string{"--auto-detect"}, 5},
		{[]string{"-A=3"}, 3},
		{[]string{"--auto-detect=7"}, 7},
	}

	for _, test := range tests {
		t.Run(strings.Join(test.args, " "), func(t *testing.T) {
			var f flags
			root := rootCmd(&f)
			if err := root.ParseFlags(test.args); err != nil {
				t.Fatalf("failed to parse flags: %v", err)
			}

			if f.autoDetect != test.expected {
				t.Errorf("expected %d but got %d", test.expected, f.autoDetect)
			}
		})
	}
}

func TestRunRejectsBadFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected error
	}{
		{"unknown_border", []string{"-b", "wavy"}, table.ErrUnknownBorder},
		{"zero_duration", []string{"-d", "0"}, subcommands.ErrInvalidOption},
		{"negative_width", []string{"-w", "-2"}, subcommands.ErrInvalidOption},
		{"zero_auto_detect", []string{"-A=0"}, subcommands.ErrInvalidOption},
		{"dump_zero_auto_detect", []string{"dump", "--auto-detect=0"}, subcommands.ErrInvalidOption},
		{"dump_zero_duration", []string{"dump", "-d", "0"}, subcommands.ErrInvalidOption},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(context.Background(), &out, test.args)
			if !errors.Is(err, test.expected) {
				t.Errorf("expected error %v but got %v", test.expected, err)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), &out, []string{"--version"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "unknown unknown") {
		t.Errorf("expected version and commit in output, got %q", out.String())
	}
}
