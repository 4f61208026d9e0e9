// Reshapes rendered token streams into display strings.
package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sinclairtarget/git-activity/internal/pretty"
)

// Token marking the end of a row.
const Newline = "\n"

type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

var ErrUnknownOrientation = errors.New("unknown orientation")

func ParseOrientation(s string) (Orientation, error) {
	switch Orientation(s) {
	case Vertical, Horizontal:
		return Orientation(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOrientation, s)
	}
}

// Splits tokens into rows on Newline. Tokens after the last Newline are
// dropped.
func SplitRows(tokens []string) [][]string {
	rows := [][]string{}
	row := []string{}
	for _, token := range tokens {
		if token == Newline {
			rows = append(rows, row)
			row = []string{}
			continue
		}

		row = append(row, token)
	}

	return rows
}

// Reflects rows over the diagonal so rows become columns. The result is as
// wide as the shortest row.
func Transpose(rows [][]string) [][]string {
	if len(rows) == 0 {
		return [][]string{}
	}

	width := len(rows[0])
	for _, row := range rows {
		width = min(width, len(row))
	}

	transposed := make([][]string, width)
	for j := range width {
		transposed[j] = make([]string, len(rows))
		for i, row := range rows {
			transposed[j][i] = row[j]
		}
	}

	return transposed
}

// Realigns the month labels in the last row of a transposed grid.
//
// Labels are wider than the columns they sit in, so joining the label row
// like any other row pushes later labels out of place. Each label instead
// starts at the offset of its column, where a column is as wide as its
// widest token in the other rows and columns are separated by one space. A
// label that would overlap the previous one is dropped.
//
// The label row is replaced by a single token holding the finished line.
func FixMonthLabels(rows [][]string) [][]string {
	if len(rows) < 2 {
		return rows
	}

	last := len(rows) - 1
	labels := rows[last]

	offsets := make([]int, len(labels))
	offset := 0
	for j := range labels {
		offsets[j] = offset

		width := 0
		for _, row := range rows[:last] {
			if j < len(row) {
				width = max(width, pretty.Width(row[j]))
			}
		}
		offset += width + 1
	}

	var b strings.Builder
	cursor := 0
	for j, label := range labels {
		if strings.TrimSpace(label) == "" {
			continue
		}

		if offsets[j] < cursor {
			continue
		}

		b.WriteString(strings.Repeat(" ", offsets[j]-cursor))
		b.WriteString(label)
		cursor = offsets[j] + pretty.Width(label)
	}

	fixed := make([][]string, len(rows))
	copy(fixed, rows[:last])
	fixed[last] = []string{b.String()}
	return fixed
}

// Joins tokens in a row with a space and rows with a newline.
func Merge(rows [][]string) string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, " ")
	}

	return strings.Join(lines, "\n")
}

// Turns a rendered token stream into a display string in the given
// orientation.
func Orient(tokens []string, orientation Orientation) (string, error) {
	rows := SplitRows(tokens)

	switch orientation {
	case Vertical:
		return Merge(rows), nil
	case Horizontal:
		return Merge(FixMonthLabels(Transpose(rows))), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOrientation, orientation)
	}
}
