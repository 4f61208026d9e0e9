// Lays authors and their rendered activity out in a bordered table.
package table

import (
	"errors"
	"fmt"
	"io"
	"strings"

	gotable "github.com/jedib0t/go-pretty/v6/table"

	"github.com/sinclairtarget/git-activity/internal/pretty"
)

type Border string

const (
	ASCII  Border = "ascii"
	Single Border = "single"
	Double Border = "double"
)

var ErrUnknownBorder = errors.New("unknown border style")

func ParseBorder(s string) (Border, error) {
	switch Border(s) {
	case ASCII, Single, Double:
		return Border(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBorder, s)
	}
}

func (b Border) style() (gotable.Style, error) {
	switch b {
	case ASCII:
		return gotable.StyleDefault, nil
	case Single:
		return gotable.StyleLight, nil
	case Double:
		return gotable.StyleDouble, nil
	default:
		return gotable.Style{}, fmt.Errorf("%w: %q", ErrUnknownBorder, b)
	}
}

// Returns how many authors to show side by side.
//
// A single author always gets one column. An explicit width wins otherwise.
// Failing both, as many columns as fit the terminal, each as wide as the
// widest grid or name plus room for borders.
func ColumnWidth(names []string, grids []string, termWidth int, explicit int) int {
	if len(names) <= 1 {
		return 1
	}

	if explicit > 0 {
		return explicit
	}

	cellWidth := 0
	for _, grid := range grids {
		for _, line := range strings.Split(grid, "\n") {
			cellWidth = max(cellWidth, pretty.Width(line))
		}
	}

	for _, name := range names {
		cellWidth = max(cellWidth, pretty.Width(name))
	}

	return max(1, (termWidth-1)/(cellWidth+3))
}

// Chunks names and grids into rows of the given width, alternating a row of
// names with the row of their grids.
func Rows(names []string, grids []string, width int) [][]string {
	width = max(1, width)

	rows := [][]string{}
	for i := 0; i < len(names) || i < len(grids); i += width {
		rows = append(rows, chunk(names, i, width), chunk(grids, i, width))
	}

	return rows
}

func chunk(s []string, start int, width int) []string {
	if start >= len(s) {
		return []string{}
	}

	return s[start:min(start+width, len(s))]
}

// Writes the rows as a table with inner borders between every cell. The table
// is drawn in the default gray and followed by a reset.
func Render(w io.Writer, rows [][]string, title string, border Border) error {
	style, err := border.style()
	if err != nil {
		return err
	}

	tbl := gotable.NewWriter()
	tbl.SetStyle(style)
	tbl.Style().Options.SeparateRows = true
	tbl.Style().Options.SeparateColumns = true
	tbl.Style().Options.DrawBorder = true

	if title != "" {
		tbl.SetTitle("%s", title)
	}

	for _, row := range rows {
		cells := make(gotable.Row, len(row))
		for i, cell := range row {
			cells[i] = cell
		}

		tbl.AppendRow(cells)
	}

	logger().Debug("rendering table", "rows", len(rows), "border", border)

	var b strings.Builder
	pretty.StartDefault(&b)
	b.WriteString(tbl.Render())
	pretty.Reset(&b)
	b.WriteString("\n")

	_, err = io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("error writing table: %w", err)
	}

	return nil
}
