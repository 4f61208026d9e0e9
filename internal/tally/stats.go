package tally

import (
	"slices"
)

// Order-statistic quartiles of a list of daily commit totals.
type Quartiles struct {
	Q1 int
	Q2 int
	Q3 int
}

// Returns the intensity level (0-4) of total relative to the quartiles.
func (q Quartiles) Level(total int) int {
	switch {
	case total <= 0:
		return 0
	case total <= q.Q1:
		return 1
	case total <= q.Q2:
		return 2
	case total <= q.Q3:
		return 3
	default:
		return 4
	}
}

// Computes quartiles by indexing into the sorted values at n/4, n/2 and 3n/4.
// No interpolation is done. The input is not modified.
func CalcQuartiles(numbers []int) Quartiles {
	if len(numbers) == 0 {
		return Quartiles{}
	}

	sorted := slices.Clone(numbers)
	slices.Sort(sorted)

	n := len(sorted)
	return Quartiles{
		Q1: sorted[n/4],
		Q2: sorted[n/2],
		Q3: sorted[3*n/4],
	}
}

// Returns the nonzero total commit count of each day in the grid, oldest
// first.
func DailyTotals(grid Grid) []int {
	totals := []int{}
	for _, week := range grid {
		for _, gad := range week {
			if total := gad.Counts.Total(); total != 0 {
				totals = append(totals, total)
			}
		}
	}

	return totals
}
