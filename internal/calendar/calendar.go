package calendar

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

var ErrInvalidWeeks = errors.New("number of weeks must be a positive integer")

// Seven consecutive days, Sunday first.
type Week [7]Date

func (w Week) Contains(d Date) bool {
	return slices.Contains(w[:], d)
}

// Contiguous weeks, oldest first.
type Window []Week

func (w Window) Start() Date {
	return w[0][0]
}

func (w Window) End() Date {
	return w[len(w)-1][6]
}

// All days in the window, in order.
func (w Window) Days() []Date {
	days := make([]Date, 0, len(w)*7)
	for _, week := range w {
		days = append(days, week[:]...)
	}

	return days
}

// Returns the Sunday-first weeks covering the given month. The first and last
// weeks are padded with days from the adjacent months.
func MonthGrid(year int, month time.Month) []Week {
	first := NewDate(year, month, 1)
	last := NewDate(year, month+1, 0)

	weeks := []Week{}
	start := first.AddDays(-int(first.Weekday()))
	for !start.After(last) {
		var week Week
		for i := range week {
			week[i] = start.AddDays(i)
		}

		weeks = append(weeks, week)
		start = start.AddDays(7)
	}

	return weeks
}

// Returns the last day of the month before the month containing d.
func PreviousMonthEnd(d Date) Date {
	return NewDate(d.Year, d.Month, 0)
}

// Joins the week grids of two consecutive months.
//
// When the later month does not begin on a Sunday, its first week is the same
// calendar week as the earlier month's last week, so that copy is dropped.
func JoinAdjacentMonths(earlier []Week, later []Week) []Week {
	if len(earlier) == 0 || len(later) == 0 {
		return slices.Concat(earlier, later)
	}

	first := later[0]
	if first[0].Month == first[6].Month {
		return slices.Concat(earlier, later)
	}

	return slices.Concat(earlier[:len(earlier)-1], later)
}

// Returns the n weeks ending with the week that contains date.
func LastNWeeks(date Date, n int) (Window, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWeeks, n)
	}

	weeks := MonthGrid(date.Year, date.Month)
	for i, week := range weeks {
		if week.Contains(date) {
			weeks = weeks[:i+1]
			break
		}
	}

	current := date
	for len(weeks) < n {
		current = PreviousMonthEnd(current)
		weeks = JoinAdjacentMonths(
			MonthGrid(current.Year, current.Month),
			weeks,
		)
	}

	return Window(weeks[len(weeks)-n:]), nil
}
