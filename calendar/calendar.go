// Package calendar lays out a month of day totals as a wall-calendar
// grid and renders it for the terminal.
package calendar

import (
	"time"

	"github.com/rustyeddy/tradebook/journal"
)

// The grid is always six Monday-first weeks, continuing into the
// neighbouring months to fill every cell.
const (
	Weeks    = 6
	WeekDays = 7
)

// MonthGrid returns the 6x7 days covering year/month, Monday first. Days
// before the 1st and after the last belong to the neighbouring months.
func MonthGrid(year int, month time.Month) [Weeks][WeekDays]time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(first.Weekday()) + 6) % 7 // weeks start on Monday
	start := first.AddDate(0, 0, -offset)

	var grid [Weeks][WeekDays]time.Time
	for w := 0; w < Weeks; w++ {
		for d := 0; d < WeekDays; d++ {
			grid[w][d] = start.AddDate(0, 0, w*WeekDays+d)
		}
	}
	return grid
}

// CellKind classifies a day cell for coloring.
type CellKind int

const (
	// Outside marks a cell that belongs to a neighbouring month.
	Outside CellKind = iota
	// FlatDay is an in-month day whose total is neither gain nor loss.
	FlatDay
	GainDay
	LossDay
)

// Classify maps a day total to its calendar color. Flatness follows the
// aggregator's epsilon rule, not strict zero.
func Classify(total float64, inMonth bool) CellKind {
	switch {
	case !inMonth:
		return Outside
	case journal.Flat(total):
		return FlatDay
	case total > 0:
		return GainDay
	default:
		return LossDay
	}
}
