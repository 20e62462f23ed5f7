package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rustyeddy/tradebook/journal"
)

const cellWidth = 9

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Width(cellWidth).Align(lipgloss.Center)

	baseCell    = lipgloss.NewStyle().Width(cellWidth).Height(2).Align(lipgloss.Center)
	outsideCell = baseCell.Faint(true)
	gainCell    = baseCell.Background(lipgloss.Color("114")).Foreground(lipgloss.Color("235"))
	lossCell    = baseCell.Background(lipgloss.Color("210")).Foreground(lipgloss.Color("235"))
)

var weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Render draws the month as a grid of day cells. Each in-month cell
// shows the day number and, unless the day is flat, its signed total.
// total is keyed by canonical day key; color toggles the gain/loss
// backgrounds.
func Render(year int, month time.Month, total func(day string) float64, color bool) string {
	grid := MonthGrid(year, month)

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %d", month, year)))
	b.WriteString("\n")

	var header []string
	for _, wd := range weekdays {
		header = append(header, headerStyle.Render(wd))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
	b.WriteString("\n")

	for _, week := range grid {
		var cells []string
		for _, day := range week {
			inMonth := day.Month() == month
			t := total(journal.DayKey(day))
			cells = append(cells, renderCell(day, t, inMonth, color))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}
	return b.String()
}

func renderCell(day time.Time, total float64, inMonth, color bool) string {
	kind := Classify(total, inMonth)

	text := fmt.Sprintf("%d", day.Day())
	if kind == GainDay || kind == LossDay {
		text += "\n" + journal.FormatTotal(total)
	}

	style := baseCell
	switch kind {
	case Outside:
		style = outsideCell
	case GainDay:
		if color {
			style = gainCell
		}
	case LossDay:
		if color {
			style = lossCell
		}
	}
	return style.Render(text)
}
