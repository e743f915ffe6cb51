// Package calendar projects habits onto the day, week and month views:
// it expands a date window from an anchor date, attaches habit occurrences
// to each date in the window, and derives the pixel layout hints the
// timed views render with.
package calendar

import (
	"fmt"
	"time"

	"aaru/internal/model"
	"aaru/internal/schedule"
)

type View string

const (
	ViewDay   View = "day"
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

// ParseView validates a view name.
func ParseView(s string) (View, error) {
	switch View(s) {
	case ViewDay, ViewWeek, ViewMonth:
		return View(s), nil
	}
	return "", fmt.Errorf("unknown calendar view %q", s)
}

// Pixel scales for the timed views: hour row height, occurrence inset and
// minimum occurrence height. The day view is drawn taller than the week view.
const (
	weekHourPx   = 80.0
	weekInsetPx  = 4.0
	weekMinPx    = 30.0
	dayHourPx    = 96.0
	dayInsetPx   = 8.0
	dayMinPx     = 60.0
	minutesPerHr = 60.0
)

// Occurrence is one (habit, date) pair scheduled on a cell, with its
// completion status and, for the timed views, its vertical placement.
type Occurrence struct {
	Habit     *model.Habit `json:"habit"`
	Date      string       `json:"date"`
	Completed bool         `json:"completed"`
	Top       float64      `json:"top,omitempty"`
	Height    float64      `json:"height,omitempty"`
}

// Cell is one date slot in a projected window. Month windows start with
// placeholder cells that pad the grid out to the month's first weekday so
// the layout stays aligned to a fixed Sun-Sat header.
type Cell struct {
	Placeholder bool         `json:"placeholder,omitempty"`
	Date        string       `json:"date,omitempty"`
	Day         int          `json:"day,omitempty"`
	Occurrences []Occurrence `json:"occurrences,omitempty"`
}

// Project expands the window implied by view and anchor and fills each
// date with the habits active on it. It is a pure read over the habit
// collection; overlapping occurrences in a time slot are emitted as-is,
// with no collision layout.
func Project(view View, anchor time.Time, habits []model.Habit) []Cell {
	switch view {
	case ViewMonth:
		return projectMonth(anchor, habits)
	case ViewWeek:
		start := anchor.AddDate(0, 0, -int(anchor.Weekday()))
		cells := make([]Cell, 0, 7)
		for i := 0; i < 7; i++ {
			day := start.AddDate(0, 0, i)
			cells = append(cells, timedCell(day, habits, weekHourPx, weekInsetPx, weekMinPx))
		}
		return cells
	default:
		return []Cell{timedCell(anchor, habits, dayHourPx, dayInsetPx, dayMinPx)}
	}
}

// ChangeDate advances anchor by offset view-sized steps: months in month
// view, weeks in week view, days in day view. Negative offsets go back.
func ChangeDate(view View, anchor time.Time, offset int) time.Time {
	switch view {
	case ViewMonth:
		return anchor.AddDate(0, offset, 0)
	case ViewWeek:
		return anchor.AddDate(0, 0, offset*7)
	default:
		return anchor.AddDate(0, 0, offset)
	}
}

func projectMonth(anchor time.Time, habits []model.Habit) []Cell {
	year, month := anchor.Year(), anchor.Month()
	first := time.Date(year, month, 1, 0, 0, 0, 0, anchor.Location())
	totalDays := first.AddDate(0, 1, -1).Day()

	cells := make([]Cell, 0, int(first.Weekday())+totalDays)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, Cell{Placeholder: true})
	}
	for d := 1; d <= totalDays; d++ {
		date := model.FormatDate(first.AddDate(0, 0, d-1))
		cell := Cell{Date: date, Day: d}
		for i := range habits {
			h := &habits[i]
			if !schedule.IsActive(h, date) {
				continue
			}
			cell.Occurrences = append(cell.Occurrences, Occurrence{
				Habit:     h,
				Date:      date,
				Completed: h.CompletedOn(date),
			})
		}
		cells = append(cells, cell)
	}
	return cells
}

func timedCell(day time.Time, habits []model.Habit, hourPx, insetPx, minPx float64) Cell {
	date := model.FormatDate(day)
	cell := Cell{Date: date, Day: day.Day()}
	for i := range habits {
		h := &habits[i]
		if !schedule.IsActive(h, date) {
			continue
		}
		height := float64(h.DurationMinutes()) * (hourPx / minutesPerHr)
		if height < minPx {
			height = minPx
		}
		cell.Occurrences = append(cell.Occurrences, Occurrence{
			Habit:     h,
			Date:      date,
			Completed: h.CompletedOn(date),
			Top:       float64(h.StartHour())*hourPx + insetPx,
			Height:    height - 2*insetPx,
		})
	}
	return cell
}
