// Package schedule decides on which dates a habit counts as scheduled,
// independent of whether it was completed.
package schedule

import "aaru/internal/model"

// IsActive reports whether h is scheduled on date (a model.DateLayout
// string). A habit is active iff the date falls inside its inclusive
// start/end window and the frequency rule holds:
//
//   - daily habits are active on every day in the window;
//   - weekly and one-off habits are active only on dates where a
//     completion was actually recorded, or on their start date while no
//     completion exists yet.
//
// Weekly habits carry no day-of-week field, so there is no weekday
// recurrence: until completed they surface once, on their start date,
// same as one-off habits.
func IsActive(h *model.Habit, date string) bool {
	if date < h.StartDate || date > h.EndDate {
		return false
	}
	if h.Frequency == model.FrequencyDaily {
		return true
	}
	if h.CompletedOn(date) {
		return true
	}
	return len(h.CompletedDates) == 0 && date == h.StartDate
}
