package model

import (
	"strconv"
	"strings"
	"time"
)

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
	FrequencyOneOff Frequency = "one-off"
)

// Habit is a recurring or one-off ritual attached to a goal. PillarID is a
// denormalized copy of the goal's pillar at creation time and may drift if
// the goal ever moves; that is accepted. CompletedDates holds calendar-date
// strings and is treated as a set.
type Habit struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	GoalID         string    `json:"goal_id"`
	PillarID       string    `json:"pillar_id"`
	CompletedDates []string  `json:"completed_dates"`
	Frequency      Frequency `json:"frequency"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	StartTime      string    `json:"start_time,omitempty"` // HH:MM
	Duration       int       `json:"duration,omitempty"`   // minutes
	CreatedAt      time.Time `json:"created_at"`
}

// CompletedOn reports whether a completion is recorded for date.
func (h *Habit) CompletedOn(date string) bool {
	for _, d := range h.CompletedDates {
		if d == date {
			return true
		}
	}
	return false
}

// StartHour returns the hour component of StartTime, or 0 when unset
// or unparseable.
func (h *Habit) StartHour() int {
	if h.StartTime == "" {
		return 0
	}
	part, _, _ := strings.Cut(h.StartTime, ":")
	hour, err := strconv.Atoi(part)
	if err != nil || hour < 0 {
		return 0
	}
	return hour
}

// DurationMinutes returns Duration with the 60-minute default applied.
func (h *Habit) DurationMinutes() int {
	if h.Duration <= 0 {
		return 60
	}
	return h.Duration
}
