package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRoundTrip(t *testing.T) {
	s := FormatDate(time.Date(2025, time.June, 3, 15, 42, 0, 0, time.UTC))
	assert.Equal(t, "2025-06-03", s)

	parsed, err := ParseDate(s)
	require.NoError(t, err)
	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, time.June, parsed.Month())
	assert.Equal(t, 3, parsed.Day())
}

func TestDateStringsSortChronologically(t *testing.T) {
	assert.Less(t, "2025-01-31", "2025-02-01")
	assert.Less(t, "2025-09-30", "2025-10-01")
	assert.Less(t, "1999-12-31", "2000-01-01")
}

func TestHabitCompletedOn(t *testing.T) {
	h := Habit{CompletedDates: []string{"2025-01-01", "2025-01-03"}}
	assert.True(t, h.CompletedOn("2025-01-03"))
	assert.False(t, h.CompletedOn("2025-01-02"))

	empty := Habit{}
	assert.False(t, empty.CompletedOn("2025-01-01"))
}

func TestHabitStartHour(t *testing.T) {
	cases := []struct {
		startTime string
		want      int
	}{
		{"08:00", 8},
		{"23:59", 23},
		{"0:15", 0},
		{"", 0},
		{"noon", 0},
		{"-3:00", 0},
	}
	for _, tc := range cases {
		h := Habit{StartTime: tc.startTime}
		assert.Equal(t, tc.want, h.StartHour(), "start time %q", tc.startTime)
	}
}

func TestHabitDurationMinutes(t *testing.T) {
	assert.Equal(t, 60, (&Habit{}).DurationMinutes())
	assert.Equal(t, 60, (&Habit{Duration: -5}).DurationMinutes())
	assert.Equal(t, 45, (&Habit{Duration: 45}).DurationMinutes())
}

func TestSettingsEnums(t *testing.T) {
	for _, theme := range Themes {
		assert.True(t, ValidTheme(theme))
	}
	assert.False(t, ValidTheme("plaid"))
	assert.False(t, ValidTheme(""))

	for _, font := range Fonts {
		assert.True(t, ValidFont(font))
	}
	assert.False(t, ValidFont("comic"))
	assert.False(t, ValidFont(""))
}

func TestSeedIsConsistent(t *testing.T) {
	pillars := DefaultPillars()
	require.Len(t, pillars, 9)

	byID := make(map[string]struct{}, len(pillars))
	for _, p := range pillars {
		byID[p.ID] = struct{}{}
	}

	goals := DefaultGoals()
	require.Len(t, goals, 1)
	_, ok := byID[goals[0].PillarID]
	assert.True(t, ok)

	habits := DefaultHabits()
	require.Len(t, habits, 1)
	assert.Equal(t, goals[0].ID, habits[0].GoalID)
	assert.Equal(t, goals[0].PillarID, habits[0].PillarID)
	assert.NotNil(t, habits[0].CompletedDates)
	assert.Empty(t, habits[0].CompletedDates)

	settings := DefaultSettings()
	assert.True(t, ValidTheme(settings.Theme))
	assert.True(t, ValidFont(settings.Font))
}
