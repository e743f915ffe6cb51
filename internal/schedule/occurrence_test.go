package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aaru/internal/model"
)

func newHabit(freq model.Frequency, completed ...string) *model.Habit {
	return &model.Habit{
		ID:             "h1",
		Title:          "Morning Reflection",
		Frequency:      freq,
		StartDate:      "2025-01-01",
		EndDate:        "2025-12-31",
		CompletedDates: completed,
	}
}

func TestDailyActiveEveryDayInRange(t *testing.T) {
	h := newHabit(model.FrequencyDaily)

	assert.True(t, IsActive(h, "2025-01-01"))
	assert.True(t, IsActive(h, "2025-06-15"))
	assert.True(t, IsActive(h, "2025-12-31"))
}

func TestDailyInactiveOutsideRange(t *testing.T) {
	h := newHabit(model.FrequencyDaily)

	assert.False(t, IsActive(h, "2024-12-31"))
	assert.False(t, IsActive(h, "2026-01-01"))
}

func TestDailyIgnoresCompletionState(t *testing.T) {
	h := newHabit(model.FrequencyDaily, "2025-03-10")

	assert.True(t, IsActive(h, "2025-03-10"))
	assert.True(t, IsActive(h, "2025-03-11"))
}

func TestNonDailyOnlyOnCompletedDates(t *testing.T) {
	for _, freq := range []model.Frequency{model.FrequencyWeekly, model.FrequencyOneOff} {
		h := newHabit(freq, "2025-04-02", "2025-04-09")

		assert.True(t, IsActive(h, "2025-04-02"))
		assert.True(t, IsActive(h, "2025-04-09"))
		assert.False(t, IsActive(h, "2025-04-03"))
		// Once a completion exists, the nominal start date no longer counts.
		assert.False(t, IsActive(h, "2025-01-01"))
	}
}

func TestNonDailyNominalStartDateWhenNeverCompleted(t *testing.T) {
	h := newHabit(model.FrequencyWeekly)

	assert.True(t, IsActive(h, "2025-01-01"))
	assert.False(t, IsActive(h, "2025-01-02"))
	assert.False(t, IsActive(h, "2025-01-08"))
}

func TestCompletionOutsideRangeStillInactive(t *testing.T) {
	h := newHabit(model.FrequencyOneOff, "2026-02-01")

	assert.False(t, IsActive(h, "2026-02-01"))
}

func TestInvertedRangeNeverMatches(t *testing.T) {
	h := &model.Habit{
		Frequency: model.FrequencyDaily,
		StartDate: "2025-12-31",
		EndDate:   "2025-01-01",
	}

	assert.False(t, IsActive(h, "2025-06-15"))
	assert.False(t, IsActive(h, "2025-01-01"))
	assert.False(t, IsActive(h, "2025-12-31"))
}

func TestIsActivePure(t *testing.T) {
	h := newHabit(model.FrequencyWeekly, "2025-05-05")

	for i := 0; i < 3; i++ {
		assert.True(t, IsActive(h, "2025-05-05"))
		assert.False(t, IsActive(h, "2025-05-06"))
	}
	assert.Equal(t, []string{"2025-05-05"}, h.CompletedDates)
}
