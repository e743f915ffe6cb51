package progress

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"aaru/internal/model"
)

func habitWithCompletions(goalID string, n int) model.Habit {
	dates := make([]string, n)
	for i := range dates {
		dates[i] = fmt.Sprintf("2025-01-%02d", i+1)
	}
	return model.Habit{
		ID:             fmt.Sprintf("%s-h%d", goalID, n),
		GoalID:         goalID,
		CompletedDates: dates,
	}
}

func TestGrowthNoHabits(t *testing.T) {
	assert.Zero(t, Growth("g1", nil))
	assert.Zero(t, Growth("g1", []model.Habit{habitWithCompletions("other", 5)}))
}

func TestGrowthLinearScore(t *testing.T) {
	habits := []model.Habit{habitWithCompletions("g1", 5)}
	assert.InDelta(t, 50, Growth("g1", habits), 1e-9)

	habits = append(habits, habitWithCompletions("g1", 0))
	// Two habits: target 20, completions 5.
	assert.InDelta(t, 25, Growth("g1", habits), 1e-9)
}

func TestGrowthSaturatesAtExactTarget(t *testing.T) {
	habits := []model.Habit{habitWithCompletions("g1", 10)}
	assert.Equal(t, 100.0, Growth("g1", habits))
}

func TestGrowthNeverExceeds100(t *testing.T) {
	habits := []model.Habit{habitWithCompletions("g1", 11)}
	assert.Equal(t, 100.0, Growth("g1", habits))

	habits = []model.Habit{habitWithCompletions("g1", 25)}
	assert.Equal(t, 100.0, Growth("g1", habits))
}

func TestGrowthIgnoresOtherGoals(t *testing.T) {
	habits := []model.Habit{
		habitWithCompletions("g1", 3),
		habitWithCompletions("g2", 10),
	}
	assert.InDelta(t, 30, Growth("g1", habits), 1e-9)
}

func TestMasterTheAncientArtsScenario(t *testing.T) {
	// One daily habit, completions grow from 0 through saturation.
	h := model.Habit{
		ID:        "h1",
		GoalID:    "g1",
		Frequency: model.FrequencyDaily,
		StartDate: "2025-01-01",
		EndDate:   "2025-12-31",
	}
	assert.Zero(t, Growth("g1", []model.Habit{h}))

	for i := 1; i <= 10; i++ {
		h.CompletedDates = append(h.CompletedDates, fmt.Sprintf("2025-02-%02d", i))
	}
	assert.Equal(t, 100.0, Growth("g1", []model.Habit{h}))

	h.CompletedDates = append(h.CompletedDates, "2025-02-11")
	assert.Equal(t, 100.0, Growth("g1", []model.Habit{h}))
}

func TestStageThresholds(t *testing.T) {
	assert.Equal(t, StageSeed, StageFor(0))
	assert.Equal(t, StageSprout, StageFor(0.1))
	assert.Equal(t, StageSprout, StageFor(29.9))
	assert.Equal(t, StageSapling, StageFor(30))
	assert.Equal(t, StageSapling, StageFor(69.9))
	assert.Equal(t, StageTree, StageFor(70))
	assert.Equal(t, StageTree, StageFor(100))
}
