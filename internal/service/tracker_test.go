package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"aaru/internal/calendar"
	"aaru/internal/model"
	"aaru/internal/progress"
	"aaru/internal/snapshot"
	"aaru/internal/store"
)

type capturedEvent struct {
	routingKey string
	payload    any
}

type fakePublisher struct {
	events []capturedEvent
}

func (f *fakePublisher) Publish(routingKey string, payload any) error {
	f.events = append(f.events, capturedEvent{routingKey: routingKey, payload: payload})
	return nil
}

func newTestTracker(t *testing.T) (*Tracker, *fakePublisher) {
	t.Helper()
	st := store.New(snapshot.NewMemoryStore(), zap.NewNop())
	require.NoError(t, st.Load(context.Background()))
	pub := &fakePublisher{}
	return NewTracker(st, pub, zap.NewNop()), pub
}

func TestCreateGoalRequiresTitle(t *testing.T) {
	tr, pub := newTestTracker(t)

	_, err := tr.CreateGoal(context.Background(), CreateGoalInput{PillarID: "health"})
	assert.ErrorIs(t, err, ErrTitleRequired)
	// Nothing was written and no event fired.
	assert.Len(t, tr.Goals(), 1)
	assert.Empty(t, pub.events)
}

func TestCreatePillarDefaults(t *testing.T) {
	tr, _ := newTestTracker(t)

	p, err := tr.CreatePillar(context.Background(), CreatePillarInput{Name: "The Forge"})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "📜", p.Icon)
	assert.Equal(t, "#94a3b8", p.Color)
}

func TestCreatePillarRequiresName(t *testing.T) {
	tr, _ := newTestTracker(t)

	_, err := tr.CreatePillar(context.Background(), CreatePillarInput{Description: "no name"})
	assert.ErrorIs(t, err, ErrTitleRequired)
	assert.Len(t, tr.Pillars(), 9)
}

func TestCreateHabitCopiesGoalPillar(t *testing.T) {
	tr, _ := newTestTracker(t)

	h, err := tr.CreateHabit(context.Background(), CreateHabitInput{
		GoalID:    "g1",
		Title:     "Evening Review",
		Frequency: "weekly",
		StartDate: "2025-01-01",
		EndDate:   "2025-12-31",
	})
	require.NoError(t, err)
	assert.Equal(t, "intellectual", h.PillarID)
	assert.Equal(t, model.FrequencyWeekly, h.Frequency)
	assert.NotNil(t, h.CompletedDates)
}

func TestCreateHabitUnknownGoal(t *testing.T) {
	tr, _ := newTestTracker(t)

	_, err := tr.CreateHabit(context.Background(), CreateHabitInput{
		GoalID:    "missing",
		Title:     "Orphan ritual",
		Frequency: "daily",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateHabitRejectsUnknownFrequency(t *testing.T) {
	tr, _ := newTestTracker(t)

	_, err := tr.CreateHabit(context.Background(), CreateHabitInput{
		GoalID:    "g1",
		Title:     "Sometimes",
		Frequency: "fortnightly",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteGoalCascadesAndPublishes(t *testing.T) {
	tr, pub := newTestTracker(t)
	ctx := context.Background()

	require.NoError(t, tr.DeleteGoal(ctx, "g1"))

	assert.Empty(t, tr.Goals())
	assert.Empty(t, tr.Habits())

	require.NotEmpty(t, pub.events)
	last := pub.events[len(pub.events)-1]
	assert.Equal(t, EventGoalDeleted, last.routingKey)
	payload, ok := last.payload.(GoalDeletedPayload)
	require.True(t, ok)
	assert.Equal(t, 1, payload.RemovedHabits)
}

func TestToggleDefaultsToToday(t *testing.T) {
	tr, pub := newTestTracker(t)

	completed, found := tr.ToggleHabit(context.Background(), "h1", "")
	require.True(t, found)
	assert.True(t, completed)

	h := tr.Habits()[0]
	assert.True(t, h.CompletedOn(model.Today()))

	last := pub.events[len(pub.events)-1]
	assert.Equal(t, EventHabitToggled, last.routingKey)
}

func TestToggleUnknownHabitPublishesNothing(t *testing.T) {
	tr, pub := newTestTracker(t)

	_, found := tr.ToggleHabit(context.Background(), "missing", "2025-05-01")
	assert.False(t, found)
	assert.Empty(t, pub.events)
}

func TestGrowthThroughService(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	score, stage := tr.Growth("g1")
	assert.Zero(t, score)
	assert.Equal(t, progress.StageSeed, stage)

	for i := 1; i <= 11; i++ {
		date := model.FormatDate(mustDate(t, 2025, 4, i))
		_, found := tr.ToggleHabit(ctx, "h1", date)
		require.True(t, found)
	}
	score, stage = tr.Growth("g1")
	assert.Equal(t, 100.0, score)
	assert.Equal(t, progress.StageTree, stage)
}

func TestUpdateSettingsValidatesEnums(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	err := tr.UpdateSettings(ctx, model.Settings{AppName: "X", Theme: "plaid", Font: "serif"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = tr.UpdateSettings(ctx, model.Settings{AppName: "X", Theme: "night", Font: "comic"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = tr.UpdateSettings(ctx, model.Settings{AppName: "X", Theme: "night", Font: "sans"})
	require.NoError(t, err)
	assert.Equal(t, "night", tr.Settings().Theme)
}

func TestGoalsSortedByStartDate(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	_, err := tr.CreateGoal(ctx, CreateGoalInput{Title: "Earlier", PillarID: "health", StartDate: "2024-01-01", EndDate: "2024-06-30"})
	require.NoError(t, err)
	_, err = tr.CreateGoal(ctx, CreateGoalInput{Title: "Later", PillarID: "health", StartDate: "2026-01-01", EndDate: "2026-06-30"})
	require.NoError(t, err)

	goals := tr.Goals()
	require.Len(t, goals, 3)
	assert.Equal(t, "Earlier", goals[0].Title)
	assert.Equal(t, "Master the Ancient Arts", goals[1].Title)
	assert.Equal(t, "Later", goals[2].Title)
}

func TestCalendarProjection(t *testing.T) {
	tr, _ := newTestTracker(t)

	cells := tr.Calendar(calendar.ViewWeek, mustDate(t, 2025, 6, 18))
	require.Len(t, cells, 7)
	for _, cell := range cells {
		// The seed habit is daily across 2025, so it fills the week.
		require.Len(t, cell.Occurrences, 1)
		assert.Equal(t, "h1", cell.Occurrences[0].Habit.ID)
	}
}

func TestResetThroughService(t *testing.T) {
	tr, pub := newTestTracker(t)
	ctx := context.Background()

	tr.ToggleHabit(ctx, "h1", "2025-03-01")
	tr.Reset(ctx)

	assert.Empty(t, tr.Habits()[0].CompletedDates)
	last := pub.events[len(pub.events)-1]
	assert.Equal(t, EventStateReset, last.routingKey)
}

func mustDate(t *testing.T, y, m, d int) time.Time {
	t.Helper()
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}
