package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"aaru/internal/model"
	"aaru/internal/snapshot"
)

func newTestStore(t *testing.T) (*Store, *snapshot.MemoryStore) {
	t.Helper()
	snapshots := snapshot.NewMemoryStore()
	st := New(snapshots, zap.NewNop())
	require.NoError(t, st.Load(context.Background()))
	return st, snapshots
}

func TestLoadSeedsWhenSnapshotsAbsent(t *testing.T) {
	st, snapshots := newTestStore(t)

	assert.Len(t, st.Pillars(), 9)
	require.Len(t, st.Goals(), 1)
	assert.Equal(t, "Master the Ancient Arts", st.Goals()[0].Title)
	require.Len(t, st.Habits(), 1)
	assert.Equal(t, "Morning Reflection", st.Habits()[0].Title)
	assert.Equal(t, "Garden of Aaru", st.Settings().AppName)

	// The seed is written back so a restart sees the same state.
	for _, name := range []string{snapshot.Pillars, snapshot.Goals, snapshot.Habits, snapshot.Settings} {
		_, err := snapshots.Get(context.Background(), name)
		assert.NoError(t, err, name)
	}
}

func TestLoadRecoversFromMalformedSnapshot(t *testing.T) {
	ctx := context.Background()
	snapshots := snapshot.NewMemoryStore()
	require.NoError(t, snapshots.Set(ctx, snapshot.Goals, []byte("{not json")))

	st := New(snapshots, zap.NewNop())
	require.NoError(t, st.Load(ctx))

	require.Len(t, st.Goals(), 1)
	assert.Equal(t, "g1", st.Goals()[0].ID)
}

func TestLoadPrefersPersistedState(t *testing.T) {
	ctx := context.Background()
	snapshots := snapshot.NewMemoryStore()
	goals := []model.Goal{{ID: "custom", Title: "Walk the River", PillarID: "health"}}
	doc, err := json.Marshal(goals)
	require.NoError(t, err)
	require.NoError(t, snapshots.Set(ctx, snapshot.Goals, doc))

	st := New(snapshots, zap.NewNop())
	require.NoError(t, st.Load(ctx))

	require.Len(t, st.Goals(), 1)
	assert.Equal(t, "custom", st.Goals()[0].ID)
}

func TestToggleInvolution(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	completed, found := st.ToggleHabit(ctx, "h1", "2025-03-01")
	require.True(t, found)
	assert.True(t, completed)

	completed, found = st.ToggleHabit(ctx, "h1", "2025-03-01")
	require.True(t, found)
	assert.False(t, completed)

	h, ok := st.Habit("h1")
	require.True(t, ok)
	assert.False(t, h.CompletedOn("2025-03-01"))
}

func TestToggleOddCountLeavesDatePresent(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, found := st.ToggleHabit(ctx, "h1", "2025-03-02")
		require.True(t, found)
	}

	h, _ := st.Habit("h1")
	assert.True(t, h.CompletedOn("2025-03-02"))
}

func TestToggleUnknownHabitIsNoop(t *testing.T) {
	st, _ := newTestStore(t)

	completed, found := st.ToggleHabit(context.Background(), "missing", "2025-03-01")
	assert.False(t, found)
	assert.False(t, completed)

	h, _ := st.Habit("h1")
	assert.Empty(t, h.CompletedDates)
}

func TestTogglePersistsSnapshot(t *testing.T) {
	st, snapshots := newTestStore(t)
	ctx := context.Background()

	st.ToggleHabit(ctx, "h1", "2025-03-03")

	doc, err := snapshots.Get(ctx, snapshot.Habits)
	require.NoError(t, err)
	var habits []model.Habit
	require.NoError(t, json.Unmarshal(doc, &habits))
	require.Len(t, habits, 1)
	assert.Contains(t, habits[0].CompletedDates, "2025-03-03")
}

func TestDeleteGoalCascades(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	st.AddGoal(ctx, model.Goal{ID: "g2", Title: "Tend the Treasury", PillarID: "finances"})
	st.AddHabit(ctx, model.Habit{ID: "h2", GoalID: "g2", Title: "Track spending"})
	st.AddHabit(ctx, model.Habit{ID: "h3", GoalID: "g2", Title: "Weekly ledger"})

	removed, found := st.DeleteGoal(ctx, "g2")
	require.True(t, found)
	assert.Equal(t, 2, removed)

	_, ok := st.Goal("g2")
	assert.False(t, ok)
	// Habits of other goals are untouched.
	_, ok = st.Habit("h1")
	assert.True(t, ok)
	_, ok = st.Habit("h2")
	assert.False(t, ok)
	_, ok = st.Habit("h3")
	assert.False(t, ok)
}

func TestDeleteGoalUnknown(t *testing.T) {
	st, _ := newTestStore(t)

	removed, found := st.DeleteGoal(context.Background(), "missing")
	assert.False(t, found)
	assert.Zero(t, removed)
	assert.Len(t, st.Goals(), 1)
}

func TestDeletePillarLeavesGoalsOrphaned(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	require.True(t, st.DeletePillar(ctx, "intellectual"))

	_, ok := st.Pillar("intellectual")
	assert.False(t, ok)
	// The seed goal still references the deleted pillar.
	g, ok := st.Goal("g1")
	require.True(t, ok)
	assert.Equal(t, "intellectual", g.PillarID)
}

func TestResetRestoresDefaults(t *testing.T) {
	st, snapshots := newTestStore(t)
	ctx := context.Background()

	st.AddGoal(ctx, model.Goal{ID: "g2", Title: "Extra"})
	st.ToggleHabit(ctx, "h1", "2025-03-01")
	st.UpdateSettings(ctx, model.Settings{AppName: "Renamed", Theme: "night", Font: "sans"})

	st.Reset(ctx)

	assert.Len(t, st.Goals(), 1)
	h, _ := st.Habit("h1")
	assert.Empty(t, h.CompletedDates)
	assert.Equal(t, "Garden of Aaru", st.Settings().AppName)

	doc, err := snapshots.Get(ctx, snapshot.Settings)
	require.NoError(t, err)
	var cfg model.Settings
	require.NoError(t, json.Unmarshal(doc, &cfg))
	assert.Equal(t, "Garden of Aaru", cfg.AppName)
}

func TestReadsReturnCopies(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()
	st.ToggleHabit(ctx, "h1", "2025-03-01")

	habits := st.Habits()
	habits[0].CompletedDates[0] = "mutated"

	h, _ := st.Habit("h1")
	assert.Equal(t, []string{"2025-03-01"}, h.CompletedDates)
}
