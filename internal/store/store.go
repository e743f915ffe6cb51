// Package store owns the in-memory entity collections and is the single
// mutation entry point for each entity kind. Every mutation rewrites the
// affected collection's persisted snapshot in full before returning, so
// persistence stays a cross-cutting concern at this one boundary.
package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"aaru/internal/model"
	"aaru/internal/snapshot"
	"aaru/pkg/metrics"
)

type Store struct {
	snapshots snapshot.Store
	logger    *zap.Logger

	mu       sync.RWMutex
	pillars  []model.Pillar
	goals    []model.Goal
	habits   []model.Habit
	settings model.Settings
}

func New(snapshots snapshot.Store, logger *zap.Logger) *Store {
	return &Store{
		snapshots: snapshots,
		logger:    logger,
	}
}

// Load hydrates every collection from its persisted snapshot. A missing or
// unreadable snapshot is silently replaced by the built-in seed for that
// collection and the seed is written back, so a fresh deployment starts
// with the default nine pillars, one goal and one habit.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hydrate(ctx, snapshot.Pillars, &s.pillars) {
		s.pillars = model.DefaultPillars()
		s.persist(ctx, snapshot.Pillars, s.pillars)
	}
	if !s.hydrate(ctx, snapshot.Goals, &s.goals) {
		s.goals = model.DefaultGoals()
		s.persist(ctx, snapshot.Goals, s.goals)
	}
	if !s.hydrate(ctx, snapshot.Habits, &s.habits) {
		s.habits = model.DefaultHabits()
		s.persist(ctx, snapshot.Habits, s.habits)
	}
	if !s.hydrate(ctx, snapshot.Settings, &s.settings) {
		s.settings = model.DefaultSettings()
		s.persist(ctx, snapshot.Settings, s.settings)
	}

	s.logger.Info("State hydrated",
		zap.Int("pillars", len(s.pillars)),
		zap.Int("goals", len(s.goals)),
		zap.Int("habits", len(s.habits)),
	)
	return nil
}

// hydrate fills dst from the named snapshot, reporting success. Absence
// and corruption both count as a miss; nothing is surfaced to the caller.
func (s *Store) hydrate(ctx context.Context, name string, dst any) bool {
	doc, err := s.snapshots.Get(ctx, name)
	if err != nil {
		if err != snapshot.ErrNotFound {
			s.logger.Warn("Snapshot unreadable, falling back to seed",
				zap.String("name", name), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(doc, dst); err != nil {
		s.logger.Warn("Snapshot malformed, falling back to seed",
			zap.String("name", name), zap.Error(err))
		return false
	}
	return true
}

// persist rewrites one collection's snapshot. Failures are logged and
// swallowed: the in-memory state stays authoritative for the session.
func (s *Store) persist(ctx context.Context, name string, v any) {
	doc, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("Failed to serialize snapshot", zap.String("name", name), zap.Error(err))
		return
	}
	start := time.Now()
	if err := s.snapshots.Set(ctx, name, doc); err != nil {
		s.logger.Error("Failed to persist snapshot", zap.String("name", name), zap.Error(err))
		return
	}
	metrics.RecordSnapshotWrite(name, time.Since(start))
}

// ---- reads ----

func (s *Store) Pillars() []model.Pillar {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Pillar, len(s.pillars))
	copy(out, s.pillars)
	return out
}

// Pillar looks up a pillar by id. Goals and habits may reference pillars
// that no longer exist, so callers must handle absence.
func (s *Store) Pillar(id string) (model.Pillar, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.pillars {
		if p.ID == id {
			return p, true
		}
	}
	return model.Pillar{}, false
}

func (s *Store) Goals() []model.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Goal, len(s.goals))
	copy(out, s.goals)
	return out
}

func (s *Store) Goal(id string) (model.Goal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.goals {
		if g.ID == id {
			return g, true
		}
	}
	return model.Goal{}, false
}

func (s *Store) GoalsByPillar(pillarID string) []model.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Goal
	for _, g := range s.goals {
		if g.PillarID == pillarID {
			out = append(out, g)
		}
	}
	return out
}

func (s *Store) Habits() []model.Habit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneHabits(s.habits)
}

func (s *Store) Habit(id string) (model.Habit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.habits {
		if s.habits[i].ID == id {
			return cloneHabit(s.habits[i]), true
		}
	}
	return model.Habit{}, false
}

func (s *Store) HabitsByGoal(goalID string) []model.Habit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Habit
	for i := range s.habits {
		if s.habits[i].GoalID == goalID {
			out = append(out, cloneHabit(s.habits[i]))
		}
	}
	return out
}

func (s *Store) Settings() model.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// ---- mutations ----

func (s *Store) AddPillar(ctx context.Context, p model.Pillar) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pillars = append(s.pillars, p)
	s.persist(ctx, snapshot.Pillars, s.pillars)
}

// DeletePillar removes a pillar without cascading: goals keep their
// pillar reference and become orphaned.
func (s *Store) DeletePillar(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.pillars[:0]
	found := false
	for _, p := range s.pillars {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	s.pillars = kept
	if found {
		s.persist(ctx, snapshot.Pillars, s.pillars)
	}
	return found
}

func (s *Store) AddGoal(ctx context.Context, g model.Goal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals = append(s.goals, g)
	s.persist(ctx, snapshot.Goals, s.goals)
}

// DeleteGoal removes the goal and every habit attached to it in one
// atomic step; both collections are updated under the same lock hold so
// no partial cascade is ever observable. Returns the number of habits
// removed and whether the goal existed.
func (s *Store) DeleteGoal(ctx context.Context, id string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keptGoals := s.goals[:0]
	found := false
	for _, g := range s.goals {
		if g.ID == id {
			found = true
			continue
		}
		keptGoals = append(keptGoals, g)
	}
	if !found {
		return 0, false
	}
	s.goals = keptGoals

	keptHabits := s.habits[:0]
	removed := 0
	for _, h := range s.habits {
		if h.GoalID == id {
			removed++
			continue
		}
		keptHabits = append(keptHabits, h)
	}
	s.habits = keptHabits

	s.persist(ctx, snapshot.Goals, s.goals)
	s.persist(ctx, snapshot.Habits, s.habits)
	return removed, true
}

func (s *Store) AddHabit(ctx context.Context, h model.Habit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.habits = append(s.habits, h)
	s.persist(ctx, snapshot.Habits, s.habits)
}

func (s *Store) DeleteHabit(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.habits[:0]
	found := false
	for _, h := range s.habits {
		if h.ID == id {
			found = true
			continue
		}
		kept = append(kept, h)
	}
	s.habits = kept
	if found {
		s.persist(ctx, snapshot.Habits, s.habits)
	}
	return found
}

// ToggleHabit flips membership of date in the habit's completed-date set:
// present removes it, absent inserts it, so two toggles cancel out. An
// unknown habit id is a no-op. Returns the resulting completion state and
// whether the habit exists.
func (s *Store) ToggleHabit(ctx context.Context, id, date string) (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.habits {
		h := &s.habits[i]
		if h.ID != id {
			continue
		}
		if h.CompletedOn(date) {
			kept := h.CompletedDates[:0]
			for _, d := range h.CompletedDates {
				if d != date {
					kept = append(kept, d)
				}
			}
			h.CompletedDates = kept
			s.persist(ctx, snapshot.Habits, s.habits)
			return false, true
		}
		h.CompletedDates = append(h.CompletedDates, date)
		s.persist(ctx, snapshot.Habits, s.habits)
		return true, true
	}
	return false, false
}

func (s *Store) UpdateSettings(ctx context.Context, cfg model.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = cfg
	s.persist(ctx, snapshot.Settings, s.settings)
}

// Reset wipes every persisted snapshot and reloads the seed defaults.
// Irreversible; confirmation gating happens at the API boundary.
func (s *Store) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range []string{snapshot.Pillars, snapshot.Goals, snapshot.Habits, snapshot.Settings} {
		if err := s.snapshots.Delete(ctx, name); err != nil {
			s.logger.Error("Failed to delete snapshot on reset", zap.String("name", name), zap.Error(err))
		}
	}

	s.pillars = model.DefaultPillars()
	s.goals = model.DefaultGoals()
	s.habits = model.DefaultHabits()
	s.settings = model.DefaultSettings()

	s.persist(ctx, snapshot.Pillars, s.pillars)
	s.persist(ctx, snapshot.Goals, s.goals)
	s.persist(ctx, snapshot.Habits, s.habits)
	s.persist(ctx, snapshot.Settings, s.settings)

	s.logger.Info("State reset to defaults")
}

func cloneHabit(h model.Habit) model.Habit {
	dates := make([]string, len(h.CompletedDates))
	copy(dates, h.CompletedDates)
	h.CompletedDates = dates
	return h
}

func cloneHabits(habits []model.Habit) []model.Habit {
	out := make([]model.Habit, len(habits))
	for i := range habits {
		out[i] = cloneHabit(habits[i])
	}
	return out
}
