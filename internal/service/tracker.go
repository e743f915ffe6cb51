// Package service orchestrates tracker mutations: validation, id
// generation, the goal-to-habit cascade, change events and metrics, all
// on top of the store's snapshot-on-write entry points.
package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"aaru/internal/calendar"
	"aaru/internal/model"
	"aaru/internal/progress"
	"aaru/internal/store"
	"aaru/pkg/logger"
	"aaru/pkg/metrics"
	"aaru/pkg/util"
)

var (
	// ErrTitleRequired rejects creates with an empty required title; no
	// partial state is ever written.
	ErrTitleRequired = errors.New("title is required")
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
)

type Tracker struct {
	store     *store.Store
	publisher EventPublisher
	logger    *zap.Logger
}

// NewTracker wires the tracker service. publisher may be nil when change
// events are disabled.
func NewTracker(st *store.Store, publisher EventPublisher, log *zap.Logger) *Tracker {
	return &Tracker{
		store:     st,
		publisher: publisher,
		logger:    log,
	}
}

// publish emits a change event without ever failing the mutation.
func (t *Tracker) publish(ctx context.Context, routingKey string, payload any) {
	if t.publisher == nil {
		return
	}
	if err := t.publisher.Publish(routingKey, payload); err != nil {
		logger.WithTrace(ctx, t.logger).Warn("Failed to publish change event",
			zap.String("routing_key", routingKey),
			zap.Error(err),
		)
	}
}

// ---- pillars ----

type CreatePillarInput struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Gradient    string `json:"gradient"`
}

func (t *Tracker) Pillars() []model.Pillar {
	return t.store.Pillars()
}

// Pillar resolves a pillar reference. Goals may point at pillars that
// were deleted, so absence is a normal outcome, not an error.
func (t *Tracker) Pillar(id string) (model.Pillar, bool) {
	return t.store.Pillar(id)
}

func (t *Tracker) CreatePillar(ctx context.Context, in CreatePillarInput) (model.Pillar, error) {
	if in.Name == "" {
		return model.Pillar{}, ErrTitleRequired
	}
	if in.Icon == "" {
		in.Icon = "📜"
	}
	if in.Color == "" {
		in.Color = "#94a3b8"
	}
	if in.Gradient == "" {
		in.Gradient = "from-gray-400 to-gray-500"
	}

	p := model.Pillar{
		ID:          util.NewID(),
		Name:        in.Name,
		Icon:        in.Icon,
		Description: in.Description,
		Color:       in.Color,
		Gradient:    in.Gradient,
	}
	t.store.AddPillar(ctx, p)
	metrics.IncrementMutation("pillar", "create")
	t.publish(ctx, EventPillarCreated, EntityEventPayload{EntityID: p.ID, Title: p.Name, OccurredAt: time.Now()})

	logger.WithTrace(ctx, t.logger).Info("Pillar created", zap.String("pillar_id", p.ID))
	return p, nil
}

// DeletePillar removes the pillar only; goals referencing it stay behind
// as orphans.
func (t *Tracker) DeletePillar(ctx context.Context, id string) error {
	if !t.store.DeletePillar(ctx, id) {
		return fmt.Errorf("pillar %s: %w", id, ErrNotFound)
	}
	metrics.IncrementMutation("pillar", "delete")
	t.publish(ctx, EventPillarDeleted, EntityEventPayload{EntityID: id, OccurredAt: time.Now()})
	return nil
}

// ---- goals ----

type CreateGoalInput struct {
	PillarID    string `json:"pillar_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// Goals returns all goals ordered by start date (timeline order).
func (t *Tracker) Goals() []model.Goal {
	goals := t.store.Goals()
	sort.SliceStable(goals, func(i, j int) bool {
		return goals[i].StartDate < goals[j].StartDate
	})
	return goals
}

func (t *Tracker) Goal(id string) (model.Goal, bool) {
	return t.store.Goal(id)
}

func (t *Tracker) GoalsByPillar(pillarID string) []model.Goal {
	return t.store.GoalsByPillar(pillarID)
}

// CreateGoal adds a goal. The pillar reference is not checked for
// existence and the date range is not validated; a window with
// start > end simply never matches anything downstream.
func (t *Tracker) CreateGoal(ctx context.Context, in CreateGoalInput) (model.Goal, error) {
	if in.Title == "" {
		return model.Goal{}, ErrTitleRequired
	}

	g := model.Goal{
		ID:          util.NewID(),
		PillarID:    in.PillarID,
		Title:       in.Title,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
	}
	t.store.AddGoal(ctx, g)
	metrics.IncrementMutation("goal", "create")
	t.publish(ctx, EventGoalCreated, EntityEventPayload{EntityID: g.ID, Title: g.Title, OccurredAt: time.Now()})

	logger.WithTrace(ctx, t.logger).Info("Goal created",
		zap.String("goal_id", g.ID),
		zap.String("pillar_id", g.PillarID),
	)
	return g, nil
}

// DeleteGoal removes the goal and cascades to every habit attached to it
// in one atomic operation.
func (t *Tracker) DeleteGoal(ctx context.Context, id string) error {
	removed, found := t.store.DeleteGoal(ctx, id)
	if !found {
		return fmt.Errorf("goal %s: %w", id, ErrNotFound)
	}
	metrics.IncrementMutation("goal", "delete")
	t.publish(ctx, EventGoalDeleted, GoalDeletedPayload{GoalID: id, RemovedHabits: removed, OccurredAt: time.Now()})

	logger.WithTrace(ctx, t.logger).Info("Goal deleted",
		zap.String("goal_id", id),
		zap.Int("removed_habits", removed),
	)
	return nil
}

// Growth returns the goal's saturating 0-100 completion score and its
// growth stage.
func (t *Tracker) Growth(goalID string) (float64, progress.Stage) {
	score := progress.Growth(goalID, t.store.Habits())
	return score, progress.StageFor(score)
}

// ---- habits ----

type CreateHabitInput struct {
	GoalID    string `json:"goal_id"`
	Title     string `json:"title"`
	Frequency string `json:"frequency"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	StartTime string `json:"start_time"`
	Duration  int    `json:"duration"`
}

func (t *Tracker) Habits() []model.Habit {
	return t.store.Habits()
}

func (t *Tracker) HabitsByGoal(goalID string) []model.Habit {
	return t.store.HabitsByGoal(goalID)
}

// CreateHabit adds a ritual under an existing goal, copying the goal's
// pillar reference at creation time (it is not kept in sync afterwards).
func (t *Tracker) CreateHabit(ctx context.Context, in CreateHabitInput) (model.Habit, error) {
	if in.Title == "" {
		return model.Habit{}, ErrTitleRequired
	}
	goal, ok := t.store.Goal(in.GoalID)
	if !ok {
		return model.Habit{}, fmt.Errorf("goal %s: %w", in.GoalID, ErrNotFound)
	}
	freq, err := parseFrequency(in.Frequency)
	if err != nil {
		return model.Habit{}, err
	}

	h := model.Habit{
		ID:             util.NewID(),
		Title:          in.Title,
		GoalID:         goal.ID,
		PillarID:       goal.PillarID,
		CompletedDates: []string{},
		Frequency:      freq,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		StartTime:      in.StartTime,
		Duration:       in.Duration,
		CreatedAt:      time.Now(),
	}
	t.store.AddHabit(ctx, h)
	metrics.IncrementMutation("habit", "create")
	t.publish(ctx, EventHabitCreated, EntityEventPayload{EntityID: h.ID, Title: h.Title, OccurredAt: time.Now()})

	logger.WithTrace(ctx, t.logger).Info("Habit created",
		zap.String("habit_id", h.ID),
		zap.String("goal_id", h.GoalID),
		zap.String("frequency", string(h.Frequency)),
	)
	return h, nil
}

func (t *Tracker) DeleteHabit(ctx context.Context, id string) error {
	if !t.store.DeleteHabit(ctx, id) {
		return fmt.Errorf("habit %s: %w", id, ErrNotFound)
	}
	metrics.IncrementMutation("habit", "delete")
	t.publish(ctx, EventHabitDeleted, EntityEventPayload{EntityID: id, OccurredAt: time.Now()})
	return nil
}

// ToggleHabit flips the completion mark for one date. An empty date means
// today in the local timezone. An unknown habit id is a no-op, reported
// through found rather than an error.
func (t *Tracker) ToggleHabit(ctx context.Context, id, date string) (completed, found bool) {
	if date == "" {
		date = model.Today()
	}
	completed, found = t.store.ToggleHabit(ctx, id, date)
	if !found {
		return false, false
	}
	metrics.IncrementMutation("habit", "toggle")
	t.publish(ctx, EventHabitToggled, HabitToggledPayload{
		HabitID:    id,
		Date:       date,
		Completed:  completed,
		OccurredAt: time.Now(),
	})
	return completed, true
}

// ---- settings ----

func (t *Tracker) Settings() model.Settings {
	return t.store.Settings()
}

func (t *Tracker) UpdateSettings(ctx context.Context, cfg model.Settings) error {
	if !model.ValidTheme(cfg.Theme) {
		return fmt.Errorf("theme %q: %w", cfg.Theme, ErrInvalidInput)
	}
	if !model.ValidFont(cfg.Font) {
		return fmt.Errorf("font %q: %w", cfg.Font, ErrInvalidInput)
	}
	t.store.UpdateSettings(ctx, cfg)
	metrics.IncrementMutation("settings", "update")
	t.publish(ctx, EventSettingsUpdated, EntityEventPayload{OccurredAt: time.Now()})
	return nil
}

// ---- calendar ----

// Calendar projects the habit collection onto the requested view window.
func (t *Tracker) Calendar(view calendar.View, anchor time.Time) []calendar.Cell {
	return calendar.Project(view, anchor, t.store.Habits())
}

// ---- reset ----

// Reset wipes all persisted snapshots and restores the seed defaults.
// Confirmation gating happens at the HTTP boundary.
func (t *Tracker) Reset(ctx context.Context) {
	t.store.Reset(ctx)
	metrics.IncrementMutation("settings", "reset")
	t.publish(ctx, EventStateReset, EntityEventPayload{OccurredAt: time.Now()})
}

func parseFrequency(s string) (model.Frequency, error) {
	switch model.Frequency(s) {
	case model.FrequencyDaily, model.FrequencyWeekly, model.FrequencyOneOff:
		return model.Frequency(s), nil
	}
	return "", fmt.Errorf("frequency %q: %w", s, ErrInvalidInput)
}
