package service

import "time"

// Routing keys for entity change events. Published best-effort on the
// topic exchange after each applied mutation; consumers are optional and
// a publish failure never fails the mutation.
const (
	EventPillarCreated   = "pillar.created"
	EventPillarDeleted   = "pillar.deleted"
	EventGoalCreated     = "goal.created"
	EventGoalDeleted     = "goal.deleted"
	EventHabitCreated    = "habit.created"
	EventHabitDeleted    = "habit.deleted"
	EventHabitToggled    = "habit.toggled"
	EventSettingsUpdated = "settings.updated"
	EventStateReset      = "state.reset"
)

type EntityEventPayload struct {
	EntityID   string    `json:"entity_id"`
	Title      string    `json:"title,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type GoalDeletedPayload struct {
	GoalID        string    `json:"goal_id"`
	RemovedHabits int       `json:"removed_habits"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type HabitToggledPayload struct {
	HabitID    string    `json:"habit_id"`
	Date       string    `json:"date"`
	Completed  bool      `json:"completed"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher is the slice of pkg/mq.Publisher the tracker needs.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}
