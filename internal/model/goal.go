package model

// Goal is a long-range outcome scoped to one pillar, valid over an
// inclusive start/end date window. Deleting a goal cascades to every
// habit that references it.
type Goal struct {
	ID          string `json:"id"`
	PillarID    string `json:"pillar_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	IsCompleted bool   `json:"is_completed,omitempty"`
}
