package model

// Pillar is a user-defined life-domain category (health, career, ...).
// Goals reference a pillar by id but are not owned by it: deleting a
// pillar leaves its goals in place, orphaned.
type Pillar struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Gradient    string `json:"gradient"`
}
