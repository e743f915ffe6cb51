package util

import "github.com/google/uuid"

// NewID returns a collision-resistant entity identifier. Nothing in the
// tracker depends on the id format, only on uniqueness and stability.
func NewID() string {
	return uuid.NewString()
}
