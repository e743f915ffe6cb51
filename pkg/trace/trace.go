// Package trace carries a per-request trace id through contexts so log
// lines from one request can be correlated.
package trace

import (
	"context"
	"crypto/rand"
	"encoding/hex"
)

type ctxKey struct{}

// Header is the HTTP header the trace id travels in.
const Header = "X-Trace-ID"

// NewID generates a fresh random trace id.
func NewID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// FromContext returns the trace id stored in ctx, or "".
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return id
	}
	return ""
}

// WithContext stores a trace id in ctx.
func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}
