package utils

import "github.com/google/uuid"

// NewID returns an opaque entity id tagged with its domain, e.g.
// "album-6f1c…". The prefix makes ids textually distinguishable across
// tables; the UUID suffix makes them collision resistant.
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
