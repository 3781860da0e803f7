// Package ids generates the opaque, time-ordered identifiers spec.md §3
// requires for utterances and mesh links: "string form of a time-ordered
// UUID is sufficient; equality and hashability are the only requirements."
package ids

import "github.com/google/uuid"

// New returns a new time-ordered (version 1) UUID in its string form.
// Falls back to a random (version 4) UUID if uuid.NewUUID returns an error.
func New() string {
	if id, err := uuid.NewUUID(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
