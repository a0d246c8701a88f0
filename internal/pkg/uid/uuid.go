package uid

import "github.com/google/uuid"

// UUID generates UUID strings, version 7 unless the generator fails.
type UUID struct {
	newID func() (uuid.UUID, error)
}

// NewUUID returns a UUID generator.
func NewUUID() *UUID {
	return &UUID{newID: uuid.NewV7}
}

// Generate returns a new UUID string, falling back to version 4.
func (u *UUID) Generate() string {
	if id, err := u.newID(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
