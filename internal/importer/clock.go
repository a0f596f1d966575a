package importer

import (
	"time"

	"github.com/google/uuid"
)

type systemClock struct{}

// Now return current UTC time truncated to microseconds, which is what Postgres stores.
func (c systemClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// newRunID returns random run identifier.
func newRunID() uuid.UUID {
	return uuid.New()
}
