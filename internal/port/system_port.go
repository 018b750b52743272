package port

import "time"

// Clock abstracts wall-clock reads so date generation is deterministic
// in tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator produces short opaque order ids. Uniqueness is expected
// to hold with overwhelming probability within a session, not to be
// guaranteed.
type IDGenerator interface {
	NewOrderID() string
}

// UserProvider exposes the current signed-in identity for display.
// The cart core itself has no dependency on it.
type UserProvider interface {
	CurrentUser() string
}
