package order

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// UUIDSource derives order ids from random UUIDs: the first eight hex
// characters, upper-cased for display.
type UUIDSource struct{}

func (UUIDSource) NewOrderID() string {
	return strings.ToUpper(uuid.NewString()[:8])
}
