package clock

import "time"

// Precision is the resolution of stored timestamps. BSON datetimes keep milliseconds,
// so times are cut to that before they are handed out.
const Precision = time.Millisecond

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/ArowuTest/raffle-backend/internal/common/clock Clock
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock in UTC
type DefaultClock struct{}

// Now returns the current time truncated to Precision
func (c *DefaultClock) Now() time.Time {
	return time.Now().UTC().Truncate(Precision)
}
