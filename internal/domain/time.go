package domain

import "time"

// CurrentTimeProvider abstracts access to the wall clock.
type CurrentTimeProvider interface {
	Now() time.Time
}
