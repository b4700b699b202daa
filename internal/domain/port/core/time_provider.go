package core

import (
	"time"
)

// TimeProvider abstracts time operations so that record timestamps are
// testable with a fixed clock
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}
