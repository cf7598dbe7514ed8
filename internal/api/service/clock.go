package service

import (
	"sync"

	"github.com/covid-banking-ledger/internal/domain/shared"
)

// Clock supplies the current business date. Operations that arrive without
// an explicit occurring-on date are stamped with the clock's date, which
// keeps validation deterministic and testable instead of reading wall time
// ambiently.
type Clock interface {
	Today() shared.Date
}

// SimulatedClock is a settable clock. It lets callers replay operations on
// chosen dates, e.g. to observe the restriction-date rules flipping on.
type SimulatedClock struct {
	mu    sync.RWMutex
	today shared.Date
}

// NewSimulatedClock creates a clock starting on the given date.
func NewSimulatedClock(start shared.Date) *SimulatedClock {
	return &SimulatedClock{today: start}
}

// Today returns the clock's current date.
func (c *SimulatedClock) Today() shared.Date {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.today
}

// Set moves the clock to the given date. Moving backwards is allowed; the
// ledger only cares about the dates stamped onto transactions.
func (c *SimulatedClock) Set(d shared.Date) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.today = d
}
