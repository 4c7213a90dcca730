package gradle

import "time"

// SetClock replaces the time source used to stamp results.
func (h *Harness) SetClock(now func() time.Time) {
	h.now = now
}
