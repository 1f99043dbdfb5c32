package formstore

import "time"

// SetClock replaces the time source of m.
func (m *MemoryStore) SetClock(now func() time.Time) {
	m.now = now
}
