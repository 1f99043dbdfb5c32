package formstore

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrymomot/validify/pkg/formstate"
)

type memoryEntry struct {
	state     formstate.FormState
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryStore implements Store in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time

	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a store whose snapshots expire ttl after their last
// save. A ttl of zero keeps snapshots forever. A positive cleanupInterval
// starts a goroutine that drops expired snapshots; stop it with Close.
func NewMemoryStore(ttl, cleanupInterval time.Duration) *MemoryStore {
	m := &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
		done:    make(chan struct{}),
	}

	if cleanupInterval > 0 {
		m.ticker = time.NewTicker(cleanupInterval)
		go m.cleanupLoop()
	}

	return m
}

// Save stores a copy of state.
func (m *MemoryStore) Save(_ context.Context, id string, state formstate.FormState) error {
	if id == "" {
		return ErrEmptyID
	}

	entry := memoryEntry{state: state.Clone()}
	if m.ttl > 0 {
		entry.expiresAt = m.now().Add(m.ttl)
	}

	m.mu.Lock()
	m.entries[id] = entry
	m.mu.Unlock()
	return nil
}

// Load returns a copy of the snapshot stored under id.
func (m *MemoryStore) Load(_ context.Context, id string) (formstate.FormState, error) {
	m.mu.RLock()
	entry, ok := m.entries[id]
	m.mu.RUnlock()

	if !ok {
		return formstate.FormState{}, ErrNotFound
	}
	if entry.expired(m.now()) {
		m.mu.Lock()
		delete(m.entries, id)
		m.mu.Unlock()
		return formstate.FormState{}, ErrNotFound
	}

	return entry.state.Clone(), nil
}

// Delete removes the snapshot stored under id.
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.entries, id)
	m.mu.Unlock()
	return nil
}

// DeleteExpired drops every expired snapshot.
func (m *MemoryStore) DeleteExpired(_ context.Context) error {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	for id, entry := range m.entries {
		if entry.expired(now) {
			delete(m.entries, id)
		}
	}
	return nil
}

// Len returns the number of stored snapshots, expired ones included.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Close stops the cleanup goroutine. It is safe to call more than once.
func (m *MemoryStore) Close() error {
	m.once.Do(func() {
		if m.ticker != nil {
			m.ticker.Stop()
		}
		close(m.done)
	})
	return nil
}

func (m *MemoryStore) cleanupLoop() {
	for {
		select {
		case <-m.ticker.C:
			_ = m.DeleteExpired(context.Background())
		case <-m.done:
			return
		}
	}
}
