package kv

import (
	"strconv"
	"sync"
	"time"

	"github.com/coder/quartz"
)

type entry struct {
	value     string
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// Memory is an in-memory Store with lazy expiry.
// It is safe for concurrent use.
type Memory struct {
	mu      sync.Mutex
	entries map[string]entry
	clock   quartz.Clock
}

// NewMemory returns an empty in-memory store
func NewMemory() *Memory {
	return NewMemoryWithClock(quartz.NewReal())
}

// NewMemoryWithClock returns an empty in-memory store using the provided
// clock for expiry. Tests should pass a quartz mock.
func NewMemoryWithClock(clock quartz.Clock) *Memory {
	return &Memory{
		entries: make(map[string]entry),
		clock:   clock,
	}
}

// Get returns the value for the key, or false if missing or expired
func (m *Memory) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.getEntry(key)
	if !ok {
		return "", false
	}

	return e.value, true
}

// Set stores a value with no expiry
func (m *Memory) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = entry{value: value}
}

// SetTTL stores a value that expires after ttl
func (m *Memory) SetTTL(key, value string, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = entry{
		value:     value,
		expiresAt: m.clock.Now().Add(ttl),
	}
}

// IncrBy atomically adds delta to the integer stored at key and returns the
// new value
func (m *Memory) IncrBy(key string, delta int) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	current := 0
	if e, ok := m.getEntry(key); ok {
		// a non-integer value counts as zero
		current, _ = strconv.Atoi(e.value)
	}

	current += delta
	m.entries[key] = entry{value: strconv.Itoa(current)}
	return current
}

// Delete removes the key
func (m *Memory) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
}

// getEntry must be called with the mutex held
func (m *Memory) getEntry(key string) (entry, bool) {
	e, ok := m.entries[key]
	if !ok {
		return entry{}, false
	}

	if e.expired(m.clock.Now()) {
		delete(m.entries, key)
		return entry{}, false
	}

	return e, true
}
