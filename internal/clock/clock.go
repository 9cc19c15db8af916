// Package clock supplies timestamps and opaque identifiers to the board engine.
package clock

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// isoLayout matches the millisecond ISO-8601 form used in export filenames.
const isoLayout = "2006-01-02T15:04:05.000Z"

// Source provides the current time and fresh identifiers.
type Source interface {
	// Now returns the current time.
	Now() time.Time
	// NewID returns an identifier never returned before by this source.
	NewID() string
}

// System is the production Source backed by the wall clock and random UUIDs.
type System struct{}

// Now returns the current UTC time.
func (System) Now() time.Time {
	return time.Now().UTC()
}

// NewID returns a random UUID string.
func (System) NewID() string {
	return uuid.NewString()
}

// Fixed is a deterministic Source for tests. Ids are "id-1", "id-2", ...
type Fixed struct {
	mu   sync.Mutex
	now  time.Time
	next int
}

// NewFixed creates a Fixed source frozen at t.
func NewFixed(t time.Time) *Fixed {
	return &Fixed{now: t}
}

// Now returns the frozen time.
func (f *Fixed) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Advance moves the frozen time forward by d.
func (f *Fixed) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

// NewID returns the next sequential id.
func (f *Fixed) NewID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	return fmt.Sprintf("id-%d", f.next)
}

// ISO formats t as a UTC ISO-8601 timestamp with millisecond precision.
func ISO(t time.Time) string {
	return t.UTC().Format(isoLayout)
}
