package builder

import (
	"sync"
	"time"
)

// DefaultStatusTTL is how long a status message stays visible.
const DefaultStatusTTL = 2400 * time.Millisecond

// SlotAction is the status slot used by copy and open actions.
const SlotAction = "action"

// StatusBoard holds one transient message per slot. Setting a message
// cancels the expiry timer of the one it replaces.
type StatusBoard struct {
	mu    sync.Mutex
	ttl   time.Duration
	slots map[string]*statusEntry
}

type statusEntry struct {
	message string
	timer   *time.Timer
	gen     uint64
}

// NewStatusBoard creates a board whose messages expire after ttl.
func NewStatusBoard(ttl time.Duration) *StatusBoard {
	if ttl <= 0 {
		ttl = DefaultStatusTTL
	}
	return &StatusBoard{ttl: ttl, slots: make(map[string]*statusEntry)}
}

// Set shows message in slot. An empty message clears the slot at once.
func (b *StatusBoard) Set(slot, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.slots[slot]
	if !ok {
		e = &statusEntry{}
		b.slots[slot] = e
	}
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.gen++
	e.message = message
	if message == "" {
		return
	}

	gen := e.gen
	e.timer = time.AfterFunc(b.ttl, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		// a newer message may have replaced this one after the timer fired
		if e.gen == gen {
			e.message = ""
			e.timer = nil
		}
	})
}

// Get returns the visible message of slot.
func (b *StatusBoard) Get(slot string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if e, ok := b.slots[slot]; ok {
		return e.message
	}
	return ""
}

// Stop cancels all pending timers.
func (b *StatusBoard) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, e := range b.slots {
		if e.timer != nil {
			e.timer.Stop()
			e.timer = nil
		}
	}
}
