// Package checkout tracks which users the bot is waiting on for contact
// information. The flag is the only conversation state kept between turns
// besides the cart itself.
package checkout

import "sync"

// Tracker is a per-user awaiting-contact flag. Callers must verify the cart
// is non-empty before Begin; the tracker does not know about carts.
type Tracker struct {
	mu      sync.Mutex
	waiting map[int64]bool
}

func NewTracker() *Tracker {
	return &Tracker{waiting: make(map[int64]bool)}
}

// Begin marks the user as awaiting contact information.
func (t *Tracker) Begin(userID int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.waiting[userID] = true
}

// Consume clears the flag and reports whether it was set. A contact share
// arriving with no checkout in progress returns false and must be ignored
// by the caller.
func (t *Tracker) Consume(userID int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	was := t.waiting[userID]
	delete(t.waiting, userID)
	return was
}

// Waiting reports the flag without clearing it.
func (t *Tracker) Waiting(userID int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.waiting[userID]
}
