package holdem

import (
	"sync"
	"time"

	"github.com/coder/quartz"
)

// TurnTimer folds a slow player: the coordinator resets it whenever a new
// player comes on the clock, and the expire callback fires if they have not
// acted within the timeout
type TurnTimer struct {
	clock   quartz.Clock
	timeout time.Duration

	mu    sync.Mutex
	timer *quartz.Timer
}

// NewTurnTimer returns a stopped timer with the given per-turn timeout
func NewTurnTimer(clock quartz.Clock, timeout time.Duration) *TurnTimer {
	return &TurnTimer{
		clock:   clock,
		timeout: timeout,
	}
}

// Reset arms the timer for a fresh turn, replacing any pending expiry
func (t *TurnTimer) Reset(expire func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}

	t.timer = t.clock.AfterFunc(t.timeout, expire)
}

// Stop cancels any pending expiry
func (t *TurnTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
