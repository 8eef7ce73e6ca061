package wallet

import (
	"fmt"
	"sync"
	"time"

	"github.com/coder/quartz"

	"pokerbot-server/pkg/kv"
)

const dailyBonusTTL = time.Hour * 24

// KV is the production Wallet backed by a key-value store.
// The hold for each game lives under its own key, so wallets for different
// games and players never contend on the same data.
type KV struct {
	mu     sync.Mutex
	store  kv.Store
	userID string
	clock  quartz.Clock
}

var _ Wallet = (*KV)(nil)

// NewKV returns a wallet for the user backed by the store
func NewKV(store kv.Store, userID string) *KV {
	return NewKVWithClock(store, userID, quartz.NewReal())
}

// NewKVWithClock returns a wallet using the provided clock for daily-bonus
// bookkeeping. Tests should pass a quartz mock.
func NewKVWithClock(store kv.Store, userID string, clock quartz.Clock) *KV {
	return &KV{
		store:  store,
		userID: userID,
		clock:  clock,
	}
}

func (w *KV) key(suffix string) string {
	if suffix == "" {
		return "pokerbot:" + w.userID
	}

	return "pokerbot:" + w.userID + ":" + suffix
}

// Value returns the available balance
func (w *KV) Value() int {
	return w.store.IncrBy(w.key(""), 0)
}

// Inc adjusts the available balance
func (w *KV) Inc(amount int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.Value()+amount < 0 {
		return ErrNotEnoughMoney
	}

	w.store.IncrBy(w.key(""), amount)
	return nil
}

// Authorize moves amount from the balance into the game's hold
func (w *KV) Authorize(gameID string, amount int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if amount < 0 {
		return fmt.Errorf("cannot authorize a negative amount: %d", amount)
	}

	if w.Value() < amount {
		return ErrNotEnoughMoney
	}

	w.store.IncrBy(w.key(""), -amount)
	w.store.IncrBy(w.key(gameID), amount)
	return nil
}

// AuthorizeAll moves the entire balance into the game's hold
func (w *KV) AuthorizeAll(gameID string) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	amount := w.Value()
	if amount > 0 {
		w.store.IncrBy(w.key(""), -amount)
		w.store.IncrBy(w.key(gameID), amount)
	}

	return amount, nil
}

// AuthorizedMoney returns the amount held for the game
func (w *KV) AuthorizedMoney(gameID string) int {
	return w.store.IncrBy(w.key(gameID), 0)
}

// Approve releases the game's hold
func (w *KV) Approve(gameID string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.store.Delete(w.key(gameID))
}

// AddDaily credits the daily bonus and returns the new balance.
// A second claim on the same day fails with ErrBonusAlreadyClaimed.
func (w *KV) AddDaily(bonus int) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	dailyKey := w.key("daily:" + w.clock.Now().Format("2006-01-02"))
	if _, claimed := w.store.Get(dailyKey); claimed {
		return 0, ErrBonusAlreadyClaimed
	}

	w.store.SetTTL(dailyKey, "1", dailyBonusTTL)
	return w.store.IncrBy(w.key(""), bonus), nil
}
