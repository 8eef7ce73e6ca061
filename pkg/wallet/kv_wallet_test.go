package wallet

import (
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"

	"pokerbot-server/pkg/kv"
)

func TestKV_authorizeAndApprove(t *testing.T) {
	a := assert.New(t)

	store := kv.NewMemory()
	w := NewKV(store, "user-1")

	a.NoError(w.Inc(100))
	a.Equal(100, w.Value())

	a.NoError(w.Authorize("game-1", 60))
	a.Equal(40, w.Value())
	a.Equal(60, w.AuthorizedMoney("game-1"))

	// insufficient balance must not move anything
	a.Equal(ErrNotEnoughMoney, w.Authorize("game-1", 41))
	a.Equal(40, w.Value())
	a.Equal(60, w.AuthorizedMoney("game-1"))

	a.Error(w.Authorize("game-1", -1))

	w.Approve("game-1")
	a.Equal(0, w.AuthorizedMoney("game-1"))

	// approve is idempotent
	w.Approve("game-1")
	a.Equal(0, w.AuthorizedMoney("game-1"))
	a.Equal(40, w.Value())
}

func TestKV_authorizeAll(t *testing.T) {
	a := assert.New(t)

	w := NewKV(kv.NewMemory(), "user-1")
	a.NoError(w.Inc(75))

	amount, err := w.AuthorizeAll("game-1")
	a.NoError(err)
	a.Equal(75, amount)
	a.Equal(0, w.Value())
	a.Equal(75, w.AuthorizedMoney("game-1"))

	// a zero balance authorizes zero
	amount, err = w.AuthorizeAll("game-1")
	a.NoError(err)
	a.Equal(0, amount)
	a.Equal(75, w.AuthorizedMoney("game-1"))
}

func TestKV_holdsAreScopedByGame(t *testing.T) {
	a := assert.New(t)

	store := kv.NewMemory()
	w := NewKV(store, "user-1")
	other := NewKV(store, "user-2")

	a.NoError(w.Inc(100))
	a.NoError(other.Inc(100))

	a.NoError(w.Authorize("game-1", 10))
	a.NoError(w.Authorize("game-2", 20))

	a.Equal(10, w.AuthorizedMoney("game-1"))
	a.Equal(20, w.AuthorizedMoney("game-2"))
	a.Equal(0, other.AuthorizedMoney("game-1"))
	a.Equal(70, w.Value())
}

func TestKV_inc(t *testing.T) {
	a := assert.New(t)

	w := NewKV(kv.NewMemory(), "user-1")
	a.NoError(w.Inc(50))
	a.NoError(w.Inc(-30))
	a.Equal(20, w.Value())

	a.Equal(ErrNotEnoughMoney, w.Inc(-21))
	a.Equal(20, w.Value())
}

func TestKV_addDaily(t *testing.T) {
	a := assert.New(t)

	clock := quartz.NewMock(t)
	store := kv.NewMemoryWithClock(clock)
	w := NewKVWithClock(store, "user-1", clock)

	balance, err := w.AddDaily(25)
	a.NoError(err)
	a.Equal(25, balance)

	_, err = w.AddDaily(25)
	a.Equal(ErrBonusAlreadyClaimed, err)

	clock.Advance(time.Hour * 25)

	balance, err = w.AddDaily(25)
	a.NoError(err)
	a.Equal(50, balance)
}
