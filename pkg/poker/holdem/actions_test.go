package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokerbot-server/pkg/wallet"
)

func TestGame_actingPlayerValidation(t *testing.T) {
	g := newTestGame(t, 1000, 1000, 1000)

	// no betting round open yet
	assert.Equal(t, ErrHandNotStarted, g.CallCheck(g.Players[0]))

	require.NoError(t, g.StartHand(1))

	// seat zero is under the gun; seat one is out of turn
	assert.Equal(t, ErrNotPlayersTurn, g.CallCheck(g.Players[1]))

	g.Players[0].State = PlayerStateFold
	assert.Equal(t, ErrPlayerCannotAct, g.CallCheck(g.Players[0]))

	g.State = GameStateFinished
	assert.Equal(t, ErrGameFinished, g.CallCheck(g.Players[0]))
}

func TestGame_CallCheck(t *testing.T) {
	g := newTestGame(t, 1000, 1000, 1000)
	require.NoError(t, g.StartHand(1))

	p := g.Players[0]
	require.NoError(t, g.CallCheck(p))

	assert.Equal(t, 10, p.RoundRate)
	assert.Equal(t, 990, p.Wallet.Value())
	assert.Equal(t, 10, p.Wallet.AuthorizedMoney(g.ID))

	// already matched, so a second call is a check
	g.CurrentPlayerIndex = 0
	require.NoError(t, g.CallCheck(p))
	assert.Equal(t, 10, p.RoundRate)
	assert.Equal(t, 990, p.Wallet.Value())
}

func TestGame_RaiseBet(t *testing.T) {
	g := newTestGame(t, 1000, 1000, 1000)
	require.NoError(t, g.StartHand(1))

	// raise to 30 from an unmatched seat debits the call plus the raise
	p := g.Players[0]
	require.NoError(t, g.RaiseBet(p, 30))

	assert.Equal(t, 30, p.RoundRate)
	assert.Equal(t, 30, g.MaxRoundRate)
	assert.Equal(t, "a", g.TradingEndUserID)
	assert.Equal(t, 970, p.Wallet.Value())

	// a raise below the max is just a call
	g.CurrentPlayerIndex = 1
	p = g.Players[1]
	require.NoError(t, g.RaiseBet(p, 20))
	assert.Equal(t, 30, p.RoundRate)
	assert.Equal(t, 30, g.MaxRoundRate)
	assert.Equal(t, "a", g.TradingEndUserID)
}

func TestGame_RaiseBet_insufficientFunds(t *testing.T) {
	g := newTestGame(t, 1000, 1000, 1000)
	require.NoError(t, g.StartHand(1))

	p := g.Players[0]
	err := g.RaiseBet(p, 5000)
	assert.Equal(t, wallet.ErrNotEnoughMoney, err)

	// nothing moved and the same player is still on the clock
	assert.Equal(t, 0, p.RoundRate)
	assert.Equal(t, 10, g.MaxRoundRate)
	assert.Equal(t, PlayerStateActive, p.State)
	assert.Equal(t, 1000, p.Wallet.Value())
	assert.Equal(t, 0, g.CurrentPlayerIndex)
	assert.Equal(t, "c", g.TradingEndUserID)
}

func TestGame_AllIn(t *testing.T) {
	g := newTestGame(t, 1000, 1000, 1000)
	require.NoError(t, g.StartHand(1))

	p := g.Players[0]
	moved, err := g.AllIn(p)
	require.NoError(t, err)

	assert.Equal(t, 1000, moved)
	assert.Equal(t, PlayerStateAllIn, p.State)
	assert.Equal(t, 1000, p.RoundRate)
	assert.Equal(t, 1000, g.MaxRoundRate)
	assert.Equal(t, "a", g.TradingEndUserID)
	assert.Equal(t, 0, p.Wallet.Value())
}

func TestGame_AllIn_shortDoesNotReopen(t *testing.T) {
	g := newTestGame(t, 1000, 1000, 1000)
	require.NoError(t, g.StartHand(1))

	// a short all-in below the max round rate leaves the closer alone
	p := g.Players[0]
	p.Wallet = wallet.NewFake(7)

	moved, err := g.AllIn(p)
	require.NoError(t, err)

	assert.Equal(t, 7, moved)
	assert.Equal(t, 7, p.RoundRate)
	assert.Equal(t, 10, g.MaxRoundRate)
	assert.Equal(t, "c", g.TradingEndUserID)
}

func TestGame_Fold(t *testing.T) {
	g := newTestGame(t, 1000, 1000, 1000)
	require.NoError(t, g.StartHand(1))

	p := g.Players[0]
	require.NoError(t, g.Fold(p))

	assert.Equal(t, PlayerStateFold, p.State)
	assert.Equal(t, 0, p.RoundRate)
	assert.Equal(t, 1000, p.Wallet.Value())
}
