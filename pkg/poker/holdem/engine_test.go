package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGame_ProcessTurn_firstDecisionKeepsPointer(t *testing.T) {
	g := newTestGame(t, 1000, 1000, 1000)
	require.NoError(t, g.StartHand(1))

	// the resolved first-to-act seat keeps the turn on the opening call
	assert.False(t, g.RoundStarted)
	assert.Equal(t, TurnResultContinue, g.ProcessTurn())
	assert.True(t, g.RoundStarted)
	assert.Equal(t, 0, g.CurrentPlayerIndex)

	// once started, the pointer advances past the acted seat
	require.NoError(t, g.CallCheck(g.Players[0]))
	assert.Equal(t, TurnResultContinue, g.ProcessTurn())
	assert.Equal(t, 1, g.CurrentPlayerIndex)
}

func TestGame_ProcessTurn_closesOnMatchedCloser(t *testing.T) {
	g := newTestGame(t, 1000, 1000, 1000)
	require.NoError(t, g.StartHand(1))

	assert.Equal(t, TurnResultContinue, g.ProcessTurn())
	require.NoError(t, g.CallCheck(g.Players[0]))
	assert.Equal(t, TurnResultContinue, g.ProcessTurn())
	require.NoError(t, g.CallCheck(g.Players[1]))
	assert.Equal(t, TurnResultContinue, g.ProcessTurn())
	require.NoError(t, g.CallCheck(g.Players[2]))

	// everyone matched and the action is back on the big blind
	assert.Equal(t, TurnResultRoundEnded, g.ProcessTurn())
}

func TestGame_ProcessTurn_raiseReopensRound(t *testing.T) {
	g := newTestGame(t, 1000, 1000, 1000)
	require.NoError(t, g.StartHand(1))

	assert.Equal(t, TurnResultContinue, g.ProcessTurn())
	require.NoError(t, g.CallCheck(g.Players[0]))
	assert.Equal(t, TurnResultContinue, g.ProcessTurn())
	require.NoError(t, g.CallCheck(g.Players[1]))
	assert.Equal(t, TurnResultContinue, g.ProcessTurn())
	require.NoError(t, g.RaiseBet(g.Players[2], 30))

	// the raiser is now the closing seat; the others get another turn and
	// the round closes once the action is back on the raiser, matched
	assert.Equal(t, TurnResultContinue, g.ProcessTurn())
	assert.Equal(t, 0, g.CurrentPlayerIndex)
	require.NoError(t, g.CallCheck(g.Players[0]))
	assert.Equal(t, TurnResultContinue, g.ProcessTurn())
	require.NoError(t, g.CallCheck(g.Players[1]))
	assert.Equal(t, TurnResultContinue, g.ProcessTurn())
	assert.Equal(t, 2, g.CurrentPlayerIndex)
	require.NoError(t, g.CallCheck(g.Players[2]))
	assert.Equal(t, TurnResultRoundEnded, g.ProcessTurn())
}

func TestGame_ProcessTurn_allInCloserKeepsRoundOpen(t *testing.T) {
	g := newTestGame(t, 1000, 1000, 1000)
	require.NoError(t, g.StartHand(1))

	assert.Equal(t, TurnResultContinue, g.ProcessTurn())
	_, err := g.AllIn(g.Players[0])
	require.NoError(t, err)

	assert.Equal(t, TurnResultContinue, g.ProcessTurn())
	require.NoError(t, g.CallCheck(g.Players[1]))
	assert.Equal(t, TurnResultContinue, g.ProcessTurn())
	require.NoError(t, g.CallCheck(g.Players[2]))

	// the closing seat is all-in and the pointer only ever lands on
	// active seats, so the round stays open after everyone matched; it
	// closes once fewer than two active seats remain
	assert.Equal(t, TurnResultContinue, g.ProcessTurn())
	assert.Equal(t, 1, g.CurrentPlayerIndex)
	require.NoError(t, g.CallCheck(g.Players[1]))

	assert.Equal(t, TurnResultContinue, g.ProcessTurn())
	assert.Equal(t, 2, g.CurrentPlayerIndex)
	require.NoError(t, g.Fold(g.Players[2]))

	assert.Equal(t, TurnResultRoundEnded, g.ProcessTurn())
}

func TestGame_ProcessTurn_singleContenderEndsGame(t *testing.T) {
	g := newTestGame(t, 1000, 1000, 1000)
	require.NoError(t, g.StartHand(1))

	g.Players[0].State = PlayerStateFold
	g.Players[1].State = PlayerStateFold

	assert.Equal(t, TurnResultGameEnded, g.ProcessTurn())
}

func TestGame_ProcessTurn_allInPlayersCloseRound(t *testing.T) {
	g := newTestGame(t, 1000, 1000, 1000)
	require.NoError(t, g.StartHand(1))

	g.Players[0].State = PlayerStateAllIn
	g.Players[1].State = PlayerStateAllIn

	// only one seat can still act, so no more betting this street
	assert.Equal(t, TurnResultRoundEnded, g.ProcessTurn())
}

func TestGame_ProcessTurn_recoversInvalidPointer(t *testing.T) {
	g := newTestGame(t, 1000, 1000, 1000)
	require.NoError(t, g.StartHand(1))

	g.CurrentPlayerIndex = -1
	assert.Equal(t, TurnResultContinue, g.ProcessTurn())
	assert.Equal(t, 0, g.CurrentPlayerIndex)
}

func TestGame_ProcessTurn_emptyTable(t *testing.T) {
	g := newTestGame(t, 1000, 1000)
	g.Players = nil
	assert.Equal(t, TurnResultGameEnded, g.ProcessTurn())
}

func TestGame_AdvanceStreet(t *testing.T) {
	g := newTestGame(t, 1000, 1000, 1000)
	require.NoError(t, g.StartHand(1))

	g.CommitRoundBets()
	require.NoError(t, g.AdvanceStreet())

	assert.Equal(t, GameStateFlop, g.State)
	assert.Len(t, g.CommunityCards, 3)
	assert.Equal(t, 0, g.MaxRoundRate)
	assert.Equal(t, 1, g.CurrentPlayerIndex)
	assert.Equal(t, "a", g.TradingEndUserID)

	require.NoError(t, g.AdvanceStreet())
	assert.Equal(t, GameStateTurn, g.State)
	assert.Len(t, g.CommunityCards, 4)

	require.NoError(t, g.AdvanceStreet())
	assert.Equal(t, GameStateRiver, g.State)
	assert.Len(t, g.CommunityCards, 5)

	g.State = GameStateFinished
	assert.Error(t, g.AdvanceStreet())
}

func TestGame_CommitRoundBets(t *testing.T) {
	g := newTestGame(t, 1000, 1000, 1000)
	require.NoError(t, g.StartHand(1))

	g.CommitRoundBets()

	assert.Equal(t, 15, g.Pot)
	assert.Equal(t, 0, g.MaxRoundRate)
	assert.Equal(t, "a", g.TradingEndUserID)

	for _, p := range g.Players {
		assert.Equal(t, 0, p.RoundRate)
	}
}
