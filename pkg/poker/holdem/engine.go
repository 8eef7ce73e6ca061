package holdem

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// TurnResult reports what the caller should do after processing one turn
type TurnResult int

// Constants for TurnResult
const (
	// TurnResultContinue means a player is on the clock and must act
	TurnResultContinue TurnResult = iota
	// TurnResultRoundEnded means the betting round closed; advance the street
	TurnResultRoundEnded
	// TurnResultGameEnded means no further betting is possible; settle the hand
	TurnResultGameEnded
)

// String returns the string representation of the turn result
func (r TurnResult) String() string {
	switch r {
	case TurnResultContinue:
		return "continue"
	case TurnResultRoundEnded:
		return "round-ended"
	case TurnResultGameEnded:
		return "game-ended"
	}

	return "unknown"
}

// streetTransitions maps each street to its successor
var streetTransitions = map[GameState]GameState{
	GameStatePreFlop: GameStateFlop,
	GameStateFlop:    GameStateTurn,
	GameStateTurn:    GameStateRiver,
	GameStateRiver:   GameStateFinished,
}

// communityCardsPerStreet is how many cards are dealt entering each street
var communityCardsPerStreet = map[GameState]int{
	GameStateFlop:  3,
	GameStateTurn:  1,
	GameStateRiver: 1,
}

// ProcessTurn drives the betting round one decision point forward.
//
// Betting always makes progress: an invalid turn pointer is recovered by
// re-resolving the turn order, and an unrecoverable one ends the round
// rather than failing.
func (g *Game) ProcessTurn() TurnResult {
	if len(g.Players) == 0 {
		return TurnResultGameEnded
	}

	if g.CurrentPlayer() == nil {
		g.resolveTurn(g.State)
		if g.CurrentPlayer() == nil {
			return TurnResultRoundEnded
		}
	}

	if len(g.PlayersBy(PlayerStateActive, PlayerStateAllIn)) == 1 {
		return TurnResultGameEnded
	}

	if g.shouldEndRound() {
		return TurnResultRoundEnded
	}

	if !g.RoundStarted {
		// the resolved first-to-act seat gets its turn before the pointer
		// ever advances
		g.RoundStarted = true
		return TurnResultContinue
	}

	if next := g.nearestActiveSeat((g.CurrentPlayerIndex+1)%len(g.Players), 1); next >= 0 {
		g.CurrentPlayerIndex = next
		return TurnResultContinue
	}

	return TurnResultRoundEnded
}

// shouldEndRound returns true once the betting round is closed: either at
// most one ACTIVE player remains, or every ACTIVE player has matched the max
// round rate and the action is back on the closing seat
func (g *Game) shouldEndRound() bool {
	active := g.PlayersBy(PlayerStateActive)
	if len(active) <= 1 {
		return true
	}

	for _, p := range active {
		if p.RoundRate != g.MaxRoundRate {
			return false
		}
	}

	current := g.CurrentPlayer()
	return g.RoundStarted && current != nil && current.UserID == g.TradingEndUserID
}

// AdvanceStreet moves the hand to the next street: round-scoped betting
// fields are zeroed, community cards are dealt, and the turn order is
// re-resolved. Callers sweep outstanding round rates into the pot with
// CommitRoundBets before advancing.
func (g *Game) AdvanceStreet() error {
	next, ok := streetTransitions[g.State]
	if !ok {
		return fmt.Errorf("cannot advance from state %s", g.State)
	}

	g.State = next

	for _, p := range g.Players {
		p.RoundRate = 0
	}
	g.MaxRoundRate = 0

	for i := 0; i < communityCardsPerStreet[next]; i++ {
		card, err := g.Deck.Draw()
		if err != nil {
			return err
		}

		g.CommunityCards.AddCard(card)
	}

	g.resolveTurn(next)

	g.logger.WithFields(logrus.Fields{
		"game":      g.ID,
		"street":    next.String(),
		"community": g.CommunityCards.String(),
		"pot":       g.Pot,
	}).Debug("street advanced")

	return nil
}

// CommitRoundBets sweeps every player's round rate into the pot at the end
// of a betting round. The closing seat defaults back to the dealer until the
// next street's turn order is resolved.
func (g *Game) CommitRoundBets() {
	for _, p := range g.Players {
		g.Pot += p.RoundRate
		p.RoundRate = 0
	}

	g.MaxRoundRate = 0

	if len(g.Players) > 0 {
		g.TradingEndUserID = g.Players[g.DealerIndex].UserID
	}
}
