package holdem

import (
	"pokerbot-server/pkg/deck"
	"pokerbot-server/pkg/wallet"
)

// PlayerState is a player's standing in the current hand
type PlayerState int

// Constants for PlayerState. FOLD and ALL_IN are terminal for the hand.
const (
	PlayerStateFold   PlayerState = 0
	PlayerStateActive PlayerState = 1
	PlayerStateAllIn  PlayerState = 10
)

// String returns the string representation of the player state
func (s PlayerState) String() string {
	switch s {
	case PlayerStateFold:
		return "fold"
	case PlayerStateActive:
		return "active"
	case PlayerStateAllIn:
		return "all-in"
	}

	return "unknown"
}

// Player is a seat at the table. Players outlive individual hands; the
// per-hand fields are reset by Game.Reset. The wallet is a shared reference
// owned by the session, not by the player.
type Player struct {
	UserID    string      `json:"userId"`
	State     PlayerState `json:"state"`
	Cards     deck.Hand   `json:"cards"`
	RoundRate int         `json:"roundRate"`

	Wallet wallet.Wallet `json:"-"`
}

// NewPlayer returns a player backed by the provided wallet
func NewPlayer(userID string, w wallet.Wallet) *Player {
	return &Player{
		UserID: userID,
		State:  PlayerStateActive,
		Cards:  make(deck.Hand, 0, 2),
		Wallet: w,
	}
}

// newHand resets the per-hand fields
func (p *Player) newHand() {
	p.State = PlayerStateActive
	p.Cards = make(deck.Hand, 0, 2)
	p.RoundRate = 0
}
