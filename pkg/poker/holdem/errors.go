package holdem

import (
	"errors"
	"fmt"
)

// UserError is an error caused by a player's own action. The game state is
// left untouched and the same player remains on turn.
type UserError string

func (u UserError) Error() string {
	return string(u)
}

func newUserError(format string, a ...interface{}) UserError {
	return UserError(fmt.Sprintf(format, a...))
}

// ErrNotPlayersTurn is an error when a player acts out of turn
var ErrNotPlayersTurn = UserError("it is not your turn")

// ErrPlayerCannotAct is an error when a folded or all-in player tries to act
var ErrPlayerCannotAct = UserError("you cannot act in this hand")

// ErrNotEnoughPlayers is an error when a hand is started with fewer than two players
var ErrNotEnoughPlayers = errors.New("there must be at least two players")

// ErrGameFinished is an error when an operation is attempted after the hand ended
var ErrGameFinished = errors.New("the hand is already finished")

// ErrHandNotStarted is an error when a betting operation happens outside a betting round
var ErrHandNotStarted = errors.New("the hand has not been started")
