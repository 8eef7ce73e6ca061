// Package wallet implements the ledger protocol the betting engine settles
// through. Chips move from an available balance into a per-game hold
// (authorize) and the hold is released once the hand is settled (approve).
package wallet

import "errors"

// ErrNotEnoughMoney is an error when a debit exceeds the available balance
var ErrNotEnoughMoney = errors.New("not enough money")

// ErrBonusAlreadyClaimed is an error when the daily bonus was already claimed today
var ErrBonusAlreadyClaimed = errors.New("daily bonus already claimed")

// Wallet is a player's ledger of available and game-held chips.
// Implementations must be safe for concurrent use across games and players.
type Wallet interface {
	// Value returns the available (unauthorized) balance
	Value() int

	// Inc adjusts the available balance. A negative amount that would take
	// the balance below zero fails with ErrNotEnoughMoney.
	Inc(amount int) error

	// Authorize moves amount from the available balance into the hold for
	// the given game. Fails with ErrNotEnoughMoney if the balance is
	// insufficient; on failure nothing moves.
	Authorize(gameID string, amount int) error

	// AuthorizeAll moves the entire available balance into the hold for the
	// given game and returns the amount moved
	AuthorizeAll(gameID string) (int, error)

	// AuthorizedMoney returns the amount held for the given game
	AuthorizedMoney(gameID string) int

	// Approve releases the hold for the given game. Calling it again is a
	// no-op.
	Approve(gameID string)
}
