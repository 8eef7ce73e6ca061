package holdem

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"pokerbot-server/pkg/wallet"
)

// Snapshot serializes the full game state to JSON so a hand can survive a
// process restart. Wallets are not part of the snapshot; they live in the
// ledger and are re-attached on restore.
func (g *Game) Snapshot() ([]byte, error) {
	return json.Marshal(g)
}

// RestoreGame rebuilds a game from a snapshot. walletFor supplies the wallet
// for each seated user ID.
func RestoreGame(logger logrus.FieldLogger, data []byte, walletFor func(userID string) wallet.Wallet) (*Game, error) {
	var g Game
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("could not restore game: %w", err)
	}

	g.logger = logger

	for _, p := range g.Players {
		w := walletFor(p.UserID)
		if w == nil {
			return nil, fmt.Errorf("no wallet for user %s", p.UserID)
		}

		p.Wallet = w
	}

	return &g, nil
}
