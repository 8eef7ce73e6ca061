package holdem

import (
	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"

	"pokerbot-server/pkg/deck"
	"pokerbot-server/pkg/poker/handrank"
	"pokerbot-server/pkg/poker/sidepot"
)

// Coordinator drives a game between player decisions: it advances the turn
// pointer, sweeps bets at street boundaries, deals the board, and settles
// the hand at showdown
type Coordinator struct {
	logger logrus.FieldLogger
	clock  quartz.Clock
}

// NewCoordinator returns a coordinator running on the wall clock
func NewCoordinator(logger logrus.FieldLogger) *Coordinator {
	return NewCoordinatorWithClock(logger, quartz.NewReal())
}

// NewCoordinatorWithClock returns a coordinator using the provided clock.
// Tests pass a mock clock to control turn timestamps.
func NewCoordinatorWithClock(logger logrus.FieldLogger, clock quartz.Clock) *Coordinator {
	return &Coordinator{
		logger: logger,
		clock:  clock,
	}
}

// AdvanceUntilDecision runs the game forward until a player must act or no
// further betting is possible. Street boundaries are crossed internally, so
// the caller only ever sees TurnResultContinue (act, then call again) or
// TurnResultGameEnded (call FinishHand).
func (c *Coordinator) AdvanceUntilDecision(g *Game) (TurnResult, error) {
	if g.State == GameStateFinished {
		return TurnResultGameEnded, ErrGameFinished
	}

	for {
		switch result := g.ProcessTurn(); result {
		case TurnResultContinue:
			current := g.CurrentPlayer()

			// a player with no chips behind cannot bet; their seat is
			// converted to all-in and the turn moves on
			if current.Wallet.Value() == 0 {
				current.State = PlayerStateAllIn
				c.logger.WithFields(logrus.Fields{
					"game":   g.ID,
					"player": current.UserID,
				}).Debug("zero balance, forced all-in")
				continue
			}

			g.LastTurnTime = c.clock.Now()
			return result, nil
		case TurnResultRoundEnded:
			g.CommitRoundBets()

			if g.State == GameStateRiver {
				return TurnResultGameEnded, nil
			}

			if err := g.AdvanceStreet(); err != nil {
				return result, err
			}
		case TurnResultGameEnded:
			g.CommitRoundBets()
			return result, nil
		}
	}
}

// FinishHand settles the pot and releases every wallet hold. With a single
// contender the whole pot is theirs without a showdown; otherwise the board
// is completed, hands are scored, and the pot is split into tiers by
// contribution. Returns the payouts by user ID.
func (c *Coordinator) FinishHand(g *Game) (sidepot.Payouts, error) {
	if g.State == GameStateFinished {
		return nil, ErrGameFinished
	}

	// any rate not yet swept belongs in the pot
	g.CommitRoundBets()

	contenders := g.PlayersBy(PlayerStateActive, PlayerStateAllIn)
	if len(contenders) == 0 {
		return nil, ErrNotEnoughPlayers
	}

	var payouts sidepot.Payouts
	if len(contenders) == 1 {
		payouts = sidepot.Payouts{contenders[0].UserID: g.Pot}
	} else {
		if err := c.completeBoard(g); err != nil {
			return nil, err
		}

		payouts = sidepot.Settle(c.contributions(g), c.seatOrder(g))
	}

	for userID, amount := range payouts {
		for _, p := range g.Players {
			if p.UserID == userID {
				if err := p.Wallet.Inc(amount); err != nil {
					return nil, err
				}

				break
			}
		}
	}

	for _, p := range g.Players {
		p.Wallet.Approve(g.ID)
	}

	g.State = GameStateFinished

	c.logger.WithFields(logrus.Fields{
		"game":    g.ID,
		"pot":     g.Pot,
		"payouts": payouts,
	}).Info("hand finished")

	return payouts, nil
}

// completeBoard deals any community cards still owed when the hand ends
// before the river, such as an all-in pre-flop
func (c *Coordinator) completeBoard(g *Game) error {
	for len(g.CommunityCards) < 5 {
		card, err := g.Deck.Draw()
		if err != nil {
			return err
		}

		g.CommunityCards.AddCard(card)
	}

	return nil
}

// contributions builds the settlement input: every player's total hold for
// the hand, with contenders carrying their best seven-card score
func (c *Coordinator) contributions(g *Game) []sidepot.Contribution {
	contributions := make([]sidepot.Contribution, 0, len(g.Players))
	for _, p := range g.Players {
		contribution := sidepot.Contribution{
			UserID: p.UserID,
			Amount: p.Wallet.AuthorizedMoney(g.ID),
			Folded: p.State == PlayerStateFold,
		}

		if !contribution.Folded {
			cards := make([]*deck.Card, 0, 7)
			cards = append(cards, p.Cards...)
			cards = append(cards, g.CommunityCards...)
			_, contribution.Score = handrank.BestOf(cards)
		}

		contributions = append(contributions, contribution)
	}

	return contributions
}

// seatOrder lists every user ID starting one seat left of the dealer, the
// order odd chips are handed out in
func (c *Coordinator) seatOrder(g *Game) []string {
	n := len(g.Players)
	order := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		order = append(order, g.Players[(g.DealerIndex+i)%n].UserID)
	}

	return order
}
