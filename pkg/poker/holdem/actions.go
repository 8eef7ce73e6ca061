package holdem

import "github.com/sirupsen/logrus"

// getActingPlayer validates that the player is on the clock in a betting
// round and still able to act
func (g *Game) getActingPlayer(p *Player) error {
	if g.State == GameStateFinished {
		return ErrGameFinished
	}

	if !g.InBettingRound() {
		return ErrHandNotStarted
	}

	current := g.CurrentPlayer()
	if current == nil || current.UserID != p.UserID {
		return ErrNotPlayersTurn
	}

	if p.State != PlayerStateActive {
		return ErrPlayerCannotAct
	}

	return nil
}

// RaiseBet raises the current bet. The amount above the table's max round
// rate is the raise; anything needed to match it first is debited as a call.
// Raising reopens the betting round with this player as the closing seat.
func (g *Game) RaiseBet(p *Player, amount int) error {
	if err := g.getActingPlayer(p); err != nil {
		return err
	}

	callAmount := g.CallAmount(p)

	raiseIncrement := amount - g.MaxRoundRate
	if raiseIncrement < 0 {
		raiseIncrement = 0
	}

	total := callAmount + raiseIncrement

	// authorize-then-mutate is one logical step: a failed authorize leaves
	// the round untouched
	if err := p.Wallet.Authorize(g.ID, total); err != nil {
		return err
	}

	p.RoundRate += total
	if p.RoundRate > g.MaxRoundRate {
		g.MaxRoundRate = p.RoundRate
		g.TradingEndUserID = p.UserID
	}

	g.logAction(p, "raise", total)
	return nil
}

// CallCheck matches the current bet, or checks when already matched
func (g *Game) CallCheck(p *Player) error {
	if err := g.getActingPlayer(p); err != nil {
		return err
	}

	amount := g.CallAmount(p)
	if err := p.Wallet.Authorize(g.ID, amount); err != nil {
		return err
	}

	p.RoundRate += amount

	g.logAction(p, "call", amount)
	return nil
}

// AllIn wagers the player's entire remaining balance. If the resulting round
// rate exceeds the max, it behaves like a raise. Returns the amount moved.
func (g *Game) AllIn(p *Player) (int, error) {
	if err := g.getActingPlayer(p); err != nil {
		return 0, err
	}

	amount, err := p.Wallet.AuthorizeAll(g.ID)
	if err != nil {
		return 0, err
	}

	p.RoundRate += amount
	p.State = PlayerStateAllIn

	if p.RoundRate > g.MaxRoundRate {
		g.MaxRoundRate = p.RoundRate
		g.TradingEndUserID = p.UserID
	}

	g.logAction(p, "all-in", amount)
	return amount, nil
}

// Fold removes the player from contention. No chips move; their round rate
// stays frozen until swept into the pot.
func (g *Game) Fold(p *Player) error {
	if err := g.getActingPlayer(p); err != nil {
		return err
	}

	p.State = PlayerStateFold

	g.logAction(p, "fold", 0)
	return nil
}

func (g *Game) logAction(p *Player, action string, amount int) {
	g.logger.WithFields(logrus.Fields{
		"game":      g.ID,
		"player":    p.UserID,
		"action":    action,
		"amount":    amount,
		"roundRate": p.RoundRate,
		"maxRate":   g.MaxRoundRate,
	}).Debug("player action")
}
