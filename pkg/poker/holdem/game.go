package holdem

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"pokerbot-server/pkg/deck"
)

// GameState is the current street of a hand
type GameState int

// Constants for GameState. No transition skips a step except straight to
// GameStateFinished when only one contender remains.
const (
	GameStateInitial GameState = iota
	GameStatePreFlop
	GameStateFlop
	GameStateTurn
	GameStateRiver
	GameStateFinished
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case GameStateInitial:
		return "initial"
	case GameStatePreFlop:
		return "pre-flop"
	case GameStateFlop:
		return "flop"
	case GameStateTurn:
		return "turn"
	case GameStateRiver:
		return "river"
	case GameStateFinished:
		return "finished"
	}

	return "unknown"
}

// Game is a single hand of Texas Hold'em. A game instance is mutated by one
// logical actor at a time; the caller serializes access per game.
type Game struct {
	ID  string `json:"id"`
	Pot int    `json:"pot"`

	// MaxRoundRate is the highest RoundRate among players this street.
	// It never decreases within a street.
	MaxRoundRate int       `json:"maxRoundRate"`
	State        GameState `json:"state"`

	// Players in seating order. The game does not own player lifetime;
	// seats persist across hands.
	Players []*Player `json:"players"`

	CommunityCards deck.Hand  `json:"communityCards"`
	Deck           *deck.Deck `json:"remainingDeck"`

	DealerIndex int `json:"dealerIndex"`

	// CurrentPlayerIndex is the seat on the clock, or -1 when undefined
	CurrentPlayerIndex int `json:"currentPlayerIndex"`

	// TradingEndUserID identifies the seat whose matched action closes the
	// current betting round
	TradingEndUserID string `json:"tradingEndUserId"`

	// TableStake is the small blind unit
	TableStake int `json:"tableStake"`

	// RoundStarted disambiguates "pointer parked on first-to-act, awaiting
	// their action" from "pointer already advanced"
	RoundStarted bool `json:"roundHasStarted"`

	// LastTurnTime is caller-owned: it is refreshed whenever a turn is
	// handed to a new player, and an external watchdog folds on expiry
	LastTurnTime time.Time `json:"lastTurnTime"`

	logger logrus.FieldLogger
}

// NewGame seats the players at a fresh table. Every player must cover the
// stake's minimum buy-in of twenty big blinds.
func NewGame(logger logrus.FieldLogger, players []*Player, stake Stake) (*Game, error) {
	if len(players) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	for _, p := range players {
		if !stake.HasMinimumBuyIn(p.Wallet.Value()) {
			return nil, newUserError("a minimum balance of %d is required to join", stake.BigBlind()*minBuyInBigBlinds)
		}
	}

	g := &Game{
		Players:    players,
		TableStake: stake.SmallBlind,
		logger:     logger,
	}
	g.Reset(false)

	return g, nil
}

// Reset re-initializes the per-hand state so the same table can play another
// hand, optionally rotating the dealer button
func (g *Game) Reset(rotateDealer bool) {
	if rotateDealer && len(g.Players) > 0 {
		g.DealerIndex = (g.DealerIndex + 1) % len(g.Players)
	}

	g.ID = uuid.New().String()
	g.Pot = 0
	g.MaxRoundRate = 0
	g.State = GameStateInitial
	g.CommunityCards = make(deck.Hand, 0, 5)
	g.Deck = deck.New()
	g.CurrentPlayerIndex = -1
	g.TradingEndUserID = ""
	g.RoundStarted = false
	g.LastTurnTime = time.Now()

	for _, p := range g.Players {
		p.newHand()
	}
}

// StartHand shuffles, deals two hole cards to each player, posts the blinds,
// and opens the pre-flop betting round. A seed of 0 shuffles from the wall
// clock; tests pass a fixed seed.
func (g *Game) StartHand(seed int64) error {
	if g.State != GameStateInitial {
		return ErrGameFinished
	}

	if len(g.Players) < 2 {
		return ErrNotEnoughPlayers
	}

	g.Deck.Shuffle(seed)

	for i := 0; i < 2; i++ {
		for _, p := range g.Players {
			card, err := g.Deck.Draw()
			if err != nil {
				return err
			}

			p.Cards.AddCard(card)
		}
	}

	g.State = GameStatePreFlop

	if err := g.postBlinds(); err != nil {
		return err
	}

	g.resolveTurn(GameStatePreFlop)

	g.logger.WithFields(logrus.Fields{
		"game":    g.ID,
		"players": len(g.Players),
		"dealer":  g.DealerIndex,
		"stake":   g.TableStake,
	}).Info("hand started")

	return nil
}

// postBlinds debits the small and big blinds. Heads-up, the dealer posts the
// small blind; otherwise the two seats left of the dealer post.
func (g *Game) postBlinds() error {
	n := len(g.Players)

	smallBlindSeat := (g.DealerIndex + 1) % n
	bigBlindSeat := (g.DealerIndex + 2) % n
	if n == 2 {
		smallBlindSeat = g.DealerIndex
		bigBlindSeat = (g.DealerIndex + 1) % n
	}

	if err := g.postBlind(g.Players[smallBlindSeat], g.TableStake); err != nil {
		return err
	}

	return g.postBlind(g.Players[bigBlindSeat], g.TableStake*2)
}

// postBlind puts a blind short of the full amount all-in for what they have
func (g *Game) postBlind(p *Player, amount int) error {
	if p.Wallet.Value() <= amount {
		moved, err := p.Wallet.AuthorizeAll(g.ID)
		if err != nil {
			return err
		}

		p.State = PlayerStateAllIn
		amount = moved
	} else if err := p.Wallet.Authorize(g.ID, amount); err != nil {
		return err
	}

	p.RoundRate += amount
	if p.RoundRate > g.MaxRoundRate {
		g.MaxRoundRate = p.RoundRate
	}

	return nil
}

// PlayersBy returns the players whose state matches any of the provided states
func (g *Game) PlayersBy(states ...PlayerState) []*Player {
	players := make([]*Player, 0, len(g.Players))
	for _, p := range g.Players {
		for _, state := range states {
			if p.State == state {
				players = append(players, p)
				break
			}
		}
	}

	return players
}

// CurrentPlayer returns the player on the clock, or nil if the turn pointer
// is undefined
func (g *Game) CurrentPlayer() *Player {
	if g.CurrentPlayerIndex < 0 || g.CurrentPlayerIndex >= len(g.Players) {
		return nil
	}

	return g.Players[g.CurrentPlayerIndex]
}

// InBettingRound returns true if the current state is a betting street
func (g *Game) InBettingRound() bool {
	return g.State >= GameStatePreFlop && g.State <= GameStateRiver
}

// CallAmount returns what the player must add to match the current bet
func (g *Game) CallAmount(p *Player) int {
	if amount := g.MaxRoundRate - p.RoundRate; amount > 0 {
		return amount
	}

	return 0
}
