package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/sirupsen/logrus"

	"pokerbot-server/internal/config"
	"pokerbot-server/pkg/kv"
	"pokerbot-server/pkg/poker/holdem"
	"pokerbot-server/pkg/wallet"
)

var (
	players = flag.Int("players", 4, "number of players at the table")
	hands   = flag.Int("hands", 10, "number of hands to play")
	stake   = flag.String("stake", "", "stake preset (micro, low, medium, high, premium)")
	seed    = flag.Int64("seed", 0, "deal seed, 0 shuffles from the wall clock")
)

// simulate plays scripted hands against the betting engine with every seat
// backed by the in-memory ledger. Useful for eyeballing logs and checking
// that no chips ever leak.
func main() {
	flag.Parse()

	cfg := config.Instance()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	stakeName := *stake
	if stakeName == "" {
		stakeName = cfg.Game.DefaultStake
	}

	tableStake, ok := holdem.StakePresets[stakeName]
	if !ok {
		logrus.Fatalf("unknown stake: %s", stakeName)
	}

	store := kv.NewMemory()

	seats := make([]*holdem.Player, *players)
	for i := range seats {
		userID := fmt.Sprintf("player-%d", i+1)
		w := wallet.NewKV(store, userID)
		if err := w.Inc(cfg.Wallet.DefaultBalance); err != nil {
			logrus.WithError(err).Fatal("could not fund wallet")
		}

		if _, err := w.AddDaily(cfg.Wallet.DailyBonus); err != nil {
			logrus.WithError(err).Fatal("could not apply daily bonus")
		}

		seats[i] = holdem.NewPlayer(userID, w)
	}

	game, err := holdem.NewGame(logrus.StandardLogger(), seats, tableStake)
	if err != nil {
		logrus.WithError(err).Fatal("could not create game")
	}

	coordinator := holdem.NewCoordinator(logrus.StandardLogger())
	rng := rand.New(rand.NewSource(*seed))

	for hand := 0; hand < *hands; hand++ {
		if err := playHand(game, coordinator, rng); err != nil {
			logrus.WithError(err).Fatal("hand failed")
		}

		game.Reset(true)
	}

	total := 0
	for _, p := range seats {
		balance := p.Wallet.Value()
		total += balance
		fmt.Printf("%s\t%d\n", p.UserID, balance)
	}

	expected := (cfg.Wallet.DefaultBalance + cfg.Wallet.DailyBonus) * *players
	if total != expected {
		fmt.Fprintf(os.Stderr, "chip leak: have %d, want %d\n", total, expected)
		os.Exit(1)
	}
}

func playHand(game *holdem.Game, coordinator *holdem.Coordinator, rng *rand.Rand) error {
	// each hand gets its own deal seed so a fixed -seed still varies the
	// deals while keeping the whole run reproducible
	handSeed := int64(0)
	if *seed != 0 {
		handSeed = rng.Int63()
	}

	if err := game.StartHand(handSeed); err != nil {
		return err
	}

	for {
		result, err := coordinator.AdvanceUntilDecision(game)
		if err != nil {
			return err
		}

		if result == holdem.TurnResultGameEnded {
			break
		}

		if err := act(game, rng); err != nil {
			return err
		}
	}

	payouts, err := coordinator.FinishHand(game)
	if err != nil {
		return err
	}

	logrus.WithField("payouts", payouts).Info("hand settled")
	return nil
}

// act plays a simple mixed strategy: mostly calls, some raises and folds
func act(game *holdem.Game, rng *rand.Rand) error {
	player := game.CurrentPlayer()

	switch n := rng.Intn(10); {
	case n < 6:
		return callOrAllIn(game, player)
	case n < 8:
		amount := game.MaxRoundRate + game.TableStake*2
		if err := game.RaiseBet(player, amount); err == wallet.ErrNotEnoughMoney {
			return callOrAllIn(game, player)
		} else if err != nil {
			return err
		}

		return nil
	case n < 9:
		_, err := game.AllIn(player)
		return err
	default:
		return game.Fold(player)
	}
}

// callOrAllIn calls the current bet, going all-in when the stack is short
func callOrAllIn(game *holdem.Game, player *holdem.Player) error {
	if game.CallAmount(player) >= player.Wallet.Value() {
		_, err := game.AllIn(player)
		return err
	}

	return game.CallCheck(player)
}
