// Package sidepot splits a pot among players with unequal contributions.
// Each distinct all-in level creates a tier that only players who covered
// it can win.
package sidepot

import "sort"

// Contribution is one player's stake in the hand at showdown.
type Contribution struct {
	// UserID identifies the player
	UserID string

	// Amount is the total the player committed across all streets
	Amount int

	// Folded players still fund the tiers they paid into but can never win
	Folded bool

	// Score ranks the player's best hand. Higher wins. Ignored for folded
	// players.
	Score int
}

// Payouts maps user ID to the amount won. Players who win nothing are absent.
type Payouts map[string]int

// Settle divides the contributions into tiered pots and awards each tier to
// the best unfolded hand (or hands) eligible for it. Ties split evenly with
// any remainder handed out one chip at a time in seatOrder, which lists the
// contenders' user IDs starting left of the dealer.
func Settle(contributions []Contribution, seatOrder []string) Payouts {
	payouts := make(Payouts)

	levels := contenderLevels(contributions)
	if len(levels) == 0 {
		return payouts
	}

	prev := 0
	for i, level := range levels {
		// each contribution funds the slice of itself that falls inside
		// this tier's band, so partial amounts from folded players are
		// still paid out. The top tier also absorbs any excess above the
		// highest contender level.
		var pot int
		for _, c := range contributions {
			if c.Amount <= prev {
				continue
			}

			capped := c.Amount
			if i < len(levels)-1 && capped > level {
				capped = level
			}

			pot += capped - prev
		}

		winners := tierWinners(contributions, level)
		award(payouts, pot, winners, seatOrder)
		prev = level
	}

	return payouts
}

// contenderLevels returns the sorted distinct contribution amounts of
// players still able to win
func contenderLevels(contributions []Contribution) []int {
	seen := make(map[int]bool)
	var levels []int
	for _, c := range contributions {
		if c.Folded || c.Amount == 0 {
			continue
		}

		if !seen[c.Amount] {
			seen[c.Amount] = true
			levels = append(levels, c.Amount)
		}
	}

	sort.Ints(levels)
	return levels
}

// tierWinners returns the user IDs holding the best score among unfolded
// players who covered the level
func tierWinners(contributions []Contribution, level int) []string {
	best := 0
	found := false
	for _, c := range contributions {
		if c.Folded || c.Amount < level {
			continue
		}

		if !found || c.Score > best {
			best = c.Score
			found = true
		}
	}

	var winners []string
	for _, c := range contributions {
		if c.Folded || c.Amount < level {
			continue
		}

		if c.Score == best {
			winners = append(winners, c.UserID)
		}
	}

	return winners
}

// award splits pot evenly among winners, handing the remainder out one chip
// at a time in seatOrder
func award(payouts Payouts, pot int, winners []string, seatOrder []string) {
	if pot == 0 || len(winners) == 0 {
		return
	}

	share := pot / len(winners)
	remainder := pot % len(winners)

	isWinner := make(map[string]bool, len(winners))
	for _, w := range winners {
		if share > 0 {
			payouts[w] += share
		}
		isWinner[w] = true
	}

	for _, userID := range seatOrder {
		if remainder == 0 {
			break
		}

		if isWinner[userID] {
			payouts[userID]++
			remainder--
		}
	}

	// seat order may not cover every winner; fall back to winner order
	for _, w := range winners {
		if remainder == 0 {
			break
		}

		payouts[w]++
		remainder--
	}
}
