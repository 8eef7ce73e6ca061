package handrank

import (
	"sort"

	"pokerbot-server/pkg/deck"
)

// HandRank is the per-category multiplier. Ranks run 2..14, so base 15
// leaves headroom for any single kicker digit.
const HandRank = 759375 // 15^5

const scoreBase = 15

// Score scores a five-card hand. A higher score is a strictly better hand,
// and the score deterministically encodes category plus kickers so two hands
// compare by plain integer ordering.
func Score(cards []*deck.Card) int {
	if len(cards) != 5 {
		panic("a hand must contain exactly five cards")
	}

	values := make([]int, 5)
	singleSuit := true
	for i, card := range cards {
		values[i] = card.Rank
		if card.Suit != cards[0].Suit {
			singleSuit = false
		}
	}
	sort.Ints(values)

	groups := groupByCount(values)

	// A sequence is five distinct ranks spanning exactly four steps. Note
	// the ace only plays high here: A-2-3-4-5 does not count as a straight.
	isSequence := len(groups) == 5 && values[4]-values[0] == 4

	switch {
	case len(groups) == 5 && values[0] == 10 && singleSuit:
		return encode(RoyalFlush, nil)
	case singleSuit && isSequence:
		return encode(StraightFlush, []int{values[4]})
	case matchShape(groups, 1, 4):
		return encode(FourOfAKind, groupRanks(groups))
	case matchShape(groups, 2, 3):
		return encode(FullHouse, groupRanks(groups))
	case singleSuit:
		return encode(Flush, []int{values[4]})
	case isSequence:
		return encode(Straight, []int{values[4]})
	case matchShape(groups, 1, 1, 3):
		return encode(ThreeOfAKind, groupRanks(groups))
	case matchShape(groups, 1, 2, 2):
		return encode(TwoPair, groupRanks(groups))
	case matchShape(groups, 1, 1, 1, 2):
		return encode(OnePair, groupRanks(groups))
	default:
		return encode(HighCard, values)
	}
}

// BestOf enumerates every five-card combination of the provided cards
// (5 to 7 of them) and returns the best one along with its score.
// Ties on score keep the first combination seen.
func BestOf(cards []*deck.Card) (deck.Hand, int) {
	if len(cards) < 5 {
		panic("need at least five cards")
	}

	var bestHand deck.Hand
	bestScore := 0

	combination := make([]*deck.Card, 5)
	forEachCombination(cards, combination, 0, 0, func(hand []*deck.Card) {
		if score := Score(hand); score > bestScore {
			bestScore = score
			bestHand = deck.Hand(hand).Clone()
		}
	})

	return bestHand, bestScore
}

func forEachCombination(cards, combination []*deck.Card, start, depth int, fn func([]*deck.Card)) {
	if depth == len(combination) {
		fn(combination)
		return
	}

	for i := start; i <= len(cards)-(len(combination)-depth); i++ {
		combination[depth] = cards[i]
		forEachCombination(cards, combination, i+1, depth+1, fn)
	}
}

// rankGroup is a run of equally-ranked cards
type rankGroup struct {
	rank  int
	count int
}

// groupByCount builds the rank-frequency histogram, sorted by count and then
// by rank, both ascending. The kicker order every category needs falls out of
// this ordering directly.
func groupByCount(sortedValues []int) []rankGroup {
	groups := make([]rankGroup, 0, 5)
	for _, v := range sortedValues {
		if n := len(groups); n > 0 && groups[n-1].rank == v {
			groups[n-1].count++
			continue
		}

		groups = append(groups, rankGroup{rank: v, count: 1})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].count < groups[j].count
	})

	return groups
}

func matchShape(groups []rankGroup, shape ...int) bool {
	if len(groups) != len(shape) {
		return false
	}

	for i, count := range shape {
		if groups[i].count != count {
			return false
		}
	}

	return true
}

func groupRanks(groups []rankGroup) []int {
	ranks := make([]int, len(groups))
	for i, g := range groups {
		ranks[i] = g.rank
	}

	return ranks
}

// encode packs a category and its kickers into a single comparable integer.
// Kickers are emitted least-significant-first.
func encode(category Category, kickers []int) int {
	score := HandRank * int(category)

	multiplier := 1
	for _, kicker := range kickers {
		score += kicker * multiplier
		multiplier *= scoreBase
	}

	return score
}
