package handrank

import "fmt"

// Category is a poker hand category, i.e., royal flush
type Category int

// Constants for Category. The values are significant: they are the
// most-significant digit of an encoded score, so a higher category always
// outranks a lower one regardless of kickers.
const (
	HighCard Category = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the string representation of a hand category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		panic(fmt.Sprintf("unknown hand category: %d", c))
	}
}

// CategoryFromScore recovers the hand category from an encoded score
func CategoryFromScore(score int) Category {
	return Category(score / HandRank)
}
