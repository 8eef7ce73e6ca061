package holdem

// minBuyInBigBlinds is how many big blinds a player must hold to join a table
const minBuyInBigBlinds = 20

// Stake configures the blinds for a table
type Stake struct {
	SmallBlind int    `json:"smallBlind"`
	Name       string `json:"name"`
	MinBuyIn   int    `json:"minBuyIn"`
}

// BigBlind returns the big blind amount
func (s Stake) BigBlind() int {
	return s.SmallBlind * 2
}

// HasMinimumBuyIn returns true if the balance covers the minimum buy-in
func (s Stake) HasMinimumBuyIn(balance int) bool {
	return balance >= s.BigBlind()*minBuyInBigBlinds
}

// NewStake returns a stake with the minimum buy-in derived from the small blind
func NewStake(smallBlind int, name string) Stake {
	return Stake{
		SmallBlind: smallBlind,
		Name:       name,
		MinBuyIn:   smallBlind * 2 * minBuyInBigBlinds,
	}
}

// StakePresets are the stake levels tables can be opened at
var StakePresets = map[string]Stake{
	"micro":   NewStake(5, "Micro (5/10)"),
	"low":     NewStake(10, "Low (10/20)"),
	"medium":  NewStake(25, "Medium (25/50)"),
	"high":    NewStake(50, "High (50/100)"),
	"premium": NewStake(100, "Premium (100/200)"),
}
