package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	a := assert.New(t)

	d := New()
	a.Equal(52, len(d.Cards))

	seen := make(map[string]bool)
	for _, card := range d.Cards {
		seen[card.String()] = true
	}

	a.Equal(52, len(seen))
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	d := New()
	d.Shuffle(1)

	d2 := New()
	d2.Shuffle(1)

	a.Equal(CardsToString(d.Cards), CardsToString(d2.Cards))
	a.Equal(int64(1), d.GetSeed())

	d3 := New()
	d3.Shuffle(2)
	a.NotEqual(CardsToString(d.Cards), CardsToString(d3.Cards))

	// re-shuffling must start from a full deck
	_, _ = d.Draw()
	d.Shuffle(1)
	a.Equal(52, len(d.Cards))
}

func TestDeck_Draw(t *testing.T) {
	a := assert.New(t)

	d := New()
	d.Shuffle(1)

	a.True(d.CanDraw(52))
	a.False(d.CanDraw(53))

	card, err := d.Draw()
	a.NoError(err)
	a.NotNil(card)
	a.Equal(51, d.CardsLeft())

	for d.CardsLeft() > 0 {
		_, err := d.Draw()
		a.NoError(err)
	}

	card, err = d.Draw()
	a.Nil(card)
	a.Equal(ErrEndOfDeck, err)
}
