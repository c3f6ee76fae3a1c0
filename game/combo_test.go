package game

import (
	"testing"

	"github.com/minaorangina/daidi/deck"
	"github.com/stretchr/testify/assert"
)

func TestComboShape(t *testing.T) {
	tests := []struct {
		name     string
		combo    Combo
		expected Shape
	}{
		{"Pass", PassMove, Pass},
		{"Single", NewCombo(mc(deck.Ace, deck.Clubs)), Single},
		{"Pair", NewCombo(mc(deck.Ace, deck.Clubs), mc(deck.Ace, deck.Spades)), Pair},
		{"Mixed pair", NewCombo(mc(deck.Ace, deck.Clubs), mc(deck.King, deck.Spades)), Invalid},
		{"Triple", NewCombo(mc(deck.Four, deck.Clubs), mc(deck.Four, deck.Spades), mc(deck.Four, deck.Hearts)), Triple},
		{"Four cards", NewCombo(mc(deck.Four, deck.Clubs), mc(deck.Four, deck.Spades), mc(deck.Four, deck.Hearts), mc(deck.Four, deck.Diamonds)), Invalid},
		{"Duplicate card", Combo{mc(deck.Four, deck.Clubs), mc(deck.Four, deck.Clubs)}, Invalid},
		{"Five cards", NewCombo(sortedDeal()[0][:5]...), FiveCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.combo.Shape())
		})
	}
}

func TestCombo(t *testing.T) {
	t.Run("is sorted on construction", func(t *testing.T) {
		combo := NewCombo(mc(deck.Two, deck.Clubs), mc(deck.Three, deck.Spades))
		assert.Equal(t, Combo{mc(deck.Three, deck.Spades), mc(deck.Two, deck.Clubs)}, combo)
		assert.Equal(t, mc(deck.Two, deck.Clubs), combo.Max())
		assert.Equal(t, 2, combo.Len())
	})

	t.Run("equality ignores order", func(t *testing.T) {
		a := Combo{mc(deck.Six, deck.Spades), mc(deck.Six, deck.Clubs)}
		b := Combo{mc(deck.Six, deck.Clubs), mc(deck.Six, deck.Spades)}
		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(b[:1]))
	})

	t.Run("renders compactly", func(t *testing.T) {
		assert.Equal(t, "pass", PassMove.String())
		assert.Equal(t, "[10♥ 10♠]", NewCombo(mc(deck.Ten, deck.Hearts), mc(deck.Ten, deck.Spades)).String())
	})
}
