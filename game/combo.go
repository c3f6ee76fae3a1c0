package game

import (
	"strings"

	"github.com/minaorangina/daidi/deck"
)

// Shape is the structural kind of a combo.
type Shape int

const (
	Invalid Shape = iota
	Pass
	Single
	Pair
	Triple
	FiveCard
)

var shapeNames = []string{"invalid", "pass", "single", "pair", "triple", "five-card"}

func (s Shape) String() string {
	if s < Invalid || s > FiveCard {
		return "invalid"
	}
	return shapeNames[s]
}

// Combo is a set of cards played together, kept in ascending order.
// The empty combo is a pass.
type Combo []deck.Card

// PassMove is the empty combo.
var PassMove = Combo{}

// NewCombo copies and sorts the cards.
func NewCombo(cards ...deck.Card) Combo {
	c := make(Combo, len(cards))
	copy(c, cards)
	deck.Sort(c)
	return c
}

// IsPass reports whether the combo is the pass option.
func (c Combo) IsPass() bool {
	return len(c) == 0
}

// Len is the number of cards in the combo.
func (c Combo) Len() int {
	return len(c)
}

// Max returns the combo's highest card.
func (c Combo) Max() deck.Card {
	return deck.Max(c)
}

// Contains reports whether card is part of the combo.
func (c Combo) Contains(card deck.Card) bool {
	return containsCard(c, card)
}

// Key identifies the combo's card set: bit i is set when the card with
// index i is present.
func (c Combo) Key() uint64 {
	var k uint64
	for _, card := range c {
		k |= 1 << uint(card.Index())
	}
	return k
}

// Equal reports whether both combos hold the same cards.
func (c Combo) Equal(other Combo) bool {
	return len(c) == len(other) && c.Key() == other.Key()
}

// Shape classifies the combo structurally. Five distinct cards are always
// FiveCard; their poker-style strength comes from Classify.
func (c Combo) Shape() Shape {
	if !cardsUnique(c) {
		return Invalid
	}
	switch len(c) {
	case 0:
		return Pass
	case 1:
		return Single
	case 2:
		if sameRank(c) {
			return Pair
		}
	case 3:
		if sameRank(c) {
			return Triple
		}
	case 5:
		return FiveCard
	}
	return Invalid
}

func (c Combo) String() string {
	if c.IsPass() {
		return "pass"
	}
	parts := make([]string, len(c))
	for i, card := range c {
		parts[i] = card.Short()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func sameRank(cards []deck.Card) bool {
	for _, c := range cards[1:] {
		if c.Rank() != cards[0].Rank() {
			return false
		}
	}
	return true
}
