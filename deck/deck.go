package deck

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

const (
	numRanks = 13
	numSuits = 4

	// Size is the number of cards in a full deck.
	Size = numRanks * numSuits
)

// ErrInvalidDeck is returned when a deck is not exactly 52 unique cards.
var ErrInvalidDeck = errors.New("deck must contain exactly 52 unique cards")

// Deck represents a deck of cards
type Deck []Card

// New creates a deck of cards, ordered by rank then suit
func New() Deck {
	cards := make(Deck, 0, Size)
	for rank := Three; rank <= Two; rank++ {
		for suit := Diamonds; suit <= Spades; suit++ {
			cards = append(cards, Card{rank: rank, suit: suit})
		}
	}
	return cards
}

// Validate checks the deck holds every card exactly once.
func (d Deck) Validate() error {
	if len(d) != Size {
		return fmt.Errorf("%w: got %d cards", ErrInvalidDeck, len(d))
	}

	seen := map[Card]struct{}{}
	for _, c := range d {
		if !c.rank.valid() || !c.suit.valid() {
			return fmt.Errorf("%w: invalid card %v", ErrInvalidDeck, c)
		}
		if _, ok := seen[c]; ok {
			return fmt.Errorf("%w: duplicate %s", ErrInvalidDeck, c)
		}
		seen[c] = struct{}{}
	}

	return nil
}

// Shuffle shuffles the deck of cards
func (d *Deck) Shuffle() error {
	return d.ShuffleWith(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// ShuffleWith shuffles the deck using r, so a fixed seed gives a fixed order.
func (d *Deck) ShuffleWith(r *rand.Rand) error {
	if err := d.Validate(); err != nil {
		return err
	}

	actualDeck := *d
	for i := len(actualDeck) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		actualDeck[i], actualDeck[j] = actualDeck[j], actualDeck[i]
	}

	return nil
}

// Deal deals n number of cards from the deck, until it is empty
func (d *Deck) Deal(n int) []Card {
	numCardsInDeck := len(*d)
	if n < 0 || n > numCardsInDeck {
		return []Card{}
	}
	startingIndex := numCardsInDeck - n
	subSlice := make([]Card, n)
	copy(subSlice, (*d)[startingIndex:numCardsInDeck])
	*d = (*d)[:startingIndex]
	return subSlice
}
