package deck

import (
	"errors"
	"fmt"
	"sort"
)

// ErrOutOfRange is returned when a rank or suit is outside its valid range.
var ErrOutOfRange = errors.New("arguments out of range")

// Rank represents a rank in shedding order: Three is the lowest, Two the highest.
type Rank int

var rankNames = []string{"", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King", "Ace", "Two"}
var rankSymbols = []string{"", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A", "2"}

const (
	Three Rank = iota + 1
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
	Two
)

func (r Rank) String() string {
	if !r.valid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

func (r Rank) valid() bool {
	return r >= Three && r <= Two
}

// Suit represents a suit, ordered Diamonds < Clubs < Hearts < Spades.
type Suit int

var suitNames = []string{"", "Diamonds", "Clubs", "Hearts", "Spades"}
var suitSymbols = []string{"", "♦", "♣", "♥", "♠"}

const (
	Diamonds Suit = iota + 1
	Clubs
	Hearts
	Spades
)

func (s Suit) String() string {
	if !s.valid() {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// Symbol returns the unicode glyph for the suit.
func (s Suit) Symbol() string {
	if !s.valid() {
		return "?"
	}
	return suitSymbols[s]
}

// Red reports whether the suit is printed in red.
func (s Suit) Red() bool {
	return s == Diamonds || s == Hearts
}

func (s Suit) valid() bool {
	return s >= Diamonds && s <= Spades
}

// StartingCard is held by the player who must open the match.
var StartingCard = Card{rank: Three, suit: Diamonds}

// Card is an immutable playing card. Cards are comparable with == and
// can be used as map keys.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard constructs a card
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.valid() || !suit.valid() {
		return Card{}, fmt.Errorf("%w: rank %d, suit %d", ErrOutOfRange, rank, suit)
	}
	return Card{rank: rank, suit: suit}, nil
}

// MustCard is like NewCard but panics on invalid input.
func MustCard(rank Rank, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

// FromIndex is the inverse of Card.Index.
func FromIndex(i int) (Card, error) {
	if i < 0 || i >= Size {
		return Card{}, fmt.Errorf("%w: index %d", ErrOutOfRange, i)
	}
	return Card{rank: Rank(i/numSuits + 1), suit: Suit(i%numSuits + 1)}, nil
}

// Rank returns a card's rank
func (c Card) Rank() Rank {
	return c.rank
}

// Suit returns a card's suit
func (c Card) Suit() Suit {
	return c.suit
}

// Index places the card in 0..51. Indices follow the card order, so
// a.Index() < b.Index() exactly when a.Less(b).
func (c Card) Index() int {
	return (int(c.rank)-1)*numSuits + int(c.suit) - 1
}

// Less reports whether c ranks below other.
func (c Card) Less(other Card) bool {
	return Compare(c, other) < 0
}

// Greater reports whether c ranks above other.
func (c Card) Greater(other Card) bool {
	return Compare(c, other) > 0
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.rank, c.suit)
}

// Short renders the card compactly, e.g. "10♥".
func (c Card) Short() string {
	if !c.rank.valid() {
		return "?" + c.suit.Symbol()
	}
	return rankSymbols[c.rank] + c.suit.Symbol()
}

// Compare orders cards by rank, then by suit. It returns -1, 0 or 1.
func Compare(a, b Card) int {
	switch {
	case a.rank < b.rank:
		return -1
	case a.rank > b.rank:
		return 1
	case a.suit < b.suit:
		return -1
	case a.suit > b.suit:
		return 1
	}
	return 0
}

// Sort orders cards ascending in place.
func Sort(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].Less(cards[j])
	})
}

// Max returns the highest card. It returns the zero Card for an empty slice.
func Max(cards []Card) Card {
	var top Card
	for i, c := range cards {
		if i == 0 || c.Greater(top) {
			top = c
		}
	}
	return top
}
