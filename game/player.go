package game

import (
	"fmt"

	"github.com/minaorangina/daidi/deck"
)

// Player holds one seat's hand. Cards leave the hand only when a move
// containing them is applied.
type Player struct {
	hand []deck.Card
}

// NewPlayer constructs a player holding a copy of hand.
func NewPlayer(hand []deck.Card) *Player {
	h := make([]deck.Card, len(hand))
	copy(h, hand)
	deck.Sort(h)
	return &Player{hand: h}
}

// Hand returns a sorted copy of the player's cards.
func (p *Player) Hand() []deck.Card {
	h := make([]deck.Card, len(p.hand))
	copy(h, p.hand)
	return h
}

// Len is the number of cards in hand.
func (p *Player) Len() int {
	return len(p.hand)
}

// Has reports whether the player holds card.
func (p *Player) Has(card deck.Card) bool {
	return containsCard(p.hand, card)
}

// LegalMoves lists the pass followed by every combo that may be played
// on pile. An empty pile means the table is open.
func (p *Player) LegalMoves(pile Combo) []Combo {
	return legalMoves(p.hand, pile)
}

// LegalFirstMoves lists the moves allowed before anyone has played:
// the pass, plus combos containing the starting card if the player has it.
func (p *Player) LegalFirstMoves() []Combo {
	return legalFirstMoves(p.hand)
}

// ApplyMove plays move on pile. If the move is not currently legal the
// hand is left unchanged and an ErrInvalidMove is returned.
func (p *Player) ApplyMove(pile, move Combo) error {
	return p.apply(p.LegalMoves(pile), move)
}

// ApplyFirstMove is ApplyMove for the opening play of a match.
func (p *Player) ApplyFirstMove(move Combo) error {
	return p.apply(p.LegalFirstMoves(), move)
}

func (p *Player) apply(moves []Combo, move Combo) error {
	if !containsMove(moves, move) {
		return fmt.Errorf("%w: %s", ErrInvalidMove, move)
	}
	p.hand = removeCards(p.hand, move)
	return nil
}
