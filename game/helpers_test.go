package game

import (
	"github.com/minaorangina/daidi/deck"
)

var mc = deck.MustCard

// sortedDeal deals the unshuffled deck round-robin: seat 0 holds every
// Diamond, seat 1 every Club, seat 2 every Heart and seat 3 every Spade.
func sortedDeal() [][]deck.Card {
	hands := make([][]deck.Card, numPlayers)
	for i, card := range deck.New() {
		hands[i%numPlayers] = append(hands[i%numPlayers], card)
	}
	return hands
}

// firstNonPass picks the first move that is not a pass, or the pass.
func firstNonPass(moves []Combo) Combo {
	for _, m := range moves {
		if !m.IsPass() {
			return m
		}
	}
	return PassMove
}

func countShapes(moves []Combo) map[Shape]int {
	counts := map[Shape]int{}
	for _, m := range moves {
		counts[m.Shape()]++
	}
	return counts
}

func containsCombo(moves []Combo, cards ...deck.Card) bool {
	return containsMove(moves, NewCombo(cards...))
}
