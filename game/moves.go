package game

import "github.com/minaorangina/daidi/deck"

// legalMoves lists every combo from hand that may be played on pile. The
// pass comes first. hand must be sorted and is not modified.
func legalMoves(hand []deck.Card, pile Combo) []Combo {
	moves := []Combo{PassMove}

	switch len(pile) {
	case 0:
		for _, c := range hand {
			moves = append(moves, Combo{c})
		}
		groups := rankGroups(hand)
		for _, g := range groups {
			moves = append(moves, pairsOf(g)...)
		}
		for _, g := range groups {
			moves = append(moves, triplesOf(g)...)
		}
		fiveCardSubsets(hand, func(c Combo) {
			moves = append(moves, c)
		})

	case 1:
		for _, c := range hand {
			if c.Greater(pile[0]) {
				moves = append(moves, Combo{c})
			}
		}

	case 2:
		for _, g := range rankGroups(hand) {
			for _, pair := range pairsOf(g) {
				if beatsPair(pile, pair) {
					moves = append(moves, pair)
				}
			}
		}

	case 3:
		for _, g := range rankGroups(hand) {
			for _, triple := range triplesOf(g) {
				if triple.Max().Greater(pile.Max()) {
					moves = append(moves, triple)
				}
			}
		}

	case fiveCardSize:
		played := Classify(pile)
		fiveCardSubsets(hand, func(c Combo) {
			if beatsHand(played, Classify(c)) {
				moves = append(moves, c)
			}
		})
	}

	return moves
}

// legalFirstMoves lists the opening moves of a match: each must contain
// the starting card. Without it, only the pass is offered.
func legalFirstMoves(hand []deck.Card) []Combo {
	moves := []Combo{PassMove}
	if !containsCard(hand, deck.StartingCard) {
		return moves
	}

	moves = append(moves, Combo{deck.StartingCard})

	for _, g := range rankGroups(hand) {
		if g[0].Rank() != deck.StartingCard.Rank() {
			continue
		}
		for _, pair := range pairsOf(g) {
			if pair.Contains(deck.StartingCard) {
				moves = append(moves, pair)
			}
		}
		for _, triple := range triplesOf(g) {
			if triple.Contains(deck.StartingCard) {
				moves = append(moves, triple)
			}
		}
	}

	fiveCardSubsets(hand, func(c Combo) {
		if c.Contains(deck.StartingCard) {
			moves = append(moves, c)
		}
	})

	return moves
}

// Beats reports whether candidate may be played on pile. Any non-pass
// candidate of a recognised shape beats an empty pile.
func Beats(pile, candidate Combo) bool {
	if candidate.IsPass() {
		return false
	}
	shape := candidate.Shape()
	if shape == Invalid {
		return false
	}
	if pile.IsPass() {
		return true
	}
	if len(pile) != len(candidate) || pile.Shape() != shape {
		return false
	}

	switch shape {
	case Single, Triple:
		return candidate.Max().Greater(pile.Max())
	case Pair:
		return beatsPair(pile, candidate)
	case FiveCard:
		return beatsHand(Classify(pile), Classify(candidate))
	}
	return false
}

// beatsPair: a higher rank wins outright, an equal rank needs a higher
// top suit.
func beatsPair(played, pair Combo) bool {
	if pair[0].Rank() == played[0].Rank() {
		return pair.Max().Suit() > played.Max().Suit()
	}
	return pair[0].Rank() > played[0].Rank()
}

// beatsHand: a high card hand only answers another high card hand.
func beatsHand(played, candidate Hand) bool {
	if candidate.Type() != played.Type() && !candidate.Type().Playable() {
		return false
	}
	return CompareHands(candidate, played) > 0
}

// containsMove reports whether move is one of moves, ignoring card order.
func containsMove(moves []Combo, move Combo) bool {
	key := move.Key()
	for _, m := range moves {
		if len(m) == len(move) && m.Key() == key {
			return true
		}
	}
	return false
}
