package game

import "github.com/minaorangina/daidi/deck"

func cardSliceToSet(s []deck.Card) map[deck.Card]struct{} {
	set := map[deck.Card]struct{}{}
	for _, key := range s {
		set[key] = struct{}{}
	}
	return set
}

func cardsUnique(cards []deck.Card) bool {
	return len(cardSliceToSet(cards)) == len(cards)
}

func containsCard(s []deck.Card, targets ...deck.Card) bool {
	for _, c := range s {
		for _, tg := range targets {
			if c == tg {
				return true
			}
		}
	}
	return false
}

// removeCards returns hand without the played cards, removing each played
// card at most once. The order of the remaining cards is preserved.
func removeCards(hand, played []deck.Card) []deck.Card {
	if len(played) == 0 {
		return hand
	}

	toRemove := cardSliceToSet(played)
	updated := make([]deck.Card, 0, len(hand))
	for _, c := range hand {
		if _, ok := toRemove[c]; ok {
			delete(toRemove, c)
			continue
		}
		updated = append(updated, c)
	}
	return updated
}
