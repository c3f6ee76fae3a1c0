package game

import "github.com/minaorangina/daidi/deck"

const fiveCardSize = 5

// rankGroups splits sorted cards into runs of equal rank, lowest rank first.
func rankGroups(sorted []deck.Card) [][]deck.Card {
	groups := [][]deck.Card{}
	for i := 0; i < len(sorted); {
		j := i + 1
		for j < len(sorted) && sorted[j].Rank() == sorted[i].Rank() {
			j++
		}
		groups = append(groups, sorted[i:j])
		i = j
	}
	return groups
}

// pairsOf returns every 2-card combination of one rank group.
func pairsOf(group []deck.Card) []Combo {
	combos := []Combo{}
	for i := 0; i < len(group); i++ {
		for j := i + 1; j < len(group); j++ {
			combos = append(combos, Combo{group[i], group[j]})
		}
	}
	return combos
}

// triplesOf returns every 3-card combination of one rank group.
func triplesOf(group []deck.Card) []Combo {
	combos := []Combo{}
	for i := 0; i < len(group); i++ {
		for j := i + 1; j < len(group); j++ {
			for k := j + 1; k < len(group); k++ {
				combos = append(combos, Combo{group[i], group[j], group[k]})
			}
		}
	}
	return combos
}

// fiveCardSubsets calls fn with every 5-card subset of sorted, in
// lexicographic index order. The combo passed to fn is freshly allocated.
func fiveCardSubsets(sorted []deck.Card, fn func(Combo)) {
	n := len(sorted)
	if n < fiveCardSize {
		return
	}

	idx := [fiveCardSize]int{0, 1, 2, 3, 4}
	for {
		combo := make(Combo, fiveCardSize)
		for i, x := range idx {
			combo[i] = sorted[x]
		}
		fn(combo)

		// advance the rightmost index that still has room
		i := fiveCardSize - 1
		for i >= 0 && idx[i] == n-fiveCardSize+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < fiveCardSize; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
