package game

import (
	"fmt"
	"sort"

	"github.com/minaorangina/daidi/deck"
)

// HandType is the category of a five-card hand, weakest first.
type HandType int

const (
	HighCardType HandType = iota
	StraightType
	FlushType
	FullHouseType
	FourKindType
	StraightFlushType
)

var handTypeNames = []string{"high_card", "straight", "flush", "full_house", "four_kind", "straight_flush"}

func (t HandType) String() string {
	if t < HighCardType || t > StraightFlushType {
		return fmt.Sprintf("HandType(%d)", int(t))
	}
	return handTypeNames[t]
}

// Playable reports whether hands of this type may answer a pile of another type.
func (t HandType) Playable() bool {
	return t != HighCardType
}

// Hand is a classified five-card hand. The set of implementations is
// closed: StraightFlush, FourKind, FullHouse, Flush, Straight, HighCard.
type Hand interface {
	Type() HandType
	// compareKey compares against a hand of the same type.
	compareKey(other Hand) int
}

// StraightFlush is five consecutive ranks in one suit.
type StraightFlush struct {
	High deck.Rank
}

// FourKind is four cards of one rank plus a kicker.
type FourKind struct {
	Quad, Kicker deck.Rank
}

// FullHouse is three of one rank and two of another.
type FullHouse struct {
	Triple, Pair deck.Rank
}

// Flush is five cards of one suit that are not a straight. It is keyed
// by its highest card, rank first then suit.
type Flush struct {
	High deck.Card
}

// Straight is five consecutive ranks in mixed suits.
type Straight struct {
	High deck.Rank
}

// HighCard is any other five cards. It only beats a lower HighCard.
type HighCard struct {
	High deck.Rank
}

func (StraightFlush) Type() HandType { return StraightFlushType }
func (FourKind) Type() HandType      { return FourKindType }
func (FullHouse) Type() HandType     { return FullHouseType }
func (Flush) Type() HandType         { return FlushType }
func (Straight) Type() HandType      { return StraightType }
func (HighCard) Type() HandType      { return HighCardType }

func (h StraightFlush) compareKey(other Hand) int {
	return compareRanks(h.High, other.(StraightFlush).High)
}

func (h FourKind) compareKey(other Hand) int {
	o := other.(FourKind)
	if c := compareRanks(h.Quad, o.Quad); c != 0 {
		return c
	}
	return compareRanks(h.Kicker, o.Kicker)
}

func (h FullHouse) compareKey(other Hand) int {
	o := other.(FullHouse)
	if c := compareRanks(h.Triple, o.Triple); c != 0 {
		return c
	}
	return compareRanks(h.Pair, o.Pair)
}

func (h Flush) compareKey(other Hand) int {
	return deck.Compare(h.High, other.(Flush).High)
}

func (h Straight) compareKey(other Hand) int {
	return compareRanks(h.High, other.(Straight).High)
}

func (h HighCard) compareKey(other Hand) int {
	return compareRanks(h.High, other.(HighCard).High)
}

func (h StraightFlush) String() string { return fmt.Sprintf("straight_flush(%s)", h.High) }
func (h FourKind) String() string      { return fmt.Sprintf("four_kind(%s, %s)", h.Quad, h.Kicker) }
func (h FullHouse) String() string     { return fmt.Sprintf("full_house(%s, %s)", h.Triple, h.Pair) }
func (h Flush) String() string         { return fmt.Sprintf("flush(%s)", h.High) }
func (h Straight) String() string      { return fmt.Sprintf("straight(%s)", h.High) }
func (h HighCard) String() string      { return fmt.Sprintf("high_card(%s)", h.High) }

// CompareHands orders hands by type, then by the type's rank key.
// It returns -1, 0 or 1.
func CompareHands(a, b Hand) int {
	if a.Type() != b.Type() {
		if a.Type() < b.Type() {
			return -1
		}
		return 1
	}
	return a.compareKey(b)
}

// Classify determines the hand type of five cards. It never fails: any
// input that is not a recognised five-card hand is a HighCard.
func Classify(cards []deck.Card) Hand {
	if len(cards) != 5 {
		return HighCard{High: deck.Max(cards).Rank()}
	}

	ranks := make([]int, 0, len(cards))
	rankCounts := map[deck.Rank]int{}
	suits := map[deck.Suit]struct{}{}
	for _, c := range cards {
		ranks = append(ranks, int(c.Rank()))
		rankCounts[c.Rank()]++
		suits[c.Suit()] = struct{}{}
	}
	sort.Ints(ranks)

	high := deck.Rank(ranks[len(ranks)-1])
	straight := isStraight(ranks)
	oneSuit := len(suits) == 1

	if straight && oneSuit {
		return StraightFlush{High: high}
	}

	var quad, triple, pair, single deck.Rank
	for rank, n := range rankCounts {
		switch n {
		case 4:
			quad = rank
		case 3:
			triple = rank
		case 2:
			pair = rank
		case 1:
			single = rank
		}
	}

	if quad != 0 {
		return FourKind{Quad: quad, Kicker: single}
	}
	if triple != 0 && pair != 0 {
		return FullHouse{Triple: triple, Pair: pair}
	}
	if oneSuit {
		return Flush{High: deck.Max(cards)}
	}
	if straight {
		return Straight{High: high}
	}
	return HighCard{High: high}
}

// isStraight expects sorted ranks. Two does not wrap around to Three.
func isStraight(ranks []int) bool {
	for i := 1; i < len(ranks); i++ {
		if ranks[i]-ranks[i-1] != 1 {
			return false
		}
	}
	return true
}

func compareRanks(a, b deck.Rank) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
