package game

import (
	"math/rand"
	"testing"

	"github.com/minaorangina/daidi/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	t.Run("deals four disjoint hands of 13", func(t *testing.T) {
		t.Log("Given a new seeded game")
		game, err := New(Opts{Seed: 99})
		require.NoError(t, err)

		t.Log("Then every card is dealt exactly once")
		all := []deck.Card{}
		for seat := 0; seat < numPlayers; seat++ {
			hand := game.Hand(seat)
			assert.Equal(t, 13, len(hand))
			all = append(all, hand...)
		}
		assert.ElementsMatch(t, deck.New(), all)
		require.NoError(t, game.CheckInvariants())

		t.Log("And the starting card holder moves first")
		assert.Contains(t, game.Hand(game.CurrentTurn()), deck.StartingCard)

		t.Log("And the table is open for the first play")
		assert.True(t, game.Pile().IsPass())
		assert.True(t, game.FirstPlay())
		assert.False(t, game.IsOver())
		assert.Equal(t, 0, game.PassCount())
		_, ok := game.LastPlayer()
		assert.False(t, ok)
		_, ok = game.Winner()
		assert.False(t, ok)
	})

	t.Run("same seed deals the same hands", func(t *testing.T) {
		a, err := New(Opts{Seed: 5})
		require.NoError(t, err)
		b, err := New(Opts{Rand: rand.New(rand.NewSource(5))})
		require.NoError(t, err)

		for seat := 0; seat < numPlayers; seat++ {
			assert.Equal(t, a.Hand(seat), b.Hand(seat))
		}
	})

	t.Run("rejects an incomplete deck", func(t *testing.T) {
		_, err := New(Opts{Deck: deck.New()[:48]})
		assert.ErrorIs(t, err, ErrSetup)
		assert.ErrorIs(t, err, deck.ErrInvalidDeck)
	})
}

func TestNewFromHands(t *testing.T) {
	t.Run("seats the starting card holder first", func(t *testing.T) {
		hands := sortedDeal()
		hands[0], hands[2] = hands[2], hands[0]
		game, err := NewFromHands(hands)
		require.NoError(t, err)
		assert.Equal(t, 2, game.CurrentTurn())
	})

	t.Run("needs exactly four players", func(t *testing.T) {
		_, err := NewFromHands(sortedDeal()[:3])
		assert.ErrorIs(t, err, ErrSetup)
		assert.ErrorIs(t, err, ErrTooFewPlayers)

		_, err = NewFromHands(append(sortedDeal(), []deck.Card{}))
		assert.ErrorIs(t, err, ErrTooManyPlayers)
	})

	t.Run("needs equal hands", func(t *testing.T) {
		hands := sortedDeal()
		hands[1] = append(hands[1], hands[0][0])
		hands[0] = hands[0][1:]
		_, err := NewFromHands(hands)
		assert.ErrorIs(t, err, ErrUnequalHands)
	})

	t.Run("needs every card exactly once", func(t *testing.T) {
		hands := sortedDeal()
		hands[3][0] = hands[2][0]
		_, err := NewFromHands(hands)
		assert.ErrorIs(t, err, ErrSetup)
		assert.ErrorIs(t, err, deck.ErrInvalidDeck)
	})
}

func TestGameAdvanceTurn(t *testing.T) {
	newGame := func(t *testing.T) *Game {
		t.Helper()
		game, err := NewFromHands(sortedDeal())
		require.NoError(t, err)
		return game
	}

	t.Run("the first play must hold the starting card", func(t *testing.T) {
		game := newGame(t)

		_, err := game.AdvanceTurn(NewCombo(mc(deck.Four, deck.Diamonds)))
		assert.ErrorIs(t, err, ErrInvalidMove)
		assert.True(t, game.FirstPlay())
		assert.Equal(t, 0, game.CurrentTurn())
		assert.Equal(t, 13, len(game.Hand(0)))
		assert.Empty(t, game.History())
	})

	t.Run("a play takes the pile and passes the turn on", func(t *testing.T) {
		game := newGame(t)

		outcome, err := game.AdvanceTurn(NewCombo(deck.StartingCard))
		require.NoError(t, err)

		assert.Equal(t, Played, outcome.Kind)
		assert.Equal(t, 0, outcome.Player)
		assert.Equal(t, 1, outcome.NextTurn)
		assert.True(t, game.Pile().Equal(NewCombo(deck.StartingCard)))
		assert.False(t, game.FirstPlay())
		seat, ok := game.LastPlayer()
		assert.True(t, ok)
		assert.Equal(t, 0, seat)
		assert.Equal(t, 12, len(game.Hand(0)))
		assert.Equal(t, []deck.Card{deck.StartingCard}, game.Played())
		require.NoError(t, game.CheckInvariants())
	})

	t.Run("three passes hand control back to the last player", func(t *testing.T) {
		game := newGame(t)
		_, err := game.AdvanceTurn(NewCombo(deck.StartingCard))
		require.NoError(t, err)

		for i := 1; i <= 2; i++ {
			outcome, err := game.AdvanceTurn(PassMove)
			require.NoError(t, err)
			assert.Equal(t, Passed, outcome.Kind)
			assert.Equal(t, i, game.PassCount())
			assert.Equal(t, i+1, game.CurrentTurn())
		}

		outcome, err := game.AdvanceTurn(PassMove)
		require.NoError(t, err)

		assert.Equal(t, ControlReset, outcome.Kind)
		assert.Equal(t, 0, game.CurrentTurn())
		assert.True(t, game.Pile().IsPass())
		assert.Equal(t, 0, game.PassCount())
		assert.Equal(t, 12, countShapes(game.LegalMoves())[Single])
	})

	t.Run("a play resets the pass count", func(t *testing.T) {
		game := newGame(t)
		_, err := game.AdvanceTurn(NewCombo(deck.StartingCard))
		require.NoError(t, err)
		_, err = game.AdvanceTurn(PassMove)
		require.NoError(t, err)
		assert.Equal(t, 1, game.PassCount())

		_, err = game.AdvanceTurn(NewCombo(mc(deck.Five, deck.Hearts)))
		require.NoError(t, err)
		assert.Equal(t, 0, game.PassCount())
		seat, _ := game.LastPlayer()
		assert.Equal(t, 2, seat)
	})

	t.Run("passes before anyone plays cycle the turn", func(t *testing.T) {
		game := newGame(t)

		// the holder passes, the others can only pass
		for i := 0; i < 3; i++ {
			_, err := game.AdvanceTurn(PassMove)
			require.NoError(t, err)
			assert.Equal(t, []Combo{PassMove}, game.LegalMoves())
		}

		assert.Equal(t, 0, game.PassCount())
		assert.Equal(t, 3, game.CurrentTurn())
		assert.True(t, game.FirstPlay())

		_, err := game.AdvanceTurn(PassMove)
		require.NoError(t, err)
		assert.Equal(t, 0, game.CurrentTurn())
		assert.Greater(t, len(game.LegalMoves()), 1)
	})

	t.Run("the match ends when a hand empties", func(t *testing.T) {
		game := newGame(t)

		// seat 0 holds every Diamond and opens with the straight flush
		// 3-7, then leads its remaining cards one at a time.
		_, err := game.AdvanceTurn(NewCombo(game.Hand(0)[:5]...))
		require.NoError(t, err)
		for !game.IsOver() {
			if game.CurrentTurn() == 0 {
				_, err = game.AdvanceTurn(firstNonPass(game.LegalMoves()))
			} else {
				_, err = game.AdvanceTurn(PassMove)
			}
			require.NoError(t, err)
			require.NoError(t, game.CheckInvariants())
		}

		seat, ok := game.Winner()
		assert.True(t, ok)
		assert.Equal(t, 0, seat)
		assert.Empty(t, game.LegalMoves())

		_, err = game.AdvanceTurn(PassMove)
		assert.ErrorIs(t, err, ErrGameOver)
		assert.True(t, game.History()[len(game.History())-1].GameOver)
	})
}

func TestGameTerminates(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		game, err := New(Opts{Seed: seed})
		require.NoError(t, err)

		turns := 0
		for !game.IsOver() {
			moves := game.LegalMoves()
			require.NotEmpty(t, moves)

			before := game.HandSizes()
			seat := game.CurrentTurn()
			move := firstNonPass(moves)

			_, err := game.AdvanceTurn(move)
			require.NoError(t, err)
			require.NoError(t, game.CheckInvariants())

			after := game.HandSizes()
			assert.Equal(t, before[seat]-len(move), after[seat])
			for other := range after {
				if other != seat {
					assert.Equal(t, before[other], after[other])
				}
			}

			turns++
			require.Less(t, turns, deck.Size*numPlayers, "seed %d did not finish", seed)
		}

		assert.LessOrEqual(t, len(game.Played()), deck.Size)
		_, ok := game.Winner()
		assert.True(t, ok)
	}
}
