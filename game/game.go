package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/minaorangina/daidi/deck"
)

var (
	ErrSetup          = errors.New("invalid game setup")
	ErrTooFewPlayers  = errors.New("exactly 4 players required, got fewer")
	ErrTooManyPlayers = errors.New("exactly 4 players required, got more")
	ErrUnequalHands   = errors.New("hands must be the same size")
	ErrInvalidMove    = errors.New("invalid move")
	ErrGameOver       = errors.New("game is already over")

	ErrInvalidGameState = errors.New("invalid game state")
)

const (
	numPlayers  = 4
	handSize    = deck.Size / numPlayers
	maxPasses   = numPlayers - 1
	noPlayer    = -1
	allCardsKey = 1<<deck.Size - 1
)

// Game is a single match between four players. All match state lives here.
type Game struct {
	players     [numPlayers]*Player
	currentTurn int
	currentPile Combo
	lastPlayer  int
	passCount   int
	firstPlay   bool
	gameOver    bool

	played  []deck.Card
	history []TurnOutcome
}

// Opts configures New. The zero value shuffles a fresh deck with a
// time-based seed.
type Opts struct {
	// Seed makes the deal reproducible when non-zero.
	Seed int64
	// Rand overrides Seed.
	Rand *rand.Rand
	// Deck is dealt as given, after shuffling. It must hold all 52 cards.
	Deck deck.Deck
}

// New shuffles a deck, deals four 13-card hands and seats the holder of
// the starting card first.
func New(opts Opts) (*Game, error) {
	r := opts.Rand
	if r == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		r = rand.New(rand.NewSource(seed))
	}

	d := opts.Deck
	if d == nil {
		d = deck.New()
	} else {
		d = append(deck.Deck{}, d...)
	}

	if err := d.ShuffleWith(r); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSetup, err)
	}

	hands := make([][]deck.Card, 0, numPlayers)
	for i := 0; i < numPlayers; i++ {
		hands = append(hands, d.Deal(handSize))
	}

	return NewFromHands(hands)
}

// NewFromHands starts a match from hands that are already dealt. The
// hands must be four equal-sized, disjoint sets covering the whole deck.
func NewFromHands(hands [][]deck.Card) (*Game, error) {
	if len(hands) < numPlayers {
		return nil, fmt.Errorf("%w: %w", ErrSetup, ErrTooFewPlayers)
	}
	if len(hands) > numPlayers {
		return nil, fmt.Errorf("%w: %w", ErrSetup, ErrTooManyPlayers)
	}

	all := deck.Deck{}
	for i, h := range hands {
		if len(h) != len(hands[0]) {
			return nil, fmt.Errorf("%w: %w: player %d has %d cards, player 0 has %d",
				ErrSetup, ErrUnequalHands, i, len(h), len(hands[0]))
		}
		all = append(all, h...)
	}
	if err := all.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSetup, err)
	}

	g := &Game{
		currentPile: PassMove,
		lastPlayer:  noPlayer,
		firstPlay:   true,
		played:      []deck.Card{},
		history:     []TurnOutcome{},
	}
	for i, h := range hands {
		g.players[i] = NewPlayer(h)
	}
	g.currentTurn = g.startingPlayer()

	return g, nil
}

// startingPlayer returns the seat holding the starting card. A valid deal
// always has one; seat 0 is the fallback.
func (g *Game) startingPlayer() int {
	for i, p := range g.players {
		if p.Has(deck.StartingCard) {
			return i
		}
	}
	return 0
}

// LegalMoves returns the moves available to the current player.
func (g *Game) LegalMoves() []Combo {
	if g.gameOver {
		return []Combo{}
	}
	p := g.players[g.currentTurn]
	if g.firstPlay {
		return p.LegalFirstMoves()
	}
	return p.LegalMoves(g.currentPile)
}

// AdvanceTurn resolves the current player's turn with move, which must be
// one of LegalMoves. An illegal move returns ErrInvalidMove and leaves
// the game untouched.
func (g *Game) AdvanceTurn(move Combo) (TurnOutcome, error) {
	if g.gameOver {
		return TurnOutcome{}, ErrGameOver
	}

	seat := g.currentTurn
	p := g.players[seat]

	if move.IsPass() {
		return g.pass(seat), nil
	}

	var err error
	if g.firstPlay {
		err = p.ApplyFirstMove(move)
	} else {
		err = p.ApplyMove(g.currentPile, move)
	}
	if err != nil {
		return TurnOutcome{}, fmt.Errorf("player %d: %w", seat, err)
	}

	played := NewCombo(move...)
	g.currentPile = played
	g.lastPlayer = seat
	g.passCount = 0
	g.firstPlay = false
	g.played = append(g.played, played...)
	g.turn()

	return g.record(TurnOutcome{Player: seat, Move: played, Kind: Played}), nil
}

func (g *Game) pass(seat int) TurnOutcome {
	outcome := TurnOutcome{Player: seat, Move: PassMove, Kind: Passed}

	g.passCount++
	if g.passCount >= maxPasses {
		g.resetControl()
		outcome.Kind = ControlReset
	} else {
		g.turn()
	}

	return g.record(outcome)
}

// resetControl hands the open table back to the last player to play. With
// no such player the turn simply moves on.
func (g *Game) resetControl() {
	if g.lastPlayer != noPlayer {
		g.currentTurn = g.lastPlayer
		g.currentPile = PassMove
	} else {
		g.turn()
	}
	g.passCount = 0
}

// turn moves play to the next seat.
func (g *Game) turn() {
	g.currentTurn = (g.currentTurn + 1) % numPlayers
}

func (g *Game) record(o TurnOutcome) TurnOutcome {
	g.gameOver = g.anyHandEmpty()
	o.NextTurn = g.currentTurn
	o.GameOver = g.gameOver
	g.history = append(g.history, o)
	return o
}

// CurrentTurn is the seat (0..3) due to move.
func (g *Game) CurrentTurn() int {
	return g.currentTurn
}

// Pile returns the combo to beat. It is empty when the table is open.
func (g *Game) Pile() Combo {
	return NewCombo(g.currentPile...)
}

// LastPlayer is the seat of the last non-pass play, if any.
func (g *Game) LastPlayer() (int, bool) {
	return g.lastPlayer, g.lastPlayer != noPlayer
}

// PassCount is the number of consecutive passes since the last play.
func (g *Game) PassCount() int {
	return g.passCount
}

// FirstPlay reports whether the opening move is still to be made.
func (g *Game) FirstPlay() bool {
	return g.firstPlay
}

// IsOver reports whether some player has emptied their hand.
func (g *Game) IsOver() bool {
	return g.gameOver
}

// Winner returns the seat whose hand is empty.
func (g *Game) Winner() (int, bool) {
	for i, p := range g.players {
		if p.Len() == 0 {
			return i, true
		}
	}
	return noPlayer, false
}

// Hand returns a copy of seat's cards.
func (g *Game) Hand(seat int) []deck.Card {
	return g.players[seat].Hand()
}

// HandSizes returns the number of cards each seat holds.
func (g *Game) HandSizes() [numPlayers]int {
	var sizes [numPlayers]int
	for i, p := range g.players {
		sizes[i] = p.Len()
	}
	return sizes
}

// Played returns every card played so far, in play order.
func (g *Game) Played() []deck.Card {
	return append([]deck.Card{}, g.played...)
}

// History returns every resolved turn, oldest first.
func (g *Game) History() []TurnOutcome {
	return append([]TurnOutcome{}, g.history...)
}

// CheckInvariants verifies the match bookkeeping: every card is in exactly
// one hand or on the played pile, and turn, pile and pass counters are in
// range.
func (g *Game) CheckInvariants() error {
	var key uint64
	count := len(g.played)
	for _, c := range g.played {
		key |= 1 << uint(c.Index())
	}
	for _, p := range g.players {
		count += p.Len()
		for _, c := range p.hand {
			key |= 1 << uint(c.Index())
		}
	}
	if count != deck.Size || key != allCardsKey {
		return fmt.Errorf("%w: %d cards accounted for", ErrInvalidGameState, count)
	}

	if g.currentTurn < 0 || g.currentTurn >= numPlayers {
		return fmt.Errorf("%w: turn %d", ErrInvalidGameState, g.currentTurn)
	}
	if g.passCount < 0 || g.passCount >= maxPasses {
		return fmt.Errorf("%w: pass count %d", ErrInvalidGameState, g.passCount)
	}
	switch g.currentPile.Shape() {
	case Pass, Single, Pair, Triple, FiveCard:
	default:
		return fmt.Errorf("%w: pile %s", ErrInvalidGameState, g.currentPile)
	}
	if over := g.anyHandEmpty(); over != g.gameOver {
		return fmt.Errorf("%w: game over flag %t, empty hand %t", ErrInvalidGameState, g.gameOver, over)
	}

	return nil
}

func (g *Game) anyHandEmpty() bool {
	_, ok := g.Winner()
	return ok
}
