package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/minaorangina/daidi/game"
	"go.uber.org/zap"
)

var (
	ErrNilGame   = errors.New("game is nil")
	ErrTurnLimit = errors.New("turn limit reached before the game ended")
)

const defaultMaxTurns = 1000

// Strategy picks a move for seat from moves, which is never empty.
type Strategy interface {
	Choose(seat int, g *game.Game, moves []game.Combo) game.Combo
}

// StrategyFunc adapts a function to Strategy.
type StrategyFunc func(seat int, g *game.Game, moves []game.Combo) game.Combo

func (f StrategyFunc) Choose(seat int, g *game.Game, moves []game.Combo) game.Combo {
	return f(seat, g, moves)
}

// FirstMove plays the first move that is not a pass. It is a placeholder
// for a real opponent.
var FirstMove = StrategyFunc(func(_ int, _ *game.Game, moves []game.Combo) game.Combo {
	for _, m := range moves {
		if !m.IsPass() {
			return m
		}
	}
	return game.PassMove
})

// GameEngineOpts configures a GameEngine. Only Game is required.
type GameEngineOpts struct {
	GameID string
	Game   *game.Game
	// Strategies is indexed by seat. Missing seats use FirstMove.
	Strategies []Strategy
	Logger     *zap.Logger
	// Out receives a text account of the match. Nil discards it.
	Out      io.Writer
	NoColor  bool
	MaxTurns int
}

// GameEngine drives a match turn by turn, asking each seat's strategy for
// a move.
type GameEngine struct {
	gameID     string
	game       *game.Game
	strategies []Strategy
	logger     *zap.Logger
	display    *Display
	maxTurns   int
	turns      int
}

// NewGameEngine constructs a GameEngine
func NewGameEngine(opts GameEngineOpts) (*GameEngine, error) {
	if opts.Game == nil {
		return nil, ErrNilGame
	}

	strategies := make([]Strategy, 4)
	for i := range strategies {
		strategies[i] = FirstMove
		if i < len(opts.Strategies) && opts.Strategies[i] != nil {
			strategies[i] = opts.Strategies[i]
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	maxTurns := opts.MaxTurns
	if maxTurns <= 0 {
		maxTurns = defaultMaxTurns
	}

	return &GameEngine{
		gameID:     opts.GameID,
		game:       opts.Game,
		strategies: strategies,
		logger:     logger.With(zap.String("game_id", opts.GameID)),
		display:    NewDisplay(out, opts.NoColor),
		maxTurns:   maxTurns,
	}, nil
}

func (ge *GameEngine) ID() string {
	return ge.gameID
}

func (ge *GameEngine) Game() *game.Game {
	return ge.game
}

// Turns is the number of turns resolved so far.
func (ge *GameEngine) Turns() int {
	return ge.turns
}

// Step resolves one turn. A strategy that picks an illegal move passes
// instead.
func (ge *GameEngine) Step() (game.TurnOutcome, error) {
	g := ge.game
	if g.IsOver() {
		return game.TurnOutcome{}, game.ErrGameOver
	}

	seat := g.CurrentTurn()
	ge.display.State(g)

	moves := g.LegalMoves()
	move := ge.strategies[seat].Choose(seat, g, moves)

	outcome, err := g.AdvanceTurn(move)
	if errors.Is(err, game.ErrInvalidMove) {
		ge.logger.Warn("strategy chose an illegal move, passing",
			zap.Int("player", seat),
			zap.Stringer("move", move),
			zap.Error(err))
		outcome, err = g.AdvanceTurn(game.PassMove)
	}
	if err != nil {
		return game.TurnOutcome{}, err
	}

	ge.turns++
	ge.display.Turn(outcome)
	ge.logger.Debug("turn",
		zap.Int("player", outcome.Player),
		zap.Stringer("move", outcome.Move),
		zap.Stringer("kind", outcome.Kind),
		zap.Int("next", outcome.NextTurn))

	if outcome.Kind == game.ControlReset {
		ge.logger.Info("control reset", zap.Int("player", outcome.NextTurn))
	}

	return outcome, nil
}

// Run plays the match to the end and returns the winning seat.
func (ge *GameEngine) Run() (int, error) {
	ge.logger.Info("game started", zap.Int("first_player", ge.game.CurrentTurn()))

	for !ge.game.IsOver() {
		if ge.turns >= ge.maxTurns {
			return 0, fmt.Errorf("%w: %d turns", ErrTurnLimit, ge.turns)
		}
		if _, err := ge.Step(); err != nil {
			return 0, err
		}
	}

	winner, _ := ge.game.Winner()
	ge.display.GameOver(winner)
	ge.logger.Info("game over",
		zap.Int("winner", winner),
		zap.Int("turns", ge.turns),
		zap.Int("cards_played", len(ge.game.Played())))

	return winner, nil
}
