package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/minaorangina/daidi/game"
	uuid "github.com/satori/go.uuid"
)

var (
	ErrUnknownGameID = errors.New("unknown game ID")
	ErrGameExists    = errors.New("game already exists")
	ErrNilGame       = errors.New("game is nil")
)

// NewID generates a match ID
func NewID() string {
	return uuid.NewV4().String()
}

// GameStore keeps the matches running in this process.
type GameStore interface {
	CreateGame(opts game.Opts) (string, *game.Game, error)
	AddGame(gameID string, g *game.Game) error
	FindGame(gameID string) *game.Game
	FindActiveGame(gameID string) *game.Game
	GameIDs() []string
	RemoveGame(gameID string) error
}

// InMemoryGameStore maps game id to game. Nothing outlives the process.
type InMemoryGameStore struct {
	mu    sync.RWMutex
	games map[string]*game.Game
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		games: map[string]*game.Game{},
	}
}

// CreateGame deals a new match and registers it under a fresh ID.
func (s *InMemoryGameStore) CreateGame(opts game.Opts) (string, *game.Game, error) {
	g, err := game.New(opts)
	if err != nil {
		return "", nil, err
	}

	gameID := NewID()
	if err := s.AddGame(gameID, g); err != nil {
		return "", nil, err
	}

	return gameID, g, nil
}

// AddGame registers an existing match.
func (s *InMemoryGameStore) AddGame(gameID string, g *game.Game) error {
	if g == nil {
		return ErrNilGame
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[gameID]; exists {
		return fmt.Errorf("%w: %s", ErrGameExists, gameID)
	}

	s.games[gameID] = g
	return nil
}

func (s *InMemoryGameStore) FindGame(gameID string) *game.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil
	}
	return g
}

// FindActiveGame returns the match only while it is still being played.
func (s *InMemoryGameStore) FindActiveGame(gameID string) *game.Game {
	g := s.FindGame(gameID)
	if g == nil || g.IsOver() {
		return nil
	}
	return g
}

// GameIDs lists registered matches in lexical order.
func (s *InMemoryGameStore) GameIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.games))
	for id := range s.games {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *InMemoryGameStore) RemoveGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[gameID]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownGameID, gameID)
	}
	delete(s.games, gameID)
	return nil
}
