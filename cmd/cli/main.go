package main

import (
	"log"

	"github.com/fatih/color"
	"github.com/minaorangina/daidi/config"
	"github.com/minaorangina/daidi/engine"
	"github.com/minaorangina/daidi/game"
	"github.com/minaorangina/daidi/store"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := cfg.Logger()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	games := store.NewInMemoryGameStore()
	id, g, err := games.CreateGame(game.Opts{Seed: cfg.Seed})
	if err != nil {
		logger.Fatal("could not deal a new game", zap.Error(err))
	}

	ge, err := engine.NewGameEngine(engine.GameEngineOpts{
		GameID:   id,
		Game:     g,
		Logger:   logger,
		Out:      color.Output,
		NoColor:  cfg.NoColor,
		MaxTurns: cfg.MaxTurns,
	})
	if err != nil {
		logger.Fatal("could not start game", zap.Error(err))
	}

	if _, err := ge.Run(); err != nil {
		logger.Fatal("game did not finish", zap.Error(err))
	}

	if err := games.RemoveGame(id); err != nil {
		logger.Warn("could not remove finished game", zap.Error(err))
	}
}
