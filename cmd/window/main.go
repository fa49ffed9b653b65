package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/tomz197/asteroides/internal/config"
	"github.com/tomz197/asteroides/internal/game"
	"github.com/tomz197/asteroides/internal/window"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatal("config", "err", err)
	}

	logger := settings.NewLogger(os.Stderr, "window")
	session := game.New(game.Options{
		Rand:         game.NewRand(settings.Seed),
		Logger:       logger,
		RespawnGrace: settings.RespawnGrace,
	})

	if err := window.Run(session, logger); err != nil {
		logger.Fatal("window stopped", "err", err)
	}
}
