package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"turn-snake/audio/output"
	"turn-snake/config"
	"turn-snake/game"
	"turn-snake/ui"
	"turn-snake/ui/terminal"
	"turn-snake/ui/window"

	"golang.org/x/exp/rand"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if logFile := config.SetupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g := game.NewGame(rand.New(rand.NewSource(seed)))
	log.Printf("game %s: starting on %s backend, seed %d", g.UUID, cfg.Backend, seed)

	backend, err := openBackend(cfg.Backend)
	if err != nil {
		log.Printf("game %s: %v", g.UUID, err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer backend.Close()

	player := output.NewPlayer(cfg.Mute)
	defer player.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := ui.NewLoop(backend, g, player).Run(ctx); err != nil {
		log.Printf("game %s: %v", g.UUID, err)
	}
}

func openBackend(name string) (ui.Backend, error) {
	if name == config.BackendTerminal {
		return terminal.New()
	}
	return window.NewRenderer()
}
