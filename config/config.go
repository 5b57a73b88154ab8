// Package config holds start-up flags and log setup.
package config

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	BackendWindow   = "raylib"
	BackendTerminal = "terminal"

	logDir      = "logs"
	logFileName = "turn-snake.log"
)

type Config struct {
	Backend string
	Seed    uint64
	Debug   bool
	Mute    bool
}

// Parse reads command line flags.
func Parse(args []string) (Config, error) {
	var cfg Config
	fs := flag.NewFlagSet("turn-snake", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Backend, "backend", BackendWindow, "where to play: raylib or terminal")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "food placement seed (0 = time based)")
	fs.BoolVar(&cfg.Debug, "debug", false, "write a log to "+filepath.Join(logDir, logFileName))
	fs.BoolVar(&cfg.Mute, "mute", false, "disable sound")

	if err := fs.Parse(args); err != nil {
		return Config{}, errors.Wrap(err, "parse flags")
	}
	switch cfg.Backend {
	case BackendWindow, BackendTerminal:
	default:
		return Config{}, errors.Errorf("unknown backend %q", cfg.Backend)
	}
	return cfg, nil
}

// SetupLogging sends the standard logger to a file when debug is set and
// discards it otherwise. The returned file, if any, is the caller's to close.
func SetupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
