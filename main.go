// valley-farm runs the farm in the local terminal.
//
//	go build -o valley-farm .
//	./valley-farm [--config valley.yaml]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"valley-farm/internal/config"
	"valley-farm/internal/game"
	"valley-farm/internal/logger"
	"valley-farm/internal/save"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// defaultConfigFile is read when present and no --config is given.
const defaultConfigFile = "valley.yaml"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "YAML config file (default "+defaultConfigFile+" when present)")
	flag.Parse()

	path := *configPath
	if path == "" && config.Exists(defaultConfigFile) {
		path = defaultConfigFile
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	// The screen owns stdout, so logs go to a file.
	logPath := cfg.LogFile
	if logPath == "" {
		if logPath, err = logger.DefaultFile(); err != nil {
			return fmt.Errorf("log file: %w", err)
		}
	}
	log, logFile, err := logger.OpenFile(cfg.Logger(version), logPath)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	slog.SetDefault(log)
	ctx = logger.WithSessionID(ctx, logger.NewSessionID())
	log = logger.FromContext(ctx)

	backend, closeSaves, err := save.Open(ctx, cfg.SaveBackend, cfg.SaveDir)
	if err != nil {
		return err
	}
	defer closeSaves()
	saves := save.NewManager(backend, log)
	if cfg.SaveSlot >= 0 {
		saves = saves.WithKey(save.SlotKey(save.DefaultKey, cfg.SaveSlot))
	}

	journal, err := journalFor(cfg.SaveDir)
	if err != nil {
		return err
	}
	m, err := game.LoadMap(cfg.MapFile)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	sess, err := game.NewSession(game.Options{
		Screen:     screen,
		Logger:     log,
		Saves:      saves,
		Rand:       game.NewRand(cfg.Seed),
		Map:        m,
		Journal:    journal,
		PlayerName: cfg.PlayerName,
		FrameRate:  cfg.FrameRate,
		KeyHold:    cfg.KeyHold,
		Autosave:   cfg.AutosaveInterval,
	})
	if err != nil {
		screen.Fini()
		return err
	}
	log.Info("session started", "save_key", saves.Key(), "backend", cfg.SaveBackend)
	if err := sess.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("session ended")
	return nil
}

func journalFor(dir string) (*game.Journal, error) {
	if dir != "" {
		return game.NewJournal(dir), nil
	}
	return game.DefaultJournal()
}
