// valley-farm-server hosts farms over SSH. Every connection plays its own
// farm, saved under the SSH user name. Build:
//
//	go build -o valley-farm-server ./cmd/server
//
// Usage:
//
//	./valley-farm-server [--config valley.yaml]
//
// Connect with:
//
//	ssh -p 2222 farmer@localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"

	"valley-farm/internal/config"
	"valley-farm/internal/game"
	"valley-farm/internal/gamemap"
	"valley-farm/internal/logger"
	"valley-farm/internal/save"
	internalssh "valley-farm/internal/ssh"
)

var version = "dev"

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	log := logger.New(cfg.Logger(version), os.Stderr)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, closeSaves, err := save.Open(ctx, cfg.SaveBackend, cfg.SaveDir)
	if err != nil {
		return err
	}
	defer closeSaves()
	logFarms(backend, log)
	dataDir := cfg.SaveDir
	if dataDir == "" {
		if dataDir, err = save.DefaultDir(); err != nil {
			return err
		}
	}
	m, err := game.LoadMap(cfg.MapFile)
	if err != nil {
		return err
	}
	signer, err := loadOrCreateHostKey(cfg.HostKey, log)
	if err != nil {
		return err
	}

	h := &host{cfg: cfg, backend: backend, dataDir: dataDir, farm: m}
	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", cfg.SSHPort),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication, as suits a private home server.
		HostSigners: []gossh.Signer{signer},
	}

	var metricsSrv *http.Server
	if cfg.MetricsAddr != "" {
		metricsSrv = &http.Server{Addr: cfg.MetricsAddr, Handler: newRouter(), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			log.Info("metrics listening", "addr", cfg.MetricsAddr)
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server failed", "error", err)
			}
		}()
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("ssh listening", "port", cfg.SSHPort,
			"hint", fmt.Sprintf("ssh -p %d -o StrictHostKeyChecking=no localhost", cfg.SSHPort))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, gossh.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if metricsSrv != nil {
		_ = metricsSrv.Shutdown(shutdownCtx)
	}
	return srv.Shutdown(shutdownCtx)
}

// host starts one game session per SSH connection.
type host struct {
	cfg     *config.Config
	backend save.Backend
	dataDir string
	farm    *gamemap.GameMap // read-only, shared by every session
}

// handleSession is the gliderlabs SSH handler for one connection.
// It blocks for the duration of the connection so the SSH session stays open.
func (h *host) handleSession(s gossh.Session) {
	name := sanitizeName(s.User())
	ctx := logger.WithSessionID(s.Context(), logger.NewSessionID())
	log := logger.FromContext(ctx).With("user", name)

	screen, err := internalssh.NewScreen(s)
	if err != nil {
		fmt.Fprintf(s, "This game needs a terminal (%v). Connect with: ssh -t -p %d <host>\n", err, h.cfg.SSHPort)
		return
	}

	key := saveKey(s.User())
	sess, err := game.NewSession(game.Options{
		Screen:     screen,
		Logger:     log,
		Saves:      save.NewManager(h.backend, log).WithKey(key),
		Rand:       game.NewRand(h.cfg.Seed),
		Map:        h.farm,
		Journal:    game.NewJournal(filepath.Join(h.dataDir, key)),
		PlayerName: name,
		FrameRate:  h.cfg.FrameRate,
		KeyHold:    h.cfg.KeyHold,
		Autosave:   h.cfg.AutosaveInterval,
	})
	if err != nil {
		screen.Fini()
		log.Error("session setup failed", "error", err)
		return
	}
	log.Info("player connected", "save_key", key)
	if err := sess.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Warn("session ended with error", "error", err)
	}
	log.Info("player disconnected")
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, log *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	log.Info("generating ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "valley-farm server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
			log.Warn("host key not saved", "error", err)
		}
	}
	return signer, nil
}

// logFarms reports how many farms the backend holds, when it can list
// them. It returns -1 otherwise.
func logFarms(b save.Backend, log *slog.Logger) int {
	db, ok := b.(*save.SQLiteBackend)
	if !ok {
		return -1
	}
	rows, err := db.List()
	if err != nil {
		log.Warn("could not list farms", "error", err)
		return -1
	}
	if len(rows) > 0 {
		log.Info("farms on record", "count", len(rows), "latest", rows[0].Key, "updated_at", rows[0].UpdatedAt)
	} else {
		log.Info("no farms on record yet")
	}
	return len(rows)
}
