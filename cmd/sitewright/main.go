// ABOUTME: CLI entrypoint: wires persister, store, theme projection, and the HTTP server.
// ABOUTME: Handles .env loading, flag/env configuration, and graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/brightpath-web/sitewright/projection"
	"github.com/brightpath-web/sitewright/store"
	"github.com/brightpath-web/sitewright/web"
)

var version = "dev"

func main() {
	// Missing .env is fine; explicit env vars still apply.
	_ = godotenv.Load()

	cfg := configFromEnv()

	var showVersion bool
	fs := flag.NewFlagSet("sitewright", flag.ExitOnError)
	fs.StringVar(&cfg.bind, "bind", cfg.bind, "Socket address to listen on")
	fs.StringVar(&cfg.dataDir, "data-dir", cfg.dataDir, "Directory for persisted site state")
	fs.StringVar(&cfg.storeKind, "store", cfg.storeKind, "Persistence backend: file or sqlite")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	_ = fs.Parse(os.Args[1:])

	if showVersion {
		fmt.Printf("sitewright %s\n", version)
		os.Exit(0)
	}

	os.Exit(run(cfg))
}

func run(cfg config) int {
	if err := cfg.validate(); err != nil {
		log.Printf("component=main action=config_invalid err=%v", err)
		return 2
	}

	persister, err := openPersister(cfg)
	if err != nil {
		log.Printf("component=main action=open_persister_failed err=%v", err)
		return 1
	}

	st, err := store.Open(persister)
	if err != nil {
		log.Printf("component=main action=open_store_failed err=%v", err)
		return 1
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Printf("component=main action=close_store_failed err=%v", err)
		}
	}()

	theme := projection.NewThemeHolder(st.Current())
	st.OnApply(theme.Refresh)
	store.SetPersistFailureHook(web.CountPersistFailure)

	srv, err := web.NewServer(st, theme)
	if err != nil {
		log.Printf("component=main action=new_server_failed err=%v", err)
		return 1
	}
	defer srv.Close()

	httpServer := &http.Server{
		Addr:              cfg.bind,
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("component=main action=listen addr=%s store=%s data_dir=%s", cfg.bind, cfg.storeKind, cfg.dataDir)
		errCh <- httpServer.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("component=main action=serve_failed err=%v", err)
			return 1
		}
	case sig := <-sigCh:
		log.Printf("component=main action=shutdown signal=%s", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			log.Printf("component=main action=shutdown_failed err=%v", err)
			return 1
		}
	}

	return 0
}

// openPersister builds the configured persistence backend.
func openPersister(cfg config) (store.Persister, error) {
	switch cfg.storeKind {
	case storeSqlite:
		if err := os.MkdirAll(cfg.dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		return store.OpenSqlite(filepath.Join(cfg.dataDir, "sitewright.db"))
	default:
		return store.NewFilePersister(cfg.dataDir)
	}
}
