package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/quickly-nps/auth"
	"github.com/danielhkuo/quickly-nps/cliparse"
	"github.com/danielhkuo/quickly-nps/db"
	"github.com/danielhkuo/quickly-nps/metrics"
	"github.com/danielhkuo/quickly-nps/middleware"
	"github.com/danielhkuo/quickly-nps/router"
	"github.com/danielhkuo/quickly-nps/store"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slot, closeSlot, err := openSlot(cfg)
	if err != nil {
		slog.Error("store setup failed", "type", cfg.StoreType, "error", err)
		os.Exit(1)
	}
	defer closeSlot()
	slog.Info("Response store ready", "type", cfg.StoreType, "key", cfg.StorageKey)

	st := store.New(slot, cfg.StorageKey)

	if cfg.AdminKeySalt != "" {
		slog.Info("Admin key required for export and clear",
			"admin_key", auth.GenerateAdminKey(st.Key(), cfg.AdminKeySalt))
	}

	// Create router
	mux := router.NewRouter(st, cfg, metrics.New(st))

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// openSlot builds the slot backend named by cfg.StoreType
func openSlot(cfg cliparse.Config) (store.Slot, func(), error) {
	noop := func() {}

	switch cfg.StoreType {
	case cliparse.StoreMemory:
		slog.Warn("memory store selected; responses are lost on exit")
		return store.NewMemorySlot(), noop, nil
	case cliparse.StoreFile:
		slot, err := store.NewFileSlot(cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		return slot, noop, nil
	case cliparse.StoreSQLite, cliparse.StorePostgres:
		conn, err := db.Open(cfg.StoreType, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		return store.NewSQLSlot(conn), func() { conn.Close() }, nil
	default:
		return nil, noop, fmt.Errorf("unknown store type %q", cfg.StoreType)
	}
}
