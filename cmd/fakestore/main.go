package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Tiny dev-only stand-in for the remote synchronized member store.
//
// This is NOT the real store: no sync, no push, no auth. It exists so the
// client can be exercised locally against the store's REST shape, a point-get
// of one key under a root collection that answers "null" for absent keys.

func main() {
	addr := flag.String("addr", ":9090", "listen address")
	seedPath := flag.String("seed", "seed.json", "JSON file mapping member ids to records")
	collection := flag.String("collection", "Customers", "root collection name")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	records, err := loadSeed(*seedPath)
	if err != nil {
		slog.Error("loading seed", "path", *seedPath, "error", err)
		os.Exit(1)
	}
	slog.Info("seed loaded", "path", *seedPath, "records", len(records))

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get(fmt.Sprintf("/%s/{key}", *collection), func(w http.ResponseWriter, req *http.Request) {
		id := strings.TrimSuffix(chi.URLParam(req, "key"), ".json")
		w.Header().Set("Content-Type", "application/json")
		body, ok := records[id]
		if !ok {
			// The real store answers null for absent keys, not 404.
			_, _ = w.Write([]byte("null"))
			return
		}
		_, _ = w.Write(body)
	})

	srv := &http.Server{
		Addr:         *addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("fakestore starting", "addr", *addr, "collection", *collection)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-sigCh
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func loadSeed(path string) (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records map[string]json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing seed: %w", err)
	}
	return records, nil
}
