// chefwire-aggregator-service
//
// Aggregates culinary and hospitality job listings from several provider
// APIs, runs them through the normalize → classify → dedup → enrich
// pipeline, and upserts survivors into PostgreSQL for the web viewer.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chefwire/aggregator-service/internal/config"
	"chefwire/aggregator-service/internal/db"
	"chefwire/aggregator-service/internal/enrich"
	"chefwire/aggregator-service/internal/notify"
	"chefwire/aggregator-service/internal/provider"
	"chefwire/aggregator-service/internal/rules"
	"chefwire/aggregator-service/internal/scheduler"
	"chefwire/aggregator-service/internal/store"
	"chefwire/aggregator-service/internal/worker"
)

const version = "1.0.0"

func main() {
	// ── Config ──────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[aggregator] Config error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── PostgreSQL ───────────────────────────────────────────────────────────
	log.Println("[aggregator] Connecting to PostgreSQL…")
	pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[aggregator] PostgreSQL: %v", err)
	}
	defer pool.Close()
	log.Println("[aggregator] PostgreSQL connected ✓")

	// ── Redis ────────────────────────────────────────────────────────────────
	log.Println("[aggregator] Connecting to Redis…")
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatalf("[aggregator] Redis: %v", err)
	}
	defer rdb.Close()
	log.Println("[aggregator] Redis connected ✓")

	st := store.New(pool)

	// ── Exclusion rules ──────────────────────────────────────────────────────
	base, err := rules.LoadFile(cfg.RulesFile)
	if err != nil {
		log.Fatalf("[aggregator] Rules: %v", err)
	}
	ruleSource := rules.NewSource(base, st, time.Duration(cfg.RulesRefreshMinutes)*time.Minute)
	if err := ruleSource.Start(ctx); err != nil {
		log.Printf("[aggregator] Rules refresh failed, running on static lists: %v", err)
	}
	defer ruleSource.Stop()

	// ── Providers ────────────────────────────────────────────────────────────
	providers := []provider.Provider{
		provider.NewAdzuna(cfg.AdzunaAppID, cfg.AdzunaAppKey, cfg.AdzunaCountry),
		provider.NewJSearch(cfg.JSearchAPIKey),
		provider.NewWebSearch(cfg.SearchAPIKey),
	}

	// ── Enrichment ───────────────────────────────────────────────────────────
	var lookup enrich.Lookup = enrich.NewCachedLookup(
		enrich.NewWebSearchLookup(cfg.SearchAPIKey, "", ruleSource),
		rdb,
		30*24*time.Hour,
	)

	// ── Notifier ─────────────────────────────────────────────────────────────
	var notifier worker.Notifier
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		notifier, err = notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("[aggregator] Telegram: %v", err)
		}
		log.Println("[aggregator] Telegram notifier enabled")
	}

	// ── Worker + scheduler ───────────────────────────────────────────────────
	w := worker.New(st, rdb, ruleSource, providers, lookup, notifier, cfg.SearchPairs)
	w.AllowMissingIndex = cfg.AllowMissingIndex

	sched := scheduler.New(w, cfg.ScrapeIntervalHours)
	if err := sched.Start(ctx); err != nil {
		log.Fatalf("[aggregator] Scheduler: %v", err)
	}
	defer sched.Stop()

	// ── HTTP server ──────────────────────────────────────────────────────────
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("[aggregator] v%s listening on :%s", version, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[aggregator] HTTP server error: %v", err)
		}
	}()

	// ── Graceful shutdown ────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[aggregator] Shutting down…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[aggregator] Shutdown error: %v", err)
	}
	log.Println("[aggregator] Stopped.")
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "aggregator-service",
		"version": version,
	})
}
