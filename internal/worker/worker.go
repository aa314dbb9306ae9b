// Package worker runs the full aggregation cycle: fetch from every
// provider, pipe the combined batch through the pipeline, upsert survivors,
// and report counters.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"chefwire/aggregator-service/internal/enrich"
	"chefwire/aggregator-service/internal/model"
	"chefwire/aggregator-service/internal/pipeline"
	"chefwire/aggregator-service/internal/provider"
	"chefwire/aggregator-service/internal/rules"
	"chefwire/aggregator-service/internal/store"
)

// ErrIdentityIndexUnavailable marks a run aborted because the existing
// identities could not be loaded. Proceeding without the index would
// guarantee mass duplicate insertion, so the run stops unless the caller
// set AllowMissingIndex explicitly.
var ErrIdentityIndexUnavailable = errors.New("identity index unavailable")

// statsChannel is the Redis pub/sub channel the web viewer listens on for
// run summaries.
const statsChannel = "chefwire:run_stats"

// Notifier receives the end-of-run summary. Implemented by internal/notify.
type Notifier interface {
	NotifyRun(ctx context.Context, stats model.RunStats) error
}

// JobStore is the slice of the persistence layer the run loop needs.
// Implemented by internal/store.
type JobStore interface {
	LoadExistingIdentities(ctx context.Context) ([]string, error)
	UpsertJob(ctx context.Context, job *model.CanonicalJob) (store.UpsertResult, error)
}

// Worker holds the collaborators for one aggregation cycle.
type Worker struct {
	store     JobStore
	rdb       *redis.Client
	rules     *rules.Source
	providers []provider.Provider
	lookup    enrich.Lookup
	notifier  Notifier
	pairs     []model.SearchPair

	// EnrichDelay and EnrichTimeout override the pipeline defaults when
	// non-zero.
	EnrichDelay   time.Duration
	EnrichTimeout time.Duration

	// AllowMissingIndex lets a run proceed with an empty identity index
	// after a load failure. Off by default; turning it on is an explicit
	// operator acknowledgment that duplicates may be inserted.
	AllowMissingIndex bool
}

// New constructs a Worker. notifier and lookup may be nil.
func New(st JobStore, rdb *redis.Client, src *rules.Source, providers []provider.Provider, lookup enrich.Lookup, notifier Notifier, pairs []model.SearchPair) *Worker {
	return &Worker{
		store:     st,
		rdb:       rdb,
		rules:     src,
		providers: providers,
		lookup:    lookup,
		notifier:  notifier,
		pairs:     pairs,
	}
}

// Run executes one aggregation cycle and returns its stats. Per-provider
// fetch errors are logged and skipped; only an unavailable identity index
// aborts the run.
func (w *Worker) Run(ctx context.Context) (model.RunStats, error) {
	log.Printf("[worker] Starting run — %d provider(s), %d search pair(s)", len(w.providers), len(w.pairs))

	existing, err := w.store.LoadExistingIdentities(ctx)
	if err != nil {
		if !w.AllowMissingIndex {
			return model.RunStats{}, fmt.Errorf("%w: %v", ErrIdentityIndexUnavailable, err)
		}
		log.Printf("[worker] Identity index load failed, proceeding without dedup against store (AllowMissingIndex): %v", err)
		existing = nil
	}

	items := w.fetchAll(ctx)

	p := pipeline.New(pipeline.Config{
		Rules:         w.rules.Current(),
		Lookup:        w.lookup,
		EnrichDelay:   w.EnrichDelay,
		EnrichTimeout: w.EnrichTimeout,
	}, existing)

	res := p.Run(ctx, items)
	w.persist(ctx, &res)

	log.Printf("[worker] Run %s done — fetched=%d emitted=%d inserted=%d updated=%d dupes(batch=%d store=%d) errors=%d",
		res.Stats.RunID, res.Stats.TotalFetched, res.Stats.Emitted, res.Stats.Inserted,
		res.Stats.Updated, res.Stats.DuplicatesWithinBatch, res.Stats.DuplicatesAgainstStore,
		res.Stats.ProcessingErrors)

	w.publishStats(ctx, res.Stats)
	if w.notifier != nil {
		if err := w.notifier.NotifyRun(ctx, res.Stats); err != nil {
			log.Printf("[worker] Notify error: %v", err)
		}
	}
	return res.Stats, nil
}

// fetchAll drains every provider for every search pair. The combined batch
// keeps provider order, then pair order, so pipeline output is stable for a
// given fetch.
func (w *Worker) fetchAll(ctx context.Context) []pipeline.Item {
	var items []pipeline.Item
	for _, pr := range w.providers {
		for _, pair := range w.pairs {
			records, err := provider.SearchAll(ctx, pr, pair.Query, pair.Location)
			if err != nil {
				log.Printf("[worker] %s search (%q, %q) error: %v — continuing", pr.Name(), pair.Query, pair.Location, err)
			}
			for _, raw := range records {
				items = append(items, pipeline.Item{Raw: raw, Kind: pr.Kind()})
			}
		}
	}
	return items
}

// persist upserts every clean emitted job and folds the outcome into the
// stats. Jobs flagged existing_duplicate stay out of the store.
func (w *Worker) persist(ctx context.Context, res *pipeline.Result) {
	for i := range res.Emitted {
		job := &res.Emitted[i]
		if job.Excluded() {
			continue
		}
		out, err := w.store.UpsertJob(ctx, job)
		if err != nil {
			log.Printf("[worker] Upsert error for %q / %q: %v", job.Title, job.Company, err)
			continue
		}
		if out.WasNew {
			res.Stats.Inserted++
		} else {
			res.Stats.Updated++
		}
	}
}

// publishStats pushes the run summary onto Redis for the viewer. Loss here
// is harmless; the same numbers are already in the log.
func (w *Worker) publishStats(ctx context.Context, stats model.RunStats) {
	if w.rdb == nil {
		return
	}
	payload, err := json.Marshal(stats)
	if err != nil {
		log.Printf("[worker] Stats marshal error: %v", err)
		return
	}
	if err := w.rdb.Publish(ctx, statsChannel, payload).Err(); err != nil {
		log.Printf("[worker] Stats publish error: %v", err)
	}
}
