package rules

import (
	"context"
	"log"
	"sync/atomic"
	"time"
)

// CompanyLister loads extra excluded-company names from a backing store.
// Implemented by internal/store.
type CompanyLister interface {
	LoadExcludedCompanies(ctx context.Context) ([]string, error)
}

// Source serves the current RuleSet snapshot and refreshes the store-backed
// portion on a TTL. Reads are lock-free; a refresh builds a complete new
// snapshot and swaps it in one atomic store.
type Source struct {
	base    *RuleSet
	lister  CompanyLister
	ttl     time.Duration
	current atomic.Pointer[RuleSet]
	stop    chan struct{}
}

// NewSource builds a Source over a base RuleSet. lister may be nil, in
// which case the base snapshot is served unchanged forever.
func NewSource(base *RuleSet, lister CompanyLister, ttl time.Duration) *Source {
	s := &Source{
		base:   base,
		lister: lister,
		ttl:    ttl,
		stop:   make(chan struct{}),
	}
	s.current.Store(base)
	return s
}

// Current returns the active snapshot. Never nil.
func (s *Source) Current() *RuleSet { return s.current.Load() }

// Refresh rebuilds the snapshot from base + store rows. A load failure
// keeps the previous snapshot in place; exclusion rules degrade to stale,
// never to empty.
func (s *Source) Refresh(ctx context.Context) error {
	if s.lister == nil {
		return nil
	}

	names, err := s.lister.LoadExcludedCompanies(ctx)
	if err != nil {
		log.Printf("[rules] Refresh failed, keeping previous snapshot: %v", err)
		return err
	}

	s.current.Store(s.base.ExtendCompanies(names))
	log.Printf("[rules] Snapshot refreshed — %d store-sourced excluded companies", len(names))
	return nil
}

// Start refreshes once immediately, then every TTL until Stop or ctx
// cancellation. The initial refresh error is returned so callers can decide
// whether to proceed on static rules alone.
func (s *Source) Start(ctx context.Context) error {
	err := s.Refresh(ctx)

	if s.lister != nil && s.ttl > 0 {
		go func() {
			ticker := time.NewTicker(s.ttl)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					_ = s.Refresh(ctx)
				case <-s.stop:
					return
				case <-ctx.Done():
					return
				}
			}
		}()
	}
	return err
}

// Stop halts the background refresh loop.
func (s *Source) Stop() {
	select {
	case <-s.stop:
	default:
		close(s.stop)
	}
}
