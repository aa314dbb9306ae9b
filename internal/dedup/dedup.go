// Package dedup suppresses postings the store already knows and repeats
// within a single batch.
package dedup

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"chefwire/aggregator-service/internal/model"
)

// IdentityKey derives the string under which two listings count as the same
// posting, regardless of source: lowercase title and company joined by a
// pipe. Pure and deterministic.
func IdentityKey(title, company string) string {
	return strings.ToLower(strings.TrimSpace(title)) + "|" + strings.ToLower(strings.TrimSpace(company))
}

// JobKey is IdentityKey applied to a canonical job.
func JobKey(job *model.CanonicalJob) string {
	return IdentityKey(job.Title, job.Company)
}

// Deduplicator filters one batch against the existing-identity index and an
// in-batch seen set. The index is a read-only snapshot loaded at run start;
// this component never mutates the backing store.
type Deduplicator struct {
	existing mapset.Set[string]
	seen     mapset.Set[string]
}

// New builds a Deduplicator over the given pre-computed identity keys.
func New(existingKeys []string) *Deduplicator {
	existing := mapset.NewThreadUnsafeSet[string]()
	for _, k := range existingKeys {
		existing.Add(strings.ToLower(k))
	}
	return &Deduplicator{
		existing: existing,
		seen:     mapset.NewThreadUnsafeSet[string](),
	}
}

// Outcome of checking one job against the sets.
type Outcome int

const (
	// Fresh — first sighting of this identity anywhere.
	Fresh Outcome = iota
	// KnownToStore — already persisted; emit flagged for audit, skip
	// enrichment.
	KnownToStore
	// RepeatInBatch — an earlier job in this run carries the same key;
	// drop outright, first-seen wins.
	RepeatInBatch
)

// Check classifies the job's identity and records it in the in-batch seen
// set. Call order matters: the first job with a given key claims it.
func (d *Deduplicator) Check(job *model.CanonicalJob) Outcome {
	key := JobKey(job)
	if d.seen.Contains(key) {
		return RepeatInBatch
	}
	d.seen.Add(key)
	if d.existing.Contains(key) {
		return KnownToStore
	}
	return Fresh
}

// KnownCount returns the size of the existing-identity index.
func (d *Deduplicator) KnownCount() int { return d.existing.Cardinality() }
