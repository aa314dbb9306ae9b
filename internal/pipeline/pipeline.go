// Package pipeline sequences one batch of raw provider records through
// normalize → classify → deduplicate → enrich and produces the emitted jobs
// plus per-stage counters.
//
// Failure policy is fail-soft per item: anything that goes wrong with a
// single record marks that record and moves on. Only batch-level problems
// (an unavailable identity index) stop a run, and those are surfaced by the
// caller before a Pipeline is even constructed.
package pipeline

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"chefwire/aggregator-service/internal/classify"
	"chefwire/aggregator-service/internal/dedup"
	"chefwire/aggregator-service/internal/enrich"
	"chefwire/aggregator-service/internal/model"
	"chefwire/aggregator-service/internal/normalize"
	"chefwire/aggregator-service/internal/rules"
)

const (
	// DefaultEnrichDelay paces successive website lookups so the search
	// provider's rate limit is respected. A property of the orchestrator,
	// not of the lookup client.
	DefaultEnrichDelay = 1 * time.Second
	// DefaultEnrichTimeout bounds one lookup; on expiry the job proceeds
	// without a website.
	DefaultEnrichTimeout = 10 * time.Second
)

// Item is one raw record tagged with the mapping rules to normalize it.
type Item struct {
	Raw  model.RawJobRecord
	Kind normalize.ProviderKind
}

// Config carries the collaborators and tuning knobs for one Pipeline.
type Config struct {
	Rules *rules.RuleSet
	// Lookup may be nil; enrichment is then skipped entirely.
	Lookup        enrich.Lookup
	EnrichDelay   time.Duration
	EnrichTimeout time.Duration
}

// Result is the outcome of one batch run.
type Result struct {
	// Emitted preserves input order among survivors. Jobs flagged
	// existing_duplicate are included for audit; callers must only
	// persist jobs with Exclusion == ReasonNone.
	Emitted []model.CanonicalJob
	// ExcludedAudit lists every dropped job with its reason.
	ExcludedAudit []model.CanonicalJob
	Stats         model.RunStats
}

// Pipeline runs batches. One Pipeline serves one run: the deduplicator's
// in-batch state is not reusable across runs.
type Pipeline struct {
	cfg   Config
	dedup *dedup.Deduplicator
}

// New builds a Pipeline over a read-only snapshot of existing identity
// keys. The caller loads those keys from the store and is responsible for
// treating a load failure as batch-fatal.
func New(cfg Config, existingKeys []string) *Pipeline {
	if cfg.Rules == nil {
		cfg.Rules = rules.Default()
	}
	if cfg.EnrichDelay == 0 {
		cfg.EnrichDelay = DefaultEnrichDelay
	}
	if cfg.EnrichTimeout == 0 {
		cfg.EnrichTimeout = DefaultEnrichTimeout
	}
	return &Pipeline{cfg: cfg, dedup: dedup.New(existingKeys)}
}

// Run processes the batch sequentially and returns emitted jobs plus
// counters. Counters are complete even when individual records failed.
func (p *Pipeline) Run(ctx context.Context, items []Item) Result {
	res := Result{Stats: model.RunStats{RunID: uuid.NewString(), TotalFetched: len(items)}}

	for i := range items {
		job, keep := p.processOne(ctx, &res.Stats, items[i])
		if !keep {
			continue
		}
		if job.Excluded() && job.Exclusion != model.ReasonExistingDuplicate {
			res.ExcludedAudit = append(res.ExcludedAudit, job)
			continue
		}
		res.Emitted = append(res.Emitted, job)
		if !job.Excluded() {
			res.Stats.Emitted++
		}
	}
	return res
}

// processOne walks a single record through every stage. keep == false means
// the record was an in-batch repeat and is dropped without audit. A panic
// anywhere in the stages is converted to a processing_error job.
func (p *Pipeline) processOne(ctx context.Context, stats *model.RunStats, it Item) (job model.CanonicalJob, keep bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[pipeline] Recovered processing %q: %v", it.Raw.Title, r)
			stats.ProcessingErrors++
			job.Exclusion = model.ReasonProcessingError
			keep = true
		}
	}()

	job = normalize.Record(it.Raw, it.Kind)

	if reason := p.classifyJob(&job, it.Kind); reason != model.ReasonNone {
		job.Exclusion = reason
		countExclusion(stats, reason)
		return job, true
	}

	switch p.dedup.Check(&job) {
	case dedup.RepeatInBatch:
		stats.DuplicatesWithinBatch++
		return job, false
	case dedup.KnownToStore:
		// Still emitted for audit, but flagged so no paid lookup is
		// ever spent on a known posting.
		stats.DuplicatesAgainstStore++
		job.Exclusion = model.ReasonExistingDuplicate
		return job, true
	}

	p.enrichJob(ctx, stats, &job)
	return job, true
}

// classifyJob applies the exclusion checks in their fixed priority order.
func (p *Pipeline) classifyJob(job *model.CanonicalJob, kind normalize.ProviderKind) model.ExclusionReason {
	if kind == normalize.KindWebSearch && classify.IsExcludedDomain(job.ApplyURL, p.cfg.Rules) {
		return model.ReasonExcludedDomain
	}
	if classify.IsSalaryShapedCompanyName(job.Company) {
		return model.ReasonSalaryCompanyName
	}
	if r := classify.ClassifyCompany(job.Company, p.cfg.Rules); r.Excluded {
		return r.Reason
	}
	if classify.IsHourlyPosting(job.Title + " " + job.Description) {
		return model.ReasonHourly
	}
	return model.ReasonNone
}

// enrichJob attaches website + domain. Best-effort: timeout or lookup error
// degrades to no website. The inter-call delay runs after every lookup so
// successive calls pace out regardless of outcome.
func (p *Pipeline) enrichJob(ctx context.Context, stats *model.RunStats, job *model.CanonicalJob) {
	if p.cfg.Lookup == nil || job.Company == model.UnknownCompany {
		return
	}

	lctx, cancel := context.WithTimeout(ctx, p.cfg.EnrichTimeout)
	site, err := p.cfg.Lookup.LookupCompanyWebsite(lctx, job.Company)
	cancel()

	if err != nil {
		log.Printf("[pipeline] Website lookup failed for %q: %v", job.Company, err)
	} else if site != "" {
		job.CompanyWebsite = site
		job.CompanyDomain = normalize.DomainFromURL(site)
		stats.Enriched++
	}

	select {
	case <-time.After(p.cfg.EnrichDelay):
	case <-ctx.Done():
	}
}

func countExclusion(stats *model.RunStats, reason model.ExclusionReason) {
	switch reason {
	case model.ReasonExcludedCompany:
		stats.ExcludedByCompany++
	case model.ReasonFastFood:
		stats.ExcludedByFastFood++
	case model.ReasonRestaurantChain:
		stats.ExcludedByRestaurantChain++
	case model.ReasonHourly:
		stats.ExcludedByHourly++
	case model.ReasonSalaryCompanyName:
		stats.ExcludedBySalaryName++
	case model.ReasonExcludedDomain:
		stats.ExcludedByDomain++
	}
}
