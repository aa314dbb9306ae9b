// Package store is the persistence layer: job upserts keyed on the
// identity key, bulk identity loading for the deduplicator, and the
// refreshable excluded_companies table.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"chefwire/aggregator-service/internal/dedup"
	"chefwire/aggregator-service/internal/model"
)

// Store wraps the pgx pool with the queries the pipeline needs.
type Store struct {
	pool *pgxpool.Pool
}

// New returns a Store over an already-connected pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// UpsertResult reports what one upsert did, for run statistics.
type UpsertResult struct {
	ID     string
	WasNew bool
}

// UpsertJob inserts or refreshes a job row keyed on its identity key.
// Callers must only pass jobs with Exclusion == ReasonNone; excluded jobs
// never reach the table.
func (s *Store) UpsertJob(ctx context.Context, job *model.CanonicalJob) (UpsertResult, error) {
	if job.Excluded() {
		return UpsertResult{}, fmt.Errorf("refusing to persist excluded job %q (reason %s)", job.Title, job.Exclusion)
	}

	rawJSON, err := json.Marshal(job)
	if err != nil {
		return UpsertResult{}, fmt.Errorf("json.Marshal: %w", err)
	}

	var res UpsertResult
	// xmax = 0 only on freshly inserted rows — distinguishes insert from
	// conflict-update without a second query.
	err = s.pool.QueryRow(ctx,
		`INSERT INTO jobs (identity_key, title, company, location, source, apply_url,
		                   company_website, company_domain, raw_data)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::jsonb)
		 ON CONFLICT (identity_key)
		 DO UPDATE SET location = EXCLUDED.location,
		               source = EXCLUDED.source,
		               apply_url = EXCLUDED.apply_url,
		               company_website = COALESCE(NULLIF(EXCLUDED.company_website, ''), jobs.company_website),
		               company_domain = COALESCE(NULLIF(EXCLUDED.company_domain, ''), jobs.company_domain),
		               raw_data = EXCLUDED.raw_data,
		               updated_at = now()
		 RETURNING id, (xmax = 0)`,
		dedup.JobKey(job), job.Title, job.Company, job.Location, job.Source,
		job.ApplyURL, job.CompanyWebsite, job.CompanyDomain, string(rawJSON),
	).Scan(&res.ID, &res.WasNew)
	if err != nil {
		return UpsertResult{}, fmt.Errorf("upsert job: %w", err)
	}
	return res, nil
}

// LoadExistingIdentities returns every identity key already in the jobs
// table. The deduplicator treats the result as a read-only snapshot.
func (s *Store) LoadExistingIdentities(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT identity_key FROM jobs`)
	if err != nil {
		return nil, fmt.Errorf("query identity keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan identity key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// LoadExcludedCompanies returns operator-curated company names merged into
// the static exclusion lists on each rules refresh.
func (s *Store) LoadExcludedCompanies(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT company_name, COALESCE(parent_company, '')
		 FROM excluded_companies`)
	if err != nil {
		return nil, fmt.Errorf("query excluded_companies: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name, parent string
		if err := rows.Scan(&name, &parent); err != nil {
			return nil, fmt.Errorf("scan excluded company: %w", err)
		}
		if name != "" {
			names = append(names, name)
		}
		if parent != "" {
			names = append(names, parent)
		}
	}
	return names, rows.Err()
}
