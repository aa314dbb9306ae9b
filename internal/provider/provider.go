// Package provider implements the upstream job-search and search-engine
// clients. Each client turns one provider's response shape into
// RawJobRecords; everything smarter happens in the pipeline.
package provider

import (
	"context"

	"chefwire/aggregator-service/internal/model"
	"chefwire/aggregator-service/internal/normalize"
)

// Provider is one upstream source of raw job records.
type Provider interface {
	// Search returns one page of results for a query/location pair plus
	// an opaque cursor for the next page ("" when exhausted). cursor ""
	// requests the first page.
	Search(ctx context.Context, query, location, cursor string) ([]model.RawJobRecord, string, error)

	// Name tags records in logs and in CanonicalJob.Source.
	Name() string

	// Kind selects the normalizer's field-mapping rules for this source.
	Kind() normalize.ProviderKind
}

// MaxPages bounds the cursor loop per (query × location) pair for every
// provider.
const MaxPages = 3

// SearchAll drains a provider's cursor up to MaxPages and returns the
// combined records.
func SearchAll(ctx context.Context, p Provider, query, location string) ([]model.RawJobRecord, error) {
	var all []model.RawJobRecord
	cursor := ""
	for page := 0; page < MaxPages; page++ {
		records, next, err := p.Search(ctx, query, location, cursor)
		if err != nil {
			return all, err
		}
		all = append(all, records...)
		if next == "" {
			break
		}
		cursor = next
	}
	return all, nil
}
