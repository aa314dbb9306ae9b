// Package enrich attaches a company website and domain to jobs that
// survived classification and deduplication. Lookups are best-effort: a
// miss or failure leaves the fields empty and is never fatal.
package enrich

import "context"

// Lookup resolves a company name to its website URL. Returns "" (not an
// error) when no site can be found. Each lookup costs money on the paid
// providers, so callers must not invoke it for excluded or duplicate jobs.
type Lookup interface {
	LookupCompanyWebsite(ctx context.Context, company string) (string, error)
}

// LookupFunc adapts a plain function to the Lookup interface.
type LookupFunc func(ctx context.Context, company string) (string, error)

func (f LookupFunc) LookupCompanyWebsite(ctx context.Context, company string) (string, error) {
	return f(ctx, company)
}
