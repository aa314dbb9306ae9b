// Package rules holds the exclusion catalogues consulted by the classifier.
//
// A RuleSet is an immutable snapshot: it is assembled once (static defaults,
// optionally a YAML overlay, optionally rows from the excluded_companies
// table) and never mutated afterwards. Refreshing swaps the whole snapshot
// atomically so no job ever sees a partially-updated rule set.
package rules

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultBoundaryThreshold is the term length (runes, after normalization)
// at or below which chain-name matching requires word boundaries. Longer
// terms are distinctive enough for plain substring matching.
const DefaultBoundaryThreshold = 12

// RuleSet is one immutable snapshot of every exclusion catalogue.
type RuleSet struct {
	// ExcludedCompanies covers recruiters, staffing agencies and
	// aggregator accounts posing as employers.
	ExcludedCompanies []string
	// KeywordCategories are institutional-employer keywords (college,
	// hospital, …) checked before the company list.
	KeywordCategories []string
	// FastFood and RestaurantChains are checked in that order; the first
	// category to match decides the exclusion reason.
	FastFood         []string
	RestaurantChains []string
	// ExcludedDomains filters web-search results down to direct-employer
	// pages.
	ExcludedDomains []string
	// BoundaryThreshold controls when substring matching switches to
	// word-boundary matching for short chain names.
	BoundaryThreshold int
}

// Current returns rs itself, letting a fixed RuleSet stand in wherever a
// refreshing Source is accepted.
func (rs *RuleSet) Current() *RuleSet { return rs }

// Overlay is the shape of an optional YAML rules file. Entries are appended
// to the static defaults, never replacing them.
type Overlay struct {
	ExcludedCompanies []string `yaml:"excluded_companies"`
	FastFood          []string `yaml:"fast_food"`
	RestaurantChains  []string `yaml:"restaurant_chains"`
	ExcludedDomains   []string `yaml:"excluded_domains"`
	BoundaryThreshold int      `yaml:"boundary_threshold"`
}

// Default returns a RuleSet built from the static catalogues only.
func Default() *RuleSet {
	return &RuleSet{
		ExcludedCompanies: append([]string(nil), defaultExcludedCompanies...),
		KeywordCategories: append([]string(nil), keywordCategories...),
		FastFood:          append([]string(nil), defaultFastFood...),
		RestaurantChains:  append([]string(nil), defaultRestaurantChains...),
		ExcludedDomains:   append([]string(nil), defaultExcludedDomains...),
		BoundaryThreshold: DefaultBoundaryThreshold,
	}
}

// LoadFile reads a YAML overlay and returns Default() extended with its
// entries. A missing file is not an error — the defaults stand alone.
func LoadFile(path string) (*RuleSet, error) {
	rs := Default()
	if path == "" {
		return rs, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return rs, nil
		}
		return nil, fmt.Errorf("read rules file %q: %w", path, err)
	}

	var ov Overlay
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return nil, fmt.Errorf("parse rules file %q: %w", path, err)
	}
	return rs.Extend(ov), nil
}

// Extend returns a new RuleSet with the overlay's entries appended. The
// receiver is not modified.
func (rs *RuleSet) Extend(ov Overlay) *RuleSet {
	out := &RuleSet{
		ExcludedCompanies: appendClean(rs.ExcludedCompanies, ov.ExcludedCompanies),
		KeywordCategories: append([]string(nil), rs.KeywordCategories...),
		FastFood:          appendClean(rs.FastFood, ov.FastFood),
		RestaurantChains:  appendClean(rs.RestaurantChains, ov.RestaurantChains),
		ExcludedDomains:   appendClean(rs.ExcludedDomains, ov.ExcludedDomains),
		BoundaryThreshold: rs.BoundaryThreshold,
	}
	if ov.BoundaryThreshold > 0 {
		out.BoundaryThreshold = ov.BoundaryThreshold
	}
	return out
}

// ExtendCompanies returns a new RuleSet with extra excluded-company names
// appended (the refreshable excluded_companies table feeds this).
func (rs *RuleSet) ExtendCompanies(names []string) *RuleSet {
	out := *rs
	out.ExcludedCompanies = appendClean(rs.ExcludedCompanies, names)
	return &out
}

func appendClean(base, extra []string) []string {
	out := append([]string(nil), base...)
	for _, s := range extra {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
