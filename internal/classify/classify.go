// Package classify decides whether a posting should be kept or dropped.
//
// Every function here is total: empty or garbage input yields the zero
// result, never a panic. A classification bug must fail open (keep a job
// that should have been excluded) rather than halt ingestion.
package classify

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"chefwire/aggregator-service/internal/model"
	"chefwire/aggregator-service/internal/rules"
)

// Result is the outcome of a company classification.
type Result struct {
	Excluded    bool
	Reason      model.ExclusionReason
	MatchedTerm string
}

var (
	// Salary fragments that the title-splitting fallback sometimes
	// misparses as a company name ("$55,000 a year", "18.50 per hour").
	salaryShapeRegex = regexp.MustCompile(`(?i)(\$[\d,]+|\d+\s*(?:per|an?)\s+(?:hour|year|week|month)|\d+(?:\.\d+)?\s*/\s*(?:hr|hour|yr|year)|\ba\s+year\b|\bper\s+hour\b)`)

	hourlyRegex = regexp.MustCompile(`(?i)(\bper\s+hour\b|\ban\s+hour\b|/\s*hr\b|/\s*hour\b|\bhourly\s+(?:rate|pay|wage)\b|\bhr\s+rate\b)`)

	apostrophes = strings.NewReplacer("'", "", "’", "", "`", "")
)

// IsSalaryShapedCompanyName reports whether the candidate company string is
// actually a salary fragment. Guards the title/description extraction
// fallback in the normalizer.
func IsSalaryShapedCompanyName(name string) bool {
	if name == "" {
		return false
	}
	return salaryShapeRegex.MatchString(name)
}

// ClassifyCompany checks a company name against the rule set in priority
// order: institutional keywords, the excluded-companies list, the fast-food
// set, then the broader chain list. First match wins.
func ClassifyCompany(name string, rs *rules.RuleSet) Result {
	if rs == nil {
		return Result{}
	}
	norm := NormalizeName(name)
	if norm == "" {
		return Result{}
	}

	for _, kw := range rs.KeywordCategories {
		if strings.Contains(norm, kw) {
			return Result{Excluded: true, Reason: model.ReasonExcludedCompany, MatchedTerm: kw}
		}
	}
	for _, term := range rs.ExcludedCompanies {
		if strings.Contains(norm, NormalizeName(term)) {
			return Result{Excluded: true, Reason: model.ReasonExcludedCompany, MatchedTerm: term}
		}
	}
	for _, term := range rs.FastFood {
		if matchesTerm(norm, NormalizeName(term), rs.BoundaryThreshold) {
			return Result{Excluded: true, Reason: model.ReasonFastFood, MatchedTerm: term}
		}
	}
	for _, term := range rs.RestaurantChains {
		if matchesTerm(norm, NormalizeName(term), rs.BoundaryThreshold) {
			return Result{Excluded: true, Reason: model.ReasonRestaurantChain, MatchedTerm: term}
		}
	}
	return Result{}
}

// IsHourlyPosting reports whether the combined title + snippet text carries
// an hourly-pay marker.
func IsHourlyPosting(text string) bool {
	if text == "" {
		return false
	}
	return hourlyRegex.MatchString(text)
}

// IsExcludedDomain reports whether rawURL points at a configured job-board
// or aggregator host. Malformed URLs are not excluded — the later stages
// still get a chance at the record.
func IsExcludedDomain(rawURL string, rs *rules.RuleSet) bool {
	if rawURL == "" || rs == nil {
		return false
	}
	host := hostOf(rawURL)
	if host == "" {
		return false
	}
	for _, d := range rs.ExcludedDomains {
		if strings.Contains(host, d) {
			return true
		}
	}
	return false
}

// NormalizeName lowercases, strips apostrophes and collapses whitespace so
// "McDonald's" and "mcdonalds" compare equal.
func NormalizeName(s string) string {
	s = apostrophes.Replace(strings.ToLower(strings.TrimSpace(s)))
	return strings.Join(strings.Fields(s), " ")
}

// matchesTerm decides whether term occurs in name. Short terms (at or below
// the boundary threshold) must appear as whole words — exact equality or
// padded by spaces or string edges — so "wendys" cannot fire inside "wendy
// johnson consulting". Longer terms use plain substring containment.
func matchesTerm(name, term string, threshold int) bool {
	if term == "" {
		return false
	}
	if utf8.RuneCountInString(term) > threshold {
		return strings.Contains(name, term)
	}
	if name == term {
		return true
	}
	if strings.HasPrefix(name, term+" ") || strings.HasSuffix(name, " "+term) {
		return true
	}
	return strings.Contains(name, " "+term+" ")
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err == nil && u.Host != "" {
		return strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	}
	// Scheme-less input: take everything up to the first slash.
	s := strings.ToLower(rawURL)
	s = strings.TrimPrefix(s, "www.")
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	if !strings.Contains(s, ".") {
		return ""
	}
	return s
}
