// Package normalize maps each provider's raw record shape into one
// canonical job record. Extraction is best-effort: a missing field becomes
// a literal placeholder, never an error.
package normalize

import (
	"regexp"
	"strings"

	"chefwire/aggregator-service/internal/classify"
	"chefwire/aggregator-service/internal/model"
)

// ProviderKind selects the field-mapping rules for one upstream source.
// Adding a provider means adding one mapping entry here, not new branches
// through the pipeline.
type ProviderKind string

const (
	KindJobAPI    ProviderKind = "job_api"    // structured job-search APIs (title + company fields present)
	KindWebSearch ProviderKind = "web_search" // search-engine results (company buried in title/snippet)
)

// mapping holds the per-provider extraction switches.
type mapping struct {
	// companyFromTitle enables the delimiter/description fallback when
	// the provider carries no usable company field.
	companyFromTitle bool
	// splitTitle cleans board-decorated titles ("Sous Chef - Acme, Austin TX").
	splitTitle bool
}

var mappings = map[ProviderKind]mapping{
	KindJobAPI:    {companyFromTitle: false, splitTitle: false},
	KindWebSearch: {companyFromTitle: true, splitTitle: true},
}

// companyInTextRegex captures an employer name following "at/with/for/join"
// in a description snippet: "Join Riverside Bistro as our next sous chef".
var companyInTextRegex = regexp.MustCompile(`(?:\b[Aa]t|\b[Ww]ith|\b[Ff]or|\b[Jj]oin)\s+((?:[A-Z][\w&'’.-]*)(?:\s+(?:[A-Z][\w&'’.-]*|of|the|and|&)){0,4})`)

// Record converts one raw provider record into a CanonicalJob. Total: any
// input produces a usable job with placeholders for whatever was missing.
func Record(raw model.RawJobRecord, kind ProviderKind) model.CanonicalJob {
	m, ok := mappings[kind]
	if !ok {
		m = mappings[KindJobAPI]
	}

	title := strings.TrimSpace(raw.Title)
	company := strings.TrimSpace(raw.Company)

	if m.splitTitle && title != "" {
		title = classify.ExtractTitle(raw.Title)
	}
	if company == "" && m.companyFromTitle {
		company = companyFallback(raw)
	}
	if title == "" {
		title = model.UnknownTitle
	}
	if company == "" {
		company = model.UnknownCompany
	}

	location := strings.TrimSpace(raw.Location)
	if location == "" {
		location = model.UnknownLocation
	}

	job := model.CanonicalJob{
		Title:       title,
		Company:     company,
		Location:    location,
		Description: strings.TrimSpace(raw.Description),
		ApplyURL:    strings.TrimSpace(raw.URL),
		Source:      raw.Source,
		PostedAt:    raw.PostedAt,
	}

	job.Salary, job.SalaryRaw = salaryOf(raw)
	return job
}

// salaryOf prefers the provider's numeric min/max fields and falls back to
// parsing the free-text salary. Unparseable text is preserved raw.
func salaryOf(raw model.RawJobRecord) (*model.Salary, string) {
	if raw.SalaryMin > 0 || raw.SalaryMax > 0 {
		min, max := raw.SalaryMin, raw.SalaryMax
		if min == 0 {
			min = max
		}
		if max == 0 {
			max = min
		}
		if min > max {
			min, max = max, min
		}
		return &model.Salary{Min: min, Max: max, Currency: "USD", Period: model.PeriodYearly}, raw.SalaryText
	}
	if raw.SalaryText == "" {
		return nil, ""
	}
	if s := ParseSalary(raw.SalaryText); s != nil {
		return s, raw.SalaryText
	}
	return nil, raw.SalaryText
}

// companyFallback recovers an employer name when the provider has none:
// first the segment after a title delimiter, then a capitalized phrase
// following at/with/for/join in the description. Both candidates are
// rejected when salary-shaped.
func companyFallback(raw model.RawJobRecord) string {
	if c := classify.CompanyFromTitle(raw.Title); c != "" {
		return c
	}
	if m := companyInTextRegex.FindStringSubmatch(raw.Description); m != nil {
		c := strings.TrimSpace(m[1])
		c = strings.TrimRight(c, ".,")
		if c != "" && !classify.IsSalaryShapedCompanyName(c) {
			return c
		}
	}
	return ""
}

// DomainFromURL returns the bare host of any URL: scheme stripped, leading
// "www." stripped. Malformed input yields "".
func DomainFromURL(rawURL string) string {
	s := strings.TrimSpace(rawURL)
	if s == "" {
		return ""
	}
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
	}
	s = strings.TrimPrefix(s, "www.")
	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		s = s[:i]
	}
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || !strings.Contains(s, ".") || strings.ContainsAny(s, " \t") {
		return ""
	}
	return s
}
