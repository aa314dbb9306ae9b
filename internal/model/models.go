// Package model defines shared data structures for the aggregator service.
package model

// Sentinel placeholders used whenever a provider omits a field. Required
// string fields on CanonicalJob are never empty; they carry one of these.
const (
	UnknownTitle    = "Unknown Position"
	UnknownCompany  = "Unknown Company"
	UnknownLocation = "Location not specified"
)

// SalaryPeriod is the unit of time a salary figure refers to.
type SalaryPeriod string

const (
	PeriodHourly  SalaryPeriod = "hourly"
	PeriodWeekly  SalaryPeriod = "weekly"
	PeriodMonthly SalaryPeriod = "monthly"
	PeriodYearly  SalaryPeriod = "yearly"
)

// Salary is a parsed compensation range. Min <= Max always holds; a
// single-figure posting has Min == Max.
type Salary struct {
	Min      float64      `json:"min"`
	Max      float64      `json:"max"`
	Currency string       `json:"currency"`
	Period   SalaryPeriod `json:"period"`
}

// ExclusionReason explains why a job was dropped from the output set.
type ExclusionReason string

const (
	ReasonNone              ExclusionReason = ""
	ReasonExcludedCompany   ExclusionReason = "excluded_company"
	ReasonFastFood          ExclusionReason = "fast_food"
	ReasonRestaurantChain   ExclusionReason = "restaurant_chain"
	ReasonSalaryCompanyName ExclusionReason = "salary_company_name"
	ReasonHourly            ExclusionReason = "hourly"
	ReasonExcludedDomain    ExclusionReason = "excluded_domain"
	ReasonExistingDuplicate ExclusionReason = "existing_duplicate"
	ReasonProcessingError   ExclusionReason = "processing_error"
)

// RawJobRecord is a provider result before normalization. Field values are
// best-effort — each provider client fills in what its API exposes and the
// normalizer's per-provider mapping decides how far to trust them.
type RawJobRecord struct {
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Location    string  `json:"location"`
	SalaryText  string  `json:"salaryText,omitempty"`
	SalaryMin   float64 `json:"salaryMin,omitempty"`
	SalaryMax   float64 `json:"salaryMax,omitempty"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	PostedAt    string  `json:"postedAt,omitempty"`
	Source      string  `json:"source"`
}

// CanonicalJob is the pipeline's normalized representation of a posting.
// It is serialised to JSON and stored in jobs.raw_data (JSONB).
type CanonicalJob struct {
	Title          string          `json:"title"`
	Company        string          `json:"company"`
	Location       string          `json:"location"`
	Salary         *Salary         `json:"salary,omitempty"`
	SalaryRaw      string          `json:"salaryRaw,omitempty"`
	Description    string          `json:"description"`
	ApplyURL       string          `json:"applyUrl"`
	Source         string          `json:"source"`
	PostedAt       string          `json:"postedAt,omitempty"`
	CompanyWebsite string          `json:"companyWebsite,omitempty"`
	CompanyDomain  string          `json:"companyDomain,omitempty"`
	Exclusion      ExclusionReason `json:"exclusionReason,omitempty"`
}

// Excluded reports whether any pipeline stage has dropped the job.
func (j *CanonicalJob) Excluded() bool { return j.Exclusion != ReasonNone }

// RunStats carries per-stage counters for one pipeline run. Counters are
// always reported, even when individual jobs failed.
type RunStats struct {
	RunID                     string `json:"runId"`
	TotalFetched              int    `json:"totalFetched"`
	ExcludedByCompany         int    `json:"excludedByCompany"`
	ExcludedByFastFood        int    `json:"excludedByFastFood"`
	ExcludedByRestaurantChain int    `json:"excludedByRestaurantChain"`
	ExcludedByHourly          int    `json:"excludedByHourly"`
	ExcludedBySalaryName      int    `json:"excludedBySalaryName"`
	ExcludedByDomain          int    `json:"excludedByDomain"`
	DuplicatesWithinBatch     int    `json:"duplicatesWithinBatch"`
	DuplicatesAgainstStore    int    `json:"duplicatesAgainstStore"`
	ProcessingErrors          int    `json:"processingErrors"`
	Enriched                  int    `json:"enriched"`
	Emitted                   int    `json:"emitted"`
	Inserted                  int    `json:"inserted"`
	Updated                   int    `json:"updated"`
}

// SearchPair is one (query × location) combination the scheduler covers.
type SearchPair struct {
	Query    string `yaml:"query"`
	Location string `yaml:"location"`
}
