package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chefwire/aggregator-service/internal/model"
	"chefwire/aggregator-service/internal/normalize"
)

func TestRecord_JobAPIMapping(t *testing.T) {
	raw := model.RawJobRecord{
		Title:       "Executive Chef",
		Company:     "Riverside Bistro",
		Location:    "New York, NY",
		SalaryMin:   65000,
		SalaryMax:   80000,
		Description: "Run the kitchen.",
		URL:         "https://example.com/jobs/1",
		Source:      "adzuna",
	}
	job := normalize.Record(raw, normalize.KindJobAPI)

	assert.Equal(t, "Executive Chef", job.Title)
	assert.Equal(t, "Riverside Bistro", job.Company)
	assert.Equal(t, "New York, NY", job.Location)
	require.NotNil(t, job.Salary)
	assert.Equal(t, 65000.0, job.Salary.Min)
	assert.Equal(t, 80000.0, job.Salary.Max)
	assert.Equal(t, "adzuna", job.Source)
}

func TestRecord_PlaceholdersForMissingFields(t *testing.T) {
	job := normalize.Record(model.RawJobRecord{Source: "jsearch"}, normalize.KindJobAPI)

	assert.Equal(t, model.UnknownTitle, job.Title)
	assert.Equal(t, model.UnknownCompany, job.Company)
	assert.Equal(t, model.UnknownLocation, job.Location)
	assert.Nil(t, job.Salary)
}

func TestRecord_WebSearchCompanyFromTitle(t *testing.T) {
	raw := model.RawJobRecord{
		Title:  "Sous Chef - Riverside Bistro",
		URL:    "https://riversidebistro.com/careers",
		Source: "websearch",
	}
	job := normalize.Record(raw, normalize.KindWebSearch)

	assert.Equal(t, "Sous Chef", job.Title)
	assert.Equal(t, "Riverside Bistro", job.Company)
}

func TestRecord_WebSearchCompanyFromDescription(t *testing.T) {
	raw := model.RawJobRecord{
		Title:       "Pastry Chef Opening",
		Description: "Join Riverside Bistro as our next pastry chef.",
		Source:      "websearch",
	}
	job := normalize.Record(raw, normalize.KindWebSearch)

	assert.Equal(t, "Riverside Bistro", job.Company)
}

func TestRecord_SalaryShapedFallbackRejected(t *testing.T) {
	raw := model.RawJobRecord{
		Title:  "Line Cook - $18.50 per hour",
		Source: "websearch",
	}
	job := normalize.Record(raw, normalize.KindWebSearch)

	assert.Equal(t, model.UnknownCompany, job.Company)
}

func TestRecord_SalaryTextParsed(t *testing.T) {
	raw := model.RawJobRecord{
		Title:      "Sous Chef",
		Company:    "Acme Diner",
		SalaryText: "$50,000 - $70,000",
		Source:     "jsearch",
	}
	job := normalize.Record(raw, normalize.KindJobAPI)

	require.NotNil(t, job.Salary)
	assert.Equal(t, 50000.0, job.Salary.Min)
	assert.Equal(t, 70000.0, job.Salary.Max)
	assert.Equal(t, model.PeriodYearly, job.Salary.Period)
}

func TestRecord_UnparseableSalaryPreservedRaw(t *testing.T) {
	raw := model.RawJobRecord{
		Title:      "Sous Chef",
		Company:    "Acme Diner",
		SalaryText: "competitive",
		Source:     "jsearch",
	}
	job := normalize.Record(raw, normalize.KindJobAPI)

	assert.Nil(t, job.Salary)
	assert.Equal(t, "competitive", job.SalaryRaw)
}

func TestDomainFromURL(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://www.riversidebistro.com/careers", "riversidebistro.com"},
		{"http://example.org", "example.org"},
		{"www.example.org/path?x=1", "example.org"},
		{"example.org", "example.org"},
		{"not a url", ""},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, normalize.DomainFromURL(c.url), "url %q", c.url)
	}
}
