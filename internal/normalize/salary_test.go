package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chefwire/aggregator-service/internal/model"
	"chefwire/aggregator-service/internal/normalize"
)

func TestParseSalary_Range(t *testing.T) {
	s := normalize.ParseSalary("$50,000 - $70,000")
	require.NotNil(t, s)
	assert.Equal(t, 50000.0, s.Min)
	assert.Equal(t, 70000.0, s.Max)
	assert.Equal(t, model.PeriodYearly, s.Period)
}

func TestParseSalary_ToPattern(t *testing.T) {
	s := normalize.ParseSalary("$55,000 to $65,000 per year")
	require.NotNil(t, s)
	assert.Equal(t, 55000.0, s.Min)
	assert.Equal(t, 65000.0, s.Max)
	assert.Equal(t, model.PeriodYearly, s.Period)
}

func TestParseSalary_SingleHourly(t *testing.T) {
	s := normalize.ParseSalary("$25/hour")
	require.NotNil(t, s)
	assert.Equal(t, 25.0, s.Min)
	assert.Equal(t, 25.0, s.Max)
	assert.Equal(t, model.PeriodHourly, s.Period)
}

func TestParseSalary_HourlyRange(t *testing.T) {
	s := normalize.ParseSalary("$22 - $28 per hour")
	require.NotNil(t, s)
	assert.Equal(t, 22.0, s.Min)
	assert.Equal(t, 28.0, s.Max)
	assert.Equal(t, model.PeriodHourly, s.Period)
}

func TestParseSalary_ThousandsSuffix(t *testing.T) {
	s := normalize.ParseSalary("$55K - $65K")
	require.NotNil(t, s)
	assert.Equal(t, 55000.0, s.Min)
	assert.Equal(t, 65000.0, s.Max)
}

func TestParseSalary_SwappedBounds(t *testing.T) {
	s := normalize.ParseSalary("$70,000 - $50,000")
	require.NotNil(t, s)
	assert.LessOrEqual(t, s.Min, s.Max)
}

func TestParseSalary_PeriodMarkers(t *testing.T) {
	cases := []struct {
		text   string
		period model.SalaryPeriod
	}{
		{"$800 per week", model.PeriodWeekly},
		{"$4,500 per month", model.PeriodMonthly},
		{"$60,000 annually", model.PeriodYearly},
		{"$30/hr", model.PeriodHourly},
		{"$60,000", model.PeriodYearly}, // no marker defaults to yearly
	}
	for _, c := range cases {
		s := normalize.ParseSalary(c.text)
		require.NotNil(t, s, "text %q", c.text)
		assert.Equal(t, c.period, s.Period, "text %q", c.text)
	}
}

func TestParseSalary_Unparseable(t *testing.T) {
	for _, text := range []string{"", "competitive", "DOE", "salary commensurate with experience"} {
		assert.Nil(t, normalize.ParseSalary(text), "text %q", text)
	}
}
