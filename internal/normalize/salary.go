package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"chefwire/aggregator-service/internal/model"
)

// Salary text arrives in every format the boards can invent. Patterns are
// tried in a fixed order; the first match wins. Anything unparseable keeps
// the raw text and yields no structured salary.
var (
	rangeDashRegex   = regexp.MustCompile(`\$\s*([\d,]+(?:\.\d+)?)[kK]?\s*[-–]\s*\$?\s*([\d,]+(?:\.\d+)?)[kK]?`)
	rangeToRegex     = regexp.MustCompile(`(?i)\$\s*([\d,]+(?:\.\d+)?)[kK]?\s+to\s+\$?\s*([\d,]+(?:\.\d+)?)[kK]?`)
	singleAmtRegex   = regexp.MustCompile(`\$\s*([\d,]+(?:\.\d+)?)[kK]?`)
	thousandSuffixRe = regexp.MustCompile(`\$\s*[\d,]+(?:\.\d+)?[kK]\b`)

	periodMarkers = []struct {
		marker string
		period model.SalaryPeriod
	}{
		{"/hr", model.PeriodHourly},
		{"/hour", model.PeriodHourly},
		{"per hour", model.PeriodHourly},
		{"an hour", model.PeriodHourly},
		{"hourly", model.PeriodHourly},
		{"/wk", model.PeriodWeekly},
		{"/week", model.PeriodWeekly},
		{"per week", model.PeriodWeekly},
		{"weekly", model.PeriodWeekly},
		{"/mo", model.PeriodMonthly},
		{"/month", model.PeriodMonthly},
		{"per month", model.PeriodMonthly},
		{"monthly", model.PeriodMonthly},
		{"/yr", model.PeriodYearly},
		{"/year", model.PeriodYearly},
		{"per year", model.PeriodYearly},
		{"a year", model.PeriodYearly},
		{"annually", model.PeriodYearly},
		{"per annum", model.PeriodYearly},
	}
)

// ParseSalary extracts a structured salary from free text. Returns nil when
// nothing numeric can be recovered; the caller preserves the raw text.
func ParseSalary(text string) *model.Salary {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	kSuffix := thousandSuffixRe.MatchString(text)

	var min, max float64
	var ok bool
	if m := rangeDashRegex.FindStringSubmatch(text); m != nil {
		min, max, ok = parsePair(m[1], m[2], kSuffix)
	} else if m := rangeToRegex.FindStringSubmatch(text); m != nil {
		min, max, ok = parsePair(m[1], m[2], kSuffix)
	} else if m := singleAmtRegex.FindStringSubmatch(text); m != nil {
		v, err := parseAmount(m[1], kSuffix)
		if err == nil {
			min, max, ok = v, v, true
		}
	}
	if !ok {
		return nil
	}

	if min > max {
		min, max = max, min
	}
	return &model.Salary{
		Min:      min,
		Max:      max,
		Currency: "USD",
		Period:   periodOf(text),
	}
}

// periodOf maps a unit-of-time suffix to the period enum. Absent a marker
// the posting is assumed annual.
func periodOf(text string) model.SalaryPeriod {
	lower := strings.ToLower(text)
	for _, pm := range periodMarkers {
		if strings.Contains(lower, pm.marker) {
			return pm.period
		}
	}
	return model.PeriodYearly
}

func parsePair(a, b string, kSuffix bool) (float64, float64, bool) {
	min, err1 := parseAmount(a, kSuffix)
	max, err2 := parseAmount(b, kSuffix)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return min, max, true
}

func parseAmount(s string, kSuffix bool) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, err
	}
	// "$55k" and "$55K - $65K" mean thousands.
	if kSuffix && v < 1000 {
		v *= 1000
	}
	return v, nil
}
