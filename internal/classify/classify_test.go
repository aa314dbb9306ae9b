package classify_test

import (
	"testing"

	"chefwire/aggregator-service/internal/classify"
	"chefwire/aggregator-service/internal/model"
	"chefwire/aggregator-service/internal/rules"
)

// ── ClassifyCompany — fast-food set ────────────────────────────────────────

func TestClassifyCompany_FastFoodExact(t *testing.T) {
	rs := rules.Default()
	for _, name := range []string{"McDonald's", "mcdonald's", "MCDONALDS", "Taco Bell", "KFC"} {
		r := classify.ClassifyCompany(name, rs)
		if !r.Excluded {
			t.Errorf("ClassifyCompany(%q) should be excluded", name)
			continue
		}
		if r.Reason != model.ReasonFastFood {
			t.Errorf("ClassifyCompany(%q) reason = %s, want %s", name, r.Reason, model.ReasonFastFood)
		}
	}
}

func TestClassifyCompany_BoundaryAware(t *testing.T) {
	rs := rules.Default()

	// Chain name embedded with word boundaries must match.
	r := classify.ClassifyCompany("Sheraton Waffle House Partners", rs)
	if !r.Excluded || r.Reason != model.ReasonFastFood {
		t.Errorf("ClassifyCompany(Sheraton Waffle House Partners) = %+v, want fast_food exclusion", r)
	}

	// A person's name containing a chain fragment must not.
	r = classify.ClassifyCompany("Wendy Johnson Consulting", rs)
	if r.Excluded {
		t.Errorf("ClassifyCompany(Wendy Johnson Consulting) should not be excluded, matched %q", r.MatchedTerm)
	}
}

func TestClassifyCompany_BoundaryThresholdCountsRunes(t *testing.T) {
	// "café riviera" is 12 runes but 13 bytes; the boundary threshold must
	// count runes, so it still gets whole-word matching.
	rs := &rules.RuleSet{
		FastFood:          []string{"café riviera"},
		BoundaryThreshold: 12,
	}

	r := classify.ClassifyCompany("Café Riviera", rs)
	if !r.Excluded || r.Reason != model.ReasonFastFood {
		t.Errorf("ClassifyCompany(Café Riviera) = %+v, want fast_food exclusion", r)
	}

	// Embedded without a word boundary must not fire.
	r = classify.ClassifyCompany("Scafé Riviera", rs)
	if r.Excluded {
		t.Errorf("ClassifyCompany(Scafé Riviera) should not be excluded, matched %q", r.MatchedTerm)
	}
}

// ── ClassifyCompany — excluded companies and keyword categories ────────────

func TestClassifyCompany_ExcludedCompanyList(t *testing.T) {
	rs := rules.Default()
	cases := []string{
		"Marriott International",
		"Gecko Hospitality",
		"Acme Staffing Solutions",
		"Compass Group North America",
	}
	for _, name := range cases {
		r := classify.ClassifyCompany(name, rs)
		if !r.Excluded {
			t.Errorf("ClassifyCompany(%q) should be excluded", name)
			continue
		}
		if r.Reason != model.ReasonExcludedCompany {
			t.Errorf("ClassifyCompany(%q) reason = %s, want %s", name, r.Reason, model.ReasonExcludedCompany)
		}
	}
}

func TestClassifyCompany_KeywordCategoriesFirst(t *testing.T) {
	rs := rules.Default()
	for _, name := range []string{"Riverside University Dining", "St. Mary's Hospital", "Sunrise Senior Living"} {
		r := classify.ClassifyCompany(name, rs)
		if !r.Excluded || r.Reason != model.ReasonExcludedCompany {
			t.Errorf("ClassifyCompany(%q) = %+v, want excluded_company", name, r)
		}
	}
}

func TestClassifyCompany_CleanCompanies(t *testing.T) {
	rs := rules.Default()
	for _, name := range []string{"Riverside Bistro", "The Lark", "Blue Hill at Stone Barns", "Acme Diner"} {
		r := classify.ClassifyCompany(name, rs)
		if r.Excluded {
			t.Errorf("ClassifyCompany(%q) should not be excluded, matched %q (%s)", name, r.MatchedTerm, r.Reason)
		}
	}
}

func TestClassifyCompany_Total(t *testing.T) {
	if r := classify.ClassifyCompany("", rules.Default()); r.Excluded {
		t.Errorf("ClassifyCompany(\"\") should not be excluded")
	}
	if r := classify.ClassifyCompany("anything", nil); r.Excluded {
		t.Errorf("ClassifyCompany with nil rules should not be excluded")
	}
}

// ── IsSalaryShapedCompanyName ──────────────────────────────────────────────

func TestIsSalaryShapedCompanyName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"$55,000", true},
		{"$55,000 a year", true},
		{"18.50 per hour", true},
		{"25/hr", true},
		{"$80K", true},
		{"Riverside Bistro", false},
		{"Per Se", false}, // the restaurant, not "per hour"
		{"", false},
	}
	for _, tt := range tests {
		if got := classify.IsSalaryShapedCompanyName(tt.name); got != tt.want {
			t.Errorf("IsSalaryShapedCompanyName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

// ── IsHourlyPosting ────────────────────────────────────────────────────────

func TestIsHourlyPosting(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Line cook needed, $18 per hour plus tips", true},
		{"Pay: $22/hr", true},
		{"Competitive hourly rate", true},
		{"Earn $20 an hour", true},
		{"Salary $65,000 per year DOE", false},
		{"Executive chef, fine dining", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := classify.IsHourlyPosting(tt.text); got != tt.want {
			t.Errorf("IsHourlyPosting(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

// ── IsExcludedDomain ───────────────────────────────────────────────────────

func TestIsExcludedDomain(t *testing.T) {
	rs := rules.Default()
	tests := []struct {
		url  string
		want bool
	}{
		{"https://www.indeed.com/viewjob?jk=abc", true},
		{"https://uk.linkedin.com/jobs/view/123", true},
		{"https://riversidebistro.com/careers", false},
		{"www.ziprecruiter.com/c/acme/job", true},
		{"not a url at all", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := classify.IsExcludedDomain(tt.url, rs); got != tt.want {
			t.Errorf("IsExcludedDomain(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

// ── NormalizeName ──────────────────────────────────────────────────────────

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"McDonald's", "mcdonalds"},
		{"  Wendy’s   Diner ", "wendys diner"},
		{"PLAIN", "plain"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := classify.NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
