package classify_test

import (
	"testing"

	"chefwire/aggregator-service/internal/classify"
)

// ── ExtractTitle ───────────────────────────────────────────────────────────

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Sous Chef - Riverside Bistro", "Sous Chef"},
		{"Executive Chef | The Lark | Austin TX", "Executive Chef"},
		{"Pastry Chef @ Blue Hill", "Pastry Chef"},
		{"Line Cook, Acme Diner", "Line Cook"},
		{"Head Chef - Urgently Hiring!", "Head Chef"},
		{"Chef de Cuisine - Hiring Now", "Chef de Cuisine"},
		{"Executive Chef", "Executive Chef"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := classify.ExtractTitle(tt.raw); got != tt.want {
			t.Errorf("ExtractTitle(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

// ── CompanyFromTitle ───────────────────────────────────────────────────────

func TestCompanyFromTitle(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Sous Chef - Riverside Bistro", "Riverside Bistro"},
		{"Pastry Chef @ Blue Hill", "Blue Hill"},
		{"Line Cook, Acme Diner", "Acme Diner"},
		{"Executive Chef", ""},
		// Salary fragments after the delimiter are not employers.
		{"Line Cook - $18.50 per hour", ""},
		{"Sous Chef - $55,000 a year", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := classify.CompanyFromTitle(tt.raw); got != tt.want {
			t.Errorf("CompanyFromTitle(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

// ── SplitTitle ─────────────────────────────────────────────────────────────

func TestSplitTitle_FirstDelimiterWins(t *testing.T) {
	delim, left, right := classify.SplitTitle("Executive Chef - The Lark, Austin")
	if delim != " - " {
		t.Errorf("delim = %q, want %q", delim, " - ")
	}
	if left != "Executive Chef" || right != "The Lark, Austin" {
		t.Errorf("SplitTitle = (%q, %q), want (Executive Chef, The Lark, Austin)", left, right)
	}
}

func TestSplitTitle_NoDelimiter(t *testing.T) {
	delim, left, right := classify.SplitTitle("Executive Chef")
	if delim != "" || left != "" || right != "" {
		t.Errorf("SplitTitle(no delimiter) = (%q, %q, %q), want empties", delim, left, right)
	}
}
