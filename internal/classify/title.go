package classify

import "strings"

// titleDelimiters in the order they are tried. Only the first one found in
// the raw title is used for splitting; title keeps the left segment, the
// company fallback keeps the right.
var titleDelimiters = []string{" - ", " | ", " @ ", ", "}

// boilerplateSuffixes are junk fragments job boards append to titles.
var boilerplateSuffixes = []string{
	"urgently hiring",
	"hiring now",
	"hiring immediately",
	"now hiring",
	"immediate start",
	"apply today",
	"apply now",
	"new",
}

// ExtractTitle cleans a raw posting title: the segment before the first
// delimiter, with trailing board boilerplate stripped.
func ExtractTitle(rawTitle string) string {
	title := strings.TrimSpace(rawTitle)
	if title == "" {
		return ""
	}
	if _, left, _ := SplitTitle(title); left != "" {
		title = left
	}
	return stripBoilerplate(title)
}

// CompanyFromTitle applies the delimiter heuristic for postings whose
// provider gives no company field: the segment after the first delimiter is
// the employer candidate ("Sous Chef - Riverside Bistro"). Returns "" when
// no delimiter is present or the candidate is salary-shaped.
func CompanyFromTitle(rawTitle string) string {
	_, _, right := SplitTitle(strings.TrimSpace(rawTitle))
	right = stripBoilerplate(right)
	if right == "" || IsSalaryShapedCompanyName(right) {
		return ""
	}
	return right
}

// SplitTitle finds the first delimiter present in s and returns it with the
// trimmed segments on each side. ok is reported through delim being
// non-empty.
func SplitTitle(s string) (delim, left, right string) {
	best := -1
	for _, d := range titleDelimiters {
		if i := strings.Index(s, d); i >= 0 && (best < 0 || i < best) {
			best = i
			delim = d
		}
	}
	if delim == "" {
		return "", "", ""
	}
	left = strings.TrimSpace(s[:best])
	right = strings.TrimSpace(s[best+len(delim):])
	return delim, left, right
}

func stripBoilerplate(s string) string {
	for changed := true; changed; {
		changed = false
		trimmed := strings.TrimRight(strings.TrimSpace(s), "-–|!. ")
		for _, suffix := range boilerplateSuffixes {
			if n := len(trimmed) - len(suffix); n >= 0 && strings.EqualFold(trimmed[n:], suffix) {
				s = strings.TrimSpace(trimmed[:n])
				changed = true
				break
			}
		}
		if !changed {
			s = strings.TrimSpace(trimmed)
		}
	}
	return s
}
