package reconcile

import (
	"strconv"
	"strings"

	"github.com/Jib667/Watchdog/pkg/congress"
)

// AtLarge is the canonical form of an at-large House district.
const AtLarge = "At-Large"

// CurrentTerm selects a record's current term: the term whose end date,
// compared as an ISO date string, is greatest. On ties the earliest term in
// the record's original order wins. The second return is false when the
// record has no terms at all.
func CurrentTerm(l *congress.Legislator) (congress.Term, bool) {
	if len(l.Terms) == 0 {
		return congress.Term{}, false
	}
	best := 0
	for i := 1; i < len(l.Terms); i++ {
		if l.Terms[i].End > l.Terms[best].End {
			best = i
		}
	}
	return l.Terms[best], true
}

// NormalizeDistrict maps a raw district value to its canonical form.
// Numeric values become their decimal string, including district "0".
// At-large spellings, absent values, and anything non-numeric collapse to
// the canonical At-Large marker. The function is idempotent.
func NormalizeDistrict(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return AtLarge
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		return strconv.Itoa(n)
	}
	return AtLarge
}

// IsAtLarge reports whether a district value is an at-large spelling:
// case-insensitive, with hyphens and spaces optional.
func IsAtLarge(district string) bool {
	s := strings.ToLower(strings.TrimSpace(district))
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, " ", "")
	return s == "atlarge"
}
