package congress

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// unresolvedRankWeight is the sort weight for absent or non-numeric ranks.
const unresolvedRankWeight = 999

// RankKind discriminates the three shapes a roster rank can take.
type RankKind int

// Rank kinds.
const (
	RankAbsent     RankKind = iota // No rank present in the roster entry
	RankNumeric                    // Rank representable as decimal digits
	RankNonNumeric                 // Rank present but not decimal digits
)

// Rank is a roster rank as given in the membership dataset. A rank may be
// a number, an arbitrary string, or absent; the original form is preserved
// for output while sorting uses Weight.
type Rank struct {
	kind  RankKind
	value int    // valid when kind == RankNumeric
	raw   string // original textual form when kind == RankNonNumeric
}

// NumericRank returns a numeric Rank.
func NumericRank(n int) Rank {
	return Rank{kind: RankNumeric, value: n}
}

// NonNumericRank returns a Rank preserving a non-numeric raw value.
func NonNumericRank(raw string) Rank {
	return Rank{kind: RankNonNumeric, raw: raw}
}

// Kind returns the rank's kind.
func (r Rank) Kind() RankKind {
	return r.kind
}

// Value returns the numeric value. It is only meaningful when Kind is
// RankNumeric.
func (r Rank) Value() int {
	return r.value
}

// Weight returns the sorting weight: the numeric value for numeric ranks,
// otherwise a fixed large weight so unresolved ranks sort last.
func (r Rank) Weight() int {
	if r.kind == RankNumeric {
		return r.value
	}
	return unresolvedRankWeight
}

// String returns the rank as it was given, or the empty string when absent.
func (r Rank) String() string {
	switch r.kind {
	case RankNumeric:
		return strconv.Itoa(r.value)
	case RankNonNumeric:
		return r.raw
	default:
		return ""
	}
}

// MarshalJSON emits the rank in its original shape: a number, a string,
// or null when absent.
func (r Rank) MarshalJSON() ([]byte, error) {
	switch r.kind {
	case RankNumeric:
		return json.Marshal(r.value)
	case RankNonNumeric:
		return json.Marshal(r.raw)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a number, a string, or null.
func (r *Rank) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = rankFromValue(v)
	return nil
}

// UnmarshalYAML accepts a number, a string, or null.
func (r *Rank) UnmarshalYAML(unmarshal func(any) error) error {
	var v any
	if err := unmarshal(&v); err != nil {
		return err
	}
	*r = rankFromValue(v)
	return nil
}

// rankFromValue classifies a decoded scalar into a Rank. Strings are
// numeric only when they consist entirely of decimal digits.
func rankFromValue(v any) Rank {
	switch n := v.(type) {
	case nil:
		return Rank{}
	case int:
		return NumericRank(n)
	case int64:
		return NumericRank(int(n))
	case uint64:
		return NumericRank(int(n))
	case float64:
		if n == float64(int(n)) {
			return NumericRank(int(n))
		}
		return NonNumericRank(strconv.FormatFloat(n, 'f', -1, 64))
	case string:
		if i, err := strconv.Atoi(n); err == nil && isDigits(n) {
			return NumericRank(i)
		}
		return NonNumericRank(n)
	default:
		return NonNumericRank(fmt.Sprintf("%v", v))
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Scalar is a YAML scalar that may arrive as a number or a string, such as
// a House district or a subcommittee code suffix. Numbers are kept in their
// decimal string form; null becomes the empty string.
type Scalar string

// String returns the scalar as a string.
func (s Scalar) String() string {
	return string(s)
}

// IsZero reports whether the scalar was absent.
func (s Scalar) IsZero() bool {
	return s == ""
}

// UnmarshalYAML accepts a number, a string, or null.
func (s *Scalar) UnmarshalYAML(unmarshal func(any) error) error {
	var v any
	if err := unmarshal(&v); err != nil {
		return err
	}
	switch n := v.(type) {
	case nil:
		*s = ""
	case string:
		*s = Scalar(n)
	case int:
		*s = Scalar(strconv.Itoa(n))
	case int64:
		*s = Scalar(strconv.FormatInt(n, 10))
	case uint64:
		*s = Scalar(strconv.FormatUint(n, 10))
	case float64:
		*s = Scalar(strconv.FormatFloat(n, 'f', -1, 64))
	default:
		*s = Scalar(fmt.Sprintf("%v", v))
	}
	return nil
}

// UnmarshalJSON accepts a number, a string, or null.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch n := v.(type) {
	case nil:
		*s = ""
	case string:
		*s = Scalar(n)
	case float64:
		if n == float64(int64(n)) {
			*s = Scalar(strconv.FormatInt(int64(n), 10))
		} else {
			*s = Scalar(strconv.FormatFloat(n, 'f', -1, 64))
		}
	default:
		*s = Scalar(fmt.Sprintf("%v", v))
	}
	return nil
}
