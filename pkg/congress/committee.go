package congress

import (
	"strings"
)

// CommitteeType identifies which chamber a committee belongs to.
type CommitteeType string

// String returns the string representation of a CommitteeType.
func (t CommitteeType) String() string {
	return string(t)
}

// Committee types.
const (
	CommitteeTypeHouse  CommitteeType = "house"
	CommitteeTypeSenate CommitteeType = "senate"
	CommitteeTypeJoint  CommitteeType = "joint"
)

// CommitteeTypeFromCode infers the committee type from the first character
// of a committee code: H for House, S for Senate, anything else joint.
func CommitteeTypeFromCode(code string) CommitteeType {
	if code == "" {
		return CommitteeTypeJoint
	}
	switch code[0] {
	case 'H', 'h':
		return CommitteeTypeHouse
	case 'S', 's':
		return CommitteeTypeSenate
	default:
		return CommitteeTypeJoint
	}
}

// ParseCommitteeType normalizes a committee type marker from the
// definitions dataset. Unrecognized values report false.
func ParseCommitteeType(s string) (CommitteeType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "house":
		return CommitteeTypeHouse, true
	case "senate":
		return CommitteeTypeSenate, true
	case "joint":
		return CommitteeTypeJoint, true
	default:
		return "", false
	}
}

// CommitteeDefinition represents a raw committee record from the committee
// definitions dataset.
type CommitteeDefinition struct {
	Type          string                   `json:"type" yaml:"type"`                                 // "house", "senate", or "joint"
	Name          string                   `json:"name" yaml:"name"`                                 // Committee name as published
	Code          string                   `json:"thomas_id" yaml:"thomas_id"`                       // Four-character committee code
	URL           string                   `json:"url,omitempty" yaml:"url,omitempty"`               // Committee website
	Jurisdiction  string                   `json:"jurisdiction,omitempty" yaml:"jurisdiction,omitempty"`
	Subcommittees []SubcommitteeDefinition `json:"subcommittees,omitempty" yaml:"subcommittees,omitempty"`
}

// SubcommitteeDefinition represents a subcommittee entry embedded in a
// committee definition. The code here is the numeric suffix only; the full
// subcommittee code is the parent code plus this suffix.
type SubcommitteeDefinition struct {
	Name string `json:"name" yaml:"name"`
	Code Scalar `json:"thomas_id" yaml:"thomas_id"`
}

// NameSource records which tier of the naming chain supplied a committee's
// display name. Anything other than the authoritative table is diagnostic.
type NameSource string

// Name sources, in precedence order.
const (
	NameSourceAuthority   NameSource = "authority"   // Curated authoritative name table
	NameSourceDefinition  NameSource = "definition"  // Name from the definitions dataset
	NameSourcePlaceholder NameSource = "placeholder" // Synthesized fallback name
)

// Committee is a resolved main committee in the directory's hierarchy.
type Committee struct {
	Code          string                   `json:"code"`        // Four-character committee code
	Name          string                   `json:"name"`        // Resolved display name
	Type          CommitteeType            `json:"type"`        // Chamber
	NameSource    NameSource               `json:"-"`           // Tier that supplied the name
	URL           string                   `json:"url,omitempty"`
	Subcommittees map[string]*Subcommittee `json:"subcommittees,omitempty"` // Keyed by full subcommittee code
}

// Subcommittee is a resolved subcommittee in the directory's hierarchy.
type Subcommittee struct {
	Code      string `json:"code"`       // Full code: parent code plus suffix
	Parent    string `json:"parent"`     // Parent committee code
	Suffix    string `json:"suffix"`     // Numeric suffix portion of the code
	ShortName string `json:"short_name"` // Subcommittee's own name
	FullName  string `json:"full_name"`  // "{parent name} - {short name}"
}

// RosterEntry represents one membership entry in the committee membership
// dataset, keyed by committee code.
type RosterEntry struct {
	Name     string `json:"name" yaml:"name"`
	Bioguide string `json:"bioguide,omitempty" yaml:"bioguide,omitempty"`
	Thomas   string `json:"thomas,omitempty" yaml:"thomas,omitempty"`
	Party    string `json:"party,omitempty" yaml:"party,omitempty"` // "majority" or "minority"
	Rank     Rank   `json:"rank,omitempty" yaml:"rank,omitempty"`
	Title    string `json:"title,omitempty" yaml:"title,omitempty"` // Leadership role, absent for plain members
}

// Membership is the committee membership dataset: roster entries keyed by
// committee or subcommittee code.
type Membership map[string][]RosterEntry
