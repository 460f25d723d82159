package congress

import (
	"strings"
)

// Legislator represents a raw legislator record from the legislators dataset.
// Each record carries the full term history of one person; only the current
// term is used when building the directory.
type Legislator struct {
	ID    LegislatorID   `json:"id" yaml:"id"`       // External identifiers keyed by scheme
	Name  LegislatorName `json:"name" yaml:"name"`   // Name components
	Bio   LegislatorBio  `json:"bio" yaml:"bio"`     // Biographical details
	Terms []Term         `json:"terms" yaml:"terms"` // Term history, oldest first in the upstream data
}

// LegislatorID holds the external identifiers attached to a legislator record.
type LegislatorID struct {
	Bioguide    string `json:"bioguide" yaml:"bioguide"`                           // Biographical Directory of Congress ID, the primary join key
	Thomas      string `json:"thomas,omitempty" yaml:"thomas,omitempty"`           // Legacy THOMAS ID
	LIS         string `json:"lis,omitempty" yaml:"lis,omitempty"`                 // Senate LIS ID
	GovTrack    int    `json:"govtrack,omitempty" yaml:"govtrack,omitempty"`       // GovTrack numeric ID
	OpenSecrets string `json:"opensecrets,omitempty" yaml:"opensecrets,omitempty"` // OpenSecrets CRP ID
	VoteSmart   int    `json:"votesmart,omitempty" yaml:"votesmart,omitempty"`     // Vote Smart numeric ID
	Wikipedia   string `json:"wikipedia,omitempty" yaml:"wikipedia,omitempty"`     // Wikipedia article title
}

// LegislatorName holds the name components of a legislator record.
type LegislatorName struct {
	First        string `json:"first" yaml:"first"`
	Middle       string `json:"middle,omitempty" yaml:"middle,omitempty"`
	Last         string `json:"last" yaml:"last"`
	Suffix       string `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	Nickname     string `json:"nickname,omitempty" yaml:"nickname,omitempty"`
	OfficialFull string `json:"official_full,omitempty" yaml:"official_full,omitempty"`
}

// Display returns the preferred display name: the official full name when
// present, otherwise "First Last".
func (n LegislatorName) Display() string {
	if n.OfficialFull != "" {
		return n.OfficialFull
	}
	full := strings.TrimSpace(n.First + " " + n.Last)
	return full
}

// LegislatorBio holds biographical details of a legislator record.
type LegislatorBio struct {
	Birthday string `json:"birthday,omitempty" yaml:"birthday,omitempty"` // ISO date
	Gender   string `json:"gender,omitempty" yaml:"gender,omitempty"`
}

// Term represents one term of service in a legislator record.
type Term struct {
	Type        string `json:"type" yaml:"type"`   // Chamber marker: "rep" or "sen" in the upstream data
	Start       string `json:"start" yaml:"start"` // ISO date the term began
	End         string `json:"end" yaml:"end"`     // ISO date the term ends
	State       string `json:"state" yaml:"state"` // Two-letter postal code
	District    Scalar `json:"district,omitempty" yaml:"district,omitempty"`     // House district: number, at-large marker, or absent
	Class       int    `json:"class,omitempty" yaml:"class,omitempty"`           // Senate class (1-3)
	StateRank   string `json:"state_rank,omitempty" yaml:"state_rank,omitempty"` // "senior" or "junior" for senators
	Party       string `json:"party,omitempty" yaml:"party,omitempty"`
	URL         string `json:"url,omitempty" yaml:"url,omitempty"`
	Address     string `json:"address,omitempty" yaml:"address,omitempty"`
	Office      string `json:"office,omitempty" yaml:"office,omitempty"`
	Phone       string `json:"phone,omitempty" yaml:"phone,omitempty"`
	ContactForm string `json:"contact_form,omitempty" yaml:"contact_form,omitempty"`
}

// ChamberType identifies which chamber a term belongs to.
type ChamberType string

// String returns the string representation of a ChamberType.
func (c ChamberType) String() string {
	return string(c)
}

// Chamber types.
const (
	ChamberRepresentative ChamberType = "representative"
	ChamberSenator        ChamberType = "senator"
)

// ParseChamberType maps a term type marker to a ChamberType. Both the
// upstream short forms ("rep", "sen") and the full words are accepted.
func ParseChamberType(s string) (ChamberType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rep", "representative":
		return ChamberRepresentative, true
	case "sen", "senator":
		return ChamberSenator, true
	default:
		return "", false
	}
}

// Seniority identifies a senator's rank within their state delegation.
type Seniority string

// String returns the string representation of a Seniority.
func (s Seniority) String() string {
	return string(s)
}

// Seniority ranks.
const (
	SenioritySenior Seniority = "senior"
	SeniorityJunior Seniority = "junior"
)

// ParseSeniority normalizes a state_rank value. Anything other than
// "senior" is treated as junior.
func ParseSeniority(s string) Seniority {
	if strings.EqualFold(strings.TrimSpace(s), "senior") {
		return SenioritySenior
	}
	return SeniorityJunior
}
