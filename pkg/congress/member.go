package congress

// Member is a resolved member of Congress in the directory. One Member is
// produced per legislator record that survives reconciliation.
type Member struct {
	CongressID  string      `json:"congress_id"`            // Synthesized stable identifier
	Bioguide    string      `json:"bioguide"`               // Upstream join key
	Chamber     ChamberType `json:"chamber"`                // representative or senator
	Name        string      `json:"name"`                   // Display name
	FirstName   string      `json:"first_name,omitempty"`
	LastName    string      `json:"last_name,omitempty"`
	State       string      `json:"state"`                  // Full state name
	StateCode   string      `json:"state_code"`             // Two-letter postal code
	District    string      `json:"district,omitempty"`     // Normalized district, representatives only
	Party       string      `json:"party,omitempty"`
	Seniority   Seniority   `json:"seniority,omitempty"`    // Senators only
	Class       int         `json:"class,omitempty"`        // Senate class, senators only
	Website     string      `json:"website,omitempty"`
	Phone       string      `json:"phone,omitempty"`
	Office      string      `json:"office,omitempty"`
	ContactForm string      `json:"contact_form,omitempty"`
	ImageKey    string      `json:"image_key"`              // Image file key derived from the display name
	TermStart   string      `json:"term_start,omitempty"`   // ISO date the current term began
	TermEnd     string      `json:"term_end,omitempty"`     // ISO date the current term ends
	Committees  []CommitteeAssignment `json:"committees"`   // Sorted committee assignments, never nil
}

// IsRepresentative reports whether the member serves in the House.
func (m *Member) IsRepresentative() bool {
	return m.Chamber == ChamberRepresentative
}

// IsSenator reports whether the member serves in the Senate.
func (m *Member) IsSenator() bool {
	return m.Chamber == ChamberSenator
}

// CommitteeAssignment represents one committee or subcommittee seat held
// by a member. Duplicate seats in the upstream data are preserved.
type CommitteeAssignment struct {
	Code           string `json:"code"`             // Committee or subcommittee code
	Name           string `json:"name"`             // Resolved committee name
	URL            string `json:"url"`              // Main committee URL, shared by its subcommittees
	Role           string `json:"role"`             // Leadership title or "Member"
	Rank           Rank   `json:"rank"`             // Rank as given in the roster
	IsSubcommittee bool   `json:"is_subcommittee"`  // Whether the code names a subcommittee
	Parent         string `json:"parent,omitempty"` // Parent committee name, subcommittees only
}

// Leadership roles that sort ahead of plain membership.
var leadershipRoles = map[string]struct{}{
	"Chairman":      {},
	"Ranking Member": {},
	"Vice Chairman": {},
}

// IsLeadership reports whether the assignment's role is a leadership title.
func (a CommitteeAssignment) IsLeadership() bool {
	_, ok := leadershipRoles[a.Role]
	return ok
}

// Delegation is the congressional delegation for one House district: the
// district's representative and the state's senators.
type Delegation struct {
	State            string   `json:"state"`             // Full state name
	District         string   `json:"district"`          // Normalized district
	RepresentativeID string   `json:"representative_id"` // Congress ID of the district's representative
	SenatorIDs       []string `json:"senator_ids"`       // Congress IDs of the state's senators, at most two
}
