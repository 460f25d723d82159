// Package directory serves an immutable, point-in-time directory of members
// of Congress. A Directory is built once from reconciled datasets and never
// mutated; the Store swaps whole snapshots atomically on reload, so readers
// always see a consistent view.
package directory

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Jib667/Watchdog/pkg/congress"
	"github.com/Jib667/Watchdog/pkg/errors"
	"github.com/Jib667/Watchdog/pkg/reconcile"
)

// Directory is one immutable directory snapshot with lookup indexes.
type Directory struct {
	representatives []*congress.Member
	senators        []*congress.Member
	committees      reconcile.CommitteeSet
	stats           reconcile.Stats

	byCongressID map[string]*congress.Member
	repsByState  map[string][]*congress.Member
	sensByState  map[string][]*congress.Member
}

// New builds a Directory from a reconciliation result.
func New(result *reconcile.Result) *Directory {
	d := &Directory{
		representatives: result.Representatives,
		senators:        result.Senators,
		committees:      result.Committees,
		stats:           result.Stats,
		byCongressID:    make(map[string]*congress.Member),
		repsByState:     make(map[string][]*congress.Member),
		sensByState:     make(map[string][]*congress.Member),
	}

	// Synthesized IDs can collide; the first member in build order keeps
	// the ID so lookups stay deterministic.
	for _, m := range result.Representatives {
		if _, ok := d.byCongressID[m.CongressID]; !ok {
			d.byCongressID[m.CongressID] = m
		}
		d.repsByState[m.StateCode] = append(d.repsByState[m.StateCode], m)
	}
	for _, m := range result.Senators {
		if _, ok := d.byCongressID[m.CongressID]; !ok {
			d.byCongressID[m.CongressID] = m
		}
		d.sensByState[m.StateCode] = append(d.sensByState[m.StateCode], m)
	}

	return d
}

// Representatives returns all representatives sorted by state name and
// district. The returned slice is shared; callers must not modify it.
func (d *Directory) Representatives() []*congress.Member {
	return d.representatives
}

// Senators returns all senators sorted by state name with the senior
// senator first. The returned slice is shared; callers must not modify it.
func (d *Directory) Senators() []*congress.Member {
	return d.senators
}

// Stats returns the build statistics for this snapshot.
func (d *Directory) Stats() reconcile.Stats {
	return d.stats
}

// Member looks up any member by congress ID.
func (d *Directory) Member(congressID string) (*congress.Member, error) {
	m, ok := d.byCongressID[strings.ToUpper(strings.TrimSpace(congressID))]
	if !ok {
		return nil, errors.NewNotFoundError("member", congressID)
	}
	return m, nil
}

// Representative looks up the representative for a state and district.
// The state may be a postal code or a full name, in any case. An empty or
// at-large district matches the state's at-large seat.
func (d *Directory) Representative(state, district string) (*congress.Member, error) {
	code, _, ok := congress.NormalizeState(state)
	if !ok {
		return nil, errors.NewValidationError("state", state, "unknown state")
	}

	want := normalizeLookupDistrict(district)
	for _, m := range d.repsByState[code] {
		if m.District == want {
			return m, nil
		}
	}
	return nil, errors.NewNotFoundError("representative", code+"/"+want)
}

// SenatorsByState looks up a state's senators, senior first.
func (d *Directory) SenatorsByState(state string) ([]*congress.Member, error) {
	code, _, ok := congress.NormalizeState(state)
	if !ok {
		return nil, errors.NewValidationError("state", state, "unknown state")
	}

	sens := d.sensByState[code]
	if len(sens) == 0 {
		return nil, errors.NewNotFoundError("senators", code)
	}
	return sens, nil
}

// Committees returns the main committees sorted by name, each with its
// subcommittees attached.
func (d *Directory) Committees() []*congress.Committee {
	committees := make([]*congress.Committee, 0, len(d.committees))
	for _, c := range d.committees {
		committees = append(committees, c)
	}
	sort.Slice(committees, func(i, j int) bool {
		if committees[i].Name != committees[j].Name {
			return committees[i].Name < committees[j].Name
		}
		return committees[i].Code < committees[j].Code
	})
	return committees
}

// Committee looks up a main committee or subcommittee by code. For a
// subcommittee code the parent committee is returned along with the
// subcommittee entry.
func (d *Directory) Committee(code string) (*congress.Committee, *congress.Subcommittee, error) {
	main, sub, ok := d.committees.Find(strings.ToUpper(strings.TrimSpace(code)))
	if !ok {
		return nil, nil, errors.NewNotFoundError("committee", code)
	}
	return main, sub, nil
}

// ResolveDelegation resolves the congressional delegation for a House
// district: the district's representative plus up to two senators for the
// state. A missing representative is a typed not-found error, distinct
// from validation failures on the state itself.
func (d *Directory) ResolveDelegation(state, district string) (*congress.Delegation, error) {
	rep, err := d.Representative(state, district)
	if err != nil {
		return nil, err
	}

	delegation := &congress.Delegation{
		State:            rep.State,
		District:         rep.District,
		RepresentativeID: rep.CongressID,
		SenatorIDs:       []string{},
	}
	for _, s := range d.sensByState[rep.StateCode] {
		delegation.SenatorIDs = append(delegation.SenatorIDs, s.CongressID)
		if len(delegation.SenatorIDs) == 2 {
			break
		}
	}
	return delegation, nil
}

// normalizeLookupDistrict maps a district query to the stored form: empty
// and at-large spellings collapse to the canonical marker, numbers to their
// decimal string, anything else is left as given and will match nothing.
func normalizeLookupDistrict(district string) string {
	s := strings.TrimSpace(district)
	if s == "" || reconcile.IsAtLarge(s) {
		return reconcile.AtLarge
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		return strconv.Itoa(n)
	}
	return s
}
