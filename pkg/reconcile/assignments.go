package reconcile

import (
	"sort"

	"github.com/Jib667/Watchdog/pkg/congress"
)

// defaultRole is assigned when a roster entry carries no title.
const defaultRole = "Member"

// AssignmentsFor collects every roster seat held by the given bioguide ID
// across all committees and subcommittees. Duplicate seats in the upstream
// data are preserved, one assignment per roster entry.
//
// The result is sorted for display: leadership roles first, then by rank,
// with absent or non-numeric ranks last. The sort is stable, so seats that
// compare equal keep their encounter order (roster codes ascending, entries
// in file order within a code).
func AssignmentsFor(bioguide string, membership congress.Membership, committees CommitteeSet) []congress.CommitteeAssignment {
	assignments := []congress.CommitteeAssignment{}
	if bioguide == "" {
		return assignments
	}

	codes := make([]string, 0, len(membership))
	for code := range membership {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		for _, entry := range membership[code] {
			if entry.Bioguide != bioguide {
				continue
			}
			role := entry.Title
			if role == "" {
				role = defaultRole
			}
			a := newAssignment(code, committees)
			a.Role = role
			a.Rank = entry.Rank
			assignments = append(assignments, a)
		}
	}

	sort.SliceStable(assignments, func(i, j int) bool {
		pi, pj := rolePriority(assignments[i]), rolePriority(assignments[j])
		if pi != pj {
			return pi < pj
		}
		return assignments[i].Rank.Weight() < assignments[j].Rank.Weight()
	})

	return assignments
}

// newAssignment resolves the hierarchy metadata for a roster code: name,
// URL, and for subcommittee codes the flag and parent committee name.
func newAssignment(code string, committees CommitteeSet) congress.CommitteeAssignment {
	a := congress.CommitteeAssignment{Code: code}
	main, sub, ok := committees.Find(code)
	switch {
	case !ok:
		a.Name = "Committee " + code
	case sub != nil:
		a.Name = sub.FullName
		a.URL = main.URL
		a.IsSubcommittee = true
		a.Parent = main.Name
	default:
		a.Name = main.Name
		a.URL = main.URL
	}
	return a
}

// rolePriority sorts leadership titles ahead of plain membership.
func rolePriority(a congress.CommitteeAssignment) int {
	if a.IsLeadership() {
		return 0
	}
	return 1
}
