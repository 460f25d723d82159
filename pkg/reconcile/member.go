package reconcile

import (
	"fmt"

	"github.com/Jib667/Watchdog/pkg/congress"
)

// Skip reasons recorded in build statistics.
const (
	SkipNoCurrentTerm  = "no_current_term"
	SkipUnknownChamber = "unknown_chamber"
	SkipUnknownState   = "unknown_state"
	SkipEmptyName      = "empty_name"
)

// SkipError reports why one legislator record was left out of the
// directory. Skipped records never abort a build; they are counted.
type SkipError struct {
	Reason   string
	Bioguide string
}

// Error implements the error interface
func (e *SkipError) Error() string {
	return fmt.Sprintf("record %s skipped: %s", e.Bioguide, e.Reason)
}

// ResolveMember builds a directory member from one legislator record,
// joining in committee assignments through the member's bioguide ID.
func ResolveMember(l *congress.Legislator, membership congress.Membership, committees CommitteeSet) (*congress.Member, error) {
	term, ok := CurrentTerm(l)
	if !ok {
		return nil, &SkipError{Reason: SkipNoCurrentTerm, Bioguide: l.ID.Bioguide}
	}

	chamber, ok := congress.ParseChamberType(term.Type)
	if !ok {
		return nil, &SkipError{Reason: SkipUnknownChamber, Bioguide: l.ID.Bioguide}
	}

	stateName, ok := congress.StateName(term.State)
	if !ok {
		return nil, &SkipError{Reason: SkipUnknownState, Bioguide: l.ID.Bioguide}
	}

	name := l.Name.Display()
	if name == "" {
		return nil, &SkipError{Reason: SkipEmptyName, Bioguide: l.ID.Bioguide}
	}

	m := &congress.Member{
		Bioguide:    l.ID.Bioguide,
		Chamber:     chamber,
		Name:        name,
		FirstName:   l.Name.First,
		LastName:    l.Name.Last,
		State:       stateName,
		StateCode:   term.State,
		Party:       term.Party,
		Website:     term.URL,
		Phone:       term.Phone,
		Office:      term.Office,
		ContactForm: term.ContactForm,
		ImageKey:    ImageKey(name),
		TermStart:   term.Start,
		TermEnd:     term.End,
	}

	switch chamber {
	case congress.ChamberRepresentative:
		m.District = NormalizeDistrict(term.District.String())
	case congress.ChamberSenator:
		m.Seniority = congress.ParseSeniority(term.StateRank)
		m.Class = term.Class
	}

	m.CongressID = SynthesizeID(name, term.State, m.District, chamber)
	m.Committees = AssignmentsFor(l.ID.Bioguide, membership, committees)

	return m, nil
}
