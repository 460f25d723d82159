package reconcile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Jib667/Watchdog/pkg/authority"
	"github.com/Jib667/Watchdog/pkg/congress"
)

// mainCodeLength is the length of a main committee code; longer roster
// keys with an all-digit remainder address subcommittees.
const mainCodeLength = 4

// CommitteeSet is a resolved committee hierarchy keyed by main committee
// code.
type CommitteeSet map[string]*congress.Committee

// Find returns the committee or subcommittee entry for a code. For a main
// code the committee itself is returned; for a subcommittee code the parent
// and the subcommittee are both returned.
func (s CommitteeSet) Find(code string) (*congress.Committee, *congress.Subcommittee, bool) {
	main, suffix := SplitCode(code)
	c, ok := s[main]
	if !ok {
		return nil, nil, false
	}
	if suffix == "" {
		return c, nil, true
	}
	sub, ok := c.Subcommittees[code]
	if !ok {
		return nil, nil, false
	}
	return c, sub, true
}

// SplitCode classifies a roster code. Codes longer than four characters
// whose remainder is all digits address a subcommittee of the four-character
// prefix; everything else is treated as a main committee code.
func SplitCode(code string) (main, suffix string) {
	if len(code) > mainCodeLength {
		tail := code[mainCodeLength:]
		if isDigits(tail) {
			return code[:mainCodeLength], tail
		}
	}
	return code, ""
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

// BuildCommittees builds the committee hierarchy. The membership roster's
// keys decide which committees and subcommittees exist; the definitions
// dataset and the curated authority contribute names and chamber types.
// The result depends only on the inputs, never on map iteration order.
func BuildCommittees(defs []congress.CommitteeDefinition, membership congress.Membership, auth authority.Authority) (CommitteeSet, []string) {
	defByCode := make(map[string]*congress.CommitteeDefinition, len(defs))
	for i := range defs {
		defByCode[defs[i].Code] = &defs[i]
	}

	codes := make([]string, 0, len(membership))
	for code := range membership {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	set := CommitteeSet{}
	var diags []string

	// Main committees first, including parents that only ever appear as
	// a subcommittee code's prefix.
	for _, code := range codes {
		main, _ := SplitCode(code)
		if _, ok := set[main]; ok {
			continue
		}
		c, ds := resolveMain(main, defByCode, auth)
		set[main] = c
		diags = append(diags, ds...)
	}

	// Subcommittees second, so full names see finalized parent names.
	for _, code := range codes {
		main, suffix := SplitCode(code)
		if suffix == "" {
			continue
		}
		parent := set[main]
		short, ds := resolveSubName(main, suffix, defByCode)
		diags = append(diags, ds...)
		parent.Subcommittees[code] = &congress.Subcommittee{
			Code:      code,
			Parent:    main,
			Suffix:    suffix,
			ShortName: short,
			FullName:  parent.Name + " - " + short,
		}
	}

	return set, diags
}

// resolveMain builds one main committee node, naming it through the chain:
// curated authority, then the definitions dataset, then a synthesized
// placeholder. The last two tiers raise diagnostics.
func resolveMain(code string, defByCode map[string]*congress.CommitteeDefinition, auth authority.Authority) (*congress.Committee, []string) {
	def := defByCode[code]
	var diags []string

	var name string
	var source congress.NameSource
	switch {
	case auth != nil && hasAuthorityName(auth, code):
		name, _ = auth.CommitteeName(code)
		source = congress.NameSourceAuthority
	case def != nil && def.Name != "":
		name = def.Name
		source = congress.NameSourceDefinition
		diags = append(diags, fmt.Sprintf("committee %s: name taken from definitions dataset", code))
	default:
		name = "Committee " + code
		source = congress.NameSourcePlaceholder
		diags = append(diags, fmt.Sprintf("committee %s: no name in authority or definitions, synthesized placeholder", code))
	}

	ctype := congress.CommitteeTypeFromCode(code)
	if def != nil {
		if t, ok := congress.ParseCommitteeType(def.Type); ok {
			ctype = t
		}
	}

	c := &congress.Committee{
		Code:          code,
		Name:          name,
		Type:          ctype,
		NameSource:    source,
		Subcommittees: map[string]*congress.Subcommittee{},
	}
	if def != nil {
		c.URL = def.URL
	}
	return c, diags
}

// resolveSubName finds a subcommittee's own name in the parent definition's
// embedded subcommittee list, falling back to a synthesized name.
func resolveSubName(parent, suffix string, defByCode map[string]*congress.CommitteeDefinition) (string, []string) {
	if def := defByCode[parent]; def != nil {
		for _, sub := range def.Subcommittees {
			if sub.Code.String() == suffix && sub.Name != "" {
				return sub.Name, nil
			}
		}
	}
	return "Subcommittee " + suffix, []string{
		fmt.Sprintf("committee %s%s: no subcommittee definition, synthesized name", parent, suffix),
	}
}

func hasAuthorityName(auth authority.Authority, code string) bool {
	name, ok := auth.CommitteeName(code)
	return ok && strings.TrimSpace(name) != ""
}
