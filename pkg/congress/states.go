package congress

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// stateNameByCode maps two-letter postal codes to full state names for all
// fifty states. Territories and the District of Columbia are intentionally
// absent; records from them are dropped during reconciliation.
var stateNameByCode = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas", "CA": "California",
	"CO": "Colorado", "CT": "Connecticut", "DE": "Delaware", "FL": "Florida", "GA": "Georgia",
	"HI": "Hawaii", "ID": "Idaho", "IL": "Illinois", "IN": "Indiana", "IA": "Iowa",
	"KS": "Kansas", "KY": "Kentucky", "LA": "Louisiana", "ME": "Maine", "MD": "Maryland",
	"MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota", "MS": "Mississippi", "MO": "Missouri",
	"MT": "Montana", "NE": "Nebraska", "NV": "Nevada", "NH": "New Hampshire", "NJ": "New Jersey",
	"NM": "New Mexico", "NY": "New York", "NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio",
	"OK": "Oklahoma", "OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island", "SC": "South Carolina",
	"SD": "South Dakota", "TN": "Tennessee", "TX": "Texas", "UT": "Utah", "VT": "Vermont",
	"VA": "Virginia", "WA": "Washington", "WV": "West Virginia", "WI": "Wisconsin", "WY": "Wyoming",
}

// stateCodeByName is the reverse of stateNameByCode, built once at init.
var stateCodeByName = func() map[string]string {
	m := make(map[string]string, len(stateNameByCode))
	for code, name := range stateNameByCode {
		m[name] = code
	}
	return m
}()

// titleCaser title-cases user-supplied state names for lookup.
var titleCaser = cases.Title(language.AmericanEnglish)

// StateName returns the full state name for a two-letter postal code.
func StateName(code string) (string, bool) {
	name, ok := stateNameByCode[strings.ToUpper(strings.TrimSpace(code))]
	return name, ok
}

// StateCode returns the two-letter postal code for a full state name.
// Matching is case-insensitive.
func StateCode(name string) (string, bool) {
	code, ok := stateCodeByName[titleCaser.String(strings.TrimSpace(name))]
	return code, ok
}

// NormalizeState resolves a state given either as a postal code or a full
// name, in any case, to its canonical (code, name) pair.
func NormalizeState(s string) (code, name string, ok bool) {
	s = strings.TrimSpace(s)
	if len(s) == 2 {
		code = strings.ToUpper(s)
		if name, ok = stateNameByCode[code]; ok {
			return code, name, true
		}
	}
	name = titleCaser.String(s)
	if code, ok = stateCodeByName[name]; ok {
		return code, name, true
	}
	return "", "", false
}
