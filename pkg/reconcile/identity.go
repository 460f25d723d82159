package reconcile

import (
	"strings"
	"unicode"

	"github.com/Jib667/Watchdog/pkg/congress"
)

// congressIDNameLength is how many characters of the cleaned name go into
// a synthesized congress ID.
const congressIDNameLength = 5

// nameSuffixes are the exact generational suffix tokens dropped from the
// end of a name when deriving its image key. "Jr." and "Sr." carry their
// period; the numerals do not. Variants like a bare "Jr" are kept.
var nameSuffixes = map[string]struct{}{
	"Jr.": {},
	"Sr.": {},
	"I":   {},
	"II":  {},
	"III": {},
	"IV":  {},
}

// SynthesizeID builds the stable congress ID for a member from their
// display name, state code, normalized district, and chamber.
//
// Senators get "{STATE}_{NAME}". Representatives get "{STATE}D{district}_{NAME}",
// with "DAL" standing in for at-large or missing districts. The name part is
// the first five characters of the name with everything but letters and
// digits removed, uppercased. Distinct people can collide; collisions are
// preserved rather than repaired so IDs stay stable across builds.
func SynthesizeID(name, stateCode, district string, chamber congress.ChamberType) string {
	namePart := cleanNamePart(name)
	state := strings.ToUpper(strings.TrimSpace(stateCode))

	if chamber == congress.ChamberSenator {
		return state + "_" + namePart
	}

	districtPart := "DAL"
	if d := strings.TrimSpace(district); d != "" && !IsAtLarge(d) {
		districtPart = "D" + d
	}
	return state + districtPart + "_" + namePart
}

// cleanNamePart strips non-alphanumerics, uppercases, and truncates. Letters
// and digits outside ASCII count too, so accented names keep their marks.
func cleanNamePart(name string) string {
	var b strings.Builder
	kept := 0
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
		kept++
		if kept == congressIDNameLength {
			break
		}
	}
	return b.String()
}

// ImageKey derives the portrait file key for a display name. A trailing
// generational suffix is dropped, the remainder is lowercased with spaces
// turned into underscores and periods and apostrophes removed, and ".jpg"
// is appended.
func ImageKey(name string) string {
	fields := strings.Fields(name)
	if len(fields) > 1 {
		if _, ok := nameSuffixes[fields[len(fields)-1]]; ok {
			fields = fields[:len(fields)-1]
		}
	}

	key := strings.ToLower(strings.Join(fields, " "))
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, ".", "")
	key = strings.ReplaceAll(key, "'", "")
	return key + ".jpg"
}
