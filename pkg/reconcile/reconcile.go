// Package reconcile builds a normalized directory of members of Congress
// from the three upstream YAML datasets: legislator records with full term
// histories, committee definitions, and the committee membership roster.
//
// Reconciliation is deterministic: given the same inputs, every build
// produces an identical directory regardless of map iteration order. Records
// that cannot be resolved are skipped and counted, never fatal.
package reconcile

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/Jib667/Watchdog/pkg/authority"
	"github.com/Jib667/Watchdog/pkg/congress"
	"github.com/Jib667/Watchdog/pkg/logging"
)

// atLargeDistrictWeight sorts at-large districts after all numbered ones.
const atLargeDistrictWeight = 9999

// Result is the outcome of one reconciliation build.
type Result struct {
	Representatives []*congress.Member // Sorted by state name, then district
	Senators        []*congress.Member // Sorted by state name, senior before junior
	Committees      CommitteeSet       // Resolved hierarchy keyed by main code
	Stats           Stats
}

// Stats describes what a build processed, skipped, and diagnosed.
type Stats struct {
	LegislatorRecords int            `json:"legislator_records"` // Records in the legislators dataset
	Representatives   int            `json:"representatives"`
	Senators          int            `json:"senators"`
	Skipped           int            `json:"skipped"`
	SkipReasons       map[string]int `json:"skip_reasons,omitempty"`
	Committees        int            `json:"committees"`
	Subcommittees     int            `json:"subcommittees"`
	Diagnostics       []string       `json:"diagnostics,omitempty"`
	BuiltAt           time.Time      `json:"built_at"`
	Duration          time.Duration  `json:"duration"`
}

// Build reconciles the loaded datasets into a directory result. A nil
// authority falls back to the embedded curated table.
func Build(ctx context.Context, in *Inputs, auth authority.Authority) (*Result, error) {
	start := time.Now()
	log := logging.FromContext(ctx)

	if auth == nil {
		var err error
		if auth, err = authority.New(); err != nil {
			return nil, err
		}
	}

	committees, diags := BuildCommittees(in.Committees, in.Membership, auth)

	result := &Result{
		Committees: committees,
		Stats: Stats{
			LegislatorRecords: len(in.Legislators),
			SkipReasons:       map[string]int{},
			Diagnostics:       append(append([]string{}, in.Diagnostics...), diags...),
		},
	}

	for i := range in.Legislators {
		m, err := ResolveMember(&in.Legislators[i], in.Membership, committees)
		if err != nil {
			result.Stats.Skipped++
			if skip, ok := err.(*SkipError); ok {
				result.Stats.SkipReasons[skip.Reason]++
				log.Debug().
					Str("bioguide", skip.Bioguide).
					Str("reason", skip.Reason).
					Msg("Skipped legislator record")
			}
			continue
		}
		if m.IsSenator() {
			result.Senators = append(result.Senators, m)
		} else {
			result.Representatives = append(result.Representatives, m)
		}
	}

	sortRepresentatives(result.Representatives)
	sortSenators(result.Senators)

	result.Stats.Representatives = len(result.Representatives)
	result.Stats.Senators = len(result.Senators)
	result.Stats.Committees = len(committees)
	for _, c := range committees {
		result.Stats.Subcommittees += len(c.Subcommittees)
	}
	result.Stats.BuiltAt = time.Now().UTC()
	result.Stats.Duration = time.Since(start)

	log.Info().
		Int("representatives", result.Stats.Representatives).
		Int("senators", result.Stats.Senators).
		Int("skipped", result.Stats.Skipped).
		Int("committees", result.Stats.Committees).
		Dur("duration", result.Stats.Duration).
		Msg("Directory build complete")

	return result, nil
}

// sortRepresentatives orders by state name, then district number with
// at-large districts last. The sort is stable for equal keys.
func sortRepresentatives(reps []*congress.Member) {
	sort.SliceStable(reps, func(i, j int) bool {
		if reps[i].State != reps[j].State {
			return reps[i].State < reps[j].State
		}
		return districtWeight(reps[i].District) < districtWeight(reps[j].District)
	})
}

// sortSenators orders by state name with the senior senator first.
func sortSenators(sens []*congress.Member) {
	sort.SliceStable(sens, func(i, j int) bool {
		if sens[i].State != sens[j].State {
			return sens[i].State < sens[j].State
		}
		return seniorityWeight(sens[i].Seniority) < seniorityWeight(sens[j].Seniority)
	})
}

func districtWeight(district string) int {
	if n, err := strconv.Atoi(district); err == nil {
		return n
	}
	return atLargeDistrictWeight
}

func seniorityWeight(s congress.Seniority) int {
	if s == congress.SenioritySenior {
		return 0
	}
	return 1
}
