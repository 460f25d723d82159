package reconcile_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jib667/Watchdog/pkg/congress"
	"github.com/Jib667/Watchdog/pkg/reconcile"
)

func buildFromTestdata(t *testing.T) *reconcile.Result {
	t.Helper()
	in := reconcile.LoadInputs(context.Background(), os.DirFS("testdata"))
	result, err := reconcile.Build(context.Background(), in, testAuthority(t))
	require.NoError(t, err)
	return result
}

func TestBuildCounts(t *testing.T) {
	result := buildFromTestdata(t)

	assert.Len(t, result.Representatives, 8)
	assert.Len(t, result.Senators, 3)
	assert.Equal(t, 14, result.Stats.LegislatorRecords)
	assert.Equal(t, 3, result.Stats.Skipped)
	assert.Equal(t, map[string]int{
		reconcile.SkipNoCurrentTerm:  1,
		reconcile.SkipUnknownChamber: 1,
		reconcile.SkipUnknownState:   1,
	}, result.Stats.SkipReasons)
	assert.Equal(t, 5, result.Stats.Committees)
	assert.Equal(t, 3, result.Stats.Subcommittees)
	assert.False(t, result.Stats.BuiltAt.IsZero())
}

func TestBuildRepresentativeOrdering(t *testing.T) {
	result := buildFromTestdata(t)

	var keys [][2]string
	for _, r := range result.Representatives {
		keys = append(keys, [2]string{r.State, r.District})
	}
	assert.Equal(t, [][2]string{
		{"Alabama", "1"},
		{"Alaska", "At-Large"},
		{"California", "2"},
		{"California", "11"},
		{"Maine", "2"},
		{"Maryland", "5"},
		{"Vermont", "At-Large"},
		{"Wyoming", "0"},
	}, keys)
}

func TestBuildSenatorOrdering(t *testing.T) {
	result := buildFromTestdata(t)

	require.Len(t, result.Senators, 3)
	assert.Equal(t, "Katie Boyd Britt", result.Senators[0].Name)
	assert.Equal(t, congress.SenioritySenior, result.Senators[0].Seniority)
	assert.Equal(t, "Tommy Tuberville", result.Senators[1].Name)
	assert.Equal(t, congress.SeniorityJunior, result.Senators[1].Seniority)
	assert.Equal(t, "Josh Hawley", result.Senators[2].Name)
}

func TestBuildMemberFields(t *testing.T) {
	result := buildFromTestdata(t)

	carl := result.Representatives[0]
	assert.Equal(t, "ALD1_JERRY", carl.CongressID)
	assert.Equal(t, "C001054", carl.Bioguide)
	assert.Equal(t, "Jerry L. Carl", carl.Name)
	assert.Equal(t, "Alabama", carl.State)
	assert.Equal(t, "AL", carl.StateCode)
	assert.Equal(t, "1", carl.District)
	assert.Equal(t, "Republican", carl.Party)
	assert.Equal(t, "jerry_l_carl.jpg", carl.ImageKey)
	assert.Equal(t, "https://carl.house.gov", carl.Website)
	assert.Equal(t, "2025-01-03", carl.TermEnd)

	tuberville := result.Senators[1]
	assert.Equal(t, "AL_TOMMY", tuberville.CongressID)
	assert.Equal(t, 2, tuberville.Class)
	assert.Empty(t, tuberville.District)
}

func TestBuildAssignments(t *testing.T) {
	result := buildFromTestdata(t)

	carl := result.Representatives[0]
	require.Len(t, carl.Committees, 3)

	// Duplicate HSAG seats preserved, leadership first, then by rank
	assert.Equal(t, "Chairman", carl.Committees[0].Role)
	assert.Equal(t, "HSAG", carl.Committees[0].Code)
	assert.Equal(t, "HSAG15", carl.Committees[1].Code)
	assert.Equal(t, 2, carl.Committees[1].Rank.Value())
	assert.Equal(t, "HSAG", carl.Committees[2].Code)
	assert.Equal(t, 5, carl.Committees[2].Rank.Value())

	// Members with no seats still get an empty, non-nil list
	hawley := result.Senators[2]
	assert.NotNil(t, hawley.Committees)
	assert.Empty(t, hawley.Committees)
}

func TestBuildAtLargeConflation(t *testing.T) {
	result := buildFromTestdata(t)

	var peltola, hageman *congress.Member
	for _, r := range result.Representatives {
		switch r.Bioguide {
		case "P000620":
			peltola = r
		case "H001086":
			hageman = r
		}
	}
	require.NotNil(t, peltola)
	require.NotNil(t, hageman)

	// A missing district and a spelled-out at-large both normalize
	assert.Equal(t, "At-Large", peltola.District)
	assert.Equal(t, "AKDAL_MARYS", peltola.CongressID)

	// District 0 passes through as a number
	assert.Equal(t, "0", hageman.District)
	assert.Equal(t, "WYD0_HARRI", hageman.CongressID)
}

func TestBuildDeterministic(t *testing.T) {
	first := buildFromTestdata(t)
	for i := 0; i < 5; i++ {
		again := buildFromTestdata(t)
		assert.Equal(t, first.Representatives, again.Representatives)
		assert.Equal(t, first.Senators, again.Senators)
		assert.Equal(t, first.Committees, again.Committees)
		assert.Equal(t, first.Stats.SkipReasons, again.Stats.SkipReasons)
	}
}

func TestBuildEmptyInputs(t *testing.T) {
	in := &reconcile.Inputs{Membership: congress.Membership{}}
	result, err := reconcile.Build(context.Background(), in, testAuthority(t))
	require.NoError(t, err)

	assert.Empty(t, result.Representatives)
	assert.Empty(t, result.Senators)
	assert.Empty(t, result.Committees)
	assert.Equal(t, 0, result.Stats.Skipped)
}
