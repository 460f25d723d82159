package reconcile

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/goccy/go-yaml"

	"github.com/Jib667/Watchdog/pkg/congress"
	"github.com/Jib667/Watchdog/pkg/logging"
)

// Dataset file names as published by the unitedstates/congress-legislators
// project.
const (
	LegislatorsFile = "legislators-current.yaml"
	CommitteesFile  = "committees-current.yaml"
	MembershipFile  = "committee-membership-current.yaml"
)

// Inputs carries the three parsed datasets plus any diagnostics raised
// while loading them.
type Inputs struct {
	Legislators []congress.Legislator
	Committees  []congress.CommitteeDefinition
	Membership  congress.Membership
	Diagnostics []string
}

// LoadInputs reads the three datasets from fsys. A missing or malformed
// file yields an empty collection and a diagnostic; loading never fails
// outright, so a directory can still be built from whatever is present.
func LoadInputs(ctx context.Context, fsys fs.FS) *Inputs {
	in := &Inputs{Membership: congress.Membership{}}

	if err := loadYAML(fsys, LegislatorsFile, &in.Legislators); err != nil {
		in.diagnose(ctx, LegislatorsFile, err)
		in.Legislators = nil
	}
	if err := loadYAML(fsys, CommitteesFile, &in.Committees); err != nil {
		in.diagnose(ctx, CommitteesFile, err)
		in.Committees = nil
	}
	if err := loadYAML(fsys, MembershipFile, &in.Membership); err != nil {
		in.diagnose(ctx, MembershipFile, err)
		in.Membership = congress.Membership{}
	}

	logging.FromContext(ctx).Debug().
		Int("legislators", len(in.Legislators)).
		Int("committees", len(in.Committees)).
		Int("rosters", len(in.Membership)).
		Msg("Loaded datasets")

	return in
}

// loadYAML reads and unmarshals one dataset file.
func loadYAML(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, out)
}

func (in *Inputs) diagnose(ctx context.Context, file string, err error) {
	msg := fmt.Sprintf("%s: %v", file, err)
	in.Diagnostics = append(in.Diagnostics, msg)
	logging.FromContext(ctx).Warn().
		Str("dataset", file).
		Err(err).
		Msg("Dataset unavailable, continuing with empty collection")
}
