package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jib667/Watchdog/pkg/congress"
	"github.com/Jib667/Watchdog/pkg/directory"
)

// lookupCmd resolves members from the command line.
var lookupCmd = &cobra.Command{
	Use:   "lookup [state] [district]",
	Short: "Look up the delegation for a state and district",
	Long: `Look up congressional members from the built directory.

Given a state (postal code or full name) and an optional district,
prints the district's representative and the state's senators. With
--member, looks up a single member by congressional ID instead.

Omit the district for at-large states.`,
	Example: `  # At-large state
  watchdog lookup Alaska

  # State and district
  watchdog lookup AL 1

  # Single member by congressional ID
  watchdog lookup --member AL_TOMMY`,
	Args: cobra.MaximumNArgs(2),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)

	lookupCmd.Flags().String("member", "", "Look up a single member by congressional ID")
	lookupCmd.Flags().Bool("json", false, "Print results as JSON")
}

func runLookup(cmd *cobra.Command, args []string) error {
	store := directory.NewStore(directory.WithPath(dataDir()))
	if err := store.Load(cmd.Context()); err != nil {
		return fmt.Errorf("loading directory: %w", err)
	}

	dir, err := store.Directory()
	if err != nil {
		return err
	}

	asJSON := mustGetBool(cmd, "json")

	if congressID := mustGetString(cmd, "member"); congressID != "" {
		member, err := dir.Member(congressID)
		if err != nil {
			return err
		}
		if asJSON {
			return printJSON(member)
		}
		printMember(member)
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("a state argument or --member is required")
	}

	state := args[0]
	district := ""
	if len(args) == 2 {
		district = args[1]
	}

	rep, err := dir.Representative(state, district)
	if err != nil {
		return err
	}
	senators, err := dir.SenatorsByState(state)
	if err != nil {
		return err
	}

	if asJSON {
		return printJSON(map[string]any{
			"representative": rep,
			"senators":       senators,
		})
	}

	printMember(rep)
	for _, senator := range senators {
		printMember(senator)
	}
	return nil
}

// printMember prints a one-member summary to stdout.
func printMember(m *congress.Member) {
	switch {
	case m.IsRepresentative():
		fmt.Printf("%s  %s (%s, %s district %s)\n", m.CongressID, m.Name, m.Party, m.State, m.District)
	default:
		fmt.Printf("%s  %s (%s, %s, %s senator)\n", m.CongressID, m.Name, m.Party, m.State, m.Seniority)
	}
	for _, c := range m.Committees {
		fmt.Printf("    %s  %s (%s)\n", c.Code, c.Name, c.Role)
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
