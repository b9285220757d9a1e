package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcarr10/oncall-scheduler/pkg/core/services"
)

// RosterCmd creates the roster command
func RosterCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "roster",
		Short: "List the team members loaded from the data directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Debug("roster command")

			report, err := services.BuildRosterReport(app.Store, app.Logger)
			if err != nil {
				return fmt.Errorf("failed to build roster report: %w", err)
			}

			// Print members in rotation file order
			fmt.Printf("\nFound %d team members:\n\n", len(report.Roster))
			for _, member := range report.Roster {
				line := fmt.Sprintf("- %s", member)
				if days := report.UnavailableDays[member]; days > 0 {
					line += fmt.Sprintf(" (%d unavailable days)", days)
				}
				fmt.Println(line)
			}
			fmt.Println()

			return nil
		},
	}
}
