package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcarr10/oncall-scheduler/pkg/core/services"
)

// CheckCmd creates the check command
func CheckCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the data files and config without generating a schedule",
		Long:  "Dry-run the data loaders and recurrence rule expansion; malformed lines are logged as warnings, fatal configuration problems fail the command",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Debug("check command")

			result, err := services.CheckData(app.Store, app.Cfg, app.Logger)
			if err != nil {
				return err
			}

			// Display results
			fmt.Printf("\n✓ Inputs look good!\n\n")
			fmt.Printf("Data Dir:       %s\n", app.Store.Dir())
			fmt.Printf("Members:        %d\n", result.Members)
			fmt.Printf("Holidays:       %d\n", result.Holidays)
			fmt.Printf("Patching Dates: %d\n", result.PatchingDates)
			fmt.Printf("Unavailability: %d entries\n", result.UnavailabilityEntries)
			fmt.Printf("Horizon:        %s, %d weeks\n\n", result.StartDate.Format("2006-01-02"), result.Weeks)

			return nil
		},
	}
}
