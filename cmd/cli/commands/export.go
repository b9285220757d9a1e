package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mcarr10/oncall-scheduler/pkg/core/services"
)

// ExportCmd creates the export command
func ExportCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Generate an on-call schedule and write it to a CSV file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, _ := cmd.Flags().GetString("start")
			weeks, _ := cmd.Flags().GetInt("weeks")
			seed, _ := cmd.Flags().GetString("seed")
			csvPath, _ := cmd.Flags().GetString("csv")

			app.Logger.Debug("export command",
				zap.String("start", start),
				zap.Int("weeks", weeks),
				zap.String("seed", seed),
				zap.String("csv", csvPath))

			opts, err := buildGenerateOptions(start, weeks, seed)
			if err != nil {
				return err
			}

			// Call the service
			result, err := services.ExportSchedule(app.Store, app.Cfg, app.Logger, opts, csvPath)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			// Display results
			fmt.Printf("\n✓ Schedule exported!\n\n")
			fmt.Printf("Schedule ID: %s\n", result.Generate.ScheduleID)
			fmt.Printf("Seed:        %s\n", result.Generate.Seed)
			fmt.Printf("Start Date:  %s\n", result.Generate.StartDate.Format("2006-01-02"))
			fmt.Printf("Weeks:       %d\n", result.Generate.Weeks)
			fmt.Printf("File:        %s\n", result.OutputPath)
			if len(result.Generate.Violations) > 0 {
				fmt.Printf("\n⚠️  Schedule has %d rule violations - run generate to inspect them\n", len(result.Generate.Violations))
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("start", "", "Start date (YYYY-MM-DD, defaults to config or today)")
	cmd.Flags().Int("weeks", 0, "Number of weeks to schedule (defaults to config)")
	cmd.Flags().String("seed", "", "Seed for random decisions")
	cmd.Flags().String("csv", "", "Output CSV file path")
	cmd.MarkFlagRequired("csv")

	return cmd
}
