package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mcarr10/oncall-scheduler/pkg/core/services"
	"github.com/mcarr10/oncall-scheduler/pkg/render"
)

// GenerateCmd creates the generate command
func GenerateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an on-call schedule from the team data files",
		Long:  "Run the weekly rotation over the configured horizon and print the schedule with a per-member fairness summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, _ := cmd.Flags().GetString("start")
			weeks, _ := cmd.Flags().GetInt("weeks")
			seed, _ := cmd.Flags().GetString("seed")
			csvPath, _ := cmd.Flags().GetString("csv")
			quiet, _ := cmd.Flags().GetBool("quiet")

			app.Logger.Debug("generate command",
				zap.String("start", start),
				zap.Int("weeks", weeks),
				zap.String("seed", seed),
				zap.String("csv", csvPath),
				zap.Bool("quiet", quiet))

			opts, err := buildGenerateOptions(start, weeks, seed)
			if err != nil {
				return err
			}

			// Call the service
			var result *services.GenerateResult
			if csvPath != "" {
				exported, err := services.ExportSchedule(app.Store, app.Cfg, app.Logger, opts, csvPath)
				if err != nil {
					return fmt.Errorf("generation failed: %w", err)
				}
				result = exported.Generate
			} else {
				result, err = services.GenerateSchedule(app.Store, app.Cfg, app.Logger, opts)
				if err != nil {
					return fmt.Errorf("generation failed: %w", err)
				}
			}

			// Display header
			fmt.Printf("\n📅 On-Call Schedule\n\n")
			fmt.Printf("Schedule ID: %s\n", result.ScheduleID)
			fmt.Printf("Seed:        %s\n", result.Seed)
			fmt.Printf("Start Date:  %s\n", result.StartDate.Format("2006-01-02"))
			fmt.Printf("Weeks:       %d\n", result.Weeks)
			if csvPath != "" {
				fmt.Printf("CSV:         %s\n", csvPath)
			}
			fmt.Println()

			// Display rule violations if any
			if len(result.Violations) > 0 {
				fmt.Printf("⚠️  Rule Violations (%d):\n", len(result.Violations))
				for _, v := range result.Violations {
					fmt.Printf("  • Week %d (%s) - %s: %s\n", v.Week, v.WeekStart, v.Rule, v.Description)
				}
				fmt.Println()
			}

			if !quiet {
				fmt.Println(render.ScheduleTable(result.Schedule))
				fmt.Println()
				fmt.Println(render.FairnessSummary(result.Schedule, result.Roster))
				fmt.Println()
			}

			return nil
		},
	}

	cmd.Flags().String("start", "", "Start date (YYYY-MM-DD, defaults to config or today)")
	cmd.Flags().Int("weeks", 0, "Number of weeks to schedule (defaults to config)")
	cmd.Flags().String("seed", "", "Seed for random decisions")
	cmd.Flags().String("csv", "", "Also write the schedule to this CSV file")
	cmd.Flags().Bool("quiet", false, "Suppress the schedule table output")

	return cmd
}

// buildGenerateOptions converts the shared generate/export flags into service
// options. Zero values defer to the configuration.
func buildGenerateOptions(start string, weeks int, seed string) (services.GenerateOptions, error) {
	opts := services.GenerateOptions{
		Weeks: weeks,
		Seed:  seed,
	}
	if start != "" {
		parsed, err := time.Parse("2006-01-02", start)
		if err != nil {
			return opts, fmt.Errorf("start date must be formatted as YYYY-MM-DD: %w", err)
		}
		opts.StartDate = parsed
	}
	return opts, nil
}
