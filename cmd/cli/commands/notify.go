package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mcarr10/oncall-scheduler/pkg/clients/slackclient"
	"github.com/mcarr10/oncall-scheduler/pkg/core/services"
)

// NotifyCmd creates the notify command
func NotifyCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Announce a week's on-call assignment on Slack",
		Long:  "Read a published schedule CSV and post the assignment for the selected week (default: the week containing today) to the configured Slack channel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			csvPath, _ := cmd.Flags().GetString("csv")
			week, _ := cmd.Flags().GetInt("week")

			app.Logger.Debug("notify command",
				zap.String("csv", csvPath),
				zap.Int("week", week))

			if app.Cfg.Slack.BotToken == "" {
				return fmt.Errorf("slack bot token is not set (set SLACK_BOT_TOKEN in the environment or a .env file)")
			}
			if app.Cfg.Slack.Channel == "" {
				return fmt.Errorf("slack channel is not set (set slack.channel in the config file)")
			}

			client := slackclient.New(app.Cfg.Slack.BotToken, app.Cfg.Slack.Channel)

			// Call the service
			result, err := services.NotifySchedule(client, app.Logger, csvPath, week, time.Now().UTC())
			if err != nil {
				return err
			}

			// Display results
			fmt.Printf("\n✓ Week notice posted!\n\n")
			fmt.Printf("Week:        %d (%s to %s)\n",
				result.Week.Week,
				result.Week.Start.Format("2006-01-02"),
				result.Week.End.Format("2006-01-02"))
			fmt.Printf("Assigned To: %s\n", result.Week.AssignedTo)
			fmt.Printf("Channel:     %s\n\n", app.Cfg.Slack.Channel)

			return nil
		},
	}

	cmd.Flags().String("csv", "schedule.csv", "Published schedule CSV to read")
	cmd.Flags().Int("week", 0, "Week number to announce (defaults to the week containing today)")

	return cmd
}
