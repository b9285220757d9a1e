package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mcarr10/oncall-scheduler/cmd/cli/commands"
	"github.com/mcarr10/oncall-scheduler/internal/config"
	"github.com/mcarr10/oncall-scheduler/pkg/datadir"
	"github.com/mcarr10/oncall-scheduler/pkg/utils/logging"
)

var (
	configPath string
	verbose    bool

	// app is populated by initApp before any command runs
	app = &commands.AppContext{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "oncall",
		Short: "On-call scheduler - rotate a team through weekly on-call shifts",
		Long:  `A CLI tool for generating fair weekly on-call schedules from plain text team data, exporting them to CSV and announcing assignments on Slack.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (defaults to oncall_config.yaml in the working directory or home)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to the console")

	// Add all commands
	rootCmd.AddCommand(commands.GenerateCmd(app))
	rootCmd.AddCommand(commands.ExportCmd(app))
	rootCmd.AddCommand(commands.NotifyCmd(app))
	rootCmd.AddCommand(commands.RosterCmd(app))
	rootCmd.AddCommand(commands.CheckCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up the logger, config, and data directory store
func initApp() error {
	var err error

	app.Logger, err = logging.InitLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := godotenv.Load(); err != nil {
		app.Logger.Debug("No .env file found")
	}

	// Load configuration
	app.Logger.Debug("Loading configuration")
	if configPath != "" {
		app.Cfg, err = config.LoadFromPath(configPath)
	} else {
		app.Cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	app.Store = datadir.NewStore(app.Cfg.DataDir, app.Logger)
	app.Logger.Debug("Data directory ready", zap.String("dir", app.Store.Dir()))

	return nil
}
