package services

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mcarr10/oncall-scheduler/pkg/core/model"
)

// RosterReport summarizes the team as loaded from the data directory
type RosterReport struct {
	Roster model.Roster
	// UnavailableDays counts recorded unavailable days per member
	UnavailableDays map[model.Member]int
}

// BuildRosterReport loads the roster and unavailability records and reports
// the team in file order.
func BuildRosterReport(store ScheduleStore, logger *zap.Logger) (*RosterReport, error) {
	roster, err := store.LoadRoster()
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	logger.Debug("Loaded roster", zap.Int("members", len(roster)))

	unavailability, err := store.LoadUnavailability()
	if err != nil {
		return nil, fmt.Errorf("failed to load unavailability: %w", err)
	}

	days := make(map[model.Member]int, len(roster))
	for _, m := range roster {
		days[m] = len(unavailability[m])
	}

	return &RosterReport{
		Roster:          roster,
		UnavailableDays: days,
	}, nil
}
