package services

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mcarr10/oncall-scheduler/internal/config"
	"github.com/mcarr10/oncall-scheduler/pkg/core/scheduler"
)

// CheckResult reports the effective inputs a generation run would see
type CheckResult struct {
	Members               int
	Holidays              int
	PatchingDates         int
	UnavailabilityEntries int
	StartDate             time.Time
	Weeks                 int
}

// CheckData dry-runs the loaders and rule expansion without producing a
// schedule. Malformed input lines surface as loader warnings in the log;
// only fatal configuration problems return an error.
func CheckData(store ScheduleStore, cfg *config.Config, logger *zap.Logger) (*CheckResult, error) {
	roster, err := store.LoadRoster()
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	holidays, err := store.LoadHolidays()
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays: %w", err)
	}
	patching, err := store.LoadPatchingDates()
	if err != nil {
		return nil, fmt.Errorf("failed to load patching dates: %w", err)
	}
	unavailability, err := store.LoadUnavailability()
	if err != nil {
		return nil, fmt.Errorf("failed to load unavailability: %w", err)
	}

	startDate := scheduler.WeekOf(cfg.EffectiveStartDate(time.Now().UTC())).Start
	lastDay := startDate.AddDate(0, 0, 7*cfg.Weeks-1)

	holidayDates, err := expandRules(cfg.HolidayRules, startDate, lastDay, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to expand holiday rules: %w", err)
	}
	for _, d := range holidayDates {
		holidays.Add(d)
	}
	patchingDates, err := expandRules(cfg.PatchingRules, startDate, lastDay, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to expand patching rules: %w", err)
	}
	for _, d := range patchingDates {
		patching.Add(d)
	}

	entries := 0
	for _, set := range unavailability {
		entries += len(set)
	}

	result := &CheckResult{
		Members:               len(roster),
		Holidays:              len(holidays),
		PatchingDates:         len(patching),
		UnavailabilityEntries: entries,
		StartDate:             startDate,
		Weeks:                 cfg.Weeks,
	}

	logger.Info("Input check complete",
		zap.Int("members", result.Members),
		zap.Int("holidays", result.Holidays),
		zap.Int("patching_dates", result.PatchingDates),
		zap.Int("unavailability_entries", result.UnavailabilityEntries),
		zap.String("start_date", result.StartDate.Format("2006-01-02")),
		zap.Int("weeks", result.Weeks))

	return result, nil
}
