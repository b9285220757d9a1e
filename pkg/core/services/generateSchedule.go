package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mcarr10/oncall-scheduler/internal/config"
	"github.com/mcarr10/oncall-scheduler/pkg/core/model"
	"github.com/mcarr10/oncall-scheduler/pkg/core/scheduler"
)

// ScheduleStore defines the data operations needed for generating a schedule
type ScheduleStore interface {
	LoadRoster() (model.Roster, error)
	LoadHolidays() (scheduler.DateSet, error)
	LoadPatchingDates() (scheduler.DateSet, error)
	LoadUnavailability() (scheduler.UnavailabilityIndex, error)
}

// GenerateOptions carries the per-run parameters for schedule generation.
// Zero values defer to the configuration.
type GenerateOptions struct {
	// StartDate anchors the horizon; zero means the configured start date or
	// today
	StartDate time.Time
	// Weeks is the horizon length; zero means the configured value
	Weeks int
	// Seed fixes the roster permutation; empty means time-derived
	Seed string
	// Shuffle overrides the roster permutation entirely; nil means
	// SeededShuffle
	Shuffle func(seed string, roster model.Roster)
}

// GenerateResult contains a generated schedule and the inputs that shaped it
type GenerateResult struct {
	ScheduleID string
	Seed       string
	Roster     model.Roster
	StartDate  time.Time
	Weeks      int
	Schedule   model.Schedule
	Violations []scheduler.AssignmentViolation
}

// GenerateSchedule loads the scheduling inputs, permutes the roster and runs
// the rotation over the horizon. The returned result carries the seed so a
// run can be reproduced exactly.
func GenerateSchedule(store ScheduleStore, cfg *config.Config, logger *zap.Logger, opts GenerateOptions) (*GenerateResult, error) {
	weeks := opts.Weeks
	if weeks == 0 {
		weeks = cfg.Weeks
	}
	if weeks <= 0 {
		return nil, fmt.Errorf("number of weeks must be positive, got %d", weeks)
	}

	startDate := opts.StartDate
	if startDate.IsZero() {
		startDate = cfg.EffectiveStartDate(time.Now().UTC())
	}
	firstWeek := scheduler.WeekOf(startDate)
	lastDay := firstWeek.Start.AddDate(0, 0, 7*weeks-1)

	logger.Info("Generating schedule",
		zap.String("start_date", firstWeek.Start.Format("2006-01-02")),
		zap.Int("weeks", weeks))

	// Step 1: load the roster
	roster, err := store.LoadRoster()
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	logger.Debug("Loaded roster", zap.Int("members", len(roster)))

	// Step 2: load calendars
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
	logger.Debug("Loaded calendars",
		zap.Int("holidays", len(holidays)),
		zap.Int("patching_dates", len(patching)),
		zap.Int("members_with_unavailability", len(unavailability)))

	// Step 3: expand configured recurrence rules over the horizon
	holidayDates, err := expandRules(cfg.HolidayRules, firstWeek.Start, lastDay, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to expand holiday rules: %w", err)
	}
	for _, d := range holidayDates {
		holidays.Add(d)
	}
	patchingDates, err := expandRules(cfg.PatchingRules, firstWeek.Start, lastDay, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to expand patching rules: %w", err)
	}
	for _, d := range patchingDates {
		patching.Add(d)
	}

	calendar := scheduler.CalendarSet{
		Holidays:       holidays,
		PatchingDates:  patching,
		Unavailability: unavailability,
	}

	// Step 4: permute the roster
	seed := opts.Seed
	if seed == "" {
		seed = strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	shuffled := make(model.Roster, len(roster))
	copy(shuffled, roster)

	shuffle := opts.Shuffle
	if shuffle == nil {
		shuffle = SeededShuffle
	}
	shuffle(seed, shuffled)
	logger.Info("Permuted roster", zap.String("seed", seed))

	// Step 5: run the rotation
	schedule, err := scheduler.BuildSchedule(shuffled, firstWeek.Start, weeks, calendar)
	if err != nil {
		return nil, fmt.Errorf("failed to build schedule: %w", err)
	}

	violations := scheduler.VerifySchedule(schedule, shuffled, calendar)
	if len(violations) > 0 {
		logger.Warn("Schedule has rule violations", zap.Int("count", len(violations)))
	}

	result := &GenerateResult{
		ScheduleID: uuid.New().String(),
		Seed:       seed,
		Roster:     shuffled,
		StartDate:  firstWeek.Start,
		Weeks:      weeks,
		Schedule:   schedule,
		Violations: violations,
	}

	logger.Info("Schedule generated",
		zap.String("schedule_id", result.ScheduleID),
		zap.Int("weeks", len(schedule)),
		zap.Int("unassigned_weeks", countUnassigned(schedule)))

	return result, nil
}
