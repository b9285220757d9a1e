package services

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mcarr10/oncall-scheduler/pkg/core/model"
	"github.com/mcarr10/oncall-scheduler/pkg/core/scheduler"
	"github.com/mcarr10/oncall-scheduler/pkg/schedulecsv"
)

// WeekNotifier posts one week's assignment to the announcement channel
type WeekNotifier interface {
	PostWeekNotice(week model.WeekAssignment) error
}

// NotifyResult records which week was announced
type NotifyResult struct {
	Week model.WeekAssignment
}

// NotifySchedule reads a published schedule file and announces one of its
// weeks. A positive weekNum selects that week explicitly; otherwise the week
// whose window contains today is announced.
func NotifySchedule(notifier WeekNotifier, logger *zap.Logger, schedulePath string, weekNum int, today time.Time) (*NotifyResult, error) {
	schedule, err := schedulecsv.ReadFile(schedulePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read schedule: %w", err)
	}
	if len(schedule) == 0 {
		return nil, fmt.Errorf("schedule file %s holds no weeks", schedulePath)
	}
	logger.Debug("Loaded published schedule",
		zap.String("path", schedulePath),
		zap.Int("weeks", len(schedule)))

	week, err := selectWeek(schedule, weekNum, today)
	if err != nil {
		return nil, err
	}

	if err := notifier.PostWeekNotice(week); err != nil {
		return nil, fmt.Errorf("failed to announce week %d: %w", week.Week, err)
	}

	logger.Info("Week notice posted",
		zap.Int("week", week.Week),
		zap.String("assigned_to", string(week.AssignedTo)))

	return &NotifyResult{Week: week}, nil
}

// selectWeek picks the schedule entry to announce, by explicit number or by
// the window containing today.
func selectWeek(schedule model.Schedule, weekNum int, today time.Time) (model.WeekAssignment, error) {
	if weekNum > 0 {
		for _, week := range schedule {
			if week.Week == weekNum {
				return week, nil
			}
		}
		return model.WeekAssignment{}, fmt.Errorf("schedule has no week %d", weekNum)
	}

	window := scheduler.WeekOf(today)
	for _, week := range schedule {
		if week.Start.Equal(window.Start) {
			return week, nil
		}
	}
	return model.WeekAssignment{}, fmt.Errorf("schedule has no week covering %s", today.Format("2006-01-02"))
}
