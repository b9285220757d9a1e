package services

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mcarr10/oncall-scheduler/internal/config"
	"github.com/mcarr10/oncall-scheduler/pkg/schedulecsv"
)

// ExportResult contains the generated schedule and where it was written
type ExportResult struct {
	Generate   *GenerateResult
	OutputPath string
}

// ExportSchedule generates a schedule and publishes it as a CSV file. The
// written file is the canonical artifact consumed by notify.
func ExportSchedule(store ScheduleStore, cfg *config.Config, logger *zap.Logger, opts GenerateOptions, outputPath string) (*ExportResult, error) {
	result, err := GenerateSchedule(store, cfg, logger, opts)
	if err != nil {
		return nil, err
	}

	if err := schedulecsv.WriteFile(outputPath, result.Schedule); err != nil {
		return nil, fmt.Errorf("failed to write schedule csv: %w", err)
	}

	logger.Info("Schedule exported",
		zap.String("schedule_id", result.ScheduleID),
		zap.String("path", outputPath))

	return &ExportResult{
		Generate:   result,
		OutputPath: outputPath,
	}, nil
}
