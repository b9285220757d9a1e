package datadir

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mcarr10/oncall-scheduler/pkg/core/model"
	"github.com/mcarr10/oncall-scheduler/pkg/core/scheduler"
)

// LoadUnavailability reads the unavailability file: one "Name,YYYY-MM-DD"
// entry per line. Malformed lines are logged and skipped. A missing file
// means everyone is available everywhere.
func (s *Store) LoadUnavailability() (scheduler.UnavailabilityIndex, error) {
	index := make(scheduler.UnavailabilityIndex)

	if !s.fileExists(unavailabilityFileName) {
		s.logger.Debug("Unavailability file not present, continuing with empty index")
		return index, nil
	}

	file, err := os.Open(s.path(unavailabilityFileName))
	if err != nil {
		return nil, fmt.Errorf("failed to open unavailability file: %w", err)
	}
	defer file.Close()

	lineNum := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, rawDate, ok := strings.Cut(line, ",")
		if !ok {
			s.logger.Warn("Skipping malformed unavailability line",
				zap.Int("line", lineNum),
				zap.String("value", line))
			continue
		}

		name = strings.TrimSpace(name)
		date, err := time.Parse(dateLayout, strings.TrimSpace(rawDate))
		if name == "" || err != nil {
			s.logger.Warn("Skipping malformed unavailability line",
				zap.Int("line", lineNum),
				zap.String("value", line))
			continue
		}

		index.Add(model.Member(name), date)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read unavailability file: %w", err)
	}

	return index, nil
}
