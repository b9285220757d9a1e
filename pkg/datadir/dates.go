package datadir

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mcarr10/oncall-scheduler/pkg/core/scheduler"
)

// LoadHolidays reads the holidays file. A missing file means no holidays.
func (s *Store) LoadHolidays() (scheduler.DateSet, error) {
	return s.loadDateFile(holidaysFileName)
}

// LoadPatchingDates reads the patching file. A missing file means no
// patching dates.
func (s *Store) LoadPatchingDates() (scheduler.DateSet, error) {
	return s.loadDateFile(patchingFileName)
}

// loadDateFile parses one YYYY-MM-DD date per line. Blank lines and '#'
// comments are ignored; malformed dates are logged and skipped so a single
// bad line never sinks the run.
func (s *Store) loadDateFile(name string) (scheduler.DateSet, error) {
	set := scheduler.NewDateSet()

	if !s.fileExists(name) {
		s.logger.Debug("Date file not present, continuing with empty set", zap.String("file", name))
		return set, nil
	}

	file, err := os.Open(s.path(name))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
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

		date, err := time.Parse(dateLayout, line)
		if err != nil {
			s.logger.Warn("Skipping malformed date line",
				zap.String("file", name),
				zap.Int("line", lineNum),
				zap.String("value", line))
			continue
		}
		set.Add(date)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return set, nil
}
