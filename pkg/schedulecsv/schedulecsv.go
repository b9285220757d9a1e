// Package schedulecsv reads and writes the canonical CSV rendering of a
// schedule. The format is the published artifact other tooling consumes, so
// both directions live here and round-trip exactly.
package schedulecsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/mcarr10/oncall-scheduler/pkg/core/model"
)

// Header is the canonical column set, in order.
var Header = []string{"Week", "Start Date", "End Date", "Assigned To", "Has Holiday", "Has Patching"}

const dateLayout = "2006-01-02"

// Write renders the schedule as CSV with the canonical header.
func Write(w io.Writer, schedule model.Schedule) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, week := range schedule {
		record := []string{
			strconv.Itoa(week.Week),
			week.Start.Format(dateLayout),
			week.End.Format(dateLayout),
			string(week.AssignedTo),
			strconv.FormatBool(week.HasHoliday),
			strconv.FormatBool(week.HasPatching),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row for week %d: %w", week.Week, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush csv output: %w", err)
	}
	return nil
}

// WriteFile renders the schedule to a CSV file, replacing any existing file.
func WriteFile(path string, schedule model.Schedule) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create schedule file: %w", err)
	}
	defer file.Close()

	if err := Write(file, schedule); err != nil {
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close schedule file: %w", err)
	}
	return nil
}

// Read parses a schedule from its canonical CSV rendering.
func Read(r io.Reader) (model.Schedule, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	if !headerMatches(header) {
		return nil, fmt.Errorf("unexpected csv header %v", header)
	}

	var schedule model.Schedule
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}

		week, err := parseRecord(record)
		if err != nil {
			return nil, err
		}
		schedule = append(schedule, week)
	}

	return schedule, nil
}

// ReadFile parses a schedule from a CSV file.
func ReadFile(path string) (model.Schedule, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open schedule file: %w", err)
	}
	defer file.Close()

	return Read(file)
}

func headerMatches(header []string) bool {
	if len(header) != len(Header) {
		return false
	}
	for i, column := range Header {
		if header[i] != column {
			return false
		}
	}
	return true
}

func parseRecord(record []string) (model.WeekAssignment, error) {
	var week model.WeekAssignment

	weekNum, err := strconv.Atoi(record[0])
	if err != nil {
		return week, fmt.Errorf("invalid week number %q: %w", record[0], err)
	}

	start, err := time.Parse(dateLayout, record[1])
	if err != nil {
		return week, fmt.Errorf("invalid start date %q: %w", record[1], err)
	}

	end, err := time.Parse(dateLayout, record[2])
	if err != nil {
		return week, fmt.Errorf("invalid end date %q: %w", record[2], err)
	}

	hasHoliday, err := strconv.ParseBool(record[4])
	if err != nil {
		return week, fmt.Errorf("invalid holiday flag %q: %w", record[4], err)
	}

	hasPatching, err := strconv.ParseBool(record[5])
	if err != nil {
		return week, fmt.Errorf("invalid patching flag %q: %w", record[5], err)
	}

	week = model.WeekAssignment{
		Week:        weekNum,
		Start:       start,
		End:         end,
		AssignedTo:  model.Member(record[3]),
		HasHoliday:  hasHoliday,
		HasPatching: hasPatching,
	}
	return week, nil
}
