// Package render turns schedules into console output.
package render

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mcarr10/oncall-scheduler/pkg/core/model"
)

const dateLayout = "2006-01-02"

// ScheduleTable renders the schedule as a bordered console table. Unassigned
// weeks and holiday/patching callouts are color-coded; colors degrade to
// plain text on non-terminal output.
func ScheduleTable(schedule model.Schedule) string {
	rows := make([][]string, 0, len(schedule))
	for _, week := range schedule {
		owner := string(week.AssignedTo)
		if !week.Assigned() {
			owner = unassignedStyle.Render(owner)
		}
		rows = append(rows, []string{
			strconv.Itoa(week.Week),
			week.Start.Format(dateLayout),
			week.End.Format(dateLayout),
			owner,
			flagCell(week.HasHoliday, holidayStyle),
			flagCell(week.HasPatching, patchingStyle),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(
			headerStyle.Render("Week"),
			headerStyle.Render("Start"),
			headerStyle.Render("End"),
			headerStyle.Render("Assigned To"),
			headerStyle.Render("Holiday"),
			headerStyle.Render("Patching"),
		).
		Rows(rows...)

	return t.String()
}

func flagCell(set bool, style lipgloss.Style) string {
	if !set {
		return ""
	}
	return style.Render("yes")
}
