package render

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mcarr10/oncall-scheduler/pkg/core/model"
)

// memberLoad aggregates one member's share of the schedule.
type memberLoad struct {
	weeks    int
	holiday  int
	patching int
}

// FairnessSummary renders a per-member breakdown of total weeks, holiday
// weeks and patching weeks, in roster order.
func FairnessSummary(schedule model.Schedule, roster model.Roster) string {
	loads := make(map[model.Member]*memberLoad, len(roster))
	seen := make([]model.Member, 0, len(roster))
	for _, m := range roster {
		if _, ok := loads[m]; ok {
			continue
		}
		loads[m] = &memberLoad{}
		seen = append(seen, m)
	}

	unassigned := 0
	for _, week := range schedule {
		if !week.Assigned() {
			unassigned++
			continue
		}
		load, ok := loads[week.AssignedTo]
		if !ok {
			continue
		}
		load.weeks++
		if week.HasHoliday {
			load.holiday++
		}
		if week.HasPatching {
			load.patching++
		}
	}

	rows := make([][]string, 0, len(seen)+1)
	for _, m := range seen {
		load := loads[m]
		rows = append(rows, []string{
			string(m),
			strconv.Itoa(load.weeks),
			strconv.Itoa(load.holiday),
			strconv.Itoa(load.patching),
		})
	}
	if unassigned > 0 {
		rows = append(rows, []string{
			unassignedStyle.Render(string(model.Unassigned)),
			strconv.Itoa(unassigned),
			"",
			"",
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(
			headerStyle.Render("Member"),
			headerStyle.Render("Weeks"),
			headerStyle.Render("Holiday"),
			headerStyle.Render("Patching"),
		).
		Rows(rows...)

	return t.String()
}
