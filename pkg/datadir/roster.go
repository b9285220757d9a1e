package datadir

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mcarr10/oncall-scheduler/pkg/core/model"
)

// LoadRoster reads the team file: one member name per line. Blank lines and
// lines starting with '#' are ignored; surrounding whitespace is trimmed.
// The team file is required.
func (s *Store) LoadRoster() (model.Roster, error) {
	file, err := os.Open(s.path(teamFileName))
	if err != nil {
		return nil, fmt.Errorf("failed to open team file: %w", err)
	}
	defer file.Close()

	var roster model.Roster
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		roster = append(roster, model.Member(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read team file: %w", err)
	}

	if len(roster) == 0 {
		return nil, fmt.Errorf("team file %s lists no members", s.path(teamFileName))
	}

	return roster, nil
}
