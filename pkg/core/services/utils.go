package services

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/mcarr10/oncall-scheduler/internal/config"
	"github.com/mcarr10/oncall-scheduler/pkg/core/model"
)

// SeededShuffle permutes the roster in place using a deterministic
// permutation derived from the seed string. The same seed and roster always
// produce the same order.
func SeededShuffle(seed string, roster model.Roster) {
	hasher := fnv.New64a()
	hasher.Write([]byte(seed))

	rng := rand.New(rand.NewSource(int64(hasher.Sum64())))
	rng.Shuffle(len(roster), func(i, j int) {
		roster[i], roster[j] = roster[j], roster[i]
	})
}

// expandRules evaluates each recurrence rule over the horizon and returns
// every occurrence date, inclusive of both ends. Rules are anchored at the
// horizon start.
func expandRules(rules []config.RecurrenceRule, from, until time.Time, logger *zap.Logger) ([]time.Time, error) {
	var dates []time.Time
	for i, rule := range rules {
		opt, err := rrule.StrToROption(rule.RRule)
		if err != nil {
			return nil, fmt.Errorf("invalid rrule %q: %w", rule.RRule, err)
		}
		opt.Dtstart = from

		r, err := rrule.NewRRule(*opt)
		if err != nil {
			return nil, fmt.Errorf("failed to build rrule %q: %w", rule.RRule, err)
		}

		occurrences := r.Between(from, until, true)
		logger.Debug("Expanded recurrence rule",
			zap.Int("rule", i),
			zap.String("label", rule.Label),
			zap.Int("occurrences", len(occurrences)))
		dates = append(dates, occurrences...)
	}
	return dates, nil
}

// countUnassigned returns how many weeks of the schedule found no owner.
func countUnassigned(schedule model.Schedule) int {
	count := 0
	for _, week := range schedule {
		if !week.Assigned() {
			count++
		}
	}
	return count
}
