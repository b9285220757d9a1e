package datadir

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mcarr10/oncall-scheduler/pkg/core/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(t.TempDir(), zap.NewNop())
}

func writeDataFile(t *testing.T, store *Store, name, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(store.Dir(), name), []byte(content), 0644)
	require.NoError(t, err)
}

func utcDay(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestStore_LoadRoster(t *testing.T) {
	store := newTestStore(t)
	writeDataFile(t, store, "team.txt", `# on-call team
Alice
Bob

  Carol
`)

	roster, err := store.LoadRoster()

	require.NoError(t, err)
	assert.Equal(t, model.Roster{"Alice", "Bob", "Carol"}, roster)
}

func TestStore_LoadRoster_MissingFileFails(t *testing.T) {
	store := newTestStore(t)

	roster, err := store.LoadRoster()

	assert.Error(t, err)
	assert.Nil(t, roster)
}

func TestStore_LoadRoster_NoMembersFails(t *testing.T) {
	store := newTestStore(t)
	writeDataFile(t, store, "team.txt", "# nobody here\n\n")

	_, err := store.LoadRoster()

	assert.ErrorContains(t, err, "no members")
}

func TestStore_LoadHolidays(t *testing.T) {
	store := newTestStore(t)
	writeDataFile(t, store, "holidays.txt", `2026-12-25
2026-12-26
`)

	holidays, err := store.LoadHolidays()

	require.NoError(t, err)
	assert.Len(t, holidays, 2)
	assert.True(t, holidays.Contains(utcDay(2026, time.December, 25)))
}

func TestStore_LoadHolidays_SkipsMalformedLines(t *testing.T) {
	store := newTestStore(t)
	writeDataFile(t, store, "holidays.txt", `2026-12-25
25/12/2026
not a date
2026-01-01
`)

	holidays, err := store.LoadHolidays()

	require.NoError(t, err)
	assert.Len(t, holidays, 2)
	assert.True(t, holidays.Contains(utcDay(2026, time.December, 25)))
	assert.True(t, holidays.Contains(utcDay(2026, time.January, 1)))
}

func TestStore_LoadHolidays_MissingFileMeansEmpty(t *testing.T) {
	store := newTestStore(t)

	holidays, err := store.LoadHolidays()

	require.NoError(t, err)
	assert.Empty(t, holidays)
}

func TestStore_LoadPatchingDates(t *testing.T) {
	store := newTestStore(t)
	writeDataFile(t, store, "patching.txt", "2026-03-10\n")

	patching, err := store.LoadPatchingDates()

	require.NoError(t, err)
	assert.True(t, patching.Contains(utcDay(2026, time.March, 10)))
}

func TestStore_LoadUnavailability(t *testing.T) {
	store := newTestStore(t)
	writeDataFile(t, store, "unavailability.csv", `Alice,2026-03-04
Alice, 2026-03-05
Bob,2026-04-01
`)

	index, err := store.LoadUnavailability()

	require.NoError(t, err)
	assert.Len(t, index, 2)
	assert.True(t, index[model.Member("Alice")].Contains(utcDay(2026, time.March, 4)))
	assert.True(t, index[model.Member("Alice")].Contains(utcDay(2026, time.March, 5)))
	assert.True(t, index[model.Member("Bob")].Contains(utcDay(2026, time.April, 1)))
}

func TestStore_LoadUnavailability_SkipsMalformedLines(t *testing.T) {
	store := newTestStore(t)
	writeDataFile(t, store, "unavailability.csv", `Alice,2026-03-04
missing-date-field
Bob,04/01/2026
,2026-05-01
`)

	index, err := store.LoadUnavailability()

	require.NoError(t, err)
	assert.Len(t, index, 1)
	assert.True(t, index[model.Member("Alice")].Contains(utcDay(2026, time.March, 4)))
}

func TestStore_LoadUnavailability_MissingFileMeansEmpty(t *testing.T) {
	store := newTestStore(t)

	index, err := store.LoadUnavailability()

	require.NoError(t, err)
	assert.Empty(t, index)
}
