package i18n_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tldr/pkg/i18n"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDiffDays(t *testing.T) {
	t.Parallel()

	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	t.Run("spring forward day counts as one", func(t *testing.T) {
		t.Parallel()
		before := time.Date(2021, time.March, 14, 0, 0, 0, 0, ny)
		after := time.Date(2021, time.March, 15, 0, 0, 0, 0, ny)

		require.Equal(t, 23*time.Hour, after.Sub(before))
		require.Equal(t, 1, i18n.DiffDays(after, before))
		require.Equal(t, -1, i18n.DiffDays(before, after))
	})

	t.Run("fall back day counts as one", func(t *testing.T) {
		t.Parallel()
		before := time.Date(2021, time.November, 7, 0, 0, 0, 0, ny)
		after := time.Date(2021, time.November, 8, 0, 0, 0, 0, ny)

		require.Equal(t, 25*time.Hour, after.Sub(before))
		require.Equal(t, 1, i18n.DiffDays(after, before))
	})

	t.Run("partial days are not counted", func(t *testing.T) {
		t.Parallel()
		a := time.Date(2021, time.May, 3, 10, 0, 0, 0, time.UTC)
		b := time.Date(2021, time.May, 1, 12, 0, 0, 0, time.UTC)
		require.Equal(t, 1, i18n.DiffDays(a, b))
	})

	t.Run("same instant is zero", func(t *testing.T) {
		t.Parallel()
		now := time.Now()
		require.Equal(t, 0, i18n.DiffDays(now, now))
	})
}

func TestDiffMonths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"month end overshoot backwards", date(2021, time.January, 31), date(2021, time.February, 28), 0},
		{"month end overshoot forwards", date(2021, time.February, 28), date(2021, time.January, 31), 0},
		{"whole months", date(2021, time.March, 15), date(2021, time.January, 10), 2},
		{"across years", date(2022, time.February, 1), date(2021, time.November, 1), 3},
		{"negative", date(2021, time.January, 10), date(2021, time.March, 15), -2},
		{"same day", date(2021, time.March, 15), date(2021, time.March, 15), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, i18n.DiffMonths(tt.a, tt.b))
		})
	}
}

func TestDiffYears(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, i18n.DiffYears(date(2021, time.June, 1), date(2020, time.July, 1)))
	require.Equal(t, 1, i18n.DiffYears(date(2021, time.July, 1), date(2020, time.July, 1)))
	require.Equal(t, -3, i18n.DiffYears(date(2018, time.January, 1), date(2021, time.December, 31)))
	require.Equal(t, 0, i18n.DiffYears(date(2021, time.February, 28), date(2020, time.February, 29)))
}

func TestFixedUnitDiffs(t *testing.T) {
	t.Parallel()

	b := time.Date(2021, time.June, 1, 12, 0, 0, 0, time.UTC)

	require.Equal(t, -1, i18n.DiffHours(b.Add(-90*time.Minute), b))
	require.Equal(t, 90, i18n.DiffMinutes(b.Add(90*time.Minute), b))
	require.Equal(t, 59, i18n.DiffSeconds(b.Add(59999*time.Millisecond), b))
	require.Equal(t, int64(1500), i18n.DiffMilliseconds(b.Add(1500*time.Millisecond), b))
	require.Equal(t, 2, i18n.DiffWeeks(b.AddDate(0, 0, 15), b))
	require.Equal(t, 2, i18n.DiffQuarters(b.AddDate(0, 7, 0), b))
}

func TestNewDiffTable(t *testing.T) {
	t.Parallel()

	origin := time.Date(2021, time.June, 15, 12, 0, 0, 0, time.UTC)
	value := origin.AddDate(0, 0, -10)

	table := i18n.NewDiffTable(value, origin)

	require.Len(t, table, len(i18n.Units))
	require.Equal(t, 0, table[i18n.UnitYear])
	require.Equal(t, 0, table[i18n.UnitQuarter])
	require.Equal(t, 0, table[i18n.UnitMonth])
	require.Equal(t, -1, table[i18n.UnitWeek])
	require.Equal(t, -10, table[i18n.UnitDay])
	require.Equal(t, -240, table[i18n.UnitHour])
	require.Equal(t, -240*60, table[i18n.UnitMinute])
	require.Equal(t, -240*3600, table[i18n.UnitSecond])
}

func TestDiffUnknownUnit(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, i18n.Diff(i18n.Unit("fortnight"), time.Now(), time.Time{}))
	require.False(t, i18n.Unit("fortnight").Valid())
	require.False(t, i18n.UnitAuto.Valid())
	require.True(t, i18n.UnitQuarter.Valid())
}
