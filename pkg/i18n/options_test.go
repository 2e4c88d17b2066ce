package i18n_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tldr/pkg/i18n"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("currency implies currency style", func(t *testing.T) {
		t.Parallel()
		o := i18n.Normalize(i18n.FormatOptions{Currency: "USD"})
		require.Equal(t, i18n.StyleCurrency, o.Number)
	})

	t.Run("unit implies unit style and wins over currency", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, i18n.StyleUnit, i18n.Normalize(i18n.FormatOptions{Unit: "meter"}).Number)
		require.Equal(t, i18n.StyleUnit, i18n.Normalize(i18n.FormatOptions{Unit: "meter", Currency: "USD"}).Number)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		o := i18n.Normalize(i18n.FormatOptions{})
		require.Equal(t, i18n.MatcherBestFit, o.LocaleMatcher)
		require.Equal(t, i18n.UnitAuto, o.RelativeTimeUnit)
		require.Equal(t, i18n.UnitDay, o.UpperUnit)
		require.Equal(t, i18n.UnitDay, o.LowerUnit)
		require.Zero(t, *o.UpperValue)
		require.Zero(t, *o.LowerValue)
		require.True(t, o.Origin.IsZero())
	})

	t.Run("explicit locale matcher is kept", func(t *testing.T) {
		t.Parallel()
		o := i18n.Normalize(i18n.FormatOptions{LocaleMatcher: i18n.MatcherLookup})
		require.Equal(t, i18n.MatcherLookup, o.LocaleMatcher)
	})

	t.Run("maximum value is symmetric", func(t *testing.T) {
		t.Parallel()
		o := i18n.Normalize(i18n.FormatOptions{MaximumValue: i18n.Ptr(6.0), MaximumUnit: i18n.UnitWeek})
		require.Equal(t, 6.0, *o.UpperValue)
		require.Equal(t, -6.0, *o.LowerValue)
		require.Equal(t, i18n.UnitWeek, o.UpperUnit)
		require.Equal(t, i18n.UnitWeek, o.LowerUnit)
	})

	t.Run("larger explicit bounds win", func(t *testing.T) {
		t.Parallel()
		o := i18n.Normalize(i18n.FormatOptions{
			MaximumValue: i18n.Ptr(6.0),
			UpperValue:   i18n.Ptr(10.0),
			LowerValue:   i18n.Ptr(-2.0),
			UpperUnit:    i18n.UnitHour,
		})
		require.Equal(t, 10.0, *o.UpperValue)
		require.Equal(t, -6.0, *o.LowerValue)
		require.Equal(t, i18n.UnitHour, o.UpperUnit)
		require.Equal(t, i18n.UnitDay, o.LowerUnit)
	})

	t.Run("explicit relative unit removes bounds and sets origin", func(t *testing.T) {
		t.Parallel()
		before := time.Now()
		o := i18n.Normalize(i18n.FormatOptions{RelativeTimeUnit: i18n.UnitHour, MaximumValue: i18n.Ptr(1.0)})
		require.True(t, math.IsInf(*o.UpperValue, 1))
		require.True(t, math.IsInf(*o.LowerValue, -1))
		require.False(t, o.Origin.Before(before))
	})

	t.Run("explicit origin is kept", func(t *testing.T) {
		t.Parallel()
		origin := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
		o := i18n.Normalize(i18n.FormatOptions{RelativeTimeUnit: i18n.UnitDay, Origin: origin})
		require.Equal(t, origin, o.Origin)
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		inputs := []i18n.FormatOptions{
			{},
			{Currency: "EUR", CurrencySign: "accounting"},
			{Unit: "kilometer", UnitDisplay: "long"},
			{MaximumValue: i18n.Ptr(3.0), MaximumUnit: i18n.UnitMonth},
			{UpperValue: i18n.Ptr(2.0), LowerValue: i18n.Ptr(-5.0), LowerUnit: i18n.UnitHour},
			{RelativeTimeUnit: i18n.UnitMinute},
			{Origin: time.Now(), MinimumFractionDigits: i18n.Ptr(2), UseGrouping: i18n.Ptr(false)},
		}
		for _, in := range inputs {
			once := i18n.Normalize(in)
			require.Equal(t, once, i18n.Normalize(once))
		}
	})
}
