package i18n_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tldr/pkg/i18n"
)

func TestPluralCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		locale string
		n      float64
		typ    i18n.PluralType
		want   string
	}{
		{"en", 1, i18n.Cardinal, i18n.PluralOne},
		{"en", 0, i18n.Cardinal, i18n.PluralOther},
		{"en", 2, i18n.Cardinal, i18n.PluralOther},
		{"en", 1.5, i18n.Cardinal, i18n.PluralOther},
		{"en-us", -1, i18n.Cardinal, i18n.PluralOne},
		{"ru", 1, i18n.Cardinal, i18n.PluralOne},
		{"ru", 3, i18n.Cardinal, i18n.PluralFew},
		{"ru", 5, i18n.Cardinal, i18n.PluralMany},
		{"ru", 11, i18n.Cardinal, i18n.PluralMany},
		{"ru", 21, i18n.Cardinal, i18n.PluralOne},
		{"ru_RU", 22, i18n.Cardinal, i18n.PluralFew},
		{"ru", 1.5, i18n.Cardinal, i18n.PluralOther},
		{"ja", 1, i18n.Cardinal, i18n.PluralOther},
		{"en", 1, i18n.Ordinal, i18n.PluralOne},
		{"en", 2, i18n.Ordinal, i18n.PluralTwo},
		{"en", 3, i18n.Ordinal, i18n.PluralFew},
		{"en", 4, i18n.Ordinal, i18n.PluralOther},
		{"en", 11, i18n.Ordinal, i18n.PluralOther},
		{"en", 22, i18n.Ordinal, i18n.PluralTwo},
		{"en", math.NaN(), i18n.Cardinal, i18n.PluralOther},
		{"en", math.Inf(1), i18n.Cardinal, i18n.PluralOther},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, i18n.PluralCategory(tt.locale, tt.n, tt.typ), "%s %v %s", tt.locale, tt.n, tt.typ)
	}
}

func TestIsPluralCategory(t *testing.T) {
	t.Parallel()

	for _, c := range i18n.PluralCategories {
		require.True(t, i18n.IsPluralCategory(c))
	}
	require.False(t, i18n.IsPluralCategory("plural"))
	require.False(t, i18n.IsPluralCategory("1"))
}
