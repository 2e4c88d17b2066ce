package i18n_test

import (
	"testing"

	lcurrency "github.com/go-playground/locales/currency"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tldr/pkg/i18n"
)

func TestLocaleCurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code string
		want lcurrency.Type
	}{
		{"ADP", lcurrency.ADP},
		{"EUR", lcurrency.EUR},
		{"RUB", lcurrency.RUB},
		{"USD", lcurrency.USD},
		{"ZWR", lcurrency.ZWR},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			t.Parallel()
			got, ok := i18n.LocaleCurrency(tt.code)
			require.True(t, ok)
			require.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown code", func(t *testing.T) {
		t.Parallel()
		_, ok := i18n.LocaleCurrency("XYZ")
		require.False(t, ok)
	})
}
