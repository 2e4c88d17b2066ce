package i18n_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tldr/pkg/i18n"
)

func TestFillPlaceholders(t *testing.T) {
	t.Parallel()

	arg := func(i int) string { return "<" + strconv.Itoa(i) + ">" }

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"no placeholders", "Hello!", "Hello!"},
		{"sequential", "{} of {}", "<0> of <1>"},
		{"indexed", "{1} before {0}", "<1> before <0>"},
		{"mixed", "{} and {0} and {}", "<0> and <0> and <1>"},
		{"unknown braces kept", "{name} {}", "{name} <0>"},
		{"negative index kept", "{-1}", "{-1}"},
		{"unterminated", "tail {", "tail {"},
		{"unicode around", "Вы соснули {} раз.", "Вы соснули <0> раз."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, i18n.FillPlaceholders(tt.template, arg))
		})
	}
}
