package i18n_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tldr/pkg/i18n"
)

func testLibrary(t *testing.T) i18n.Library {
	t.Helper()

	en := i18n.Dictionary{
		DisplayName: "English",
		LanguageTag: "en-us",
		Messages: i18n.Messages{
			"Hello!": i18n.Static("Hello!"),
			"Empty":  i18n.Static(""),
			"You sucked {} times.": i18n.PluralMessage(i18n.FormatTable{
				"0":     "You didn't suck.",
				"1":     "You sucked once.",
				"other": "You sucked {} times.",
			}, i18n.Cardinal),
			"Dummy": i18n.Dynamic(func(args *i18n.Args) any {
				return args.Next().String() + "|" + args.Next().String()
			}),
			"Total: {}": i18n.Dynamic(func(args *i18n.Args) any {
				return "Total: " + args.At(0).String()
			}),
			"{} and {}": i18n.Dynamic(func(args *i18n.Args) any {
				return args.At(1).String() + " and " + args.At(0).String()
			}),
		},
	}
	ru := i18n.Dictionary{
		DisplayName: "Русский",
		LanguageTag: "ru-ru",
		Messages: i18n.Messages{
			"Hello!": i18n.Static("Здрасьте!"),
			"You sucked {} times.": i18n.PluralMessage(i18n.FormatTable{
				"few":   "Вы соснули {} раза.",
				"other": "Вы соснули {} раз.",
			}, i18n.Cardinal),
		},
	}

	lib, err := i18n.NewLibrary(i18n.WithLocale("en", en), i18n.WithLocale("ru", ru))
	require.NoError(t, err)
	return lib
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestTranslator(t *testing.T) {
	t.Parallel()

	lib := testLibrary(t)
	en := i18n.NewTranslator(i18n.State{Locale: "en", Library: lib}, i18n.WithLogger(quietLogger()))
	ru := i18n.NewTranslator(i18n.State{Locale: "ru", Library: lib}, i18n.WithLogger(quietLogger()))

	t.Run("static message", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Hello!", en.T("Hello!"))
		require.Equal(t, "Здрасьте!", ru.T("Hello!"))
	})

	t.Run("empty static message is found", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "", en.T("Empty"))
	})

	t.Run("plural message", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "You didn't suck.", en.T("You sucked {} times.", 0))
		require.Equal(t, "You sucked once.", en.T("You sucked {} times.", 1))
		require.Equal(t, "You sucked 1,000 times.", en.T("You sucked {} times.", 1000))
		require.Equal(t, "Вы соснули 3 раза.", ru.T("You sucked {} times.", 3))
		require.Equal(t, "Вы соснули 5 раз.", ru.T("You sucked {} times.", 5))
	})

	t.Run("identifier ignores values", func(t *testing.T) {
		t.Parallel()
		require.Equal(t,
			en.Template([]string{"You sucked ", " times."}, 7),
			en.T("You sucked {} times.", 7),
		)
	})

	t.Run("dynamic message gets dummy arguments", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "NaN|NaN", en.T("Dummy"))
	})

	t.Run("dynamic message reorders arguments", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "b and a", en.T("{} and {}", "a", "b"))
	})

	t.Run("explicit format options", func(t *testing.T) {
		t.Parallel()
		out := en.T("Total: {}", i18n.With(5, i18n.FormatOptions{
			Number:   i18n.StyleCurrency,
			Currency: "USD",
		}))
		require.Equal(t, "Total: $5.00", out)
	})

	t.Run("missing message interleaves values", func(t *testing.T) {
		t.Parallel()
		out := en.T("Hello {}, you have {} items", "Bob", 3)
		require.Equal(t, "Hello Bob, you have 3 items", out)
	})

	t.Run("S renders strings", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Hello!", en.S("Hello!"))
	})

	t.Run("missing message renders named string arguments", func(t *testing.T) {
		t.Parallel()
		type label string
		require.Equal(t, "Hi Bob!", en.S("Hi {}!", label("Bob")))
	})

	t.Run("formats with the dictionary tag", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "en-us", en.Dictionary().LanguageTag)
		require.Equal(t, "1\u00a0234,5", ru.Format(1234.5, i18n.FormatOptions{}).String())
	})
}

func TestTranslatorMissingMessage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	var (
		mu     sync.Mutex
		misses []string
	)
	tr := i18n.NewTranslator(
		i18n.State{Locale: "en", Library: testLibrary(t)},
		i18n.WithLogger(logger),
		i18n.WithContext(context.Background()),
		i18n.WithMissingMessageHandler(func(locale, id string) {
			mu.Lock()
			defer mu.Unlock()
			misses = append(misses, locale+":"+id)
		}),
	)

	require.Equal(t, "Unknown 1", tr.T("Unknown {}", 1))
	require.Equal(t, []string{"en:Unknown {}"}, misses)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "missing message", entry["msg"])
	assert.Equal(t, "en", entry["locale"])
	assert.Equal(t, "Unknown {}", entry["message_id"])
}

func TestTranslatorFallbackDictionary(t *testing.T) {
	t.Parallel()

	tr := i18n.NewTranslator(i18n.State{Locale: "de", Library: testLibrary(t)}, i18n.WithLogger(quietLogger()))

	require.Equal(t, "de", tr.Locale())
	require.Equal(t, "de", tr.Dictionary().DisplayName)
	require.Equal(t, "de", tr.Dictionary().LanguageTag)
	require.Equal(t, "Hello!", tr.T("Hello!"))
	require.Equal(t, "x 1.234,5", tr.T("x {}", 1234.5))
}

func TestTranslate(t *testing.T) {
	t.Parallel()

	tmpl := i18n.Translate(i18n.State{Locale: "ru", Library: testLibrary(t)})
	require.Equal(t, "Здрасьте!", tmpl([]string{"Hello!"}))
}

func TestMessageID(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Hello!", i18n.MessageID([]string{"Hello!"}))
	require.Equal(t, "You have {} items", i18n.MessageID([]string{"You have ", " items"}))
	require.Equal(t, "{}", i18n.MessageID([]string{"", ""}))
}
