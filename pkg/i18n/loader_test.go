package i18n_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tldr/pkg/i18n"
)

const enYAML = `
name: English
tag: en-us
messages:
  "Hello!": "Hello!"
  "Goodbye!": "Goodbye!"
  "You sucked {} times.":
    "0": "You didn't suck."
    "1": "You sucked once."
    "2": "You sucked twice."
    other: "You sucked {} times."
  "Finished {}":
    plural: ordinal
    one: "Finished {}st"
    two: "Finished {}nd"
    few: "Finished {}rd"
    other: "Finished {}th"
`

const ruJSON = `{
  "name": "Русский",
  "tag": "ru-ru",
  "extends": "en",
  "messages": {
    "Hello!": "Здрасьте!",
    "You sucked {} times.": {
      "0": "Вы не соснули.",
      "1": "Вы соснули разулю.",
      "2": "Вы соснули дважды.",
      "few": "Вы соснули {} раза.",
      "other": "Вы соснули {} раз."
    }
  }
}`

const jaTOML = `
name = "日本語"
tag = "ja-jp"

[messages]
"Hello!" = "こんにちは！"

[messages."You sucked {} times."]
0 = "一度も吸っていません。"
other = "{}回吸いました。"
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"en.yaml":        {Data: []byte(enYAML)},
		"ru.json":        {Data: []byte(ruJSON)},
		"ja.toml":        {Data: []byte(jaTOML)},
		"extra/en.yml":   {Data: []byte("messages:\n  \"Extra\": \"extra\"\n")},
		"README.md":      {Data: []byte("ignored")},
		"nested/skip.go": {Data: []byte("package skip")},
	}
}

func TestLoadDictionaries(t *testing.T) {
	t.Parallel()

	lib, err := i18n.NewLibrary(
		i18n.WithYAMLDir(testFS()),
		i18n.WithJSONDir(testFS()),
		i18n.WithTOMLDir(testFS()),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"en", "ja", "ru"}, lib.Tags())

	t.Run("metadata", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "English", lib["en"].DisplayName)
		require.Equal(t, "en-us", lib["en"].LanguageTag)
		require.Equal(t, "ru-ru", lib["ru"].LanguageTag)
		require.Equal(t, "日本語", lib["ja"].DisplayName)
	})

	t.Run("files sharing a locale are merged", func(t *testing.T) {
		t.Parallel()
		m, ok := lib["en"].Lookup("Extra")
		require.True(t, ok)
		require.Equal(t, "extra", m.Value())
		require.Equal(t, "English", lib["en"].DisplayName)
	})

	t.Run("extends inherits parent messages", func(t *testing.T) {
		t.Parallel()
		m, ok := lib["ru"].Lookup("Goodbye!")
		require.True(t, ok)
		require.Equal(t, "Goodbye!", m.Value())

		m, _ = lib["ru"].Lookup("Hello!")
		require.Equal(t, "Здрасьте!", m.Value())
	})

	t.Run("plural tables", func(t *testing.T) {
		t.Parallel()
		tr := i18n.NewTranslator(i18n.State{Locale: "ru", Library: lib})

		require.Equal(t, "Вы не соснули.", tr.T("You sucked {} times.", 0))
		require.Equal(t, "Вы соснули разулю.", tr.T("You sucked {} times.", 1))
		require.Equal(t, "Вы соснули дважды.", tr.T("You sucked {} times.", 2))
		require.Equal(t, "Вы соснули 3 раза.", tr.T("You sucked {} times.", 3))
		require.Equal(t, "Вы соснули 5 раз.", tr.T("You sucked {} times.", 5))
		require.Equal(t, "Вы соснули 21 раз.", tr.T("You sucked {} times.", 21))
	})

	t.Run("ordinal tables", func(t *testing.T) {
		t.Parallel()
		tr := i18n.NewTranslator(i18n.State{Locale: "en", Library: lib})

		require.Equal(t, "Finished 1st", tr.T("Finished {}", 1))
		require.Equal(t, "Finished 22nd", tr.T("Finished {}", 22))
		require.Equal(t, "Finished 13th", tr.T("Finished {}", 13))
	})

	t.Run("toml tables with bare numeric keys", func(t *testing.T) {
		t.Parallel()
		tr := i18n.NewTranslator(i18n.State{Locale: "ja", Library: lib})

		require.Equal(t, "一度も吸っていません。", tr.T("You sucked {} times.", 0))
		require.Equal(t, "7回吸いました。", tr.T("You sucked {} times.", 7))
	})
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		file string
		data string
		opt  func(fstest.MapFS) i18n.LibraryOption
		err  error
	}{
		{
			name: "table without other",
			file: "en.yaml",
			data: "messages:\n  x:\n    one: \"x\"\n",
			opt:  func(fs fstest.MapFS) i18n.LibraryOption { return i18n.WithYAMLDir(fs) },
			err:  i18n.ErrMissingOther,
		},
		{
			name: "bad plural type",
			file: "en.json",
			data: `{"messages": {"x": {"plural": "dual", "other": "x"}}}`,
			opt:  func(fs fstest.MapFS) i18n.LibraryOption { return i18n.WithJSONDir(fs) },
			err:  i18n.ErrInvalidPluralType,
		},
		{
			name: "non string case",
			file: "en.json",
			data: `{"messages": {"x": {"one": 1, "other": "x"}}}`,
			opt:  func(fs fstest.MapFS) i18n.LibraryOption { return i18n.WithJSONDir(fs) },
			err:  i18n.ErrInvalidMessage,
		},
		{
			name: "broken syntax",
			file: "en.toml",
			data: "name = ",
			opt:  func(fs fstest.MapFS) i18n.LibraryOption { return i18n.WithTOMLDir(fs) },
			err:  i18n.ErrInvalidFile,
		},
		{
			name: "unknown parent",
			file: "ru.yaml",
			data: "extends: de\nmessages: {}\n",
			opt:  func(fs fstest.MapFS) i18n.LibraryOption { return i18n.WithYAMLDir(fs) },
			err:  i18n.ErrUnknownDictionary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fs := fstest.MapFS{tt.file: {Data: []byte(tt.data)}}
			_, err := i18n.NewLibrary(tt.opt(fs))
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	lib, err := i18n.NewLibrary(i18n.WithYAMLDir(fstest.MapFS{
		"de.yaml": {Data: []byte("messages:\n  \"Hello!\": \"Hallo!\"\n")},
	}))
	require.NoError(t, err)

	d := lib["de"]
	require.Equal(t, "de", d.LanguageTag)
	require.Equal(t, "de", d.DisplayName)
}
