package i18n_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tldr/pkg/i18n"
)

func TestReducers(t *testing.T) {
	t.Parallel()

	en := i18n.Dictionary{DisplayName: "English", LanguageTag: "en-us"}
	ru := i18n.Dictionary{DisplayName: "Русский", LanguageTag: "ru-ru"}
	state := i18n.State{Locale: "en", Library: i18n.Library{"en": en}}

	switched := i18n.SetLocale(state, "ru")
	require.Equal(t, "ru", switched.Locale)
	require.Equal(t, "en", state.Locale)

	added := i18n.AddLocales(state, i18n.Library{"ru": ru})
	require.Len(t, added.Library, 2)
	require.Len(t, state.Library, 1)
	require.Equal(t, "en", added.Locale)
}

func TestStore(t *testing.T) {
	t.Parallel()

	en := i18n.Dictionary{
		DisplayName: "English",
		LanguageTag: "en-us",
		Messages:    i18n.Messages{"Hello!": i18n.Static("Hello!")},
	}
	ru := i18n.Dictionary{
		DisplayName: "Русский",
		LanguageTag: "ru-ru",
		Messages:    i18n.Messages{"Hello!": i18n.Static("Здрасьте!")},
	}

	t.Run("notifies in subscription order", func(t *testing.T) {
		t.Parallel()
		s := i18n.NewStore(i18n.State{Locale: "en", Library: i18n.Library{"en": en}})

		var calls []string
		s.Subscribe(func(st i18n.State) { calls = append(calls, "a:"+st.Locale) })
		s.Subscribe(func(st i18n.State) { calls = append(calls, "b:"+st.Locale) })

		s.SetLocale("ru")
		require.Equal(t, []string{"a:ru", "b:ru"}, calls)
	})

	t.Run("unsubscribe stops notifications", func(t *testing.T) {
		t.Parallel()
		s := i18n.NewStore(i18n.State{Locale: "en"})

		count := 0
		unsubscribe := s.Subscribe(func(i18n.State) { count++ })
		s.SetLocale("ru")
		unsubscribe()
		unsubscribe()
		s.SetLocale("en")

		require.Equal(t, 1, count)
	})

	t.Run("previous states are not mutated", func(t *testing.T) {
		t.Parallel()
		s := i18n.NewStore(i18n.State{Locale: "en", Library: i18n.Library{"en": en}})

		before := s.State()
		after := s.AddLocales(i18n.Library{"ru": ru})

		require.Len(t, before.Library, 1)
		require.Len(t, after.Library, 2)
		require.Equal(t, after, s.State())
	})

	t.Run("translators follow the state", func(t *testing.T) {
		t.Parallel()
		s := i18n.NewStore(i18n.State{Locale: "en", Library: i18n.Library{"en": en, "ru": ru}})

		require.Equal(t, "Hello!", s.Translator().T("Hello!"))
		require.Equal(t, "Здрасьте!", s.TranslatorFor("ru").T("Hello!"))
		require.Equal(t, "en", s.State().Locale)

		s.SetLocale("ru")
		require.Equal(t, "Здрасьте!", s.Translator().T("Hello!"))
	})

	t.Run("concurrent dispatch", func(t *testing.T) {
		t.Parallel()
		s := i18n.NewStore(i18n.State{Locale: "en"})

		var (
			mu    sync.Mutex
			count int
		)
		s.Subscribe(func(i18n.State) {
			mu.Lock()
			count++
			mu.Unlock()
		})

		var wg sync.WaitGroup
		for i := range 50 {
			wg.Go(func() {
				if i%2 == 0 {
					s.SetLocale("ru")
				} else {
					_ = s.Translator().Locale()
				}
			})
		}
		wg.Wait()

		require.Equal(t, 25, count)
	})
}
