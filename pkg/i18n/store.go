package i18n

import (
	"slices"
	"sync"
)

// State is the active locale and the library of dictionaries.
type State struct {
	Locale  string
	Library Library
}

// SetLocale returns state with the active locale replaced.
func SetLocale(state State, locale string) State {
	state.Locale = locale
	return state
}

// AddLocales returns state with update merged into its library.
// The input library is left untouched.
func AddLocales(state State, update Library) State {
	state.Library = state.Library.Merge(update)
	return state
}

// Store holds a State and notifies watchers about changes.
// It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	state    State
	watchers []watcher
	nextID   int
	opts     []TranslatorOption
}

type watcher struct {
	id int
	fn func(State)
}

// NewStore returns a store holding initial. Options are applied to every
// translator built by the store.
func NewStore(initial State, opts ...TranslatorOption) *Store {
	if initial.Library == nil {
		initial.Library = Library{}
	}
	return &Store{state: initial, opts: opts}
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies a reducer to the state and notifies watchers.
func (s *Store) Dispatch(reduce func(State) State) State {
	s.mu.Lock()
	s.state = reduce(s.state)
	state := s.state
	watchers := slices.Clone(s.watchers)
	s.mu.Unlock()

	for _, w := range watchers {
		w.fn(state)
	}
	return state
}

// SetLocale switches the active locale.
func (s *Store) SetLocale(locale string) State {
	return s.Dispatch(func(st State) State { return SetLocale(st, locale) })
}

// AddLocales merges update into the library.
func (s *Store) AddLocales(update Library) State {
	return s.Dispatch(func(st State) State { return AddLocales(st, update) })
}

// Subscribe registers fn to run after every change, in subscription order.
// The returned function removes it.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.watchers = append(s.watchers, watcher{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.watchers = slices.DeleteFunc(s.watchers, func(w watcher) bool { return w.id == id })
		})
	}
}

// Translator returns a translator for the current state.
func (s *Store) Translator(opts ...TranslatorOption) *Translator {
	return NewTranslator(s.State(), append(slices.Clone(s.opts), opts...)...)
}

// TranslatorFor returns a translator for locale over the current library
// without changing the active locale.
func (s *Store) TranslatorFor(locale string, opts ...TranslatorOption) *Translator {
	return NewTranslator(SetLocale(s.State(), locale), append(slices.Clone(s.opts), opts...)...)
}
