package i18n

import (
	"fmt"
	"maps"
	"slices"
)

// Dictionary is the set of messages of one language.
type Dictionary struct {
	DisplayName string
	LanguageTag string
	Messages    Messages
}

// NewDictionary validates and builds a dictionary. The messages map is copied.
func NewDictionary(displayName, languageTag string, messages Messages) (Dictionary, error) {
	if displayName == "" {
		return Dictionary{}, ErrEmptyDisplayName
	}
	if languageTag == "" {
		return Dictionary{}, ErrEmptyLanguageTag
	}

	return Dictionary{
		DisplayName: displayName,
		LanguageTag: languageTag,
		Messages:    maps.Clone(messages),
	}, nil
}

// Lookup returns the message for id. Presence decides, not the message value.
func (d Dictionary) Lookup(id string) (Message, bool) {
	m, ok := d.Messages[id]
	return m, ok
}

// Extend returns a dictionary with the messages of other layered over d.
// Display name and tag come from other unless empty.
func (d Dictionary) Extend(other Dictionary) Dictionary {
	out := Dictionary{
		DisplayName: d.DisplayName,
		LanguageTag: d.LanguageTag,
		Messages:    make(Messages, len(d.Messages)+len(other.Messages)),
	}
	if other.DisplayName != "" {
		out.DisplayName = other.DisplayName
	}
	if other.LanguageTag != "" {
		out.LanguageTag = other.LanguageTag
	}
	maps.Copy(out.Messages, d.Messages)
	maps.Copy(out.Messages, other.Messages)
	return out
}

// Library maps locale identifiers to dictionaries.
type Library map[string]Dictionary

// Tags returns the library keys sorted.
func (l Library) Tags() []string {
	return slices.Sorted(maps.Keys(l))
}

// Merge returns a new library with the dictionaries of update replacing
// those of l under the same key. Neither input is modified.
func (l Library) Merge(update Library) Library {
	out := make(Library, len(l)+len(update))
	maps.Copy(out, l)
	maps.Copy(out, update)
	return out
}

// LibraryOption configures library construction.
type LibraryOption func(*libraryBuilder) error

type libraryBuilder struct {
	dictionaries Library
	extends      map[string]string
}

func (b *libraryBuilder) add(key string, d Dictionary, parent string) {
	if existing, ok := b.dictionaries[key]; ok {
		d = existing.Extend(d)
	}
	b.dictionaries[key] = d
	if parent != "" {
		b.extends[key] = parent
	}
}

// NewLibrary builds a library from options. Dictionaries declaring a parent
// are layered over it once every option has been applied.
func NewLibrary(opts ...LibraryOption) (Library, error) {
	b := &libraryBuilder{
		dictionaries: make(Library),
		extends:      make(map[string]string),
	}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	resolved := make(Library, len(b.dictionaries))
	for _, key := range b.dictionaries.Tags() {
		if err := b.resolve(key, resolved, map[string]bool{}); err != nil {
			return nil, err
		}
	}

	return resolved, nil
}

func (b *libraryBuilder) resolve(key string, resolved Library, visiting map[string]bool) error {
	if _, ok := resolved[key]; ok {
		return nil
	}
	if visiting[key] {
		return fmt.Errorf("%w: %q", ErrExtendsCycle, key)
	}
	visiting[key] = true

	d := b.dictionaries[key]
	if parent, ok := b.extends[key]; ok {
		if _, exists := b.dictionaries[parent]; !exists {
			return fmt.Errorf("%w: %q extends %q", ErrUnknownDictionary, key, parent)
		}
		if err := b.resolve(parent, resolved, visiting); err != nil {
			return err
		}
		d = resolved[parent].Extend(d)
	}

	resolved[key] = d
	return nil
}

// WithDictionary adds a dictionary under its language tag.
func WithDictionary(d Dictionary) LibraryOption {
	return WithLocale(d.LanguageTag, d)
}

// WithLocale adds a dictionary under the locale identifier id, which may
// differ from its language tag (e.g. "en" for an "en-us" dictionary).
// Dictionaries added twice under one id are merged.
func WithLocale(id string, d Dictionary) LibraryOption {
	return func(b *libraryBuilder) error {
		if d.DisplayName == "" {
			return ErrEmptyDisplayName
		}
		if d.LanguageTag == "" {
			return ErrEmptyLanguageTag
		}
		if id == "" {
			id = d.LanguageTag
		}
		b.add(id, d, "")
		return nil
	}
}

// WithExtendedLocale adds a dictionary under id layered over the one
// registered under parent.
func WithExtendedLocale(id, parent string, d Dictionary) LibraryOption {
	return func(b *libraryBuilder) error {
		if err := WithLocale(id, d)(b); err != nil {
			return err
		}
		if id == "" {
			id = d.LanguageTag
		}
		b.extends[id] = parent
		return nil
	}
}
