package i18n

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// document is the on-disk form of a dictionary.
//
//	locale: ru            # library key, defaults to the file name
//	name: Русский         # display name, defaults to the tag
//	tag: ru-ru            # language tag, defaults to the locale
//	extends: en           # optional parent locale
//	messages:
//	  "Hello!": "Здравствуйте!"
//	  "You sucked {} times.":
//	    "0": "Вы не соснули."
//	    few: "Вы соснули {} раза."
//	    other: "Вы соснули {} раз."
type document struct {
	Locale   string         `json:"locale" yaml:"locale" toml:"locale"`
	Name     string         `json:"name" yaml:"name" toml:"name"`
	Tag      string         `json:"tag" yaml:"tag" toml:"tag"`
	Extends  string         `json:"extends" yaml:"extends" toml:"extends"`
	Messages map[string]any `json:"messages" yaml:"messages" toml:"messages"`
}

// WithJSONDir returns a LibraryOption that loads every *.json dictionary in fsys.
//
// Example structure:
//
//	en.json
//	ru.json
//	extra/ru.json   // merged into "ru"
func WithJSONDir(fsys fs.FS) LibraryOption {
	return func(b *libraryBuilder) error {
		return loadDir(b, fsys, []string{".json"}, json.Unmarshal)
	}
}

// WithYAMLDir returns a LibraryOption that loads every *.yaml and *.yml
// dictionary in fsys.
func WithYAMLDir(fsys fs.FS) LibraryOption {
	return func(b *libraryBuilder) error {
		return loadDir(b, fsys, []string{".yaml", ".yml"}, yaml.Unmarshal)
	}
}

// WithTOMLDir returns a LibraryOption that loads every *.toml dictionary in fsys.
func WithTOMLDir(fsys fs.FS) LibraryOption {
	return func(b *libraryBuilder) error {
		return loadDir(b, fsys, []string{".toml"}, toml.Unmarshal)
	}
}

func loadDir(b *libraryBuilder, fsys fs.FS, exts []string, unmarshal func([]byte, any) error) error {
	return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		// Case-insensitive so .YAML and .yaml both match
		ext := strings.ToLower(path.Ext(filePath))
		matches := false
		for _, e := range exts {
			if ext == e {
				matches = true
				break
			}
		}
		if !matches {
			return nil
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		var doc document
		if err := unmarshal(data, &doc); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
		}

		stem := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))
		id, dict, err := compileDocument(stem, doc)
		if err != nil {
			return fmt.Errorf("%w: %q: %w", ErrInvalidFile, filePath, err)
		}

		// Partial files keep the metadata of the locale they extend
		if existing, ok := b.dictionaries[id]; ok {
			if doc.Name == "" {
				dict.DisplayName = existing.DisplayName
			}
			if doc.Tag == "" {
				dict.LanguageTag = existing.LanguageTag
			}
		}

		b.add(id, dict, doc.Extends)
		return nil
	})
}

func compileDocument(stem string, doc document) (string, Dictionary, error) {
	id := cmp.Or(doc.Locale, stem)
	tag := cmp.Or(doc.Tag, id)
	name := cmp.Or(doc.Name, tag)

	messages := make(Messages, len(doc.Messages))
	for key, raw := range doc.Messages {
		m, err := compileMessage(key, raw)
		if err != nil {
			return "", Dictionary{}, err
		}
		messages[key] = m
	}

	dict, err := NewDictionary(name, tag, messages)
	return id, dict, err
}

// compileMessage turns a decoded value into a message. Strings and scalars
// are static, mappings are plural tables.
func compileMessage(id string, raw any) (Message, error) {
	switch v := raw.(type) {
	case map[string]any:
		return compileTable(id, v)
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, val := range v {
			m[fmt.Sprint(k)] = val
		}
		return compileTable(id, m)
	case []any:
		return Message{}, fmt.Errorf("%w: %q: lists are not supported", ErrInvalidMessage, id)
	}
	return Static(raw), nil
}

func compileTable(id string, raw map[string]any) (Message, error) {
	table := make(FormatTable, len(raw))
	typ := Cardinal

	for key, v := range raw {
		if key == "plural" {
			s, _ := v.(string)
			switch PluralType(s) {
			case Cardinal, Ordinal:
				typ = PluralType(s)
			default:
				return Message{}, fmt.Errorf("%w: %q: %v", ErrInvalidPluralType, id, v)
			}
			continue
		}

		s, ok := v.(string)
		if !ok {
			return Message{}, fmt.Errorf("%w: %q: case %q must be a string", ErrInvalidMessage, id, key)
		}
		table[key] = s
	}

	if _, ok := table[PluralOther]; !ok {
		return Message{}, fmt.Errorf("%w: %q", ErrMissingOther, id)
	}

	return PluralMessage(table, typ), nil
}

// PluralMessage returns a dynamic message selecting an entry of table by its
// first argument and filling "{}" and "{N}" placeholders with the formatted
// arguments. Non-string entries are returned as is.
func PluralMessage(table FormatTable, typ PluralType) Message {
	return Dynamic(func(args *Args) any {
		n := args.At(0)
		if typ == Ordinal && n.Options().Plural != Ordinal {
			opts := n.Options()
			opts.Plural = Ordinal
			n = n.Configure(opts)
		}

		s, ok := n.Select(table).(string)
		if !ok {
			return n.Select(table)
		}
		return FillPlaceholders(s, func(i int) string {
			return args.At(i).String()
		})
	})
}
