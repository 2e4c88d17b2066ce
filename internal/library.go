package internal

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/dmitrymomot/tldr/locales"
	"github.com/dmitrymomot/tldr/pkg/i18n"
)

// LoadLibrary loads the bundled dictionaries and, when dir is set, the
// dictionaries found there. Files for a bundled locale extend it.
func LoadLibrary(dir string) (i18n.Library, error) {
	sources := []fs.FS{locales.FS}
	if dir != "" {
		sources = append(sources, os.DirFS(dir))
	}
	return loadLibrary(sources...)
}

func loadLibrary(sources ...fs.FS) (i18n.Library, error) {
	opts := make([]i18n.LibraryOption, 0, len(sources)*3)
	for _, src := range sources {
		opts = append(opts,
			i18n.WithYAMLDir(src),
			i18n.WithJSONDir(src),
			i18n.WithTOMLDir(src),
		)
	}

	lib, err := i18n.NewLibrary(opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadLocales, err)
	}
	if len(lib) == 0 {
		return nil, ErrNoLocales
	}
	return lib, nil
}

// ReloadLocales returns a reload function merging freshly loaded
// dictionaries into store.
func ReloadLocales(store *i18n.Store, dir string) func(context.Context) error {
	return func(context.Context) error {
		lib, err := LoadLibrary(dir)
		if err != nil {
			return err
		}
		store.AddLocales(lib)
		return nil
	}
}
