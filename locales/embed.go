// Package locales embeds the bundled demo dictionaries.
package locales

import "embed"

// FS holds the dictionary files at its root.
//
//go:embed *.yaml *.toml
var FS embed.FS
