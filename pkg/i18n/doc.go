// Package i18n provides template based message translation with locale aware
// formatting of numbers, currencies, units, dates and relative times.
//
// Messages are identified by the literal text of the template that requests
// them. The template "You sucked {} times." looks up the entry with exactly that
// identifier in the dictionary of the active locale. Interpolated values never
// take part in the identifier; they are formatted for the locale and handed to
// the entry.
//
// # Dictionaries and Libraries
//
// A Dictionary holds the messages of one language together with its display
// name and language tag. A Library maps locale identifiers to dictionaries:
//
//	lib, err := i18n.NewLibrary(
//		i18n.WithYAMLDir(locales.FS),
//		i18n.WithLocale("de", deDictionary),
//	)
//
// Dictionary files (YAML, JSON or TOML) may declare "extends" to inherit the
// messages of another locale.
//
// # Messages
//
// An entry is either static, returned as is, or dynamic, computed from the
// formatted arguments:
//
//	i18n.Messages{
//		"Hello!": i18n.Static("Здрасьте!"),
//		"You sucked {} times.": i18n.PluralMessage(i18n.FormatTable{
//			"0":     "Вы не соснули.",
//			"few":   "Вы соснули {} раза.",
//			"other": "Вы соснули {} раз.",
//		}, i18n.Cardinal),
//	}
//
// Dynamic entries can read more arguments than were supplied; the extra ones
// are formatted NaN values.
//
// # Translation
//
//	tr := i18n.NewTranslator(i18n.State{Locale: "ru", Library: lib})
//	tr.T("You sucked {} times.", 3) // "Вы соснули 3 раза."
//	tr.T("Total: {}", i18n.With(5, i18n.FormatOptions{Number: i18n.StyleCurrency, Currency: "USD"}))
//
// A template without an entry renders its literals and formatted values in
// order and logs a "missing message" warning.
//
// # Formatting
//
// Format turns a raw value into a Formatted value. Numbers use the number
// styles (decimal, currency, percent, unit), times are rendered as absolute
// dates or, within the configured bounds around an origin, as relative times
// ("3 days ago"). Strings pass through; anything else formats to the empty
// string. Formatted.Select picks a FormatTable entry by exact value, then by
// plural category, then "other".
//
// # State
//
// Store keeps the active locale and library, applies reducers and notifies
// subscribers in subscription order. States are never mutated in place.
//
// # Accept-Language
//
//	locale := i18n.Negotiate(r.Header.Get("Accept-Language"), lib, "en")
package i18n
