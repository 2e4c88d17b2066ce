package i18n

import (
	"math"
	"strconv"
	"strings"
)

// FormatTable maps exact values ("0", "1", "2.5") and plural categories
// ("zero", "one", "two", "few", "many", "other") to static messages.
// The "other" entry is the fallback and must be present.
type FormatTable map[string]any

// Other returns the fallback entry.
func (t FormatTable) Other() any { return t[PluralOther] }

// Select picks the entry of table matching f.
//
// An exact match on the raw value wins over its plural category, which wins
// over "other". Values that are neither numbers nor strings always get "other".
func (f *Formatted) Select(table FormatTable) any {
	k := kindOf(f.raw)
	if k != kindNumber && k != kindString {
		return table.Other()
	}

	if v, ok := table[exactKey(f.raw)]; ok {
		return v
	}
	if v, ok := table[f.Category()]; ok {
		return v
	}
	return table.Other()
}

// Select picks the entry of table matching f. See Formatted.Select.
func Select(f *Formatted, table FormatTable) any {
	return f.Select(table)
}

// Category returns the plural category of the raw value under the locale and
// the Plural option. Non-numeric values are "other".
func (f *Formatted) Category() string {
	var n float64
	switch kindOf(f.raw) {
	case kindNumber:
		n, _ = numberOf(f.raw)
	case kindString:
		s, _ := stringOf(f.raw)
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return PluralOther
		}
		n = v
	default:
		return PluralOther
	}

	if math.IsNaN(n) {
		return PluralOther
	}

	o := f.options
	return pluralCategory(f.tag, n, o.Plural, o.MinimumFractionDigits, o.MaximumFractionDigits)
}

func exactKey(raw any) string {
	if s, ok := stringOf(raw); ok {
		return s
	}
	n, _ := numberOf(raw)
	return strconv.FormatFloat(n, 'f', -1, 64)
}
