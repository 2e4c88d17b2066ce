package i18n

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// Plural category constants as defined by Unicode CLDR.
// Not all languages use all categories.
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

// PluralCategories lists every CLDR plural category.
var PluralCategories = []string{PluralZero, PluralOne, PluralTwo, PluralFew, PluralMany, PluralOther}

// IsPluralCategory reports whether s names a CLDR plural category.
func IsPluralCategory(s string) bool {
	switch s {
	case PluralZero, PluralOne, PluralTwo, PluralFew, PluralMany, PluralOther:
		return true
	}
	return false
}

// PluralCategory returns the CLDR plural category of n in locale.
// NaN and infinities are always "other".
func PluralCategory(locale string, n float64, typ PluralType) string {
	return pluralCategory(parseTag(locale), n, typ, nil, nil)
}

func pluralCategory(tag language.Tag, n float64, typ PluralType, minFrac, maxFrac *int) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return PluralOther
	}

	rules := plural.Cardinal
	if typ == Ordinal {
		rules = plural.Ordinal
	}

	i, v, w, f, t := pluralOperands(n, minFrac, maxFrac)

	return formName(rules.MatchPlural(tag, i, v, w, f, t))
}

// pluralOperands computes the CLDR operands i, v, w, f and t for n as it
// would be displayed with the given fraction digit bounds.
func pluralOperands(n float64, minFrac, maxFrac *int) (i, v, w, f, t int) {
	n = math.Abs(n)

	prec := -1
	if maxFrac != nil && *maxFrac >= 0 {
		prec = *maxFrac
	}
	s := strconv.FormatFloat(n, 'f', prec, 64)
	if prec >= 0 && strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}

	intPart, frac, _ := strings.Cut(s, ".")
	if minFrac != nil && len(frac) < *minFrac {
		frac += strings.Repeat("0", *minFrac-len(frac))
	}

	if len(intPart) > 15 {
		// Rules only inspect low-order digits and magnitude.
		intPart = "1" + intPart[len(intPart)-6:]
	}
	i, _ = strconv.Atoi(intPart)

	trimmed := strings.TrimRight(frac, "0")
	v, w = len(frac), len(trimmed)
	if len(frac) > 9 {
		frac, trimmed = frac[:9], strings.TrimRight(frac[:9], "0")
	}
	f, _ = strconv.Atoi(frac)
	t, _ = strconv.Atoi(trimmed)

	return i, v, w, f, t
}

func formName(form plural.Form) string {
	switch form {
	case plural.Zero:
		return PluralZero
	case plural.One:
		return PluralOne
	case plural.Two:
		return PluralTwo
	case plural.Few:
		return PluralFew
	case plural.Many:
		return PluralMany
	}
	return PluralOther
}
