package i18n

import (
	"golang.org/x/text/language"
)

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
const maxAcceptLanguageLength = 4096

// Negotiate returns the library locale that best serves an Accept-Language
// header, or fallback when nothing matches.
//
// Example header: "ru-RU,ru;q=0.9,en;q=0.8"
// Library: {"en": en-us, "ru": ru-ru}
// Returns: "ru"
func Negotiate(header string, library Library, fallback string) string {
	ids := library.Tags()
	tags := make([]string, len(ids))
	for i, id := range ids {
		tags[i] = library[id].LanguageTag
	}
	if i := match(header, ids, tags); i >= 0 {
		return ids[i]
	}
	return fallback
}

// NegotiateTags returns the entry of available that best serves an
// Accept-Language header, or fallback when nothing matches.
func NegotiateTags(header string, available []string, fallback string) string {
	if i := match(header, available, available); i >= 0 {
		return available[i]
	}
	return fallback
}

// match returns the index of the best candidate, trying each candidate's
// language tag and then its identifier. It returns -1 on no match.
func match(header string, ids, tags []string) int {
	if header == "" || len(ids) == 0 {
		return -1
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return -1
	}

	supported := make([]language.Tag, len(ids))
	for i := range ids {
		t := parseTag(tags[i])
		if t == language.Und {
			t = parseTag(ids[i])
		}
		supported[i] = t
	}

	_, idx, conf := language.NewMatcher(supported).Match(desired...)
	if conf == language.No {
		return -1
	}
	return idx
}
