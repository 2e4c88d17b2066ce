package i18n

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// PartType classifies a fragment of a rendered value.
type PartType string

// Part types produced by the formatters.
const (
	PartLiteral   PartType = "literal"
	PartString    PartType = "string"
	PartNumber    PartType = "number"
	PartInteger   PartType = "integer"
	PartCurrency  PartType = "currency"
	PartUnit      PartType = "unit"
	PartMinusSign PartType = "minusSign"
	PartPlusSign  PartType = "plusSign"
	PartNaN       PartType = "nan"
	PartInfinity  PartType = "infinity"
	PartDate      PartType = "date"
	PartTime      PartType = "time"
)

// FormatPart is one typed fragment of a rendered value.
type FormatPart struct {
	Type  PartType `json:"type"`
	Value string   `json:"value"`
}

// formatter renders a prepared value into parts.
type formatter interface {
	formatToParts(v any) []FormatPart
}

type stringFormatter struct{}

func (stringFormatter) formatToParts(v any) []FormatPart {
	s, _ := v.(string)
	return []FormatPart{{Type: PartString, Value: s}}
}

// otherFormatter renders unsupported values as nothing.
type otherFormatter struct{}

func (otherFormatter) formatToParts(any) []FormatPart { return nil }

// Formatted is a raw value rendered for a locale with a set of options.
// It is never mutated: Update and Configure return new values.
type Formatted struct {
	raw       any
	locale    string
	tag       language.Tag
	options   FormatOptions
	result    string
	parts     []FormatPart
	formatter formatter

	number float64
	text   string
	date   time.Time
}

// Format renders raw for locale.
//
// Numbers (any Go integer or float kind) go through the number formatter,
// strings pass through unchanged, time.Time values render as absolute dates,
// or as relative time when Origin is set and the difference stays within the
// configured bounds. Any other value renders as an empty string.
func Format(locale string, raw any, opts FormatOptions) *Formatted {
	opts = Normalize(opts)
	tag := parseTag(locale)

	f := &Formatted{
		raw:     raw,
		locale:  locale,
		tag:     tag,
		options: opts,
	}

	var value any
	switch k := kindOf(raw); k {
	case kindNumber:
		f.formatter = newNumberFormatter(tag, opts)
		value, _ = numberOf(raw)
	case kindString:
		f.formatter = stringFormatter{}
		value, _ = stringOf(raw)
	case kindDate:
		t, _ := timeOf(raw)
		f.formatter, value = dateStrategy(tag, t, opts)
	default:
		f.formatter = otherFormatter{}
	}

	f.parts = f.formatter.formatToParts(value)
	f.result = joinParts(f.parts)

	f.number = toNumber(raw)
	f.text = toText(raw)
	f.date = toDate(f.number)

	if opts.Transform != nil {
		f.result = opts.Transform(f.result, f.Parts(), locale)
	}

	return f
}

// dateStrategy chooses between absolute and relative rendering of t.
func dateStrategy(tag language.Tag, t time.Time, opts FormatOptions) (formatter, any) {
	if opts.Origin.IsZero() {
		return newDateFormatter(tag, opts), t
	}

	origin := opts.Origin.In(t.Location())
	diffs := NewDiffTable(t, origin)

	if outOfBounds(sign(DiffMilliseconds(t, origin)), diffs, opts) {
		return newDateFormatter(tag, opts), t
	}

	value, unit := selectRelativeUnit(diffs, opts.RelativeTimeUnit)
	return newRelativeFormatter(tag, opts), relativeValue{value: value, unit: unit}
}

// outOfBounds reports whether a difference must be rendered as an absolute date.
func outOfBounds(s int, diffs DiffTable, opts FormatOptions) bool {
	if s > 0 {
		return float64(diffs[opts.UpperUnit]) >= deref(opts.UpperValue)
	}
	return float64(diffs[opts.LowerUnit]) <= deref(opts.LowerValue)
}

// selectRelativeUnit returns the difference to report. In auto mode it is
// the first non-zero difference from years down to seconds, skipping
// quarters, or zero days.
func selectRelativeUnit(diffs DiffTable, mode Unit) (int, Unit) {
	if mode.Valid() {
		return diffs[mode], mode
	}
	for _, u := range Units {
		if u == UnitQuarter {
			continue
		}
		if d := diffs[u]; d != 0 {
			return d, u
		}
	}
	return 0, UnitDay
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func joinParts(parts []FormatPart) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p.Value)
	}
	return b.String()
}

// Raw returns the value that was formatted.
func (f *Formatted) Raw() any { return f.raw }

// Locale returns the locale identifier the value was formatted for.
func (f *Formatted) Locale() string { return f.locale }

// Tag returns the parsed language tag of Locale.
func (f *Formatted) Tag() language.Tag { return f.tag }

// Options returns the normalized options.
func (f *Formatted) Options() FormatOptions { return f.options }

// String returns the rendered result.
func (f *Formatted) String() string { return f.result }

// MarshalText implements encoding.TextMarshaler with the rendered result.
func (f *Formatted) MarshalText() ([]byte, error) { return []byte(f.result), nil }

// Parts returns the rendered fragments before any Transform.
func (f *Formatted) Parts() []FormatPart {
	out := make([]FormatPart, len(f.parts))
	copy(out, f.parts)
	return out
}

// Number returns the raw value coerced to a number, NaN when it is not numeric.
func (f *Formatted) Number() float64 { return f.number }

// Text returns the raw value coerced to a string.
func (f *Formatted) Text() string { return f.text }

// Date returns Number as a Unix millisecond instant, or the zero time when
// Number is not finite.
func (f *Formatted) Date() time.Time { return f.date }

// Update formats a new value with the same locale and options.
func (f *Formatted) Update(raw any) *Formatted {
	return Format(f.locale, raw, f.options)
}

// Configure formats the same value with new options.
func (f *Formatted) Configure(opts FormatOptions) *Formatted {
	return Format(f.locale, f.raw, opts)
}

type valueKind int

const (
	kindOther valueKind = iota
	kindNumber
	kindString
	kindDate
)

func kindOf(raw any) valueKind {
	switch v := raw.(type) {
	case nil:
		return kindOther
	case string:
		return kindString
	case time.Time:
		return kindDate
	case *time.Time:
		if v == nil {
			return kindOther
		}
		return kindDate
	}

	switch reflect.ValueOf(raw).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return kindNumber
	case reflect.String:
		return kindString
	}
	return kindOther
}

// numberOf converts any Go numeric kind to float64.
func numberOf(raw any) (float64, bool) {
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return math.NaN(), false
}

// stringOf returns raw as a string for string kinds.
func stringOf(raw any) (string, bool) {
	if s, ok := raw.(string); ok {
		return s, true
	}
	if rv := reflect.ValueOf(raw); rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

func timeOf(raw any) (time.Time, bool) {
	switch v := raw.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v != nil {
			return *v, true
		}
	}
	return time.Time{}, false
}

func toNumber(raw any) float64 {
	switch kindOf(raw) {
	case kindNumber:
		n, _ := numberOf(raw)
		return n
	case kindString:
		s, _ := stringOf(raw)
		s = strings.TrimSpace(s)
		if s == "" {
			return 0
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return n
	case kindDate:
		t, _ := timeOf(raw)
		return float64(t.UnixMilli())
	}

	switch v := raw.(type) {
	case nil:
		return 0
	case bool:
		if v {
			return 1
		}
		return 0
	}
	return math.NaN()
}

func toText(raw any) string {
	if raw == nil {
		return ""
	}
	if s, ok := stringOf(raw); ok {
		return s
	}
	if n, ok := numberOf(raw); ok {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	if t, ok := timeOf(raw); ok {
		return t.Format(time.RFC3339Nano)
	}
	return fmt.Sprint(raw)
}

func toDate(n float64) time.Time {
	if math.IsNaN(n) || math.IsInf(n, 0) || math.Abs(n) > 8.64e15 {
		return time.Time{}
	}
	return time.UnixMilli(int64(n))
}

// parseTag parses a locale identifier such as "en-us" or "ru_RU".
// Unknown identifiers yield language.Und.
func parseTag(locale string) language.Tag {
	return language.Make(strings.ReplaceAll(locale, "_", "-"))
}
