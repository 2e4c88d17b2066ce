package i18n

import (
	"math"
	"time"
)

// NumberStyle selects how numbers are rendered.
type NumberStyle string

// Number styles.
const (
	StyleDecimal  NumberStyle = "decimal"
	StyleCurrency NumberStyle = "currency"
	StylePercent  NumberStyle = "percent"
	StyleUnit     NumberStyle = "unit"
)

// PluralType selects cardinal or ordinal plural rules.
type PluralType string

// Plural rule types.
const (
	Cardinal PluralType = "cardinal"
	Ordinal  PluralType = "ordinal"
)

// Locale matching algorithms.
const (
	MatcherLookup  = "lookup"
	MatcherBestFit = "best fit"
)

// TransformFunc postprocesses a rendered value. It receives the rendered
// string, its parts and the target locale and returns the replacement.
type TransformFunc func(s string, parts []FormatPart, locale string) string

// FormatOptions is a sparse set of formatting options. The zero value formats
// numbers as decimals, dates as short absolute dates and strings verbatim.
// Use Normalize to resolve implied fields.
type FormatOptions struct {
	// LocaleMatcher is "lookup" or "best fit".
	LocaleMatcher string

	// Transform postprocesses the rendered string.
	Transform TransformFunc

	// NumberingSystem is a CLDR numbering system, e.g. "arab" or "hanidec".
	NumberingSystem string

	// UseGrouping toggles grouping separators. Nil means locale default.
	UseGrouping *bool

	// Number is the number style. Currency implies StyleCurrency, Unit implies StyleUnit.
	Number NumberStyle

	// Currency is an ISO 4217 code.
	Currency string

	// CurrencyDisplay is "symbol" (default), "narrowSymbol", "code" or "name".
	CurrencyDisplay string

	// CurrencySign is "standard" (default) or "accounting".
	CurrencySign string

	// Unit is a measurement unit such as "kilometer" or "megabyte".
	Unit string

	// UnitDisplay is "short" (default), "narrow" or "long".
	UnitDisplay string

	// Notation is "standard" (default), "scientific", "engineering" or "compact".
	Notation string

	// CompactDisplay is "short" (default) or "long".
	CompactDisplay string

	// SignDisplay is "auto" (default), "always", "never" or "exceptZero".
	SignDisplay string

	MinimumIntegerDigits     *int
	MinimumFractionDigits    *int
	MaximumFractionDigits    *int
	MinimumSignificantDigits *int
	MaximumSignificantDigits *int

	// Plural selects cardinal (default) or ordinal category rules.
	Plural PluralType

	FormatMatcher string
	Calendar      string
	Hour12        *bool
	HourCycle     string

	// TimeZone is an IANA zone name. Empty keeps the value's own location.
	TimeZone string

	// Date/time field representations: "numeric", "2-digit", "narrow", "short", "long".
	Second       string
	Minute       string
	Hour         string
	Day          string
	Weekday      string
	Month        string
	Year         string
	Era          string
	TimeZoneName string

	// TimeStyle and DateStyle are "short", "medium", "long" or "full".
	TimeStyle string
	DateStyle string

	// Numeric is "always" (default) or "auto" ("yesterday" instead of "1 day ago").
	Numeric string

	// RelativeTimeDisplay is "long" (default), "short" or "narrow".
	RelativeTimeDisplay string

	// RelativeTimeUnit forces a relative time unit. UnitAuto picks the largest
	// unit with a non-zero difference.
	RelativeTimeUnit Unit

	// MaximumValue is a symmetric shorthand for UpperValue and LowerValue.
	MaximumValue *float64
	MaximumUnit  Unit

	// UpperValue bounds future differences rendered as relative time.
	UpperValue *float64
	UpperUnit  Unit

	// LowerValue bounds past differences rendered as relative time.
	LowerValue *float64
	LowerUnit  Unit

	// Origin enables relative time formatting for dates.
	Origin time.Time
}

// Ptr returns a pointer to v. Handy for optional FormatOptions fields.
func Ptr[T any](v T) *T {
	return &v
}

// explicitRelativeUnit reports whether a concrete relative time unit was requested.
func (o FormatOptions) explicitRelativeUnit() bool {
	return o.RelativeTimeUnit != "" && o.RelativeTimeUnit != UnitAuto
}

// Normalize resolves implied options. It is pure and idempotent.
//
//   - Currency forces StyleCurrency, Unit forces StyleUnit (Unit wins when both are set).
//   - An explicit RelativeTimeUnit defaults Origin to now and removes the relative bounds.
//   - Otherwise UpperValue is max(UpperValue, MaximumValue, 0) and LowerValue is
//     min(LowerValue, -MaximumValue, 0).
//   - UpperUnit and LowerUnit default to MaximumUnit, then UnitDay.
func Normalize(o FormatOptions) FormatOptions {
	if o.Currency != "" {
		o.Number = StyleCurrency
	}
	if o.Unit != "" {
		o.Number = StyleUnit
	}

	explicit := o.explicitRelativeUnit()
	if explicit && o.Origin.IsZero() {
		o.Origin = time.Now()
	}

	if o.LocaleMatcher == "" {
		o.LocaleMatcher = MatcherBestFit
	}
	if o.RelativeTimeUnit == "" {
		o.RelativeTimeUnit = UnitAuto
	}

	if explicit {
		o.UpperValue = Ptr(math.Inf(1))
		o.LowerValue = Ptr(math.Inf(-1))
	} else {
		upper, lower := 0.0, 0.0
		if o.UpperValue != nil {
			upper = math.Max(upper, *o.UpperValue)
		}
		if o.LowerValue != nil {
			lower = math.Min(lower, *o.LowerValue)
		}
		if o.MaximumValue != nil {
			upper = math.Max(upper, *o.MaximumValue)
			lower = math.Min(lower, -*o.MaximumValue)
		}
		o.UpperValue = Ptr(upper)
		o.LowerValue = Ptr(lower)
	}

	if o.UpperUnit == "" {
		o.UpperUnit = o.boundUnit()
	}
	if o.LowerUnit == "" {
		o.LowerUnit = o.boundUnit()
	}

	return o
}

func (o FormatOptions) boundUnit() Unit {
	if o.MaximumUnit != "" {
		return o.MaximumUnit
	}
	return UnitDay
}
