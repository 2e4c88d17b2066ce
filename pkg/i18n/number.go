package i18n

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/locales"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// numberFormatter renders numbers with x/text number formatting.
type numberFormatter struct {
	printer *message.Printer
	cal     locales.Translator
	opts    FormatOptions
}

func newNumberFormatter(tag language.Tag, opts FormatOptions) *numberFormatter {
	if opts.NumberingSystem != "" {
		if t, err := tag.SetTypeForKey("nu", opts.NumberingSystem); err == nil {
			tag = t
		}
	}
	return &numberFormatter{
		printer: message.NewPrinter(tag),
		cal:     calendarFor(tag),
		opts:    opts,
	}
}

func (nf *numberFormatter) formatToParts(v any) []FormatPart {
	x, _ := v.(float64)

	if math.IsNaN(x) {
		return []FormatPart{{Type: PartNaN, Value: "NaN"}}
	}

	negative := x < 0 || (x == 0 && math.Signbit(x))
	abs := math.Abs(x)

	var parts []FormatPart
	if s := nf.sign(x, negative); s != "" {
		typ := PartPlusSign
		if s == "-" {
			typ = PartMinusSign
		}
		parts = append(parts, FormatPart{Type: typ, Value: s})
	}

	if math.IsInf(abs, 1) {
		return append(parts, FormatPart{Type: PartInfinity, Value: "∞"})
	}

	switch nf.opts.Number {
	case StyleCurrency:
		return nf.currencyParts(parts, abs, negative)
	case StylePercent:
		return append(parts, FormatPart{Type: PartNumber, Value: nf.printer.Sprint(number.Percent(abs, nf.digitOptions(abs*100, 0, 0)...))})
	case StyleUnit:
		body := nf.decimal(abs, 0, 3)
		label := unitLabel(nf.opts.Unit, nf.opts.UnitDisplay, abs)
		return append(parts,
			FormatPart{Type: PartNumber, Value: body},
			FormatPart{Type: PartLiteral, Value: unitSeparator(nf.opts.UnitDisplay)},
			FormatPart{Type: PartUnit, Value: label},
		)
	}

	return append(parts, FormatPart{Type: PartNumber, Value: nf.decimal(abs, 0, 3)})
}

// sign returns the sign prefix required by SignDisplay.
func (nf *numberFormatter) sign(x float64, negative bool) string {
	accounting := nf.opts.Number == StyleCurrency && nf.opts.CurrencySign == "accounting"

	switch nf.opts.SignDisplay {
	case "never":
		return ""
	case "always":
		if negative {
			return minusUnlessAccounting(accounting)
		}
		return "+"
	case "exceptZero":
		switch {
		case x > 0:
			return "+"
		case x < 0:
			return minusUnlessAccounting(accounting)
		}
		return ""
	}

	if negative && x != 0 {
		return minusUnlessAccounting(accounting)
	}
	return ""
}

func minusUnlessAccounting(accounting bool) string {
	if accounting {
		return ""
	}
	return "-"
}

func (nf *numberFormatter) currencyParts(signParts []FormatPart, abs float64, negative bool) []FormatPart {
	cur, err := currency.ParseISO(nf.opts.Currency)
	if err != nil {
		code := strings.ToUpper(nf.opts.Currency)
		return append(signParts,
			FormatPart{Type: PartCurrency, Value: code},
			FormatPart{Type: PartLiteral, Value: noBreakSpace},
			FormatPart{Type: PartNumber, Value: nf.decimal(abs, 2, 2)},
		)
	}

	scale, _ := currency.Standard.Rounding(cur)
	amount := FormatPart{Type: PartNumber, Value: nf.decimal(abs, scale, scale)}

	accounting := negative && nf.opts.CurrencySign == "accounting" && nf.opts.SignDisplay != "never"
	minus := len(signParts) > 0 && signParts[0].Type == PartMinusSign

	before, after, ok := nf.currencyAffixes(cur.String(), minus, accounting)
	if !ok {
		before = []FormatPart{{Type: PartCurrency}}
		if minus {
			before = append([]FormatPart{{Type: PartMinusSign, Value: "-"}}, before...)
		}
		if accounting {
			before = append([]FormatPart{{Type: PartLiteral, Value: "("}}, before...)
			after = []FormatPart{{Type: PartLiteral, Value: ")"}}
		}
	}

	symbol := nf.currencySymbol(cur)
	for _, affix := range [][]FormatPart{before, after} {
		for i := range affix {
			if affix[i].Type == PartCurrency {
				affix[i].Value = symbol
			}
		}
	}

	out := make([]FormatPart, 0, len(before)+len(after)+3)
	if !minus {
		out = append(out, signParts...)
	}
	out = append(out, before...)
	if n := len(before); n > 0 && before[n-1].Type == PartCurrency && endsWithLetter(before[n-1].Value) {
		out = append(out, FormatPart{Type: PartLiteral, Value: noBreakSpace})
	}
	out = append(out, amount)
	if len(after) > 0 && after[0].Type == PartCurrency && startsWithLetter(after[0].Value) {
		out = append(out, FormatPart{Type: PartLiteral, Value: noBreakSpace})
	}
	return append(out, after...)
}

// currencySymbol returns the label for cur under CurrencyDisplay.
func (nf *numberFormatter) currencySymbol(cur currency.Unit) string {
	switch nf.opts.CurrencyDisplay {
	case "code", "name":
		return cur.String()
	case "narrowSymbol":
		return nf.printer.Sprint(currency.NarrowSymbol(cur))
	}
	return nf.printer.Sprint(currency.Symbol(cur))
}

// currencyAffixes renders the CLDR currency pattern of the locale for a unit
// amount and splits it into the parts before and after the amount. The
// currency part marks where the symbol goes; its value is replaced later.
func (nf *numberFormatter) currencyAffixes(code string, negative, accounting bool) (before, after []FormatPart, ok bool) {
	t, ok := localeCurrency(code)
	if !ok {
		return nil, nil, false
	}

	var pattern string
	switch {
	case accounting:
		pattern = nf.cal.FmtAccounting(-1, 2, t)
	case negative:
		pattern = nf.cal.FmtCurrency(-1, 2, t)
	default:
		pattern = nf.cal.FmtCurrency(1, 2, t)
	}

	unit := nf.cal.FmtNumber(1, 2)
	i := strings.Index(pattern, unit)
	if i < 0 {
		return nil, nil, false
	}
	prefix, suffix := pattern[:i], pattern[i+len(unit):]

	symbol := strings.Trim(prefix+suffix, affixPunctuation)
	if symbol == "" {
		return nil, nil, false
	}
	return affixParts(prefix, symbol), affixParts(suffix, symbol), true
}

const (
	noBreakSpace     = "\u00a0"
	minusSigns       = "-\u2212"
	affixPunctuation = "()" + minusSigns + " \u00a0\u202f"
)

// affixParts splits a pattern affix into minus sign, currency and literal parts.
func affixParts(affix, symbol string) []FormatPart {
	if affix == "" {
		return nil
	}
	pre, post, found := strings.Cut(affix, symbol)
	if !found {
		return literalParts(affix)
	}
	parts := literalParts(pre)
	parts = append(parts, FormatPart{Type: PartCurrency, Value: symbol})
	return append(parts, literalParts(post)...)
}

func literalParts(s string) []FormatPart {
	var parts []FormatPart
	for s != "" {
		i := strings.IndexAny(s, minusSigns)
		if i < 0 {
			return append(parts, FormatPart{Type: PartLiteral, Value: s})
		}
		if i > 0 {
			parts = append(parts, FormatPart{Type: PartLiteral, Value: s[:i]})
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		parts = append(parts, FormatPart{Type: PartMinusSign, Value: s[i : i+size]})
		s = s[i+size:]
	}
	return parts
}

func endsWithLetter(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return unicode.IsLetter(r)
}

func startsWithLetter(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLetter(r)
}

// decimal renders a non-negative number honoring notation and digit options.
func (nf *numberFormatter) decimal(abs float64, minFrac, maxFrac int) string {
	switch nf.opts.Notation {
	case "scientific":
		return nf.printer.Sprint(number.Scientific(abs, nf.digitOptions(mantissa(abs, 1), minFrac, maxFrac)...))
	case "engineering":
		return nf.printer.Sprint(number.Engineering(abs, nf.digitOptions(mantissa(abs, 3), minFrac, maxFrac)...))
	case "compact":
		return nf.compact(abs)
	}
	return nf.printer.Sprint(number.Decimal(abs, nf.digitOptions(abs, minFrac, maxFrac)...))
}

var (
	compactShort = []string{"", "K", "M", "B", "T"}
	compactLong  = []string{"", " thousand", " million", " billion", " trillion"}
)

// compact scales abs to thousands, millions, etc. Suffixes are English.
func (nf *numberFormatter) compact(abs float64) string {
	suffixes := compactShort
	if nf.opts.CompactDisplay == "long" {
		suffixes = compactLong
	}

	exp := 0
	for abs >= 1000 && exp < len(suffixes)-1 {
		abs /= 1000
		exp++
	}

	maxFrac := 0
	if abs < 10 && exp > 0 {
		maxFrac = 1
	}
	opts := []number.Option{number.MaxFractionDigits(maxFrac)}
	if nf.opts.UseGrouping != nil && !*nf.opts.UseGrouping {
		opts = append(opts, number.NoSeparator())
	}

	return nf.printer.Sprint(number.Decimal(abs, opts...)) + suffixes[exp]
}

// digitOptions translates the digit bounds into x/text number options for
// the displayed magnitude shown. Significant digits take precedence over
// fraction digits.
func (nf *numberFormatter) digitOptions(shown float64, minFrac, maxFrac int) []number.Option {
	o := nf.opts
	var opts []number.Option

	if o.MinimumIntegerDigits != nil {
		opts = append(opts, number.MinIntegerDigits(*o.MinimumIntegerDigits))
	}

	switch {
	case o.MaximumSignificantDigits != nil:
		opts = append(opts, number.Precision(*o.MaximumSignificantDigits))
		if o.MinimumSignificantDigits != nil {
			minSig := min(*o.MinimumSignificantDigits, *o.MaximumSignificantDigits)
			opts = append(opts, number.MinFractionDigits(significantFraction(shown, minSig)))
		}
	case o.MinimumSignificantDigits != nil:
		minFrac = significantFraction(shown, *o.MinimumSignificantDigits)
		opts = append(opts,
			number.MinFractionDigits(minFrac),
			number.MaxFractionDigits(max(minFrac, shortestFraction(shown))),
		)
	default:
		if o.MinimumFractionDigits != nil {
			minFrac = *o.MinimumFractionDigits
			maxFrac = max(maxFrac, minFrac)
		}
		if o.MaximumFractionDigits != nil {
			maxFrac = *o.MaximumFractionDigits
			minFrac = min(minFrac, maxFrac)
		}
		opts = append(opts, number.MinFractionDigits(minFrac), number.MaxFractionDigits(maxFrac))
	}

	if o.UseGrouping != nil && !*o.UseGrouping {
		opts = append(opts, number.NoSeparator())
	}

	return opts
}

// significantFraction returns the fraction digits needed to show at least
// minSig significant digits of x.
func significantFraction(x float64, minSig int) int {
	if x == 0 || math.IsInf(x, 0) || math.IsNaN(x) {
		return max(minSig-1, 0)
	}
	// position of the leading digit: 0 for [1, 10), -1 for [0.1, 1)
	lead := int(math.Floor(math.Log10(x)))
	return max(minSig-1-lead, 0)
}

// shortestFraction returns the fraction digits of the shortest exact
// representation of x.
func shortestFraction(x float64) int {
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if _, frac, ok := strings.Cut(s, "."); ok {
		return len(frac)
	}
	return 0
}

// mantissa scales x into the coefficient shown by exponent notation, with
// exponents constrained to multiples of step.
func mantissa(x float64, step int) float64 {
	if x == 0 || math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	exp := int(math.Floor(math.Log10(x)))
	exp -= ((exp % step) + step) % step
	return x / math.Pow10(exp)
}

// unitNames holds the short symbol and the English long forms of each
// measurement unit.
var unitNames = map[string]struct{ short, one, other string }{
	"bit":                {"bit", "bit", "bits"},
	"byte":               {"byte", "byte", "bytes"},
	"kilobyte":           {"kB", "kilobyte", "kilobytes"},
	"megabyte":           {"MB", "megabyte", "megabytes"},
	"gigabyte":           {"GB", "gigabyte", "gigabytes"},
	"terabyte":           {"TB", "terabyte", "terabytes"},
	"millimeter":         {"mm", "millimeter", "millimeters"},
	"centimeter":         {"cm", "centimeter", "centimeters"},
	"meter":              {"m", "meter", "meters"},
	"kilometer":          {"km", "kilometer", "kilometers"},
	"mile":               {"mi", "mile", "miles"},
	"foot":               {"ft", "foot", "feet"},
	"inch":               {"in", "inch", "inches"},
	"gram":               {"g", "gram", "grams"},
	"kilogram":           {"kg", "kilogram", "kilograms"},
	"pound":              {"lb", "pound", "pounds"},
	"liter":              {"L", "liter", "liters"},
	"milliliter":         {"mL", "milliliter", "milliliters"},
	"celsius":            {"°C", "degree Celsius", "degrees Celsius"},
	"fahrenheit":         {"°F", "degree Fahrenheit", "degrees Fahrenheit"},
	"percent":            {"%", "percent", "percent"},
	"millisecond":        {"ms", "millisecond", "milliseconds"},
	"second":             {"sec", "second", "seconds"},
	"minute":             {"min", "minute", "minutes"},
	"hour":               {"hr", "hour", "hours"},
	"day":                {"day", "day", "days"},
	"week":               {"wk", "week", "weeks"},
	"month":              {"mth", "month", "months"},
	"year":               {"yr", "year", "years"},
	"kilometer-per-hour": {"km/h", "kilometer per hour", "kilometers per hour"},
	"mile-per-hour":      {"mph", "mile per hour", "miles per hour"},
}

// unitLabel names unit for display. Long names are English; unknown units
// are shown by their identifier.
func unitLabel(unit, display string, abs float64) string {
	names, ok := unitNames[unit]
	if !ok {
		return unit
	}
	if display != "long" {
		return names.short
	}
	if abs == 1 {
		return names.one
	}
	return names.other
}

func unitSeparator(display string) string {
	if display == "narrow" {
		return ""
	}
	return " "
}
