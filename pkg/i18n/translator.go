package i18n

import (
	"context"
	"log/slog"
	"strings"
)

// Placeholder joins the literal segments of a template into a message identifier.
const Placeholder = "{}"

// Arg pairs an interpolation value with explicit format options.
type Arg struct {
	Value   any
	Options FormatOptions
}

// With returns an interpolation value formatted with opts.
func With(value any, opts FormatOptions) Arg {
	return Arg{Value: value, Options: opts}
}

// MessageID infers the identifier of a template from its literal segments.
// "You have ", " items" becomes "You have {} items".
func MessageID(literals []string) string {
	return strings.Join(literals, Placeholder)
}

// Translator renders templates against the dictionary of one locale.
// It is safe for concurrent use.
type Translator struct {
	locale     string
	dictionary Dictionary
	logger     *slog.Logger
	ctx        context.Context
	onMissing  func(locale, id string)
}

// TranslatorOption configures a Translator.
type TranslatorOption func(*Translator)

// WithLogger sets the logger used to report missing messages.
func WithLogger(l *slog.Logger) TranslatorOption {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithContext sets the context passed to the logger, so context extractors
// can attach request scoped attributes.
func WithContext(ctx context.Context) TranslatorOption {
	return func(t *Translator) {
		if ctx != nil {
			t.ctx = ctx
		}
	}
}

// WithMissingMessageHandler sets a handler called with the locale and message
// identifier whenever a template has no dictionary entry. Useful for
// collecting untranslated messages during development.
func WithMissingMessageHandler(handler func(locale, id string)) TranslatorOption {
	return func(t *Translator) {
		t.onMissing = handler
	}
}

// NewTranslator returns a translator for the active locale of state. Locales
// absent from the library get an empty dictionary named and tagged after the
// locale identifier.
func NewTranslator(state State, opts ...TranslatorOption) *Translator {
	t := &Translator{
		locale: state.Locale,
		logger: slog.Default(),
		ctx:    context.Background(),
	}

	if d, ok := state.Library[state.Locale]; ok {
		t.dictionary = d
	} else {
		t.dictionary = Dictionary{DisplayName: state.Locale, LanguageTag: state.Locale}
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Translate binds state and returns a template function, see Translator.Template.
func Translate(state State, opts ...TranslatorOption) func(literals []string, values ...any) any {
	return NewTranslator(state, opts...).Template
}

// Locale returns the active locale identifier.
func (t *Translator) Locale() string { return t.locale }

// Dictionary returns the active dictionary.
func (t *Translator) Dictionary() Dictionary { return t.dictionary }

// Format formats raw with the dictionary language tag.
func (t *Translator) Format(raw any, opts FormatOptions) *Formatted {
	return Format(t.dictionary.LanguageTag, raw, opts)
}

// Template renders a template of literal segments interleaved with values.
//
// Values are formatted left to right, an Arg with its own options and anything
// else with default options. The message identifier is the literal segments
// joined with "{}". A dynamic message receives the formatted values, a static
// one is returned verbatim. Without an entry the literals and formatted values
// are concatenated in template order and the miss is reported.
func (t *Translator) Template(literals []string, values ...any) any {
	formatted := make([]*Formatted, len(values))
	for i, v := range values {
		if arg, ok := v.(Arg); ok {
			formatted[i] = t.Format(arg.Value, arg.Options)
		} else {
			formatted[i] = t.Format(v, FormatOptions{})
		}
	}

	id := MessageID(literals)

	msg, ok := t.dictionary.Lookup(id)
	if !ok {
		t.missing(id)
		return interleave(literals, formatted)
	}

	return msg.Render(NewArgs(t.dictionary.LanguageTag, formatted...))
}

// T renders a template written with "{}" placeholders.
//
//	t.T("You sucked {} times.", 3)
func (t *Translator) T(template string, values ...any) any {
	return t.Template(strings.Split(template, Placeholder), values...)
}

// S is T rendered to a string.
func (t *Translator) S(template string, values ...any) string {
	return Stringify(t.T(template, values...))
}

func (t *Translator) missing(id string) {
	t.logger.WarnContext(t.ctx, "missing message",
		slog.String("locale", t.locale),
		slog.String("message_id", id),
	)
	if t.onMissing != nil {
		t.onMissing(t.locale, id)
	}
}

func interleave(literals []string, values []*Formatted) string {
	var b strings.Builder
	for i, lit := range literals {
		b.WriteString(lit)
		if i < len(values) {
			b.WriteString(values[i].String())
		}
	}
	for i := len(literals); i < len(values); i++ {
		b.WriteString(values[i].String())
	}
	return b.String()
}
