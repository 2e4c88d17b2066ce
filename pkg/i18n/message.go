package i18n

import (
	"fmt"
	"iter"
	"math"
)

// Message is a dictionary entry: either a static value returned verbatim or a
// function producing a value from the formatted arguments.
type Message struct {
	static  any
	dynamic func(args *Args) any
}

// Static returns a message that always renders v.
func Static(v any) Message {
	return Message{static: v}
}

// Dynamic returns a message rendered by fn.
func Dynamic(fn func(args *Args) any) Message {
	if fn == nil {
		return Message{}
	}
	return Message{dynamic: fn}
}

// IsDynamic reports whether m is rendered by a function.
func (m Message) IsDynamic() bool { return m.dynamic != nil }

// Value returns the value of a static message, nil for dynamic ones.
func (m Message) Value() any { return m.static }

// Render produces the message value. Static messages ignore args.
func (m Message) Render(args *Args) any {
	if m.dynamic != nil {
		return m.dynamic(args)
	}
	return m.static
}

// Messages maps message identifiers to messages.
type Messages map[string]Message

// Args hands formatted interpolation values to a dynamic message.
// After the real values run out it keeps producing formatted NaN values, so a
// message may read more arguments than the call site supplied.
type Args struct {
	locale string
	values []*Formatted
	pos    int
}

// NewArgs returns arguments over values. Dummy values are formatted for locale.
func NewArgs(locale string, values ...*Formatted) *Args {
	return &Args{locale: locale, values: values}
}

// Len returns the number of real values.
func (a *Args) Len() int { return len(a.values) }

// At returns the i-th value, or a fresh dummy past the real ones.
func (a *Args) At(i int) *Formatted {
	if i >= 0 && i < len(a.values) {
		return a.values[i]
	}
	return a.dummy()
}

// Next returns the value under the cursor and advances it.
func (a *Args) Next() *Formatted {
	f := a.At(a.pos)
	a.pos++
	return f
}

// Take returns the next n values.
func (a *Args) Take(n int) []*Formatted {
	out := make([]*Formatted, 0, max(n, 0))
	for range n {
		out = append(out, a.Next())
	}
	return out
}

// All yields the real values and then dummies without end.
// Consumers must stop the iteration themselves.
func (a *Args) All() iter.Seq[*Formatted] {
	return func(yield func(*Formatted) bool) {
		for i := 0; ; i++ {
			if !yield(a.At(i)) {
				return
			}
		}
	}
}

// Strings renders the values at 0..n-1.
func (a *Args) Strings(n int) []string {
	out := make([]string, n)
	for i := range n {
		out[i] = a.At(i).String()
	}
	return out
}

func (a *Args) dummy() *Formatted {
	return Format(a.locale, math.NaN(), FormatOptions{})
}

// Stringify renders a message value as a string.
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}
