package i18n

import (
	"strconv"
	"strings"
)

// FillPlaceholders replaces "{}" with successive arguments and "{N}" with the
// N-th argument (zero based). Any other brace sequence is kept as is.
//
// Example:
//
//	FillPlaceholders("{} of {}, total {0}", arg)
//	returns: arg(0) + " of " + arg(1) + ", total " + arg(0)
func FillPlaceholders(template string, arg func(i int) string) string {
	if !strings.Contains(template, "{") {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))

	next := 0
	for i := 0; i < len(template); {
		if template[i] != '{' {
			b.WriteByte(template[i])
			i++
			continue
		}

		end := strings.IndexByte(template[i+1:], '}')
		if end < 0 {
			b.WriteString(template[i:])
			break
		}

		inner := template[i+1 : i+1+end]
		if inner == "" {
			b.WriteString(arg(next))
			next++
		} else if n, err := strconv.Atoi(inner); err == nil && n >= 0 {
			b.WriteString(arg(n))
		} else {
			b.WriteByte('{')
			i++
			continue
		}
		i += end + 2
	}

	return b.String()
}
