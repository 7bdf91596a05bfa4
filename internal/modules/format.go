package modules

import (
	"fmt"
	"strconv"
	"strings"
)

// term is a coefficient applied to a symbol; an empty symbol is a constant.
type term struct {
	coeff  int
	symbol string
}

// formatTerms renders a sum of terms as "3*x**2 - x + 4", skipping zero
// coefficients. An empty sum renders as "0".
func formatTerms(terms []term) string {
	var b strings.Builder
	for _, t := range terms {
		if t.coeff == 0 {
			continue
		}
		magnitude := t.coeff
		if b.Len() == 0 {
			if magnitude < 0 {
				b.WriteString("-")
			}
		} else if magnitude < 0 {
			b.WriteString(" - ")
		} else {
			b.WriteString(" + ")
		}
		if magnitude < 0 {
			magnitude = -magnitude
		}

		switch {
		case t.symbol == "":
			b.WriteString(strconv.Itoa(magnitude))
		case magnitude == 1:
			b.WriteString(t.symbol)
		default:
			fmt.Fprintf(&b, "%d*%s", magnitude, t.symbol)
		}
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

// paren wraps negative numbers in parentheses.
func paren(n int) string {
	if n < 0 {
		return "(" + strconv.Itoa(n) + ")"
	}
	return strconv.Itoa(n)
}

// joinInts renders values as "a, b, c".
func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

// boolAnswer renders a truth value the way answers spell it.
func boolAnswer(v bool) string {
	if v {
		return "True"
	}
	return "False"
}
