package modules

import "fmt"

// polynomial holds integer coefficients in ascending powers:
// polynomial{4, -1, 3} is 3*x**2 - x + 4.
type polynomial []int

// randomPolynomial draws a polynomial of exactly the given degree,
// splitting e across its coefficients.
func randomPolynomial(s *source, degree int, e float64) polynomial {
	shares := s.split(e, degree+1)
	p := make(polynomial, degree+1)
	for i := range p {
		p[i] = s.integer(shares[i])
	}
	p[degree] = s.nonZero(shares[degree])
	return p
}

// degree returns the highest power with a non-zero coefficient,
// or -1 for the zero polynomial.
func (p polynomial) degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			return i
		}
	}
	return -1
}

func (p polynomial) eval(x int) int {
	result := 0
	for i := len(p) - 1; i >= 0; i-- {
		result = result*x + p[i]
	}
	return result
}

func (p polynomial) scale(k int) polynomial {
	out := make(polynomial, len(p))
	for i, c := range p {
		out[i] = c * k
	}
	return out
}

func (p polynomial) add(q polynomial) polynomial {
	n := max(len(p), len(q))
	out := make(polynomial, n)
	for i := range out {
		if i < len(p) {
			out[i] += p[i]
		}
		if i < len(q) {
			out[i] += q[i]
		}
	}
	return out
}

func (p polynomial) derivative() polynomial {
	if len(p) <= 1 {
		return polynomial{}
	}
	out := make(polynomial, len(p)-1)
	for i := 1; i < len(p); i++ {
		out[i-1] = p[i] * i
	}
	return out
}

// format renders p in the given variable, highest power first.
func (p polynomial) format(variable string) string {
	terms := make([]term, 0, len(p))
	for i := len(p) - 1; i >= 0; i-- {
		var symbol string
		switch i {
		case 0:
		case 1:
			symbol = variable
		default:
			symbol = fmt.Sprintf("%s**%d", variable, i)
		}
		terms = append(terms, term{coeff: p[i], symbol: symbol})
	}
	return formatTerms(terms)
}
