package modules

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/mathgen/internal/core/domain"
)

var (
	functionNames = []string{"f", "g", "h", "j", "k", "p", "q"}
	variableNames = []string{"x", "t", "n", "y", "z", "w"}
)

func polynomialModules(s *source) domain.Category {
	return domain.Category{
		"evaluate": s.generator(evaluatePolynomial),
		"add":      s.generator(addPolynomials),
	}
}

func calculusModules(s *source) domain.Category {
	return domain.Category{
		"differentiate": s.generator(differentiate),
	}
}

func evaluatePolynomial(s *source) (domain.Problem, error) {
	e := s.split(s.sampleEntropy(), 2)
	degree := 1 + s.rng.Intn(3)
	p := randomPolynomial(s, degree, e[0])
	x := s.integer(e[1] / float64(degree))

	name := s.pick(functionNames...)
	variable := s.pick(variableNames...)
	return domain.Problem{
		Question: fmt.Sprintf("Let %s(%s) = %s. What is %[1]s(%[4]d)?", name, variable, p.format(variable), x),
		Answer:   strconv.Itoa(p.eval(x)),
	}, nil
}

func addPolynomials(s *source) (domain.Problem, error) {
	e := s.split(s.sampleEntropy(), 2)
	p := randomPolynomial(s, 1+s.rng.Intn(3), e[0])
	q := randomPolynomial(s, 1+s.rng.Intn(3), e[1])

	a, b := s.nonZero(1), s.nonZero(1)
	variable := s.pick(variableNames...)
	combination := formatTerms([]term{
		{a, "f(" + variable + ")"},
		{b, "g(" + variable + ")"},
	})

	return domain.Problem{
		Question: fmt.Sprintf("Let f(%[1]s) = %[2]s. Let g(%[1]s) = %[3]s. Calculate %[4]s.",
			variable, p.format(variable), q.format(variable), combination),
		Answer: p.scale(a).add(q.scale(b)).format(variable),
	}, nil
}

func differentiate(s *source) (domain.Problem, error) {
	entropy := s.sampleEntropy()
	degree := 2 + int(entropy/5)
	p := randomPolynomial(s, degree, entropy)
	variable := s.pick(variableNames...)

	if s.coin() {
		format := s.pick("Differentiate %s with respect to %s.", "What is the derivative of %s wrt %s?")
		return domain.Problem{
			Question: fmt.Sprintf(format, p.format(variable), variable),
			Answer:   p.derivative().format(variable),
		}, nil
	}
	return domain.Problem{
		Question: fmt.Sprintf("Find the second derivative of %s wrt %s.", p.format(variable), variable),
		Answer:   p.derivative().derivative().format(variable),
	}, nil
}
