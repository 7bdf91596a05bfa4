package modules

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/custodia-labs/mathgen/internal/core/domain"
)

// errNoSolution is returned when a generator cannot draw a well-posed problem.
var errNoSolution = errors.New("no well-posed problem found")

func algebraModules(s *source) domain.Category {
	return domain.Category{
		"linear_1d":        s.generator(linear1D),
		"linear_2d":        s.generator(linear2D),
		"polynomial_roots": s.generator(polynomialRoots),
	}
}

func linear1D(s *source) (domain.Problem, error) {
	e := s.split(s.sampleEntropy(), 3)
	x := s.integer(e[0])
	a := s.nonZero(e[1])
	b := s.integer(e[2])

	lhs := polynomial{b, a}.format("x")
	rhs := a*x + b
	if s.coin() {
		return domain.Problem{
			Question: fmt.Sprintf("Solve %s = %d for x.", lhs, rhs),
			Answer:   strconv.Itoa(x),
		}, nil
	}
	return domain.Problem{
		Question: fmt.Sprintf("Solve %d = %s for x.", rhs, lhs),
		Answer:   strconv.Itoa(x),
	}, nil
}

func linear2D(s *source) (domain.Problem, error) {
	e := s.split(s.sampleEntropy(), 3)
	x, y := s.integer(e[0]), s.integer(e[1])

	coeff := e[2] / 4
	for range maxRetries {
		a, b := s.nonZero(coeff), s.nonZero(coeff)
		c, d := s.nonZero(coeff), s.nonZero(coeff)
		if a*d-b*c == 0 {
			continue
		}

		first := formatTerms([]term{{a, "x"}, {b, "y"}})
		second := formatTerms([]term{{c, "x"}, {d, "y"}})
		variable, answer := "x", x
		if s.coin() {
			variable, answer = "y", y
		}
		return domain.Problem{
			Question: fmt.Sprintf("Solve %s = %d, %s = %d for %s.",
				first, a*x+b*y, second, c*x+d*y, variable),
			Answer: strconv.Itoa(answer),
		}, nil
	}
	return domain.Problem{}, fmt.Errorf("singular system: %w", errNoSolution)
}

func polynomialRoots(s *source) (domain.Problem, error) {
	e := s.split(s.sampleEntropy(), 3)
	r1, r2 := s.integer(e[0]), s.integer(e[1])
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	k := s.nonZero(e[2] / 3)

	// k*(x - r1)*(x - r2)
	p := polynomial{r1 * r2, -(r1 + r2), 1}.scale(k)

	answer := joinInts([]int{r1, r2})
	if r1 == r2 {
		answer = strconv.Itoa(r1)
	}
	format := s.pick("Solve %s = 0 for x.", "Find the roots of %s = 0.", "What are the solutions of %s = 0?")
	return domain.Problem{
		Question: fmt.Sprintf(format, p.format("x")),
		Answer:   answer,
	}, nil
}
