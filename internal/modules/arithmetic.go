package modules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/mathgen/internal/core/domain"
)

func arithmeticModules(s *source) domain.Category {
	return domain.Category{
		"add_or_sub": s.generator(addOrSub),
		"mul":        s.generator(mul),
		"div":        s.generator(div),
		"mixed":      s.generator(mixed),
	}
}

func addOrSub(s *source) (domain.Problem, error) {
	e := s.split(s.sampleEntropy(), 2)
	a, b := s.integer(e[0]), s.integer(e[1])

	if s.coin() {
		format := s.pick("What is %d + %d?", "Calculate %d + %d.", "Add together %d and %d.")
		return domain.Problem{
			Question: fmt.Sprintf(format, a, b),
			Answer:   strconv.Itoa(a + b),
		}, nil
	}
	format := s.pick("What is %d - %d?", "Calculate %d - %d.", "Subtract %[2]d from %[1]d.")
	return domain.Problem{
		Question: fmt.Sprintf(format, a, b),
		Answer:   strconv.Itoa(a - b),
	}, nil
}

func mul(s *source) (domain.Problem, error) {
	e := s.split(s.sampleEntropy(), 2)
	a, b := s.integer(e[0]), s.integer(e[1])

	format := s.pick("What is %d times %d?", "Multiply %d and %d.", "Calculate %d*%d.")
	return domain.Problem{
		Question: fmt.Sprintf(format, a, b),
		Answer:   strconv.Itoa(a * b),
	}, nil
}

func div(s *source) (domain.Problem, error) {
	e := s.split(s.sampleEntropy(), 2)
	divisor, quotient := s.nonZero(e[0]), s.integer(e[1])

	format := s.pick("What is %d divided by %d?", "Divide %d by %d.", "Calculate %d divided by %d.")
	return domain.Problem{
		Question: fmt.Sprintf(format, quotient*divisor, divisor),
		Answer:   strconv.Itoa(quotient),
	}, nil
}

// mixedOps are the operators mixed expressions are built from.
var mixedOps = []byte{'+', '-', '*'}

func mixed(s *source) (domain.Problem, error) {
	entropy := s.sampleEntropy()
	n := 3
	if entropy > 7 {
		n = 4
	}
	shares := s.split(entropy, n)

	operands := make([]int, n)
	ops := make([]byte, n-1)
	for i := range operands {
		operands[i] = s.integer(shares[i])
	}
	for i := range ops {
		ops[i] = mixedOps[s.rng.Intn(len(mixedOps))]
	}

	var expr strings.Builder
	expr.WriteString(paren(operands[0]))
	for i, op := range ops {
		fmt.Fprintf(&expr, " %c %s", op, paren(operands[i+1]))
	}

	format := s.pick("What is %s?", "Calculate %s.", "Evaluate %s.")
	return domain.Problem{
		Question: fmt.Sprintf(format, expr.String()),
		Answer:   strconv.Itoa(evalChain(operands, ops)),
	}, nil
}

// evalChain evaluates operands joined by ops, with * binding tighter
// than + and -.
func evalChain(operands []int, ops []byte) int {
	terms := []int{operands[0]}
	for i, op := range ops {
		next := operands[i+1]
		switch op {
		case '*':
			terms[len(terms)-1] *= next
		case '-':
			terms = append(terms, -next)
		default:
			terms = append(terms, next)
		}
	}

	sum := 0
	for _, t := range terms {
		sum += t
	}
	return sum
}
