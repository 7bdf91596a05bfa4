package modules

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/mathgen/internal/core/domain"
)

func numberModules(s *source) domain.Category {
	return domain.Category{
		"gcd":           s.generator(gcdProblem),
		"lcm":           s.generator(lcmProblem),
		"is_prime":      s.generator(isPrimeProblem),
		"place_value":   s.generator(placeValue),
		"round_number":  s.generator(roundNumber),
		"div_remainder": s.generator(divRemainder),
	}
}

func gcdProblem(s *source) (domain.Problem, error) {
	e := s.split(s.sampleEntropy(), 3)
	g := s.natural(e[0])
	a, b := g*s.natural(e[1]), g*s.natural(e[2])

	format := s.pick(
		"Calculate the greatest common divisor of %d and %d.",
		"What is the highest common factor of %d and %d?",
		"What is the greatest common factor of %d and %d?",
	)
	return domain.Problem{
		Question: fmt.Sprintf(format, a, b),
		Answer:   strconv.Itoa(gcd(a, b)),
	}, nil
}

func lcmProblem(s *source) (domain.Problem, error) {
	e := s.split(s.sampleEntropy(), 2)
	a, b := s.natural(e[0]), s.natural(e[1])

	format := s.pick(
		"What is the lowest common multiple of %d and %d?",
		"Calculate the least common multiple of %d and %d.",
		"Find the smallest common multiple of %d and %d.",
	)
	return domain.Problem{
		Question: fmt.Sprintf(format, a, b),
		Answer:   strconv.Itoa(lcm(a, b)),
	}, nil
}

func isPrimeProblem(s *source) (domain.Problem, error) {
	n := s.natural(s.sampleEntropy()) + 1
	if s.coin() {
		n = nextPrime(n)
	}

	if s.coin() {
		return domain.Problem{
			Question: fmt.Sprintf(s.pick("Is %d prime?", "Is %d a prime number?"), n),
			Answer:   boolAnswer(isPrime(n)),
		}, nil
	}
	return domain.Problem{
		Question: fmt.Sprintf(s.pick("Is %d composite?", "Is %d a composite number?"), n),
		Answer:   boolAnswer(!isPrime(n)),
	}, nil
}

// placeNames names decimal positions from the right.
var placeNames = []string{
	"units", "tens", "hundreds", "thousands", "ten thousands",
	"hundred thousands", "millions", "ten millions", "hundred millions",
}

func placeValue(s *source) (domain.Problem, error) {
	n := s.natural(s.sampleEntropy()) + 9
	digits := strconv.Itoa(n)
	if len(digits) > len(placeNames) {
		return domain.Problem{}, fmt.Errorf("%d has too many digits: %w", n, errNoSolution)
	}
	position := s.rng.Intn(len(digits))

	format := s.pick("What is the %s digit of %d?", "What is the %s digit in %d?")
	return domain.Problem{
		Question: fmt.Sprintf(format, placeNames[position], n),
		Answer:   string(digits[len(digits)-1-position]),
	}, nil
}

// roundingNames names the powers of ten numbers are rounded to.
var roundingNames = []string{
	"", "ten", "one hundred", "one thousand", "ten thousand",
	"one hundred thousand", "one million",
}

func roundNumber(s *source) (domain.Problem, error) {
	n := s.natural(s.sampleEntropy()) + 10
	digits := len(strconv.Itoa(n))
	limit := min(digits, len(roundingNames)) - 1
	power := 1 + s.rng.Intn(limit)

	place := 1
	for range power {
		place *= 10
	}

	format := s.pick("Round %d to the nearest %s.", "What is %d rounded to the nearest %s?")
	return domain.Problem{
		Question: fmt.Sprintf(format, n, roundingNames[power]),
		Answer:   strconv.Itoa(roundToPlace(n, place)),
	}, nil
}

func divRemainder(s *source) (domain.Problem, error) {
	e := s.split(s.sampleEntropy(), 2)
	a, b := s.natural(e[0]), s.natural(e[1])+1

	format := s.pick(
		"What is the remainder when %d is divided by %d?",
		"Calculate the remainder when %d is divided by %d.",
	)
	return domain.Problem{
		Question: fmt.Sprintf(format, a, b),
		Answer:   strconv.Itoa(a % b),
	}, nil
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return a / gcd(a, b) * b
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// nextPrime returns the smallest prime >= n.
func nextPrime(n int) int {
	for !isPrime(n) {
		n++
	}
	return n
}

// roundToPlace rounds a non-negative n to the nearest multiple of place,
// halves rounding up.
func roundToPlace(n, place int) int {
	return (n + place/2) / place * place
}
