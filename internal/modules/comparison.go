package modules

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/custodia-labs/mathgen/internal/core/domain"
)

// errTie is returned when a comparison has no unique answer.
var errTie = errors.New("comparison has no unique answer")

func comparisonModules(s *source) domain.Category {
	return domain.Category{
		"pair":    s.generator(comparePair),
		"sort":    s.generator(sortValues),
		"closest": s.generator(closest),
	}
}

func comparePair(s *source) (domain.Problem, error) {
	e := s.split(s.sampleEntropy(), 2)
	a, b := s.integer(e[0]), s.integer(e[1])
	if a == b {
		return domain.Problem{}, fmt.Errorf("%d and %d: %w", a, b, errTie)
	}

	var question, answer string
	switch s.rng.Intn(4) {
	case 0:
		question = fmt.Sprintf("Which is bigger: %d or %d?", a, b)
		answer = strconv.Itoa(max(a, b))
	case 1:
		question = fmt.Sprintf("Which is smaller: %d or %d?", a, b)
		answer = strconv.Itoa(min(a, b))
	case 2:
		question = fmt.Sprintf("Is %d greater than %d?", a, b)
		answer = boolAnswer(a > b)
	default:
		question = fmt.Sprintf("Is %d less than %d?", a, b)
		answer = boolAnswer(a < b)
	}
	return domain.Problem{Question: question, Answer: answer}, nil
}

func sortValues(s *source) (domain.Problem, error) {
	entropy := s.sampleEntropy()
	n := 3 + int(entropy/5)
	shares := s.split(entropy, n)

	values := make([]int, 0, n)
	for _, share := range shares {
		v := s.integer(share + 1)
		for range maxRetries {
			if !slices.Contains(values, v) {
				break
			}
			v = s.integer(share + 1)
		}
		if slices.Contains(values, v) {
			return domain.Problem{}, fmt.Errorf("duplicate value %d: %w", v, errNoSolution)
		}
		values = append(values, v)
	}

	question := joinInts(values)
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	if s.coin() {
		return domain.Problem{
			Question: fmt.Sprintf("Sort %s in ascending order.", question),
			Answer:   joinInts(sorted),
		}, nil
	}
	slices.Reverse(sorted)
	return domain.Problem{
		Question: fmt.Sprintf("Sort %s in decreasing order.", question),
		Answer:   joinInts(sorted),
	}, nil
}

// optionLabels label multiple-choice options.
var optionLabels = []string{"a", "b", "c", "d"}

func closest(s *source) (domain.Problem, error) {
	e := s.split(s.sampleEntropy(), 2)
	target := s.integer(e[0])

	n := 3
	if e[1] > 4 {
		n = 4
	}
	options := make([]int, n)
	for i := range options {
		options[i] = s.integer(e[1])
	}

	best, unique := nearestIndex(target, options)
	if !unique {
		return domain.Problem{}, fmt.Errorf("nearest to %d: %w", target, errTie)
	}

	var choices strings.Builder
	for i, v := range options {
		fmt.Fprintf(&choices, "  (%s) %d", optionLabels[i], v)
	}
	return domain.Problem{
		Question: fmt.Sprintf("Which is the nearest to %d?%s", target, choices.String()),
		Answer:   "(" + optionLabels[best] + ")",
	}, nil
}

// nearestIndex returns the index of the option closest to target and
// whether no other option is equally close.
func nearestIndex(target int, options []int) (int, bool) {
	best, unique := 0, true
	bestDist := distance(target, options[0])
	for i := 1; i < len(options); i++ {
		d := distance(target, options[i])
		switch {
		case d < bestDist:
			best, bestDist, unique = i, d, true
		case d == bestDist:
			unique = false
		}
	}
	return best, unique
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
