// Package mathdrill implements Math Master, an arithmetic drill with lives.
package mathdrill

import (
	"fmt"

	"github.com/vovakirdan/eduarcade/internal/core"
)

// Kind is the family a question is drawn from.
type Kind string

const (
	KindBasic      Kind = "basic"
	KindExponent   Kind = "exponent"
	KindPercentage Kind = "percentage"
	KindCombined   Kind = "combined"
)

// Kinds lists every question family in draw order.
var Kinds = []Kind{KindBasic, KindExponent, KindPercentage, KindCombined}

// Challenge is one question and its exact integer answer.
type Challenge struct {
	Kind     Kind
	Question string
	Answer   int
}

// Percentages that can be asked about.
var percentages = []int{5, 10, 15, 20}

// Generate draws a question family uniformly and builds a question from it.
func Generate(rng core.Rand) Challenge {
	switch Kinds[rng.Intn(len(Kinds))] {
	case KindExponent:
		return generateExponent(rng)
	case KindPercentage:
		return generatePercentage(rng)
	case KindCombined:
		return generateCombined(rng)
	default:
		return generateBasic(rng)
	}
}

// generateBasic builds a two-operand question. Operand ranges keep products
// small and make every division exact.
func generateBasic(rng core.Rand) Challenge {
	var a, b, answer int
	op := []rune{'+', '-', '×', '÷'}[rng.Intn(4)]

	switch op {
	case '+', '-':
		a = core.IntRange(rng, 10, 99)
		b = core.IntRange(rng, 10, 99)
		answer = apply(a, op, b)
	case '×':
		a = core.IntRange(rng, 5, 24)
		b = core.IntRange(rng, 2, 11)
		answer = a * b
	case '÷':
		b = core.IntRange(rng, 2, 11)
		answer = core.IntRange(rng, 2, 21)
		a = b * answer
	}

	return Challenge{
		Kind:     KindBasic,
		Question: fmt.Sprintf("%d %c %d = ?", a, op, b),
		Answer:   answer,
	}
}

func generateExponent(rng core.Rand) Challenge {
	base := core.IntRange(rng, 2, 6)
	exp := core.IntRange(rng, 2, 4)

	answer := 1
	for range exp {
		answer *= base
	}

	return Challenge{
		Kind:     KindExponent,
		Question: fmt.Sprintf("%d^%d = ?", base, exp),
		Answer:   answer,
	}
}

// generatePercentage asks for pct% of a base in [50, 99]. The base is snapped
// down to a multiple that makes the answer whole, and back up into range when
// snapping leaves it.
func generatePercentage(rng core.Rand) Challenge {
	base := core.IntRange(rng, 50, 99)
	pct := percentages[rng.Intn(len(percentages))]

	step := 100 / gcd(pct, 100)
	base -= base % step
	if base < 50 {
		base += step
	}

	return Challenge{
		Kind:     KindPercentage,
		Question: fmt.Sprintf("What is %d%% of %d = ?", pct, base),
		Answer:   base * pct / 100,
	}
}

// generateCombined builds (a op1 b) op2 c, evaluated left to right.
func generateCombined(rng core.Rand) Challenge {
	ops := []rune{'+', '-', '×'}

	a := core.IntRange(rng, 1, 10)
	b := core.IntRange(rng, 1, 10)
	c := core.IntRange(rng, 1, 10)
	op1 := ops[rng.Intn(len(ops))]
	op2 := ops[rng.Intn(len(ops))]

	return Challenge{
		Kind:     KindCombined,
		Question: fmt.Sprintf("(%d %c %d) %c %d = ?", a, op1, b, op2, c),
		Answer:   apply(apply(a, op1, b), op2, c),
	}
}

func apply(a int, op rune, b int) int {
	switch op {
	case '+':
		return a + b
	case '-':
		return a - b
	case '×':
		return a * b
	case '÷':
		return a / b
	}
	panic(fmt.Sprintf("mathdrill: unknown operator %q", op))
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
