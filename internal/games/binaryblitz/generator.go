// Package binaryblitz implements Binary Blitz, a quiz that asks for the
// binary form of a decimal number.
package binaryblitz

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/eduarcade/internal/core"
)

// Challenge is one target number and the binary strings offered for it.
type Challenge struct {
	Target  int
	Answer  string
	Options []string
}

// Contains reports whether option is one of the offered strings.
func (c Challenge) Contains(option string) bool {
	for _, o := range c.Options {
		if o == option {
			return true
		}
	}
	return false
}

func (c Challenge) clone() Challenge {
	c.Options = append([]string(nil), c.Options...)
	return c
}

// String describes the challenge for logs.
func (c Challenge) String() string {
	return fmt.Sprintf("%d -> %s of %v", c.Target, c.Answer, c.Options)
}

// DrawRange returns the half-open range [lo, hi) numbers are drawn from.
func DrawRange(level int) (lo, hi int) {
	if level < 1 {
		level = 1
	}
	return 10 * level, 20 * level
}

// ToBinary formats n in base 2 without leading zeros.
func ToBinary(n int) string {
	return strconv.FormatInt(int64(n), 2)
}

// maxDrawsPerOption bounds random distractor draws before the generator
// falls back to scanning the range.
const maxDrawsPerOption = 32

// Generate draws a target for the level and builds count distinct options,
// exactly one of which is the target's binary form. Distractors come from
// the same range as the target so their lengths give nothing away.
func Generate(rng core.Rand, level, count int) Challenge {
	lo, hi := DrawRange(level)
	span := hi - lo
	if count > span {
		count = span
	}
	if count < 1 {
		count = 1
	}

	target := lo + rng.Intn(span)
	answer := ToBinary(target)

	seen := map[int]bool{target: true}
	options := []string{answer}

	for draws := 0; len(options) < count && draws < count*maxDrawsPerOption; draws++ {
		n := lo + rng.Intn(span)
		if seen[n] {
			continue
		}
		seen[n] = true
		options = append(options, ToBinary(n))
	}
	for n := lo; len(options) < count && n < hi; n++ {
		if !seen[n] {
			seen[n] = true
			options = append(options, ToBinary(n))
		}
	}

	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return Challenge{Target: target, Answer: answer, Options: options}
}
