// Package coretest provides deterministic helpers for testing games.
package coretest

// Sequence is a scripted core.Rand. Intn returns the next scripted value
// reduced modulo n; once the script runs out it returns 0. Shuffle leaves the
// order unchanged so tests can reason about positions.
type Sequence struct {
	Values []int
	pos    int
}

// NewSequence creates a scripted source from the given draws.
func NewSequence(values ...int) *Sequence {
	return &Sequence{Values: values}
}

// Intn returns the next scripted draw in [0, n).
func (s *Sequence) Intn(n int) int {
	if n <= 0 {
		panic("coretest: invalid argument to Intn")
	}
	if s.pos >= len(s.Values) {
		return 0
	}
	v := s.Values[s.pos] % n
	if v < 0 {
		v += n
	}
	s.pos++
	return v
}

// Shuffle is the identity permutation.
func (s *Sequence) Shuffle(n int, swap func(i, j int)) {}

// Remaining returns how many scripted draws are left.
func (s *Sequence) Remaining() int {
	return len(s.Values) - s.pos
}
