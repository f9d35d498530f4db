package binaryblitz

import (
	"github.com/vovakirdan/eduarcade/internal/config"
	"github.com/vovakirdan/eduarcade/internal/core"
)

// Feedback messages shown after a selection.
const (
	MessageCorrect = "Correct!"
	MessageWrong   = "Incorrect!"
)

// Verdict is the result of a selection.
type Verdict int

const (
	VerdictIgnored Verdict = iota // Session not running or option not offered
	VerdictCorrect
	VerdictWrong
)

// Rules are the tunables of a session.
type Rules struct {
	Lives            int
	PointsPerCorrect int
	OptionCount      int
	LevelUpEvery     int // 0 keeps the level at 1
}

// RulesFromConfig converts a loaded config into session rules.
func RulesFromConfig(cfg config.BinaryBlitzConfig) Rules {
	return Rules{
		Lives:            cfg.Gameplay.Lives,
		PointsPerCorrect: cfg.Gameplay.PointsPerCorrect,
		OptionCount:      cfg.Gameplay.OptionCount,
		LevelUpEvery:     cfg.Gameplay.LevelUpEvery,
	}
}

// Snapshot is a read-only view of a session.
type Snapshot struct {
	Status    core.Status
	Score     int
	Level     int
	Wrong     int
	Lives     int
	Challenge Challenge
	Message   string
}

// Session is one binary quiz round.
type Session struct {
	rules Rules
	rng   core.Rand

	status    core.Status
	score     int
	level     int
	wrong     int
	challenge Challenge
	message   string
}

// NewSession creates a session that has not started yet.
func NewSession(rules Rules, rng core.Rand) *Session {
	return &Session{rules: rules, rng: rng, level: 1}
}

// Start begins a fresh round at level 1.
func (s *Session) Start() {
	s.status = core.StatusInProgress
	s.score = 0
	s.level = 1
	s.wrong = 0
	s.message = ""
	s.next()
}

// Select answers the live challenge with one of its options.
func (s *Session) Select(option string) Verdict {
	if s.status != core.StatusInProgress || !s.challenge.Contains(option) {
		return VerdictIgnored
	}

	if option != s.challenge.Answer {
		s.wrong++
		s.message = MessageWrong
		if s.wrong >= s.rules.Lives {
			s.status = core.StatusEnded
		}
		return VerdictWrong
	}

	// The level check looks at the score before this answer is counted, so
	// levels change on the answer after each multiple is reached.
	prev := s.score
	if s.rules.LevelUpEvery > 0 && prev > 0 && prev%s.rules.LevelUpEvery == 0 {
		s.level++
	}
	s.score += s.rules.PointsPerCorrect
	s.message = MessageCorrect
	s.next()
	return VerdictCorrect
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	lives := s.rules.Lives - s.wrong
	if lives < 0 {
		lives = 0
	}
	return Snapshot{
		Status:    s.status,
		Score:     s.score,
		Level:     s.level,
		Wrong:     s.wrong,
		Lives:     lives,
		Challenge: s.challenge.clone(),
		Message:   s.message,
	}
}

func (s *Session) next() {
	s.challenge = Generate(s.rng, s.level, s.rules.OptionCount)
}
