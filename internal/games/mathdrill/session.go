package mathdrill

import (
	"strconv"
	"strings"
	"time"

	"github.com/vovakirdan/eduarcade/internal/config"
	"github.com/vovakirdan/eduarcade/internal/core"
)

// Feedback messages shown after a submission.
const (
	MessageCorrect = "Correct!"
	MessageWrong   = "Incorrect! Try again."
)

// Verdict is the result of a submission.
type Verdict int

const (
	VerdictIgnored Verdict = iota // Session not running or next question pending
	VerdictCorrect
	VerdictWrong
)

// Rules are the tunables of a session, already converted to ticks.
type Rules struct {
	Lives             int
	PointsPerCorrect  int
	NextQuestionTicks int
}

// RulesFromConfig converts a loaded config into session rules.
func RulesFromConfig(cfg config.MathDrillConfig, tickRate int) Rules {
	return Rules{
		Lives:             cfg.Gameplay.Lives,
		PointsPerCorrect:  cfg.Gameplay.PointsPerCorrect,
		NextQuestionTicks: core.TicksFor(time.Duration(cfg.Timing.NextQuestionMs)*time.Millisecond, tickRate),
	}
}

// Snapshot is a read-only view of a session.
type Snapshot struct {
	Status      core.Status
	Score       int
	Lives       int
	Correct     int
	Wrong       int
	Challenge   Challenge
	Message     string
	PendingNext bool
}

// Session is one arithmetic drill round.
type Session struct {
	rules Rules
	rng   core.Rand
	sched *core.Scheduler

	status      core.Status
	score       int
	lives       int
	correct     int
	wrong       int
	challenge   Challenge
	message     string
	pendingNext bool
}

// NewSession creates a session that has not started yet.
func NewSession(rules Rules, rng core.Rand) *Session {
	return &Session{
		rules: rules,
		rng:   rng,
		sched: core.NewScheduler(),
	}
}

// Start begins a fresh round, discarding any previous one.
func (s *Session) Start() {
	s.sched.Reset()
	s.status = core.StatusInProgress
	s.score = 0
	s.lives = s.rules.Lives
	s.correct = 0
	s.wrong = 0
	s.pendingNext = false
	s.next()
}

// Submit checks an answer against the live challenge.
// Anything that is not exactly an integer counts as wrong.
func (s *Session) Submit(answer string) Verdict {
	if s.status != core.StatusInProgress || s.pendingNext {
		return VerdictIgnored
	}

	value, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil || value != s.challenge.Answer {
		s.wrong++
		s.lives--
		s.message = MessageWrong
		if s.lives <= 0 {
			s.lives = 0
			s.status = core.StatusEnded
		}
		return VerdictWrong
	}

	s.correct++
	s.score += s.rules.PointsPerCorrect
	s.message = MessageCorrect
	s.pendingNext = true
	s.sched.After(s.rules.NextQuestionTicks, func() {
		s.pendingNext = false
		s.next()
	})
	return VerdictCorrect
}

// Skip replaces the live challenge without penalty.
func (s *Session) Skip() bool {
	if s.status != core.StatusInProgress || s.pendingNext {
		return false
	}
	s.next()
	return true
}

// Tick advances pending delays by one game tick.
func (s *Session) Tick() {
	s.sched.Advance()
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Status:      s.status,
		Score:       s.score,
		Lives:       s.lives,
		Correct:     s.correct,
		Wrong:       s.wrong,
		Challenge:   s.challenge,
		Message:     s.message,
		PendingNext: s.pendingNext,
	}
}

func (s *Session) next() {
	s.challenge = Generate(s.rng)
	s.message = ""
}
