package memorymatch

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/eduarcade/internal/config"
	"github.com/vovakirdan/eduarcade/internal/core"
)

var (
	ErrNoWords       = errors.New("memorymatch: no words to match")
	ErrBlankWord     = errors.New("memorymatch: blank word")
	ErrDuplicateWord = errors.New("memorymatch: duplicate word")
)

// Rules are the tunables of a session, with delays already in ticks.
type Rules struct {
	Words         []string
	BaseScore     int
	MatchTicks    int
	MismatchTicks int
}

// RulesFromConfig converts a loaded config into session rules.
func RulesFromConfig(cfg config.MemoryMatchConfig, tickRate int) Rules {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }
	return Rules{
		Words:         append([]string(nil), cfg.Words...),
		BaseScore:     cfg.Scoring.BaseScore,
		MatchTicks:    core.TicksFor(ms(cfg.Timing.MatchDelayMs), tickRate),
		MismatchTicks: core.TicksFor(ms(cfg.Timing.MismatchDelayMs), tickRate),
	}
}

// CardView is how a card looks right now.
type CardView struct {
	Card
	FaceUp  bool
	Matched bool
}

// Snapshot is a read-only view of a session.
type Snapshot struct {
	Status  core.Status
	Cards   []CardView
	Moves   int // Individual eligible flips
	Matched int // Words matched so far
	Pairs   int // Total words in the vocabulary
	Score   int // Final score; zero until the round ends
	Message string
}

// Session is one card matching round.
type Session struct {
	rules Rules
	rng   core.Rand
	sched *core.Scheduler

	status  core.Status
	deck    []Card
	faceUp  []int
	matched map[string]bool
	moves   int
	message string
}

// NewSession creates a session that has not started yet.
func NewSession(rules Rules, rng core.Rand) *Session {
	return &Session{
		rules:   rules,
		rng:     rng,
		sched:   core.NewScheduler(),
		matched: make(map[string]bool),
	}
}

// Start deals a fresh deck. Resolutions still pending from an earlier round
// are dropped. An empty or repeated vocabulary could never be completed, so
// Start refuses it and leaves the session untouched.
func (s *Session) Start() error {
	if err := validateWords(s.rules.Words); err != nil {
		return err
	}

	s.sched.Reset()
	s.status = core.StatusInProgress
	s.deck = Deal(s.rng, s.rules.Words)
	s.faceUp = s.faceUp[:0]
	s.matched = make(map[string]bool)
	s.moves = 0
	s.message = ""
	return nil
}

func validateWords(words []string) error {
	if len(words) == 0 {
		return ErrNoWords
	}
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		if strings.TrimSpace(w) == "" {
			return ErrBlankWord
		}
		if seen[w] {
			return ErrDuplicateWord
		}
		seen[w] = true
	}
	return nil
}

// Len returns the number of cards in the current deck.
func (s *Session) Len() int {
	return len(s.deck)
}

// Flip turns a card face-up. It reports false when the flip is not allowed:
// the round is not running, a pair is waiting to resolve, or the card is
// unknown, already face-up or already matched.
func (s *Session) Flip(id int) bool {
	if s.status != core.StatusInProgress || len(s.faceUp) >= 2 {
		return false
	}
	if id < 0 || id >= len(s.deck) || s.matched[s.deck[id].Word] {
		return false
	}
	for _, up := range s.faceUp {
		if up == id {
			return false
		}
	}

	s.moves++
	s.faceUp = append(s.faceUp, id)
	if len(s.faceUp) == 2 {
		s.resolve()
	}
	return true
}

// resolve schedules the outcome of the two face-up cards.
func (s *Session) resolve() {
	first, second := s.deck[s.faceUp[0]], s.deck[s.faceUp[1]]

	if first.Word != second.Word {
		s.sched.After(s.rules.MismatchTicks, func() {
			s.faceUp = s.faceUp[:0]
		})
		return
	}

	s.sched.After(s.rules.MatchTicks, func() {
		s.matched[first.Word] = true
		s.faceUp = s.faceUp[:0]
		if len(s.matched) == len(s.rules.Words) {
			s.status = core.StatusEnded
			s.message = fmt.Sprintf("You won! Your score is: %d points!", s.FinalScore())
		}
	})
}

// Tick advances pending resolutions by one game tick.
func (s *Session) Tick() {
	s.sched.Advance()
}

// FinalScore is the base score minus one point per completed pair of flips,
// never below zero.
func (s *Session) FinalScore() int {
	score := s.rules.BaseScore - s.moves/2
	if score < 0 {
		return 0
	}
	return score
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	cards := make([]CardView, len(s.deck))
	for i, c := range s.deck {
		cards[i] = CardView{Card: c, Matched: s.matched[c.Word]}
		cards[i].FaceUp = cards[i].Matched
	}
	for _, id := range s.faceUp {
		cards[id].FaceUp = true
	}

	snap := Snapshot{
		Status:  s.status,
		Cards:   cards,
		Moves:   s.moves,
		Matched: len(s.matched),
		Pairs:   len(s.rules.Words),
		Message: s.message,
	}
	if s.status == core.StatusEnded {
		snap.Score = s.FinalScore()
	}
	return snap
}

// IsMatched reports whether word has been matched in this round.
func (s *Session) IsMatched(word string) bool {
	return s.matched[word]
}
