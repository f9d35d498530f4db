package quiz

import (
	"fmt"

	"github.com/vovakirdan/eduarcade/internal/core"
)

// GameID is the id quiz rounds are recorded under.
const GameID = "quiz"

// Scoring selects how answers are counted and how the result is reported.
type Scoring int

const (
	// ScoringTally gives one point per correct answer and reports
	// "score / total". Built-in subject quizzes use it.
	ScoringTally Scoring = iota
	// ScoringPoints gives ten points per correct answer and reports a final
	// score. Teacher quizzes use it.
	ScoringPoints
)

func (s Scoring) perCorrect() int {
	if s == ScoringPoints {
		return 10
	}
	return 1
}

// Feedback is the verdict on one answer.
type Feedback struct {
	Correct bool
	Answer  string // Text of the correct option
	Message string
}

// Snapshot is a read-only view of a session.
type Snapshot struct {
	Status  core.Status
	Index   int // Zero-based index of the current question
	Total   int
	Correct int
	Score   int
	Message string
}

// Session walks a student through one quiz, question by question.
type Session struct {
	form    Form
	scoring Scoring

	status  core.Status
	index   int
	correct int
	message string
}

// NewSession creates a session that has not started yet.
func NewSession(form Form, scoring Scoring) *Session {
	return &Session{form: form, scoring: scoring}
}

// Start begins the quiz from its first question. A quiz that fails
// validation is refused and the session is left untouched.
func (s *Session) Start() error {
	if err := s.form.Validate(); err != nil {
		return err
	}
	s.status = core.StatusInProgress
	s.index = 0
	s.correct = 0
	s.message = ""
	return nil
}

// Title returns the quiz title.
func (s *Session) Title() string {
	return s.form.Title
}

// Question returns the current question while the quiz is running.
func (s *Session) Question() (Question, bool) {
	if s.status != core.StatusInProgress {
		return Question{}, false
	}
	return s.form.Questions[s.index], true
}

// Answer submits the option at choice for the current question and moves
// on. It reports false when the quiz is not running or choice is out of
// range.
func (s *Session) Answer(choice int) (Feedback, bool) {
	q, ok := s.Question()
	if !ok || choice < 0 || choice >= len(q.Options) {
		return Feedback{}, false
	}

	fb := Feedback{Answer: q.Options[q.Choice(q.Answer)]}
	if choice == q.Choice(q.Answer) {
		s.correct++
		fb.Correct = true
		fb.Message = "Correct!"
	} else {
		fb.Message = "Wrong! The correct answer was: " + fb.Answer
	}

	s.index++
	if s.index == len(s.form.Questions) {
		s.status = core.StatusEnded
		s.message = s.summary()
	}
	return fb, true
}

func (s *Session) score() int {
	return s.correct * s.scoring.perCorrect()
}

func (s *Session) summary() string {
	if s.scoring == ScoringPoints {
		return fmt.Sprintf("Quiz finished! Your final score is: %d", s.score())
	}
	return fmt.Sprintf("Your Score: %d / %d", s.score(), len(s.form.Questions))
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Status:  s.status,
		Index:   s.index,
		Total:   len(s.form.Questions),
		Correct: s.correct,
		Score:   s.score(),
		Message: s.message,
	}
}

// Outcome reports the result of the session for the results store.
func (s *Session) Outcome() core.Outcome {
	return core.Outcome{
		GameID:    GameID,
		Title:     s.form.Title,
		Score:     s.score(),
		Attempts:  s.index,
		Completed: s.status == core.StatusEnded,
		Summary:   s.message,
	}
}
