// Package quiz holds multiple-choice quizzes: the built-in subject quizzes,
// the ones teachers write on this device, and the session a student takes
// them in.
package quiz

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vovakirdan/eduarcade/internal/validation"
)

// OptionCount is the number of options every question offers.
const OptionCount = 4

// Question is one multiple-choice question. Answer holds the text of the
// correct option.
type Question struct {
	Prompt  string   `json:"question" yaml:"question" validate:"notblank,max=200"`
	Options []string `json:"options" yaml:"options" validate:"len=4,dive,notblank,max=80"`
	Answer  string   `json:"answer" yaml:"answer" validate:"notblank"`
}

// Form is a whole quiz as a teacher writes it, and as it is stored.
type Form struct {
	Title       string     `json:"title" yaml:"title" validate:"notblank,max=80"`
	Subject     string     `json:"subject" yaml:"subject" validate:"notblank,max=40"`
	Description string     `json:"description" yaml:"description" validate:"notblank,max=300"`
	Questions   []Question `json:"questions" yaml:"questions" validate:"min=1,max=50,dive"`
}

const (
	tagAnswerOption    = "answer_option"
	tagDistinctOptions = "distinct_options"
)

func init() {
	validation.RegisterMessage(tagAnswerOption, "must be one of the options")
	validation.RegisterMessage(tagDistinctOptions, "must all be different")
	validation.RegisterStruct(questionStructLevel, Question{})
}

// questionStructLevel checks that the answer is one of the options and that
// no option repeats.
func questionStructLevel(sl validator.StructLevel) {
	q := sl.Current().Interface().(Question)

	seen := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		key := strings.ToLower(strings.TrimSpace(opt))
		if key != "" && seen[key] {
			sl.ReportError(q.Options, "options", "Options", tagDistinctOptions, "")
			break
		}
		seen[key] = true
	}

	if strings.TrimSpace(q.Answer) != "" && q.Choice(q.Answer) < 0 {
		sl.ReportError(q.Answer, "answer", "Answer", tagAnswerOption, "")
	}
}

// Choice returns the index of the option matching text, or -1. Surrounding
// space is ignored; case is not.
func (q Question) Choice(text string) int {
	text = strings.TrimSpace(text)
	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == text {
			return i
		}
	}
	return -1
}

// Validate checks f with the shared validator.
func (f Form) Validate() error {
	return validation.Struct(f)
}

// Normalize returns a copy of f with surrounding space trimmed from every
// text field.
func (f Form) Normalize() Form {
	out := Form{
		Title:       strings.TrimSpace(f.Title),
		Subject:     strings.TrimSpace(f.Subject),
		Description: strings.TrimSpace(f.Description),
		Questions:   make([]Question, len(f.Questions)),
	}
	for i, q := range f.Questions {
		opts := make([]string, len(q.Options))
		for j, o := range q.Options {
			opts[j] = strings.TrimSpace(o)
		}
		out.Questions[i] = Question{
			Prompt:  strings.TrimSpace(q.Prompt),
			Options: opts,
			Answer:  strings.TrimSpace(q.Answer),
		}
	}
	return out
}
