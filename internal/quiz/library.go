package quiz

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/eduarcade/internal/account"
)

// KeyTeacherQuizzes is the storage key holding teacher quizzes as a JSON
// array, newest last.
const KeyTeacherQuizzes = "teacherQuizzes"

var ErrNoQuiz = errors.New("quiz: no such quiz")

//go:embed builtin.yaml
var builtinYAML []byte

var loadBuiltin = sync.OnceValues(func() ([]Form, error) {
	var forms []Form
	if err := yaml.Unmarshal(builtinYAML, &forms); err != nil {
		return nil, fmt.Errorf("quiz: cannot parse built-in quizzes: %w", err)
	}
	for i, f := range forms {
		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("quiz: built-in quiz %q: %w", f.Title, err)
		}
		forms[i] = f.Normalize()
	}
	return forms, nil
})

// Builtin returns the built-in subject quizzes.
func Builtin() ([]Form, error) {
	forms, err := loadBuiltin()
	if err != nil {
		return nil, err
	}
	return append([]Form(nil), forms...), nil
}

// BuiltinBySubject finds a built-in quiz by subject, ignoring case.
func BuiltinBySubject(subject string) (Form, error) {
	forms, err := loadBuiltin()
	if err != nil {
		return Form{}, err
	}
	for _, f := range forms {
		if strings.EqualFold(f.Subject, strings.TrimSpace(subject)) {
			return f, nil
		}
	}
	return Form{}, fmt.Errorf("%w for subject %q", ErrNoQuiz, subject)
}

// Library keeps the quizzes teachers write on this device.
type Library struct {
	kv account.KV
}

// NewLibrary creates a library over kv.
func NewLibrary(kv account.KV) *Library {
	return &Library{kv: kv}
}

// Create validates form and appends it to the teacher quizzes. It returns
// the quiz number, counting from 1.
func (l *Library) Create(form Form) (int, error) {
	form = form.Normalize()
	if err := form.Validate(); err != nil {
		return 0, err
	}

	forms, err := l.Teacher()
	if err != nil {
		return 0, err
	}
	forms = append(forms, form)
	if err := l.save(forms); err != nil {
		return 0, err
	}
	return len(forms), nil
}

// Teacher returns every stored teacher quiz in creation order.
func (l *Library) Teacher() ([]Form, error) {
	raw, ok, err := l.kv.Get(KeyTeacherQuizzes)
	if err != nil {
		return nil, err
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var forms []Form
	if err := json.Unmarshal([]byte(raw), &forms); err != nil {
		return nil, fmt.Errorf("quiz: corrupt %s entry: %w", KeyTeacherQuizzes, err)
	}
	return forms, nil
}

// TeacherQuiz returns teacher quiz number n, counting from 1.
func (l *Library) TeacherQuiz(n int) (Form, error) {
	forms, err := l.Teacher()
	if err != nil {
		return Form{}, err
	}
	if n < 1 || n > len(forms) {
		return Form{}, fmt.Errorf("%w: number %d (have %d)", ErrNoQuiz, n, len(forms))
	}
	return forms[n-1], nil
}

// Delete removes teacher quiz number n. Later quizzes move up by one.
func (l *Library) Delete(n int) error {
	forms, err := l.Teacher()
	if err != nil {
		return err
	}
	if n < 1 || n > len(forms) {
		return fmt.Errorf("%w: number %d (have %d)", ErrNoQuiz, n, len(forms))
	}
	forms = append(forms[:n-1], forms[n:]...)
	if len(forms) == 0 {
		return l.kv.Remove(KeyTeacherQuizzes)
	}
	return l.save(forms)
}

func (l *Library) save(forms []Form) error {
	data, err := json.Marshal(forms)
	if err != nil {
		return fmt.Errorf("quiz: cannot encode quizzes: %w", err)
	}
	return l.kv.Set(KeyTeacherQuizzes, string(data))
}
