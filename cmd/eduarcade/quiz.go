package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/eduarcade/internal/account"
	"github.com/vovakirdan/eduarcade/internal/quiz"
	"github.com/vovakirdan/eduarcade/internal/storage"
)

var (
	flagQuizTitle       string
	flagQuizSubject     string
	flagQuizDescription string
	flagQuizFile        string
)

var quizzesCmd = &cobra.Command{
	Use:   "quizzes",
	Short: "List subject and teacher quizzes",
	Args:  cobra.NoArgs,
	RunE:  runQuizzes,
}

var quizCmd = &cobra.Command{
	Use:   "quiz <subject|number>",
	Short: "Take a quiz",
	Long: `Take a built-in subject quiz by name, or a teacher quiz by its number
from 'eduarcade quizzes'. Answer with A-D or the option text.

Subject quizzes score one point per correct answer, teacher quizzes ten.

Examples:
  eduarcade quiz science
  eduarcade quiz 2`,
	Args: cobra.ExactArgs(1),
	RunE: runQuiz,
}

var createQuizCmd = &cobra.Command{
	Use:   "create-quiz",
	Short: "Write a quiz for students (teachers)",
	Long: `Write a multiple-choice quiz and save it for students on this device.
Questions are asked for one at a time, each with four options; leave the
question blank to finish. With --file, the quiz is read from a YAML or JSON
file instead.

Examples:
  eduarcade create-quiz --title "Fractions" --subject Maths --description "Halves and quarters"
  eduarcade create-quiz --file fractions.yaml`,
	Args: cobra.NoArgs,
	RunE: runCreateQuiz,
}

var deleteQuizCmd = &cobra.Command{
	Use:   "delete-quiz <number>",
	Short: "Delete a teacher quiz (teachers)",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeleteQuiz,
}

func init() {
	createQuizCmd.Flags().StringVar(&flagQuizTitle, "title", "", "Quiz title")
	createQuizCmd.Flags().StringVar(&flagQuizSubject, "subject", "", "Subject, e.g. Science")
	createQuizCmd.Flags().StringVar(&flagQuizDescription, "description", "", "Short description")
	createQuizCmd.Flags().StringVar(&flagQuizFile, "file", "", "Read the whole quiz from a YAML or JSON file")
}

func (p *prompter) line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// requireTeacher fails unless a teacher is signed in.
func requireTeacher(store *storage.Store) (string, error) {
	name, ok, err := account.NewService(store).Name(account.RoleTeacher)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.New("sign in as a teacher first (eduarcade login --role teacher)")
	}
	return name, nil
}

func runQuizzes(cmd *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	builtin, err := quiz.Builtin()
	if err != nil {
		return err
	}
	teacher, err := quiz.NewLibrary(store).Teacher()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Subject quizzes:")
	for _, f := range builtin {
		fmt.Fprintf(out, "  %-12s  %-18s  %s\n", strings.ToLower(f.Subject), f.Title, f.Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Teacher quizzes:")
	if len(teacher) == 0 {
		fmt.Fprintln(out, "  none yet")
		return nil
	}
	for i, f := range teacher {
		fmt.Fprintf(out, "  %-3d  %-24s  %-12s  %d questions\n", i+1, f.Title, f.Subject, len(f.Questions))
	}
	return nil
}

// pickQuiz resolves a quiz number to a teacher quiz and anything else to a
// subject quiz.
func pickQuiz(store *storage.Store, ref string) (quiz.Form, quiz.Scoring, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		f, err := quiz.NewLibrary(store).TeacherQuiz(n)
		return f, quiz.ScoringPoints, err
	}
	f, err := quiz.BuiltinBySubject(ref)
	return f, quiz.ScoringTally, err
}

func runQuiz(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	form, scoring, err := pickQuiz(store, args[0])
	if err != nil {
		return err
	}
	session := quiz.NewSession(form, scoring)
	if err := session.Start(); err != nil {
		return formError(err)
	}

	out := cmd.OutOrStdout()
	p := newPrompter(cmd)
	fmt.Fprintf(out, "%s\n%s\n", form.Title, form.Description)

	for {
		q, ok := session.Question()
		if !ok {
			break
		}
		snap := session.Snapshot()
		fmt.Fprintf(out, "\nQuestion %d of %d: %s\n", snap.Index+1, snap.Total, q.Prompt)
		for i, opt := range q.Options {
			fmt.Fprintf(out, "  %c) %s\n", 'A'+i, opt)
		}

		choice, err := askChoice(p, q)
		if err != nil {
			return fmt.Errorf("quiz stopped: %w", err)
		}
		fb, _ := session.Answer(choice)
		fmt.Fprintln(out, fb.Message)
	}

	outcome := session.Outcome()
	fmt.Fprintln(out)
	fmt.Fprintln(out, outcome.Summary)

	player := signedInStudent(store)
	if _, err := store.SaveResult(storage.Result{
		GameID:    outcome.GameID,
		Player:    player,
		Score:     outcome.Score,
		Attempts:  outcome.Attempts,
		Completed: outcome.Completed,
	}); err != nil {
		newLogger(cmd.ErrOrStderr()).Warn("could not save quiz result", "error", err)
	}
	return nil
}

// askChoice reads answers until one names an option by letter or text.
func askChoice(p *prompter, q quiz.Question) (int, error) {
	for {
		text, err := p.line(fmt.Sprintf("Your answer (A-%c): ", 'A'+len(q.Options)-1))
		if err != nil {
			return 0, err
		}
		if i := letterIndex(text, len(q.Options)); i >= 0 {
			return i, nil
		}
		if i := q.Choice(text); i >= 0 {
			return i, nil
		}
		fmt.Fprintln(p.out, "Please pick one of the options.")
	}
}

// letterIndex maps a single option letter, A for the first, to its index.
// It returns -1 for anything else.
func letterIndex(text string, n int) int {
	if len(text) != 1 {
		return -1
	}
	i := int(strings.ToUpper(text)[0]) - 'A'
	if i < 0 || i >= n {
		return -1
	}
	return i
}

func runCreateQuiz(cmd *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if _, err := requireTeacher(store); err != nil {
		return err
	}

	var form quiz.Form
	if flagQuizFile != "" {
		data, err := os.ReadFile(flagQuizFile)
		if err != nil {
			return err
		}
		// Reads JSON files too.
		if err := yaml.Unmarshal(data, &form); err != nil {
			return fmt.Errorf("cannot parse %s: %w", flagQuizFile, err)
		}
	} else {
		form = quiz.Form{Title: flagQuizTitle, Subject: flagQuizSubject, Description: flagQuizDescription}
		if form.Questions, err = askQuestions(newPrompter(cmd)); err != nil {
			return err
		}
	}

	n, err := quiz.NewLibrary(store).Create(form)
	if err != nil {
		return formError(err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Quiz Created Successfully! Students can take it with 'eduarcade quiz %d'.\n", n)
	return nil
}

// askQuestions collects questions until a blank one is entered or input
// ends.
func askQuestions(p *prompter) ([]quiz.Question, error) {
	var questions []quiz.Question
	for {
		prompt, err := p.line(fmt.Sprintf("Question %d (blank to finish): ", len(questions)+1))
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if prompt == "" {
			return questions, nil
		}

		q := quiz.Question{Prompt: prompt, Options: make([]string, quiz.OptionCount)}
		for i := range q.Options {
			if q.Options[i], err = p.line(fmt.Sprintf("  Option %c: ", 'A'+i)); err != nil {
				return nil, err
			}
		}
		answer, err := p.line("  Correct option (A-D): ")
		if err != nil {
			return nil, err
		}
		q.Answer = answer
		if i := letterIndex(answer, len(q.Options)); i >= 0 {
			q.Answer = q.Options[i]
		}
		questions = append(questions, q)
	}
}

func runDeleteQuiz(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("quiz number must be a number, got %q", args[0])
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if _, err := requireTeacher(store); err != nil {
		return err
	}
	if err := quiz.NewLibrary(store).Delete(n); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted quiz %d.\n", n)
	return nil
}
