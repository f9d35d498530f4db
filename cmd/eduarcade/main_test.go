package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/eduarcade/internal/storage"
)

// execute runs the root command with args, feeding stdin, and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func tempDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "eduarcade.db")
}

func TestListShowsAllGames(t *testing.T) {
	out, err := execute(t, "", "list")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	for _, want := range []string{"mathdrill", "binaryblitz", "memorymatch", "solarsystem", "Math Master"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestRejectsUnknownDifficulty(t *testing.T) {
	_, err := execute(t, "", "list", "--difficulty", "impossible")
	if err == nil || !strings.Contains(err.Error(), "unknown difficulty") {
		t.Errorf("err = %v, want unknown difficulty", err)
	}
	// Restore the default for later tests.
	if _, err := execute(t, "", "list", "--difficulty", ""); err != nil {
		t.Fatalf("reset difficulty: %v", err)
	}
}

func TestAccountLifecycle(t *testing.T) {
	db := tempDB(t)

	out, err := execute(t, "secret1\nsecret1\n",
		"signup", "--db", db, "--role", "student", "--name", "Ada", "--email", "Ada@Example.com")
	if err != nil {
		t.Fatalf("signup error = %v", err)
	}
	if !strings.Contains(out, "Welcome, Ada") || !strings.Contains(out, "/studenthome") {
		t.Errorf("signup output = %q", out)
	}

	out, err = execute(t, "", "whoami", "--db", db)
	if err != nil {
		t.Fatalf("whoami error = %v", err)
	}
	if !strings.Contains(out, "student: Ada") {
		t.Errorf("whoami output = %q", out)
	}

	if _, err := execute(t, "", "logout", "--db", db, "--role", "student"); err != nil {
		t.Fatalf("logout error = %v", err)
	}
	out, _ = execute(t, "", "whoami", "--db", db)
	if !strings.Contains(out, "guest") {
		t.Errorf("whoami after logout = %q", out)
	}

	if _, err := execute(t, "wrong-pass\n", "login", "--db", db, "--role", "student", "--id", "ada@example.com"); err == nil {
		t.Error("login with a wrong password should fail")
	}

	out, err = execute(t, "secret1\n", "login", "--db", db, "--role", "student", "--id", "ada@example.com")
	if err != nil {
		t.Fatalf("login error = %v", err)
	}
	if !strings.Contains(out, "Hello, Ada") {
		t.Errorf("login output = %q", out)
	}
}

func TestSignupPasswordMismatch(t *testing.T) {
	_, err := execute(t, "secret1\nsecret2\n",
		"signup", "--db", tempDB(t), "--role", "student", "--name", "Ada", "--email", "ada@example.com")
	if err == nil || !strings.Contains(err.Error(), "passwords do not match") {
		t.Errorf("err = %v, want password mismatch", err)
	}
}

func TestSignupReportsFieldErrors(t *testing.T) {
	_, err := execute(t, "secret1\nsecret1\n",
		"signup", "--db", tempDB(t), "--role", "teacher", "--name", " ", "--email", "", "--teacher-id", "")
	if err == nil || !strings.Contains(err.Error(), "please fix the form") {
		t.Fatalf("err = %v, want form errors", err)
	}
}

func TestScoresAndStats(t *testing.T) {
	db := tempDB(t)

	store, err := storage.Open(db)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	for _, r := range []storage.Result{
		{GameID: "mathdrill", Player: "Ada", Score: 30, Attempts: 3},
		{GameID: "mathdrill", Score: 10, Attempts: 3},
		{GameID: "memorymatch", Player: "Ada", Score: 92, Attempts: 8, Completed: true},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() error = %v", err)
		}
	}
	store.Close()

	out, err := execute(t, "", "scores", "mathdrill", "--db", db)
	if err != nil {
		t.Fatalf("scores error = %v", err)
	}
	for _, want := range []string{"Top Scores - Math Master", "Ada", "guest", "Best: 30"} {
		if !strings.Contains(out, want) {
			t.Errorf("scores output missing %q:\n%s", want, out)
		}
	}

	out, err = execute(t, "", "stats", "--db", db, "--recent", "3")
	if err != nil {
		t.Fatalf("stats error = %v", err)
	}
	for _, want := range []string{"Memory Match", "Recent rounds:", "completed", "never"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q:\n%s", want, out)
		}
	}

	if _, err := execute(t, "", "scores", "mathdrill", "--db", db, "--clear"); err != nil {
		t.Fatalf("scores --clear error = %v", err)
	}
	out, _ = execute(t, "", "scores", "mathdrill", "--db", db, "--clear=false")
	if !strings.Contains(out, "No rounds recorded yet.") {
		t.Errorf("scores after clear = %q", out)
	}
}

func TestScoresUnknownGame(t *testing.T) {
	if _, err := execute(t, "", "scores", "chess", "--db", tempDB(t)); err == nil {
		t.Error("expected an error for an unknown game")
	}
}

func TestQuizLifecycle(t *testing.T) {
	db := tempDB(t)
	create := []string{"create-quiz", "--db", db, "--file", "",
		"--title", "Planets", "--subject", "Science", "--description", "Our solar system"}

	if _, err := execute(t, "", create...); err == nil || !strings.Contains(err.Error(), "sign in as a teacher") {
		t.Fatalf("err = %v, want teacher sign-in required", err)
	}

	if _, err := execute(t, "secret1\nsecret1\n", "signup", "--db", db, "--role", "teacher",
		"--name", "Mr Lee", "--teacher-id", "T-17", "--email", ""); err != nil {
		t.Fatalf("teacher signup error = %v", err)
	}

	out, err := execute(t, "Largest planet?\nMars\nJupiter\nVenus\nEarth\nB\n\n", create...)
	if err != nil {
		t.Fatalf("create-quiz error = %v", err)
	}
	if !strings.Contains(out, "eduarcade quiz 1") {
		t.Errorf("create-quiz output = %q", out)
	}

	out, err = execute(t, "", "quizzes", "--db", db)
	if err != nil {
		t.Fatalf("quizzes error = %v", err)
	}
	for _, want := range []string{"mathematics", "English Quiz", "Planets", "1 questions"} {
		if !strings.Contains(out, want) {
			t.Errorf("quizzes output missing %q:\n%s", want, out)
		}
	}

	out, err = execute(t, "b\n", "quiz", "1", "--db", db)
	if err != nil {
		t.Fatalf("quiz error = %v", err)
	}
	if !strings.Contains(out, "Correct!") || !strings.Contains(out, "Quiz finished! Your final score is: 10") {
		t.Errorf("quiz output = %q", out)
	}

	if _, err := execute(t, "", "delete-quiz", "1", "--db", db); err != nil {
		t.Fatalf("delete-quiz error = %v", err)
	}
	out, _ = execute(t, "", "quizzes", "--db", db)
	if !strings.Contains(out, "none yet") {
		t.Errorf("quizzes after delete = %q", out)
	}
}

func TestCreateQuizReportsBadAnswer(t *testing.T) {
	db := tempDB(t)
	if _, err := execute(t, "secret1\nsecret1\n", "signup", "--db", db, "--role", "teacher",
		"--name", "Mr Lee", "--teacher-id", "T-17", "--email", ""); err != nil {
		t.Fatalf("teacher signup error = %v", err)
	}

	_, err := execute(t, "Odd one?\n1\n2\n3\n4\nZ\n\n", "create-quiz", "--db", db, "--file", "",
		"--title", "Numbers", "--subject", "Maths", "--description", "Counting")
	if err == nil || !strings.Contains(err.Error(), "answer must be one of the options") {
		t.Errorf("err = %v, want answer error", err)
	}
}

func TestSubjectQuizRecordsResult(t *testing.T) {
	db := tempDB(t)

	// Wrong, wrong, right, wrong. The first line is not an option and is asked again.
	out, err := execute(t, "x\nA\nA\nA\nA\n", "quiz", "Science", "--db", db)
	if err != nil {
		t.Fatalf("quiz error = %v", err)
	}
	if !strings.Contains(out, "Your Score: 1 / 4") {
		t.Errorf("quiz output = %q", out)
	}
	if !strings.Contains(out, "The correct answer was: Mars") {
		t.Errorf("missing correction for the first question:\n%s", out)
	}

	store, err := storage.Open(db)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()
	recent, err := store.RecentResults(5)
	if err != nil {
		t.Fatalf("RecentResults() error = %v", err)
	}
	if len(recent) != 1 || recent[0].GameID != "quiz" || recent[0].Score != 1 || recent[0].Attempts != 4 {
		t.Errorf("recent = %+v", recent)
	}
}

func TestQuizUnknownSubject(t *testing.T) {
	if _, err := execute(t, "", "quiz", "history", "--db", tempDB(t)); err == nil {
		t.Error("expected an error for an unknown subject")
	}
}

func TestScoresMineForUnscoredGame(t *testing.T) {
	db := tempDB(t)

	store, err := storage.Open(db)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	for _, r := range []storage.Result{
		{GameID: "solarsystem", Attempts: 8, Completed: true},
		{GameID: "solarsystem", Player: "Ada", Attempts: 12, Completed: true},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() error = %v", err)
		}
	}
	store.Close()

	out, err := execute(t, "", "scores", "solarsystem", "--db", db, "--mine=false")
	if err != nil {
		t.Fatalf("scores error = %v", err)
	}
	if !strings.Contains(out, "Fewest Tries - Solar System") || !strings.Contains(out, "Fewest tries: 8") {
		t.Errorf("scores output = %q", out)
	}

	// Nobody is signed in, so "mine" means guest rounds.
	out, err = execute(t, "", "scores", "solarsystem", "--db", db, "--mine")
	if err != nil {
		t.Fatalf("scores --mine error = %v", err)
	}
	if !strings.Contains(out, "Rounds by guest") || strings.Contains(out, "Ada") {
		t.Errorf("scores --mine output = %q", out)
	}
	execute(t, "", "scores", "solarsystem", "--db", db, "--mine=false")
}
