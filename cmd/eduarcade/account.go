package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/eduarcade/internal/account"
	"github.com/vovakirdan/eduarcade/internal/validation"
)

var (
	flagRole      string
	flagName      string
	flagRoll      string
	flagClass     string
	flagEmail     string
	flagSubject   string
	flagTeacherID string
	flagLoginID   string
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a student or teacher account",
	Long: `Create the account for a role on this device, replacing any previous one.
The password is asked for twice.

Students sign up with an email, teachers with a teacher ID.

Examples:
  eduarcade signup --name Ada --email ada@example.com --class 5B
  eduarcade signup --role teacher --name "Mr Lee" --teacher-id T-17 --subject Maths`,
	Args: cobra.NoArgs,
	RunE: runSignup,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to an existing account",
	Long: `Sign in with the email (students) or teacher ID (teachers) used at sign-up.

Examples:
  eduarcade login --id ada@example.com
  eduarcade login --role teacher --id T-17`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show who is signed in",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

func init() {
	for _, c := range []*cobra.Command{signupCmd, loginCmd, logoutCmd} {
		c.Flags().StringVar(&flagRole, "role", string(account.RoleStudent), "Account role: student or teacher")
	}

	signupCmd.Flags().StringVar(&flagName, "name", "", "Display name")
	signupCmd.Flags().StringVar(&flagRoll, "roll", "", "Roll number (students)")
	signupCmd.Flags().StringVar(&flagClass, "class", "", "Class (students)")
	signupCmd.Flags().StringVar(&flagEmail, "email", "", "Email (students)")
	signupCmd.Flags().StringVar(&flagSubject, "subject", "", "Subject taught (teachers)")
	signupCmd.Flags().StringVar(&flagTeacherID, "teacher-id", "", "Teacher ID (teachers)")

	loginCmd.Flags().StringVar(&flagLoginID, "id", "", "Email (students) or teacher ID (teachers)")
}

// prompter reads passwords without echo from a terminal, or line by line
// from piped input.
type prompter struct {
	in  io.Reader
	out io.Writer
	r   *bufio.Reader
}

func newPrompter(cmd *cobra.Command) *prompter {
	in := cmd.InOrStdin()
	return &prompter{in: in, out: cmd.ErrOrStderr(), r: bufio.NewReader(in)}
}

func (p *prompter) secret(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if f, ok := p.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.out)
		return string(b), err
	}

	line, err := p.r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", fmt.Errorf("reading %s: %w", strings.TrimSpace(strings.ToLower(label)), err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func accountService() (*account.Service, func(), error) {
	store, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	return account.NewService(store), func() { store.Close() }, nil
}

// formError prints field errors one per line.
func formError(err error) error {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return err
	}
	return fmt.Errorf("please fix the form:\n  - %s", strings.ReplaceAll(verrs.Error(), "; ", "\n  - "))
}

func runSignup(cmd *cobra.Command, _ []string) error {
	svc, done, err := accountService()
	if err != nil {
		return err
	}
	defer done()

	p := newPrompter(cmd)
	password, err := p.secret("Password: ")
	if err != nil {
		return err
	}
	confirm, err := p.secret("Confirm password: ")
	if err != nil {
		return err
	}

	nav, err := svc.Signup(account.SignupForm{
		Role:            account.Role(flagRole),
		Name:            flagName,
		Roll:            flagRoll,
		Class:           flagClass,
		Email:           flagEmail,
		Subject:         flagSubject,
		TeacherID:       flagTeacherID,
		Password:        password,
		ConfirmPassword: confirm,
	})
	if err != nil {
		return formError(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Signup successful! Welcome, %s.\n", svc.DisplayName(account.Role(flagRole)))
	fmt.Fprintf(cmd.OutOrStdout(), "Next: %s\n", nav.Dest)
	return nil
}

func runLogin(cmd *cobra.Command, _ []string) error {
	svc, done, err := accountService()
	if err != nil {
		return err
	}
	defer done()

	password, err := newPrompter(cmd).secret("Password: ")
	if err != nil {
		return err
	}

	nav, err := svc.Login(account.LoginForm{
		Role:     account.Role(flagRole),
		ID:       flagLoginID,
		Password: password,
	})
	if err != nil {
		return formError(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Login successful! Hello, %s.\n", svc.DisplayName(account.Role(flagRole)))
	fmt.Fprintf(cmd.OutOrStdout(), "Next: %s\n", nav.Dest)
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	svc, done, err := accountService()
	if err != nil {
		return err
	}
	defer done()

	if _, err := svc.Logout(account.Role(flagRole)); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Signed out of the %s account.\n", flagRole)
	return nil
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	svc, done, err := accountService()
	if err != nil {
		return err
	}
	defer done()

	out := cmd.OutOrStdout()
	signedIn := false
	for _, role := range []account.Role{account.RoleStudent, account.RoleTeacher} {
		name, ok, err := svc.Name(role)
		if err != nil {
			return err
		}
		if ok {
			fmt.Fprintf(out, "%s: %s\n", role, name)
			signedIn = true
		}
	}
	if !signedIn {
		fmt.Fprintln(out, "Not signed in. Playing as a guest.")
	}
	return nil
}
