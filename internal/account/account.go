// Package account handles local student and teacher sign-up and login.
//
// One account per role is kept on the device, the way the learning portal
// keeps them: the user record is stored as JSON under a role key and the
// display name under a separate key that the home screens read.
package account

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/vovakirdan/eduarcade/internal/core"
	"github.com/vovakirdan/eduarcade/internal/validation"
)

// Role is the kind of account.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// Storage keys.
const (
	KeyStudentUser = "studentUser"
	KeyTeacherUser = "teacherUser"
	KeyStudentName = "studentName"
	KeyTeacherName = "teacherName"
)

var (
	ErrPasswordMismatch   = errors.New("account: passwords do not match")
	ErrNoAccount          = errors.New("account: no account found, please sign up first")
	ErrInvalidCredentials = errors.New("account: invalid credentials")
	ErrUnknownRole        = errors.New("account: unknown role")
)

// KV is the key-value capability accounts are stored in.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// SignupForm is the data collected by the sign-up screen. Students identify
// themselves by email, teachers by teacher ID.
type SignupForm struct {
	Role            Role   `json:"role" validate:"required,oneof=student teacher"`
	Name            string `json:"name" validate:"notblank,max=64"`
	Roll            string `json:"roll" validate:"max=32"`
	Class           string `json:"class" validate:"max=32"`
	Email           string `json:"email" validate:"omitempty,email"`
	Subject         string `json:"subject" validate:"max=64"`
	TeacherID       string `json:"teacher_id" validate:"max=32"`
	Password        string `json:"password" validate:"min=6,max=72"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginForm is the data collected by the login screen. ID is the email for
// students and the teacher ID for teachers.
type LoginForm struct {
	Role     Role   `json:"role" validate:"required,oneof=student teacher"`
	ID       string `json:"id" validate:"notblank"`
	Password string `json:"password" validate:"required"`
}

// User is the stored account record.
type User struct {
	Role         Role      `json:"role"`
	Name         string    `json:"name"`
	Roll         string    `json:"roll,omitempty"`
	Class        string    `json:"class,omitempty"`
	Email        string    `json:"email,omitempty"`
	Subject      string    `json:"subject,omitempty"`
	TeacherID    string    `json:"teacherID,omitempty"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

func init() {
	validation.RegisterStruct(signupStructLevel, SignupForm{})
}

// signupStructLevel checks the identifier each role needs.
func signupStructLevel(sl validator.StructLevel) {
	f := sl.Current().Interface().(SignupForm)
	switch f.Role {
	case RoleStudent:
		if strings.TrimSpace(f.Email) == "" {
			sl.ReportError(f.Email, "email", "Email", "required", "")
		}
	case RoleTeacher:
		if strings.TrimSpace(f.TeacherID) == "" {
			sl.ReportError(f.TeacherID, "teacher_id", "TeacherID", "required", "")
		}
	}
}

// Service signs users up and in against a KV store.
type Service struct {
	kv   KV
	cost int
	now  func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithHashCost sets the bcrypt cost.
func WithHashCost(cost int) Option {
	return func(s *Service) { s.cost = cost }
}

// NewService creates an account service.
func NewService(kv KV, opts ...Option) *Service {
	s := &Service{kv: kv, cost: bcrypt.DefaultCost, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Signup stores a new account for the form's role, replacing any previous
// one, and returns where to go next.
func (s *Service) Signup(form SignupForm) (*core.NavRequest, error) {
	if form.Password != form.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	if err := validation.Struct(form); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("account: cannot hash password: %w", err)
	}

	user := User{
		Role:         form.Role,
		Name:         strings.TrimSpace(form.Name),
		Roll:         strings.TrimSpace(form.Roll),
		Class:        strings.TrimSpace(form.Class),
		Email:        normalizeEmail(form.Email),
		Subject:      strings.TrimSpace(form.Subject),
		TeacherID:    strings.TrimSpace(form.TeacherID),
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}
	if user.Role == RoleStudent {
		user.Subject, user.TeacherID = "", ""
	} else {
		user.Roll, user.Class, user.Email = "", "", ""
	}

	data, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("account: cannot encode user: %w", err)
	}

	userKey, nameKey := keysFor(user.Role)
	if err := s.kv.Set(userKey, string(data)); err != nil {
		return nil, err
	}
	if err := s.kv.Set(nameKey, user.Name); err != nil {
		return nil, err
	}

	return homeFor(user), nil
}

// Login checks credentials against the stored account for the role.
func (s *Service) Login(form LoginForm) (*core.NavRequest, error) {
	if err := validation.Struct(form); err != nil {
		return nil, err
	}

	user, err := s.User(form.Role)
	if err != nil {
		return nil, err
	}

	id := strings.TrimSpace(form.ID)
	var idOK bool
	if user.Role == RoleStudent {
		idOK = normalizeEmail(id) == user.Email
	} else {
		idOK = id == user.TeacherID
	}
	// Compare the password even for a wrong ID so both paths cost the same.
	pwErr := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password))
	if !idOK || pwErr != nil {
		return nil, ErrInvalidCredentials
	}

	_, nameKey := keysFor(user.Role)
	if err := s.kv.Set(nameKey, user.Name); err != nil {
		return nil, err
	}
	return homeFor(*user), nil
}

// Logout forgets the signed-in name for the role and returns to the landing
// screen. The account itself is kept.
func (s *Service) Logout(role Role) (*core.NavRequest, error) {
	if role != RoleStudent && role != RoleTeacher {
		return nil, ErrUnknownRole
	}
	_, nameKey := keysFor(role)
	if err := s.kv.Remove(nameKey); err != nil {
		return nil, err
	}
	return core.NewNavRequest(core.DestLanding), nil
}

// User loads the stored account for role.
func (s *Service) User(role Role) (*User, error) {
	if role != RoleStudent && role != RoleTeacher {
		return nil, ErrUnknownRole
	}
	userKey, _ := keysFor(role)
	raw, ok, err := s.kv.Get(userKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w (%s)", ErrNoAccount, role)
	}

	var user User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("account: corrupt %s record: %w", role, err)
	}
	if user.Role == "" {
		user.Role = role
	}
	return &user, nil
}

// Name returns the signed-in display name for role.
func (s *Service) Name(role Role) (string, bool, error) {
	_, nameKey := keysFor(role)
	return s.kv.Get(nameKey)
}

// DisplayName returns the signed-in name or a generic one.
func (s *Service) DisplayName(role Role) string {
	if name, ok, err := s.Name(role); err == nil && ok && name != "" {
		return name
	}
	if role == RoleTeacher {
		return "Teacher"
	}
	return "Student"
}

func keysFor(role Role) (userKey, nameKey string) {
	if role == RoleTeacher {
		return KeyTeacherUser, KeyTeacherName
	}
	return KeyStudentUser, KeyStudentName
}

func homeFor(u User) *core.NavRequest {
	if u.Role == RoleTeacher {
		return core.NewNavRequest(core.DestTeacherHome).With(KeyTeacherName, u.Name)
	}
	return core.NewNavRequest(core.DestStudentHome).With(KeyStudentName, u.Name)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
