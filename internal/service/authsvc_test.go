package service

import (
	"errors"
	"testing"
	"time"

	"fakebook/internal/domain"
)

type stubUsersStore struct {
	t *testing.T

	findByIDFunc       func(string) *domain.User
	findByUsernameFunc func(string) *domain.User
	findByEmailFunc    func(string) *domain.User
	userCountFunc      func() int
	appendUserFunc     func(*domain.User) error
}

func (s *stubUsersStore) FindByID(id string) *domain.User {
	if s.findByIDFunc != nil {
		return s.findByIDFunc(id)
	}
	s.t.Fatalf("FindByID called unexpectedly")
	return nil
}

func (s *stubUsersStore) FindByUsername(username string) *domain.User {
	if s.findByUsernameFunc != nil {
		return s.findByUsernameFunc(username)
	}
	s.t.Fatalf("FindByUsername called unexpectedly")
	return nil
}

func (s *stubUsersStore) FindByEmail(email string) *domain.User {
	if s.findByEmailFunc != nil {
		return s.findByEmailFunc(email)
	}
	s.t.Fatalf("FindByEmail called unexpectedly")
	return nil
}

func (s *stubUsersStore) UserCount() int {
	if s.userCountFunc != nil {
		return s.userCountFunc()
	}
	s.t.Fatalf("UserCount called unexpectedly")
	return 0
}

func (s *stubUsersStore) AppendUser(u *domain.User) error {
	if s.appendUserFunc != nil {
		return s.appendUserFunc(u)
	}
	s.t.Fatalf("AppendUser called unexpectedly")
	return errors.New("unexpected call")
}

func TestAuthServiceLogin(t *testing.T) {
	alice := &domain.User{ID: "u1", Email: "alice@fakebook.com", Password: "Pass1"}
	users := &stubUsersStore{
		t: t,
		findByEmailFunc: func(email string) *domain.User {
			if email == alice.Email {
				return alice
			}
			return nil
		},
	}
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	svc := &AuthService{
		Users:        users,
		Now:          func() time.Time { return now },
		NewSessionID: func() string { return "sess-1" },
	}

	sess, err := svc.Login("alice@fakebook.com", "Pass1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.UserID != "u1" || sess.ID != "sess-1" || !sess.CreatedAt.Equal(now) {
		t.Fatalf("unexpected session: %+v", sess)
	}

	if _, err := svc.Login("alice@fakebook.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if _, err := svc.Login("nobody@fakebook.com", "Pass1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestAuthServiceSignUp(t *testing.T) {
	var appended *domain.User
	users := &stubUsersStore{
		t:               t,
		findByEmailFunc: func(string) *domain.User { return nil },
		userCountFunc:   func() int { return 3 },
		appendUserFunc: func(u *domain.User) error {
			appended = u
			return nil
		},
	}
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	svc := &AuthService{
		Users:        users,
		Now:          func() time.Time { return now },
		NewSessionID: func() string { return "sess-2" },
	}

	sess, err := svc.SignUp(SignUpParams{
		Username: "Dave", Email: "dave@fakebook.com", Password: "Pass4",
		Location: "Country4", Gender: "M", Age: 22, PublicProfile: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appended == nil {
		t.Fatalf("expected user to be appended")
	}
	if appended.ID != "u4" {
		t.Fatalf("expected id u4, got %s", appended.ID)
	}
	if !appended.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created-at: %s", appended.CreatedAt)
	}
	if sess.UserID != "u4" {
		t.Fatalf("unexpected session user: %s", sess.UserID)
	}
}

func TestAuthServiceSignUpDuplicateEmail(t *testing.T) {
	users := &stubUsersStore{
		t: t,
		findByEmailFunc: func(string) *domain.User {
			return &domain.User{ID: "u1", Email: "taken@fakebook.com"}
		},
	}
	svc := &AuthService{Users: users}

	_, err := svc.SignUp(SignUpParams{
		Username: "X", Email: "taken@fakebook.com", Password: "p", Age: 20,
	})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected email taken, got %v", err)
	}
}

func TestAuthServiceSignUpValidation(t *testing.T) {
	svc := &AuthService{Users: &stubUsersStore{t: t}}

	_, err := svc.SignUp(SignUpParams{Username: "  ", Email: "", Password: "", Age: 0})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
