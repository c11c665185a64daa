package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"fakebook/internal/domain"
)

type UsersStore interface {
	FindByID(userID string) *domain.User
	FindByUsername(username string) *domain.User
	FindByEmail(email string) *domain.User
	UserCount() int
	AppendUser(u *domain.User) error
}

// AuthService owns login and signup. Passwords are stored and compared
// verbatim; the data files predate any hashing scheme and stay compatible
// with it.
type AuthService struct {
	Users        UsersStore
	Now          func() time.Time
	NewSessionID func() string
}

type SignUpParams struct {
	Username      string
	Email         string
	Password      string
	Location      string
	Gender        string
	Age           int
	PublicProfile bool
}

// Login scans the user set for a verbatim email+password match.
func (s *AuthService) Login(email, password string) (domain.Session, error) {
	u := s.Users.FindByEmail(email)
	if u == nil || u.Password != password {
		return domain.Session{}, domain.ErrInvalidCredentials
	}
	return s.newSession(u.ID), nil
}

// SignUp validates the collected fields, rejects an already-registered email
// without touching the users file, then appends the new account and logs it
// in. IDs follow the existing u<n> scheme.
func (s *AuthService) SignUp(p SignUpParams) (domain.Session, error) {
	fields := map[string]string{}
	p.Username = strings.TrimSpace(p.Username)
	p.Email = strings.TrimSpace(p.Email)
	if p.Username == "" {
		fields["username"] = "required"
	}
	if p.Email == "" {
		fields["email"] = "required"
	}
	if p.Password == "" {
		fields["password"] = "required"
	}
	if p.Age <= 0 {
		fields["age"] = "must be positive"
	}
	if len(fields) > 0 {
		return domain.Session{}, domain.NewValidationError(fields)
	}

	if existing := s.Users.FindByEmail(p.Email); existing != nil {
		return domain.Session{}, domain.ErrEmailTaken
	}

	u := &domain.User{
		ID:            fmt.Sprintf("u%d", s.Users.UserCount()+1),
		Username:      p.Username,
		Email:         p.Email,
		Password:      p.Password,
		Location:      p.Location,
		Gender:        p.Gender,
		Age:           p.Age,
		PublicProfile: p.PublicProfile,
		CreatedAt:     s.now(),
	}
	if err := s.Users.AppendUser(u); err != nil {
		return domain.Session{}, fmt.Errorf("sign up: %w", err)
	}
	return s.newSession(u.ID), nil
}

func (s *AuthService) newSession(userID string) domain.Session {
	if s.NewSessionID == nil {
		s.NewSessionID = uuid.NewString
	}
	return domain.Session{
		ID:        s.NewSessionID(),
		UserID:    userID,
		CreatedAt: s.now(),
	}
}

func (s *AuthService) now() time.Time {
	if s.Now == nil {
		s.Now = time.Now
	}
	return s.Now()
}
