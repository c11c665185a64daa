package service

import (
	"fmt"
	"strings"
	"time"

	"fakebook/internal/domain"
)

type ProfilesStore interface {
	FindByID(userID string) *domain.User
	FindByUsername(username string) *domain.User
	PostsByAuthor(userID string) []*domain.Post
	AppendPost(p *domain.Post) error
}

// UsersService covers profile viewing, post creation and the privacy toggle.
type UsersService struct {
	Store ProfilesStore
	Now   func() time.Time
}

// ProfileView is what a given viewer may see of a profile. When Full is
// false only the name/location subset is populated and Posts is empty.
type ProfileView struct {
	User    *domain.User
	Full    bool
	Friends []string // friend usernames, own profile only
	Posts   []*domain.Post
}

// OwnProfile returns the session user's complete profile: the visibility
// engine is bypassed for self-views.
func (s *UsersService) OwnProfile(sess domain.Session) (ProfileView, error) {
	me := s.Store.FindByID(sess.UserID)
	if me == nil {
		return ProfileView{}, domain.ErrUnknownUser
	}
	friends := make([]string, 0, len(me.Friends))
	for _, id := range me.Friends {
		if f := s.Store.FindByID(id); f != nil {
			friends = append(friends, f.Username)
		}
	}
	return ProfileView{
		User:    me,
		Full:    true,
		Friends: friends,
		Posts:   s.Store.PostsByAuthor(me.ID),
	}, nil
}

// Profile returns the named user's profile as seen by the session user,
// gated by the visibility engine. Behind a private non-friend profile only
// name and location are shown.
func (s *UsersService) Profile(sess domain.Session, username string) (ProfileView, error) {
	viewer := s.Store.FindByID(sess.UserID)
	if viewer == nil {
		return ProfileView{}, domain.ErrUnknownUser
	}
	subject := s.Store.FindByUsername(strings.TrimSpace(username))
	if subject == nil {
		return ProfileView{}, domain.ErrNotFound
	}
	if subject.ID == viewer.ID {
		return s.OwnProfile(sess)
	}

	view := ProfileView{User: subject, Full: domain.CanViewFullProfile(viewer, subject)}
	if view.Full {
		for _, p := range s.Store.PostsByAuthor(subject.ID) {
			if domain.CanViewPost(viewer, p) {
				view.Posts = append(view.Posts, p)
			}
		}
	}
	return view, nil
}

// CreatePost appends a new post authored by the session user. Post IDs keep
// the existing p<unix-millis> scheme.
func (s *UsersService) CreatePost(sess domain.Session, content string, public bool) (*domain.Post, error) {
	if content == "" {
		return nil, domain.NewValidationError(map[string]string{"content": "required"})
	}
	now := s.now()
	p := &domain.Post{
		ID:        fmt.Sprintf("p%d", now.UnixMilli()),
		AuthorID:  sess.UserID,
		Content:   content,
		CreatedAt: now,
		Public:    public,
	}
	if err := s.Store.AppendPost(p); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return p, nil
}

// SetPrivacy flips the profile flag in memory only. The users file is
// append-only and never rewritten, so the change lasts until the process
// exits.
func (s *UsersService) SetPrivacy(sess domain.Session, public bool) error {
	me := s.Store.FindByID(sess.UserID)
	if me == nil {
		return domain.ErrUnknownUser
	}
	me.PublicProfile = public
	return nil
}

func (s *UsersService) now() time.Time {
	if s.Now == nil {
		s.Now = time.Now
	}
	return s.Now()
}
