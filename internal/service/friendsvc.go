package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fakebook/internal/domain"
)

type FriendshipsStore interface {
	Requests() []domain.FriendRequest
	PendingFor(userID string) []domain.FriendRequest
	AppendRequest(r domain.FriendRequest) error
	ReplaceRequests(retained []domain.FriendRequest) error
	PersistFriendGraph() error
}

// FriendsService drives the friend-request workflow: create, respond,
// unfriend. Accepting or declining removes the record from the request file
// via a full rewrite; ignoring leaves it untouched.
type FriendsService struct {
	Users       UsersStore
	Friendships FriendshipsStore
	Now         func() time.Time
}

// SendRequest appends a new pending request addressed to the named user.
// Duplicate pending requests between the same pair are not checked for,
// matching the stored data this system grew up with.
func (s *FriendsService) SendRequest(sess domain.Session, targetUsername string) (domain.FriendRequest, error) {
	targetUsername = strings.TrimSpace(targetUsername)
	if targetUsername == "" {
		return domain.FriendRequest{}, domain.NewValidationError(map[string]string{"username": "required"})
	}

	target := s.Users.FindByUsername(targetUsername)
	if target == nil {
		return domain.FriendRequest{}, domain.ErrNotFound
	}
	if target.ID == sess.UserID {
		return domain.FriendRequest{}, domain.NewValidationError(map[string]string{"username": "cannot friend yourself"})
	}

	r := domain.FriendRequest{
		FromID:    sess.UserID,
		ToID:      target.ID,
		CreatedAt: s.now(),
		Status:    domain.RequestPending,
	}
	if err := s.Friendships.AppendRequest(r); err != nil {
		return domain.FriendRequest{}, fmt.Errorf("send request: %w", err)
	}
	return r, nil
}

// IncomingRequest pairs a pending request with the requester's display name,
// ready to render. FromName falls back to the raw ID when the requester is
// not in the loaded user set.
type IncomingRequest struct {
	Request  domain.FriendRequest
	FromName string
}

// Incoming returns the pending requests addressed to the session user.
func (s *FriendsService) Incoming(sess domain.Session) []IncomingRequest {
	pending := s.Friendships.PendingFor(sess.UserID)
	out := make([]IncomingRequest, 0, len(pending))
	for _, r := range pending {
		name := r.FromID
		if from := s.Users.FindByID(r.FromID); from != nil {
			name = from.Username
		}
		out = append(out, IncomingRequest{Request: r, FromName: name})
	}
	return out
}

// Respond applies the recipient's decisions over the whole queue. Accepted
// requests become symmetric friend edges and are dropped from the file,
// declined ones are just dropped, ignored ones are retained verbatim. Every
// record not addressed to the session user, or not pending, is retained. The
// request file is then rewritten from the retained set in one pass.
func (s *FriendsService) Respond(sess domain.Session, resolutions []domain.RequestResolution) (accepted int, err error) {
	me := s.Users.FindByID(sess.UserID)
	if me == nil {
		return 0, domain.ErrUnknownUser
	}

	decisions := make(map[requestKey]domain.Decision, len(resolutions))
	for _, res := range resolutions {
		decisions[keyOf(res.Request)] = res.Decision
	}

	var retained []domain.FriendRequest
	for _, r := range s.Friendships.Requests() {
		if r.Status != domain.RequestPending || r.ToID != sess.UserID {
			retained = append(retained, r)
			continue
		}
		switch decisions[keyOf(r)] {
		case domain.DecisionAccept:
			requester := s.Users.FindByID(r.FromID)
			if requester == nil {
				// Requester not resolvable; keep the record rather than
				// silently losing it.
				retained = append(retained, r)
				continue
			}
			if err := domain.AddFriend(requester, me); err != nil && !errors.Is(err, domain.ErrFriendshipExists) {
				// Edge rejected, e.g. a self-addressed record written by an
				// external producer. Retain it and keep scanning; the graph
				// persist and file rewrite still cover the rest of the batch.
				retained = append(retained, r)
				continue
			}
			accepted++
		case domain.DecisionDecline:
			// Dropped.
		default:
			retained = append(retained, r)
		}
	}

	if accepted > 0 {
		if err := s.Friendships.PersistFriendGraph(); err != nil {
			return accepted, fmt.Errorf("respond: %w", err)
		}
	}
	if err := s.Friendships.ReplaceRequests(retained); err != nil {
		return accepted, fmt.Errorf("respond: %w", err)
	}
	return accepted, nil
}

// Unfriend removes the symmetric edge with the named user and persists the
// graph. The request file is not touched.
func (s *FriendsService) Unfriend(sess domain.Session, friendUsername string) error {
	me := s.Users.FindByID(sess.UserID)
	if me == nil {
		return domain.ErrUnknownUser
	}
	target := s.Users.FindByUsername(strings.TrimSpace(friendUsername))
	if target == nil {
		return domain.ErrNotFound
	}
	if err := domain.RemoveFriend(me, target); err != nil {
		return err
	}
	if err := s.Friendships.PersistFriendGraph(); err != nil {
		return fmt.Errorf("unfriend %s: %w", target.ID, err)
	}
	return nil
}

type requestKey struct {
	fromID    string
	toID      string
	createdAt int64
}

func keyOf(r domain.FriendRequest) requestKey {
	return requestKey{fromID: r.FromID, toID: r.ToID, createdAt: r.CreatedAt.Unix()}
}

func (s *FriendsService) now() time.Time {
	if s.Now == nil {
		s.Now = time.Now
	}
	return s.Now()
}
