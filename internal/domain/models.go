package domain

import "time"

// User is the canonical in-memory record for an account. Friends holds user
// IDs, never pointers, so identity is always ID equality and the store stays
// the single owner of every User. The friend relation is symmetric: an ID in
// a.Friends implies a.ID is in that user's Friends.
type User struct {
	ID            string
	Username      string
	Email         string
	Password      string
	Age           int
	Gender        string
	Location      string
	PublicProfile bool
	CreatedAt     time.Time

	Friends []string
	PostIDs []string
}

// Post is immutable after creation. Public gates visibility independently of
// the author's profile flag.
type Post struct {
	ID        string
	AuthorID  string
	Content   string
	CreatedAt time.Time
	Public    bool
}

type RequestStatus string

const (
	RequestPending RequestStatus = "PENDING"
)

// FriendRequest is identified by (FromID, ToID, CreatedAt). Accepted and
// declined requests are never written back; the pending queue is whatever the
// requests file currently holds.
type FriendRequest struct {
	FromID    string
	ToID      string
	CreatedAt time.Time
	Status    RequestStatus
}

type Decision string

const (
	DecisionAccept  Decision = "accept"
	DecisionDecline Decision = "decline"
	DecisionIgnore  Decision = "ignore"
)

// RequestResolution pairs an incoming request with the recipient's decision.
type RequestResolution struct {
	Request  FriendRequest
	Decision Decision
}

// Session is an explicit login token threaded through every workflow call.
// There is no ambient current-user state anywhere in the core.
type Session struct {
	ID        string
	UserID    string
	CreatedAt time.Time
}
