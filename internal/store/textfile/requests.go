package textfile

import (
	"fmt"

	"fakebook/internal/domain"
)

// LoadRequests reads the friend-request file into the pending queue and
// returns the number of records loaded. Records are kept verbatim even when
// they reference unknown users: the respond workflow retains everything not
// addressed to the responding user, and dropping lines here would lose them
// on the next rewrite.
func (s *Store) LoadRequests() int {
	loaded := 0
	s.eachLine(s.requestsPath, func(line string) {
		r, err := DecodeRequest(line)
		if err != nil {
			s.logger.Warn("skipping malformed request line", "line", line, "err", err)
			return
		}
		s.requests = append(s.requests, r)
		loaded++
	})
	return loaded
}

// Requests returns the full queue in file order.
func (s *Store) Requests() []domain.FriendRequest { return s.requests }

// PendingFor returns the pending requests addressed to userID, in file order.
func (s *Store) PendingFor(userID string) []domain.FriendRequest {
	var out []domain.FriendRequest
	for _, r := range s.requests {
		if r.Status == domain.RequestPending && r.ToID == userID {
			out = append(out, r)
		}
	}
	return out
}

// AppendRequest writes one encoded request line and adds it to the queue.
func (s *Store) AppendRequest(r domain.FriendRequest) error {
	if err := appendLine(s.requestsPath, EncodeRequest(r)); err != nil {
		return fmt.Errorf("append request %s->%s: %w", r.FromID, r.ToID, err)
	}
	s.requests = append(s.requests, r)
	return nil
}

// ReplaceRequests rewrites the entire request file from the retained set.
// A full rewrite is the only mechanism by which a request is ever removed.
func (s *Store) ReplaceRequests(retained []domain.FriendRequest) error {
	lines := make([]string, 0, len(retained))
	for _, r := range retained {
		lines = append(lines, EncodeRequest(r))
	}
	if err := writeLines(s.requestsPath, lines); err != nil {
		return fmt.Errorf("replace requests: %w", err)
	}
	s.requests = retained
	return nil
}
