package textfile

import (
	"fmt"

	"fakebook/internal/domain"
)

// LoadUsers reads the users file and returns the number of records loaded.
// Must run before LoadFriends/LoadPosts/LoadRequests so the ID space exists.
func (s *Store) LoadUsers() int {
	loaded := 0
	s.eachLine(s.usersPath, func(line string) {
		u, err := DecodeUser(line)
		if err != nil {
			s.logger.Warn("skipping malformed user line", "line", line, "err", err)
			return
		}
		user := u
		s.users = append(s.users, &user)
		s.usersByID[user.ID] = &user
		loaded++
	})
	return loaded
}

// AppendUser writes one encoded user line and adds the user to memory. The
// file write happens first: if it fails, the in-memory set is untouched.
func (s *Store) AppendUser(u *domain.User) error {
	if err := appendLine(s.usersPath, EncodeUser(u)); err != nil {
		return fmt.Errorf("append user %s: %w", u.ID, err)
	}
	s.users = append(s.users, u)
	s.usersByID[u.ID] = u
	return nil
}
