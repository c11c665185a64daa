package textfile

import "fmt"

// LoadFriends replays the adjacency file onto the loaded user set and returns
// the number of links established. Each direction of a friendship appears on
// its own line, so the file itself carries the mutuality; links are applied
// one direction at a time, exactly as stored. Unknown owner or friend IDs are
// skipped with a warning.
func (s *Store) LoadFriends() int {
	if len(s.users) == 0 {
		s.logger.Warn("cannot load friends: user list is empty")
		return 0
	}

	links := 0
	s.eachLine(s.friendsPath, func(line string) {
		ownerID, friendIDs, err := DecodeFriends(line)
		if err != nil {
			s.logger.Warn("skipping malformed friends line", "line", line, "err", err)
			return
		}
		owner := s.usersByID[ownerID]
		if owner == nil {
			s.logger.Warn("skipping friends line for unknown user", "user_id", ownerID)
			return
		}
		for _, friendID := range friendIDs {
			if s.usersByID[friendID] == nil {
				s.logger.Warn("skipping unknown friend id", "user_id", ownerID, "friend_id", friendID)
				continue
			}
			owner.Friends = append(owner.Friends, friendID)
			links++
		}
	})
	return links
}

// PersistFriendGraph rewrites the whole adjacency file from in-memory state.
// The file shape (one adjacency list per user) leaves no way to update a
// single edge in place, so every edge mutation funnels through here.
func (s *Store) PersistFriendGraph() error {
	lines := make([]string, 0, len(s.users))
	for _, u := range s.users {
		lines = append(lines, EncodeFriends(u))
	}
	if err := writeLines(s.friendsPath, lines); err != nil {
		return fmt.Errorf("persist friend graph: %w", err)
	}
	return nil
}
