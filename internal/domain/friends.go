package domain

// IsFriend reports whether otherID is in u's friend set. The relation is
// symmetric, so checking one side is sufficient.
func IsFriend(u *User, otherID string) bool {
	for _, id := range u.Friends {
		if id == otherID {
			return true
		}
	}
	return false
}

// AddFriend links a and b in both directions as one operation. Callers never
// get a half-linked pair: self-friending and duplicate edges are rejected
// before either side is touched.
func AddFriend(a, b *User) error {
	if a.ID == b.ID {
		return ErrSelfFriendship
	}
	if IsFriend(a, b.ID) || IsFriend(b, a.ID) {
		return ErrFriendshipExists
	}
	a.Friends = append(a.Friends, b.ID)
	b.Friends = append(b.Friends, a.ID)
	return nil
}

// RemoveFriend unlinks a and b in both directions, both-or-neither.
func RemoveFriend(a, b *User) error {
	if !IsFriend(a, b.ID) && !IsFriend(b, a.ID) {
		return ErrFriendshipMissing
	}
	a.Friends = removeID(a.Friends, b.ID)
	b.Friends = removeID(b.Friends, a.ID)
	return nil
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, cur := range ids {
		if cur != id {
			out = append(out, cur)
		}
	}
	return out
}
