package domain

// Visibility rules live here and nowhere else; every read path goes through
// these two functions. A user always sees their own profile and posts in full.

// CanViewFullProfile reports whether viewer may see subject's full profile:
// age, gender and posts, as opposed to the public name/location subset.
func CanViewFullProfile(viewer, subject *User) bool {
	if viewer.ID == subject.ID {
		return true
	}
	return subject.PublicProfile || IsFriend(viewer, subject.ID)
}

// CanViewPost reports whether viewer may see the given post. Friendship with
// the author reveals friends-only posts regardless of the author's profile
// flag.
func CanViewPost(viewer *User, post *Post) bool {
	if viewer.ID == post.AuthorID {
		return true
	}
	return post.Public || IsFriend(viewer, post.AuthorID)
}
