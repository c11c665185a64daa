package service

import (
	"sort"

	"fakebook/internal/domain"
)

type FeedStore interface {
	FindByID(userID string) *domain.User
	PostsByAuthor(userID string) []*domain.Post
}

// FeedService assembles the home feed for a user from their social
// neighborhood.
type FeedService struct {
	Store FeedStore
}

// FeedEntry is a post paired with its author's display name, ready to render.
type FeedEntry struct {
	Post       *domain.Post
	AuthorName string
}

// Feed collects every post by a direct friend, whatever its visibility flag,
// plus every public post by a friend-of-friend other than the viewer.
// Deduplicated by post ID, ordered newest first. An empty feed is a normal
// result, not an error.
func (s *FeedService) Feed(sess domain.Session) ([]FeedEntry, error) {
	viewer := s.Store.FindByID(sess.UserID)
	if viewer == nil {
		return nil, domain.ErrUnknownUser
	}

	seen := make(map[string]bool)
	var posts []*domain.Post

	for _, friendID := range viewer.Friends {
		for _, p := range s.Store.PostsByAuthor(friendID) {
			if !seen[p.ID] {
				seen[p.ID] = true
				posts = append(posts, p)
			}
		}
	}

	for _, friendID := range viewer.Friends {
		friend := s.Store.FindByID(friendID)
		if friend == nil {
			continue
		}
		for _, fofID := range friend.Friends {
			if fofID == viewer.ID {
				continue
			}
			for _, p := range s.Store.PostsByAuthor(fofID) {
				if p.Public && !seen[p.ID] {
					seen[p.ID] = true
					posts = append(posts, p)
				}
			}
		}
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	entries := make([]FeedEntry, 0, len(posts))
	for _, p := range posts {
		name := p.AuthorID
		if author := s.Store.FindByID(p.AuthorID); author != nil {
			name = author.Username
		}
		entries = append(entries, FeedEntry{Post: p, AuthorName: name})
	}
	return entries, nil
}
