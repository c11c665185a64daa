package textfile

import (
	"fmt"

	"fakebook/internal/domain"
)

// LoadPosts reads the posts file and returns the number of posts loaded.
// Posts whose author is not in the loaded user set are skipped.
func (s *Store) LoadPosts() int {
	if len(s.users) == 0 {
		s.logger.Warn("cannot load posts: user list is empty")
		return 0
	}

	loaded := 0
	s.eachLine(s.postsPath, func(line string) {
		p, err := DecodePost(line)
		if err != nil {
			s.logger.Warn("skipping malformed post line", "line", line, "err", err)
			return
		}
		author := s.usersByID[p.AuthorID]
		if author == nil {
			s.logger.Warn("skipping post with unknown author", "post_id", p.ID, "author_id", p.AuthorID)
			return
		}
		post := p
		s.posts = append(s.posts, &post)
		s.postsByID[post.ID] = &post
		author.PostIDs = append(author.PostIDs, post.ID)
		loaded++
	})
	return loaded
}

// AppendPost writes one encoded post line and adds the post to memory and to
// its author's ordered post list. Existing lines are never rewritten.
func (s *Store) AppendPost(p *domain.Post) error {
	author := s.usersByID[p.AuthorID]
	if author == nil {
		return fmt.Errorf("append post %s: author %s: %w", p.ID, p.AuthorID, domain.ErrUnknownUser)
	}
	if err := appendLine(s.postsPath, EncodePost(p)); err != nil {
		return fmt.Errorf("append post %s: %w", p.ID, err)
	}
	s.posts = append(s.posts, p)
	s.postsByID[p.ID] = p
	author.PostIDs = append(author.PostIDs, p.ID)
	return nil
}
