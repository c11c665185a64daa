package textfile

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"fakebook/internal/domain"
)

const (
	usersFileName    = "Users.txt"
	friendsFileName  = "Friends.txt"
	postsFileName    = "Posts.txt"
	requestsFileName = "FriendRequests.txt"
)

// Store owns every User, Post and pending FriendRequest in memory and is the
// only writer of the four data files. Loads are best-effort: malformed lines
// and unresolved references are skipped with a warning, never fatal, so the
// store always ends up holding whatever was successfully processed.
//
// The process is single-threaded and synchronous, so there is no locking and
// rewrites are plain truncating writes.
type Store struct {
	logger *slog.Logger

	usersPath    string
	friendsPath  string
	postsPath    string
	requestsPath string

	users     []*domain.User
	usersByID map[string]*domain.User
	posts     []*domain.Post
	postsByID map[string]*domain.Post
	requests  []domain.FriendRequest
}

func New(logger *slog.Logger, dataDir string) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		logger:       logger,
		usersPath:    filepath.Join(dataDir, usersFileName),
		friendsPath:  filepath.Join(dataDir, friendsFileName),
		postsPath:    filepath.Join(dataDir, postsFileName),
		requestsPath: filepath.Join(dataDir, requestsFileName),
		usersByID:    make(map[string]*domain.User),
		postsByID:    make(map[string]*domain.Post),
	}
}

// LoadAll reads the record families in dependency order: friends, posts and
// requests all resolve IDs against the user set.
func (s *Store) LoadAll() {
	users := s.LoadUsers()
	links := s.LoadFriends()
	posts := s.LoadPosts()
	requests := s.LoadRequests()
	s.logger.Info("store loaded",
		"users", users, "friend_links", links, "posts", posts, "pending_requests", requests)
}

func (s *Store) FindByID(userID string) *domain.User {
	for _, u := range s.users {
		if u.ID == userID {
			return u
		}
	}
	return nil
}

func (s *Store) FindByUsername(username string) *domain.User {
	for _, u := range s.users {
		if u.Username == username {
			return u
		}
	}
	return nil
}

func (s *Store) FindByEmail(email string) *domain.User {
	for _, u := range s.users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

func (s *Store) UserCount() int { return len(s.users) }

func (s *Store) Users() []*domain.User { return s.users }

func (s *Store) PostByID(postID string) *domain.Post {
	return s.postsByID[postID]
}

// PostsByAuthor returns the author's posts in insertion order.
func (s *Store) PostsByAuthor(userID string) []*domain.Post {
	u := s.usersByID[userID]
	if u == nil {
		return nil
	}
	out := make([]*domain.Post, 0, len(u.PostIDs))
	for _, id := range u.PostIDs {
		if p := s.postsByID[id]; p != nil {
			out = append(out, p)
		}
	}
	return out
}

// eachLine feeds every non-empty line of the file to fn. A missing or
// unreadable file is reported and treated as zero records.
func (s *Store) eachLine(path string, fn func(line string)) {
	f, err := os.Open(path)
	if err != nil {
		s.logger.Warn("cannot open data file", "path", path, "err", err)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fn(line)
	}
	if err := scanner.Err(); err != nil {
		s.logger.Warn("reading data file", "path", path, "err", err)
	}
}

func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s for append: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("append to %s: %w", path, err)
	}
	return nil
}

func writeLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open %s for rewrite: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("rewrite %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("rewrite %s: %w", path, err)
	}
	return nil
}
