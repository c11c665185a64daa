package seed

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"fakebook/internal/domain"
	"fakebook/internal/store/textfile"
)

// Generator writes synthetic data straight into the four text files, in the
// same external format the store consumes. Pools of unique values are
// shuffled up front so IDs, names and emails never collide.
type Generator struct {
	logger       *slog.Logger
	rng          *rand.Rand
	dataDir      string
	userCount    int
	maxPostsEach int

	userIDs   []string
	usernames []string
	emails    []string
	passwords []string
	locations []string
	postIDs   []string
	contents  []string
}

func New(logger *slog.Logger, dataDir string, userCount, maxPostsEach int, seed int64) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Generator{
		logger:       logger,
		rng:          rand.New(rand.NewSource(seed)),
		dataDir:      dataDir,
		userCount:    userCount,
		maxPostsEach: maxPostsEach,
	}
	totalPosts := userCount * maxPostsEach
	g.userIDs = pool("u", userCount)
	g.usernames = pool("User", userCount)
	g.emails = pool("user", userCount)
	g.passwords = pool("Pass", userCount)
	g.locations = pool("Country", userCount)
	g.postIDs = pool("p", totalPosts)
	g.contents = pool("This is post content no.", totalPosts)
	for _, p := range [][]string{g.userIDs, g.usernames, g.emails, g.passwords, g.locations, g.postIDs, g.contents} {
		g.rng.Shuffle(len(p), func(i, j int) { p[i], p[j] = p[j], p[i] })
	}
	return g
}

// Run regenerates all four files from scratch.
func (g *Generator) Run() error {
	if err := os.MkdirAll(g.dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	users := g.makeUsers()
	if err := g.writeUsers(users); err != nil {
		return err
	}
	if err := g.writeFriendsAndRequests(users); err != nil {
		return err
	}
	if err := g.writePosts(users); err != nil {
		return err
	}
	return nil
}

func (g *Generator) makeUsers() []*domain.User {
	users := make([]*domain.User, 0, g.userCount)
	now := time.Now()
	for i := 0; i < g.userCount; i++ {
		gender := "M"
		if g.rng.Intn(2) == 0 {
			gender = "F"
		}
		users = append(users, &domain.User{
			ID:            g.userIDs[i],
			Username:      g.usernames[i],
			Email:         g.emails[i] + "@fakebook.com",
			Password:      g.passwords[i],
			Location:      g.locations[g.rng.Intn(len(g.locations))],
			Gender:        gender,
			Age:           13 + g.rng.Intn(108),
			PublicProfile: g.rng.Intn(2) == 1,
			CreatedAt:     now.Add(-time.Duration(g.rng.Intn(100000)) * time.Second),
		})
	}
	return users
}

func (g *Generator) writeUsers(users []*domain.User) error {
	lines := make([]string, 0, len(users))
	for _, u := range users {
		lines = append(lines, textfile.EncodeUser(u))
	}
	if err := writeFile(filepath.Join(g.dataDir, "Users.txt"), lines); err != nil {
		return err
	}
	g.logger.Info("generated users", "count", len(users))
	return nil
}

// writeFriendsAndRequests picks roughly 30% of user pairs as connected; one
// in ten of those stays a pending request instead of becoming a mutual edge.
func (g *Generator) writeFriendsAndRequests(users []*domain.User) error {
	var requests []string
	edges := 0
	pending := 0
	now := time.Now()

	for i := range users {
		for j := i + 1; j < len(users); j++ {
			if g.rng.Intn(10)+1 > 3 {
				continue
			}
			if g.rng.Intn(10) == 0 {
				requests = append(requests, textfile.EncodeRequest(domain.FriendRequest{
					FromID:    users[i].ID,
					ToID:      users[j].ID,
					CreatedAt: now,
					Status:    domain.RequestPending,
				}))
				pending++
				continue
			}
			users[i].Friends = append(users[i].Friends, users[j].ID)
			users[j].Friends = append(users[j].Friends, users[i].ID)
			edges++
		}
	}

	lines := make([]string, 0, len(users))
	for _, u := range users {
		lines = append(lines, textfile.EncodeFriends(u))
	}
	if err := writeFile(filepath.Join(g.dataDir, "Friends.txt"), lines); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(g.dataDir, "FriendRequests.txt"), requests); err != nil {
		return err
	}
	g.logger.Info("generated friendships", "mutual_edges", edges, "pending_requests", pending)
	return nil
}

func (g *Generator) writePosts(users []*domain.User) error {
	var lines []string
	now := time.Now()
	next := 0
	for _, u := range users {
		count := g.rng.Intn(g.maxPostsEach + 1)
		for k := 0; k < count && next < len(g.postIDs); k++ {
			lines = append(lines, textfile.EncodePost(&domain.Post{
				ID:        g.postIDs[next],
				AuthorID:  u.ID,
				Content:   g.contents[g.rng.Intn(len(g.contents))],
				CreatedAt: now.Add(-time.Duration(g.rng.Intn(50000)) * time.Second),
				Public:    g.rng.Intn(2) == 1,
			}))
			next++
		}
	}
	if err := writeFile(filepath.Join(g.dataDir, "Posts.txt"), lines); err != nil {
		return err
	}
	g.logger.Info("generated posts", "count", len(lines))
	return nil
}

func pool(prefix string, count int) []string {
	out := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		out = append(out, fmt.Sprintf("%s%d", prefix, i))
	}
	return out
}

func writeFile(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	for _, line := range lines {
		if _, err := f.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}
