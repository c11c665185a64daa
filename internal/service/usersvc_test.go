package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fakebook/internal/domain"
)

func TestProfileOfPrivateNonFriend(t *testing.T) {
	store, _ := newLoadedStore(t, map[string]string{
		"Users.txt": threeUsers,
		"Posts.txt": "p1#u2#secret#1700000100#Public\n",
	})
	svc := &UsersService{Store: store}

	view, err := svc.Profile(sessionFor("u1"), "Bob")
	require.NoError(t, err)

	assert.False(t, view.Full)
	assert.Empty(t, view.Posts, "no posts behind a private non-friend profile")
}

func TestProfileOfPrivateFriend(t *testing.T) {
	store, _ := newLoadedStore(t, map[string]string{
		"Users.txt":   threeUsers,
		"Friends.txt": "u1:u2\nu2:u1\nu3:\n",
		"Posts.txt": `p1#u2#friends only#1700000100#FriendsOnly
p2#u2#public#1700000200#Public
`,
	})
	svc := &UsersService{Store: store}

	view, err := svc.Profile(sessionFor("u1"), "Bob")
	require.NoError(t, err)

	assert.True(t, view.Full)
	require.Len(t, view.Posts, 2, "friendship reveals friends-only posts")
}

func TestProfileOfPublicStranger(t *testing.T) {
	store, _ := newLoadedStore(t, map[string]string{
		"Users.txt": threeUsers,
		"Posts.txt": `p1#u3#public#1700000100#Public
p2#u3#friends only#1700000200#FriendsOnly
`,
	})
	svc := &UsersService{Store: store}

	view, err := svc.Profile(sessionFor("u1"), "Carol")
	require.NoError(t, err)

	assert.True(t, view.Full, "public profile is fully visible")
	require.Len(t, view.Posts, 1, "friends-only posts stay hidden from non-friends")
	assert.Equal(t, "p1", view.Posts[0].ID)
}

func TestOwnProfileBypassesVisibility(t *testing.T) {
	store, _ := newLoadedStore(t, map[string]string{
		"Users.txt":   threeUsers,
		"Friends.txt": "u1:u2\nu2:u1\nu3:\n",
		"Posts.txt":   "p1#u2#friends only#1700000100#FriendsOnly\n",
	})
	svc := &UsersService{Store: store}

	view, err := svc.OwnProfile(sessionFor("u2"))
	require.NoError(t, err)

	assert.True(t, view.Full)
	assert.Equal(t, []string{"Alice"}, view.Friends)
	require.Len(t, view.Posts, 1)
}

func TestCreatePostAppends(t *testing.T) {
	store, dir := newLoadedStore(t, map[string]string{"Users.txt": threeUsers})
	now := time.Unix(1700003000, 0)
	svc := &UsersService{Store: store, Now: func() time.Time { return now }}

	p, err := svc.CreatePost(sessionFor("u1"), "hello world", false)
	require.NoError(t, err)
	assert.Equal(t, "p1700003000000", p.ID)

	raw, err := os.ReadFile(filepath.Join(dir, "Posts.txt"))
	require.NoError(t, err)
	assert.Equal(t, "p1700003000000#u1#hello world#1700003000#FriendsOnly\n", string(raw))

	posts := store.PostsByAuthor("u1")
	require.Len(t, posts, 1)
}

func TestCreatePostRequiresContent(t *testing.T) {
	store, _ := newLoadedStore(t, map[string]string{"Users.txt": threeUsers})
	svc := &UsersService{Store: store}

	_, err := svc.CreatePost(sessionFor("u1"), "", true)
	require.ErrorIs(t, err, domain.ErrValidation)
}

// Privacy changes stay in memory; the users file is append-only and is never
// rewritten.
func TestSetPrivacyIsMemoryOnly(t *testing.T) {
	store, dir := newLoadedStore(t, map[string]string{"Users.txt": threeUsers})
	svc := &UsersService{Store: store}

	require.NoError(t, svc.SetPrivacy(sessionFor("u2"), true))
	assert.True(t, store.FindByID("u2").PublicProfile)

	raw, err := os.ReadFile(filepath.Join(dir, "Users.txt"))
	require.NoError(t, err)
	assert.Equal(t, threeUsers, string(raw))
}
