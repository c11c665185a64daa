package seed

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fakebook/internal/domain"
	"fakebook/internal/store/textfile"
)

func TestGeneratorOutputLoadsCleanly(t *testing.T) {
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	gen := New(logger, dir, 20, 10, 42)
	require.NoError(t, gen.Run())

	store := textfile.New(logger, dir)
	users := store.LoadUsers()
	links := store.LoadFriends()
	store.LoadPosts()
	store.LoadRequests()

	assert.Equal(t, 20, users)
	assert.Equal(t, 0, links%2, "every friendship is written in both directions")

	seenEmail := map[string]bool{}
	for _, u := range store.Users() {
		require.False(t, seenEmail[u.Email], "emails are unique")
		seenEmail[u.Email] = true
		require.GreaterOrEqual(t, u.Age, 13)
		require.LessOrEqual(t, u.Age, 120)
	}
}

func TestGeneratorGraphIsMutual(t *testing.T) {
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, New(logger, dir, 15, 5, 7).Run())

	store := textfile.New(logger, dir)
	store.LoadUsers()
	store.LoadFriends()

	for _, u := range store.Users() {
		for _, friendID := range u.Friends {
			f := store.FindByID(friendID)
			require.NotNil(t, f)
			assert.True(t, domain.IsFriend(f, u.ID), "%s -> %s not mirrored", u.ID, friendID)
		}
	}
}

func TestGeneratorIsDeterministicPerSeed(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	dirA := t.TempDir()
	dirB := t.TempDir()
	require.NoError(t, New(logger, dirA, 10, 3, 99).Run())
	require.NoError(t, New(logger, dirB, 10, 3, 99).Run())

	a := textfile.New(logger, dirA)
	b := textfile.New(logger, dirB)
	assert.Equal(t, a.LoadUsers(), b.LoadUsers())
	assert.Equal(t, a.LoadFriends(), b.LoadFriends())
	assert.Equal(t, a.LoadPosts(), b.LoadPosts())
	assert.Equal(t, a.LoadRequests(), b.LoadRequests())
}
