package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFriendIsSymmetric(t *testing.T) {
	a := &User{ID: "u1"}
	b := &User{ID: "u2"}

	require.NoError(t, AddFriend(a, b))

	assert.True(t, IsFriend(a, "u2"))
	assert.True(t, IsFriend(b, "u1"))
}

func TestAddFriendRejectsSelf(t *testing.T) {
	a := &User{ID: "u1"}

	err := AddFriend(a, a)

	require.ErrorIs(t, err, ErrSelfFriendship)
	assert.Empty(t, a.Friends)
}

func TestAddFriendRejectsDuplicate(t *testing.T) {
	a := &User{ID: "u1"}
	b := &User{ID: "u2"}
	require.NoError(t, AddFriend(a, b))

	err := AddFriend(a, b)

	require.ErrorIs(t, err, ErrFriendshipExists)
	assert.Len(t, a.Friends, 1)
	assert.Len(t, b.Friends, 1)
}

func TestRemoveFriendIsSymmetric(t *testing.T) {
	a := &User{ID: "u1"}
	b := &User{ID: "u2"}
	require.NoError(t, AddFriend(a, b))

	require.NoError(t, RemoveFriend(a, b))

	assert.False(t, IsFriend(a, "u2"))
	assert.False(t, IsFriend(b, "u1"))
}

func TestRemoveFriendMissingEdge(t *testing.T) {
	a := &User{ID: "u1"}
	b := &User{ID: "u2"}

	err := RemoveFriend(a, b)

	require.ErrorIs(t, err, ErrFriendshipMissing)
}
