package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanViewFullProfile(t *testing.T) {
	viewer := &User{ID: "v"}
	publicStranger := &User{ID: "s1", PublicProfile: true}
	privateStranger := &User{ID: "s2"}
	privateFriend := &User{ID: "s3"}
	require.NoError(t, AddFriend(viewer, privateFriend))

	assert.True(t, CanViewFullProfile(viewer, publicStranger))
	assert.False(t, CanViewFullProfile(viewer, privateStranger))
	assert.True(t, CanViewFullProfile(viewer, privateFriend))
	assert.True(t, CanViewFullProfile(viewer, viewer), "own profile is always visible")
}

func TestCanViewPost(t *testing.T) {
	viewer := &User{ID: "v"}
	friend := &User{ID: "f"}
	require.NoError(t, AddFriend(viewer, friend))

	assert.True(t, CanViewPost(viewer, &Post{ID: "p1", AuthorID: "s", Public: true}))
	assert.False(t, CanViewPost(viewer, &Post{ID: "p2", AuthorID: "s", Public: false}))
	assert.True(t, CanViewPost(viewer, &Post{ID: "p3", AuthorID: "f", Public: false}))
	assert.True(t, CanViewPost(viewer, &Post{ID: "p4", AuthorID: "v", Public: false}), "own posts are always visible")
}
