package services

import (
	"testing"

	"github.com/jdelgad07/twitterclone/backend/internal/apperrors"
	"github.com/jdelgad07/twitterclone/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowAndUnfollow(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "u1", "alice")
	f.seedUser(t, "u2", "bob")

	require.NoError(t, f.relationships.Follow("u1", ByUsername("bob")))

	following, err := f.follows.IsFollowing("u1", "u2")
	require.NoError(t, err)
	assert.True(t, following)

	err = f.relationships.Follow("u1", ByUsername("bob"))
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	require.NoError(t, f.relationships.Unfollow("u1", ByUsername("bob")))

	err = f.relationships.Unfollow("u1", ByUsername("bob"))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFollowByID(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "u1", "alice")
	f.seedUser(t, "u2", "bob")

	require.NoError(t, f.relationships.Follow("u1", ByID("u2")))

	following, err := f.follows.IsFollowing("u1", "u2")
	require.NoError(t, err)
	assert.True(t, following)
}

func TestFollowValidation(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "u1", "alice")
	f.seedUser(t, "u2", "bob")

	assert.ErrorIs(t, f.relationships.Follow("u1", ByID("u1")), apperrors.ErrValidation)
	assert.ErrorIs(t, f.relationships.Follow("u1", ByUsername("alice")), apperrors.ErrValidation)
	assert.ErrorIs(t, f.relationships.Follow("ghost", ByUsername("bob")), apperrors.ErrNotFound)
	assert.ErrorIs(t, f.relationships.Follow("u1", ByUsername("nobody")), apperrors.ErrNotFound)
	assert.ErrorIs(t, f.relationships.Follow("u1", UserRef{}), apperrors.ErrValidation)
}

func TestBlockRemovesFollowsBothDirections(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "u1", "alice")
	f.seedUser(t, "u2", "bob")

	require.NoError(t, f.relationships.Follow("u1", ByUsername("bob")))
	require.NoError(t, f.relationships.Follow("u2", ByUsername("alice")))

	require.NoError(t, f.relationships.Block("u2", ByUsername("alice")))

	blocked, err := f.blocks.IsBlocked("u2", "u1")
	require.NoError(t, err)
	assert.True(t, blocked)

	following, err := f.follows.IsFollowing("u1", "u2")
	require.NoError(t, err)
	assert.False(t, following)

	following, err = f.follows.IsFollowing("u2", "u1")
	require.NoError(t, err)
	assert.False(t, following)
}

func TestFollowAfterBlockForbidden(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "u1", "alice")
	f.seedUser(t, "u2", "bob")

	require.NoError(t, f.relationships.Block("u2", ByUsername("alice")))

	err := f.relationships.Follow("u1", ByUsername("bob"))
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	// The block is directional: bob can still not be followed by alice,
	// but alice has not blocked bob.
	require.NoError(t, f.relationships.Follow("u2", ByUsername("alice")))
}

func TestBlockValidation(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "u1", "alice")
	f.seedUser(t, "u2", "bob")

	assert.ErrorIs(t, f.relationships.Block("u1", ByID("u1")), apperrors.ErrValidation)
	assert.ErrorIs(t, f.relationships.Block("u1", ByUsername("nobody")), apperrors.ErrNotFound)

	require.NoError(t, f.relationships.Block("u1", ByUsername("bob")))
	assert.ErrorIs(t, f.relationships.Block("u1", ByUsername("bob")), apperrors.ErrConflict)
}

func TestUnblockDoesNotRestoreFollows(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "u1", "alice")
	f.seedUser(t, "u2", "bob")

	require.NoError(t, f.relationships.Follow("u1", ByUsername("bob")))
	require.NoError(t, f.relationships.Block("u1", ByUsername("bob")))
	require.NoError(t, f.relationships.Unblock("u1", ByUsername("bob")))

	blocked, err := f.blocks.IsBlocked("u1", "u2")
	require.NoError(t, err)
	assert.False(t, blocked)

	following, err := f.follows.IsFollowing("u1", "u2")
	require.NoError(t, err)
	assert.False(t, following)

	assert.ErrorIs(t, f.relationships.Unblock("u1", ByUsername("bob")), apperrors.ErrNotFound)

	// Following works again once the block is gone.
	require.NoError(t, f.relationships.Follow("u1", ByUsername("bob")))
}

func TestDuplicateFollowCaughtByConstraint(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "u1", "alice")
	f.seedUser(t, "u2", "bob")

	// Insert directly, skipping the service pre-check, the way a
	// concurrent request would race past it.
	require.NoError(t, f.follows.CreateFollow(&models.Follow{FollowerID: "u1", FolloweeID: "u2"}))
	err := f.follows.CreateFollow(&models.Follow{FollowerID: "u1", FolloweeID: "u2"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}
