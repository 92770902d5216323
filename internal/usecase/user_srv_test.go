package usecase

import (
	"context"
	"testing"

	"movie-tracker/internal/apperr"
	"movie-tracker/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUserList_And_Get(t *testing.T) {
	repo := testutil.NewRepository()
	auth := NewAuthService(repo, testConfig(), zap.NewNop())
	svc := NewUserService(repo.User, zap.NewNop())
	ctx := context.Background()

	aliceID := registerTestUser(t, auth, "alice1")
	registerTestUser(t, auth, "bob1")

	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	got, err := svc.Get(ctx, aliceID)
	require.NoError(t, err)
	assert.Equal(t, "alice1", got.Username)

	_, err = svc.Get(ctx, uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUserRemove_NoOpWhenAbsent(t *testing.T) {
	repo := testutil.NewRepository()
	svc := NewUserService(repo.User, zap.NewNop())

	// Removing a user that does not exist succeeds silently
	require.NoError(t, svc.Remove(context.Background(), uuid.New()))
}

func TestUserRemove_DeletesUser(t *testing.T) {
	repo := testutil.NewRepository()
	auth := NewAuthService(repo, testConfig(), zap.NewNop())
	svc := NewUserService(repo.User, zap.NewNop())
	ctx := context.Background()

	aliceID := registerTestUser(t, auth, "alice1")

	require.NoError(t, svc.Remove(ctx, aliceID))

	_, err := svc.Get(ctx, aliceID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
