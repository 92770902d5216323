package usecase

import (
	"context"
	"testing"

	"movie-tracker/internal/apperr"
	"movie-tracker/internal/dto/request"
	"movie-tracker/internal/testutil"
	"movie-tracker/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		App:     utils.AppConfig{SecretKey: "test-secret"},
		Session: utils.SessionConfig{ExpiryHours: 24},
	}
}

func TestRegister_CreatesUserWithEmptyProfile(t *testing.T) {
	repo := testutil.NewRepository()
	svc := NewAuthService(repo, testConfig(), zap.NewNop())
	ctx := context.Background()

	user, err := svc.Register(ctx, &request.RegisterRequest{
		Name:     "Alice",
		Username: "alice1",
		Password: "pw123",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alice1", user.Username)

	userID, err := uuid.Parse(user.ID)
	require.NoError(t, err)

	// Exactly one empty profile accompanies the new user
	profile, err := repo.Profile.FindByUserID(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Empty(t, profile.Bio)
	assert.Empty(t, profile.ProfilePicture)

	// The stored password is a hash, never the plaintext
	stored, err := repo.User.FindByID(ctx, userID)
	require.NoError(t, err)
	assert.NotEqual(t, "pw123", stored.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("pw123", stored.PasswordHash))
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := testutil.NewRepository()
	svc := NewAuthService(repo, testConfig(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Register(ctx, &request.RegisterRequest{
		Name: "Alice", Username: "alice1", Password: "pw123",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &request.RegisterRequest{
		Name: "Impostor", Username: "alice1", Password: "other-pass",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConstraintViolation, apperr.KindOf(err))

	// No second user row was created
	users, err := repo.User.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestRegister_ValidationFailure(t *testing.T) {
	repo := testutil.NewRepository()
	svc := NewAuthService(repo, testConfig(), zap.NewNop())

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name: "Bob", Username: "bo", Password: "x",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestLogin_VerifiesCredentials(t *testing.T) {
	repo := testutil.NewRepository()
	svc := NewAuthService(repo, testConfig(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Register(ctx, &request.RegisterRequest{
		Name: "Alice", Username: "alice1", Password: "pw123",
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{"correct credentials", "alice1", "pw123", false},
		{"wrong password", "alice1", "wrong", true},
		{"unknown username", "nobody", "pw123", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth, err := svc.Login(ctx, &request.LoginRequest{
				Username: tt.username,
				Password: tt.password,
			})
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
				return
			}
			require.NoError(t, err)
			require.NotNil(t, auth)
			assert.Equal(t, "alice1", auth.Username)
			assert.NotEmpty(t, auth.Token)

			// The session is live and resolves back to the user
			session, err := repo.Session.FindValidByToken(ctx, auth.Token)
			require.NoError(t, err)
			require.NotNil(t, session)
			assert.Equal(t, auth.UserID, session.UserID.String())
		})
	}
}

func TestLogout_RevokesSession(t *testing.T) {
	repo := testutil.NewRepository()
	svc := NewAuthService(repo, testConfig(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Register(ctx, &request.RegisterRequest{
		Name: "Alice", Username: "alice1", Password: "pw123",
	})
	require.NoError(t, err)

	auth, err := svc.Login(ctx, &request.LoginRequest{Username: "alice1", Password: "pw123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, auth.Token))

	session, err := repo.Session.FindValidByToken(ctx, auth.Token)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestLogout_MalformedToken(t *testing.T) {
	repo := testutil.NewRepository()
	svc := NewAuthService(repo, testConfig(), zap.NewNop())

	err := svc.Logout(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}
