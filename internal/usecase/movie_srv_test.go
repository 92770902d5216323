package usecase

import (
	"context"
	"testing"

	"movie-tracker/internal/apperr"
	"movie-tracker/internal/dto/request"
	"movie-tracker/internal/metadata"
	"movie-tracker/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// registerTestUser creates a user through the auth service and returns its id.
func registerTestUser(t *testing.T, svc AuthService, username string) uuid.UUID {
	t.Helper()
	user, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:     username,
		Username: username,
		Password: "pw123",
	})
	require.NoError(t, err)
	id, err := uuid.Parse(user.ID)
	require.NoError(t, err)
	return id
}

func TestAddMovie_RoundTrip(t *testing.T) {
	repo := testutil.NewRepository()
	auth := NewAuthService(repo, testConfig(), zap.NewNop())
	fetcher := &testutil.StubFetcher{Info: &metadata.MovieInfo{
		Title:  "Inception",
		Year:   2010,
		Rating: 8.8,
		Poster: "url",
		Plot:   "A thief who steals corporate secrets...",
	}}
	svc := NewMovieService(repo, fetcher, zap.NewNop())
	ctx := context.Background()

	aliceID := registerTestUser(t, auth, "alice1")

	added, err := svc.Add(ctx, aliceID, &request.AddMovieRequest{Title: "Inception"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Inception"}, fetcher.Calls)

	movies, err := svc.ListForUser(ctx, aliceID)
	require.NoError(t, err)
	require.Len(t, movies, 1)

	movie := movies[0]
	assert.Equal(t, added.ID, movie.ID)
	assert.Equal(t, "Inception", movie.Title)
	assert.Equal(t, 2010, movie.Year)
	assert.Equal(t, 8.8, movie.Rating)
	assert.Equal(t, "url", movie.Poster)
	assert.Equal(t, "A thief who steals corporate secrets...", movie.Description)
}

func TestAddMovie_FetchFailureWritesNothing(t *testing.T) {
	repo := testutil.NewRepository()
	auth := NewAuthService(repo, testConfig(), zap.NewNop())
	fetcher := &testutil.StubFetcher{Err: apperr.New(apperr.KindExternalService, "movie lookup failed")}
	svc := NewMovieService(repo, fetcher, zap.NewNop())
	ctx := context.Background()

	aliceID := registerTestUser(t, auth, "alice1")

	_, err := svc.Add(ctx, aliceID, &request.AddMovieRequest{Title: "Inception"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindExternalService, apperr.KindOf(err))

	movies, err := svc.ListForUser(ctx, aliceID)
	require.NoError(t, err)
	assert.Empty(t, movies)
}

func TestGetMovie_OwnershipIsolation(t *testing.T) {
	repo := testutil.NewRepository()
	auth := NewAuthService(repo, testConfig(), zap.NewNop())
	fetcher := &testutil.StubFetcher{Info: &metadata.MovieInfo{Title: "Heat", Year: 1995, Rating: 8.3}}
	svc := NewMovieService(repo, fetcher, zap.NewNop())
	ctx := context.Background()

	aliceID := registerTestUser(t, auth, "alice1")
	bobID := registerTestUser(t, auth, "bob1")

	added, err := svc.Add(ctx, aliceID, &request.AddMovieRequest{Title: "Heat"})
	require.NoError(t, err)
	movieID := uuid.MustParse(added.ID)

	// Owner sees the movie
	got, err := svc.Get(ctx, aliceID, movieID)
	require.NoError(t, err)
	assert.Equal(t, "Heat", got.Title)

	// A different user gets not-found even though the movie exists
	_, err = svc.Get(ctx, bobID, movieID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUpdateMovie(t *testing.T) {
	repo := testutil.NewRepository()
	auth := NewAuthService(repo, testConfig(), zap.NewNop())
	fetcher := &testutil.StubFetcher{Info: &metadata.MovieInfo{Title: "Heat", Year: 1995, Rating: 8.3}}
	svc := NewMovieService(repo, fetcher, zap.NewNop())
	ctx := context.Background()

	aliceID := registerTestUser(t, auth, "alice1")
	bobID := registerTestUser(t, auth, "bob1")

	added, err := svc.Add(ctx, aliceID, &request.AddMovieRequest{Title: "Heat"})
	require.NoError(t, err)
	movieID := uuid.MustParse(added.ID)

	// Owner can update title and rating
	err = svc.Update(ctx, aliceID, movieID, &request.UpdateMovieRequest{Title: "Heat (1995)", Rating: 9.0})
	require.NoError(t, err)

	got, err := svc.Get(ctx, aliceID, movieID)
	require.NoError(t, err)
	assert.Equal(t, "Heat (1995)", got.Title)
	assert.Equal(t, 9.0, got.Rating)

	// Non-owner cannot reach the movie to update it
	err = svc.Update(ctx, bobID, movieID, &request.UpdateMovieRequest{Title: "Hijacked", Rating: 1.0})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	// Updating an absent movie reports not-found
	err = svc.Update(ctx, aliceID, uuid.New(), &request.UpdateMovieRequest{Title: "Ghost", Rating: 5.0})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestDeleteMovie_CrossUserRejected(t *testing.T) {
	repo := testutil.NewRepository()
	auth := NewAuthService(repo, testConfig(), zap.NewNop())
	fetcher := &testutil.StubFetcher{Info: &metadata.MovieInfo{Title: "Heat", Year: 1995, Rating: 8.3}}
	svc := NewMovieService(repo, fetcher, zap.NewNop())
	ctx := context.Background()

	aliceID := registerTestUser(t, auth, "alice1")
	bobID := registerTestUser(t, auth, "bob1")

	added, err := svc.Add(ctx, aliceID, &request.AddMovieRequest{Title: "Heat"})
	require.NoError(t, err)
	movieID := uuid.MustParse(added.ID)

	// Bob's delete of Alice's movie is rejected, not silently ignored
	err = svc.Delete(ctx, bobID, movieID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	// The movie survives the rejected attempt
	_, err = svc.Get(ctx, aliceID, movieID)
	require.NoError(t, err)

	// The owner can delete it
	require.NoError(t, svc.Delete(ctx, aliceID, movieID))
	_, err = svc.Get(ctx, aliceID, movieID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestDeleteMovie_AbsentMovie(t *testing.T) {
	repo := testutil.NewRepository()
	auth := NewAuthService(repo, testConfig(), zap.NewNop())
	svc := NewMovieService(repo, &testutil.StubFetcher{}, zap.NewNop())

	aliceID := registerTestUser(t, auth, "alice1")

	err := svc.Delete(context.Background(), aliceID, uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestMovieDetails_IncludesReviews(t *testing.T) {
	repo := testutil.NewRepository()
	auth := NewAuthService(repo, testConfig(), zap.NewNop())
	fetcher := &testutil.StubFetcher{Info: &metadata.MovieInfo{Title: "Heat", Year: 1995, Rating: 8.3}}
	movieSvc := NewMovieService(repo, fetcher, zap.NewNop())
	reviewSvc := NewReviewService(repo, zap.NewNop())
	ctx := context.Background()

	aliceID := registerTestUser(t, auth, "alice1")
	bobID := registerTestUser(t, auth, "bob1")

	added, err := movieSvc.Add(ctx, aliceID, &request.AddMovieRequest{Title: "Heat"})
	require.NoError(t, err)
	movieID := uuid.MustParse(added.ID)

	rating := 9.5
	_, err = reviewSvc.Create(ctx, bobID, movieID, &request.CreateReviewRequest{
		Content: "Best heist film ever made.",
		Rating:  &rating,
	})
	require.NoError(t, err)

	details, err := movieSvc.Details(ctx, movieID)
	require.NoError(t, err)
	assert.Equal(t, "Heat", details.Title)
	require.Len(t, details.Reviews, 1)
	assert.Equal(t, "Best heist film ever made.", details.Reviews[0].Content)
	require.NotNil(t, details.Reviews[0].Rating)
	assert.Equal(t, 9.5, *details.Reviews[0].Rating)
}

// End-to-end scenario: register, login, add a movie with stubbed metadata,
// then list it back with all fields intact.
func TestScenario_RegisterLoginAddList(t *testing.T) {
	repo := testutil.NewRepository()
	auth := NewAuthService(repo, testConfig(), zap.NewNop())
	fetcher := &testutil.StubFetcher{Info: &metadata.MovieInfo{
		Title:  "Inception",
		Year:   2010,
		Rating: 8.8,
		Poster: "url",
		Plot:   "...",
	}}
	movieSvc := NewMovieService(repo, fetcher, zap.NewNop())
	ctx := context.Background()

	_, err := auth.Register(ctx, &request.RegisterRequest{
		Name: "alice", Username: "alice1", Password: "pw123",
	})
	require.NoError(t, err)

	session, err := auth.Login(ctx, &request.LoginRequest{Username: "alice1", Password: "pw123"})
	require.NoError(t, err)
	aliceID := uuid.MustParse(session.UserID)

	_, err = movieSvc.Add(ctx, aliceID, &request.AddMovieRequest{Title: "Inception"})
	require.NoError(t, err)

	movies, err := movieSvc.ListForUser(ctx, aliceID)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Inception", movies[0].Title)
	assert.Equal(t, 2010, movies[0].Year)
	assert.Equal(t, 8.8, movies[0].Rating)
}
