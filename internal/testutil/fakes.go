// Package testutil provides in-memory repository fakes and a stubbed
// metadata fetcher for service and handler tests.
package testutil

import (
	"context"
	"time"

	"movie-tracker/internal/apperr"
	"movie-tracker/internal/data/entity"
	"movie-tracker/internal/data/repository"
	"movie-tracker/internal/metadata"

	"github.com/google/uuid"
)

// NewRepository assembles a repository set backed by shared in-memory state,
// honoring the same contracts as the pgx implementations (unique usernames,
// ownership-filtered movie lookup, picture-preserving profile update).
func NewRepository() *repository.Repository {
	state := &state{
		users:    make(map[uuid.UUID]*entity.User),
		profiles: make(map[uuid.UUID]*entity.UserProfile),
		movies:   make(map[uuid.UUID]*entity.Movie),
		sessions: make(map[uuid.UUID]*entity.Session),
	}

	return &repository.Repository{
		User:    &fakeUserRepo{state},
		Profile: &fakeProfileRepo{state},
		Movie:   &fakeMovieRepo{state},
		Review:  &fakeReviewRepo{state},
		Session: &fakeSessionRepo{state},
	}
}

type state struct {
	users    map[uuid.UUID]*entity.User
	profiles map[uuid.UUID]*entity.UserProfile // keyed by user id
	movies   map[uuid.UUID]*entity.Movie
	reviews  []*entity.Review
	sessions map[uuid.UUID]*entity.Session // keyed by token
}

// ---------------- users ----------------

type fakeUserRepo struct{ s *state }

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User, profile *entity.UserProfile) error {
	for _, u := range f.s.users {
		if u.Username == user.Username {
			return apperr.New(apperr.KindConstraintViolation, "username already taken")
		}
	}
	userCopy := *user
	profileCopy := *profile
	f.s.users[user.ID] = &userCopy
	f.s.profiles[profile.UserID] = &profileCopy
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := f.s.users[id]
	if !ok {
		return nil, nil
	}
	userCopy := *user
	return &userCopy, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, user := range f.s.users {
		if user.Username == username {
			userCopy := *user
			return &userCopy, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User
	for _, user := range f.s.users {
		userCopy := *user
		users = append(users, &userCopy)
	}
	return users, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.s.users, id)
	delete(f.s.profiles, id)
	for movieID, movie := range f.s.movies {
		if movie.UserID == id {
			delete(f.s.movies, movieID)
		}
	}
	kept := f.s.reviews[:0]
	for _, review := range f.s.reviews {
		if review.UserID != id {
			if _, ok := f.s.movies[review.MovieID]; ok {
				kept = append(kept, review)
			}
		}
	}
	f.s.reviews = kept
	for token, session := range f.s.sessions {
		if session.UserID == id {
			delete(f.s.sessions, token)
		}
	}
	return nil
}

// ---------------- profiles ----------------

type fakeProfileRepo struct{ s *state }

func (f *fakeProfileRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	profile, ok := f.s.profiles[userID]
	if !ok {
		return nil, nil
	}
	profileCopy := *profile
	return &profileCopy, nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, userID uuid.UUID, bio string, picture []byte) error {
	profile, ok := f.s.profiles[userID]
	if !ok {
		return apperr.New(apperr.KindNotFound, "profile not found")
	}
	profile.Bio = bio
	if picture != nil {
		profile.ProfilePicture = picture
	}
	return nil
}

// ---------------- movies ----------------

type fakeMovieRepo struct{ s *state }

func (f *fakeMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	movieCopy := *movie
	f.s.movies[movie.ID] = &movieCopy
	return nil
}

func (f *fakeMovieRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Movie, error) {
	var movies []*entity.Movie
	for _, movie := range f.s.movies {
		if movie.UserID == userID {
			movieCopy := *movie
			movies = append(movies, &movieCopy)
		}
	}
	return movies, nil
}

func (f *fakeMovieRepo) FindByUserAndID(ctx context.Context, userID, movieID uuid.UUID) (*entity.Movie, error) {
	movie, ok := f.s.movies[movieID]
	if !ok || movie.UserID != userID {
		return nil, nil
	}
	movieCopy := *movie
	return &movieCopy, nil
}

func (f *fakeMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	movie, ok := f.s.movies[id]
	if !ok {
		return nil, nil
	}
	movieCopy := *movie
	return &movieCopy, nil
}

func (f *fakeMovieRepo) Update(ctx context.Context, movie *entity.Movie) error {
	existing, ok := f.s.movies[movie.ID]
	if !ok {
		return nil // silent no-op, same as the SQL implementation
	}
	existing.Title = movie.Title
	existing.Description = movie.Description
	existing.Rating = movie.Rating
	existing.Year = movie.Year
	existing.Poster = movie.Poster
	return nil
}

func (f *fakeMovieRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.s.movies, id)
	return nil
}

// ---------------- reviews ----------------

type fakeReviewRepo struct{ s *state }

func (f *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	reviewCopy := *review
	f.s.reviews = append(f.s.reviews, &reviewCopy)
	return nil
}

func (f *fakeReviewRepo) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Review, error) {
	var reviews []*entity.Review
	for _, review := range f.s.reviews {
		if review.MovieID == movieID {
			reviewCopy := *review
			reviews = append(reviews, &reviewCopy)
		}
	}
	return reviews, nil
}

// ---------------- sessions ----------------

type fakeSessionRepo struct{ s *state }

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	sessionCopy := *session
	f.s.sessions[session.Token] = &sessionCopy
	return nil
}

func (f *fakeSessionRepo) FindValidByToken(ctx context.Context, token string) (*entity.Session, error) {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		return nil, nil
	}
	session, ok := f.s.sessions[tokenUUID]
	if !ok || session.RevokedAt != nil || !nowRef().Before(session.ExpiresAt) {
		return nil, nil
	}
	sessionCopy := *session
	return &sessionCopy, nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		return apperr.New(apperr.KindValidation, "invalid token")
	}
	session, ok := f.s.sessions[tokenUUID]
	if !ok || session.RevokedAt != nil {
		return apperr.New(apperr.KindNotFound, "session not found or already revoked")
	}
	now := nowRef()
	session.RevokedAt = &now
	return nil
}

func (f *fakeSessionRepo) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	for _, session := range f.s.sessions {
		if session.UserID == userID && session.RevokedAt == nil {
			now := nowRef()
			session.RevokedAt = &now
		}
	}
	return nil
}

func nowRef() time.Time {
	return time.Now()
}

// ---------------- metadata stub ----------------

// StubFetcher returns a fixed lookup result, or the configured error.
type StubFetcher struct {
	Info *metadata.MovieInfo
	Err  error
	// Calls records the titles that were looked up.
	Calls []string
}

func (s *StubFetcher) Fetch(ctx context.Context, title string) (*metadata.MovieInfo, error) {
	s.Calls = append(s.Calls, title)
	if s.Err != nil {
		return nil, s.Err
	}
	info := *s.Info
	return &info, nil
}
