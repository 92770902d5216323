package usecase

import (
	"context"
	"strings"
	"time"

	"movie-tracker/internal/apperr"
	"movie-tracker/internal/data/entity"
	"movie-tracker/internal/data/repository"
	"movie-tracker/internal/dto/request"
	"movie-tracker/internal/dto/response"
	"movie-tracker/internal/metadata"
	"movie-tracker/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieService interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]response.MovieResponse, error)
	// Add fetches metadata for the title and persists the movie for userID.
	Add(ctx context.Context, userID uuid.UUID, req *request.AddMovieRequest) (*response.MovieResponse, error)
	// AddDirect persists caller-supplied movie fields without a metadata
	// lookup (JSON API variant).
	AddDirect(ctx context.Context, userID uuid.UUID, req *request.APIMovieRequest) (*response.MovieResponse, error)
	Get(ctx context.Context, userID, movieID uuid.UUID) (*response.MovieResponse, error)
	// Update overwrites title and rating of a movie owned by userID.
	Update(ctx context.Context, userID, movieID uuid.UUID, req *request.UpdateMovieRequest) error
	// Delete removes a movie after verifying userID owns it.
	Delete(ctx context.Context, userID, movieID uuid.UUID) error
	Details(ctx context.Context, movieID uuid.UUID) (*response.MovieDetailResponse, error)
}

type movieService struct {
	repo    *repository.Repository
	fetcher metadata.Fetcher
	log     *zap.Logger
}

func NewMovieService(repo *repository.Repository, fetcher metadata.Fetcher, log *zap.Logger) MovieService {
	return &movieService{
		repo:    repo,
		fetcher: fetcher,
		log:     log,
	}
}

func (s *movieService) ListForUser(ctx context.Context, userID uuid.UUID) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindByUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list movies", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list movies", err)
	}

	return response.MoviesToResponse(movies), nil
}

func (s *movieService) Add(ctx context.Context, userID uuid.UUID, req *request.AddMovieRequest) (*response.MovieResponse, error) {
	req.Title = strings.TrimSpace(req.Title)
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add movie validation failed", zap.Any("errors", errs))
		return nil, apperr.New(apperr.KindValidation, utils.FormatValidationErrors(errs))
	}

	// Metadata lookup happens before anything is written; a lookup failure
	// leaves the database untouched.
	info, err := s.fetcher.Fetch(ctx, req.Title)
	if err != nil {
		s.log.Warn("Metadata fetch failed", zap.Error(err), zap.String("title", req.Title))
		return nil, err
	}

	movie := s.newMovie(userID, info.Title, info.Plot, info.Rating, info.Year, info.Poster)

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to add movie", zap.Error(err), zap.String("title", movie.Title))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to add movie", err)
	}

	s.log.Info("Movie added",
		zap.String("movie_id", movie.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("title", movie.Title))

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) AddDirect(ctx context.Context, userID uuid.UUID, req *request.APIMovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("API add movie validation failed", zap.Any("errors", errs))
		return nil, apperr.New(apperr.KindValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to check user for API add", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to add movie", err)
	}
	if user == nil {
		return nil, apperr.New(apperr.KindNotFound, "user not found")
	}

	movie := s.newMovie(userID, req.Title, req.Description, req.Rating, req.Year, req.Poster)

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to add movie via API", zap.Error(err), zap.String("title", movie.Title))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to add movie", err)
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

// Get returns a movie only when userID owns it; a movie owned by someone
// else reads as not found.
func (s *movieService) Get(ctx context.Context, userID, movieID uuid.UUID) (*response.MovieResponse, error) {
	movie, err := s.repo.Movie.FindByUserAndID(ctx, userID, movieID)
	if err != nil {
		s.log.Error("Failed to get movie", zap.Error(err), zap.String("movie_id", movieID.String()))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to get movie", err)
	}

	if movie == nil {
		return nil, apperr.New(apperr.KindNotFound, "movie not found")
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) Update(ctx context.Context, userID, movieID uuid.UUID, req *request.UpdateMovieRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update movie validation failed", zap.Any("errors", errs))
		return apperr.New(apperr.KindValidation, utils.FormatValidationErrors(errs))
	}

	// Ownership-filtered lookup: someone else's movie reads as absent.
	movie, err := s.repo.Movie.FindByUserAndID(ctx, userID, movieID)
	if err != nil {
		s.log.Error("Failed to load movie for update", zap.Error(err), zap.String("movie_id", movieID.String()))
		return apperr.Wrap(apperr.KindInternal, "failed to update movie", err)
	}
	if movie == nil {
		return apperr.New(apperr.KindNotFound, "movie not found")
	}

	movie.Title = req.Title
	movie.Rating = req.Rating

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		s.log.Error("Failed to update movie", zap.Error(err), zap.String("movie_id", movieID.String()))
		return apperr.Wrap(apperr.KindInternal, "failed to update movie", err)
	}

	s.log.Info("Movie updated",
		zap.String("movie_id", movieID.String()),
		zap.String("user_id", userID.String()))

	return nil
}

// Delete verifies ownership before removing the row. The repository delete
// works by id alone, so the ownership check here is the only guard.
func (s *movieService) Delete(ctx context.Context, userID, movieID uuid.UUID) error {
	movie, err := s.repo.Movie.FindByUserAndID(ctx, userID, movieID)
	if err != nil {
		s.log.Error("Failed to load movie for delete", zap.Error(err), zap.String("movie_id", movieID.String()))
		return apperr.Wrap(apperr.KindInternal, "failed to delete movie", err)
	}

	if movie == nil {
		// Distinguish "not yours" from "does not exist" so cross-user
		// deletes are rejected rather than silently ignored.
		other, err := s.repo.Movie.FindByID(ctx, movieID)
		if err != nil {
			s.log.Error("Failed to check movie owner", zap.Error(err), zap.String("movie_id", movieID.String()))
			return apperr.Wrap(apperr.KindInternal, "failed to delete movie", err)
		}
		if other != nil {
			s.log.Warn("Cross-user movie delete rejected",
				zap.String("movie_id", movieID.String()),
				zap.String("requester_id", userID.String()),
				zap.String("owner_id", other.UserID.String()))
			return apperr.New(apperr.KindUnauthorized, "unauthorized access")
		}
		return apperr.New(apperr.KindNotFound, "movie not found")
	}

	if err := s.repo.Movie.Delete(ctx, movieID); err != nil {
		s.log.Error("Failed to delete movie", zap.Error(err), zap.String("movie_id", movieID.String()))
		return apperr.Wrap(apperr.KindInternal, "failed to delete movie", err)
	}

	return nil
}

func (s *movieService) Details(ctx context.Context, movieID uuid.UUID) (*response.MovieDetailResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to load movie details", zap.Error(err), zap.String("movie_id", movieID.String()))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load movie", err)
	}
	if movie == nil {
		return nil, apperr.New(apperr.KindNotFound, "movie not found")
	}

	reviews, err := s.repo.Review.FindByMovieID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to load movie reviews", zap.Error(err), zap.String("movie_id", movieID.String()))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load reviews", err)
	}

	resp := response.MovieToDetailResponse(movie, reviews)
	return &resp, nil
}

func (s *movieService) newMovie(userID uuid.UUID, title, description string, rating float64, year int, poster string) *entity.Movie {
	now := time.Now()
	return &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:      userID,
		Title:       title,
		Description: description,
		Rating:      rating,
		Year:        year,
		Poster:      poster,
	}
}
