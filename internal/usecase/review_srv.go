package usecase

import (
	"context"
	"time"

	"movie-tracker/internal/apperr"
	"movie-tracker/internal/data/entity"
	"movie-tracker/internal/data/repository"
	"movie-tracker/internal/dto/request"
	"movie-tracker/internal/dto/response"
	"movie-tracker/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	// Create reviews a movie on behalf of userID. Any authenticated user may
	// review any existing movie; the created review is returned.
	Create(ctx context.Context, userID, movieID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	ListForMovie(ctx context.Context, movieID uuid.UUID) ([]response.ReviewResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log,
	}
}

func (s *reviewService) Create(ctx context.Context, userID, movieID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, apperr.New(apperr.KindValidation, utils.FormatValidationErrors(errs))
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to check movie for review", zap.Error(err), zap.String("movie_id", movieID.String()))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to create review", err)
	}
	if movie == nil {
		return nil, apperr.New(apperr.KindNotFound, "movie not found")
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:  userID,
		MovieID: movieID,
		Content: req.Content,
		Rating:  req.Rating,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review", zap.Error(err), zap.String("movie_id", movieID.String()))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to create review", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("movie_id", movieID.String()),
		zap.String("user_id", userID.String()))

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) ListForMovie(ctx context.Context, movieID uuid.UUID) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.Review.FindByMovieID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to list reviews", zap.Error(err), zap.String("movie_id", movieID.String()))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list reviews", err)
	}

	return response.ReviewsToResponse(reviews), nil
}
