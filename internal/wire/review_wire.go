package wire

import (
	"movie-tracker/internal/adaptor"
	"movie-tracker/internal/data/repository"
	"movie-tracker/pkg/middleware"
	"movie-tracker/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Reading reviews is public; writing one needs a session
	r.Get("/review_movie/{movieId}", reviewHandler.Review)

	r.With(middleware.AuthSession(repo.Session, config.App.SecretKey, log)).
		Post("/review_movie/{movieId}", reviewHandler.Review)
}
