package wire

import (
	"movie-tracker/internal/adaptor"
	"movie-tracker/internal/data/repository"
	"movie-tracker/pkg/middleware"
	"movie-tracker/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public routes
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	// Logout needs a live session to revoke
	r.With(middleware.AuthSession(repo.Session, config.App.SecretKey, log)).
		Get("/logout", authHandler.Logout)
}
