package wire

import (
	"movie-tracker/internal/adaptor"
	"movie-tracker/internal/data/repository"
	"movie-tracker/pkg/middleware"
	"movie-tracker/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, config.App.SecretKey, log))

		r.Get("/users", userHandler.List)
		r.Get("/users/{id}", userHandler.Movies)
		r.Get("/profile/{userId}", userHandler.ProfilePage)
	})
}
