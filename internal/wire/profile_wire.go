package wire

import (
	"movie-tracker/internal/adaptor"
	"movie-tracker/internal/data/repository"
	"movie-tracker/pkg/middleware"
	"movie-tracker/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProfile(
	r chi.Router,
	profileHandler *adaptor.ProfileHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Editing needs a session; the picture itself is public (served to
	// anyone rendering a profile card).
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, config.App.SecretKey, log))

		r.Get("/edit_profile/{userId}", profileHandler.Edit)
		r.Post("/edit_profile/{userId}", profileHandler.Edit)
	})

	r.Get("/profile_picture/{userId}", profileHandler.Picture)
}
