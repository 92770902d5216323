package wire

import (
	"movie-tracker/internal/adaptor"
	"movie-tracker/internal/data/repository"
	"movie-tracker/pkg/middleware"
	"movie-tracker/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Movie details are public
	r.Get("/movie_details/{movieId}", movieHandler.Details)

	// Mutations require a session; ownership checks live in the service
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, config.App.SecretKey, log))

		r.Post("/add_movie", movieHandler.Add)
		r.Get("/update_movie/{movieId}", movieHandler.Update)
		r.Post("/update_movie/{movieId}", movieHandler.Update)
		r.Post("/delete_movie/{movieId}", movieHandler.Delete)
	})
}
