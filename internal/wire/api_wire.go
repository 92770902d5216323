package wire

import (
	"movie-tracker/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireAPI mounts the JSON API variant. Its routes are unauthenticated and
// keep the response shapes of the original API.
func wireAPI(r chi.Router, apiHandler *adaptor.APIHandler) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/users", apiHandler.Users)
		r.Get("/users/{id}/movies", apiHandler.UserMovies)
		r.Post("/users/{id}/movies", apiHandler.AddUserMovie)
	})
}
