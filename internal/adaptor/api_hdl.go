package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-tracker/internal/apperr"
	"movie-tracker/internal/dto/request"
	"movie-tracker/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// APIHandler serves the JSON API variant. Its response shapes are fixed:
// {"users":[...]}, {"movies":[...]}, {"success":true} and {"error":"..."} —
// distinct from the envelope the app routes use.
type APIHandler struct {
	userService  usecase.UserService
	movieService usecase.MovieService
	log          *zap.Logger
}

func NewAPIHandler(userService usecase.UserService, movieService usecase.MovieService, log *zap.Logger) *APIHandler {
	return &APIHandler{
		userService:  userService,
		movieService: movieService,
		log:          log,
	}
}

// Users handles GET /api/users
func (h *APIHandler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"users": users})
}

// UserMovies handles GET /api/users/{id}/movies
func (h *APIHandler) UserMovies(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid user id"})
		return
	}

	movies, err := h.movieService.ListForUser(r.Context(), userID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"movies": movies})
}

// AddUserMovie handles POST /api/users/{id}/movies with a JSON body carrying
// the movie fields directly.
func (h *APIHandler) AddUserMovie(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid user id"})
		return
	}

	var req request.APIMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		return
	}

	if _, err := h.movieService.AddDirect(r.Context(), userID, &req); err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, map[string]any{"success": true})
}

func (h *APIHandler) writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

// writeError renders every failure as {"error": msg} with HTTP 400, matching
// the API contract.
func (h *APIHandler) writeError(w http.ResponseWriter, err error) {
	if apperr.KindOf(err) == apperr.KindInternal {
		h.log.Error("API request failed", zap.Error(err))
	}
	h.writeJSON(w, http.StatusBadRequest, map[string]any{"error": apperr.Message(err)})
}
