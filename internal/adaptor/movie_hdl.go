package adaptor

import (
	"net/http"
	"strconv"

	"movie-tracker/internal/dto/request"
	"movie-tracker/internal/usecase"
	"movie-tracker/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log,
	}
}

// Add handles POST /add_movie: the form carries only the title, everything
// else comes from the metadata lookup.
func (h *MovieHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := r.ParseForm(); err != nil {
		utils.ResponseBadRequest(w, "Invalid form data", nil)
		return
	}

	req := request.AddMovieRequest{
		Title: r.FormValue("title"),
	}

	movie, err := h.service.Add(r.Context(), userID, &req)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.ResponseCreated(w, "Movie added", movie)
}

// Update handles GET|POST /update_movie/{movieId}. GET returns the movie for
// the edit form; POST overwrites title and rating.
func (h *MovieHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	movieID, err := uuid.Parse(chi.URLParam(r, "movieId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid movie id", nil)
		return
	}

	if r.Method == http.MethodGet {
		movie, err := h.service.Get(r.Context(), userID, movieID)
		if err != nil {
			respondError(w, err)
			return
		}
		utils.ResponseSuccess(w, "Movie retrieved", movie)
		return
	}

	if err := r.ParseForm(); err != nil {
		utils.ResponseBadRequest(w, "Invalid form data", nil)
		return
	}

	rating, err := strconv.ParseFloat(r.FormValue("rating"), 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Rating must be a number", nil)
		return
	}

	req := request.UpdateMovieRequest{
		Title:  r.FormValue("title"),
		Rating: rating,
	}

	if err := h.service.Update(r.Context(), userID, movieID, &req); err != nil {
		respondError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Movie updated", nil)
}

// Delete handles POST /delete_movie/{movieId}. Ownership is verified in the
// service before the row is removed.
func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	movieID, err := uuid.Parse(chi.URLParam(r, "movieId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid movie id", nil)
		return
	}

	if err := h.service.Delete(r.Context(), userID, movieID); err != nil {
		respondError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Movie deleted", nil)
}

// Details handles GET /movie_details/{movieId}: the movie with its reviews.
func (h *MovieHandler) Details(w http.ResponseWriter, r *http.Request) {
	movieID, err := uuid.Parse(chi.URLParam(r, "movieId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid movie id", nil)
		return
	}

	details, err := h.service.Details(r.Context(), movieID)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Movie details retrieved", details)
}
