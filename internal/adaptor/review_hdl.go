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

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log,
	}
}

// Review handles GET|POST /review_movie/{movieId}. GET lists existing
// reviews; POST creates one with content and an optional numeric rating.
func (h *ReviewHandler) Review(w http.ResponseWriter, r *http.Request) {
	movieID, err := uuid.Parse(chi.URLParam(r, "movieId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid movie id", nil)
		return
	}

	if r.Method == http.MethodGet {
		reviews, err := h.service.ListForMovie(r.Context(), movieID)
		if err != nil {
			respondError(w, err)
			return
		}
		utils.ResponseSuccess(w, "Reviews retrieved", reviews)
		return
	}

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := r.ParseForm(); err != nil {
		utils.ResponseBadRequest(w, "Invalid form data", nil)
		return
	}

	req := request.CreateReviewRequest{
		Content: r.FormValue("content"),
	}

	// Rating is optional; when present it must parse as a number.
	if ratingStr := r.FormValue("rating"); ratingStr != "" {
		rating, err := strconv.ParseFloat(ratingStr, 64)
		if err != nil {
			utils.ResponseBadRequest(w, "Rating must be a number", nil)
			return
		}
		req.Rating = &rating
	}

	review, err := h.service.Create(r.Context(), userID, movieID, &req)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.ResponseCreated(w, "Review created", review)
}
