package adaptor

import (
	"net/http"

	"movie-tracker/internal/usecase"
	"movie-tracker/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService    usecase.UserService
	movieService   usecase.MovieService
	profileService usecase.ProfileService
	log            *zap.Logger
}

func NewUserHandler(
	userService usecase.UserService,
	movieService usecase.MovieService,
	profileService usecase.ProfileService,
	log *zap.Logger,
) *UserHandler {
	return &UserHandler{
		userService:    userService,
		movieService:   movieService,
		profileService: profileService,
		log:            log,
	}
}

// List handles GET /users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Users retrieved", users)
}

// Movies handles GET /users/{id}: that user's favorite movies.
func (h *UserHandler) Movies(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user id", nil)
		return
	}

	// The user must exist; an unknown id is a 404, not an empty list.
	if _, err := h.userService.Get(r.Context(), userID); err != nil {
		respondError(w, err)
		return
	}

	movies, err := h.movieService.ListForUser(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.ResponseSuccess(w, "User movies retrieved", movies)
}

// ProfilePage handles GET /profile/{userId}: the owner's profile with their
// movie list.
func (h *UserHandler) ProfilePage(w http.ResponseWriter, r *http.Request) {
	ownerID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user id", nil)
		return
	}

	requesterID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	page, err := h.profileService.Get(r.Context(), requesterID, ownerID)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved", page)
}
