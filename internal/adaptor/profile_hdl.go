package adaptor

import (
	"io"
	"net/http"

	"movie-tracker/internal/data/entity"
	"movie-tracker/internal/dto/request"
	"movie-tracker/internal/usecase"
	"movie-tracker/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	service usecase.ProfileService
	log     *zap.Logger
}

func NewProfileHandler(service usecase.ProfileService, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		log:     log,
	}
}

// Edit handles GET|POST /edit_profile/{userId}. GET returns the current
// profile; POST takes a multipart form with bio and an optional
// profile_picture file.
func (h *ProfileHandler) Edit(w http.ResponseWriter, r *http.Request) {
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

	if r.Method == http.MethodGet {
		page, err := h.service.Get(r.Context(), requesterID, ownerID)
		if err != nil {
			respondError(w, err)
			return
		}
		utils.ResponseSuccess(w, "Profile retrieved", page)
		return
	}

	// Cap the multipart body a little above the picture limit so the form
	// fields still fit.
	if err := r.ParseMultipartForm(entity.MaxProfilePictureBytes + 64*1024); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	req := request.UpdateProfileRequest{
		Bio: r.FormValue("bio"),
	}

	if file, _, err := r.FormFile("profile_picture"); err == nil {
		defer file.Close()
		picture, err := io.ReadAll(io.LimitReader(file, entity.MaxProfilePictureBytes+1))
		if err != nil {
			h.log.Error("Failed to read uploaded picture", zap.Error(err))
			utils.ResponseBadRequest(w, "Failed to read uploaded picture", nil)
			return
		}
		req.Picture = picture
	}

	if err := h.service.Update(r.Context(), requesterID, ownerID, &req); err != nil {
		respondError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Profile updated", nil)
}

// Picture handles GET /profile_picture/{userId}: raw image bytes.
func (h *ProfileHandler) Picture(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user id", nil)
		return
	}

	picture, err := h.service.Picture(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.WriteHeader(http.StatusOK)
	w.Write(picture)
}
