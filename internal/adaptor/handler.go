package adaptor

import (
	"net/http"

	"movie-tracker/internal/apperr"
	"movie-tracker/internal/usecase"
	"movie-tracker/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Profile *ProfileHandler
	Movie   *MovieHandler
	Review  *ReviewHandler
	API     *APIHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, config, log),
		User:    NewUserHandler(service.User, service.Movie, service.Profile, log),
		Profile: NewProfileHandler(service.Profile, log),
		Movie:   NewMovieHandler(service.Movie, log),
		Review:  NewReviewHandler(service.Review, log),
		API:     NewAPIHandler(service.User, service.Movie, log),
	}
}

// respondError maps a tagged service error onto an HTTP status. Only the
// client-safe message is rendered; wrapped causes stay in the logs.
func respondError(w http.ResponseWriter, err error) {
	msg := apperr.Message(err)

	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		utils.ResponseNotFound(w, msg)
	case apperr.KindUnauthorized:
		utils.ResponseUnauthorized(w, msg)
	case apperr.KindConstraintViolation, apperr.KindValidation:
		utils.ResponseBadRequest(w, msg, nil)
	case apperr.KindExternalService:
		utils.ResponseBadGateway(w, msg)
	default:
		utils.ResponseInternalError(w, "Internal server error")
	}
}
