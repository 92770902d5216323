package usecase

import (
	"context"

	"movie-tracker/internal/apperr"
	"movie-tracker/internal/data/entity"
	"movie-tracker/internal/data/repository"
	"movie-tracker/internal/dto/request"
	"movie-tracker/internal/dto/response"
	"movie-tracker/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProfileService interface {
	// Get returns the profile page data for ownerID. Only the owner may view
	// it: requesterID must match.
	Get(ctx context.Context, requesterID, ownerID uuid.UUID) (*response.ProfilePageResponse, error)
	// Update writes the bio and, when req.Picture is non-nil, replaces the
	// stored image.
	Update(ctx context.Context, requesterID, ownerID uuid.UUID, req *request.UpdateProfileRequest) error
	// Picture returns the raw stored image bytes.
	Picture(ctx context.Context, userID uuid.UUID) ([]byte, error)
}

type profileService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProfileService(repo *repository.Repository, log *zap.Logger) ProfileService {
	return &profileService{
		repo: repo,
		log:  log,
	}
}

func (s *profileService) Get(ctx context.Context, requesterID, ownerID uuid.UUID) (*response.ProfilePageResponse, error) {
	if requesterID != ownerID {
		s.log.Warn("Profile access denied",
			zap.String("requester_id", requesterID.String()),
			zap.String("owner_id", ownerID.String()))
		return nil, apperr.New(apperr.KindUnauthorized, "unauthorized access")
	}

	user, err := s.repo.User.FindByID(ctx, ownerID)
	if err != nil {
		s.log.Error("Failed to load user for profile", zap.Error(err), zap.String("user_id", ownerID.String()))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load profile", err)
	}
	if user == nil {
		return nil, apperr.New(apperr.KindNotFound, "user not found")
	}

	profile, err := s.repo.Profile.FindByUserID(ctx, ownerID)
	if err != nil {
		s.log.Error("Failed to load profile", zap.Error(err), zap.String("user_id", ownerID.String()))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load profile", err)
	}
	if profile == nil {
		return nil, apperr.New(apperr.KindNotFound, "profile not found")
	}

	movies, err := s.repo.Movie.FindByUser(ctx, ownerID)
	if err != nil {
		s.log.Error("Failed to load user movies for profile", zap.Error(err), zap.String("user_id", ownerID.String()))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load profile", err)
	}

	return &response.ProfilePageResponse{
		User:    response.UserToResponse(user),
		Profile: response.ProfileToResponse(profile),
		Movies:  response.MoviesToResponse(movies),
	}, nil
}

func (s *profileService) Update(ctx context.Context, requesterID, ownerID uuid.UUID, req *request.UpdateProfileRequest) error {
	if requesterID != ownerID {
		s.log.Warn("Profile edit denied",
			zap.String("requester_id", requesterID.String()),
			zap.String("owner_id", ownerID.String()))
		return apperr.New(apperr.KindUnauthorized, "unauthorized access")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Profile update validation failed", zap.Any("errors", errs))
		return apperr.New(apperr.KindValidation, utils.FormatValidationErrors(errs))
	}

	if len(req.Picture) > entity.MaxProfilePictureBytes {
		return apperr.New(apperr.KindValidation, "profile picture exceeds 2MB limit")
	}

	profile, err := s.repo.Profile.FindByUserID(ctx, ownerID)
	if err != nil {
		s.log.Error("Failed to load profile for update", zap.Error(err), zap.String("user_id", ownerID.String()))
		return apperr.Wrap(apperr.KindInternal, "failed to update profile", err)
	}
	if profile == nil {
		return apperr.New(apperr.KindNotFound, "profile not found")
	}

	if err := s.repo.Profile.Update(ctx, ownerID, req.Bio, req.Picture); err != nil {
		s.log.Error("Failed to update profile", zap.Error(err), zap.String("user_id", ownerID.String()))
		return apperr.Wrap(apperr.KindInternal, "failed to update profile", err)
	}

	s.log.Info("Profile updated",
		zap.String("user_id", ownerID.String()),
		zap.Bool("picture_replaced", req.Picture != nil))

	return nil
}

func (s *profileService) Picture(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	profile, err := s.repo.Profile.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load profile picture", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load picture", err)
	}

	if profile == nil || len(profile.ProfilePicture) == 0 {
		return nil, apperr.New(apperr.KindNotFound, "profile picture not found")
	}

	return profile.ProfilePicture, nil
}
