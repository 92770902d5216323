package usecase

import (
	"context"

	"movie-tracker/internal/apperr"
	"movie-tracker/internal/data/repository"
	"movie-tracker/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	List(ctx context.Context) ([]response.UserResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*response.UserResponse, error)
	// Remove deletes a user and, via cascade, its profile, movies, reviews
	// and sessions. Removing an absent user is a no-op.
	Remove(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log,
	}
}

func (s *userService) List(ctx context.Context) ([]response.UserResponse, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list users", err)
	}

	return response.UsersToResponse(users), nil
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (*response.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get user", zap.Error(err), zap.String("user_id", id.String()))
		return nil, apperr.Wrap(apperr.KindInternal, "failed to get user", err)
	}

	if user == nil {
		return nil, apperr.New(apperr.KindNotFound, "user not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) Remove(ctx context.Context, id uuid.UUID) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		s.log.Error("Failed to remove user", zap.Error(err), zap.String("user_id", id.String()))
		return apperr.Wrap(apperr.KindInternal, "failed to remove user", err)
	}

	return nil
}
