package usecase

import (
	"movie-tracker/internal/data/repository"
	"movie-tracker/internal/metadata"
	"movie-tracker/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Profile ProfileService
	Movie   MovieService
	Review  ReviewService
}

func NewService(repo *repository.Repository, fetcher metadata.Fetcher, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		User:    NewUserService(repo.User, log),
		Profile: NewProfileService(repo, log),
		Movie:   NewMovieService(repo, fetcher, log),
		Review:  NewReviewService(repo, log),
	}
}
