package repository

import (
	"movie-tracker/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Profile ProfileRepository
	Movie   MovieRepository
	Review  ReviewRepository
	Session SessionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Profile: NewProfileRepository(db, log),
		Movie:   NewMovieRepository(db, log),
		Review:  NewReviewRepository(db, log),
		Session: NewSessionRepository(db, log),
	}
}
