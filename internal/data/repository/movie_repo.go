package repository

import (
	"context"
	"fmt"

	"movie-tracker/internal/data/entity"
	"movie-tracker/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Movie, error)
	// FindByUserAndID filters by owner as well as id: a movie owned by a
	// different user reads as absent.
	FindByUserAndID(ctx context.Context, userID, movieID uuid.UUID) (*entity.Movie, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (id, user_id, title, description, rating, year, poster,
		                   created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.UserID,
		movie.Title,
		movie.Description,
		movie.Rating,
		movie.Year,
		movie.Poster,
		movie.CreatedAt,
		movie.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
			zap.String("user_id", movie.UserID.String()),
		)
		return fmt.Errorf("create movie %q: %w", movie.Title, err)
	}

	return nil
}

func (r *movieRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Movie, error) {
	query := `
		SELECT id, user_id, title, description, rating, year, poster, created_at, updated_at
		FROM movies
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find user movies",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find movies for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.UserID,
			&movie.Title,
			&movie.Description,
			&movie.Rating,
			&movie.Year,
			&movie.Poster,
			&movie.CreatedAt,
			&movie.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}

	return movies, nil
}

func (r *movieRepository) FindByUserAndID(ctx context.Context, userID, movieID uuid.UUID) (*entity.Movie, error) {
	query := `
		SELECT id, user_id, title, description, rating, year, poster, created_at, updated_at
		FROM movies
		WHERE id = $1 AND user_id = $2
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, movieID, userID).Scan(
		&movie.ID,
		&movie.UserID,
		&movie.Title,
		&movie.Description,
		&movie.Rating,
		&movie.Year,
		&movie.Poster,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by user and ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find movie %s for user %s: %w", movieID.String(), userID.String(), err)
	}

	return &movie, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `
		SELECT id, user_id, title, description, rating, year, poster, created_at, updated_at
		FROM movies
		WHERE id = $1
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.UserID,
		&movie.Title,
		&movie.Description,
		&movie.Rating,
		&movie.Year,
		&movie.Poster,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("find movie %s: %w", id.String(), err)
	}

	return &movie, nil
}

// Update overwrites all mutable fields. Updating an absent movie is a silent
// no-op.
func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, description = $3, rating = $4, year = $5, poster = $6,
		    updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Description,
		movie.Rating,
		movie.Year,
		movie.Poster,
	)

	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movie.ID.String()),
		)
		return fmt.Errorf("update movie %s: %w", movie.ID.String(), err)
	}

	return nil
}

// Delete removes a movie by id only. Callers verify ownership first.
func (r *movieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM movies WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return fmt.Errorf("delete movie %s: %w", id.String(), err)
	}

	r.log.Info("Movie deleted", zap.String("movie_id", id.String()))
	return nil
}
