package response

import (
	"time"

	"movie-tracker/internal/data/entity"
)

type MovieResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Rating      float64   `json:"rating"`
	Year        int       `json:"year"`
	Poster      string    `json:"poster"`
	CreatedAt   time.Time `json:"created_at"`
}

type MovieDetailResponse struct {
	MovieResponse
	Reviews []ReviewResponse `json:"reviews"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID.String(),
		UserID:      movie.UserID.String(),
		Title:       movie.Title,
		Description: movie.Description,
		Rating:      movie.Rating,
		Year:        movie.Year,
		Poster:      movie.Poster,
		CreatedAt:   movie.CreatedAt,
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	out := make([]MovieResponse, 0, len(movies))
	for _, movie := range movies {
		out = append(out, MovieToResponse(movie))
	}
	return out
}

func MovieToDetailResponse(movie *entity.Movie, reviews []*entity.Review) MovieDetailResponse {
	return MovieDetailResponse{
		MovieResponse: MovieToResponse(movie),
		Reviews:       ReviewsToResponse(reviews),
	}
}
