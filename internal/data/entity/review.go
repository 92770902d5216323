package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseSimple
	UserID  uuid.UUID `db:"user_id"`
	MovieID uuid.UUID `db:"movie_id"`
	Content string    `db:"content"`
	Rating  *float64  `db:"rating"` // optional numeric rating
}
