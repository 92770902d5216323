package entity

import (
	"github.com/google/uuid"
)

type Movie struct {
	Base
	UserID      uuid.UUID `db:"user_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Rating      float64   `db:"rating"`
	Year        int       `db:"year"`
	Poster      string    `db:"poster"`
}
