package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaxProfilePictureBytes caps uploaded profile pictures at 2 MB.
const MaxProfilePictureBytes = 2 * 1024 * 1024

type UserProfile struct {
	ID             uuid.UUID `db:"id"`
	UserID         uuid.UUID `db:"user_id"`
	Bio            string    `db:"bio"`
	ProfilePicture []byte    `db:"profile_picture"`
	UpdatedAt      time.Time `db:"updated_at"`
}
