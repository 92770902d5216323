package response

import (
	"time"

	"movie-tracker/internal/data/entity"
)

type ProfileResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Bio        string    `json:"bio"`
	HasPicture bool      `json:"has_picture"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ProfilePageResponse struct {
	User    UserResponse    `json:"user"`
	Profile ProfileResponse `json:"profile"`
	Movies  []MovieResponse `json:"movies"`
}

func ProfileToResponse(profile *entity.UserProfile) ProfileResponse {
	return ProfileResponse{
		ID:         profile.ID.String(),
		UserID:     profile.UserID.String(),
		Bio:        profile.Bio,
		HasPicture: len(profile.ProfilePicture) > 0,
		UpdatedAt:  profile.UpdatedAt,
	}
}
