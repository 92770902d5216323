package request

type UpdateProfileRequest struct {
	Bio string `json:"bio" validate:"max=500"`
	// Picture is nil when the form carries no file, which preserves the
	// stored image.
	Picture []byte `json:"-"`
}
