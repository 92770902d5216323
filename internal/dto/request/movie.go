package request

// AddMovieRequest carries only the title; everything else comes from the
// metadata lookup.
type AddMovieRequest struct {
	Title string `json:"title" validate:"required,min=1,max=255"`
}

type UpdateMovieRequest struct {
	Title  string  `json:"title" validate:"required,min=1,max=255"`
	Rating float64 `json:"rating" validate:"gte=0,lte=10"`
}

// APIMovieRequest is the JSON API variant: the caller supplies all movie
// fields directly instead of going through the metadata lookup.
type APIMovieRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=255"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=10"`
	Year        int     `json:"year" validate:"gte=0"`
	Poster      string  `json:"poster" validate:"max=255"`
}
