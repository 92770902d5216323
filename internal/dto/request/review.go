package request

type CreateReviewRequest struct {
	Content string   `json:"content" validate:"required,max=2048"`
	Rating  *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=10"`
}
