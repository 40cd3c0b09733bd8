package request_models

type CreateRatingRequest struct {
	Score   int    `json:"score" binding:"required"`
	Comment string `json:"comment"`
}

// UpdateRatingRequest serves both PUT (score required) and PATCH.
type UpdateRatingRequest struct {
	Score   *int    `json:"score"`
	Comment *string `json:"comment"`
}
