package response_models

import "time"

type RatingResponse struct {
	ID        string    `json:"id"`
	UserEmail string    `json:"user_email"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
