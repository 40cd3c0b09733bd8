package request_models

type GoogleLoginRequest struct {
	Credential string `json:"credential"`
}

type RefreshTokenRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type UpdateProfileRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,max=150"`
	LastName  *string `json:"last_name" binding:"omitempty,max=150"`
	Bio       *string `json:"bio"`
}
