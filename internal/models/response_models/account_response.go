package response_models

type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type AccessTokenResponse struct {
	Access string `json:"access"`
}

type AccountResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Bio       string  `json:"bio"`
	Avatar    *string `json:"avatar"`
}
