package dto

// LoginRequest represents login credentials. Students log in with their
// email as username and their date of birth (YYYY-MM-DD) as password.
// Both JSON bodies and OAuth2 style form posts are accepted.
type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required" example:"asha@example.com"`
	Password string `json:"password" form:"password" binding:"required" example:"2008-05-01"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
	ExpiresIn   int64  `json:"expires_in" example:"86400"`
}

// WelcomeResponse is returned by the root endpoint.
type WelcomeResponse struct {
	Message string `json:"message" example:"Welcome to the Hosur Academy API"`
}
