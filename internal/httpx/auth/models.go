package auth

// TokenResponse represents an access token response
// swagger:model TokenResponse
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"<JWT>"`
	TokenType   string `json:"token_type" example:"Bearer"`
	ExpiresIn   int    `json:"expires_in" example:"1800"`
}

// LoginRequest represents the password login request body
// swagger:model LoginRequest
type LoginRequest struct {
	Identifier string `json:"identifier" example:"alice"`
	Password   string `json:"password" example:"Secretp@ssw0rd"`
}

// RegisterRequest represents the registration request body
// swagger:model RegisterRequest
type RegisterRequest struct {
	Username    string `json:"username" example:"alice"`
	Password    string `json:"password" example:"Secretp@ssw0rd"`
	DisplayName string `json:"display_name" example:"Alice"`
	Email       string `json:"email,omitempty" example:"alice@example.com"`
}
