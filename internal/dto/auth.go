package dto

// ── auth ──

// LoginRequest login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest self registration; new accounts are reviewers
type RegisterRequest struct {
	Username  string `json:"username"   binding:"required,min=3,max=150"`
	Email     string `json:"email"      binding:"required,email"`
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name"  binding:"required,max=100"`
	Phone     string `json:"phone"      binding:"omitempty,max=20"`
	Position  string `json:"position"   binding:"omitempty,max=100"`
	Password  string `json:"password"   binding:"required,min=8,max=128"`
}

// TokenResponse token pair
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"` // access token lifetime, seconds
	User         UserResponse `json:"user"`
}

// RefreshTokenRequest refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
