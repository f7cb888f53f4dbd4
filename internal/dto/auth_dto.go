package dto

// RegisterRequest creates a new user account. Role is optional and defaults
// to student; unknown values are coerced to student at the auth boundary.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries the signed JWT returned by register and login.
type TokenResponse struct {
	Token string `json:"token"`
}
