package dto

// LoginRequest represents login credentials. Both fields are checked by the
// service rather than binding tags so that a missing field yields the
// MissingCredentials outcome instead of a generic validation error.
type LoginRequest struct {
	RegNo    string `json:"regNo"`
	Password string `json:"password"`
}

// RegisterRequest represents a self-registration request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	RegNo    string `json:"regNo" binding:"required"`
	Branch   string `json:"branch" binding:"required"`
	Semester string `json:"semester" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn"`
	Role        string `json:"role"`
	Name        string `json:"name"`
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}
