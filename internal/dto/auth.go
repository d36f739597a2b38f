package dto

// ── auth module DTOs ──

// RegisterRequest — account signup
type RegisterRequest struct {
	FullName         string `json:"full_name"         binding:"required,min=2,max=100"`
	Email            string `json:"email"             binding:"required,email"`
	Password         string `json:"password"          binding:"required,min=8,max=72"`
	CampusID         string `json:"campus_id"         binding:"omitempty,uuid"`
	SemestreIngresso string `json:"semestre_ingresso" binding:"omitempty,max=10"`
}

// LoginRequest — email/password login
type LoginRequest struct {
	Email      string `json:"email"    binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

// RefreshTokenRequest — exchange a refresh token for a new pair
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest — authenticated password change
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}

// TokenResponse — token pair plus the authenticated profile
type TokenResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	ExpiresIn    int             `json:"expires_in"` // access token lifetime in seconds
	User         ProfileResponse `json:"user"`
}
