package dto

// ── profile module DTOs ──

// UpdateProfileRequest — partial profile update
type UpdateProfileRequest struct {
	FullName         *string `json:"full_name"         binding:"omitempty,min=2,max=100"`
	CampusID         *string `json:"campus_id"         binding:"omitempty,uuid"`
	SemestreIngresso *string `json:"semestre_ingresso" binding:"omitempty,max=10"`
	AvatarURL        *string `json:"avatar_url"        binding:"omitempty,url"`
}

// ProfileResponse — sanitized profile view
type ProfileResponse struct {
	ID               string          `json:"id"`
	FullName         string          `json:"full_name"`
	Email            string          `json:"email"`
	AvatarURL        string          `json:"avatar_url,omitempty"`
	SemestreIngresso string          `json:"semestre_ingresso,omitempty"`
	Campus           *CampusResponse `json:"campus,omitempty"`
}
