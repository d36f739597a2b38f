package dto

// ── university lookup DTOs ──

// UniversityResponse — one university with its campuses
type UniversityResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	ShortName string           `json:"short_name"`
	Campuses  []CampusResponse `json:"campuses"`
}

// CampusResponse — one campus
type CampusResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	City           string `json:"city,omitempty"`
	HasCircularBus bool   `json:"has_circular_bus"`
	UniversityID   string `json:"university_id"`
	University     string `json:"university,omitempty"` // short name, when preloaded
}
