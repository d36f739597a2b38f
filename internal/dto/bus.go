package dto

// ── circular-bus module DTOs ──

// DepartureResponse — one normalized occurrence for today
type DepartureResponse struct {
	Time       string `json:"time"`
	EndTime    string `json:"end_time,omitempty"` // round-trip shape only
	Details    string `json:"details"`            // e.g. "Saída de: Campus Cruz das Almas"
	University string `json:"university,omitempty"`
	OccursAt   string `json:"occurs_at"` // RFC 3339
}

// NextBusResponse — the soonest departure today plus a countdown.
// Departure is null when nothing remains today; that is a valid result,
// not an error.
type NextBusResponse struct {
	Departure *DepartureResponse `json:"departure"`
	Countdown *CountdownResponse `json:"countdown,omitempty"`
	DayType   string             `json:"day_type"`
}

// RouteScheduleResponse — one route with today's normalized departures
type RouteScheduleResponse struct {
	RouteID     string              `json:"route_id"`
	RouteName   string              `json:"route_name"`
	Observation string              `json:"observation,omitempty"`
	Departures  []DepartureResponse `json:"departures"`
}

// BusRoutesResponse — all active routes for the user's university
type BusRoutesResponse struct {
	DayType string                  `json:"day_type"`
	Routes  []RouteScheduleResponse `json:"routes"`
}
