package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ── day-type buckets ──

// Day-type values stored in bus_schedules.valid_on. A schedule entry is
// only considered "valid today" when its bucket matches the current day.
const (
	DayTypeWeekday       = "dias_uteis"
	DayTypeSaturday      = "sabado"
	DayTypeSundayHoliday = "domingo_feriado"
)

// ── schedule payload (tagged union) ──

// ScheduleKind discriminates the three payload shapes found in
// bus_schedules.schedule. The tag is decided once when the row is
// scanned; consumers switch on it instead of probing optional fields.
type ScheduleKind string

const (
	// KindRoundTrips — list of round trips, each with start/end time and
	// an origin location ("voltas" shape).
	KindRoundTrips ScheduleKind = "voltas"
	// KindFixedDepartures — flat list of departure times from a single
	// origin ("partidas_fixas" shape).
	KindFixedDepartures ScheduleKind = "partidas_fixas"
	// KindPerLocation — departure-time lists grouped by origin location
	// ("partidas_por_local" shape).
	KindPerLocation ScheduleKind = "partidas_por_local"
	// KindUnknown — unrecognized payload; normalizes to zero departures.
	KindUnknown ScheduleKind = ""
)

// RoundTrip is one entry of the "voltas" shape.
type RoundTrip struct {
	HorarioInicio string `json:"horario_inicio"`
	HorarioFim    string `json:"horario_fim"`
	LocalSaida    string `json:"local_saida"`
	LocalChegada  string `json:"local_chegada,omitempty"`
}

// LocationDepartures is one entry of the "partidas_por_local" shape.
type LocationDepartures struct {
	Nome     string   `json:"nome"`
	Horarios []string `json:"horarios"`
}

// SchedulePayload is the JSONB schedule column of bus_schedules.
// It implements the GORM Scanner/Valuer pair; Scan decides Kind once so
// downstream code never sniffs field presence again.
type SchedulePayload struct {
	Kind ScheduleKind `json:"-"`

	Tipo         string               `json:"tipo,omitempty"`
	Voltas       []RoundTrip          `json:"voltas,omitempty"`
	Horarios     []string             `json:"horarios,omitempty"`
	PontoPartida string               `json:"ponto_partida,omitempty"`
	Locais       []LocationDepartures `json:"locais,omitempty"`
}

// DetectKind classifies the payload from its populated fields.
func (p *SchedulePayload) DetectKind() ScheduleKind {
	switch {
	case len(p.Voltas) > 0:
		return KindRoundTrips
	case p.Tipo == string(KindFixedDepartures) && len(p.Horarios) > 0:
		return KindFixedDepartures
	case p.Tipo == string(KindPerLocation) && len(p.Locais) > 0:
		return KindPerLocation
	default:
		return KindUnknown
	}
}

// Scan parses the JSONB column and tags the payload.
func (p *SchedulePayload) Scan(src interface{}) error {
	if src == nil {
		*p = SchedulePayload{}
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("SchedulePayload.Scan: unsupported type %T", src)
	}

	type alias SchedulePayload // avoid recursing into Scan/Unmarshal
	var decoded alias
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("SchedulePayload.Scan: invalid JSON: %w", err)
	}
	*p = SchedulePayload(decoded)
	p.Kind = p.DetectKind()
	return nil
}

// Value serializes the payload back to JSONB.
func (p SchedulePayload) Value() (driver.Value, error) {
	type alias SchedulePayload
	return json.Marshal(alias(p))
}

// ── tables ──

// BusRoute — corresponds to bus_routes
type BusRoute struct {
	BusRouteID   string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"bus_route_id"`
	UniversityID string  `gorm:"type:uuid;not null"                             json:"university_id"`
	Name         string  `gorm:"type:varchar(200);not null"                     json:"name"`
	ShortName    *string `gorm:"type:varchar(50)"                               json:"short_name,omitempty"`
	Description  *string `gorm:"type:text"                                      json:"description,omitempty"`
	IsActive     bool    `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel

	University *University   `gorm:"foreignKey:UniversityID;references:UniversityID" json:"university,omitempty"`
	Schedules  []BusSchedule `gorm:"foreignKey:RouteID"                              json:"schedules,omitempty"`
}

// TableName sets the table name.
func (BusRoute) TableName() string { return "bus_routes" }

// BusSchedule — corresponds to bus_schedules
type BusSchedule struct {
	BusScheduleID int64           `gorm:"primaryKey;autoIncrement"  json:"bus_schedule_id"`
	RouteID       string          `gorm:"type:uuid;not null"        json:"route_id"`
	ValidOn       string          `gorm:"type:day_type;not null"    json:"valid_on"` // dias_uteis | sabado | domingo_feriado
	Schedule      SchedulePayload `gorm:"type:jsonb;not null"       json:"schedule"`
	Observation   *string         `gorm:"type:text"                 json:"observation,omitempty"`
	BaseModel

	Route *BusRoute `gorm:"foreignKey:RouteID;references:BusRouteID" json:"route,omitempty"`
}

// TableName sets the table name.
func (BusSchedule) TableName() string { return "bus_schedules" }
