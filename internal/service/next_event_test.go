package service

import (
	"testing"
	"time"

	"github.com/L4U04/salvaluno/internal/model"
)

// fixed reference dates: 2026-08-24 is a Monday.
func mondayAt(hour, min int) time.Time {
	return time.Date(2026, 8, 24, hour, min, 0, 0, time.UTC)
}

func TestClassifyDayType(t *testing.T) {
	cases := []struct {
		day  int // august 2026
		want string
	}{
		{24, model.DayTypeWeekday},       // Monday
		{28, model.DayTypeWeekday},       // Friday
		{29, model.DayTypeSaturday},      // Saturday
		{30, model.DayTypeSundayHoliday}, // Sunday
	}
	for _, tc := range cases {
		now := time.Date(2026, 8, tc.day, 12, 0, 0, 0, time.UTC)
		if got := ClassifyDayType(now); got != tc.want {
			t.Errorf("day %d: expected %s, got %s", tc.day, tc.want, got)
		}
	}
}

func TestNormalizeDepartures_RoundTrips(t *testing.T) {
	payload := model.SchedulePayload{
		Kind: model.KindRoundTrips,
		Voltas: []model.RoundTrip{
			{HorarioInicio: "07:10", HorarioFim: "07:40", LocalSaida: "Campus", LocalChegada: "Centro"},
			{HorarioInicio: "12:00", HorarioFim: "12:30", LocalSaida: "Centro"},
		},
	}

	departures, diagnostics := NormalizeDepartures(payload, "UFRB", mondayAt(6, 0))

	if len(diagnostics) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diagnostics)
	}
	if len(departures) != 2 {
		t.Fatalf("expected 2 departures, got %d", len(departures))
	}
	if departures[0].Time != "07:10" || departures[0].EndTime != "07:40" {
		t.Errorf("unexpected first departure: %+v", departures[0])
	}
	if departures[0].Details != "Saída de: Campus" {
		t.Errorf("expected 'Saída de: Campus', got %q", departures[0].Details)
	}
	if departures[0].University != "UFRB" {
		t.Errorf("expected university UFRB, got %q", departures[0].University)
	}
	if departures[0].OccursAt.Hour() != 7 || departures[0].OccursAt.Minute() != 10 {
		t.Errorf("OccursAt not anchored on the clock time: %v", departures[0].OccursAt)
	}
}

func TestNormalizeDepartures_FixedDepartures(t *testing.T) {
	payload := model.SchedulePayload{
		Kind:         model.KindFixedDepartures,
		Tipo:         "partidas_fixas",
		Horarios:     []string{"08:00", "10:00", "12:00"},
		PontoPartida: "Portaria Principal",
	}

	departures, diagnostics := NormalizeDepartures(payload, "", mondayAt(6, 0))

	if len(diagnostics) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diagnostics)
	}
	if len(departures) != 3 {
		t.Fatalf("expected 3 departures, got %d", len(departures))
	}
	for _, d := range departures {
		if d.Details != "Partida de: Portaria Principal" {
			t.Errorf("expected 'Partida de: Portaria Principal', got %q", d.Details)
		}
		if d.EndTime != "" {
			t.Errorf("fixed departures carry no end time, got %q", d.EndTime)
		}
	}
}

func TestNormalizeDepartures_PerLocation(t *testing.T) {
	payload := model.SchedulePayload{
		Kind: model.KindPerLocation,
		Tipo: "partidas_por_local",
		Locais: []model.LocationDepartures{
			{Nome: "Residência", Horarios: []string{"07:00", "09:00"}},
			{Nome: "Biblioteca", Horarios: []string{"08:00"}},
		},
	}

	departures, diagnostics := NormalizeDepartures(payload, "", mondayAt(6, 0))

	if len(diagnostics) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diagnostics)
	}
	if len(departures) != 3 {
		t.Fatalf("expected 3 departures, got %d", len(departures))
	}
	if departures[0].Details != "Partida de: Residência" {
		t.Errorf("expected 'Partida de: Residência', got %q", departures[0].Details)
	}
	if departures[2].Details != "Partida de: Biblioteca" {
		t.Errorf("expected 'Partida de: Biblioteca', got %q", departures[2].Details)
	}
}

func TestNormalizeDepartures_MalformedTimesBecomeDiagnostics(t *testing.T) {
	payload := model.SchedulePayload{
		Kind:         model.KindFixedDepartures,
		Tipo:         "partidas_fixas",
		Horarios:     []string{"08:00", "25:00", "garbage", "09:99", "10:30"},
		PontoPartida: "Portaria",
	}

	departures, diagnostics := NormalizeDepartures(payload, "", mondayAt(6, 0))

	if len(departures) != 2 {
		t.Errorf("expected the 2 well-formed entries to survive, got %d", len(departures))
	}
	if len(diagnostics) != 3 {
		t.Errorf("expected 3 diagnostics, got %d: %v", len(diagnostics), diagnostics)
	}
}

func TestNormalizeDepartures_UnknownKind(t *testing.T) {
	payload := model.SchedulePayload{Kind: model.KindUnknown}

	departures, diagnostics := NormalizeDepartures(payload, "", mondayAt(6, 0))

	if len(departures) != 0 {
		t.Errorf("unknown payload must normalize to zero departures, got %d", len(departures))
	}
	if len(diagnostics) != 1 {
		t.Errorf("expected one diagnostic for the unknown shape, got %v", diagnostics)
	}
}

func TestDetectKind(t *testing.T) {
	cases := []struct {
		name    string
		payload model.SchedulePayload
		want    model.ScheduleKind
	}{
		{"round trips", model.SchedulePayload{Voltas: []model.RoundTrip{{HorarioInicio: "07:00"}}}, model.KindRoundTrips},
		{"fixed", model.SchedulePayload{Tipo: "partidas_fixas", Horarios: []string{"07:00"}}, model.KindFixedDepartures},
		{"per location", model.SchedulePayload{Tipo: "partidas_por_local", Locais: []model.LocationDepartures{{Nome: "A"}}}, model.KindPerLocation},
		{"empty", model.SchedulePayload{}, model.KindUnknown},
		{"tipo without data", model.SchedulePayload{Tipo: "partidas_fixas"}, model.KindUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.payload.DetectKind(); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestResolveNextDeparture_PicksFirstAfterNow(t *testing.T) {
	now := mondayAt(9, 30)
	departures := []Departure{
		{Time: "12:00", OccursAt: mondayAt(12, 0)},
		{Time: "08:00", OccursAt: mondayAt(8, 0)},
		{Time: "10:00", OccursAt: mondayAt(10, 0)},
	}

	next := ResolveNextDeparture(departures, now)
	if next == nil {
		t.Fatal("expected a departure")
	}
	if next.Time != "10:00" {
		t.Errorf("expected 10:00, got %s", next.Time)
	}
}

func TestResolveNextDeparture_ExactlyNowIsGone(t *testing.T) {
	now := mondayAt(10, 0)
	departures := []Departure{
		{Time: "10:00", OccursAt: mondayAt(10, 0)},
		{Time: "11:00", OccursAt: mondayAt(11, 0)},
	}

	next := ResolveNextDeparture(departures, now)
	if next == nil || next.Time != "11:00" {
		t.Fatalf("a departure at exactly now is already gone; expected 11:00, got %+v", next)
	}
}

func TestResolveNextDeparture_NothingLeftToday(t *testing.T) {
	now := mondayAt(23, 30)
	departures := []Departure{
		{Time: "08:00", OccursAt: mondayAt(8, 0)},
		{Time: "22:00", OccursAt: mondayAt(22, 0)},
	}

	if next := ResolveNextDeparture(departures, now); next != nil {
		t.Errorf("resolution never rolls into tomorrow; expected nil, got %+v", next)
	}
}

func TestResolveNextDeparture_EmptyList(t *testing.T) {
	if next := ResolveNextDeparture(nil, mondayAt(9, 0)); next != nil {
		t.Errorf("expected nil for empty list, got %+v", next)
	}
}

func TestCountdown(t *testing.T) {
	cases := []struct {
		name        string
		target      time.Time
		now         time.Time
		hours, mins int
	}{
		{"ninety minutes", mondayAt(10, 30), mondayAt(9, 0), 1, 30},
		{"exactly one hour", mondayAt(7, 0), mondayAt(6, 0), 1, 0},
		{"under an hour", mondayAt(9, 45), mondayAt(9, 0), 0, 45},
		{"zero", mondayAt(9, 0), mondayAt(9, 0), 0, 0},
		{"past clamps", mondayAt(8, 0), mondayAt(9, 0), 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := Countdown(tc.target, tc.now)
			if h != tc.hours || m != tc.mins {
				t.Errorf("expected %dh%02dm, got %dh%02dm", tc.hours, tc.mins, h, m)
			}
		})
	}
}

func TestCountdown_FlooredSeconds(t *testing.T) {
	target := mondayAt(10, 0)
	now := mondayAt(9, 0).Add(30 * time.Second) // 59m30s remaining

	h, m := Countdown(target, now)
	if h != 0 || m != 59 {
		t.Errorf("expected 0h59m (floored), got %dh%02dm", h, m)
	}
}

func TestNextClassDepartures_FiltersByToday(t *testing.T) {
	sessions := []model.ClassSession{
		{SubjectName: "Cálculo I", Day: "Seg", StartTime: "08:00", EndTime: "10:00"},
		{SubjectName: "Física", Day: "Ter", StartTime: "09:00", EndTime: "11:00"},
		{SubjectName: "Química", Day: "Seg", StartTime: "14:00", EndTime: "16:00"},
	}

	departures, diagnostics := NextClassDepartures(sessions, mondayAt(7, 0))

	if len(diagnostics) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diagnostics)
	}
	if len(departures) != 2 {
		t.Fatalf("expected only Monday sessions, got %d", len(departures))
	}
	for _, d := range departures {
		if d.Details == "Física" {
			t.Error("Tuesday session leaked into Monday's departures")
		}
	}
}

func TestNextClassDepartures_SundayHasNoClasses(t *testing.T) {
	sunday := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	sessions := []model.ClassSession{
		{SubjectName: "Cálculo I", Day: "Seg", StartTime: "08:00", EndTime: "10:00"},
		{SubjectName: "Sabatina", Day: "Sab", StartTime: "09:00", EndTime: "11:00"},
	}

	departures, _ := NextClassDepartures(sessions, sunday)
	if len(departures) != 0 {
		t.Errorf("the grid has no Sunday column; expected 0 departures, got %d", len(departures))
	}
}

func TestSchedulePayload_ScanTagsKind(t *testing.T) {
	var payload model.SchedulePayload
	raw := `{"voltas":[{"horario_inicio":"07:10","horario_fim":"07:40","local_saida":"Campus"}]}`

	if err := payload.Scan([]byte(raw)); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if payload.Kind != model.KindRoundTrips {
		t.Errorf("expected kind %q, got %q", model.KindRoundTrips, payload.Kind)
	}
	if len(payload.Voltas) != 1 || payload.Voltas[0].LocalSaida != "Campus" {
		t.Errorf("payload not decoded: %+v", payload)
	}
}

func TestSchedulePayload_ScanInvalidJSON(t *testing.T) {
	var payload model.SchedulePayload
	if err := payload.Scan([]byte("{not json")); err == nil {
		t.Error("expected an error for invalid JSON")
	}
}
