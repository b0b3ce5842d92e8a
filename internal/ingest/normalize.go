package ingest

import (
	"bytes"
	"encoding/json"
	"math"
	"sort"
	"time"

	"github.com/shenikar/emergensys/internal/models"
)

// Record - строка хранилища в сыром виде, как ее вернул драйвер
type Record struct {
	Key               string
	ReportID          string
	Type              string
	Description       string
	Location          []byte
	// LocationUpdatedAt - nil, если местоположение не меняли после подачи
	LocationUpdatedAt *time.Time
	Severity          string
	Status            string
	VictimCount       int
	ReporterName      string
	ReporterContact   string
	Media             []byte
	AssignedTeam      string
	AssignedTeamName  string
	ResponseTime      *float64
	CreatedAt         time.Time
	Events            []EventRecord
}

// EventRecord - строка журнала incident_events
type EventRecord struct {
	Seq    int64
	Kind   string
	Value  string
	Detail string
	At     time.Time
}

// Normalize превращает сырую запись в Incident. ok == false для записей без ключа хранилища.
func Normalize(r Record) (*models.Incident, bool) {
	if r.Key == "" {
		return nil, false
	}

	inc := &models.Incident{
		ID:                Sanitize(r.ReportID),
		Key:               r.Key,
		Type:              Sanitize(r.Type),
		Description:       Sanitize(r.Description),
		Status:            normalizeStatus(r.Status),
		Severity:          models.NormalizeSeverity(r.Severity),
		VictimCount:       r.VictimCount,
		Location:          normalizeLocation(r.Location),
		LocationUpdatedAt: utcOrNil(r.LocationUpdatedAt),
		Media:             normalizeMedia(r.Media),
		ReportedBy:        normalizeReporter(r.ReporterName, r.ReporterContact),
		AssignedTeam:      r.AssignedTeam,
		AssignedTeamName:  r.AssignedTeamName,
		ResponseTime:      normalizeResponseTime(r.ResponseTime),
		Timestamp:         r.CreatedAt.UTC(),
		StatusHistory:     []models.StatusChange{},
		TeamAssignments:   []models.TeamAssignment{},
		Notes:             []models.Note{},
	}
	if inc.ID == "" {
		inc.ID = r.Key
	}
	if inc.VictimCount < 0 {
		inc.VictimCount = 0
	}

	applyEvents(inc, r.Events)
	return inc, true
}

// NormalizeAll нормализует весь набор, пропуская записи без ключа
func NormalizeAll(records []Record) []*models.Incident {
	out := make([]*models.Incident, 0, len(records))
	for _, r := range records {
		if inc, ok := Normalize(r); ok {
			out = append(out, inc)
		}
	}
	return out
}

func normalizeStatus(raw string) models.Status {
	if raw == "" {
		return models.StatusNew
	}
	// неизвестный статус сохраняется как есть: он не попадает ни в один фильтр, кроме "all"
	s, _ := models.ParseStatus(raw)
	return s
}

func normalizeLocation(raw []byte) models.Location {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return models.Location{}
	}
	if trimmed[0] == '"' {
		var addr string
		if err := json.Unmarshal(trimmed, &addr); err != nil || addr == models.NoLocationProvided {
			return models.Location{}
		}
		return models.Location{Address: Sanitize(addr)}
	}
	var loc models.Location
	if err := json.Unmarshal(trimmed, &loc); err != nil {
		return models.Location{}
	}
	loc.Address = Sanitize(loc.Address)
	return loc
}

func normalizeMedia(raw []byte) []models.Media {
	media := []models.Media{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return media
	}
	var parsed []models.Media
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return media
	}
	for _, m := range parsed {
		if m.URL == "" {
			continue
		}
		media = append(media, m)
	}
	return media
}

func normalizeReporter(name, contact string) models.Reporter {
	r := models.Reporter{Name: Sanitize(name), Contact: Sanitize(contact)}
	if r.Name == "" {
		r.Name = models.AnonymousReporter
	}
	if r.Contact == "" {
		r.Contact = models.ContactNotProvided
	}
	return r
}

func utcOrNil(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func normalizeResponseTime(rt *float64) *float64 {
	if rt == nil || math.IsNaN(*rt) || math.IsInf(*rt, 0) {
		return nil
	}
	v := *rt
	return &v
}

func applyEvents(inc *models.Incident, events []EventRecord) {
	sorted := append([]EventRecord(nil), events...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Seq < sorted[j].Seq })

	for _, e := range sorted {
		at := e.At.UTC()
		switch models.OperationKind(e.Kind) {
		case models.OperationStatus:
			s, _ := models.ParseStatus(e.Value)
			inc.StatusHistory = append(inc.StatusHistory, models.StatusChange{At: at, Status: s})
		case models.OperationTeam:
			inc.TeamAssignments = append(inc.TeamAssignments, models.TeamAssignment{At: at, TeamID: e.Value, TeamName: e.Detail})
		case models.OperationNote:
			inc.Notes = append(inc.Notes, models.Note{At: at, Author: e.Detail, Text: Sanitize(e.Value)})
		}
	}
}
