package lifecycle

import (
	"strings"
	"time"

	"github.com/shenikar/emergensys/internal/models"
)

// SystemAuthor - автор заметки по умолчанию
const SystemAuthor = "System"

// Machine применяет смену статуса, назначение бригады и заметки к инциденту.
// Каждый вызов добавляет ровно одну запись в соответствующий журнал.
type Machine struct {
	policy Policy
	now    func() time.Time
}

// NewMachine создает автомат; nil policy означает Permissive
func NewMachine(policy Policy) *Machine {
	if policy == nil {
		policy = Permissive{}
	}
	return &Machine{policy: policy, now: time.Now}
}

// SetStatus переводит инцидент в новый статус и дописывает журнал
func (m *Machine) SetStatus(inc *models.Incident, raw string) (models.StatusChange, error) {
	to, ok := models.ParseStatus(raw)
	if !ok {
		return models.StatusChange{}, &models.ValidationError{Field: "status", Message: "unknown status " + strings.TrimSpace(raw)}
	}
	if err := m.policy.Allow(inc.Status, to); err != nil {
		return models.StatusChange{}, err
	}
	entry := models.StatusChange{At: m.now().UTC(), Status: to}
	inc.Status = to
	inc.StatusHistory = append(inc.StatusHistory, entry)
	return entry, nil
}

// AssignTeam назначает бригаду. Статус не меняется.
func (m *Machine) AssignTeam(inc *models.Incident, teamID, teamName string) (models.TeamAssignment, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return models.TeamAssignment{}, &models.ValidationError{Field: "teamId", Message: "team is required"}
	}
	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		teamName = teamID
	}
	entry := models.TeamAssignment{At: m.now().UTC(), TeamID: teamID, TeamName: teamName}
	inc.AssignedTeam = teamID
	inc.AssignedTeamName = teamName
	inc.TeamAssignments = append(inc.TeamAssignments, entry)
	return entry, nil
}

// AddNote дописывает заметку
func (m *Machine) AddNote(inc *models.Incident, author, text string) (models.Note, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Note{}, &models.ValidationError{Field: "text", Message: "note text is required"}
	}
	author = strings.TrimSpace(author)
	if author == "" {
		author = SystemAuthor
	}
	entry := models.Note{At: m.now().UTC(), Author: author, Text: text}
	inc.Notes = append(inc.Notes, entry)
	return entry, nil
}

// SetLocation заменяет местоположение после подачи. Пустой address сохраняет прежний адрес,
// nil coords удаляет координаты (метка "нет координат"). Журналы не меняются.
func (m *Machine) SetLocation(inc *models.Incident, address string, coords *models.Coordinates) (models.LocationChange, error) {
	loc := models.Location{Address: strings.TrimSpace(address)}
	if loc.Address == "" {
		loc.Address = inc.Location.Address
	}
	if coords != nil {
		if !coords.Valid() {
			return models.LocationChange{}, &models.ValidationError{Field: "coordinates", Message: "Coordinates are out of range"}
		}
		c := *coords
		if c.Source == "" {
			c.Source = models.SourceDevice
		}
		loc.Coordinates = &c
	}
	entry := models.LocationChange{At: m.now().UTC(), Location: loc}
	applyLocation(inc, entry)
	return entry, nil
}

func applyLocation(inc *models.Incident, change models.LocationChange) {
	inc.Location = change.Location
	if change.Location.Coordinates != nil {
		c := *change.Location.Coordinates
		inc.Location.Coordinates = &c
	}
	at := change.At
	inc.LocationUpdatedAt = &at
}

// Apply повторно применяет уже созданную запись операции (используется при повторе записи)
func Apply(inc *models.Incident, op *models.Operation) {
	switch op.Kind {
	case models.OperationStatus:
		if op.StatusChange != nil && !containsStatus(inc.StatusHistory, *op.StatusChange) {
			inc.Status = op.StatusChange.Status
			inc.StatusHistory = append(inc.StatusHistory, *op.StatusChange)
		}
	case models.OperationTeam:
		if op.TeamAssignment != nil && !containsTeam(inc.TeamAssignments, *op.TeamAssignment) {
			inc.AssignedTeam = op.TeamAssignment.TeamID
			inc.AssignedTeamName = op.TeamAssignment.TeamName
			inc.TeamAssignments = append(inc.TeamAssignments, *op.TeamAssignment)
		}
	case models.OperationNote:
		if op.Note != nil && !containsNote(inc.Notes, *op.Note) {
			inc.Notes = append(inc.Notes, *op.Note)
		}
	case models.OperationLocation:
		// более поздняя замена местоположения не перетирается повтором старой
		if op.LocationChange != nil && (inc.LocationUpdatedAt == nil || !inc.LocationUpdatedAt.After(op.LocationChange.At)) {
			applyLocation(inc, *op.LocationChange)
		}
	}
}

func containsStatus(log []models.StatusChange, e models.StatusChange) bool {
	for _, x := range log {
		if x.At.Equal(e.At) && x.Status == e.Status {
			return true
		}
	}
	return false
}

func containsTeam(log []models.TeamAssignment, e models.TeamAssignment) bool {
	for _, x := range log {
		if x.At.Equal(e.At) && x.TeamID == e.TeamID {
			return true
		}
	}
	return false
}

func containsNote(log []models.Note, e models.Note) bool {
	for _, x := range log {
		if x.At.Equal(e.At) && x.Author == e.Author && x.Text == e.Text {
			return true
		}
	}
	return false
}
