package models

import (
	"io"
	"time"
)

// Incident - одна поданная экстренная заявка, отслеживаемая до завершения реагирования.
// Категория не хранится: она всегда выводится из Type классификатором.
// LocationUpdatedAt задан, только если местоположение меняли после подачи.
type Incident struct {
	ID                string           `json:"id"`
	Key               string           `json:"key"`
	Type              string           `json:"type"`
	Description       string           `json:"description"`
	Status            Status           `json:"status"`
	Severity          Severity         `json:"severity"`
	VictimCount       int              `json:"victimCount"`
	Location          Location         `json:"location"`
	LocationUpdatedAt *time.Time       `json:"locationUpdatedAt,omitempty"`
	Media             []Media          `json:"media"`
	ReportedBy        Reporter         `json:"reportedBy"`
	AssignedTeam      string           `json:"assignedTeam,omitempty"`
	AssignedTeamName  string           `json:"assignedTeamName,omitempty"`
	ResponseTime      *float64         `json:"responseTime,omitempty"`
	Timestamp         time.Time        `json:"timestamp"`
	StatusHistory     []StatusChange   `json:"statusHistory"`
	TeamAssignments   []TeamAssignment `json:"teamAssignments"`
	Notes             []Note           `json:"notes"`
}

// Media описывает вложение, загруженное в объектное хранилище
type Media struct {
	URL  string `json:"url"`
	Type string `json:"type"`
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// Reporter - контакт заявителя
type Reporter struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

const (
	AnonymousReporter  = "Anonymous"
	ContactNotProvided = "Not provided"
)

// StatusChange - запись журнала смены статуса
type StatusChange struct {
	At     time.Time `json:"at"`
	Status Status    `json:"status"`
}

// TeamAssignment - запись журнала назначения бригады
type TeamAssignment struct {
	At       time.Time `json:"at"`
	TeamID   string    `json:"teamId"`
	TeamName string    `json:"teamName"`
}

// Note - произвольная заметка к инциденту
type Note struct {
	At     time.Time `json:"at"`
	Author string    `json:"author"`
	Text   string    `json:"text"`
}

// LocationChange - замена местоположения после подачи.
// Location без координат означает, что координаты удалены.
type LocationChange struct {
	At       time.Time `json:"at"`
	Location Location  `json:"location"`
}

// IsActive сообщает, требует ли инцидент реагирования
func (i *Incident) IsActive() bool {
	return i.Status != StatusResolved
}

// Clone возвращает глубокую копию инцидента
func (i *Incident) Clone() *Incident {
	if i == nil {
		return nil
	}
	c := *i
	if i.Location.Coordinates != nil {
		coords := *i.Location.Coordinates
		c.Location.Coordinates = &coords
	}
	if i.ResponseTime != nil {
		rt := *i.ResponseTime
		c.ResponseTime = &rt
	}
	if i.LocationUpdatedAt != nil {
		at := *i.LocationUpdatedAt
		c.LocationUpdatedAt = &at
	}
	c.Media = append([]Media(nil), i.Media...)
	c.StatusHistory = append([]StatusChange(nil), i.StatusHistory...)
	c.TeamAssignments = append([]TeamAssignment(nil), i.TeamAssignments...)
	c.Notes = append([]Note(nil), i.Notes...)
	return &c
}

// MediaFile - вложение из формы до загрузки в хранилище
type MediaFile struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}
