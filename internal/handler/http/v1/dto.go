package v1

import (
	"time"

	"github.com/shenikar/emergensys/internal/dashboard"
	"github.com/shenikar/emergensys/internal/models"
)

// SubmitIncidentRequest DTO для подачи заявки (JSON или multipart с файлами media)
// @Description DTO для подачи заявки
type SubmitIncidentRequest struct {
	Type            string   `json:"type" form:"type"`
	Description     string   `json:"description" form:"description"`
	Address         string   `json:"address" form:"address"`
	ShareLocation   bool     `json:"shareLocation" form:"shareLocation"`
	Latitude        *float64 `json:"latitude,omitempty" form:"latitude" validate:"omitempty,latitude"`
	Longitude       *float64 `json:"longitude,omitempty" form:"longitude" validate:"omitempty,longitude"`
	Accuracy        float64  `json:"accuracy,omitempty" form:"accuracy" validate:"gte=0"`
	Severity        string   `json:"severity,omitempty" form:"severity"`
	VictimCount     *int     `json:"victimCount,omitempty" form:"victimCount"`
	ReporterName    string   `json:"reporterName,omitempty" form:"reporterName" validate:"max=255"`
	ReporterContact string   `json:"reporterContact,omitempty" form:"reporterContact" validate:"max=255"`
}

// SubmitIncidentResponse DTO подтверждения приема заявки
// @Description DTO подтверждения приема заявки
type SubmitIncidentResponse struct {
	ID         string            `json:"id"`
	Key        string            `json:"key"`
	Accepted   bool              `json:"accepted"`
	Category   models.Category   `json:"category"`
	SafetyTips []string          `json:"safetyTips"`
	Incident   *IncidentResponse `json:"incident"`
	Warnings   []string          `json:"warnings,omitempty"`
}

// UpdateStatusRequest DTO для смены статуса
// @Description DTO для смены статуса
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AssignTeamRequest DTO для назначения бригады
// @Description DTO для назначения бригады
type AssignTeamRequest struct {
	TeamID   string `json:"teamId" validate:"required,max=100"`
	TeamName string `json:"teamName,omitempty" validate:"max=255"`
}

// UpdateLocationRequest DTO для уточнения местоположения после подачи
// @Description DTO для уточнения местоположения
type UpdateLocationRequest struct {
	Address   string   `json:"address,omitempty" validate:"max=500"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
	Accuracy  float64  `json:"accuracy,omitempty" validate:"gte=0"`
}

// AddNoteRequest DTO для заметки
// @Description DTO для заметки
type AddNoteRequest struct {
	Author string `json:"author,omitempty" validate:"max=255"`
	Text   string `json:"text" validate:"required,max=4000"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID                string                  `json:"id"`
	Key               string                  `json:"key"`
	Type              string                  `json:"type"`
	Category          models.Category         `json:"category"`
	Description       string                  `json:"description"`
	Status            models.Status           `json:"status"`
	Severity          models.Severity         `json:"severity"`
	VictimCount       int                     `json:"victimCount"`
	Location          models.Location         `json:"location"`
	LocationUpdatedAt *time.Time              `json:"locationUpdatedAt,omitempty"`
	Media             []models.Media          `json:"media"`
	ReportedBy        models.Reporter         `json:"reportedBy"`
	AssignedTeam      string                  `json:"assignedTeam,omitempty"`
	AssignedTeamName  string                  `json:"assignedTeamName,omitempty"`
	ResponseTime      *float64                `json:"responseTime,omitempty"`
	Timestamp         time.Time               `json:"timestamp"`
	StatusHistory     []models.StatusChange   `json:"statusHistory"`
	TeamAssignments   []models.TeamAssignment `json:"teamAssignments"`
	Notes             []models.Note           `json:"notes"`
}

// IncidentListResponse DTO страницы ленты
// @Description DTO страницы ленты
type IncidentListResponse struct {
	Items       []*IncidentResponse `json:"items"`
	Page        int                 `json:"page"`
	PageSize    int                 `json:"pageSize"`
	Total       int                 `json:"total"`
	TotalPages  int                 `json:"totalPages"`
	HasPrev     bool                `json:"hasPrev"`
	HasNext     bool                `json:"hasNext"`
	ActiveCount int                 `json:"activeCount"`
}

// LiveUpdateResponse сообщение websocket-ленты после каждого пересчета
// @Description сообщение websocket-ленты
type LiveUpdateResponse struct {
	Version  uint64              `json:"version"`
	Filtered []*IncidentResponse `json:"filtered"`
	Active   []*IncidentResponse `json:"active"`
	Stats    dashboard.Summary   `json:"stats"`
}

// SafetyTipsResponse DTO советов безопасности
// @Description DTO советов безопасности
type SafetyTipsResponse struct {
	Type     string          `json:"type"`
	Category models.Category `json:"category"`
	Tips     []string        `json:"tips"`
}

// ReverseGeocodeResponse DTO адреса по координатам
// @Description DTO адреса по координатам
type ReverseGeocodeResponse struct {
	Address string `json:"address"`
}
