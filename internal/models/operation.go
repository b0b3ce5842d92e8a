package models

import (
	"time"

	"github.com/google/uuid"
)

// OperationKind - тип исходящего частичного обновления
type OperationKind string

const (
	OperationStatus   OperationKind = "status"
	OperationTeam     OperationKind = "team"
	OperationNote     OperationKind = "note"
	OperationLocation OperationKind = "location"
)

// OperationState - судьба исходящей записи во внешнее хранилище
type OperationState string

const (
	OperationPending   OperationState = "pending"
	OperationCommitted OperationState = "committed"
	OperationFailed    OperationState = "failed"
)

// Operation - оптимистичное локальное изменение и попытка его записи в хранилище.
// Проваленная операция остается видимой и повторяется только явно.
type Operation struct {
	ID          uuid.UUID      `json:"id"`
	Kind        OperationKind  `json:"kind"`
	IncidentKey string         `json:"incidentKey"`
	State       OperationState `json:"state"`
	Error       string         `json:"error,omitempty"`
	Attempts    int            `json:"attempts"`

	StatusChange   *StatusChange   `json:"statusChange,omitempty"`
	TeamAssignment *TeamAssignment `json:"teamAssignment,omitempty"`
	Note           *Note           `json:"note,omitempty"`
	LocationChange *LocationChange `json:"locationChange,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Clone возвращает копию, безопасную для передачи наружу
func (o *Operation) Clone() *Operation {
	c := *o
	if o.StatusChange != nil {
		sc := *o.StatusChange
		c.StatusChange = &sc
	}
	if o.TeamAssignment != nil {
		ta := *o.TeamAssignment
		c.TeamAssignment = &ta
	}
	if o.Note != nil {
		n := *o.Note
		c.Note = &n
	}
	if o.LocationChange != nil {
		lc := *o.LocationChange
		if lc.Location.Coordinates != nil {
			coords := *lc.Location.Coordinates
			lc.Location.Coordinates = &coords
		}
		c.LocationChange = &lc
	}
	return &c
}
