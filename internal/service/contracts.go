package service

//go:generate mockgen -source=contracts.go -destination=mocks/contracts.go -package=mocks

import (
	"context"

	"github.com/shenikar/emergensys/internal/models"
	"github.com/shenikar/emergensys/internal/stream"
)

// IncidentRepository определяет контракт для работы с хранилищем заявок
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByKey(ctx context.Context, key string) (*models.Incident, error)
	ListAll(ctx context.Context) ([]*models.Incident, error)
	UpdateStatus(ctx context.Context, key string, change models.StatusChange) error
	AssignTeam(ctx context.Context, key string, assignment models.TeamAssignment) error
	AddNote(ctx context.Context, key string, note models.Note) error
	UpdateLocation(ctx context.Context, key string, change models.LocationChange) error
	UpdateMedia(ctx context.Context, key string, media []models.Media) error
	GetSnapshotFromCache(ctx context.Context) ([]*models.Incident, error)
	SetSnapshotCache(ctx context.Context, incidents []*models.Incident) error
	InvalidateSnapshotCache(ctx context.Context) error
}

// MediaUploader загружает вложения в объектное хранилище
type MediaUploader interface {
	Upload(ctx context.Context, incidentID string, file models.MediaFile) (models.Media, error)
}

// Geocoder переводит адреса в координаты и обратно
type Geocoder interface {
	Forward(ctx context.Context, address string) (*models.Coordinates, error)
	Reverse(ctx context.Context, lat, lng float64) (string, error)
}

// ChangeNotifier оповещает остальные экземпляры об изменении коллекции
type ChangeNotifier interface {
	Publish(ctx context.Context, event stream.ChangeEvent) error
}
