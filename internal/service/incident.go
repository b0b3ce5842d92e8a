package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergensys/internal/config"
	"github.com/shenikar/emergensys/internal/dashboard"
	"github.com/shenikar/emergensys/internal/lifecycle"
	"github.com/shenikar/emergensys/internal/models"
	"github.com/shenikar/emergensys/internal/stream"
	"github.com/shenikar/emergensys/internal/webhook"
	"github.com/sirupsen/logrus"
)

// IncidentService определяет контракт бизнес-логики панели инцидентов
type IncidentService interface {
	SubmitIncident(ctx context.Context, form SubmitForm) (*SubmitResult, error)
	Refresh(ctx context.Context) (dashboard.Snapshot, error)
	HandleChange(ctx context.Context, event stream.ChangeEvent)
	OnIncidentStreamUpdate(incidents []*models.Incident) dashboard.Snapshot

	GetFilteredView(cfg dashboard.FilterConfig) dashboard.View
	ListIncidents(cfg dashboard.FilterConfig, page, pageSize int) IncidentPage
	GetAggregates() dashboard.Summary
	GetIncident(ctx context.Context, key string) (*models.Incident, error)
	Timeline(ctx context.Context, key string) ([]lifecycle.TimelineEntry, error)
	ExportCSV(w io.Writer) error
	Subscribe(cfg dashboard.FilterConfig) (<-chan LiveUpdate, func())

	UpdateStatus(ctx context.Context, key, status string) (*models.Operation, error)
	AssignTeam(ctx context.Context, key, teamID, teamName string) (*models.Operation, error)
	AddNote(ctx context.Context, key, author, text string) (*models.Operation, error)
	UpdateLocation(ctx context.Context, key, address string, coords *models.Coordinates) (*models.Operation, error)
	ListOperations(state string) []*models.Operation
	GetOperation(id uuid.UUID) (*models.Operation, error)
	RetryOperation(ctx context.Context, id uuid.UUID) (*models.Operation, error)

	SafetyTips(incidentType string) (models.Category, []string)
	ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)
}

type incidentService struct {
	repo      IncidentRepository
	media     MediaUploader
	geocoder  Geocoder
	notifier  ChangeNotifier
	publisher webhook.WebhookPublisher
	logger    *logrus.Logger
	cfg       *config.Config

	board      *dashboard.Board
	aggregator *dashboard.Aggregator
	machine    *lifecycle.Machine
	operations *operationTracker
	loc        *time.Location
	now        func() time.Time
	reportID   func(time.Time) string
}

// NewIncidentService собирает сервис. media, geocoder и notifier могут быть nil.
func NewIncidentService(
	repo IncidentRepository,
	media MediaUploader,
	geocoder Geocoder,
	notifier ChangeNotifier,
	publisher webhook.WebhookPublisher,
	logger *logrus.Logger,
	cfg *config.Config,
) (IncidentService, error) {
	policy, err := lifecycle.PolicyByName(cfg.StatusPolicy)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	return &incidentService{
		repo:       repo,
		media:      media,
		geocoder:   geocoder,
		notifier:   notifier,
		publisher:  publisher,
		logger:     logger,
		cfg:        cfg,
		board:      dashboard.NewBoard(),
		aggregator: dashboard.NewAggregator(loc),
		machine:    lifecycle.NewMachine(policy),
		operations: newOperationTracker(committedOperationsKept),
		loc:        loc,
		now:        time.Now,
		reportID:   NewReportID,
	}, nil
}

// Refresh перечитывает всю коллекцию (сначала из кэша) и пересчитывает панель.
// Используется при старте; уведомления об изменениях идут через HandleChange.
func (s *incidentService) Refresh(ctx context.Context) (dashboard.Snapshot, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "Refresh",
	})

	incidents, err := s.repo.GetSnapshotFromCache(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to read snapshot cache, falling back to store")
	}
	if incidents == nil {
		incidents, err = s.loadAll(ctx, log)
		if err != nil {
			return dashboard.Snapshot{}, err
		}
		if err := s.repo.SetSnapshotCache(ctx, incidents); err != nil {
			log.WithError(err).Warn("Failed to write snapshot cache")
		}
	}

	snap := s.OnIncidentStreamUpdate(incidents)
	log.WithFields(logrus.Fields{"count": len(snap.Incidents), "version": snap.Version}).Debug("Board refreshed")
	return snap, nil
}

// HandleChange - обработчик уведомления из потока изменений: полная переинжестия из хранилища.
// Кэш снимков не читается и не пишется: после уведомления он может быть старше хранилища.
func (s *incidentService) HandleChange(ctx context.Context, event stream.ChangeEvent) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "incident",
		"method":       "HandleChange",
		"incident_key": event.IncidentKey,
		"kind":         event.Kind,
	})
	incidents, err := s.loadAll(ctx, log)
	if err != nil {
		log.WithError(err).Warn("Failed to reload incidents after change notification")
		return
	}
	snap := s.OnIncidentStreamUpdate(incidents)
	log.WithFields(logrus.Fields{"count": len(snap.Incidents), "version": snap.Version}).Debug("Board reloaded from store")
}

func (s *incidentService) loadAll(ctx context.Context, log *logrus.Entry) ([]*models.Incident, error) {
	incidents, err := s.repo.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, &models.ExternalServiceError{Service: "store", Op: "list", Err: err}
	}
	return incidents, nil
}

// OnIncidentStreamUpdate заменяет набор на доске; подписчики получают новый снимок
func (s *incidentService) OnIncidentStreamUpdate(incidents []*models.Incident) dashboard.Snapshot {
	return s.board.Replace(incidents)
}

// afterWrite сбрасывает кэш и оповещает других; ошибки здесь не влияют на результат записи
func (s *incidentService) afterWrite(ctx context.Context, log *logrus.Entry, change stream.ChangeEvent, event *webhook.IncidentEvent) {
	if err := s.repo.InvalidateSnapshotCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate snapshot cache")
	}
	if s.notifier != nil {
		if err := s.notifier.Publish(ctx, change); err != nil {
			log.WithError(err).Warn("Failed to publish change notification")
		}
	}
	if event != nil && s.publisher != nil {
		if err := s.publisher.Publish(ctx, *event); err != nil {
			log.WithError(err).Warn("Failed to enqueue webhook event")
		}
	}
}
