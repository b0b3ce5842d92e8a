package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/shenikar/emergensys/internal/classifier"
	"github.com/shenikar/emergensys/internal/dashboard"
	"github.com/shenikar/emergensys/internal/lifecycle"
	"github.com/shenikar/emergensys/internal/models"
	"github.com/sirupsen/logrus"
)

// IncidentPage - страница отфильтрованного набора и размер активного набора для того же фильтра
type IncidentPage struct {
	dashboard.Page
	ActiveCount int `json:"activeCount"`
}

// LiveUpdate - состояние панели после очередного пересчета
type LiveUpdate struct {
	Version  uint64
	Filtered []*models.Incident
	Active   []*models.Incident
	Stats    dashboard.Summary
}

// GetFilteredView фильтрует текущий снимок
func (s *incidentService) GetFilteredView(cfg dashboard.FilterConfig) dashboard.View {
	return dashboard.Filter(s.board.Snapshot().Incidents, cfg)
}

// ListIncidents возвращает страницу отфильтрованного набора
func (s *incidentService) ListIncidents(cfg dashboard.FilterConfig, page, pageSize int) IncidentPage {
	view := s.GetFilteredView(cfg)
	return IncidentPage{
		Page:        dashboard.Paginate(view.Filtered, page, pageSize, s.cfg.PageSize),
		ActiveCount: len(view.Active),
	}
}

// GetAggregates считает сводку по всему набору
func (s *incidentService) GetAggregates() dashboard.Summary {
	return s.aggregator.Aggregate(s.board.Snapshot().Incidents)
}

// GetIncident возвращает инцидент с доски, при промахе читает хранилище
func (s *incidentService) GetIncident(ctx context.Context, key string) (*models.Incident, error) {
	if inc, ok := s.board.Get(key); ok {
		return inc, nil
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":      "incident",
		"method":       "GetIncident",
		"incident_key": key,
	})
	log.Info("Incident not on board, fetching from store")

	inc, err := s.repo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, models.ErrIncidentNotFound) {
			log.WithError(err).Warn("Incident not found")
			return nil, err
		}
		log.WithError(err).Error("Failed to get incident in repository")
		return nil, &models.ExternalServiceError{Service: "store", Op: "get", Err: fmt.Errorf("service: could not get incident: %w", err)}
	}
	s.board.Upsert(inc)
	return inc, nil
}

// Timeline возвращает хронологию инцидента, новые записи сверху
func (s *incidentService) Timeline(ctx context.Context, key string) ([]lifecycle.TimelineEntry, error) {
	inc, err := s.GetIncident(ctx, key)
	if err != nil {
		return nil, err
	}
	return lifecycle.Timeline(inc), nil
}

// ExportCSV пишет весь текущий набор в порядке ленты (новые сверху)
func (s *incidentService) ExportCSV(w io.Writer) error {
	view := dashboard.Filter(s.board.Snapshot().Incidents, dashboard.FilterConfig{Status: dashboard.StatusAll})
	if err := dashboard.WriteCSV(w, view.Filtered, s.loc); err != nil {
		return fmt.Errorf("service: could not export incidents: %w", err)
	}
	return nil
}

// Subscribe отдает пересчитанную панель после каждого изменения набора.
// Первое значение - текущее состояние. Медленный получатель видит только последнее обновление.
func (s *incidentService) Subscribe(cfg dashboard.FilterConfig) (<-chan LiveUpdate, func()) {
	snapshots, cancel := s.board.Subscribe()
	out := make(chan LiveUpdate, 1)

	go func() {
		defer close(out)
		send := func(snap dashboard.Snapshot) {
			update := s.liveUpdate(snap, cfg)
			select {
			case out <- update:
			default:
				select {
				case <-out:
				default:
				}
				out <- update
			}
		}

		send(s.board.Snapshot())
		for snap := range snapshots {
			send(snap)
		}
	}()

	return out, cancel
}

func (s *incidentService) liveUpdate(snap dashboard.Snapshot, cfg dashboard.FilterConfig) LiveUpdate {
	view := dashboard.Filter(snap.Incidents, cfg)
	return LiveUpdate{
		Version:  snap.Version,
		Filtered: view.Filtered,
		Active:   view.Active,
		Stats:    s.aggregator.Aggregate(snap.Incidents),
	}
}

// SafetyTips возвращает категорию и советы для типа происшествия
func (s *incidentService) SafetyTips(incidentType string) (models.Category, []string) {
	return classifier.TipsFor(incidentType)
}

// ReverseGeocode переводит координаты в адрес для ручного ввода
func (s *incidentService) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ReverseGeocode",
	})
	if s.geocoder == nil {
		return "", &models.ExternalServiceError{Service: "geocoder", Op: "reverse", Err: errors.New("geocoder is not configured")}
	}
	addr, err := s.geocoder.Reverse(ctx, lat, lng)
	if err != nil {
		log.WithError(err).Warn("Reverse geocoding failed")
		return "", err
	}
	return addr, nil
}
