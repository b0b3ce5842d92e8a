package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/emergensys/internal/ingest"
	"github.com/shenikar/emergensys/internal/lifecycle"
	"github.com/shenikar/emergensys/internal/models"
	"github.com/shenikar/emergensys/internal/stream"
	"github.com/shenikar/emergensys/internal/webhook"
	"github.com/sirupsen/logrus"
)

// UpdateStatus меняет статус локально сразу, затем пишет в хранилище.
// Сбой записи не откатывает локальное изменение: операция помечается failed и ждет явного повтора.
func (s *incidentService) UpdateStatus(ctx context.Context, key, status string) (*models.Operation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "incident",
		"method":       "UpdateStatus",
		"incident_key": key,
		"status":       status,
	})
	log.Info("Attempting to update incident status")

	var change models.StatusChange
	_, err := s.mutate(ctx, key, func(inc *models.Incident) error {
		var err error
		change, err = s.machine.SetStatus(inc, status)
		return err
	})
	if err != nil {
		return nil, s.rejected(log, err)
	}

	op := s.operations.start(&models.Operation{
		Kind:         models.OperationStatus,
		IncidentKey:  key,
		StatusChange: &change,
	}, s.now())
	return s.commit(ctx, log, op)
}

// AssignTeam назначает бригаду локально и пишет назначение в хранилище
func (s *incidentService) AssignTeam(ctx context.Context, key, teamID, teamName string) (*models.Operation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "incident",
		"method":       "AssignTeam",
		"incident_key": key,
		"team_id":      teamID,
	})
	log.Info("Attempting to assign team")

	var assignment models.TeamAssignment
	_, err := s.mutate(ctx, key, func(inc *models.Incident) error {
		var err error
		assignment, err = s.machine.AssignTeam(inc, teamID, teamName)
		return err
	})
	if err != nil {
		return nil, s.rejected(log, err)
	}

	op := s.operations.start(&models.Operation{
		Kind:           models.OperationTeam,
		IncidentKey:    key,
		TeamAssignment: &assignment,
	}, s.now())
	return s.commit(ctx, log, op)
}

// AddNote добавляет заметку; автор по умолчанию System
func (s *incidentService) AddNote(ctx context.Context, key, author, text string) (*models.Operation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "incident",
		"method":       "AddNote",
		"incident_key": key,
	})
	log.Info("Attempting to add note")

	var note models.Note
	_, err := s.mutate(ctx, key, func(inc *models.Incident) error {
		var err error
		note, err = s.machine.AddNote(inc, ingest.Sanitize(author), ingest.Sanitize(text))
		return err
	})
	if err != nil {
		return nil, s.rejected(log, err)
	}

	op := s.operations.start(&models.Operation{
		Kind:        models.OperationNote,
		IncidentKey: key,
		Note:        &note,
	}, s.now())
	return s.commit(ctx, log, op)
}

// UpdateLocation меняет адрес и координаты поданной заявки.
// Пустой address оставляет прежний адрес, coords == nil убирает координаты.
func (s *incidentService) UpdateLocation(ctx context.Context, key, address string, coords *models.Coordinates) (*models.Operation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "incident",
		"method":       "UpdateLocation",
		"incident_key": key,
	})
	log.Info("Attempting to update incident location")

	var change models.LocationChange
	_, err := s.mutate(ctx, key, func(inc *models.Incident) error {
		var err error
		change, err = s.machine.SetLocation(inc, ingest.Sanitize(address), coords)
		return err
	})
	if err != nil {
		return nil, s.rejected(log, err)
	}

	op := s.operations.start(&models.Operation{
		Kind:           models.OperationLocation,
		IncidentKey:    key,
		LocationChange: &change,
	}, s.now())
	return s.commit(ctx, log, op)
}

// ListOperations возвращает операции, при необходимости только в заданном состоянии
func (s *incidentService) ListOperations(state string) []*models.Operation {
	return s.operations.list(models.OperationState(strings.ToLower(strings.TrimSpace(state))))
}

// GetOperation возвращает операцию по id
func (s *incidentService) GetOperation(id uuid.UUID) (*models.Operation, error) {
	return s.operations.get(id)
}

// RetryOperation повторяет запись проваленной операции с той же записью журнала
func (s *incidentService) RetryOperation(ctx context.Context, id uuid.UUID) (*models.Operation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "incident",
		"method":       "RetryOperation",
		"operation_id": id,
	})
	log.Info("Retrying failed operation")

	op, err := s.operations.beginRetry(id, s.now())
	if err != nil {
		log.WithError(err).Warn("Operation cannot be retried")
		return nil, err
	}

	// переинжестия могла стереть оптимистичное изменение; Apply не дублирует запись
	if _, err := s.mutate(ctx, op.IncidentKey, func(inc *models.Incident) error {
		lifecycle.Apply(inc, op)
		return nil
	}); err != nil {
		log.WithError(err).Warn("Incident for operation is not available locally")
	}

	return s.commit(ctx, log, op)
}

// mutate применяет fn к инциденту на доске, подгружая его из хранилища при отсутствии
func (s *incidentService) mutate(ctx context.Context, key string, fn func(*models.Incident) error) (*models.Incident, error) {
	inc, err := s.board.Mutate(key, fn)
	if !errors.Is(err, models.ErrIncidentNotFound) {
		return inc, err
	}
	loaded, err := s.repo.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	s.board.Upsert(loaded)
	return s.board.Mutate(key, fn)
}

// commit пишет операцию в хранилище и фиксирует ее исход
func (s *incidentService) commit(ctx context.Context, log *logrus.Entry, op *models.Operation) (*models.Operation, error) {
	log = log.WithField("operation_id", op.ID)

	err := s.write(ctx, op)
	done := s.operations.finish(op.ID, err, s.now())
	if err != nil {
		log.WithError(err).Warn("Failed to persist update, local state diverged until retry or reload")
		return done, &models.ExternalServiceError{Service: "store", Op: string(op.Kind) + " update", Err: fmt.Errorf("service: could not persist operation %s: %w", op.ID, err)}
	}

	s.afterWrite(ctx, log, changeEventFor(op), s.webhookEventFor(op))
	log.Info("Update persisted successfully")
	return done, nil
}

func (s *incidentService) write(ctx context.Context, op *models.Operation) error {
	switch op.Kind {
	case models.OperationStatus:
		return s.repo.UpdateStatus(ctx, op.IncidentKey, *op.StatusChange)
	case models.OperationTeam:
		return s.repo.AssignTeam(ctx, op.IncidentKey, *op.TeamAssignment)
	case models.OperationNote:
		return s.repo.AddNote(ctx, op.IncidentKey, *op.Note)
	case models.OperationLocation:
		return s.repo.UpdateLocation(ctx, op.IncidentKey, *op.LocationChange)
	default:
		return fmt.Errorf("unknown operation kind %q", op.Kind)
	}
}

func (s *incidentService) rejected(log *logrus.Entry, err error) error {
	switch {
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrIncidentNotFound), errors.Is(err, models.ErrTransitionNotAllowed):
		log.WithError(err).Warn("Update rejected")
		return err
	default:
		log.WithError(err).Error("Failed to load incident for update")
		return &models.ExternalServiceError{Service: "store", Op: "get", Err: err}
	}
}

func changeEventFor(op *models.Operation) stream.ChangeEvent {
	kind := stream.ChangeNote
	switch op.Kind {
	case models.OperationStatus:
		kind = stream.ChangeStatus
	case models.OperationTeam:
		kind = stream.ChangeTeam
	case models.OperationLocation:
		kind = stream.ChangeLocation
	}
	return stream.ChangeEvent{IncidentKey: op.IncidentKey, Kind: kind, At: op.UpdatedAt}
}

func (s *incidentService) webhookEventFor(op *models.Operation) *webhook.IncidentEvent {
	var event webhook.IncidentEvent
	switch op.Kind {
	case models.OperationStatus:
		event = webhook.IncidentEvent{Type: webhook.EventStatusChanged, Status: string(op.StatusChange.Status), Timestamp: op.StatusChange.At}
	case models.OperationTeam:
		event = webhook.IncidentEvent{Type: webhook.EventTeamAssigned, Team: op.TeamAssignment.TeamName, Timestamp: op.TeamAssignment.At}
	default:
		return nil
	}
	event.IncidentKey = op.IncidentKey
	if inc, ok := s.board.Get(op.IncidentKey); ok {
		event.ReportID = inc.ID
		event.Severity = string(inc.Severity)
	}
	return &event
}
