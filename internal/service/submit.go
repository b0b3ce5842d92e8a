package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shenikar/emergensys/internal/classifier"
	"github.com/shenikar/emergensys/internal/ingest"
	"github.com/shenikar/emergensys/internal/models"
	"github.com/shenikar/emergensys/internal/stream"
	"github.com/shenikar/emergensys/internal/webhook"
	"github.com/sirupsen/logrus"
)

const (
	minDescriptionLength = 10
	reportIDAttempts     = 3
)

// SubmitForm - данные формы заявки
type SubmitForm struct {
	Type            string
	Description     string
	Address         string
	ShareLocation   bool
	Coordinates     *models.Coordinates
	Severity        string
	VictimCount     *int
	ReporterName    string
	ReporterContact string
	Media           []models.MediaFile
}

// SubmitResult - подтверждение приема заявки
type SubmitResult struct {
	ID         string
	Key        string
	Accepted   bool
	Category   models.Category
	SafetyTips []string
	Incident   *models.Incident
	// MediaFailure не nil, если часть вложений не загрузилась; заявка при этом принята
	MediaFailure *models.PartialMediaUploadFailure
	// GeocodeFailed - адрес не удалось геокодировать, сохранена метка "нет координат"
	GeocodeFailed bool
}

// NewReportID генерирует идентификатор вида EM-YYYYMMDD-NNNN
func NewReportID(now time.Time) string {
	return fmt.Sprintf("EM-%s-%04d", now.UTC().Format("20060102"), 1000+rand.Intn(9000))
}

// SubmitIncident проверяет форму, определяет местоположение, грузит вложения и сохраняет заявку
func (s *incidentService) SubmitIncident(ctx context.Context, form SubmitForm) (*SubmitResult, error) {
	form = sanitizeForm(form)
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "SubmitIncident",
		"type":    form.Type,
	})
	log.Info("Attempting to submit a new incident")

	if err := validateForm(form); err != nil {
		log.WithError(err).Warn("Incident form failed validation")
		return nil, err
	}

	now := s.now()
	incident := &models.Incident{
		ID:          s.reportID(now),
		Type:        form.Type,
		Description: form.Description,
		Status:      models.StatusNew,
		Severity:    models.NormalizeSeverity(form.Severity),
		VictimCount: victimCount(form.VictimCount),
		ReportedBy:  reporter(form.ReporterName, form.ReporterContact),
		Media:       []models.Media{},
	}

	result := &SubmitResult{}
	incident.Location, result.GeocodeFailed = s.resolveLocation(ctx, log, form)

	if err := s.createWithUniqueID(ctx, incident, now); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return nil, &models.ExternalServiceError{Service: "store", Op: "create", Err: fmt.Errorf("service: could not create incident: %w", err)}
	}

	// вложения грузятся под окончательным id, когда заявка уже сохранена
	incident.Media, result.MediaFailure = s.attachMedia(ctx, log, incident, form.Media)
	incident.StatusHistory = []models.StatusChange{}
	incident.TeamAssignments = []models.TeamAssignment{}
	incident.Notes = []models.Note{}
	s.board.Upsert(incident)

	category, tips := classifier.TipsFor(incident.Type)
	s.afterWrite(ctx, log,
		stream.ChangeEvent{IncidentKey: incident.Key, Kind: stream.ChangeCreated, At: incident.Timestamp},
		&webhook.IncidentEvent{
			Type:        webhook.EventIncidentCreated,
			IncidentKey: incident.Key,
			ReportID:    incident.ID,
			Category:    string(category),
			Severity:    string(incident.Severity),
			Status:      string(incident.Status),
			Timestamp:   incident.Timestamp,
		},
	)

	result.ID = incident.ID
	result.Key = incident.Key
	result.Accepted = true
	result.Category = category
	result.SafetyTips = tips
	result.Incident = incident.Clone()

	log.WithFields(logrus.Fields{"incident_id": incident.ID, "incident_key": incident.Key}).Info("Incident submitted successfully")
	return result, nil
}

func (s *incidentService) createWithUniqueID(ctx context.Context, incident *models.Incident, now time.Time) error {
	var err error
	for i := 0; i < reportIDAttempts; i++ {
		if i > 0 {
			incident.ID = s.reportID(now)
		}
		err = s.repo.Create(ctx, incident)
		if !errors.Is(err, models.ErrDuplicateReportID) {
			return err
		}
	}
	return err
}

// resolveLocation: координаты устройства, иначе геокодирование адреса, иначе метка "нет координат"
func (s *incidentService) resolveLocation(ctx context.Context, log *logrus.Entry, form SubmitForm) (models.Location, bool) {
	loc := models.Location{Address: form.Address}
	if !form.ShareLocation {
		return loc, false
	}
	if form.Coordinates != nil {
		coords := *form.Coordinates
		coords.Source = models.SourceDevice
		loc.Coordinates = &coords
		return loc, false
	}
	if s.geocoder == nil {
		return loc, true
	}
	coords, err := s.geocoder.Forward(ctx, form.Address)
	if err != nil {
		log.WithError(err).Warn("Failed to geocode address, storing without coordinates")
		return loc, true
	}
	loc.Coordinates = coords
	return loc, false
}

// attachMedia грузит вложения и записывает их список в сохраненную заявку.
// Если запись списка не удалась, все вложения считаются незагруженными.
func (s *incidentService) attachMedia(ctx context.Context, log *logrus.Entry, incident *models.Incident, files []models.MediaFile) ([]models.Media, *models.PartialMediaUploadFailure) {
	if len(files) == 0 {
		return []models.Media{}, nil
	}
	uploaded, failure := s.uploadMedia(ctx, log, incident.ID, files)
	if len(uploaded) == 0 {
		return uploaded, failure
	}
	if err := s.repo.UpdateMedia(ctx, incident.Key, uploaded); err != nil {
		log.WithError(err).Warn("Failed to attach uploaded media to incident")
		names := make([]string, 0, len(files))
		for _, f := range files {
			names = append(names, f.Name)
		}
		return []models.Media{}, &models.PartialMediaUploadFailure{Failed: names}
	}
	return uploaded, failure
}

// uploadMedia грузит файлы по одному; сбой одного файла не останавливает остальные
func (s *incidentService) uploadMedia(ctx context.Context, log *logrus.Entry, incidentID string, files []models.MediaFile) ([]models.Media, *models.PartialMediaUploadFailure) {
	uploaded := make([]models.Media, 0, len(files))
	var failed []string
	for _, f := range files {
		if s.media == nil {
			failed = append(failed, f.Name)
			continue
		}
		m, err := s.media.Upload(ctx, incidentID, f)
		if err != nil {
			log.WithError(err).WithField("file", f.Name).Warn("Failed to upload media file")
			failed = append(failed, f.Name)
			continue
		}
		uploaded = append(uploaded, m)
	}
	if len(failed) == 0 {
		return uploaded, nil
	}
	return uploaded, &models.PartialMediaUploadFailure{Failed: failed, Uploaded: len(uploaded)}
}

func sanitizeForm(form SubmitForm) SubmitForm {
	form.Type = ingest.Sanitize(form.Type)
	form.Description = ingest.Sanitize(form.Description)
	form.Address = ingest.Sanitize(form.Address)
	form.ReporterName = ingest.Sanitize(form.ReporterName)
	form.ReporterContact = ingest.Sanitize(form.ReporterContact)
	return form
}

func validateForm(form SubmitForm) error {
	var errs models.ValidationErrors
	if form.Type == "" {
		errs = append(errs, &models.ValidationError{Field: "type", Message: "Please select an emergency type"})
	}
	switch {
	case form.Description == "":
		errs = append(errs, &models.ValidationError{Field: "description", Message: "Please provide a description"})
	case len([]rune(form.Description)) < minDescriptionLength:
		errs = append(errs, &models.ValidationError{Field: "description", Message: "Description must be at least 10 characters"})
	}
	if form.Address == "" {
		errs = append(errs, &models.ValidationError{Field: "location", Message: "Please provide your location"})
	}
	if strings.TrimSpace(form.Severity) != "" {
		if _, ok := models.ParseSeverity(form.Severity); !ok {
			errs = append(errs, &models.ValidationError{Field: "severity", Message: "Severity must be Low, Medium or High"})
		}
	}
	if form.VictimCount != nil && *form.VictimCount < 0 {
		errs = append(errs, &models.ValidationError{Field: "victimCount", Message: "Victim count cannot be negative"})
	}
	if form.Coordinates != nil && !form.Coordinates.Valid() {
		errs = append(errs, &models.ValidationError{Field: "coordinates", Message: "Coordinates are out of range"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func victimCount(v *int) int {
	if v == nil || *v == 0 {
		return 1
	}
	return *v
}

func reporter(name, contact string) models.Reporter {
	r := models.Reporter{Name: name, Contact: contact}
	if r.Name == "" {
		r.Name = models.AnonymousReporter
	}
	if r.Contact == "" {
		r.Contact = models.ContactNotProvided
	}
	return r
}
