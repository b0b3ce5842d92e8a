package v1

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/emergensys/internal/config"
	"github.com/shenikar/emergensys/internal/dashboard"
	"github.com/shenikar/emergensys/internal/models"
	"github.com/shenikar/emergensys/internal/service"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -destination=mocks/service.go -package=mocks github.com/shenikar/emergensys/internal/service IncidentService

type Handler struct {
	incidentService service.IncidentService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(incidentService service.IncidentService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		incidentService: incidentService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Submit a new incident
// @Description Submit an emergency report. Accepts JSON or multipart/form-data with "media" files.
// @Tags Incidents
// @Accept json,mpfd
// @Produce json
// @Param incident body SubmitIncidentRequest true "Incident submission"
// @Success 201 {object} SubmitIncidentResponse
// @Failure 400 {object} map[string]any "Invalid request body or validation error"
// @Failure 502 {object} map[string]string "Store unavailable"
// @Router /incidents [post]
func (h *Handler) submitIncident(c *gin.Context) {
	var input SubmitIncidentRequest
	log := h.logger.WithField("method", "submitIncident")

	if err := c.ShouldBind(&input); err != nil {
		log.WithError(err).Warn("Failed to bind request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	media, closeMedia, err := h.mediaFiles(c)
	if err != nil {
		log.WithError(err).Warn("Failed to read media files")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid media upload"})
		return
	}
	defer closeMedia()

	result, err := h.incidentService.SubmitIncident(c.Request.Context(), DTOToSubmitForm(input, media))
	if err != nil {
		h.respondError(c, log, err, nil)
		return
	}
	c.JSON(http.StatusCreated, SubmitResultToResponse(result))
}

// mediaFiles открывает файлы поля media из multipart-формы
func (h *Handler) mediaFiles(c *gin.Context) ([]models.MediaFile, func(), error) {
	noop := func() {}
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		return nil, noop, nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, noop, err
	}

	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}

	headers := form.File["media"]
	files := make([]models.MediaFile, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, noop, fmt.Errorf("open %s: %w", fh.Filename, err)
		}
		opened = append(opened, f)
		files = append(files, models.MediaFile{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Reader:      f,
		})
	}
	return files, closeAll, nil
}

// @Summary Get the incident feed
// @Description Get the filtered incident feed (newest first), paginated, with the active count for the same filter
// @Tags Incidents
// @Produce json
// @Param search query string false "Case-insensitive search over type, description, address, report id, reporter"
// @Param status query string false "Status filter for the active list" default(all)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {object} IncidentListResponse
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(h.cfg.PageSize)))

	result := h.incidentService.ListIncidents(filterFromQuery(c), page, pageSize)
	c.JSON(http.StatusOK, PageToResponse(result))
}

// @Summary Get dashboard statistics
// @Description Get aggregates over the full incident set: by category, severity, hour, status and average response time
// @Tags Incidents
// @Produce json
// @Success 200 {object} dashboard.Summary
// @Router /incidents/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.incidentService.GetAggregates())
}

// @Summary Export incidents as CSV
// @Description Download every incident currently on the board, newest first
// @Tags Incidents
// @Produce text/csv
// @Success 200 {file} file
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/export [get]
func (h *Handler) exportIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "exportIncidents")

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", dashboard.ExportFileName(time.Now())))
	c.Status(http.StatusOK)
	if err := h.incidentService.ExportCSV(c.Writer); err != nil {
		// заголовки уже отправлены, остается только залогировать
		log.WithError(err).Error("Failed to export incidents")
	}
}

// @Summary Get incident by key
// @Description Get a single incident by its store key, with its derived category
// @Tags Incidents
// @Produce json
// @Param key path string true "Incident store key"
// @Success 200 {object} IncidentResponse
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 502 {object} map[string]string "Store unavailable"
// @Router /incidents/{key} [get]
func (h *Handler) getIncident(c *gin.Context) {
	key := c.Param("key")
	log := h.logger.WithField("method", "getIncident").WithField("key", key)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), key)
	if err != nil {
		h.respondError(c, log, err, nil)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Get incident timeline
// @Description Get merged status, team and note entries, newest first
// @Tags Incidents
// @Produce json
// @Param key path string true "Incident store key"
// @Success 200 {array} lifecycle.TimelineEntry
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{key}/timeline [get]
func (h *Handler) getTimeline(c *gin.Context) {
	key := c.Param("key")
	log := h.logger.WithField("method", "getTimeline").WithField("key", key)

	entries, err := h.incidentService.Timeline(c.Request.Context(), key)
	if err != nil {
		h.respondError(c, log, err, nil)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// @Summary Update incident status
// @Description Set a new status and append one status log entry. The write is tracked as an operation.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param key path string true "Incident store key"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} models.Operation
// @Failure 400 {object} map[string]string "Invalid request body or unknown status"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Transition not allowed"
// @Failure 502 {object} map[string]any "Write failed, operation can be retried"
// @Router /incidents/{key}/status [patch]
func (h *Handler) updateStatus(c *gin.Context) {
	key := c.Param("key")
	log := h.logger.WithField("method", "updateStatus").WithField("key", key)

	var input UpdateStatusRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	op, err := h.incidentService.UpdateStatus(c.Request.Context(), key, input.Status)
	if err != nil {
		h.respondError(c, log, err, op)
		return
	}
	c.JSON(http.StatusOK, op)
}

// @Summary Assign a response team
// @Description Assign a team and append one team log entry. Status is not changed.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param key path string true "Incident store key"
// @Param request body AssignTeamRequest true "Team"
// @Success 200 {object} models.Operation
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 502 {object} map[string]any "Write failed, operation can be retried"
// @Router /incidents/{key}/team [patch]
func (h *Handler) assignTeam(c *gin.Context) {
	key := c.Param("key")
	log := h.logger.WithField("method", "assignTeam").WithField("key", key)

	var input AssignTeamRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	op, err := h.incidentService.AssignTeam(c.Request.Context(), key, input.TeamID, input.TeamName)
	if err != nil {
		h.respondError(c, log, err, op)
		return
	}
	c.JSON(http.StatusOK, op)
}

// @Summary Add a note
// @Description Append a note to the incident; author defaults to System
// @Tags Incidents
// @Accept json
// @Produce json
// @Param key path string true "Incident store key"
// @Param request body AddNoteRequest true "Note"
// @Success 201 {object} models.Operation
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 502 {object} map[string]any "Write failed, operation can be retried"
// @Router /incidents/{key}/notes [post]
func (h *Handler) addNote(c *gin.Context) {
	key := c.Param("key")
	log := h.logger.WithField("method", "addNote").WithField("key", key)

	var input AddNoteRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	op, err := h.incidentService.AddNote(c.Request.Context(), key, input.Author, input.Text)
	if err != nil {
		h.respondError(c, log, err, op)
		return
	}
	c.JSON(http.StatusCreated, op)
}

// @Summary Update incident location
// @Description Replace the coordinates of a submitted incident; an empty address keeps the reported one
// @Tags Incidents
// @Accept json
// @Produce json
// @Param key path string true "Incident store key"
// @Param request body UpdateLocationRequest true "New location"
// @Success 200 {object} models.Operation
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 502 {object} map[string]any "Write failed, operation can be retried"
// @Router /incidents/{key}/location [patch]
func (h *Handler) updateLocation(c *gin.Context) {
	key := c.Param("key")
	log := h.logger.WithField("method", "updateLocation").WithField("key", key)

	var input UpdateLocationRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	op, err := h.incidentService.UpdateLocation(c.Request.Context(), key, input.Address, DTOToCoordinates(input))
	if err != nil {
		h.respondError(c, log, err, op)
		return
	}
	c.JSON(http.StatusOK, op)
}

// @Summary Remove incident coordinates
// @Description Drop the shared coordinates; the reported address stays
// @Tags Incidents
// @Produce json
// @Param key path string true "Incident store key"
// @Success 200 {object} models.Operation
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 502 {object} map[string]any "Write failed, operation can be retried"
// @Router /incidents/{key}/location [delete]
func (h *Handler) removeLocation(c *gin.Context) {
	key := c.Param("key")
	log := h.logger.WithField("method", "removeLocation").WithField("key", key)

	op, err := h.incidentService.UpdateLocation(c.Request.Context(), key, "", nil)
	if err != nil {
		h.respondError(c, log, err, op)
		return
	}
	c.JSON(http.StatusOK, op)
}

// @Summary List tracked operations
// @Description List status, team and note writes with their outcome
// @Tags Operations
// @Produce json
// @Param state query string false "pending, committed or failed"
// @Success 200 {array} models.Operation
// @Router /operations [get]
func (h *Handler) listOperations(c *gin.Context) {
	c.JSON(http.StatusOK, h.incidentService.ListOperations(c.Query("state")))
}

// @Summary Get operation by ID
// @Tags Operations
// @Produce json
// @Param id path string true "Operation ID"
// @Success 200 {object} models.Operation
// @Failure 400 {object} map[string]string "Invalid operation ID"
// @Failure 404 {object} map[string]string "Operation not found"
// @Router /operations/{id} [get]
func (h *Handler) getOperation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid operation ID"})
		return
	}
	log := h.logger.WithField("method", "getOperation").WithField("id", id)

	op, err := h.incidentService.GetOperation(id)
	if err != nil {
		h.respondError(c, log, err, nil)
		return
	}
	c.JSON(http.StatusOK, op)
}

// @Summary Retry a failed operation
// @Description Re-run the store write of a failed operation with the same log entry
// @Tags Operations
// @Produce json
// @Param id path string true "Operation ID"
// @Success 200 {object} models.Operation
// @Failure 400 {object} map[string]string "Invalid operation ID"
// @Failure 404 {object} map[string]string "Operation not found"
// @Failure 409 {object} map[string]string "Operation is not in failed state"
// @Failure 502 {object} map[string]any "Write failed again"
// @Router /operations/{id}/retry [post]
func (h *Handler) retryOperation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid operation ID"})
		return
	}
	log := h.logger.WithField("method", "retryOperation").WithField("id", id)

	op, err := h.incidentService.RetryOperation(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err, op)
		return
	}
	c.JSON(http.StatusOK, op)
}

// @Summary Get safety tips
// @Description Get the category and safety tips for an incident type
// @Tags Reference
// @Produce json
// @Param type query string true "Incident type"
// @Success 200 {object} SafetyTipsResponse
// @Router /safety-tips [get]
func (h *Handler) safetyTips(c *gin.Context) {
	incidentType := c.Query("type")
	category, tips := h.incidentService.SafetyTips(incidentType)
	c.JSON(http.StatusOK, SafetyTipsResponse{Type: incidentType, Category: category, Tips: tips})
}

// @Summary Reverse geocode
// @Description Resolve coordinates to an address for the manual entry form
// @Tags Reference
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Success 200 {object} ReverseGeocodeResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 502 {object} map[string]string "Geocoder unavailable"
// @Router /geocode/reverse [get]
func (h *Handler) reverseGeocode(c *gin.Context) {
	log := h.logger.WithField("method", "reverseGeocode")

	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng must be numbers"})
		return
	}

	addr, err := h.incidentService.ReverseGeocode(c.Request.Context(), lat, lng)
	if err != nil {
		h.respondError(c, log, err, nil)
		return
	}
	c.JSON(http.StatusOK, ReverseGeocodeResponse{Address: addr})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// respondError переводит ошибку сервиса в HTTP-ответ
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error, op *models.Operation) {
	var (
		verrs  models.ValidationErrors
		verr   *models.ValidationError
		extErr *models.ExternalServiceError
	)
	switch {
	case errors.As(err, &verrs):
		log.WithError(err).Warn("Validation failed")
		fields := make(map[string]string, len(verrs))
		for _, v := range verrs {
			fields[v.Field] = v.Message
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
	case errors.As(err, &verr):
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "fields": map[string]string{verr.Field: verr.Message}})
	case errors.Is(err, models.ErrIncidentNotFound):
		log.WithError(err).Warn("Incident not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
	case errors.Is(err, models.ErrOperationNotFound):
		log.WithError(err).Warn("Operation not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "operation not found"})
	case errors.Is(err, models.ErrTransitionNotAllowed), errors.Is(err, models.ErrOperationNotRetryable):
		log.WithError(err).Warn("Request conflicts with current state")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &extErr):
		log.WithError(err).Error("External service failed")
		body := gin.H{"error": fmt.Sprintf("%s unavailable", extErr.Service)}
		if op != nil {
			body["operation"] = op
		}
		c.JSON(http.StatusBadGateway, body)
	default:
		log.WithError(err).Error("Unexpected service error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func filterFromQuery(c *gin.Context) dashboard.FilterConfig {
	return dashboard.FilterConfig{
		Search: c.Query("search"),
		Status: c.DefaultQuery("status", dashboard.StatusAll),
	}
}
