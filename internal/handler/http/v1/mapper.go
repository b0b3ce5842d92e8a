package v1

import (
	"github.com/shenikar/emergensys/internal/classifier"
	"github.com/shenikar/emergensys/internal/models"
	"github.com/shenikar/emergensys/internal/service"
)

// DTOToSubmitForm преобразует DTO подачи заявки в форму сервиса
func DTOToSubmitForm(dto SubmitIncidentRequest, media []models.MediaFile) service.SubmitForm {
	form := service.SubmitForm{
		Type:            dto.Type,
		Description:     dto.Description,
		Address:         dto.Address,
		ShareLocation:   dto.ShareLocation,
		Severity:        dto.Severity,
		VictimCount:     dto.VictimCount,
		ReporterName:    dto.ReporterName,
		ReporterContact: dto.ReporterContact,
		Media:           media,
	}
	if dto.Latitude != nil && dto.Longitude != nil {
		form.Coordinates = &models.Coordinates{
			Lat:      *dto.Latitude,
			Lng:      *dto.Longitude,
			Accuracy: dto.Accuracy,
		}
	}
	return form
}

// DTOToCoordinates собирает координаты из запроса уточнения местоположения
func DTOToCoordinates(dto UpdateLocationRequest) *models.Coordinates {
	if dto.Latitude == nil || dto.Longitude == nil {
		return nil
	}
	return &models.Coordinates{
		Lat:      *dto.Latitude,
		Lng:      *dto.Longitude,
		Accuracy: dto.Accuracy,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа; категория всегда выводится из типа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:                model.ID,
		Key:               model.Key,
		Type:              model.Type,
		Category:          classifier.Classify(model.Type),
		Description:       model.Description,
		Status:            model.Status,
		Severity:          model.Severity,
		VictimCount:       model.VictimCount,
		Location:          model.Location,
		LocationUpdatedAt: model.LocationUpdatedAt,
		Media:             nonNil(model.Media),
		ReportedBy:        model.ReportedBy,
		AssignedTeam:      model.AssignedTeam,
		AssignedTeamName:  model.AssignedTeamName,
		ResponseTime:      model.ResponseTime,
		Timestamp:         model.Timestamp,
		StatusHistory:     nonNil(model.StatusHistory),
		TeamAssignments:   nonNil(model.TeamAssignments),
		Notes:             nonNil(model.Notes),
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// PageToResponse преобразует страницу сервиса в DTO
func PageToResponse(page service.IncidentPage) IncidentListResponse {
	return IncidentListResponse{
		Items:       ModelsToIncidentResponses(page.Items),
		Page:        page.Page.Page,
		PageSize:    page.PageSize,
		Total:       page.Total,
		TotalPages:  page.TotalPages,
		HasPrev:     page.HasPrev,
		HasNext:     page.HasNext,
		ActiveCount: page.ActiveCount,
	}
}

// LiveUpdateToResponse преобразует обновление панели в сообщение websocket
func LiveUpdateToResponse(update service.LiveUpdate) LiveUpdateResponse {
	return LiveUpdateResponse{
		Version:  update.Version,
		Filtered: ModelsToIncidentResponses(update.Filtered),
		Active:   ModelsToIncidentResponses(update.Active),
		Stats:    update.Stats,
	}
}

// SubmitResultToResponse собирает подтверждение; частичные сбои идут предупреждениями
func SubmitResultToResponse(result *service.SubmitResult) SubmitIncidentResponse {
	resp := SubmitIncidentResponse{
		ID:         result.ID,
		Key:        result.Key,
		Accepted:   result.Accepted,
		Category:   result.Category,
		SafetyTips: result.SafetyTips,
		Incident:   ModelToIncidentResponse(result.Incident),
	}
	if result.MediaFailure != nil {
		resp.Warnings = append(resp.Warnings, result.MediaFailure.Error())
	}
	if result.GeocodeFailed {
		resp.Warnings = append(resp.Warnings, "address could not be geocoded, stored without coordinates")
	}
	return resp
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
