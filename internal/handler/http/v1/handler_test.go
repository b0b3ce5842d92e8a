package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/shenikar/emergensys/internal/config"
	"github.com/shenikar/emergensys/internal/dashboard"
	"github.com/shenikar/emergensys/internal/handler/http/v1/mocks"
	"github.com/shenikar/emergensys/internal/lifecycle"
	"github.com/shenikar/emergensys/internal/models"
	"github.com/shenikar/emergensys/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockIncidentService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockIncidentService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		PageSize: 10,
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func testIncident(key string) *models.Incident {
	return &models.Incident{
		ID:          "EM-20250314-4321",
		Key:         key,
		Type:        "Vehicle Fire",
		Description: "Car burning on the shoulder",
		Status:      models.StatusNew,
		Severity:    models.SeverityHigh,
		VictimCount: 1,
		Location:    models.Location{Address: "Route 9"},
		ReportedBy:  models.Reporter{Name: models.AnonymousReporter, Contact: models.ContactNotProvided},
		Timestamp:   time.Date(2025, 3, 14, 8, 5, 9, 0, time.UTC),
	}
}

func TestSubmitIncident_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	lat, lng := 40.7, -74.0
	reqBody := SubmitIncidentRequest{
		Type:          "Vehicle Fire",
		Description:   "Car burning on the shoulder",
		Address:       "Route 9",
		ShareLocation: true,
		Latitude:      &lat,
		Longitude:     &lng,
		Severity:      "High",
	}

	mockService.EXPECT().
		SubmitIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, form service.SubmitForm) (*service.SubmitResult, error) {
			require.NotNil(t, form.Coordinates)
			assert.Equal(t, 40.7, form.Coordinates.Lat)
			assert.True(t, form.ShareLocation)
			return &service.SubmitResult{
				ID:         "EM-20250314-4321",
				Key:        "k1",
				Accepted:   true,
				Category:   models.CategoryFire,
				SafetyTips: []string{"Stay away"},
				Incident:   testIncident("k1"),
			}, nil
		}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents", jsonBody(t, reqBody))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp SubmitIncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Accepted)
	assert.Equal(t, "EM-20250314-4321", resp.ID)
	assert.Equal(t, models.CategoryFire, resp.Incident.Category, "Vehicle Fire is a fire, not traffic")
	assert.Empty(t, resp.Warnings)
}

func TestSubmitIncident_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		SubmitIncident(gomock.Any(), gomock.Any()).
		Return(nil, models.ValidationErrors{
			{Field: "type", Message: "Please select an emergency type"},
			{Field: "description", Message: "Please provide a description"},
		}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents", jsonBody(t, SubmitIncidentRequest{}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Please select an emergency type", resp.Fields["type"])
	assert.Equal(t, "Please provide a description", resp.Fields["description"])
}

func TestSubmitIncident_InvalidCoordinates(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	lat, lng := 123.0, 10.0

	mockService.EXPECT().SubmitIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/incidents", jsonBody(t, SubmitIncidentRequest{Latitude: &lat, Longitude: &lng}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitIncident_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SubmitIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBufferString("{invalid"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitIncident_MultipartWithMedia(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("type", "Flood"))
	require.NoError(t, mw.WriteField("description", "Water rising in the basement"))
	require.NoError(t, mw.WriteField("address", "5 River Rd"))
	part, err := mw.CreateFormFile("media", "photo.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	mockService.EXPECT().
		SubmitIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, form service.SubmitForm) (*service.SubmitResult, error) {
			assert.Equal(t, "Flood", form.Type)
			require.Len(t, form.Media, 1)
			assert.Equal(t, "photo.jpg", form.Media[0].Name)
			data, err := io.ReadAll(form.Media[0].Reader)
			require.NoError(t, err)
			assert.Equal(t, "jpeg-bytes", string(data))
			return &service.SubmitResult{
				ID:           "EM-1",
				Key:          "k1",
				Accepted:     true,
				Incident:     testIncident("k1"),
				MediaFailure: &models.PartialMediaUploadFailure{Failed: []string{"video.mp4"}},
			}, nil
		}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents", &body, map[string]string{"Content-Type": mw.FormDataContentType()})

	require.Equal(t, http.StatusCreated, w.Code)
	var resp SubmitIncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "video.mp4")
}

func TestSubmitIncident_StoreUnavailable(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		SubmitIncident(gomock.Any(), gomock.Any()).
		Return(nil, &models.ExternalServiceError{Service: "store", Op: "create", Err: errors.New("down")}).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents", jsonBody(t, SubmitIncidentRequest{Type: "Flood"}))

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestListIncidents_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		ListIncidents(dashboard.FilterConfig{Search: "fire", Status: "Pending"}, 2, 5).
		Return(service.IncidentPage{
			Page: dashboard.Page{
				Items:      []*models.Incident{testIncident("k1")},
				Page:       2,
				PageSize:   5,
				Total:      6,
				TotalPages: 2,
				HasPrev:    true,
			},
			ActiveCount: 3,
		}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents?search=fire&status=Pending&page=2&pageSize=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 6, resp.Total)
	assert.Equal(t, 3, resp.ActiveCount)
	assert.True(t, resp.HasPrev)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, models.CategoryFire, resp.Items[0].Category)
}

func TestListIncidents_DefaultsToAllStatuses(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		ListIncidents(dashboard.FilterConfig{Status: dashboard.StatusAll}, 1, 10).
		Return(service.IncidentPage{Page: dashboard.Page{Items: []*models.Incident{}, Page: 1, PageSize: 10}}).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetStats_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetAggregates().Return(dashboard.Summary{Total: 4, Active: 3}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dashboard.Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Total)
	assert.Equal(t, 3, resp.Active)
}

func TestExportIncidents(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		ExportCSV(gomock.Any()).
		DoAndReturn(func(w io.Writer) error {
			_, err := io.WriteString(w, "ID,Type\n")
			return err
		}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/export", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "incidents-export-")
	assert.Equal(t, "ID,Type\n", w.Body.String())
}

func TestGetIncident_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetIncident(gomock.Any(), "k1").Return(testIncident("k1"), nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/k1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "k1", resp.Key)
	assert.Equal(t, models.CategoryFire, resp.Category)
	assert.Equal(t, "Route 9", resp.Location.Address)
	assert.NotNil(t, resp.StatusHistory)
}

func TestGetIncident_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetIncident(gomock.Any(), "missing").Return(nil, models.ErrIncidentNotFound).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetTimeline_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	at := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	mockService.EXPECT().
		Timeline(gomock.Any(), "k1").
		Return([]lifecycle.TimelineEntry{{At: at, Kind: lifecycle.EntryStatus, Status: models.StatusNew}}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/k1/timeline", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []lifecycle.TimelineEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, lifecycle.EntryStatus, resp[0].Kind)
}

func TestUpdateStatus_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	op := &models.Operation{ID: uuid.New(), Kind: models.OperationStatus, IncidentKey: "k1", State: models.OperationCommitted}

	mockService.EXPECT().UpdateStatus(gomock.Any(), "k1", "In Progress").Return(op, nil).Times(1)

	w := makeRequest(router, "PATCH", "/api/v1/incidents/k1/status", jsonBody(t, UpdateStatusRequest{Status: "In Progress"}))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.Operation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, op.ID, resp.ID)
	assert.Equal(t, models.OperationCommitted, resp.State)
}

func TestUpdateStatus_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		op       *models.Operation
		err      error
		wantCode int
	}{
		{
			name:     "unknown status",
			err:      &models.ValidationError{Field: "status", Message: "unknown status Escalated"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "missing incident",
			err:      models.ErrIncidentNotFound,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "transition refused",
			err:      models.ErrTransitionNotAllowed,
			wantCode: http.StatusConflict,
		},
		{
			name:     "write failed",
			op:       &models.Operation{ID: uuid.New(), State: models.OperationFailed},
			err:      &models.ExternalServiceError{Service: "store", Op: "status update", Err: errors.New("timeout")},
			wantCode: http.StatusBadGateway,
		},
		{
			name:     "unexpected",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)
			mockService.EXPECT().UpdateStatus(gomock.Any(), "k1", "Escalated").Return(tt.op, tt.err).Times(1)

			w := makeRequest(router, "PATCH", "/api/v1/incidents/k1/status", jsonBody(t, UpdateStatusRequest{Status: "Escalated"}))

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.op != nil {
				var resp struct {
					Operation models.Operation `json:"operation"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.op.ID, resp.Operation.ID)
				assert.Equal(t, models.OperationFailed, resp.Operation.State)
			}
		})
	}
}

func TestUpdateStatus_MissingStatus(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "PATCH", "/api/v1/incidents/k1/status", jsonBody(t, UpdateStatusRequest{}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssignTeam_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	op := &models.Operation{ID: uuid.New(), Kind: models.OperationTeam, State: models.OperationCommitted}

	mockService.EXPECT().AssignTeam(gomock.Any(), "k1", "T-7", "Engine 7").Return(op, nil).Times(1)

	w := makeRequest(router, "PATCH", "/api/v1/incidents/k1/team", jsonBody(t, AssignTeamRequest{TeamID: "T-7", TeamName: "Engine 7"}))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAssignTeam_MissingTeamID(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().AssignTeam(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "PATCH", "/api/v1/incidents/k1/team", jsonBody(t, AssignTeamRequest{TeamName: "Engine 7"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddNote_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	op := &models.Operation{ID: uuid.New(), Kind: models.OperationNote, State: models.OperationCommitted}

	mockService.EXPECT().AddNote(gomock.Any(), "k1", "", "Unit en route").Return(op, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/incidents/k1/notes", jsonBody(t, AddNoteRequest{Text: "Unit en route"}))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestUpdateLocation_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	op := &models.Operation{ID: uuid.New(), Kind: models.OperationLocation, State: models.OperationCommitted}
	lat, lng := 40.71, -74.01

	mockService.EXPECT().
		UpdateLocation(gomock.Any(), "k1", "14 Main St", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, coords *models.Coordinates) (*models.Operation, error) {
			require.NotNil(t, coords)
			assert.Equal(t, 40.71, coords.Lat)
			assert.Equal(t, -74.01, coords.Lng)
			assert.Equal(t, 12.5, coords.Accuracy)
			return op, nil
		}).
		Times(1)

	w := makeRequest(router, "PATCH", "/api/v1/incidents/k1/location", jsonBody(t, UpdateLocationRequest{
		Address: "14 Main St", Latitude: &lat, Longitude: &lng, Accuracy: 12.5,
	}))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateLocation_InvalidCoordinates(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	lat, lng := 95.0, 10.0

	mockService.EXPECT().UpdateLocation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "PATCH", "/api/v1/incidents/k1/location", jsonBody(t, UpdateLocationRequest{Latitude: &lat, Longitude: &lng}))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = makeRequest(router, "PATCH", "/api/v1/incidents/k1/location", jsonBody(t, UpdateLocationRequest{Address: "14 Main St"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveLocation(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	op := &models.Operation{ID: uuid.New(), Kind: models.OperationLocation, State: models.OperationCommitted}

	gomock.InOrder(
		mockService.EXPECT().UpdateLocation(gomock.Any(), "k1", "", (*models.Coordinates)(nil)).Return(op, nil),
		mockService.EXPECT().UpdateLocation(gomock.Any(), "missing", "", (*models.Coordinates)(nil)).Return(nil, models.ErrIncidentNotFound),
	)

	w := makeRequest(router, "DELETE", "/api/v1/incidents/k1/location", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, "DELETE", "/api/v1/incidents/missing/location", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOperations(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	failed := &models.Operation{ID: uuid.New(), State: models.OperationFailed}

	mockService.EXPECT().ListOperations("failed").Return([]*models.Operation{failed}).Times(1)
	mockService.EXPECT().GetOperation(failed.ID).Return(failed, nil).Times(1)
	mockService.EXPECT().RetryOperation(gomock.Any(), failed.ID).Return(nil, models.ErrOperationNotRetryable).Times(1)

	w := makeRequest(router, "GET", "/api/v1/operations?state=failed", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var list []models.Operation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)

	w = makeRequest(router, "GET", "/api/v1/operations/"+failed.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, "POST", "/api/v1/operations/"+failed.ID.String()+"/retry", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = makeRequest(router, "GET", "/api/v1/operations/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOperation_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	id := uuid.New()

	mockService.EXPECT().GetOperation(id).Return(nil, models.ErrOperationNotFound).Times(1)

	w := makeRequest(router, "GET", "/api/v1/operations/"+id.String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSafetyTips(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		SafetyTips("Heart Attack").
		Return(models.CategoryMedical, []string{"Call for help"}).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/safety-tips?type=Heart%20Attack", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp SafetyTipsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.CategoryMedical, resp.Category)
	assert.Equal(t, []string{"Call for help"}, resp.Tips)
}

func TestReverseGeocode(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ReverseGeocode(gomock.Any(), 40.7, -74.0).Return("12 Main St", nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/geocode/reverse?lat=40.7&lng=-74.0", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "12 Main St")

	w = makeRequest(router, "GET", "/api/v1/geocode/reverse?lat=north", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestLiveFeed_PushesUpdates(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	updates := make(chan service.LiveUpdate, 1)
	updates <- service.LiveUpdate{
		Version:  3,
		Filtered: []*models.Incident{testIncident("k1")},
		Active:   []*models.Incident{testIncident("k1")},
		Stats:    dashboard.Summary{Total: 1, Active: 1},
	}
	cancelled := make(chan struct{})
	mockService.EXPECT().
		Subscribe(dashboard.FilterConfig{Search: "fire", Status: dashboard.StatusAll}).
		Return((<-chan service.LiveUpdate)(updates), func() { close(cancelled) }).
		Times(1)

	server := httptest.NewServer(router)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/incidents/live?search=fire"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	var msg LiveUpdateResponse
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, uint64(3), msg.Version)
	require.Len(t, msg.Filtered, 1)
	assert.Equal(t, models.CategoryFire, msg.Filtered[0].Category)
	assert.Equal(t, 1, msg.Stats.Total)

	require.NoError(t, conn.Close())
	select {
	case <-cancelled:
	case <-time.After(2 * time.Second):
		t.Fatal("subscription was not cancelled after client disconnect")
	}
}
