package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/pkg/customvalidator"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"
	"gearguard/pkg/utils"
)

type mockRequestService struct {
	mock.Mock
}

func (m *mockRequestService) GetRequests(ctx context.Context, filter types.Filter) ([]dto.MaintenanceRequestDTO, uint64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]dto.MaintenanceRequestDTO), args.Get(1).(uint64), args.Error(2)
}

func (m *mockRequestService) FindRequest(ctx context.Context, id uint64) (*dto.MaintenanceRequestDTO, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*dto.MaintenanceRequestDTO)
	return res, args.Error(1)
}

func (m *mockRequestService) CreateRequest(ctx context.Context, payload dto.CreateMaintenanceRequestDTO) (*dto.MaintenanceRequestDTO, error) {
	args := m.Called(ctx, payload)
	res, _ := args.Get(0).(*dto.MaintenanceRequestDTO)
	return res, args.Error(1)
}

func (m *mockRequestService) UpdateRequest(ctx context.Context, id uint64, payload dto.UpdateMaintenanceRequestDTO) (*dto.MaintenanceRequestDTO, error) {
	args := m.Called(ctx, id, payload)
	res, _ := args.Get(0).(*dto.MaintenanceRequestDTO)
	return res, args.Error(1)
}

func (m *mockRequestService) DeleteRequest(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type mockWorksheetService struct {
	mock.Mock
}

func (m *mockWorksheetService) Render(ctx context.Context, id uint64) ([]byte, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).([]byte)
	return out, args.Error(1)
}

func newEcho(t *testing.T) *echo.Echo {
	t.Helper()
	v := validator.New()
	require.NoError(t, customvalidator.RegisterCustomValidations(v))
	e := echo.New()
	e.Validator = utils.NewValidator(v)
	return e
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) utils.HTTPResponse {
	t.Helper()
	var res utils.HTTPResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return res
}

func requestRoutes(t *testing.T) (*echo.Echo, *mockRequestService, *mockWorksheetService) {
	e := newEcho(t)
	svc := &mockRequestService{}
	ws := &mockWorksheetService{}
	ctrl := NewMaintenanceRequestController(svc, ws, zap.NewNop())
	e.GET("/requests", ctrl.GetRequests)
	e.GET("/requests/:id", ctrl.FindRequest)
	e.POST("/requests", ctrl.CreateRequest)
	e.PUT("/requests/:id", ctrl.UpdateRequest)
	e.DELETE("/requests/:id", ctrl.DeleteRequest)
	e.GET("/requests/:id/worksheet", ctrl.Worksheet)
	return e, svc, ws
}

func TestCreateRequest_Created(t *testing.T) {
	e, svc, _ := requestRoutes(t)
	svc.On("CreateRequest", mock.Anything, mock.MatchedBy(func(p dto.CreateMaintenanceRequestDTO) bool {
		return p.Subject == "Fan noise" && p.EquipmentID != nil && *p.EquipmentID == 7
	})).Return(&dto.MaintenanceRequestDTO{ID: 1, Subject: "Fan noise", Stage: "New Request"}, nil)

	body := `{"subject":"Fan noise","request_date":"2025-01-10","equipment_id":7}`
	req := httptest.NewRequest(http.MethodPost, "/requests", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, decode(t, rec).Status)
	svc.AssertExpectations(t)
}

func TestCreateRequest_ValidationErrors(t *testing.T) {
	e, svc, _ := requestRoutes(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing subject", `{"request_date":"2025-01-10"}`},
		{"bad stage", `{"subject":"x","request_date":"2025-01-10","stage":"Done"}`},
		{"bad date", `{"subject":"x","request_date":"10.01.2025"}`},
		{"broken json", `{"subject":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/requests", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, decode(t, rec).Status)
		})
	}
	svc.AssertNotCalled(t, "CreateRequest", mock.Anything, mock.Anything)
}

func TestRequestErrorsMapToStatus(t *testing.T) {
	e, svc, _ := requestRoutes(t)
	svc.On("FindRequest", mock.Anything, uint64(404)).Return(nil, apperrors.NewNotFoundError("maintenance request"))
	svc.On("DeleteRequest", mock.Anything, uint64(9)).Return(apperrors.NewConflictError("busy"))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/requests/404", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "maintenance request not found", decode(t, rec).Message)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/requests/9", nil))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/requests/abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRequests_PlainQueryFilters(t *testing.T) {
	e, svc, _ := requestRoutes(t)
	svc.On("GetRequests", mock.Anything, mock.MatchedBy(func(f types.Filter) bool {
		return f.Filter["stage"] == "In Progress" && f.Filter["equipment_id"] == "7" && f.Limit == 10 && f.Offset == 20
	})).Return([]dto.MaintenanceRequestDTO{{ID: 3}}, uint64(21), nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/requests?stage=In+Progress&equipment_id=7&skip=20&limit=10", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var res struct {
		Body struct {
			List       []dto.MaintenanceRequestDTO `json:"list"`
			Pagination types.Pagination            `json:"pagination"`
		} `json:"body"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Len(t, res.Body.List, 1)
	assert.Equal(t, uint64(21), res.Body.Pagination.TotalCount)
	assert.Equal(t, 3, res.Body.Pagination.Page)
	svc.AssertExpectations(t)
}

func TestGetRequests_NonNumericIDFilter(t *testing.T) {
	e, svc, _ := requestRoutes(t)

	for _, query := range []string{"equipment_id=abc", "filter[team_id]=x", "work_center_id=1,two"} {
		t.Run(query, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/requests?"+query, nil))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, decode(t, rec).Status)
		})
	}
	svc.AssertNotCalled(t, "GetRequests", mock.Anything, mock.Anything)
}

func TestWorksheet_Attachment(t *testing.T) {
	e, _, ws := requestRoutes(t)
	ws.On("Render", mock.Anything, uint64(12)).Return([]byte("%PDF-1.3 test"), nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/requests/12/worksheet", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "attachment; filename=Worksheet_12.pdf", rec.Header().Get(echo.HeaderContentDisposition))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF-"))
}

func TestWorksheet_NotFound(t *testing.T) {
	e, _, ws := requestRoutes(t)
	ws.On("Render", mock.Anything, uint64(5)).Return(nil, apperrors.NewNotFoundError("maintenance request"))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/requests/5/worksheet", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(ctx context.Context) error { return p.err }

func TestHealthz(t *testing.T) {
	e := echo.New()
	e.GET("/ok", NewHealthController(stubPinger{}, zap.NewNop()).Healthz)
	e.GET("/down", NewHealthController(stubPinger{err: context.DeadlineExceeded}, zap.NewNop()).Healthz)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/down", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
