package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shenikar/relief_coordination_system/internal/config"
	"github.com/shenikar/relief_coordination_system/internal/hierarchy"
	"github.com/shenikar/relief_coordination_system/internal/metrics"
	"github.com/shenikar/relief_coordination_system/internal/models"
	"github.com/shenikar/relief_coordination_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var staffKey = map[string]string{"X-API-Key": "test-api-key"}

type testMocks struct {
	sos         *mocks.MockSOSService
	missing     *mocks.MockMissingPersonService
	lookup      *mocks.MockCaseLookupService
	allocations *mocks.MockAllocationService
	ledger      *mocks.MockStockLedger
	badges      *mocks.MockBadgeService
}

// newTestHandler создает роутер с мокированными сервисами
func newTestHandler(t *testing.T) (*testMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := &testMocks{
		sos:         mocks.NewMockSOSService(ctrl),
		missing:     mocks.NewMockMissingPersonService(ctrl),
		lookup:      mocks.NewMockCaseLookupService(ctrl),
		allocations: mocks.NewMockAllocationService(ctrl),
		ledger:      mocks.NewMockStockLedger(ctrl),
		badges:      mocks.NewMockBadgeService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{APIKeys: []string{"test-api-key"}}

	handler := NewHandler(Services{
		SOS:         m.sos,
		Missing:     m.missing,
		Lookup:      m.lookup,
		Allocations: m.allocations,
		Ledger:      m.ledger,
		Badges:      m.badges,
		Authorities: hierarchy.MustDefault(),
	}, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.RegisterRoutes(router.Group("/api/v1"))
	return m, router
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

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSubmitSOS_PublicAndReturnsTrackingID(t *testing.T) {
	m, router := newTestHandler(t)
	created := time.Date(2025, 8, 14, 10, 0, 0, 0, time.UTC)

	m.sos.EXPECT().Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s models.SOSSubmission) (*models.SOSRequest, error) {
			assert.Equal(t, "Ali Khan", s.Name)
			assert.Equal(t, 5, s.DistrictID)
			return &models.SOSRequest{ID: 1, TrackingID: "SOS-2025-0001", Status: models.SOSSubmitted, CreatedAt: created}, nil
		})

	body := `{"name":"Ali Khan","phone":"03001234567","cnic":"3520112345671","locationLat":33.6,"locationLng":73.0,
		"peopleCount":3,"emergencyType":"flood","description":"Water entering homes","provinceId":1,"districtId":5}`
	w := makeRequest(router, http.MethodPost, "/api/v1/sos", bytes.NewBufferString(body))

	require.Equal(t, http.StatusCreated, w.Code)
	var resp SubmissionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SOS-2025-0001", resp.TrackingID)
	assert.Equal(t, "submitted", resp.Status)
	assert.Equal(t, "Your SOS request has been received. Tracking ID: SOS-2025-0001", resp.Message)
	assert.NotContains(t, w.Body.String(), "3520112345671", "public response must not echo the CNIC")
}

func TestSubmitSOS_ValidationListsEveryField(t *testing.T) {
	m, router := newTestHandler(t)

	verr := &models.ValidationError{}
	verr.Add("phone", "pk_phone", "must be a valid Pakistani mobile number")
	verr.Add("cnic", "cnic", "must be exactly 13 digits")
	m.sos.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("service: %w", verr))

	w := makeRequest(router, http.MethodPost, "/api/v1/sos", bytes.NewBufferString(`{"name":"Ali"}`))

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "validation_error", resp.Code)
	require.Len(t, resp.Fields, 2)
	assert.Equal(t, "phone", resp.Fields[0].Field)
	assert.Equal(t, "cnic", resp.Fields[1].Field)
}

func TestSubmitSOS_InvalidJSON(t *testing.T) {
	m, router := newTestHandler(t)
	m.sos.EXPECT().Submit(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, http.MethodPost, "/api/v1/sos", bytes.NewBufferString(`{"name": "test"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestSubmitSOS_WrongJSONTypeIsFieldError(t *testing.T) {
	m, router := newTestHandler(t)
	m.sos.EXPECT().Submit(gomock.Any(), gomock.Any()).Times(0)

	tests := []struct {
		name    string
		body    string
		field   string
		message string
	}{
		{"string instead of integer", `{"name":"Ali Khan","peopleCount":"3"}`, "peopleCount", "must be an integer"},
		{"fraction instead of integer", `{"name":"Ali Khan","peopleCount":2.5}`, "peopleCount", "must be an integer"},
		{"number instead of string", `{"name":"Ali Khan","phone":3001234567}`, "phone", "must be a string"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := makeRequest(router, http.MethodPost, "/api/v1/sos", bytes.NewBufferString(tt.body))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, "validation_error", resp.Code)
			require.Len(t, resp.Fields, 1)
			assert.Equal(t, tt.field, resp.Fields[0].Field)
			assert.Equal(t, "type", resp.Fields[0].Rule)
			assert.Equal(t, tt.message, resp.Fields[0].Message)
		})
	}
}

func TestStaffRoutes_RequireAPIKey(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/sos/1", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")

	w = makeRequest(router, http.MethodPost, "/api/v1/allocations/"+uuid.NewString()+"/approve", nil, map[string]string{"X-API-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestStaffRoutes_BearerTokenAccepted(t *testing.T) {
	m, router := newTestHandler(t)
	m.sos.EXPECT().Get(gomock.Any(), int64(7)).Return(&models.SOSRequest{ID: 7, Status: models.SOSTriaged}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/sos/7", nil, map[string]string{"Authorization": "Bearer test-api-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSOSTransitions_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantTag  string
	}{
		{"not found", fmt.Errorf("sos 9: %w", models.ErrNotFound), http.StatusNotFound, "not_found"},
		{"invalid transition", &models.TransitionError{Entity: "sos", From: "submitted", To: "resolved"}, http.StatusConflict, "invalid_transition"},
		{"conflict", fmt.Errorf("service: %w", models.ErrConflict), http.StatusConflict, "conflict"},
		{"storage", errors.New("connection reset"), http.StatusInternalServerError, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, router := newTestHandler(t)
			m.sos.EXPECT().Resolve(gomock.Any(), int64(9)).Return(nil, tt.err)

			w := makeRequest(router, http.MethodPost, "/api/v1/sos/9/resolve", nil, staffKey)
			assert.Equal(t, tt.wantCode, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.wantTag, resp.Code)
			if tt.wantCode == http.StatusInternalServerError {
				assert.Equal(t, "internal server error", resp.Error)
			}
		})
	}
}

func TestTriageSOS_OptionalOverride(t *testing.T) {
	m, router := newTestHandler(t)

	m.sos.EXPECT().Triage(gomock.Any(), int64(3), nil).Return(&models.SOSRequest{ID: 3, Status: models.SOSTriaged, PriorityScore: 203}, nil)
	w := makeRequest(router, http.MethodPost, "/api/v1/sos/3/triage", nil, staffKey)
	assert.Equal(t, http.StatusOK, w.Code)

	m.sos.EXPECT().Triage(gomock.Any(), int64(4), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, override *int64) (*models.SOSRequest, error) {
			require.NotNil(t, override)
			assert.Equal(t, int64(500), *override)
			return &models.SOSRequest{ID: 4, Status: models.SOSTriaged, PriorityScore: 500, UrgencyOverridden: true}, nil
		})
	w = makeRequest(router, http.MethodPost, "/api/v1/sos/4/triage", bytes.NewBufferString(`{"urgencyOverride":500}`), staffKey)
	assert.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, http.MethodPost, "/api/v1/sos/abc/triage", nil, staffKey)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListSOS_FiltersAndPagination(t *testing.T) {
	m, router := newTestHandler(t)

	m.sos.EXPECT().List(gomock.Any(), models.SOSFilter{ProvinceID: 1, DistrictID: 5, Status: models.SOSTriaged}, 2, 10).
		Return([]*models.SOSRequest{{ID: 11}}, 11, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/sos?provinceId=1&districtId=5&status=TRIAGED&page=2&pageSize=10", nil, staffKey)
	require.Equal(t, http.StatusOK, w.Code)
	var resp SOSListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 11, resp.Total)
	assert.Equal(t, 2, resp.Page)
	require.Len(t, resp.Items, 1)

	m.sos.EXPECT().List(gomock.Any(), models.SOSFilter{}, 1, models.DefaultPageSize).Return(nil, 0, nil)
	w = makeRequest(router, http.MethodGet, "/api/v1/sos?page=0&pageSize=500", nil, staffKey)
	require.Equal(t, http.StatusOK, w.Code)
	resp = SOSListResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, models.DefaultPageSize, resp.PageSize)

	w = makeRequest(router, http.MethodGet, "/api/v1/sos?status=lost", nil, staffKey)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportMissingPerson_Public(t *testing.T) {
	m, router := newTestHandler(t)
	m.missing.EXPECT().Report(gomock.Any(), gomock.Any()).
		Return(&models.MissingPersonCase{ID: 1, TrackingID: "MP-2025-0001", Status: models.MissingPersonReported}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/missing-persons", bytes.NewBufferString(`{"fullName":"Zainab Bibi"}`))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "MP-2025-0001")
}

func TestCloseMissingPerson(t *testing.T) {
	m, router := newTestHandler(t)
	m.missing.EXPECT().Close(gomock.Any(), int64(2), "duplicate report").
		Return(&models.MissingPersonCase{ID: 2, Status: models.MissingPersonClosed, CloseReason: "duplicate report"}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/missing-persons/2/close", jsonBody(t, ReasonRequest{Reason: "duplicate report"}), staffKey)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTrackByID_Public(t *testing.T) {
	m, router := newTestHandler(t)
	m.lookup.EXPECT().ByTrackingID(gomock.Any(), "sos-2025-0001").
		Return(&models.CaseSummary{TrackingID: "SOS-2025-0001", CaseType: models.CaseSOS, Status: "triaged"}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/track/sos-2025-0001", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"triaged"`)

	m.lookup.EXPECT().ByTrackingID(gomock.Any(), "SOS-1999-0001").Return(nil, models.ErrNotFound)
	w = makeRequest(router, http.MethodGet, "/api/v1/track/SOS-1999-0001", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTrackByCNIC_EmptyIsArray(t *testing.T) {
	m, router := newTestHandler(t)
	m.lookup.EXPECT().ByCNIC(gomock.Any(), "3520112345671").Return(nil, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/track?cnic=3520112345671", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestSubmitAllocation_MapsPayload(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()

	m.allocations.EXPECT().Submit(gomock.Any(), models.AllocationSubmission{
		RequesterAuthorityID: "district:1:1",
		TargetAuthorityID:    "pdma:1",
		ResourceType:         "food",
		Quantity:             50,
		Reason:               "flood relief",
	}).Return(&models.AllocationRequest{ID: id, Status: models.AllocationPending}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/allocations", jsonBody(t, AllocationSubmitRequest{
		RequesterAuthorityID: "district:1:1",
		TargetAuthorityID:    "pdma:1",
		ResourceType:         "food",
		Quantity:             50,
		Reason:               "flood relief",
	}), staffKey)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), id.String())
}

func TestApproveAllocation_InsufficientStockIs422(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()
	m.allocations.EXPECT().Approve(gomock.Any(), id, "director").
		Return(nil, fmt.Errorf("service: could not approve allocation %s: %w", id, models.ErrInsufficientStock))

	w := makeRequest(router, http.MethodPost, "/api/v1/allocations/"+id.String()+"/approve", jsonBody(t, DecisionRequest{DecidedBy: "director"}), staffKey)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "insufficient_stock", decodeError(t, w).Code)
}

func TestAllocationRoutes_BadID(t *testing.T) {
	m, router := newTestHandler(t)
	m.allocations.EXPECT().Fulfill(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/allocations/not-a-uuid/fulfill", nil, staffKey)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid allocation ID")
}

func TestCancelAllocation_EmptyBody(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()
	m.allocations.EXPECT().Cancel(gomock.Any(), id, "").Return(&models.AllocationRequest{ID: id, Status: models.AllocationCancelled}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/allocations/"+id.String()+"/cancel", nil, staffKey)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListIncomingAllocations(t *testing.T) {
	m, router := newTestHandler(t)
	m.allocations.EXPECT().ListIncoming(gomock.Any(), models.PDMAID(1), models.AllocationPending).
		Return([]*models.AllocationRequest{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/authorities/PDMA:1/allocations/incoming?status=pending", nil, staffKey)
	require.Equal(t, http.StatusOK, w.Code)
	var resp []models.AllocationRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestStockEndpoints(t *testing.T) {
	m, router := newTestHandler(t)
	lahore := models.DistrictAuthorityID(1, 1)

	m.ledger.EXPECT().Replenish(gomock.Any(), lahore, models.ResourceWater, int64(500)).
		Return(&models.StockEntry{AuthorityID: lahore, ResourceType: models.ResourceWater, Available: 500, Version: 1}, nil)
	w := makeRequest(router, http.MethodPost, "/api/v1/authorities/district:1:1/stock/water/replenish", jsonBody(t, StockChangeRequest{Quantity: 500}), staffKey)
	require.Equal(t, http.StatusOK, w.Code)
	var entry StockResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
	assert.Equal(t, "liters", entry.Unit)
	assert.Equal(t, int64(500), entry.Physical)

	w = makeRequest(router, http.MethodGet, "/api/v1/authorities/district:1:1/stock/fuel", nil, staffKey)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "resourceType", decodeError(t, w).Fields[0].Field)

	m.ledger.EXPECT().List(gomock.Any(), models.NDMAID).Return([]*models.StockEntry{
		{AuthorityID: models.NDMAID, ResourceType: models.ResourceFood},
	}, nil)
	w = makeRequest(router, http.MethodGet, "/api/v1/authorities/ndma/stock", nil, staffKey)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "updatedAt", "never-stocked entries carry no timestamp")
}

func TestListAuthorities(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/authorities", nil, staffKey)
	require.Equal(t, http.StatusOK, w.Code)
	var resp []models.Authority
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, len(hierarchy.DefaultAuthorities()))
}

func TestGetBadges(t *testing.T) {
	m, router := newTestHandler(t)
	m.badges.EXPECT().Badges(gomock.Any(), models.PDMAID(2)).
		Return(&models.BadgeSnapshot{AuthorityID: models.PDMAID(2), PendingAllocations: 4, ActiveSOS: 9}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/authorities/pdma:2/badges", nil, staffKey)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"pendingAllocations":4`)
}

func TestHealthCheck(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestMetricsMiddleware_RecordsRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(MetricsMiddleware())
	router.GET("/api/v1/sos/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := makeRequest(router, http.MethodGet, "/api/v1/sos/42", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	count := testutil.CollectAndCount(metrics.HTTPRequestDuration, "relief_http_request_duration_seconds")
	assert.GreaterOrEqual(t, count, 1)
}
