package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/staffhub-io/staffdir-backend-go/internal/domain/client"
	"github.com/staffhub-io/staffdir-backend-go/internal/domain/staff"
	"github.com/staffhub-io/staffdir-backend-go/internal/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStaffService struct {
	resp      *staff.ListResponse
	err       error
	gotClient int64
	gotParams staff.ListParams
}

func (s *stubStaffService) ListStaffs(_ context.Context, clientID int64, params staff.ListParams) (*staff.ListResponse, error) {
	s.gotClient = clientID
	s.gotParams = params
	return s.resp, s.err
}

func newStaffRouter(svc staff.StaffService) *chi.Mux {
	r := chi.NewRouter()
	handler := NewStaffHandler(svc)
	r.Get("/api/v1/clients/{clientID}/staffs", handler.ListStaffs)
	return r
}

func TestListStaffs_PassesParamsThrough(t *testing.T) {
	svc := &stubStaffService{
		resp: &staff.ListResponse{
			Staffs:     []staff.StaffResponse{},
			Pagination: pagination.Calculate(1, 50, 0),
		},
	}
	router := newStaffRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/clients/7/staffs?search=jane&combined_filter=ot_with_face&limit=10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), svc.gotClient)
	assert.Equal(t, "jane", svc.gotParams.Search)
	assert.Equal(t, "ot_with_face", svc.gotParams.CombinedFilter)
	assert.Equal(t, "10", svc.gotParams.Limit)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Staffs     []json.RawMessage `json:"staffs"`
			Pagination pagination.Meta   `json:"pagination"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 50, body.Data.Pagination.Limit)
}

func TestListStaffs_RejectsNonNumericClientID(t *testing.T) {
	svc := &stubStaffService{}
	router := newStaffRouter(svc)

	for _, path := range []string{
		"/api/v1/clients/abc/staffs",
		"/api/v1/clients/0/staffs",
		"/api/v1/clients/-3/staffs",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "path=%s", path)
	}
	assert.Zero(t, svc.gotClient, "invalid ids never reach the service")
}

func TestListStaffs_ClientNotFoundIs404(t *testing.T) {
	svc := &stubStaffService{err: client.ErrClientNotFound}
	router := newStaffRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/clients/404/staffs", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListStaffs_OpaqueInternalError(t *testing.T) {
	svc := &stubStaffService{err: assert.AnError}
	router := newStaffRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/clients/7/staffs", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}
