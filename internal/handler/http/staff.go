package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/staffhub-io/staffdir-backend-go/internal/domain/staff"
	"github.com/staffhub-io/staffdir-backend-go/internal/handler/http/response"
)

type StaffHandler interface {
	ListStaffs(w http.ResponseWriter, r *http.Request)
}

type staffHandlerImpl struct {
	staffService staff.StaffService
}

func NewStaffHandler(staffService staff.StaffService) StaffHandler {
	return &staffHandlerImpl{
		staffService: staffService,
	}
}

// ListStaffs implements StaffHandler. Filter parameters are passed through
// as-is; the service normalizes them. Only the client id in the path is
// shape-validated here.
func (h *staffHandlerImpl) ListStaffs(w http.ResponseWriter, r *http.Request) {
	clientID, err := clientIDParam(r)
	if err != nil {
		response.BadRequest(w, "Client ID must be a positive integer", nil)
		return
	}

	q := r.URL.Query()
	params := staff.ListParams{
		Page:           q.Get("page"),
		Limit:          q.Get("limit"),
		Search:         q.Get("search"),
		SearchField:    q.Get("search_field"),
		SearchType:     q.Get("search_type"),
		Status:         q.Get("status"),
		OrderBy:        q.Get("order_by"),
		OrderDirection: q.Get("order_direction"),
		OTFilter:       q.Get("ot_filter"),
		FaceFilter:     q.Get("face_filter"),
		CombinedFilter: q.Get("combined_filter"),
		SalaryField:    q.Get("salary_field"),
		MinSalary:      q.Get("min_salary"),
		MaxSalary:      q.Get("max_salary"),
		Currency:       q.Get("currency"),
		DeviceFilter:   q.Get("device_filter"),
		ProjectsFilter: q.Get("projects_filter"),
		ProjectID:      q.Get("project_id"),
	}

	result, err := h.staffService.ListStaffs(r.Context(), clientID, params)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func clientIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "clientID"), 10, 64)
	if err != nil || id < 1 {
		return 0, strconv.ErrSyntax
	}
	return id, nil
}
