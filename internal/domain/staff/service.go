package staff

import "context"

type StaffService interface {
	ListStaffs(ctx context.Context, clientID int64, params ListParams) (*ListResponse, error)
}
