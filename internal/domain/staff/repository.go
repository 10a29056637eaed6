package staff

import "context"

// StaffRepository executes the compiled query plan: one page of base rows
// plus the total count, both derived from the same WHERE clause so the two
// can never drift.
type StaffRepository interface {
	List(ctx context.Context, clientID int64, opts ListOptions) ([]StaffRow, int64, error)
}

// EnrichmentRepository issues batched lookups keyed by the page's user ids.
// Implementations must filter with a single user_id IN (ids) statement, never
// per-row queries, and callers only pass ids taken from the current page, so
// no cross-client rows can leak into the maps.
type EnrichmentRepository interface {
	ProfilesByUserIDs(ctx context.Context, userIDs []int64) (map[int64]PersonProfile, error)
	SalariesByUserIDs(ctx context.Context, userIDs []int64) (map[int64]SalaryRecord, error)
	PhotosByUserIDs(ctx context.Context, userIDs []int64) (map[int64][]PhotoRecord, error)
	DeviceTokensByUserIDs(ctx context.Context, userIDs []int64) (map[int64][]DeviceToken, error)
	CommunicationsByUserIDs(ctx context.Context, userIDs []int64) (map[int64][]CommunicationRecord, error)
}
