package statistics

import "context"

// StatisticsRepository runs the single cross-tabulating aggregate for one
// client.
type StatisticsRepository interface {
	GetOTFaceCounts(ctx context.Context, clientID int64) (Counts, error)
}
