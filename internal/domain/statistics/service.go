package statistics

import "context"

type StatisticsService interface {
	GetClientStatistics(ctx context.Context, clientID int64) (*Summary, error)
}
