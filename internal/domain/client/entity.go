package client

import "time"

// Client is the tenant every staff query and aggregate is scoped to.
type Client struct {
	ID         int64
	ClientName string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
