package client

import "context"

// ClientRepository is the existence lookup used to fail fast before running
// expensive staff queries.
type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (Client, error)
}
