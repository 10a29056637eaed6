package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub-io/staffdir-backend-go/internal/domain/client"
	"github.com/staffhub-io/staffdir-backend-go/internal/pkg/database"
)

type clientRepositoryImpl struct {
	db *database.DB
}

func NewClientRepository(db *database.DB) client.ClientRepository {
	return &clientRepositoryImpl{db: db}
}

// GetByID implements client.ClientRepository.
func (r *clientRepositoryImpl) GetByID(ctx context.Context, id int64) (client.Client, error) {
	query := `
		SELECT id, client_name, created_at, updated_at
		FROM clients
		WHERE id = $1
	`

	var found client.Client
	err := r.db.QueryRow(ctx, query, id).Scan(&found.ID, &found.ClientName, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return client.Client{}, client.ErrClientNotFound
		}
		return client.Client{}, fmt.Errorf("failed to get client: %w", err)
	}

	return found, nil
}
