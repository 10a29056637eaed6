package response

import (
	"errors"
	"net/http"

	"github.com/staffhub-io/staffdir-backend-go/internal/domain/client"
)

// HandleError maps domain errors to HTTP responses. Anything unmapped is an
// opaque 500; internal details never reach the body.
func HandleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, client.ErrClientNotFound):
		NotFound(w, "Client not found")
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
