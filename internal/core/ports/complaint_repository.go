package ports

import (
	"context"

	"github.com/AshuKumar2005/CityAcces/internal/core/domain"
)

// ComplaintFilter narrows a complaint listing. An empty CitizenID lists every
// complaint and must only be used on behalf of an admin.
type ComplaintFilter struct {
	CitizenID string
}

// ComplaintRepository persists complaints. Implementations assign ID and
// timestamps on Create and stamp updated_at on every update.
type ComplaintRepository interface {
	Create(ctx context.Context, c *domain.Complaint) error
	// List returns matching complaints, newest first.
	List(ctx context.Context, filter ComplaintFilter) ([]*domain.Complaint, error)
	// UpdateTriage overwrites status and admin_response and returns the stored row.
	UpdateTriage(ctx context.Context, id string, status domain.ComplaintStatus, response string) (*domain.Complaint, error)
}
