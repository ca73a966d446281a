package ports

import (
	"context"

	"github.com/AshuKumar2005/CityAcces/internal/core/domain"
)

// AmenityRepository persists the public facility directory.
type AmenityRepository interface {
	Create(ctx context.Context, a *domain.Amenity) error
	// List returns every amenity ordered by name.
	List(ctx context.Context) ([]*domain.Amenity, error)
	// Update replaces the editable fields of a.ID and returns the stored row.
	Update(ctx context.Context, a *domain.Amenity) (*domain.Amenity, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
