package ports

import (
	"context"

	"github.com/AshuKumar2005/CityAcces/internal/core/domain"
)

// IdentityRepository persists login credentials.
type IdentityRepository interface {
	// Create stores a new identity. A duplicate email yields domain.ErrEmailTaken.
	Create(ctx context.Context, identity *domain.Identity) error
	FindByEmail(ctx context.Context, email string) (*domain.Identity, error)
	// Delete removes an identity by id. Used to undo a half-finished sign-up.
	Delete(ctx context.Context, id string) error
}

// ProfileRepository persists application profiles.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	FindByID(ctx context.Context, id string) (*domain.Profile, error)
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
}
