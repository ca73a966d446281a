package ports

import (
	"context"

	"github.com/AshuKumar2005/CityAcces/internal/core/domain"
)

// AnnouncementFilter narrows an announcement listing.
type AnnouncementFilter struct {
	ActiveOnly bool
}

// AnnouncementRepository persists announcements.
type AnnouncementRepository interface {
	Create(ctx context.Context, a *domain.Announcement) error
	FindByID(ctx context.Context, id string) (*domain.Announcement, error)
	// List returns matching announcements, newest first.
	List(ctx context.Context, filter AnnouncementFilter) ([]*domain.Announcement, error)
	// Update replaces title, content and category and returns the stored row.
	Update(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error)
	// SetActive writes is_active alone; updated_at is left untouched.
	SetActive(ctx context.Context, id string, active bool) (*domain.Announcement, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, filter AnnouncementFilter) (int64, error)
}
