package ports

import (
	"context"
	"time"
)

// Repositories bundles every store the services need. Both storage backends
// build one.
type Repositories struct {
	Identities    IdentityRepository
	Profiles      ProfileRepository
	Complaints    ComplaintRepository
	Amenities     AmenityRepository
	Announcements AnnouncementRepository
}

// RevocationStore remembers signed-out session token ids until they expire.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
