package ports

import (
	"context"
	"time"

	"github.com/AshuKumar2005/CityAcces/internal/core/domain"
)

// SignUpInput carries a self-registration request. New accounts are always citizens.
type SignUpInput struct {
	Email    string
	Password string
	FullName string
	Phone    string
}

// SignInResult is returned by a successful SignIn.
type SignInResult struct {
	Token     string
	ExpiresAt time.Time
	Identity  domain.Identity
	Profile   *domain.Profile
}

// SessionService authenticates users and opens request-scoped sessions.
type SessionService interface {
	SignUp(ctx context.Context, in SignUpInput) (*domain.Profile, error)
	SignIn(ctx context.Context, email, password string) (*SignInResult, error)
	// Open validates a token and loads the caller's profile. The returned
	// session must be closed by the caller.
	Open(ctx context.Context, token string) (*domain.Session, error)
	SignOut(ctx context.Context, sess *domain.Session) error
}

// SubmitComplaintInput is the citizen complaint form. Status and owner are
// never taken from the client.
type SubmitComplaintInput struct {
	Title       string
	Description string
	Category    domain.ComplaintCategory
	Location    string
	Priority    domain.Priority
}

// CitizenService backs the citizen dashboard.
type CitizenService interface {
	SubmitComplaint(ctx context.Context, citizenID string, in SubmitComplaintInput) (*domain.Complaint, error)
	ListOwnComplaints(ctx context.Context, citizenID string) ([]*domain.Complaint, error)
	ListAmenities(ctx context.Context) ([]*domain.Amenity, error)
	ListActiveAnnouncements(ctx context.Context) ([]*domain.Announcement, error)
}

// TriageInput is the admin's complaint decision.
type TriageInput struct {
	Status        domain.ComplaintStatus
	AdminResponse string
}

// ComplaintTriageService backs the admin complaint manager.
type ComplaintTriageService interface {
	ListAll(ctx context.Context) ([]*domain.Complaint, error)
	Triage(ctx context.Context, id string, in TriageInput) (*domain.Complaint, error)
}

// AmenityInput is the amenity editor form.
type AmenityInput struct {
	Name           string
	Type           domain.AmenityType
	Address        string
	Contact        string
	OperatingHours string
	Description    string
}

// AmenityService backs the admin amenity manager.
type AmenityService interface {
	List(ctx context.Context) ([]*domain.Amenity, error)
	// Save creates when selectedID is empty and updates that record otherwise.
	Save(ctx context.Context, selectedID string, in AmenityInput) (*domain.Amenity, error)
	Delete(ctx context.Context, id string, confirmed bool) error
}

// AnnouncementInput is the announcement editor form. A nil IsActive means
// active on create and unchanged on edit; an empty Category means general on
// create and unchanged on edit.
type AnnouncementInput struct {
	Title    string
	Content  string
	Category domain.AnnouncementCategory
	IsActive *bool
}

// AnnouncementService backs the admin announcement manager.
type AnnouncementService interface {
	List(ctx context.Context) ([]*domain.Announcement, error)
	// Save creates when selectedID is empty and updates that record otherwise.
	// publisherID is recorded on create only.
	Save(ctx context.Context, selectedID, publisherID string, in AnnouncementInput) (*domain.Announcement, error)
	Delete(ctx context.Context, id string, confirmed bool) error
	ToggleActive(ctx context.Context, id string) (*domain.Announcement, error)
}

// DashboardStats are the admin landing page counters.
type DashboardStats struct {
	TotalComplaints      int   `json:"total_complaints"`
	PendingComplaints    int   `json:"pending_complaints"`
	InProgressComplaints int   `json:"in_progress_complaints"`
	ResolvedComplaints   int   `json:"resolved_complaints"`
	TotalCitizens        int64 `json:"total_citizens"`
	TotalAmenities       int64 `json:"total_amenities"`
	ActiveAnnouncements  int64 `json:"active_announcements"`
}

// StatsService computes the admin dashboard counters.
type StatsService interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
}
