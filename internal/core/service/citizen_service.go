package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/AshuKumar2005/CityAcces/internal/core/domain"
	"github.com/AshuKumar2005/CityAcces/internal/core/ports"
)

// CitizenService implements the citizen dashboard use cases. Every complaint
// query is scoped to the caller.
type CitizenService struct {
	complaints    ports.ComplaintRepository
	amenities     ports.AmenityRepository
	announcements ports.AnnouncementRepository
	log           zerolog.Logger
}

func NewCitizenService(repos *ports.Repositories, log zerolog.Logger) *CitizenService {
	return &CitizenService{
		complaints:    repos.Complaints,
		amenities:     repos.Amenities,
		announcements: repos.Announcements,
		log:           log,
	}
}

// SubmitComplaint files a new complaint owned by citizenID in the pending state.
func (s *CitizenService) SubmitComplaint(ctx context.Context, citizenID string, in ports.SubmitComplaintInput) (*domain.Complaint, error) {
	if citizenID == "" {
		return nil, domain.ErrUnauthenticated
	}

	c := &domain.Complaint{
		CitizenID:   citizenID,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Category:    in.Category,
		Location:    strings.TrimSpace(in.Location),
		Status:      domain.StatusPending,
		Priority:    in.Priority,
	}
	if c.Priority == "" {
		c.Priority = domain.PriorityMedium
	}
	if err := validateComplaint(c); err != nil {
		return nil, err
	}

	if err := s.complaints.Create(ctx, c); err != nil {
		s.log.Error().Err(err).Str("citizen_id", citizenID).Msg("failed to submit complaint")
		return nil, fmt.Errorf("submit complaint: %w", err)
	}

	s.log.Info().Str("complaint_id", c.ID).Str("citizen_id", citizenID).Str("category", string(c.Category)).Msg("complaint submitted")
	return c, nil
}

func (s *CitizenService) ListOwnComplaints(ctx context.Context, citizenID string) ([]*domain.Complaint, error) {
	if citizenID == "" {
		return nil, domain.ErrUnauthenticated
	}
	items, err := s.complaints.List(ctx, ports.ComplaintFilter{CitizenID: citizenID})
	if err != nil {
		return nil, fmt.Errorf("list own complaints: %w", err)
	}
	return items, nil
}

func (s *CitizenService) ListAmenities(ctx context.Context) ([]*domain.Amenity, error) {
	items, err := s.amenities.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list amenities: %w", err)
	}
	return items, nil
}

func (s *CitizenService) ListActiveAnnouncements(ctx context.Context) ([]*domain.Announcement, error) {
	items, err := s.announcements.List(ctx, ports.AnnouncementFilter{ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	return items, nil
}

func validateComplaint(c *domain.Complaint) error {
	switch {
	case c.Title == "":
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	case c.Description == "":
		return fmt.Errorf("%w: description is required", domain.ErrValidation)
	case c.Location == "":
		return fmt.Errorf("%w: location is required", domain.ErrValidation)
	case !c.Category.Valid():
		return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, c.Category)
	case !c.Priority.Valid():
		return fmt.Errorf("%w: unknown priority %q", domain.ErrValidation, c.Priority)
	}
	return nil
}
