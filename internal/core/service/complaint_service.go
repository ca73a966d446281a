package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/AshuKumar2005/CityAcces/internal/core/domain"
	"github.com/AshuKumar2005/CityAcces/internal/core/ports"
)

// ComplaintTriageService lets admins review and answer complaints.
// Concurrent triage of the same complaint is last-writer-wins.
type ComplaintTriageService struct {
	complaints ports.ComplaintRepository
	log        zerolog.Logger
}

func NewComplaintTriageService(complaints ports.ComplaintRepository, log zerolog.Logger) *ComplaintTriageService {
	return &ComplaintTriageService{complaints: complaints, log: log}
}

// ListAll returns every complaint, newest first.
func (s *ComplaintTriageService) ListAll(ctx context.Context) ([]*domain.Complaint, error) {
	items, err := s.complaints.List(ctx, ports.ComplaintFilter{})
	if err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	return items, nil
}

// Triage writes the status and admin response of one complaint.
func (s *ComplaintTriageService) Triage(ctx context.Context, id string, in ports.TriageInput) (*domain.Complaint, error) {
	if id == "" {
		return nil, domain.ErrNotFound
	}
	if !in.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, in.Status)
	}

	updated, err := s.complaints.UpdateTriage(ctx, id, in.Status, strings.TrimSpace(in.AdminResponse))
	if err != nil {
		return nil, fmt.Errorf("triage complaint %s: %w", id, err)
	}

	s.log.Info().Str("complaint_id", id).Str("status", string(in.Status)).Msg("complaint triaged")
	return updated, nil
}
