package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/AshuKumar2005/CityAcces/internal/core/domain"
	"github.com/AshuKumar2005/CityAcces/internal/core/ports"
)

// AnnouncementService implements the admin announcement manager.
type AnnouncementService struct {
	announcements ports.AnnouncementRepository
	log           zerolog.Logger
}

func NewAnnouncementService(announcements ports.AnnouncementRepository, log zerolog.Logger) *AnnouncementService {
	return &AnnouncementService{announcements: announcements, log: log}
}

// List returns all announcements, active or not, newest first.
func (s *AnnouncementService) List(ctx context.Context) ([]*domain.Announcement, error) {
	items, err := s.announcements.List(ctx, ports.AnnouncementFilter{})
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	return items, nil
}

// Save creates an announcement published by publisherID when selectedID is
// empty, otherwise it edits the selected one. Fields left out of the form keep
// their stored value on edit.
func (s *AnnouncementService) Save(ctx context.Context, selectedID, publisherID string, in ports.AnnouncementInput) (*domain.Announcement, error) {
	a := &domain.Announcement{
		ID:       selectedID,
		Title:    strings.TrimSpace(in.Title),
		Content:  strings.TrimSpace(in.Content),
		Category: in.Category,
		IsActive: true,
	}

	if selectedID != "" {
		current, err := s.announcements.FindByID(ctx, selectedID)
		if err != nil {
			return nil, fmt.Errorf("find announcement %s: %w", selectedID, err)
		}
		a.IsActive = current.IsActive
		if a.Category == "" {
			a.Category = current.Category
		}
	}
	if a.Category == "" {
		a.Category = domain.AnnouncementGeneral
	}
	if in.IsActive != nil {
		a.IsActive = *in.IsActive
	}

	switch {
	case a.Title == "":
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	case a.Content == "":
		return nil, fmt.Errorf("%w: content is required", domain.ErrValidation)
	case !a.Category.Valid():
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, a.Category)
	}

	if selectedID == "" {
		if publisherID == "" {
			return nil, domain.ErrUnauthenticated
		}
		a.PublishedBy = publisherID
		if err := s.announcements.Create(ctx, a); err != nil {
			return nil, fmt.Errorf("create announcement: %w", err)
		}
		s.log.Info().Str("announcement_id", a.ID).Str("published_by", publisherID).Bool("is_active", a.IsActive).Msg("announcement published")
		return a, nil
	}

	updated, err := s.announcements.Update(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("update announcement %s: %w", selectedID, err)
	}
	s.log.Info().Str("announcement_id", selectedID).Msg("announcement updated")
	return updated, nil
}

func (s *AnnouncementService) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	if err := s.announcements.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete announcement %s: %w", id, err)
	}
	s.log.Info().Str("announcement_id", id).Msg("announcement deleted")
	return nil
}

// ToggleActive flips is_active. No other field changes.
func (s *AnnouncementService) ToggleActive(ctx context.Context, id string) (*domain.Announcement, error) {
	current, err := s.announcements.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find announcement %s: %w", id, err)
	}

	updated, err := s.announcements.SetActive(ctx, id, !current.IsActive)
	if err != nil {
		return nil, fmt.Errorf("toggle announcement %s: %w", id, err)
	}
	s.log.Info().Str("announcement_id", id).Bool("is_active", updated.IsActive).Msg("announcement toggled")
	return updated, nil
}
