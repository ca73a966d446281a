package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/AshuKumar2005/CityAcces/internal/core/domain"
	"github.com/AshuKumar2005/CityAcces/internal/core/ports"
)

// AmenityService implements the admin amenity manager.
type AmenityService struct {
	amenities ports.AmenityRepository
	log       zerolog.Logger
}

func NewAmenityService(amenities ports.AmenityRepository, log zerolog.Logger) *AmenityService {
	return &AmenityService{amenities: amenities, log: log}
}

func (s *AmenityService) List(ctx context.Context) ([]*domain.Amenity, error) {
	items, err := s.amenities.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list amenities: %w", err)
	}
	return items, nil
}

// Save creates a new amenity when selectedID is empty, otherwise it updates
// the selected one. It never does both.
func (s *AmenityService) Save(ctx context.Context, selectedID string, in ports.AmenityInput) (*domain.Amenity, error) {
	a := &domain.Amenity{
		ID:             selectedID,
		Name:           strings.TrimSpace(in.Name),
		Type:           in.Type,
		Address:        strings.TrimSpace(in.Address),
		Contact:        strings.TrimSpace(in.Contact),
		OperatingHours: strings.TrimSpace(in.OperatingHours),
		Description:    strings.TrimSpace(in.Description),
	}
	switch {
	case a.Name == "":
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	case a.Address == "":
		return nil, fmt.Errorf("%w: address is required", domain.ErrValidation)
	case !a.Type.Valid():
		return nil, fmt.Errorf("%w: unknown amenity type %q", domain.ErrValidation, a.Type)
	}

	if selectedID == "" {
		if err := s.amenities.Create(ctx, a); err != nil {
			return nil, fmt.Errorf("create amenity: %w", err)
		}
		s.log.Info().Str("amenity_id", a.ID).Msg("amenity created")
		return a, nil
	}

	updated, err := s.amenities.Update(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("update amenity %s: %w", selectedID, err)
	}
	s.log.Info().Str("amenity_id", selectedID).Msg("amenity updated")
	return updated, nil
}

// Delete removes an amenity once the caller has confirmed.
func (s *AmenityService) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	if err := s.amenities.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete amenity %s: %w", id, err)
	}
	s.log.Info().Str("amenity_id", id).Msg("amenity deleted")
	return nil
}
