package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/AshuKumar2005/CityAcces/internal/core/domain"
	"github.com/AshuKumar2005/CityAcces/internal/core/ports"
)

// StatsService computes the admin dashboard counters. The four lookups run
// concurrently and any failure fails the whole result.
type StatsService struct {
	repos *ports.Repositories
}

func NewStatsService(repos *ports.Repositories) *StatsService {
	return &StatsService{repos: repos}
}

func (s *StatsService) Dashboard(ctx context.Context) (*ports.DashboardStats, error) {
	var (
		complaints []*domain.Complaint
		citizens   int64
		amenities  int64
		active     int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		complaints, err = s.repos.Complaints.List(gctx, ports.ComplaintFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		citizens, err = s.repos.Profiles.CountByRole(gctx, domain.RoleCitizen)
		return err
	})
	g.Go(func() error {
		var err error
		amenities, err = s.repos.Amenities.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		active, err = s.repos.Announcements.Count(gctx, ports.AnnouncementFilter{ActiveOnly: true})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	stats := &ports.DashboardStats{
		TotalComplaints:     len(complaints),
		TotalCitizens:       citizens,
		TotalAmenities:      amenities,
		ActiveAnnouncements: active,
	}
	for _, c := range complaints {
		switch c.Status {
		case domain.StatusPending:
			stats.PendingComplaints++
		case domain.StatusInProgress:
			stats.InProgressComplaints++
		case domain.StatusResolved:
			stats.ResolvedComplaints++
		}
	}
	return stats, nil
}
