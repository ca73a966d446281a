package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/AshuKumar2005/CityAcces/internal/core/domain"
	"github.com/AshuKumar2005/CityAcces/internal/core/ports"
)

const announcementColumns = `id::text, title, content, category, published_by::text, is_active, created_at, updated_at`

type AnnouncementRepository struct {
	db Querier
}

func NewAnnouncementRepository(db Querier) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

func (r *AnnouncementRepository) Create(ctx context.Context, a *domain.Announcement) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	a.ID = uuid.NewString()
	err := r.db.QueryRow(ctx,
		`INSERT INTO announcements (id, title, content, category, published_by, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at`,
		a.ID, a.Title, a.Content, string(a.Category), a.PublishedBy, a.IsActive,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert announcement: %w", err)
	}
	return nil
}

func (r *AnnouncementRepository) FindByID(ctx context.Context, id string) (*domain.Announcement, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.one(r.db.QueryRow(ctx, `SELECT `+announcementColumns+` FROM announcements WHERE id = $1`, id))
}

func (r *AnnouncementRepository) List(ctx context.Context, filter ports.AnnouncementFilter) ([]*domain.Announcement, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `SELECT ` + announcementColumns + ` FROM announcements ORDER BY created_at DESC`
	if filter.ActiveOnly {
		query = `SELECT ` + announcementColumns + ` FROM announcements WHERE is_active = true ORDER BY created_at DESC`
	}

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query announcements: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.Announcement, 0)
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan announcement: %w", err)
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (r *AnnouncementRepository) Update(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	if !validID(a.ID) {
		return nil, domain.ErrNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.one(r.db.QueryRow(ctx,
		`UPDATE announcements SET title = $2, content = $3, category = $4, is_active = $5, updated_at = now()
		 WHERE id = $1 RETURNING `+announcementColumns,
		a.ID, a.Title, a.Content, string(a.Category), a.IsActive))
}

// SetActive writes is_active alone.
func (r *AnnouncementRepository) SetActive(ctx context.Context, id string, active bool) (*domain.Announcement, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.one(r.db.QueryRow(ctx,
		`UPDATE announcements SET is_active = $2 WHERE id = $1 RETURNING `+announcementColumns,
		id, active))
}

func (r *AnnouncementRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete announcement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AnnouncementRepository) Count(ctx context.Context, filter ports.AnnouncementFilter) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := `SELECT count(*) FROM announcements`
	if filter.ActiveOnly {
		query = `SELECT count(*) FROM announcements WHERE is_active = true`
	}
	var n int64
	if err := r.db.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count announcements: %w", err)
	}
	return n, nil
}

func (r *AnnouncementRepository) one(row pgx.Row) (*domain.Announcement, error) {
	a, err := scanAnnouncement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("announcement row: %w", err)
	}
	return a, nil
}

func scanAnnouncement(row scanner) (*domain.Announcement, error) {
	var (
		a        domain.Announcement
		category string
	)
	err := row.Scan(&a.ID, &a.Title, &a.Content, &category, &a.PublishedBy, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	a.Category = domain.AnnouncementCategory(category)
	return &a, nil
}
