package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/AshuKumar2005/CityAcces/internal/core/domain"
)

type ProfileRepository struct {
	db Querier
}

func NewProfileRepository(db Querier) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, p *domain.Profile) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err := r.db.QueryRow(ctx,
		`INSERT INTO profiles (id, email, full_name, role, phone)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		 RETURNING created_at, updated_at`,
		p.ID, p.Email, p.FullName, string(p.Role), p.Phone,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*domain.Profile, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var (
		p    domain.Profile
		role string
	)
	err := r.db.QueryRow(ctx,
		`SELECT id::text, email, full_name, role, COALESCE(phone, ''), created_at, updated_at
		 FROM profiles WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Email, &p.FullName, &role, &p.Phone, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	p.Role = domain.ParseRole(role)
	return &p, nil
}

func (r *ProfileRepository) CountByRole(ctx context.Context, role domain.Role) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var n int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM profiles WHERE role = $1`, string(role)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count profiles: %w", err)
	}
	return n, nil
}
