package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/AshuKumar2005/CityAcces/internal/core/domain"
)

const amenityColumns = `id::text, name, type, address, COALESCE(contact, ''),
	COALESCE(operating_hours, ''), COALESCE(description, ''), created_at, updated_at`

type AmenityRepository struct {
	db Querier
}

func NewAmenityRepository(db Querier) *AmenityRepository {
	return &AmenityRepository{db: db}
}

// Create inserts an amenity; empty optional fields become NULL.
func (r *AmenityRepository) Create(ctx context.Context, a *domain.Amenity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	a.ID = uuid.NewString()
	err := r.db.QueryRow(ctx,
		`INSERT INTO amenities (id, name, type, address, contact, operating_hours, description)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''))
		 RETURNING created_at, updated_at`,
		a.ID, a.Name, string(a.Type), a.Address, a.Contact, a.OperatingHours, a.Description,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert amenity: %w", err)
	}
	return nil
}

func (r *AmenityRepository) List(ctx context.Context) ([]*domain.Amenity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT `+amenityColumns+` FROM amenities ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("query amenities: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.Amenity, 0)
	for rows.Next() {
		a, err := scanAmenity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan amenity: %w", err)
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (r *AmenityRepository) Update(ctx context.Context, a *domain.Amenity) (*domain.Amenity, error) {
	if !validID(a.ID) {
		return nil, domain.ErrNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	out, err := scanAmenity(r.db.QueryRow(ctx,
		`UPDATE amenities SET name = $2, type = $3, address = $4, contact = NULLIF($5, ''),
		 operating_hours = NULLIF($6, ''), description = NULLIF($7, ''), updated_at = now()
		 WHERE id = $1 RETURNING `+amenityColumns,
		a.ID, a.Name, string(a.Type), a.Address, a.Contact, a.OperatingHours, a.Description))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update amenity: %w", err)
	}
	return out, nil
}

func (r *AmenityRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM amenities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete amenity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AmenityRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var n int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM amenities`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count amenities: %w", err)
	}
	return n, nil
}

func scanAmenity(row scanner) (*domain.Amenity, error) {
	var (
		a    domain.Amenity
		kind string
	)
	err := row.Scan(&a.ID, &a.Name, &kind, &a.Address, &a.Contact, &a.OperatingHours,
		&a.Description, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	a.Type = domain.AmenityType(kind)
	return &a, nil
}
