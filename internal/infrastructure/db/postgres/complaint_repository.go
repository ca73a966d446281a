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

const complaintColumns = `id::text, citizen_id::text, title, description, category, location,
	status, priority, COALESCE(admin_response, ''), created_at, updated_at`

type ComplaintRepository struct {
	db Querier
}

func NewComplaintRepository(db Querier) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

func (r *ComplaintRepository) Create(ctx context.Context, c *domain.Complaint) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c.ID = uuid.NewString()
	err := r.db.QueryRow(ctx,
		`INSERT INTO complaints (id, citizen_id, title, description, category, location, status, priority)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at, updated_at`,
		c.ID, c.CitizenID, c.Title, c.Description, string(c.Category), c.Location, string(c.Status), string(c.Priority),
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert complaint: %w", err)
	}
	return nil
}

func (r *ComplaintRepository) List(ctx context.Context, filter ports.ComplaintFilter) ([]*domain.Complaint, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var (
		rows pgx.Rows
		err  error
	)
	if filter.CitizenID != "" {
		if !validID(filter.CitizenID) {
			return []*domain.Complaint{}, nil
		}
		rows, err = r.db.Query(ctx,
			`SELECT `+complaintColumns+` FROM complaints WHERE citizen_id = $1 ORDER BY created_at DESC`,
			filter.CitizenID)
	} else {
		rows, err = r.db.Query(ctx, `SELECT `+complaintColumns+` FROM complaints ORDER BY created_at DESC`)
	}
	if err != nil {
		return nil, fmt.Errorf("query complaints: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.Complaint, 0)
	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, fmt.Errorf("scan complaint: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func (r *ComplaintRepository) UpdateTriage(ctx context.Context, id string, status domain.ComplaintStatus, response string) (*domain.Complaint, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c, err := scanComplaint(r.db.QueryRow(ctx,
		`UPDATE complaints SET status = $2, admin_response = NULLIF($3, ''), updated_at = now()
		 WHERE id = $1 RETURNING `+complaintColumns,
		id, string(status), response))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update complaint: %w", err)
	}
	return c, nil
}

func scanComplaint(row scanner) (*domain.Complaint, error) {
	var (
		c                          domain.Complaint
		category, status, priority string
	)
	err := row.Scan(&c.ID, &c.CitizenID, &c.Title, &c.Description, &category, &c.Location,
		&status, &priority, &c.AdminResponse, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Category = domain.ComplaintCategory(category)
	c.Status = domain.ComplaintStatus(status)
	c.Priority = domain.Priority(priority)
	return &c, nil
}
