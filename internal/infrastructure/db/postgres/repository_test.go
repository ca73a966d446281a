package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AshuKumar2005/CityAcces/internal/core/domain"
	"github.com/AshuKumar2005/CityAcces/internal/core/ports"
)

const (
	citizenA   = "6f1c1f0e-7c1b-4a8e-9d55-0a1b2c3d4e5f"
	complaint1 = "0e5b5b9a-2f8a-4c3e-8d1e-1a2b3c4d5e6f"
	amenity1   = "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"
	notice1    = "1b2c3d4e-5f6a-4b7c-8d9e-0f1a2b3c4d5e"
	admin1     = "2c3d4e5f-6a7b-4c8d-9e0f-1a2b3c4d5e6f"
)

var ts = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

var complaintCols = []string{"id", "citizen_id", "title", "description", "category", "location", "status", "priority", "admin_response", "created_at", "updated_at"}

func TestIdentityRepository_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewIdentityRepository(mock)

	mock.ExpectQuery(`INSERT INTO auth_users`).
		WithArgs(citizenA, "ana@example.com", "hash").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(ts))

	identity := &domain.Identity{ID: citizenA, Email: "ana@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(context.Background(), identity))
	assert.Equal(t, ts, identity.CreatedAt)
}

func TestIdentityRepository_CreateDuplicate(t *testing.T) {
	mock := newMock(t)
	repo := NewIdentityRepository(mock)

	mock.ExpectQuery(`INSERT INTO auth_users`).
		WithArgs(citizenA, "ana@example.com", "hash").
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	err := repo.Create(context.Background(), &domain.Identity{ID: citizenA, Email: "ana@example.com", PasswordHash: "hash"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestIdentityRepository_Delete(t *testing.T) {
	mock := newMock(t)
	repo := NewIdentityRepository(mock)

	mock.ExpectExec(`DELETE FROM auth_users WHERE id = \$1`).
		WithArgs(citizenA).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.Delete(context.Background(), citizenA))
	assert.ErrorIs(t, repo.Delete(context.Background(), "not-a-uuid"), domain.ErrNotFound)
}

func TestIdentityRepository_FindByEmailMissing(t *testing.T) {
	mock := newMock(t)
	repo := NewIdentityRepository(mock)

	mock.ExpectQuery(`SELECT .+ FROM auth_users WHERE email = \$1`).
		WithArgs("ghost@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "password_hash", "created_at"}))

	_, err := repo.FindByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProfileRepository_FindByID(t *testing.T) {
	mock := newMock(t)
	repo := NewProfileRepository(mock)

	mock.ExpectQuery(`SELECT .+ FROM profiles WHERE id = \$1`).
		WithArgs(admin1).
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "full_name", "role", "phone", "created_at", "updated_at"}).
			AddRow(admin1, "boss@city.gov", "Boss", "admin", "", ts, ts))

	p, err := repo.FindByID(context.Background(), admin1)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, p.Role)
	assert.True(t, p.IsAdmin())
}

func TestProfileRepository_FindByIDRejectsJunkID(t *testing.T) {
	repo := NewProfileRepository(newMock(t))

	_, err := repo.FindByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProfileRepository_CountByRole(t *testing.T) {
	mock := newMock(t)
	repo := NewProfileRepository(mock)

	mock.ExpectQuery(`SELECT count\(\*\) FROM profiles WHERE role = \$1`).
		WithArgs("citizen").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(12)))

	n, err := repo.CountByRole(context.Background(), domain.RoleCitizen)
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)
}

func TestComplaintRepository_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewComplaintRepository(mock)

	mock.ExpectQuery(`INSERT INTO complaints`).
		WithArgs(pgxmock.AnyArg(), citizenA, "Pothole", "Large pothole", "infrastructure", "Main St", "pending", "high").
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(ts, ts))

	c := &domain.Complaint{
		CitizenID:   citizenA,
		Title:       "Pothole",
		Description: "Large pothole",
		Category:    domain.CategoryInfrastructure,
		Location:    "Main St",
		Status:      domain.StatusPending,
		Priority:    domain.PriorityHigh,
	}
	require.NoError(t, repo.Create(context.Background(), c))
	assert.True(t, validID(c.ID))
	assert.Equal(t, ts, c.CreatedAt)
}

func TestComplaintRepository_ListScopedToCitizen(t *testing.T) {
	mock := newMock(t)
	repo := NewComplaintRepository(mock)

	mock.ExpectQuery(`FROM complaints WHERE citizen_id = \$1 ORDER BY created_at DESC`).
		WithArgs(citizenA).
		WillReturnRows(pgxmock.NewRows(complaintCols).
			AddRow(complaint1, citizenA, "Pothole", "Large pothole", "infrastructure", "Main St", "resolved", "high", "Fixed", ts, ts.Add(time.Hour)))

	items, err := repo.List(context.Background(), ports.ComplaintFilter{CitizenID: citizenA})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, domain.StatusResolved, items[0].Status)
	assert.Equal(t, "Fixed", items[0].AdminResponse)
	assert.Equal(t, citizenA, items[0].CitizenID)
}

func TestComplaintRepository_ListAll(t *testing.T) {
	mock := newMock(t)
	repo := NewComplaintRepository(mock)

	mock.ExpectQuery(`FROM complaints ORDER BY created_at DESC`).
		WillReturnRows(pgxmock.NewRows(complaintCols))

	items, err := repo.List(context.Background(), ports.ComplaintFilter{})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestComplaintRepository_UpdateTriage(t *testing.T) {
	mock := newMock(t)
	repo := NewComplaintRepository(mock)

	mock.ExpectQuery(`UPDATE complaints SET status = \$2, admin_response = NULLIF\(\$3, ''\), updated_at = now\(\)`).
		WithArgs(complaint1, "resolved", "Fixed").
		WillReturnRows(pgxmock.NewRows(complaintCols).
			AddRow(complaint1, citizenA, "Pothole", "Large pothole", "infrastructure", "Main St", "resolved", "high", "Fixed", ts, ts.Add(time.Minute)))

	c, err := repo.UpdateTriage(context.Background(), complaint1, domain.StatusResolved, "Fixed")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusResolved, c.Status)
	assert.True(t, c.UpdatedAt.After(c.CreatedAt))
}

func TestComplaintRepository_UpdateTriageMissing(t *testing.T) {
	mock := newMock(t)
	repo := NewComplaintRepository(mock)

	mock.ExpectQuery(`UPDATE complaints`).
		WithArgs(complaint1, "rejected", "").
		WillReturnRows(pgxmock.NewRows(complaintCols))

	_, err := repo.UpdateTriage(context.Background(), complaint1, domain.StatusRejected, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAmenityRepository_CreateStoresEmptyOptionalsAsNull(t *testing.T) {
	mock := newMock(t)
	repo := NewAmenityRepository(mock)

	mock.ExpectQuery(`INSERT INTO amenities .+ NULLIF\(\$5, ''\), NULLIF\(\$6, ''\), NULLIF\(\$7, ''\)`).
		WithArgs(pgxmock.AnyArg(), "City Hospital", "hospital", "1 Health Ave", "555-0100", "", "").
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(ts, ts))

	a := &domain.Amenity{Name: "City Hospital", Type: domain.AmenityHospital, Address: "1 Health Ave", Contact: "555-0100"}
	require.NoError(t, repo.Create(context.Background(), a))
	assert.NotEmpty(t, a.ID)
}

func TestAmenityRepository_ListOrderedByName(t *testing.T) {
	mock := newMock(t)
	repo := NewAmenityRepository(mock)

	cols := []string{"id", "name", "type", "address", "contact", "operating_hours", "description", "created_at", "updated_at"}
	mock.ExpectQuery(`FROM amenities ORDER BY name ASC`).
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(amenity1, "Central Library", "library", "2 Book Rd", "", "9-5", "", ts, ts))

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, domain.AmenityLibrary, items[0].Type)
	assert.Equal(t, "9-5", items[0].OperatingHours)
}

func TestAmenityRepository_Delete(t *testing.T) {
	mock := newMock(t)
	repo := NewAmenityRepository(mock)

	mock.ExpectExec(`DELETE FROM amenities WHERE id = \$1`).
		WithArgs(amenity1).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM amenities WHERE id = \$1`).
		WithArgs(amenity1).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, repo.Delete(context.Background(), amenity1))
	assert.ErrorIs(t, repo.Delete(context.Background(), amenity1), domain.ErrNotFound)
}

func TestAnnouncementRepository_SetActiveTouchesOnlyFlag(t *testing.T) {
	mock := newMock(t)
	repo := NewAnnouncementRepository(mock)

	cols := []string{"id", "title", "content", "category", "published_by", "is_active", "created_at", "updated_at"}
	mock.ExpectQuery(`UPDATE announcements SET is_active = \$2 WHERE id = \$1 RETURNING`).
		WithArgs(notice1, false).
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(notice1, "Water outage", "Tue 9-12", "maintenance", admin1, false, ts, ts))

	a, err := repo.SetActive(context.Background(), notice1, false)
	require.NoError(t, err)
	assert.False(t, a.IsActive)
	assert.Equal(t, ts, a.UpdatedAt)
}

func TestAnnouncementRepository_UpdateWritesActiveFlag(t *testing.T) {
	mock := newMock(t)
	repo := NewAnnouncementRepository(mock)

	cols := []string{"id", "title", "content", "category", "published_by", "is_active", "created_at", "updated_at"}
	mock.ExpectQuery(`UPDATE announcements SET title = \$2, content = \$3, category = \$4, is_active = \$5, updated_at = now\(\)`).
		WithArgs(notice1, "Parade", "Moved to Sunday", "event", true).
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(notice1, "Parade", "Moved to Sunday", "event", admin1, true, ts, ts.Add(time.Hour)))

	a, err := repo.Update(context.Background(), &domain.Announcement{
		ID: notice1, Title: "Parade", Content: "Moved to Sunday", Category: domain.AnnouncementEvent, IsActive: true,
	})
	require.NoError(t, err)
	assert.True(t, a.IsActive)
	assert.Equal(t, admin1, a.PublishedBy)
}

func TestAnnouncementRepository_ListActiveOnly(t *testing.T) {
	mock := newMock(t)
	repo := NewAnnouncementRepository(mock)

	cols := []string{"id", "title", "content", "category", "published_by", "is_active", "created_at", "updated_at"}
	mock.ExpectQuery(`FROM announcements WHERE is_active = true ORDER BY created_at DESC`).
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(notice1, "Parade", "Saturday", "event", admin1, true, ts, ts))

	items, err := repo.List(context.Background(), ports.AnnouncementFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, domain.AnnouncementEvent, items[0].Category)
}

func TestAnnouncementRepository_CountActive(t *testing.T) {
	mock := newMock(t)
	repo := NewAnnouncementRepository(mock)

	mock.ExpectQuery(`SELECT count\(\*\) FROM announcements WHERE is_active = true`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(4)))

	n, err := repo.Count(context.Background(), ports.AnnouncementFilter{ActiveOnly: true})
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestAnnouncementRepository_FindMissing(t *testing.T) {
	mock := newMock(t)
	repo := NewAnnouncementRepository(mock)

	mock.ExpectQuery(`FROM announcements WHERE id = \$1`).
		WithArgs(notice1).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(context.Background(), notice1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
