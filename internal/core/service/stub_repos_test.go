package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/AshuKumar2005/CityAcces/internal/core/domain"
	"github.com/AshuKumar2005/CityAcces/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories. They mirror what the real stores do: assign
// ids, stamp timestamps and honour the documented orderings.
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

type stubClock struct {
	mu  sync.Mutex
	now time.Time
	seq int
}

func newStubClock() *stubClock {
	return &stubClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *stubClock) tick() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Minute)
	return c.now
}

func (c *stubClock) nextID(prefix string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	return fmt.Sprintf("%s-%d", prefix, c.seq)
}

type stubIdentityRepo struct {
	mu      sync.Mutex
	byEmail map[string]*domain.Identity
	err     error
}

func newStubIdentityRepo() *stubIdentityRepo {
	return &stubIdentityRepo{byEmail: make(map[string]*domain.Identity)}
}

func (r *stubIdentityRepo) Create(_ context.Context, identity *domain.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if _, ok := r.byEmail[identity.Email]; ok {
		return domain.ErrEmailTaken
	}
	clone := *identity
	r.byEmail[identity.Email] = &clone
	return nil
}

func (r *stubIdentityRepo) FindByEmail(_ context.Context, email string) (*domain.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	identity, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *identity
	return &clone, nil
}

func (r *stubIdentityRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for email, identity := range r.byEmail {
		if identity.ID == id {
			delete(r.byEmail, email)
			return nil
		}
	}
	return domain.ErrNotFound
}

type stubProfileRepo struct {
	mu        sync.Mutex
	byID      map[string]*domain.Profile
	createErr error
	findErr   error
	countErr  error
	lastCtx   context.Context
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{byID: make(map[string]*domain.Profile)}
}

func (r *stubProfileRepo) Create(_ context.Context, p *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubProfileRepo) FindByID(ctx context.Context, id string) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastCtx = ctx
	if r.findErr != nil {
		return nil, r.findErr
	}
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProfileRepo) CountByRole(_ context.Context, role domain.Role) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.countErr != nil {
		return 0, r.countErr
	}
	var n int64
	for _, p := range r.byID {
		if domain.ParseRole(string(p.Role)) == role {
			n++
		}
	}
	return n, nil
}

type stubComplaintRepo struct {
	mu    sync.Mutex
	clock *stubClock
	rows  map[string]*domain.Complaint
	err   error
}

func newStubComplaintRepo(clock *stubClock) *stubComplaintRepo {
	return &stubComplaintRepo{clock: clock, rows: make(map[string]*domain.Complaint)}
}

func (r *stubComplaintRepo) Create(_ context.Context, c *domain.Complaint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	c.ID = r.clock.nextID("complaint")
	c.CreatedAt = r.clock.tick()
	c.UpdatedAt = c.CreatedAt
	clone := *c
	r.rows[c.ID] = &clone
	return nil
}

func (r *stubComplaintRepo) List(_ context.Context, f ports.ComplaintFilter) ([]*domain.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := []*domain.Complaint{}
	for _, c := range r.rows {
		if f.CitizenID != "" && c.CitizenID != f.CitizenID {
			continue
		}
		clone := *c
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubComplaintRepo) UpdateTriage(_ context.Context, id string, status domain.ComplaintStatus, response string) (*domain.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c.Status = status
	c.AdminResponse = response
	c.UpdatedAt = r.clock.tick()
	clone := *c
	return &clone, nil
}

type stubAmenityRepo struct {
	mu    sync.Mutex
	clock *stubClock
	rows  map[string]*domain.Amenity
	err   error
}

func newStubAmenityRepo(clock *stubClock) *stubAmenityRepo {
	return &stubAmenityRepo{clock: clock, rows: make(map[string]*domain.Amenity)}
}

func (r *stubAmenityRepo) Create(_ context.Context, a *domain.Amenity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = r.clock.nextID("amenity")
	a.CreatedAt = r.clock.tick()
	a.UpdatedAt = a.CreatedAt
	clone := *a
	r.rows[a.ID] = &clone
	return nil
}

func (r *stubAmenityRepo) List(_ context.Context) ([]*domain.Amenity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Amenity{}
	for _, a := range r.rows {
		clone := *a
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name) })
	return out, nil
}

func (r *stubAmenityRepo) Update(_ context.Context, a *domain.Amenity) (*domain.Amenity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.rows[a.ID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	updated := *a
	updated.CreatedAt = current.CreatedAt
	updated.UpdatedAt = r.clock.tick()
	r.rows[a.ID] = &updated
	clone := updated
	return &clone, nil
}

func (r *stubAmenityRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *stubAmenityRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.rows)), nil
}

type stubAnnouncementRepo struct {
	mu    sync.Mutex
	clock *stubClock
	rows  map[string]*domain.Announcement
}

func newStubAnnouncementRepo(clock *stubClock) *stubAnnouncementRepo {
	return &stubAnnouncementRepo{clock: clock, rows: make(map[string]*domain.Announcement)}
}

func (r *stubAnnouncementRepo) Create(_ context.Context, a *domain.Announcement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = r.clock.nextID("announcement")
	a.CreatedAt = r.clock.tick()
	a.UpdatedAt = a.CreatedAt
	clone := *a
	r.rows[a.ID] = &clone
	return nil
}

func (r *stubAnnouncementRepo) FindByID(_ context.Context, id string) (*domain.Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAnnouncementRepo) List(_ context.Context, f ports.AnnouncementFilter) ([]*domain.Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Announcement{}
	for _, a := range r.rows {
		if f.ActiveOnly && !a.IsActive {
			continue
		}
		clone := *a
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubAnnouncementRepo) Update(_ context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.rows[a.ID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	current.Title = a.Title
	current.Content = a.Content
	current.Category = a.Category
	current.IsActive = a.IsActive
	current.UpdatedAt = r.clock.tick()
	clone := *current
	return &clone, nil
}

func (r *stubAnnouncementRepo) SetActive(_ context.Context, id string, active bool) (*domain.Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	current.IsActive = active
	clone := *current
	return &clone, nil
}

func (r *stubAnnouncementRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *stubAnnouncementRepo) Count(_ context.Context, f ports.AnnouncementFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, a := range r.rows {
		if f.ActiveOnly && !a.IsActive {
			continue
		}
		n++
	}
	return n, nil
}

type stubRevocations struct {
	mu      sync.Mutex
	revoked map[string]time.Duration
	err     error
}

func newStubRevocations() *stubRevocations {
	return &stubRevocations{revoked: make(map[string]time.Duration)}
}

func (s *stubRevocations) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.revoked[tokenID] = ttl
	return nil
}

func (s *stubRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return false, s.err
	}
	_, ok := s.revoked[tokenID]
	return ok, nil
}

// ---------------------------------------------------------------------------
// Fixture
// ---------------------------------------------------------------------------

type fixture struct {
	clock         *stubClock
	identities    *stubIdentityRepo
	profiles      *stubProfileRepo
	complaints    *stubComplaintRepo
	amenities     *stubAmenityRepo
	announcements *stubAnnouncementRepo
	revocations   *stubRevocations
}

func newFixture() *fixture {
	clock := newStubClock()
	return &fixture{
		clock:         clock,
		identities:    newStubIdentityRepo(),
		profiles:      newStubProfileRepo(),
		complaints:    newStubComplaintRepo(clock),
		amenities:     newStubAmenityRepo(clock),
		announcements: newStubAnnouncementRepo(clock),
		revocations:   newStubRevocations(),
	}
}

func (f *fixture) repos() *ports.Repositories {
	return &ports.Repositories{
		Identities:    f.identities,
		Profiles:      f.profiles,
		Complaints:    f.complaints,
		Amenities:     f.amenities,
		Announcements: f.announcements,
	}
}
