package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/AshuKumar2005/CityAcces/internal/api/middleware"
	"github.com/AshuKumar2005/CityAcces/internal/core/domain"
	"github.com/AshuKumar2005/CityAcces/internal/core/ports"
)

type stubSessionService struct {
	signUpFn  func(ctx context.Context, in ports.SignUpInput) (*domain.Profile, error)
	signInFn  func(ctx context.Context, email, password string) (*ports.SignInResult, error)
	signOutFn func(ctx context.Context, sess *domain.Session) error
}

func (s *stubSessionService) SignUp(ctx context.Context, in ports.SignUpInput) (*domain.Profile, error) {
	return s.signUpFn(ctx, in)
}

func (s *stubSessionService) SignIn(ctx context.Context, email, password string) (*ports.SignInResult, error) {
	return s.signInFn(ctx, email, password)
}

func (s *stubSessionService) Open(ctx context.Context, token string) (*domain.Session, error) {
	return nil, domain.ErrUnauthenticated
}

func (s *stubSessionService) SignOut(ctx context.Context, sess *domain.Session) error {
	return s.signOutFn(ctx, sess)
}

type stubCitizenService struct {
	submitFn        func(ctx context.Context, citizenID string, in ports.SubmitComplaintInput) (*domain.Complaint, error)
	listOwnFn       func(ctx context.Context, citizenID string) ([]*domain.Complaint, error)
	amenities       []*domain.Amenity
	announcements   []*domain.Announcement
	announcementErr error
}

func (s *stubCitizenService) SubmitComplaint(ctx context.Context, citizenID string, in ports.SubmitComplaintInput) (*domain.Complaint, error) {
	return s.submitFn(ctx, citizenID, in)
}

func (s *stubCitizenService) ListOwnComplaints(ctx context.Context, citizenID string) ([]*domain.Complaint, error) {
	return s.listOwnFn(ctx, citizenID)
}

func (s *stubCitizenService) ListAmenities(context.Context) ([]*domain.Amenity, error) {
	return s.amenities, nil
}

func (s *stubCitizenService) ListActiveAnnouncements(context.Context) ([]*domain.Announcement, error) {
	return s.announcements, s.announcementErr
}

type stubTriageService struct {
	listFn   func(ctx context.Context) ([]*domain.Complaint, error)
	triageFn func(ctx context.Context, id string, in ports.TriageInput) (*domain.Complaint, error)
}

func (s *stubTriageService) ListAll(ctx context.Context) ([]*domain.Complaint, error) {
	return s.listFn(ctx)
}

func (s *stubTriageService) Triage(ctx context.Context, id string, in ports.TriageInput) (*domain.Complaint, error) {
	return s.triageFn(ctx, id, in)
}

type stubAmenityService struct {
	saveFn   func(ctx context.Context, selectedID string, in ports.AmenityInput) (*domain.Amenity, error)
	deleteFn func(ctx context.Context, id string, confirmed bool) error
}

func (s *stubAmenityService) List(context.Context) ([]*domain.Amenity, error) {
	return nil, nil
}

func (s *stubAmenityService) Save(ctx context.Context, selectedID string, in ports.AmenityInput) (*domain.Amenity, error) {
	return s.saveFn(ctx, selectedID, in)
}

func (s *stubAmenityService) Delete(ctx context.Context, id string, confirmed bool) error {
	return s.deleteFn(ctx, id, confirmed)
}

type stubAnnouncementService struct {
	saveFn   func(ctx context.Context, selectedID, publisherID string, in ports.AnnouncementInput) (*domain.Announcement, error)
	deleteFn func(ctx context.Context, id string, confirmed bool) error
	toggleFn func(ctx context.Context, id string) (*domain.Announcement, error)
}

func (s *stubAnnouncementService) List(context.Context) ([]*domain.Announcement, error) {
	return nil, nil
}

func (s *stubAnnouncementService) Save(ctx context.Context, selectedID, publisherID string, in ports.AnnouncementInput) (*domain.Announcement, error) {
	return s.saveFn(ctx, selectedID, publisherID, in)
}

func (s *stubAnnouncementService) Delete(ctx context.Context, id string, confirmed bool) error {
	return s.deleteFn(ctx, id, confirmed)
}

func (s *stubAnnouncementService) ToggleActive(ctx context.Context, id string) (*domain.Announcement, error) {
	return s.toggleFn(ctx, id)
}

type stubStatsService struct {
	stats *ports.DashboardStats
	err   error
}

func (s *stubStatsService) Dashboard(context.Context) (*ports.DashboardStats, error) {
	return s.stats, s.err
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newRequest builds an echo.Context, optionally bound to a session for role.
func newRequest(e *echo.Echo, method, target, body string, role domain.Role) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if role != "" {
		sess := domain.NewSession(context.Background(), domain.Identity{ID: "user-1", Email: "user@city.test"}, "jti-1", time.Now().Add(time.Hour))
		sess.Profile = &domain.Profile{ID: "user-1", Email: "user@city.test", FullName: "Test User", Role: role}
		c.Set(middleware.SessionKey, sess)
	}
	return c, rec
}
