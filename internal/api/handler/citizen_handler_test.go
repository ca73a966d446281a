package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AshuKumar2005/CityAcces/internal/core/domain"
	"github.com/AshuKumar2005/CityAcces/internal/core/ports"
)

func TestCitizenHandler_SubmitComplaint_UsesSessionOwner(t *testing.T) {
	e := newTestEcho()
	var gotCitizen string
	var gotInput ports.SubmitComplaintInput
	h := NewCitizenHandler(&stubCitizenService{
		submitFn: func(ctx context.Context, citizenID string, in ports.SubmitComplaintInput) (*domain.Complaint, error) {
			gotCitizen, gotInput = citizenID, in
			return &domain.Complaint{
				ID: "c1", CitizenID: citizenID, Title: in.Title, Category: in.Category,
				Status: domain.StatusPending, Priority: domain.PriorityMedium,
			}, nil
		},
	})

	body := `{"title":"Pothole","description":"Deep pothole","category":"infrastructure","location":"Main St",` +
		`"status":"resolved","citizen_id":"someone-else"}`
	c, rec := newRequest(e, http.MethodPost, "/v1/complaints", body, domain.RoleCitizen)
	require.NoError(t, h.SubmitComplaint(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "user-1", gotCitizen)
	assert.Equal(t, domain.CategoryInfrastructure, gotInput.Category)
	assert.Empty(t, gotInput.Priority)

	var resp domain.Complaint
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.StatusPending, resp.Status)
	assert.Equal(t, "user-1", resp.CitizenID)
}

func TestCitizenHandler_SubmitComplaint_Validation(t *testing.T) {
	e := newTestEcho()
	h := NewCitizenHandler(&stubCitizenService{
		submitFn: func(ctx context.Context, citizenID string, in ports.SubmitComplaintInput) (*domain.Complaint, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	})

	tests := map[string]string{
		"blank title":      `{"title":" ","description":"d","category":"water","location":"x"}`,
		"unknown category": `{"title":"t","description":"d","category":"noise","location":"x"}`,
		"unknown priority": `{"title":"t","description":"d","category":"water","location":"x","priority":"urgent"}`,
		"missing location": `{"title":"t","description":"d","category":"water"}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			c, _ := newRequest(e, http.MethodPost, "/v1/complaints", body, domain.RoleCitizen)
			err := h.SubmitComplaint(c)
			assert.True(t, errors.Is(err, domain.ErrValidation), "got %v", err)
		})
	}
}

func TestCitizenHandler_ListComplaints(t *testing.T) {
	e := newTestEcho()
	h := NewCitizenHandler(&stubCitizenService{
		listOwnFn: func(ctx context.Context, citizenID string) ([]*domain.Complaint, error) {
			assert.Equal(t, "user-1", citizenID)
			return nil, nil
		},
	})

	c, rec := newRequest(e, http.MethodGet, "/v1/complaints", "", domain.RoleCitizen)
	require.NoError(t, h.ListComplaints(c))
	assert.JSONEq(t, `{"items":[],"total":0}`, rec.Body.String())
}

func TestCitizenHandler_ReadOnlyLists(t *testing.T) {
	e := newTestEcho()
	h := NewCitizenHandler(&stubCitizenService{
		amenities:     []*domain.Amenity{{ID: "a1", Name: "Central Library", Type: domain.AmenityLibrary}},
		announcements: []*domain.Announcement{{ID: "n1", Title: "Water cut", IsActive: true}},
	})

	c, rec := newRequest(e, http.MethodGet, "/v1/amenities", "", domain.RoleCitizen)
	require.NoError(t, h.ListAmenities(c))
	var amenities listResponse[domain.Amenity]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &amenities))
	assert.Equal(t, 1, amenities.Total)
	assert.Equal(t, "Central Library", amenities.Items[0].Name)

	c, rec = newRequest(e, http.MethodGet, "/v1/announcements", "", domain.RoleCitizen)
	require.NoError(t, h.ListAnnouncements(c))
	var announcements listResponse[domain.Announcement]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &announcements))
	assert.Equal(t, "Water cut", announcements.Items[0].Title)
}

func TestCitizenHandler_ListAnnouncementsError(t *testing.T) {
	e := newTestEcho()
	boom := errors.New("store offline")
	h := NewCitizenHandler(&stubCitizenService{announcementErr: boom})

	c, _ := newRequest(e, http.MethodGet, "/v1/announcements", "", domain.RoleCitizen)
	assert.ErrorIs(t, h.ListAnnouncements(c), boom)
}
