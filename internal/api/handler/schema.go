package handler

import (
	"time"

	"github.com/AshuKumar2005/CityAcces/internal/core/domain"
	"github.com/AshuKumar2005/CityAcces/internal/core/ports"
)

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"notblank"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,max=32"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
	View      domain.View      `json:"view"`
	Identity  *identityPayload `json:"identity"`
	Profile   *domain.Profile  `json:"profile,omitempty"`
}

// sessionResponse is what the root router hands the client: the view to
// render plus the identity and profile when signed in.
type sessionResponse struct {
	View     domain.View      `json:"view"`
	Identity *identityPayload `json:"identity,omitempty"`
	Profile  *domain.Profile  `json:"profile,omitempty"`
}

type identityPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type submitComplaintRequest struct {
	Title       string `json:"title" validate:"notblank"`
	Description string `json:"description" validate:"notblank"`
	Category    string `json:"category" validate:"required,oneof=infrastructure sanitation traffic electricity water other"`
	Location    string `json:"location" validate:"notblank"`
	Priority    string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
}

func (r submitComplaintRequest) toInput() ports.SubmitComplaintInput {
	return ports.SubmitComplaintInput{
		Title:       r.Title,
		Description: r.Description,
		Category:    domain.ComplaintCategory(r.Category),
		Location:    r.Location,
		Priority:    domain.Priority(r.Priority),
	}
}

type triageRequest struct {
	Status        string `json:"status" validate:"required,oneof=pending in_progress resolved rejected"`
	AdminResponse string `json:"admin_response"`
}

type amenityRequest struct {
	Name           string `json:"name" validate:"notblank"`
	Type           string `json:"type" validate:"required,oneof=hospital school park library police_station fire_station other"`
	Address        string `json:"address" validate:"notblank"`
	Contact        string `json:"contact,omitempty"`
	OperatingHours string `json:"operating_hours,omitempty"`
	Description    string `json:"description,omitempty"`
}

func (r amenityRequest) toInput() ports.AmenityInput {
	return ports.AmenityInput{
		Name:           r.Name,
		Type:           domain.AmenityType(r.Type),
		Address:        r.Address,
		Contact:        r.Contact,
		OperatingHours: r.OperatingHours,
		Description:    r.Description,
	}
}

type announcementRequest struct {
	Title    string `json:"title" validate:"notblank"`
	Content  string `json:"content" validate:"notblank"`
	Category string `json:"category,omitempty" validate:"omitempty,oneof=general emergency event maintenance"`
	IsActive *bool  `json:"is_active,omitempty"`
}

func (r announcementRequest) toInput() ports.AnnouncementInput {
	return ports.AnnouncementInput{
		Title:    r.Title,
		Content:  r.Content,
		Category: domain.AnnouncementCategory(r.Category),
		IsActive: r.IsActive,
	}
}

type listResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func newListResponse[T any](items []T) listResponse[T] {
	if items == nil {
		items = []T{}
	}
	return listResponse[T]{Items: items, Total: len(items)}
}

func sessionPayload(sess *domain.Session) sessionResponse {
	if sess == nil {
		return sessionResponse{View: sess.View()}
	}
	return sessionResponse{
		View:     sess.View(),
		Identity: &identityPayload{ID: sess.Identity.ID, Email: sess.Identity.Email},
		Profile:  sess.Profile,
	}
}
