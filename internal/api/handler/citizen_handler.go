package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AshuKumar2005/CityAcces/internal/api/metrics"
	"github.com/AshuKumar2005/CityAcces/internal/core/domain"
	"github.com/AshuKumar2005/CityAcces/internal/core/ports"
)

// CitizenHandler serves the citizen dashboard tabs.
type CitizenHandler struct {
	citizens ports.CitizenService
}

func NewCitizenHandler(citizens ports.CitizenService) *CitizenHandler {
	return &CitizenHandler{citizens: citizens}
}

// SubmitComplaint files a complaint owned by the caller. Any status or owner in
// the payload is ignored.
//
// @Summary      Submit a complaint
// @Tags         citizen
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      submitComplaintRequest  true  "Complaint form"
// @Success      201   {object}  domain.Complaint
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/complaints [post]
func (h *CitizenHandler) SubmitComplaint(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	var req submitComplaintRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	complaint, err := h.citizens.SubmitComplaint(c.Request().Context(), sess.Identity.ID, req.toInput())
	if err != nil {
		return err
	}

	metrics.ComplaintsSubmittedTotal.WithLabelValues(string(complaint.Category), string(complaint.Priority)).Inc()
	return c.JSON(http.StatusCreated, complaint)
}

// ListComplaints returns the caller's complaints, newest first.
//
// @Summary      List my complaints
// @Tags         citizen
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  listResponse[domain.Complaint]
// @Failure      401  {object}  map[string]string
// @Router       /v1/complaints [get]
func (h *CitizenHandler) ListComplaints(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	complaints, err := h.citizens.ListOwnComplaints(c.Request().Context(), sess.Identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListResponse[*domain.Complaint](complaints))
}

// ListAmenities returns every amenity ordered by name.
//
// @Summary      Browse amenities
// @Tags         citizen
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  listResponse[domain.Amenity]
// @Router       /v1/amenities [get]
func (h *CitizenHandler) ListAmenities(c echo.Context) error {
	amenities, err := h.citizens.ListAmenities(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListResponse[*domain.Amenity](amenities))
}

// ListAnnouncements returns active announcements, newest first.
//
// @Summary      Read announcements
// @Tags         citizen
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  listResponse[domain.Announcement]
// @Router       /v1/announcements [get]
func (h *CitizenHandler) ListAnnouncements(c echo.Context) error {
	announcements, err := h.citizens.ListActiveAnnouncements(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListResponse[*domain.Announcement](announcements))
}
