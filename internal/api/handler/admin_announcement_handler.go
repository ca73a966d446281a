package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AshuKumar2005/CityAcces/internal/api/metrics"
	"github.com/AshuKumar2005/CityAcces/internal/core/domain"
	"github.com/AshuKumar2005/CityAcces/internal/core/ports"
)

type AnnouncementAdminHandler struct {
	announcements ports.AnnouncementService
}

func NewAnnouncementAdminHandler(announcements ports.AnnouncementService) *AnnouncementAdminHandler {
	return &AnnouncementAdminHandler{announcements: announcements}
}

// List returns every announcement, active or not, newest first.
//
// @Summary      List announcements
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  listResponse[domain.Announcement]
// @Router       /v1/admin/announcements [get]
func (h *AnnouncementAdminHandler) List(c echo.Context) error {
	announcements, err := h.announcements.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListResponse[*domain.Announcement](announcements))
}

// Create publishes a new active announcement under the caller's name.
//
// @Summary      Publish an announcement
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      announcementRequest  true  "Announcement form"
// @Success      201   {object}  domain.Announcement
// @Failure      422   {object}  map[string]string
// @Router       /v1/admin/announcements [post]
func (h *AnnouncementAdminHandler) Create(c echo.Context) error {
	return h.save(c, "", http.StatusCreated)
}

// Update edits title, content and category. published_by is left alone.
//
// @Summary      Edit an announcement
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Announcement ID"
// @Param        body  body      announcementRequest  true  "Announcement form"
// @Success      200   {object}  domain.Announcement
// @Failure      404   {object}  map[string]string
// @Router       /v1/admin/announcements/{id} [put]
func (h *AnnouncementAdminHandler) Update(c echo.Context) error {
	return h.save(c, c.Param("id"), http.StatusOK)
}

func (h *AnnouncementAdminHandler) save(c echo.Context, selectedID string, status int) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	var req announcementRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	announcement, err := h.announcements.Save(c.Request().Context(), selectedID, sess.Identity.ID, req.toInput())
	if err != nil {
		return err
	}

	metrics.AdminMutationsTotal.WithLabelValues("announcement", saveAction(selectedID)).Inc()
	return c.JSON(status, announcement)
}

// Delete removes an announcement. Requires ?confirm=true.
//
// @Summary      Delete an announcement
// @Tags         admin
// @Security     BearerAuth
// @Param        id       path   string  true  "Announcement ID"
// @Param        confirm  query  bool    true  "Must be true"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      428  {object}  map[string]string
// @Router       /v1/admin/announcements/{id} [delete]
func (h *AnnouncementAdminHandler) Delete(c echo.Context) error {
	if err := h.announcements.Delete(c.Request().Context(), c.Param("id"), confirmed(c)); err != nil {
		return err
	}
	metrics.AdminMutationsTotal.WithLabelValues("announcement", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Toggle flips is_active and nothing else.
//
// @Summary      Toggle announcement visibility
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Announcement ID"
// @Success      200  {object}  domain.Announcement
// @Failure      404  {object}  map[string]string
// @Router       /v1/admin/announcements/{id}/toggle [post]
func (h *AnnouncementAdminHandler) Toggle(c echo.Context) error {
	announcement, err := h.announcements.ToggleActive(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	metrics.AdminMutationsTotal.WithLabelValues("announcement", "toggle").Inc()
	return c.JSON(http.StatusOK, announcement)
}
