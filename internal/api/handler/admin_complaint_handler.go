package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AshuKumar2005/CityAcces/internal/api/metrics"
	"github.com/AshuKumar2005/CityAcces/internal/core/domain"
	"github.com/AshuKumar2005/CityAcces/internal/core/ports"
)

type ComplaintAdminHandler struct {
	triage ports.ComplaintTriageService
}

func NewComplaintAdminHandler(triage ports.ComplaintTriageService) *ComplaintAdminHandler {
	return &ComplaintAdminHandler{triage: triage}
}

// List returns all complaints, newest first.
//
// @Summary      List all complaints
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  listResponse[domain.Complaint]
// @Failure      403  {object}  map[string]string
// @Router       /v1/admin/complaints [get]
func (h *ComplaintAdminHandler) List(c echo.Context) error {
	complaints, err := h.triage.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListResponse[*domain.Complaint](complaints))
}

// Triage sets a complaint's status and admin response. Concurrent edits are
// last-writer-wins.
//
// @Summary      Triage a complaint
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path      string         true  "Complaint ID"
// @Param        body  body      triageRequest  true  "Status and response"
// @Success      200   {object}  domain.Complaint
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/admin/complaints/{id} [patch]
func (h *ComplaintAdminHandler) Triage(c echo.Context) error {
	var req triageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	complaint, err := h.triage.Triage(c.Request().Context(), c.Param("id"), ports.TriageInput{
		Status:        domain.ComplaintStatus(req.Status),
		AdminResponse: req.AdminResponse,
	})
	if err != nil {
		return err
	}

	metrics.ComplaintTriageTotal.WithLabelValues(string(complaint.Status)).Inc()
	return c.JSON(http.StatusOK, complaint)
}
