package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AshuKumar2005/CityAcces/internal/api/metrics"
	"github.com/AshuKumar2005/CityAcces/internal/core/domain"
	"github.com/AshuKumar2005/CityAcces/internal/core/ports"
)

type AmenityAdminHandler struct {
	amenities ports.AmenityService
}

func NewAmenityAdminHandler(amenities ports.AmenityService) *AmenityAdminHandler {
	return &AmenityAdminHandler{amenities: amenities}
}

// List returns every amenity ordered by name.
//
// @Summary      List amenities
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  listResponse[domain.Amenity]
// @Router       /v1/admin/amenities [get]
func (h *AmenityAdminHandler) List(c echo.Context) error {
	amenities, err := h.amenities.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newListResponse[*domain.Amenity](amenities))
}

// Create adds an amenity.
//
// @Summary      Create an amenity
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      amenityRequest  true  "Amenity form"
// @Success      201   {object}  domain.Amenity
// @Failure      422   {object}  map[string]string
// @Router       /v1/admin/amenities [post]
func (h *AmenityAdminHandler) Create(c echo.Context) error {
	return h.save(c, "", http.StatusCreated)
}

// Update overwrites the amenity named in the path.
//
// @Summary      Edit an amenity
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Amenity ID"
// @Param        body  body      amenityRequest  true  "Amenity form"
// @Success      200   {object}  domain.Amenity
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/admin/amenities/{id} [put]
func (h *AmenityAdminHandler) Update(c echo.Context) error {
	return h.save(c, c.Param("id"), http.StatusOK)
}

func (h *AmenityAdminHandler) save(c echo.Context, selectedID string, status int) error {
	var req amenityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	amenity, err := h.amenities.Save(c.Request().Context(), selectedID, req.toInput())
	if err != nil {
		return err
	}

	metrics.AdminMutationsTotal.WithLabelValues("amenity", saveAction(selectedID)).Inc()
	return c.JSON(status, amenity)
}

// Delete removes an amenity. Requires ?confirm=true.
//
// @Summary      Delete an amenity
// @Tags         admin
// @Security     BearerAuth
// @Param        id       path   string  true  "Amenity ID"
// @Param        confirm  query  bool    true  "Must be true"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      428  {object}  map[string]string
// @Router       /v1/admin/amenities/{id} [delete]
func (h *AmenityAdminHandler) Delete(c echo.Context) error {
	if err := h.amenities.Delete(c.Request().Context(), c.Param("id"), confirmed(c)); err != nil {
		return err
	}
	metrics.AdminMutationsTotal.WithLabelValues("amenity", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

func saveAction(selectedID string) string {
	if selectedID == "" {
		return "create"
	}
	return "update"
}
