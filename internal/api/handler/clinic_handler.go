package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/clinichub/clinic-registry/internal/api/metrics"
	"github.com/clinichub/clinic-registry/internal/core/domain"
	"github.com/clinichub/clinic-registry/internal/core/ports"
)

// ClinicHandler handles HTTP requests for clinic records.
type ClinicHandler struct {
	service ports.ClinicService
}

func NewClinicHandler(service ports.ClinicService) *ClinicHandler {
	return &ClinicHandler{service: service}
}

// Create handles POST /api/clinics.
//
// @Summary      Create a new clinic
// @Tags         clinics
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      clinicRequest  true  "Clinic to create (id must be absent)"
// @Success      201   {object}  clinicResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/clinics [post]
func (h *ClinicHandler) Create(c echo.Context) error {
	var req clinicRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.ID != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "a new clinic cannot already have an id")
	}

	clinic, err := h.service.Save(c.Request().Context(), ports.ClinicInput{Name: req.Name})
	if err != nil {
		return err
	}

	metrics.RecordsMutatedTotal.WithLabelValues(domain.KindClinic, domain.AuditCreated).Inc()
	c.Response().Header().Set(echo.HeaderLocation, "/api/clinics/"+strconv.FormatInt(clinic.ID, 10))
	return c.JSON(http.StatusCreated, toClinicResponse(clinic))
}

// Update handles PUT /api/clinics.
//
// @Summary      Replace an existing clinic
// @Tags         clinics
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      clinicRequest  true  "Clinic to replace (id required)"
// @Success      200   {object}  clinicResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/clinics [put]
func (h *ClinicHandler) Update(c echo.Context) error {
	var req clinicRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.ID == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	clinic, err := h.service.Save(c.Request().Context(), ports.ClinicInput{ID: *req.ID, Name: req.Name})
	if err != nil {
		return err
	}

	metrics.RecordsMutatedTotal.WithLabelValues(domain.KindClinic, domain.AuditUpdated).Inc()
	return c.JSON(http.StatusOK, toClinicResponse(clinic))
}

// List handles GET /api/clinics.
//
// @Summary      List all clinics
// @Tags         clinics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  clinicResponse
// @Router       /api/clinics [get]
func (h *ClinicHandler) List(c echo.Context) error {
	clinics, err := h.service.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClinicListResponse(clinics))
}

// Get handles GET /api/clinics/:id.
//
// @Summary      Get a clinic by id
// @Tags         clinics
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Clinic id"
// @Success      200  {object}  clinicResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/clinics/{id} [get]
func (h *ClinicHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	clinic, err := h.service.FindOne(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClinicResponse(clinic))
}

// Delete handles DELETE /api/clinics/:id. Responds 204 regardless of prior
// existence, so the operation is idempotent.
//
// @Summary      Delete a clinic by id
// @Tags         clinics
// @Security     BearerAuth
// @Param        id  path  int  true  "Clinic id"
// @Success      204
// @Router       /api/clinics/{id} [delete]
func (h *ClinicHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.RecordsMutatedTotal.WithLabelValues(domain.KindClinic, domain.AuditDeleted).Inc()
	return c.NoContent(http.StatusNoContent)
}

// parseID reads the :id path parameter as a positive integer.
func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
