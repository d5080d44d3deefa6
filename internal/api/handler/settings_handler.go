package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techstore/storefront-api/internal/api/metrics"
	"github.com/techstore/storefront-api/internal/core/ports"
)

type SettingsHandler struct {
	service ports.SettingsService
}

func NewSettingsHandler(service ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

type updateSettingsRequest struct {
	SiteName           *string `json:"site_name"        validate:"omitempty,min=1"`
	SiteDescription    *string `json:"site_description"`
	ContactEmail       *string `json:"contact_email"    validate:"omitempty,email"`
	EnableRegistration *bool   `json:"enable_registration"`
}

// Get returns the current site settings.
//
// @Summary      Get site settings
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Settings
// @Failure      401  {object}  map[string]string
// @Router       /api/admin/settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

// Update patches the supplied settings fields and returns the result.
//
// @Summary      Update site settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateSettingsRequest  true  "Fields to change"
// @Success      200   {object}  domain.Settings
// @Failure      400   {object}  map[string]string
// @Router       /api/admin/settings [put]
func (h *SettingsHandler) Update(c echo.Context) error {
	var req updateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	settings, err := h.service.Update(c.Request().Context(), ports.UpdateSettingsInput{
		SiteName:           req.SiteName,
		SiteDescription:    req.SiteDescription,
		ContactEmail:       req.ContactEmail,
		EnableRegistration: req.EnableRegistration,
	})
	if err != nil {
		return err
	}

	metrics.AdminMutationsTotal.WithLabelValues("settings", "update").Inc()
	return c.JSON(http.StatusOK, settings)
}
