package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "gymhub/internal/errors"
	"gymhub/internal/service"
)

// OfferingHandler handles the services catalog endpoint.
type OfferingHandler struct {
	offeringService service.OfferingService
}

// NewOfferingHandler creates a new offering handler.
func NewOfferingHandler(offeringService service.OfferingService) *OfferingHandler {
	return &OfferingHandler{offeringService: offeringService}
}

// List godoc
// @Summary List available gym services
// @Tags services
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ServiceOffering
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /services [get]
func (h *OfferingHandler) List(c echo.Context) error {
	offerings, err := h.offeringService.List(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, offerings)
}
