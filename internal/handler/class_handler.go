package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"gymhub/internal/auth"
	apperrors "gymhub/internal/errors"
	"gymhub/internal/model"
	"gymhub/internal/service"
)

// ClassHandler handles gym class endpoints.
type ClassHandler struct {
	classService service.ClassService
}

// NewClassHandler creates a new class handler.
func NewClassHandler(classService service.ClassService) *ClassHandler {
	return &ClassHandler{classService: classService}
}

// CreateClassRequest represents a class creation request. TrainerID may be
// omitted, in which case the class is assigned to the caller.
type CreateClassRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	MaxCapacity int       `json:"max_capacity" validate:"required,min=1"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	TrainerID   uint      `json:"trainer_id,omitempty"`
}

// Create godoc
// @Summary Create a gym class
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateClassRequest true "Class data"
// @Success 201 {object} model.GymClass
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /classes [post]
func (h *ClassHandler) Create(c echo.Context) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid token")
	}

	var req CreateClassRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	trainerID := req.TrainerID
	if trainerID == 0 {
		trainerID = claims.UserID
	}

	class := &model.GymClass{
		Title:       req.Title,
		Description: req.Description,
		TrainerID:   trainerID,
		MaxCapacity: req.MaxCapacity,
		StartsAt:    req.StartsAt,
	}

	created, err := h.classService.Create(c.Request().Context(), class)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, created)
}

// List godoc
// @Summary List gym classes
// @Tags classes
// @Produce json
// @Success 200 {array} model.GymClass
// @Router /classes [get]
func (h *ClassHandler) List(c echo.Context) error {
	classes, err := h.classService.List(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, classes)
}

// TrainerSchedule godoc
// @Summary List the caller's classes
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.GymClass
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /trainer/schedule [get]
func (h *ClassHandler) TrainerSchedule(c echo.Context) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid token")
	}

	classes, err := h.classService.TrainerSchedule(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, classes)
}
