package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"studentmgmt/internal/model"
	"studentmgmt/internal/repository"
)

// LookupHandler serves the system tables (locations, subjects, grades) that
// classify students. These are plain id+name rows maintained by the admin.
type LookupHandler struct {
	lookupRepo repository.LookupRepository
}

// NewLookupHandler creates a new lookup handler.
func NewLookupHandler(lookupRepo repository.LookupRepository) *LookupHandler {
	return &LookupHandler{lookupRepo: lookupRepo}
}

// LookupRequest represents a lookup-table create request.
type LookupRequest struct {
	Name string `json:"name" validate:"required,max=80"`
}

// ListLocations godoc
// @Summary List locations
// @Tags lookups
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Location
// @Router /locations [get]
func (h *LookupHandler) ListLocations(c echo.Context) error {
	out, err := h.lookupRepo.ListLocations(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, out)
}

// CreateLocation godoc
// @Summary Create a location
// @Tags lookups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body LookupRequest true "Location name"
// @Success 201 {object} model.Location
// @Router /locations [post]
func (h *LookupHandler) CreateLocation(c echo.Context) error {
	var req LookupRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}
	loc := &model.Location{Name: req.Name}
	if err := h.lookupRepo.CreateLocation(c.Request().Context(), loc); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, loc)
}

// DeleteLocation godoc
// @Summary Delete a location
// @Tags lookups
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Success 204
// @Router /locations/{id} [delete]
func (h *LookupHandler) DeleteLocation(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.lookupRepo.DeleteLocation(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListSubjects godoc
// @Summary List subjects
// @Tags lookups
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Subject
// @Router /subjects [get]
func (h *LookupHandler) ListSubjects(c echo.Context) error {
	out, err := h.lookupRepo.ListSubjects(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, out)
}

// CreateSubject godoc
// @Summary Create a subject
// @Tags lookups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body LookupRequest true "Subject name"
// @Success 201 {object} model.Subject
// @Router /subjects [post]
func (h *LookupHandler) CreateSubject(c echo.Context) error {
	var req LookupRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}
	sub := &model.Subject{Name: req.Name}
	if err := h.lookupRepo.CreateSubject(c.Request().Context(), sub); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, sub)
}

// DeleteSubject godoc
// @Summary Delete a subject
// @Tags lookups
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Success 204
// @Router /subjects/{id} [delete]
func (h *LookupHandler) DeleteSubject(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.lookupRepo.DeleteSubject(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListGrades godoc
// @Summary List grades
// @Tags lookups
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Grade
// @Router /grades [get]
func (h *LookupHandler) ListGrades(c echo.Context) error {
	out, err := h.lookupRepo.ListGrades(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, out)
}

// CreateGrade godoc
// @Summary Create a grade
// @Tags lookups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body LookupRequest true "Grade name"
// @Success 201 {object} model.Grade
// @Router /grades [post]
func (h *LookupHandler) CreateGrade(c echo.Context) error {
	var req LookupRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}
	grd := &model.Grade{Name: req.Name}
	if err := h.lookupRepo.CreateGrade(c.Request().Context(), grd); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, grd)
}

// DeleteGrade godoc
// @Summary Delete a grade
// @Tags lookups
// @Security BearerAuth
// @Param id path int true "Grade ID"
// @Success 204
// @Router /grades/{id} [delete]
func (h *LookupHandler) DeleteGrade(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.lookupRepo.DeleteGrade(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
