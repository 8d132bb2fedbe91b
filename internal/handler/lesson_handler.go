package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"studentmgmt/internal/errors"
	"studentmgmt/internal/format"
	"studentmgmt/internal/model"
	"studentmgmt/internal/repository"
	"studentmgmt/internal/service"
)

// LessonHandler handles lesson CRUD and export endpoints.
type LessonHandler struct {
	lessonService service.LessonService
	currency      *format.Currency
}

// NewLessonHandler creates a new lesson handler.
func NewLessonHandler(lessonService service.LessonService, currency *format.Currency) *LessonHandler {
	return &LessonHandler{lessonService: lessonService, currency: currency}
}

// LessonRequest represents a lesson create/update request. Fee may be
// omitted on create; it is then filled from the student's current rate.
type LessonRequest struct {
	StudentID uint    `json:"student_id" validate:"required"`
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	Hours     string  `json:"hours" validate:"required"`
	Fee       *string `json:"fee"`
}

func (r *LessonRequest) toModel() (*model.Lesson, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return nil, err
	}
	hours, err := decimal.NewFromString(r.Hours)
	if err != nil {
		return nil, err
	}

	lesson := &model.Lesson{
		StudentID: r.StudentID,
		Date:      date,
		Hours:     hours,
	}
	if r.Fee != nil {
		fee, err := decimal.NewFromString(*r.Fee)
		if err != nil {
			return nil, err
		}
		lesson.Fee = decimal.NewNullDecimal(fee)
	}
	return lesson, nil
}

// List godoc
// @Summary List lessons
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param student_id query int false "Student filter"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} model.Lesson
// @Failure 401 {object} errors.ErrorResponse
// @Router /lessons [get]
func (h *LessonHandler) List(c echo.Context) error {
	filter := repository.LessonFilter{
		StudentID: queryUint(c, "student_id"),
		From:      queryDate(c, "from"),
		To:        queryDate(c, "to"),
	}

	lessons, err := h.lessonService.List(c.Request().Context(), filter)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, lessons)
}

// Get godoc
// @Summary Get a lesson
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lesson ID"
// @Success 200 {object} model.Lesson
// @Failure 404 {object} errors.ErrorResponse
// @Router /lessons/{id} [get]
func (h *LessonHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	lesson, err := h.lessonService.Get(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, lesson)
}

// Create godoc
// @Summary Record a lesson
// @Description Creates a lesson. When no fee is given it is snapshotted from
// @Description the student's current rate inside the same transaction.
// @Tags lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body LessonRequest true "Lesson data"
// @Success 201 {object} model.Lesson
// @Failure 400 {object} errors.ErrorResponse
// @Router /lessons [post]
func (h *LessonHandler) Create(c echo.Context) error {
	var req LessonRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	lesson, err := req.toModel()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid lesson data",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := h.lessonService.Create(c.Request().Context(), lesson); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, lesson)
}

// Update godoc
// @Summary Update a lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lesson ID"
// @Param request body LessonRequest true "Lesson data"
// @Success 200 {object} model.Lesson
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /lessons/{id} [put]
func (h *LessonHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req LessonRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	lesson, convErr := req.toModel()
	if convErr != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid lesson data",
			Code:  "INVALID_REQUEST",
		})
	}
	lesson.ID = id

	if err := h.lessonService.Update(c.Request().Context(), lesson); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, lesson)
}

// Delete godoc
// @Summary Delete a lesson
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lesson ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /lessons/{id} [delete]
func (h *LessonHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.lessonService.Delete(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Export godoc
// @Summary Export lessons as CSV
// @Tags lessons
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string
// @Failure 401 {object} errors.ErrorResponse
// @Router /lessons/export [get]
func (h *LessonHandler) Export(c echo.Context) error {
	lessons, err := h.lessonService.List(c.Request().Context(), repository.LessonFilter{})
	if err != nil {
		return domainError(err)
	}

	columns := []string{"student", "date", "hours", "fee"}
	formatters := map[string]func(l model.Lesson) string{
		"student": func(l model.Lesson) string {
			if l.Student != nil {
				return l.Student.Label()
			}
			return ""
		},
		"date":  func(l model.Lesson) string { return l.Date.Format(dateLayout) },
		"hours": func(l model.Lesson) string { return l.Hours.String() },
		"fee": func(l model.Lesson) string {
			if !l.Fee.Valid {
				return ""
			}
			return h.currency.Format(l.Fee.Decimal)
		},
	}

	rows := make([][]string, 0, len(lessons))
	for _, l := range lessons {
		row := make([]string, 0, len(columns))
		for _, col := range columns {
			row = append(row, formatters[col](l))
		}
		rows = append(rows, row)
	}
	return writeCSV(c, "lessons.csv", columns, rows)
}
