package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"studentmgmt/internal/errors"
	"studentmgmt/internal/format"
	"studentmgmt/internal/model"
	"studentmgmt/internal/repository"
	"studentmgmt/internal/service"
)

// StudentHandler handles student CRUD and export endpoints.
type StudentHandler struct {
	studentService service.StudentService
	currency       *format.Currency
}

// NewStudentHandler creates a new student handler.
func NewStudentHandler(studentService service.StudentService, currency *format.Currency) *StudentHandler {
	return &StudentHandler{studentService: studentService, currency: currency}
}

// StudentRequest represents a student create/update request.
type StudentRequest struct {
	FirstName  string `json:"first_name" validate:"required,max=30"`
	LastName   string `json:"last_name" validate:"required,max=50"`
	CurrentFee string `json:"current_fee" validate:"required"`
	YearStart  int    `json:"year_start"`
	LocationID *uint  `json:"location_id"`
	SubjectID  *uint  `json:"subject_id"`
	GradeID    *uint  `json:"grade_id"`
	Notes      string `json:"notes"`
}

func (r *StudentRequest) toModel() (*model.Student, error) {
	fee, err := decimal.NewFromString(r.CurrentFee)
	if err != nil {
		return nil, err
	}
	return &model.Student{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		CurrentFee: fee,
		YearStart:  r.YearStart,
		LocationID: r.LocationID,
		SubjectID:  r.SubjectID,
		GradeID:    r.GradeID,
		Notes:      r.Notes,
	}, nil
}

// List godoc
// @Summary List students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param q query string false "Name search"
// @Param location_id query int false "Location filter"
// @Param subject_id query int false "Subject filter"
// @Param grade_id query int false "Grade filter"
// @Param year_start query int false "Academic year filter"
// @Success 200 {array} model.Student
// @Failure 401 {object} errors.ErrorResponse
// @Router /students [get]
func (h *StudentHandler) List(c echo.Context) error {
	filter := repository.StudentFilter{
		Query:      c.QueryParam("q"),
		LocationID: queryUint(c, "location_id"),
		SubjectID:  queryUint(c, "subject_id"),
		GradeID:    queryUint(c, "grade_id"),
		YearStart:  queryInt(c, "year_start"),
	}

	students, err := h.studentService.List(c.Request().Context(), filter)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, students)
}

// Get godoc
// @Summary Get a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} model.Student
// @Failure 404 {object} errors.ErrorResponse
// @Router /students/{id} [get]
func (h *StudentHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	student, err := h.studentService.Get(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, student)
}

// Create godoc
// @Summary Create a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body StudentRequest true "Student data"
// @Success 201 {object} model.Student
// @Failure 400 {object} errors.ErrorResponse
// @Router /students [post]
func (h *StudentHandler) Create(c echo.Context) error {
	var req StudentRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	student, err := req.toModel()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid current_fee",
			Code:  "INVALID_AMOUNT",
		})
	}

	if err := h.studentService.Create(c.Request().Context(), student); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, student)
}

// Update godoc
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body StudentRequest true "Student data"
// @Success 200 {object} model.Student
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /students/{id} [put]
func (h *StudentHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req StudentRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	student, convErr := req.toModel()
	if convErr != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid current_fee",
			Code:  "INVALID_AMOUNT",
		})
	}
	student.ID = id

	if err := h.studentService.Update(c.Request().Context(), student); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, student)
}

// Delete godoc
// @Summary Delete a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /students/{id} [delete]
func (h *StudentHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.studentService.Delete(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Export godoc
// @Summary Export students as CSV
// @Tags students
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string
// @Failure 401 {object} errors.ErrorResponse
// @Router /students/export [get]
func (h *StudentHandler) Export(c echo.Context) error {
	students, err := h.studentService.List(c.Request().Context(), repository.StudentFilter{})
	if err != nil {
		return domainError(err)
	}

	// Column formatters for the grid, keyed by header.
	columns := []string{"first_name", "last_name", "current_fee", "year_start", "location", "subject", "grade", "notes"}
	formatters := map[string]func(s model.Student) string{
		"first_name":  func(s model.Student) string { return s.FirstName },
		"last_name":   func(s model.Student) string { return s.LastName },
		"current_fee": func(s model.Student) string { return h.currency.Format(s.CurrentFee) },
		"year_start":  func(s model.Student) string { return format.YearLabel(s.YearStart) },
		"location": func(s model.Student) string {
			if s.Location != nil {
				return s.Location.Name
			}
			return ""
		},
		"subject": func(s model.Student) string {
			if s.Subject != nil {
				return s.Subject.Name
			}
			return ""
		},
		"grade": func(s model.Student) string {
			if s.Grade != nil {
				return s.Grade.Name
			}
			return ""
		},
		"notes": func(s model.Student) string { return s.Notes },
	}

	rows := make([][]string, 0, len(students))
	for _, s := range students {
		row := make([]string, 0, len(columns))
		for _, col := range columns {
			row = append(row, formatters[col](s))
		}
		rows = append(rows, row)
	}
	return writeCSV(c, "students.csv", columns, rows)
}
