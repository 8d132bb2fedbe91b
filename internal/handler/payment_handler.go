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

// PaymentHandler handles payment CRUD and export endpoints.
type PaymentHandler struct {
	paymentService service.PaymentService
	currency       *format.Currency
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(paymentService service.PaymentService, currency *format.Currency) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, currency: currency}
}

// PaymentRequest represents a payment create/update request.
type PaymentRequest struct {
	StudentID uint   `json:"student_id" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Amount    string `json:"amount" validate:"required"`
}

func (r *PaymentRequest) toModel() (*model.Payment, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return nil, err
	}
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return nil, err
	}
	return &model.Payment{
		StudentID: r.StudentID,
		Date:      date,
		Amount:    amount,
	}, nil
}

// List godoc
// @Summary List payments
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param student_id query int false "Student filter"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} model.Payment
// @Failure 401 {object} errors.ErrorResponse
// @Router /payments [get]
func (h *PaymentHandler) List(c echo.Context) error {
	filter := repository.PaymentFilter{
		StudentID: queryUint(c, "student_id"),
		From:      queryDate(c, "from"),
		To:        queryDate(c, "to"),
	}

	payments, err := h.paymentService.List(c.Request().Context(), filter)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, payments)
}

// Get godoc
// @Summary Get a payment
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment ID"
// @Success 200 {object} model.Payment
// @Failure 404 {object} errors.ErrorResponse
// @Router /payments/{id} [get]
func (h *PaymentHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	payment, err := h.paymentService.Get(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, payment)
}

// Create godoc
// @Summary Record a payment
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PaymentRequest true "Payment data"
// @Success 201 {object} model.Payment
// @Failure 400 {object} errors.ErrorResponse
// @Router /payments [post]
func (h *PaymentHandler) Create(c echo.Context) error {
	var req PaymentRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	payment, err := req.toModel()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid payment data",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := h.paymentService.Create(c.Request().Context(), payment); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, payment)
}

// Update godoc
// @Summary Update a payment
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment ID"
// @Param request body PaymentRequest true "Payment data"
// @Success 200 {object} model.Payment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /payments/{id} [put]
func (h *PaymentHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req PaymentRequest
	if err := c.Bind(&req); err != nil {
		return bindError()
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	payment, convErr := req.toModel()
	if convErr != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid payment data",
			Code:  "INVALID_REQUEST",
		})
	}
	payment.ID = id

	if err := h.paymentService.Update(c.Request().Context(), payment); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, payment)
}

// Delete godoc
// @Summary Delete a payment
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /payments/{id} [delete]
func (h *PaymentHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.paymentService.Delete(c.Request().Context(), id); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Export godoc
// @Summary Export payments as CSV
// @Tags payments
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string
// @Failure 401 {object} errors.ErrorResponse
// @Router /payments/export [get]
func (h *PaymentHandler) Export(c echo.Context) error {
	payments, err := h.paymentService.List(c.Request().Context(), repository.PaymentFilter{})
	if err != nil {
		return domainError(err)
	}

	columns := []string{"student", "date", "amount"}
	formatters := map[string]func(p model.Payment) string{
		"student": func(p model.Payment) string {
			if p.Student != nil {
				return p.Student.Label()
			}
			return ""
		},
		"date":   func(p model.Payment) string { return p.Date.Format(dateLayout) },
		"amount": func(p model.Payment) string { return h.currency.Format(p.Amount) },
	}

	rows := make([][]string, 0, len(payments))
	for _, p := range payments {
		row := make([]string, 0, len(columns))
		for _, col := range columns {
			row = append(row, formatters[col](p))
		}
		rows = append(rows, row)
	}
	return writeCSV(c, "payments.csv", columns, rows)
}
