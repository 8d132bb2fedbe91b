package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"studentmgmt/internal/format"
	"studentmgmt/internal/service"
)

// ReportHandler serves the balance report.
type ReportHandler struct {
	reportService service.ReportService
	currency      *format.Currency
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportService service.ReportService, currency *format.Currency) *ReportHandler {
	return &ReportHandler{reportService: reportService, currency: currency}
}

// BalanceRow is one line of the balance report. Balance is the plain decimal
// string; BalanceDisplay is the locale-formatted currency rendering of the
// same value.
type BalanceRow struct {
	StudentID      uint   `json:"student_id"`
	Student        string `json:"student"`
	Charged        string `json:"charged"`
	Paid           string `json:"paid"`
	Balance        string `json:"balance"`
	BalanceDisplay string `json:"balance_display"`
}

// Balances godoc
// @Summary Per-student outstanding balances
// @Description All-time charged minus paid per student, one row per student
// @Description in creation order.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} BalanceRow
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /reports/balances [get]
func (h *ReportHandler) Balances(c echo.Context) error {
	balances, err := h.reportService.Balances(c.Request().Context())
	if err != nil {
		return domainError(err)
	}

	rows := make([]BalanceRow, 0, len(balances))
	for _, b := range balances {
		rows = append(rows, BalanceRow{
			StudentID:      b.Student.ID,
			Student:        b.Student.Label(),
			Charged:        b.Charged.StringFixed(2),
			Paid:           b.Paid.StringFixed(2),
			Balance:        b.Balance.StringFixed(2),
			BalanceDisplay: h.currency.Format(b.Balance),
		})
	}
	return c.JSON(http.StatusOK, rows)
}
