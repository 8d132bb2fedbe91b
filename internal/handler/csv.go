package handler

import (
	"encoding/csv"
	"net/http"

	"github.com/labstack/echo/v4"
)

// writeCSV streams rows as a CSV attachment, mirroring the exportable admin
// grids. Each row is already formatted; per-column formatting lives with the
// caller so the same data can render differently per grid.
func writeCSV(c echo.Context, filename string, header []string, rows [][]string) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Response().WriteHeader(http.StatusOK)

	w := csv.NewWriter(c.Response())
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
