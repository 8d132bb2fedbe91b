package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"studentmgmt/internal/errors"
)

const dateLayout = "2006-01-02"

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid " + name,
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}

// queryUint reads an optional unsigned query parameter, 0 when absent.
func queryUint(c echo.Context, name string) uint {
	if raw := c.QueryParam(name); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 64); err == nil {
			return uint(v)
		}
	}
	return 0
}

// queryInt reads an optional integer query parameter, 0 when absent.
func queryInt(c echo.Context, name string) int {
	if raw := c.QueryParam(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return 0
}

// queryDate reads an optional YYYY-MM-DD query parameter.
func queryDate(c echo.Context, name string) time.Time {
	if raw := c.QueryParam(name); raw != "" {
		if t, err := time.Parse(dateLayout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

// domainError maps a service error onto the standard HTTP error envelope.
func domainError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func bindError() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: "invalid request body",
		Code:  "INVALID_REQUEST",
	})
}

func validationError(err error) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: err.Error(),
		Code:  "VALIDATION_ERROR",
	})
}
