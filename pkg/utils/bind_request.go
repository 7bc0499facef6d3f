package utils

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/labstack/echo/v4"
)

// BindRequest binds path and query parameters into T and validates
// its struct tags. Failures come back as 400s for the error
// middleware to envelope.
func BindRequest[T any](c echo.Context) (T, error) {
	var req T

	if err := c.Bind(&req); err != nil {
		return req, httperror.WrapError(http.StatusBadRequest, err)
	}

	if _, err := Validate(req); err != nil {
		return req, httperror.WrapError(http.StatusBadRequest, err)
	}

	return req, nil
}
