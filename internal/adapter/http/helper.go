package http

import (
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ITZ-HURAIRAH18/LoanVerse/pkg/apperr"
)

// writeError maps the domain error taxonomy onto HTTP once, here. Anything
// without a kind is an infrastructure failure and stays opaque.
func writeError(c echo.Context, err error) error {
	switch apperr.KindOf(err) {
	case apperr.KindInvalidInput:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperr.KindNotFound:
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperr.KindForbidden:
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case apperr.KindUnauthenticated:
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case apperr.KindConflict:
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	}
	log.Printf("%s %s: %v", c.Request().Method, c.Path(), err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "server error"})
}

func pathID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.Invalid("invalid %s path param", name)
	}
	return id, nil
}
