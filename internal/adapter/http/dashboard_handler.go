package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ITZ-HURAIRAH18/LoanVerse/internal/adapter/middleware"
	"github.com/ITZ-HURAIRAH18/LoanVerse/internal/usecase/dashboard"
)

type DashboardHandler struct{ uc *dashboard.Usecase }

func NewDashboardHandler(uc *dashboard.Usecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) Admin(c echo.Context) error {
	dto, err := h.uc.AdminStats(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DashboardHandler) User(c echo.Context) error {
	cu, ok := middleware.CurrentUserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}
	dto, err := h.uc.UserStats(c.Request().Context(), cu)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DashboardHandler) Customers(c echo.Context) error {
	items, err := h.uc.Customers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"customers": items})
}
