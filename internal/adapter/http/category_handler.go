package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ITZ-HURAIRAH18/LoanVerse/internal/usecase/category"
)

type CategoryHandler struct{ uc *category.Usecase }

func NewCategoryHandler(uc *category.Usecase) *CategoryHandler { return &CategoryHandler{uc: uc} }

type categoryReq struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), req.Name, req.Description)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"category": map[string]any{"id": dto.ID, "name": dto.Name},
	})
}

func (h *CategoryHandler) List(c echo.Context) error {
	items, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"categories": items})
}

func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := pathID(c, "category_id")
	if err != nil {
		return writeError(c, err)
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// Update handles the edit form; empty fields keep current values.
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := pathID(c, "category_id")
	if err != nil {
		return writeError(c, err)
	}
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if _, err := h.uc.Update(c.Request().Context(), id, req.Name, req.Description); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "category_id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

// Options is public: the apply-loan form needs id+name pairs before login
// state matters.
func (h *CategoryHandler) Options(c echo.Context) error {
	items, err := h.uc.Options(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}
