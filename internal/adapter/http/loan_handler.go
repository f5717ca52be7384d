package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/ITZ-HURAIRAH18/LoanVerse/internal/adapter/middleware"
	loanDomain "github.com/ITZ-HURAIRAH18/LoanVerse/internal/domain/loan"
	"github.com/ITZ-HURAIRAH18/LoanVerse/internal/usecase/loan"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type applyLoanReq struct {
	Category  uint64  `json:"category"   validate:"required"`
	Reason    string  `json:"reason"     validate:"required"`
	Amount    float64 `json:"amount"     validate:"required,gt=0,dec2"`
	TermYears int     `json:"term_years" validate:"required,gte=1"`
}

func (h *LoanHandler) Apply(c echo.Context) error {
	cu, ok := middleware.CurrentUserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}
	var req applyLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Submit(c.Request().Context(), cu, loan.SubmitInput{
		CategoryID: req.Category,
		Reason:     req.Reason,
		Amount:     decimal.NewFromFloat(req.Amount).Round(2),
		TermYears:  req.TermYears,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"message": "Loan request submitted.",
		"loan":    dto,
	})
}

type payLoanReq struct {
	Amount float64 `json:"amount" validate:"required,gt=0,dec2"`
}

func (h *LoanHandler) Pay(c echo.Context) error {
	cu, ok := middleware.CurrentUserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}
	loanID, err := pathID(c, "loan_id")
	if err != nil {
		return writeError(c, err)
	}
	var req payLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.RecordPayment(c.Request().Context(), cu, loanID, decimal.NewFromFloat(req.Amount).Round(2))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"status": "success", "payment": dto})
}

func (h *LoanHandler) Process(c echo.Context) error {
	cu, ok := middleware.CurrentUserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}
	loanID, err := pathID(c, "loan_id")
	if err != nil {
		return writeError(c, err)
	}
	dto, err := h.uc.Decide(c.Request().Context(), cu, loanID, c.Param("action"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "status": dto.Status})
}

func (h *LoanHandler) History(c echo.Context) error {
	cu, ok := middleware.CurrentUserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}
	items, err := h.uc.History(c.Request().Context(), cu)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *LoanHandler) TransactionHistory(c echo.Context) error {
	cu, ok := middleware.CurrentUserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}
	items, err := h.uc.TransactionHistory(c.Request().Context(), cu)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"transactions": items})
}

func (h *LoanHandler) ListAll(c echo.Context) error {
	items, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"loans": items})
}

func (h *LoanHandler) ListPending(c echo.Context) error {
	return h.listByStatus(c, loanDomain.StatusPending)
}

func (h *LoanHandler) ListRejected(c echo.Context) error {
	return h.listByStatus(c, loanDomain.StatusRejected)
}

func (h *LoanHandler) listByStatus(c echo.Context, status loanDomain.Status) error {
	items, err := h.uc.ListByStatus(c.Request().Context(), status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"loans": items})
}

func (h *LoanHandler) ListApproved(c echo.Context) error {
	items, err := h.uc.ListApproved(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"loans": items})
}

func (h *LoanHandler) UserLoans(c echo.Context) error {
	items, err := h.uc.UserLoans(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"loans": items})
}
