package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ITZ-HURAIRAH18/LoanVerse/internal/adapter/middleware"
	"github.com/ITZ-HURAIRAH18/LoanVerse/internal/usecase/auth"
)

type AuthHandler struct {
	uc         *auth.Usecase
	sessionTTL time.Duration
}

func NewAuthHandler(uc *auth.Usecase, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{uc: uc, sessionTTL: sessionTTL}
}

type signupReq struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	err := h.uc.Signup(c.Request().Context(), auth.SignupInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "Signup successful"})
}

type loginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	session, err := h.uc.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return writeError(c, err)
	}

	c.SetCookie(h.sessionCookie(session.Token, h.sessionTTL))
	return c.JSON(http.StatusOK, map[string]any{
		"message":  "Login successful",
		"token":    session.Token,
		"username": session.Username,
		"is_staff": session.IsStaff,
		"role":     session.Role,
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.sessionCookie("", -time.Hour))
	return c.JSON(http.StatusOK, map[string]string{"message": "Logout successful"})
}

func (h *AuthHandler) Me(c echo.Context) error {
	cu, ok := middleware.CurrentUserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}
	role := "user"
	if cu.IsStaff {
		role = "admin"
	}
	return c.JSON(http.StatusOK, map[string]any{
		"username": cu.Username,
		"is_staff": cu.IsStaff,
		"role":     role,
	})
}

func (h *AuthHandler) sessionCookie(token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
