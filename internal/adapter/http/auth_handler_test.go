package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/ITZ-HURAIRAH18/LoanVerse/internal/adapter/middleware"
	userDomain "github.com/ITZ-HURAIRAH18/LoanVerse/internal/domain/user"
	"github.com/ITZ-HURAIRAH18/LoanVerse/internal/testutil/usermock"
	"github.com/ITZ-HURAIRAH18/LoanVerse/internal/usecase/auth"
)

func newAuthHandler(users *usermock.Repo) *AuthHandler {
	uc := auth.NewUsecase(users, []byte("test-secret"), time.Hour)
	return NewAuthHandler(uc, time.Hour)
}

func TestSignup_Created(t *testing.T) {
	e := newEchoWithValidator()
	var created *userDomain.User
	users := &usermock.Repo{
		CreateFn: func(ctx context.Context, u *userDomain.User) error {
			created = u
			return nil
		},
	}
	h := newAuthHandler(users)

	body := map[string]any{"username": "asha", "email": "asha@example.com", "password": "secret9"}
	req := httptest.NewRequest(stdhttp.MethodPost, "/api/signup", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Signup(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Signup error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body)
	}
	if created == nil || created.Username != "asha" {
		t.Fatalf("created = %+v", created)
	}
	if created.PasswordHash == "secret9" {
		t.Fatal("password stored in clear")
	}
}

func TestSignup_ShortPassword(t *testing.T) {
	e := newEchoWithValidator()
	h := newAuthHandler(&usermock.Repo{})

	body := map[string]any{"username": "asha", "password": "abc"}
	req := httptest.NewRequest(stdhttp.MethodPost, "/api/signup", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Signup(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Signup error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422: %s", rec.Code, rec.Body)
	}
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	e := newEchoWithValidator()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret9"), bcrypt.MinCost)
	users := &usermock.Repo{
		GetByUsernameFn: func(ctx context.Context, username string) (*userDomain.User, error) {
			return &userDomain.User{ID: 7, Username: username, PasswordHash: string(hash)}, nil
		},
	}
	h := newAuthHandler(users)

	body := map[string]any{"username": "asha", "password": "secret9"}
	req := httptest.NewRequest(stdhttp.MethodPost, "/api/login", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}

	var resp struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token == "" || resp.Role != "user" {
		t.Fatalf("resp = %+v", resp)
	}

	var session *stdhttp.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			session = ck
		}
	}
	if session == nil || session.Value != resp.Token {
		t.Fatalf("session cookie = %+v", session)
	}
	if !session.HttpOnly {
		t.Fatal("session cookie must be http-only")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	e := newEchoWithValidator()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret9"), bcrypt.MinCost)
	users := &usermock.Repo{
		GetByUsernameFn: func(ctx context.Context, username string) (*userDomain.User, error) {
			return &userDomain.User{ID: 7, Username: username, PasswordHash: string(hash)}, nil
		},
	}
	h := newAuthHandler(users)

	body := map[string]any{"username": "asha", "password": "wrong99"}
	req := httptest.NewRequest(stdhttp.MethodPost, "/api/login", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnauthorized {
		t.Fatalf("status = %d, want 401: %s", rec.Code, rec.Body)
	}
}

func TestLogout_ExpiresCookie(t *testing.T) {
	e := newEchoWithValidator()
	h := newAuthHandler(&usermock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/api/logout", nil)
	rec := httptest.NewRecorder()

	if err := h.Logout(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Logout error: %v", err)
	}
	var session *stdhttp.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			session = ck
		}
	}
	if session == nil {
		t.Fatal("no session cookie set")
	}
	if session.Value != "" || session.Expires.After(time.Now()) {
		t.Fatalf("cookie not expired: %+v", session)
	}
}

func TestMe(t *testing.T) {
	e := newEchoWithValidator()
	h := newAuthHandler(&usermock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodGet, "/api/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	middleware.SetCurrentUser(c, userDomain.CurrentUser{ID: 1, Username: "root", IsStaff: true})

	if err := h.Me(c); err != nil {
		t.Fatalf("Me error: %v", err)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["username"] != "root" || resp["role"] != "admin" {
		t.Fatalf("resp = %v", resp)
	}
}
