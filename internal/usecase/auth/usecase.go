package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	userDomain "github.com/ITZ-HURAIRAH18/LoanVerse/internal/domain/user"
	"github.com/ITZ-HURAIRAH18/LoanVerse/pkg/apperr"
)

// Claims is the token payload the middleware resolves a CurrentUser from.
type Claims struct {
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
	IsStaff  bool   `json:"is_staff"`
	jwt.RegisteredClaims
}

type Usecase struct {
	users    userDomain.Repository
	secret   []byte
	tokenTTL time.Duration
}

func NewUsecase(users userDomain.Repository, secret []byte, tokenTTL time.Duration) *Usecase {
	return &Usecase{users: users, secret: secret, tokenTTL: tokenTTL}
}

type SignupInput struct {
	Username string
	Email    string
	Password string
}

func (u *Usecase) Signup(ctx context.Context, in SignupInput) error {
	if in.Username == "" {
		return apperr.Invalid("username is required")
	}
	if len(in.Password) < 6 {
		return apperr.Invalid("password must be at least 6 characters")
	}
	if _, err := u.users.GetByUsername(ctx, in.Username); err == nil {
		return apperr.Conflict("username %q is taken", in.Username)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return u.users.Create(ctx, &userDomain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
	})
}

type SessionDTO struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	IsStaff  bool   `json:"is_staff"`
	Role     string `json:"role"`
}

func (u *Usecase) Login(ctx context.Context, username, password string) (*SessionDTO, error) {
	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthenticated("invalid username or password")
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)) != nil {
		return nil, apperr.Unauthenticated("invalid username or password")
	}

	token, err := u.issueToken(usr)
	if err != nil {
		return nil, err
	}
	return &SessionDTO{
		Token:    token,
		Username: usr.Username,
		IsStaff:  usr.IsStaff,
		Role:     roleOf(usr.IsStaff),
	}, nil
}

func (u *Usecase) issueToken(usr *userDomain.User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID:   usr.ID,
		Username: usr.Username,
		IsStaff:  usr.IsStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(u.tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
}

// ParseToken validates a token and returns the caller it identifies.
func (u *Usecase) ParseToken(tokenString string) (*userDomain.CurrentUser, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperr.Unauthenticated("unexpected signing method")
		}
		return u.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.Unauthenticated("invalid or expired session")
	}
	return &userDomain.CurrentUser{
		ID:       claims.UserID,
		Username: claims.Username,
		IsStaff:  claims.IsStaff,
	}, nil
}

// SeedAdmin creates the staff account on first boot; it is a no-op when
// the username already exists.
func (u *Usecase) SeedAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}
	if _, err := u.users.GetByUsername(ctx, username); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return u.users.Create(ctx, &userDomain.User{
		Username:     username,
		PasswordHash: string(hash),
		IsStaff:      true,
	})
}

func roleOf(isStaff bool) string {
	if isStaff {
		return "admin"
	}
	return "user"
}
