package http

import (
	"context"
	"crypto/subtle"
	"net/http"
	"time"

	"ostrack/internal/adapters/out/postgres/userrepo"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// tokenLifetime bounds how long an issued token stays valid.
const tokenLifetime = 8 * time.Hour

// userReader is the credential lookup the login handler depends on.
type userReader interface {
	GetByUsername(ctx context.Context, username string) (userrepo.UserDTO, error)
}

// Authenticator issues JWTs for valid credentials.
type Authenticator struct {
	users  userReader
	secret []byte
}

// NewAuthenticator creates an authenticator over the given user store.
func NewAuthenticator(users userReader, secret []byte) *Authenticator {
	return &Authenticator{users: users, secret: secret}
}

// Login handles POST /login. A wrong username and a wrong password both
// answer 401 with the same message, and the password compare is constant
// time, so responses leak nothing about which part failed.
func (a *Authenticator) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	user, err := a.users.GetByUsername(c.Request().Context(), req.Username)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, errorResponse{
			Code:    http.StatusUnauthorized,
			Message: "invalid credentials",
		})
	}

	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(req.Password)) != 1 {
		return c.JSON(http.StatusUnauthorized, errorResponse{
			Code:    http.StatusUnauthorized,
			Message: "invalid credentials",
		})
	}

	token, err := a.issueToken(user)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "failed to issue token",
		})
	}

	return c.JSON(http.StatusOK, loginResponse{Token: token, Role: user.Role})
}

func (a *Authenticator) issueToken(user userrepo.UserDTO) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":   user.ID.String(),
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(tokenLifetime).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}
