package http

import (
	"fmt"
	"net/http"
	"strings"

	"ostrack/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// callerContextKey is the echo context key holding the authenticated caller's
// sector role.
const callerContextKey = "caller"

// AuthMiddleware validates the Bearer token and stores the caller's role in
// the request context. Tokens are HS256-signed and carry `id` and `role`
// claims; a token without a role is rejected.
func AuthMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return c.JSON(http.StatusUnauthorized, errorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			role, err := parseRole(token, secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid token",
				})
			}

			c.Set(callerContextKey, role)
			return next(c)
		}
	}
}

func parseRole(tokenString string, secret []byte) (kernel.Sector, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
		}
		return secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", jwt.ErrTokenUnverifiable
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return "", fmt.Errorf("token has no role claim")
	}

	return kernel.Sector(role), nil
}

// callerFrom returns the authenticated caller's sector role. The auth
// middleware guarantees the value is present on protected routes.
func callerFrom(c echo.Context) kernel.Sector {
	role, _ := c.Get(callerContextKey).(kernel.Sector)
	return role
}
