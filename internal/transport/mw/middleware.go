package mw

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// JWTAuth validates the Bearer token with the HS256 shared secret.
// The "sub" claim (user ID) is stored in echo.Context for downstream use.
func JWTAuth(secret string) echo.MiddlewareFunc {
	key := []byte(secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return key, nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid claims")
			}

			userID, _ := claims["sub"].(string)
			c.Set("userID", userID)

			return next(c)
		}
	}
}

// SessionResolver resolves the page-session ID from the X-Session-ID header.
// Each open page generates one and sends it on every request, so pagination
// signals reach only the page whose viewport changed.
func SessionResolver() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID := c.Request().Header.Get("X-Session-ID")
			if sessionID == "" {
				// Fallback: one session per user.
				sessionID, _ = c.Get("userID").(string)
			}
			if sessionID == "" {
				return echo.NewHTTPError(http.StatusBadRequest, "X-Session-ID header is required")
			}
			c.Set("sessionID", sessionID)
			return next(c)
		}
	}
}
