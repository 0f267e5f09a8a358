package middleware

import (
	stderrors "errors"
	"strings"

	"finledger/internal/errors"
	"finledger/internal/handlers"
	"finledger/internal/services"

	"github.com/labstack/echo/v4"
)

// RequireAuth validates the bearer token on each request and stores the
// resulting session in the request context under handlers.SessionContextKey.
// Ledger routes read that session explicitly; nothing downstream consults
// global auth state.
func RequireAuth(authService services.AuthServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || token == "" {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			sess, err := authService.ParseToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			c.Set(handlers.SessionContextKey, sess)
			return next(c)
		}
	}
}
