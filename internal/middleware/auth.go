package middleware

import (
	stderrors "errors"

	"finance-tracker/internal/errors"
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	// SubjectContextKey holds the authenticated token subject
	SubjectContextKey = "subject"
	// TokenIDContextKey holds the token's jti
	TokenIDContextKey = "token_jti"
)

// RequireAuth creates a middleware that requires a valid bearer token.
// Every outcome is recorded as an authentication_event.
func RequireAuth(tokenService services.TokenServiceInterface, metrics services.MetricsRecorderInterface) echo.MiddlewareFunc {
	if metrics == nil {
		metrics = services.NewNoopMetrics()
	}

	record := func(event string) {
		metrics.IncrementCounter("authentication_event", map[string]string{"event_type": event})
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				record("missing_token")
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				record("invalid_format")
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					record("expired_token")
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				record("invalid_token")
				return handlers.SendError(c, errors.AuthInvalidToken)
			}

			record("success")
			c.Set(SubjectContextKey, claims.Subject)
			c.Set(TokenIDContextKey, claims.ID)

			return next(c)
		}
	}
}

// GetSubject returns the authenticated subject, or empty string when auth is disabled
func GetSubject(c echo.Context) string {
	subject, ok := c.Get(SubjectContextKey).(string)
	if !ok {
		return ""
	}
	return subject
}
