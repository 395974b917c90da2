package middleware

import (
	"context"
	"fmt"
	"strings"

	jwtpkg "github.com/earnnest/earnnest-web/internal/pkg/jwt"
	"github.com/earnnest/earnnest-web/internal/pkg/logger"
	"github.com/earnnest/earnnest-web/internal/pkg/models"
	"github.com/labstack/echo/v4"
)

type sessionKey struct{}

// SessionMiddleware extracts an optional bearer token from the request.
// A valid token yields an authenticated session; a missing or invalid one
// downgrades to an anonymous session rather than rejecting the request,
// since public views render with reduced functionality.
func SessionMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := models.AnonymousSession()

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader != "" {
				parts := strings.Split(authHeader, " ")
				if len(parts) == 2 && parts[0] == "Bearer" {
					tokenString := parts[1]
					claims, err := jwtpkg.ValidateToken(tokenString, config.Secret)
					if err != nil {
						logger.Debug("Bearer token rejected, continuing unauthenticated",
							logger.Err(err))
					} else {
						session = sessionFromClaims(tokenString, *claims)
					}
				}
			}

			c.Set("session", session)
			if session.Authenticated {
				c.Set("user_id", session.UserID)
			}

			ctx := WithSession(c.Request().Context(), session)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

func sessionFromClaims(token string, claims map[string]interface{}) models.Session {
	userID, ok := claims["user_id"]
	if !ok {
		return models.AnonymousSession()
	}

	session := models.Session{
		UserID:        fmt.Sprintf("%v", userID),
		Token:         token,
		Authenticated: true,
	}
	if email, ok := claims["email"]; ok {
		session.Email = fmt.Sprintf("%v", email)
	}
	return session
}

// WithSession attaches the session to a context
func WithSession(ctx context.Context, session models.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFromContext returns the session attached to the context,
// or an anonymous session when none is present
func SessionFromContext(ctx context.Context) models.Session {
	if session, ok := ctx.Value(sessionKey{}).(models.Session); ok {
		return session
	}
	return models.AnonymousSession()
}

// GetSession returns the session stored on the Echo context
func GetSession(c echo.Context) models.Session {
	if session, ok := c.Get("session").(models.Session); ok {
		return session
	}
	return models.AnonymousSession()
}

// RequireAuth rejects unauthenticated requests. Mutating routes sit behind
// this; read views stay public.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !GetSession(c).Authenticated {
				return echo.NewHTTPError(401, "Authentication required")
			}
			return next(c)
		}
	}
}
