package server

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/core/internal/domain/entities"
	"github.com/taskboard/core/internal/ports"
)

const identityContextKey = "identity"

// authMiddleware extracts and verifies the bearer token and stores the
// caller identity in the request context. All failures surface as the
// same 401 regardless of cause.
func (s *Server) authMiddleware(authService ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				s.logger.LogSecurityEvent("missing_authorization_header", "", c.RealIP(), nil)
				return entities.ErrUnauthorized
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader || tokenString == "" {
				s.logger.LogSecurityEvent("malformed_authorization_header", "", c.RealIP(), nil)
				return entities.ErrUnauthorized
			}

			identity, err := authService.Authenticate(tokenString)
			if err != nil {
				// Authenticate already logged the decode failure kind.
				s.logger.LogSecurityEvent("invalid_token", "", c.RealIP(), nil)
				return entities.ErrUnauthorized
			}

			c.Set(identityContextKey, identity)

			return next(c)
		}
	}
}

// requireOwner is the authorization gate: the owner named in the route
// must be the verified caller. It runs before any handler so a
// mismatch terminates the request without touching the task store.
func (s *Server) requireOwner(authService ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := getIdentityFromContext(c)
			routeOwnerID := c.Param("owner_id")

			if err := authService.Authorize(routeOwnerID, identity); err != nil {
				subjectID := ""
				if identity != nil {
					subjectID = identity.SubjectID
				}
				s.logger.LogSecurityEvent("owner_mismatch", subjectID, c.RealIP(), map[string]interface{}{
					"route_owner_id": routeOwnerID,
					"endpoint":       c.Request().URL.Path,
				})
				return err
			}

			return next(c)
		}
	}
}

// getIdentityFromContext extracts the verified caller identity set by
// authMiddleware; nil when authentication has not run
func getIdentityFromContext(c echo.Context) *entities.Identity {
	identity, ok := c.Get(identityContextKey).(*entities.Identity)
	if !ok {
		return nil
	}

	return identity
}
