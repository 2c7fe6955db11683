package middleware

import (
	"slices"
	"strings"

	deliverycontext "photoverify/internal/delivery/context"
	"photoverify/internal/domain/entity"
	domainerrors "photoverify/internal/domain/errors"
	"photoverify/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
}

// AuthMiddleware resolves the caller from a bearer token and enforces roles.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{sessionUC: params.SessionUC}
}

// Authenticate verifies the bearer token and stores the identity on both contexts.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return domainerrors.ErrUnauthenticated.WrapMessage("missing bearer token")
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		identity, err := m.sessionUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return err
		}

		deliverycontext.SetIdentity(c, identity)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithIdentity(c.Request().Context(), identity)))

		return next(c)
	}
}

// RequireRole allows the request only when the caller has one of the roles.
// It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := deliverycontext.GetIdentity(c)
			if identity == nil {
				return domainerrors.ErrUnauthenticated
			}
			if !slices.Contains(roles, identity.Role) {
				return domainerrors.ErrPermissionDenied
			}

			return next(c)
		}
	}
}
