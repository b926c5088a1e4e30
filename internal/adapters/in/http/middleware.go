package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"printmarket/internal/core/ports"
)

const actorContextKey = "actor"

// AuthMiddleware resolves the bearer token into an actor and stores it in
// the request context. Requests without a valid token get 401.
func AuthMiddleware(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)

			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			actor, err := verifier.Verify(ctx.Request().Context(), token)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid or expired token",
				})
			}

			ctx.Set(actorContextKey, actor)

			return next(ctx)
		}
	}
}

// actorFromContext returns the actor stored by AuthMiddleware.
func actorFromContext(ctx echo.Context) (ports.Actor, bool) {
	actor, ok := ctx.Get(actorContextKey).(ports.Actor)
	return actor, ok
}
