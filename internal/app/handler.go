package app

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/posternapp/postern/internal/sec"
	"github.com/posternapp/postern/internal/store"
)

const secretGreeting = "You got my secret, welcome!"

type handler struct {
	users     store.Users
	logger    *slog.Logger
	indexFile string
}

func (h handler) register(e *echo.Echo) {
	e.File("/", h.indexFile)
	e.GET("/protected_resource/", h.protectedResource, h.requireBasicAuth)
}

func (h handler) protectedResource(c echo.Context) error {
	return c.String(http.StatusOK, secretGreeting)
}

// requireBasicAuth guards a route with HTTP Basic Auth. A missing header, an
// unknown username, and a wrong password all yield the identical 401 so the
// response never reveals whether a username exists.
func (h handler) requireBasicAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		credentials, ok := sec.FromRequest(c.Request())
		if !ok {
			return h.unauthorized(c, errors.New("missing basic auth header"))
		}

		ctx := c.Request().Context()
		user, err := sec.NewAccess(credentials, h.users).Check(ctx)
		if err != nil {
			return h.unauthorized(c, err)
		}

		c.SetRequest(c.Request().WithContext(sec.WithUser(ctx, user)))
		return next(c)
	}
}

func (h handler) unauthorized(c echo.Context, err error) error {
	h.logger.LogAttrs(
		c.Request().Context(),
		slog.LevelDebug,
		"access check failed",
		slog.Any("error", err),
	)
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Basic")
	return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
}
