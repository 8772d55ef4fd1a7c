// Package app contains the web front-end.
package app

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/posternapp/postern/internal/config"
	"github.com/posternapp/postern/internal/store"
)

// New creates the web front-end server. The users store is shared across
// requests; each protected request gets its own access check bound to that
// request's credentials.
func New(cfg config.Config, logger *slog.Logger, users store.Users) *echo.Echo {
	srv := echo.New()

	srv.HideBanner = true
	srv.HidePort = true
	srv.Logger.SetLevel(log.OFF)

	if cfg.DevMode {
		srv.Debug = true
		srv.Use(logRequests(logger))
	} else {
		srv.Use(
			middleware.Recover(),
			middleware.Secure(),
		)
	}

	srv.Use(
		middleware.Gzip(),
		middleware.RequestID(),
	)

	handler{users: users, logger: logger, indexFile: cfg.IndexFile}.register(srv)
	return srv
}

func logRequests(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			latency := time.Since(start)

			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			attrs := []slog.Attr{
				slog.String("method", req.Method),
				slog.String("uri", req.RequestURI),
				slog.String("route", c.Path()),
				slog.Duration("latency", latency),
				slog.Int("status", res.Status),
			}
			if err != nil {
				attrs = append(attrs, slog.Any("error", err))
			}
			logger.LogAttrs(
				req.Context(),
				slog.LevelDebug,
				"request handled",
				attrs...,
			)
			return err
		}
	}
}
