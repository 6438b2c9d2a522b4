package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a plain function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthCheck returns a handler that reports service health. A failing
// store turns the response into a 503.
func HealthCheck(stores map[string]Pinger, log logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		status := http.StatusOK
		checks := make(map[string]string, len(stores))
		for name, store := range stores {
			if err := store.Ping(c.Request().Context()); err != nil {
				log.WithError(err).WithField("store", name).Error("health check failed")
				checks[name] = "unavailable"
				status = http.StatusServiceUnavailable
				continue
			}
			checks[name] = "ok"
		}

		return c.JSON(status, echo.Map{
			"status":  http.StatusText(status),
			"service": "wanderlog-api",
			"stores":  checks,
		})
	}
}
