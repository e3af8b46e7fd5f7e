package httpserver

import (
	"context"
	"net/http"
	"time"
)

// ReadinessCheck reports whether a dependency can serve traffic.
type ReadinessCheck interface {
	Ping(context.Context) error
}

type ReadinessCheckFunc func(context.Context) error

func (f ReadinessCheckFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

var _ Controller = (*ReadinessController)(nil)

type ReadinessController struct {
	checks map[string]ReadinessCheck
}

func NewReadinessController(checks map[string]ReadinessCheck) *ReadinessController {
	return &ReadinessController{checks: checks}
}

func (c *ReadinessController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /readyz", c.ready())
}

func (c *ReadinessController) ready() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		output := make(map[string]string, len(c.checks))
		for name, check := range c.checks {
			if err := check.Ping(ctx); err != nil {
				status = http.StatusServiceUnavailable
				output[name] = err.Error()
				continue
			}
			output[name] = "ok"
		}

		ReplyJSONResponse(w, status, output)
	}
}
