package observability

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the correlation id on requests and responses.
const RequestIDHeader = "X-Request-Id"

const requestIDKey = "request_id"

// UnmatchedRoute labels counters for requests no route served, so unknown
// paths share one key.
const UnmatchedRoute = "unmatched"

// RequestID reuses the caller's X-Request-Id or generates one.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		EnsureRequestID(c)
		return c.Next()
	}
}

// EnsureRequestID assigns a request id and response header if the request
// has none yet, and returns it.
func EnsureRequestID(c *fiber.Ctx) string {
	if rid := RequestIDFromContext(c); rid != "" {
		return rid
	}
	rid := strings.TrimSpace(c.Get(RequestIDHeader))
	if rid == "" {
		rid = uuid.NewString()
	}
	c.Locals(requestIDKey, rid)
	c.Set(RequestIDHeader, rid)
	return rid
}

// RouteLabel is the registered route pattern serving c, or UnmatchedRoute
// for a 404.
func RouteLabel(c *fiber.Ctx, status int) string {
	if status == fiber.StatusNotFound {
		return UnmatchedRoute
	}
	return c.Route().Path
}

// RequestIDFromContext returns the id assigned by RequestID.
func RequestIDFromContext(c *fiber.Ctx) string {
	rid, _ := c.Locals(requestIDKey).(string)
	return rid
}

// RequestLogger logs one line per request and feeds the request counters.
func RequestLogger(logger *zap.Logger, metrics *Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		dur := time.Since(start)

		status := c.Response().StatusCode()
		metrics.RecordRequest(RouteLabel(c, status), c.Method(), status, dur)

		logger.Info("http_request",
			zap.String("request_id", RequestIDFromContext(c)),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Int64("duration_ms", dur.Milliseconds()),
		)
		return err
	}
}
