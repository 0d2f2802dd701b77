package middleware

import (
	deliveryctx "souk/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware assigns each request a tracing identifier.
type RequestIDMiddleware struct{}

// NewRequestIDMiddleware creates a new request ID middleware
func NewRequestIDMiddleware() *RequestIDMiddleware {
	return &RequestIDMiddleware{}
}

// Handle takes the caller-supplied X-Request-Id or generates one, then
// propagates it through the echo context, the request context and the
// response header.
func (m *RequestIDMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliveryctx.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		deliveryctx.SetRequestID(c, requestID)

		ctx := deliveryctx.WithRequestID(c.Request().Context(), requestID)
		c.SetRequest(c.Request().WithContext(ctx))

		c.Response().Header().Set(deliveryctx.HeaderXRequestID, requestID)

		return next(c)
	}
}
