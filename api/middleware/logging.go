// ABOUTME: Request logging middleware for API endpoints
// ABOUTME: Tags each request with an ID and logs status and timing, including outgoing search calls

package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"blog-search-api/core/interfaces"
)

// RequestIDHeader carries the request ID on responses
const RequestIDHeader = "X-Request-ID"

// slowRequestThreshold marks requests worth a warning
const slowRequestThreshold = 5 * time.Second

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.written {
		rw.statusCode = code
		rw.ResponseWriter.WriteHeader(code)
		rw.written = true
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// requestIDKey is the context key for request ID
type requestIDKey struct{}

// WithRequestID stores a request ID in ctx
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the request ID stored by the logging middleware
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// RequestLoggingMiddleware creates a middleware that logs all requests.
// An incoming X-Request-ID is kept; otherwise a new one is generated.
func RequestLoggingMiddleware(logger interfaces.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			w.Header().Set(RequestIDHeader, requestID)
			r = r.WithContext(WithRequestID(r.Context(), requestID))

			start := time.Now()
			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			logger.Info("Request started", map[string]interface{}{
				"request_id": requestID,
				"method":     r.Method,
				"path":       r.URL.Path,
				"remote_ip":  extractIP(r),
				"user_agent": r.UserAgent(),
			})

			next.ServeHTTP(wrapped, r)

			duration := time.Since(start)

			fields := ResponseLogFields(wrapped.statusCode, duration)
			fields["request_id"] = requestID
			fields["method"] = r.Method
			fields["path"] = r.URL.Path
			logger.Info("Request completed", fields)

			if duration > slowRequestThreshold {
				logger.Warn("Slow request detected", map[string]interface{}{
					"request_id": requestID,
					"method":     r.Method,
					"path":       r.URL.Path,
					"duration":   duration.String(),
				})
			}

			if wrapped.statusCode >= http.StatusInternalServerError {
				logger.Error("Request failed with server error", map[string]interface{}{
					"request_id": requestID,
					"method":     r.Method,
					"path":       r.URL.Path,
					"status":     wrapped.statusCode,
				})
			}
		})
	}
}

// LoggingRoundTripper implements http.RoundTripper with logging.
// Outgoing calls carry the request ID of the webhook call that caused them.
type LoggingRoundTripper struct {
	Transport http.RoundTripper
	Logger    interfaces.Logger
}

// NewLoggingRoundTripper wraps transport; nil means http.DefaultTransport
func NewLoggingRoundTripper(transport http.RoundTripper, logger interfaces.Logger) *LoggingRoundTripper {
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &LoggingRoundTripper{Transport: transport, Logger: logger}
}

// RoundTrip logs outgoing HTTP requests
func (t *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	requestID := RequestIDFromContext(req.Context())
	if requestID != "" {
		req = req.Clone(req.Context())
		req.Header.Set(RequestIDHeader, requestID)
	}

	t.Logger.Debug("Outgoing HTTP request", map[string]interface{}{
		"request_id": requestID,
		"method":     req.Method,
		"url":        req.URL.String(),
		"host":       req.URL.Host,
	})

	resp, err := t.Transport.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		t.Logger.Error("Outgoing HTTP request failed", map[string]interface{}{
			"request_id": requestID,
			"method":     req.Method,
			"url":        req.URL.String(),
			"duration":   duration.String(),
			"error":      err.Error(),
		})
		return nil, err
	}

	t.Logger.Debug("Outgoing HTTP response", map[string]interface{}{
		"request_id": requestID,
		"method":     req.Method,
		"url":        req.URL.String(),
		"status":     resp.StatusCode,
		"duration":   duration.String(),
	})

	return resp, nil
}

// ResponseLogFields creates log fields for a response
func ResponseLogFields(statusCode int, duration time.Duration) map[string]interface{} {
	return map[string]interface{}{
		"status":      statusCode,
		"duration":    duration.String(),
		"duration_ms": duration.Milliseconds(),
		"status_text": fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode)),
	}
}
