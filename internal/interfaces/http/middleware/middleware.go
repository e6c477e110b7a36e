// Package middleware provides HTTP middleware for the Chi router.
// Middleware components handle cross-cutting concerns like logging, rate
// limiting, metrics and request tracing.
//
// Chi Middleware Philosophy:
//   - Uses standard net/http handlers
//   - Composable middleware chain
//   - Context-based request scoping
package middleware

import (
	"context"
	"errors"
	"mime"
	"net"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/hapkiduki/dimension-go/internal/application/dto"
	"github.com/hapkiduki/dimension-go/internal/application/port"
	"github.com/hapkiduki/dimension-go/pkg/logger"
	"golang.org/x/time/rate"
)

// RequestIDHeader is the header name for request IDs.
const RequestIDHeader = "X-Request-ID"

// GetRequestID extracts the request ID from the context.
//
// Parameters:
//   - ctx: the request context
//
// Returns:
//   - string: the request ID, or empty string if not found
func GetRequestID(ctx context.Context) string {
	return logger.RequestIDFrom(ctx)
}

// writeError writes the JSON error envelope.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	resp := dto.NewErrorResponse[any](code, message)
	if id := GetRequestID(r.Context()); id != "" {
		resp.Meta = &dto.ResponseMeta{RequestID: id}
	}
	render.Status(r, status)
	render.JSON(w, r, resp)
}

// RequestID propagates the incoming X-Request-ID or generates a new one.
// The ID is added to the response headers and request context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set(RequestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(logger.WithRequestID(r.Context(), requestID)))
	})
}

// Logger returns a middleware that logs each HTTP request.
// It logs request method, path, status, latency, and client IP.
//
// Parameters:
//   - log: The logger to use
//
// Returns:
//   - func(http.Handler) http.Handler: the middleware function
func Logger(log port.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"query", r.URL.RawQuery,
				"status", status,
				"bytes", ww.BytesWritten(),
				"latency_ms", time.Since(start).Milliseconds(),
				"client_ip", r.RemoteAddr,
			}

			l := log.WithContext(r.Context())
			if status >= http.StatusInternalServerError {
				l.Error("HTTP Request", fields...)
				return
			}
			l.Info("HTTP Request", fields...)
		})
	}
}

// Recoverer returns a middleware that recovers from panics.
// It logs the panic and returns a 500 Internal Server Error response.
func Recoverer(log port.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					log.WithContext(r.Context()).Error("Panic recovered",
						"error", rec,
						"path", r.URL.Path,
						"stack", string(debug.Stack()),
					)
					writeError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// Metrics returns a middleware that records request counts and latencies.
// Requests are labelled by the matched chi route pattern, not the raw path.
func Metrics(m port.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					route = p
				}
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			m.Counter("http_requests_total", 1, map[string]string{
				"method": r.Method,
				"route":  route,
				"status": strconv.Itoa(status),
			})
			m.Timing("http_request_duration", time.Since(start), map[string]string{
				"method": r.Method,
				"route":  route,
			})
		})
	}
}

// RateLimiterConfig contains rate limiter configuration.
type RateLimiterConfig struct {
	// RequestsPerSecond is the number of requests allowed per second.
	RequestsPerSecond float64

	// Burst is the maximum burst size.
	Burst int

	// KeyFunc extracts the key for rate limiting (e.g., client IP).
	KeyFunc func(*http.Request) string
}

// DefaultRateLimiterConfig returns the default rate limiter configuration.
func DefaultRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		RequestsPerSecond: 10,
		Burst:             20,
		KeyFunc:           ClientIP,
	}
}

// ClientIP returns the host part of r.RemoteAddr.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimiter returns a middleware that limits request rate per client.
// It uses a token bucket per key.
//
// Parameters:
//   - config: Rate limiter configuration
//
// Returns:
//   - func(http.Handler) http.Handler: the middleware function
func RateLimiter(config RateLimiterConfig) func(http.Handler) http.Handler {
	if config.KeyFunc == nil {
		config.KeyFunc = ClientIP
	}

	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)
	getLimiter := func(key string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		limiter, ok := limiters[key]
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(config.RequestsPerSecond), config.Burst)
			limiters[key] = limiter
		}
		return limiter
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !getLimiter(config.KeyFunc(r)).Allow() {
				w.Header().Set("Retry-After", "1")
				writeError(w, r, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, please try again later")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SecureHeaders adds security headers suitable for a JSON API.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		h.Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

// APIVersion returns a middleware that adds the API version header.
func APIVersion(version string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-API-Version", version)
			next.ServeHTTP(w, r)
		})
	}
}

// ContentTypeJSON ensures requests with a body declare a JSON content type.
// Parameters such as charset are accepted.
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
			mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
			if err != nil || mediaType != "application/json" {
				writeError(w, r, http.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", "Content-Type must be application/json")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// MaxBodySize caps request bodies at n bytes.
func MaxBodySize(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, n)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Timeout bounds the request context. Handlers observe the deadline through
// ctx; when the handler returns after the deadline without having written a
// response, a 504 is sent.
//
// Parameters:
//   - timeout: Maximum request duration
//
// Returns:
//   - func(http.Handler) http.Handler: the middleware function
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			r = r.WithContext(ctx)
			next.ServeHTTP(ww, r)

			if errors.Is(ctx.Err(), context.DeadlineExceeded) && ww.Status() == 0 {
				writeError(w, r, http.StatusGatewayTimeout, "TIMEOUT", "Request timed out")
			}
		})
	}
}

// RealIP sets r.RemoteAddr from the first X-Forwarded-For entry or X-Real-IP.
func RealIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			r.RemoteAddr = strings.TrimSpace(first)
		} else if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
			r.RemoteAddr = strings.TrimSpace(xrip)
		}
		next.ServeHTTP(w, r)
	})
}
