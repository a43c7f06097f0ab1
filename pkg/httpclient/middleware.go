// Package httpclient provides RoundTripper middleware for outbound API
// requests: request IDs, structured request logging, and OpenTelemetry
// instrumentation, composed the same way a server-side handler chain is.
package httpclient

import (
	"net/http"
	"time"

	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// Middleware wraps a RoundTripper with additional behaviour.
type Middleware func(http.RoundTripper) http.RoundTripper

// Wrap applies middlewares to rt so that the first listed middleware is the
// outermost. A nil rt wraps http.DefaultTransport.
func Wrap(rt http.RoundTripper, middlewares ...Middleware) http.RoundTripper {
	if rt == nil {
		rt = http.DefaultTransport
	}
	for i := len(middlewares) - 1; i >= 0; i-- {
		rt = middlewares[i](rt)
	}
	return rt
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// RequestID attaches a unique X-Request-ID header to every outbound request
// so client and backend logs can be correlated. An ID already present on the
// request is kept.
func RequestID() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if req.Header.Get("X-Request-ID") != "" {
				return next.RoundTrip(req)
			}
			// RoundTrippers must not mutate the caller's request.
			clone := req.Clone(req.Context())
			clone.Header.Set("X-Request-ID", uuid.New().String())
			return next.RoundTrip(clone)
		})
	}
}

// LogRequests logs every outbound request with method, URL, status, and
// duration using the zap logger carried in the request context.
func LogRequests() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			lg := zctx.From(req.Context())
			start := time.Now()

			resp, err := next.RoundTrip(req)
			if err != nil {
				lg.Warn("Request failed",
					zap.String("method", req.Method),
					zap.String("url", req.URL.String()),
					zap.Duration("duration", time.Since(start)),
					zap.Error(err),
				)
				return nil, err
			}

			lg.Debug("Request completed",
				zap.String("method", req.Method),
				zap.String("url", req.URL.String()),
				zap.Int("status", resp.StatusCode),
				zap.Duration("duration", time.Since(start)),
			)
			return resp, nil
		})
	}
}

// Instrument wraps the transport with OpenTelemetry HTTP instrumentation.
func Instrument() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return otelhttp.NewTransport(next)
	}
}
