package transport

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Nik0lakt/cafeteria-project/pkg/logger"
)

// LoggingRoundTripper propagates the request id and logs outgoing calls.
type LoggingRoundTripper struct {
	Transport http.RoundTripper
}

func NewLoggingRoundTripper(transport http.RoundTripper) *LoggingRoundTripper {
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &LoggingRoundTripper{Transport: transport}
}

func (t *LoggingRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	reqID := logger.RequestIDFromCtx(ctx)
	if reqID != "" {
		r.Header.Set("X-Request-Id", reqID)
	}

	target := fmt.Sprintf("%s %s", r.Method, r.URL.Redacted())

	slog.DebugContext(ctx, "outgoing request", "request", target)

	start := time.Now()

	resp, err := t.Transport.RoundTrip(r)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}

	slog.DebugContext(ctx, "incoming response",
		"response", target,
		"status", resp.StatusCode,
		"duration", time.Since(start).String(),
	)

	return resp, nil
}
