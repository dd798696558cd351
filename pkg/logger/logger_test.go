package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Nik0lakt/cafeteria-project/pkg/logger"
)

//nolint:paralleltest
func TestHandler_AddsContextFields(t *testing.T) {
	buf := new(bytes.Buffer)

	l, err := logger.NewWithWriter(buf, "debug", "json")
	require.NoError(t, err)

	ctx := logger.WithRequestID(context.Background(), "req-1")
	ctx = logger.WithTerminalID(ctx, "kiosk-3")
	ctx = logger.WithEmployeeID(ctx, 42)

	l.With("component", "test").InfoContext(ctx, "hello")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))

	require.Equal(t, "hello", rec["msg"])
	require.Equal(t, "req-1", rec["request_id"])
	require.Equal(t, "kiosk-3", rec["terminal_id"])
	require.EqualValues(t, 42, rec["employee_id"])
	require.Equal(t, "test", rec["component"])
}

//nolint:paralleltest
func TestNew_InvalidLevel(t *testing.T) {
	_, err := logger.NewWithWriter(new(bytes.Buffer), "loud", "json")
	require.Error(t, err)
}

func TestRequestIDFromCtx(t *testing.T) {
	t.Parallel()

	require.Empty(t, logger.RequestIDFromCtx(context.Background()))
	require.Equal(t, "abc", logger.RequestIDFromCtx(logger.WithRequestID(context.Background(), "abc")))
}
