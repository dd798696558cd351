package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Nik0lakt/cafeteria-project/pkg/config"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://u:p@localhost:5432/cafeteria")
	t.Setenv("EMBEDDER_URL", "http://embedder:8000")

	c, err := config.New(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	require.Equal(t, 8080, c.HTTP.Port)
	require.Equal(t, "info", c.Logger.Level)
	require.InDelta(t, 0.6, c.Liveness.Tolerance, 1e-9)
	require.Equal(t, 3*time.Minute, c.Liveness.SessionTTL)
	require.Equal(t, time.Minute, c.Liveness.SweepInterval)
	require.Equal(t, 50, c.Liveness.MaxFrames)
	require.Equal(t, 10, c.Liveness.FramesPerSecond)
	require.Equal(t, 1024, c.Embedder.MaxImageSide)
	require.Equal(t, []string{"kafka:9092"}, c.Kafka.Brokers)
	require.Empty(t, c.Redis.URL)
}

func TestNew_RequiredMissing(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")
	os.Unsetenv("POSTGRES_DSN")
	t.Setenv("EMBEDDER_URL", "http://embedder:8000")

	_, err := config.New(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}

func TestNew_LoadsEnvFile(t *testing.T) {
	t.Setenv("EMBEDDER_URL", "http://embedder:8000")
	t.Setenv("POSTGRES_DSN", "")
	os.Unsetenv("POSTGRES_DSN")
	t.Setenv("LIVENESS_MAX_FRAMES", "")
	os.Unsetenv("LIVENESS_MAX_FRAMES")

	path := filepath.Join(t.TempDir(), ".env")
	err := os.WriteFile(path, []byte("POSTGRES_DSN=postgres://file\nLIVENESS_MAX_FRAMES=7\n"), 0o600)
	require.NoError(t, err)

	c, err := config.New(path)
	require.NoError(t, err)
	require.Equal(t, "postgres://file", c.Postgres.DSN)
	require.Equal(t, 7, c.Liveness.MaxFrames)
}

func TestNewNotifier(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")

	c, err := config.NewNotifier(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.Equal(t, "123:abc", c.Telegram.Token)
	require.Equal(t, "cafeteria-notifier", c.Kafka.ConsumerID)
	require.False(t, c.Mailer.Enabled)
}
