package embedder_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Nik0lakt/cafeteria-project/internal/clients/embedder"
	"github.com/Nik0lakt/cafeteria-project/internal/entity"
	"github.com/Nik0lakt/cafeteria-project/pkg/config"
)

func newClient(url string) *embedder.Client {
	return embedder.NewClient(config.Embedder{
		URL:          url,
		Timeout:      2 * time.Second,
		RetryMax:     1,
		MaxImageSide: 64,
	})
}

func pngImage(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		img.Set(x, x%h, color.White)
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func TestClient_Extract(t *testing.T) {
	t.Parallel()

	var uploaded image.Config

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/embed/face" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()

		data, _ := io.ReadAll(file)
		uploaded, _ = jpeg.DecodeConfig(bytes.NewReader(data))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"faces_count": 2,
			"faces": [
				{"face_index": 1, "embedding": [0.9, 0.9], "bbox": [1, 2, 3, 4], "det_score": 0.99},
				{"face_index": 0, "embedding": [0.1, 0.2], "bbox": [5, 6, 7, 8], "det_score": 0.71}
			]
		}`))
	}))
	defer srv.Close()

	d, ok := newClient(srv.URL + "/").Extract(context.Background(), pngImage(t, 256, 128))
	require.True(t, ok)
	require.Equal(t, entity.Descriptor{0.1, 0.2}, d)

	// Uploaded as a JPEG shrunk to the configured side.
	require.Equal(t, 64, uploaded.Width)
	require.Equal(t, 32, uploaded.Height)
}

func TestClient_Extract_NotFound(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name   string
		status int
		body   string
	}{
		{name: "no faces", status: http.StatusOK, body: `{"faces_count": 0, "faces": []}`},
		{name: "empty embedding", status: http.StatusOK, body: `{"faces_count": 1, "faces": [{"face_index": 0, "embedding": []}]}`},
		{name: "server error", status: http.StatusInternalServerError, body: `{"detail": "model not loaded"}`},
		{name: "broken json", status: http.StatusOK, body: `{"faces": [`},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var calls atomic.Int32

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, ok := newClient(srv.URL).Extract(context.Background(), pngImage(t, 16, 16))
			require.False(t, ok)
			require.Equal(t, int32(1), calls.Load(), "server answers are not retried")
		})
	}
}

func TestClient_Extract_BadImageSkipsUpload(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, ok := newClient(srv.URL).Extract(context.Background(), []byte("definitely not an image"))
	require.False(t, ok)
	require.Zero(t, calls.Load())
}

func TestClient_Extract_Unreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, ok := newClient(url).Extract(context.Background(), pngImage(t, 16, 16))
	require.False(t, ok)
}
