package embedder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/Nik0lakt/cafeteria-project/internal/entity"
	"github.com/Nik0lakt/cafeteria-project/internal/face"
	"github.com/Nik0lakt/cafeteria-project/pkg/config"
	"github.com/Nik0lakt/cafeteria-project/pkg/imaging"
	"github.com/Nik0lakt/cafeteria-project/pkg/transport"
)

const (
	embedPath           = "/embed/face"
	defaultRetryWaitMax = time.Second * 2
	maxErrorBody        = 512
)

type Client struct {
	client       *http.Client
	baseURL      string
	maxImageSide int
	normalize    func(data []byte, maxSide int) ([]byte, error)
}

func NewClient(cfg config.Embedder) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryMax
	retryClient.RetryWaitMin = 200 * time.Millisecond
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.HTTPClient.Transport = transport.NewLoggingRoundTripper(retryClient.HTTPClient.Transport)

	retryClient.Logger = nil

	// Only transport errors are retried. The server's answer is final.
	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}

		return false, nil
	}

	return &Client{
		client:       retryClient.StandardClient(),
		baseURL:      strings.TrimRight(cfg.URL, "/"),
		maxImageSide: cfg.MaxImageSide,
		normalize:    imaging.Normalize,
	}
}

type Face struct {
	FaceIndex int       `json:"face_index"`
	Embedding []float32 `json:"embedding"`
	BBox      []float64 `json:"bbox"`
	DetScore  float64   `json:"det_score"`
}

type EmbedResponse struct {
	FacesCount int    `json:"faces_count"`
	Faces      []Face `json:"faces"`
}

// Extract returns the descriptor of the first face the server detects in image.
// Every failure is logged and reported as no face, including a panic while
// decoding image.
func (c *Client) Extract(ctx context.Context, image []byte) (desc entity.Descriptor, found bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.WarnContext(ctx, "face extraction failed", "error", fmt.Sprintf("panic: %v", r))
			desc, found = nil, false
		}
	}()

	resp, err := c.Embed(ctx, image)
	if err != nil {
		slog.WarnContext(ctx, "face extraction failed", "error", err)
		return nil, false
	}

	if len(resp.Faces) == 0 {
		return nil, false
	}

	first := slices.MinFunc(resp.Faces, func(a, b Face) int {
		return a.FaceIndex - b.FaceIndex
	})

	if !face.Valid(first.Embedding) {
		slog.WarnContext(ctx, "face extraction failed", "error", "empty or non-finite embedding")
		return nil, false
	}

	if resp.FacesCount > 1 {
		slog.DebugContext(ctx, "several faces in frame", "faces", resp.FacesCount, "face_index", first.FaceIndex)
	}

	return entity.Descriptor(first.Embedding), true
}

// Embed uploads the normalized image and returns the raw detector answer.
func (c *Client) Embed(ctx context.Context, image []byte) (EmbedResponse, error) {
	photo, err := c.normalize(image, c.maxImageSide)
	if err != nil {
		return EmbedResponse{}, fmt.Errorf("normalize image: %w", err)
	}

	body, contentType, err := multipartFile(photo)
	if err != nil {
		return EmbedResponse{}, fmt.Errorf("build form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+embedPath, bytes.NewReader(body))
	if err != nil {
		return EmbedResponse{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return EmbedResponse{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return EmbedResponse{}, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	var res EmbedResponse

	err = json.NewDecoder(resp.Body).Decode(&res)
	if err != nil {
		return EmbedResponse{}, fmt.Errorf("decode response: %w", err)
	}

	return res, nil
}

func multipartFile(photo []byte) ([]byte, string, error) {
	var buf bytes.Buffer

	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", "frame.jpg")
	if err != nil {
		return nil, "", err
	}

	_, err = part.Write(photo)
	if err != nil {
		return nil, "", err
	}

	err = w.Close()
	if err != nil {
		return nil, "", err
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}
