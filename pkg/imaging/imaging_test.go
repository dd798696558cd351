package imaging_test

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Nik0lakt/cafeteria-project/pkg/imaging"
)

func pngImage(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		for y := range h {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name          string
		width, height int
		maxSide       int
		wantW, wantH  int
	}{
		{name: "landscape shrinks", width: 400, height: 200, maxSide: 100, wantW: 100, wantH: 50},
		{name: "portrait shrinks", width: 150, height: 300, maxSide: 100, wantW: 50, wantH: 100},
		{name: "small kept", width: 80, height: 60, maxSide: 100, wantW: 80, wantH: 60},
		{name: "no limit", width: 120, height: 90, maxSide: 0, wantW: 120, wantH: 90},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := imaging.Normalize(pngImage(t, tt.width, tt.height), tt.maxSide)
			require.NoError(t, err)

			cfg, err := jpeg.DecodeConfig(bytes.NewReader(out))
			require.NoError(t, err)
			require.Equal(t, tt.wantW, cfg.Width)
			require.Equal(t, tt.wantH, cfg.Height)
		})
	}
}

func TestNormalize_Invalid(t *testing.T) {
	t.Parallel()

	_, err := imaging.Normalize(nil, 100)
	require.ErrorIs(t, err, imaging.ErrEmptyImage)

	_, err = imaging.Normalize([]byte("definitely not an image"), 100)
	require.Error(t, err)
}

// pngHeader returns a PNG signature and IHDR chunk declaring a w x h RGBA image
// with no pixel data.
func pngHeader(t *testing.T, w, h uint32) []byte {
	t.Helper()

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], w)
	binary.BigEndian.PutUint32(ihdr[4:], h)
	ihdr[8] = 8 // bit depth
	ihdr[9] = 6 // truecolor with alpha

	chunk := append([]byte("IHDR"), ihdr...)

	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")
	require.NoError(t, binary.Write(&buf, binary.BigEndian, uint32(len(ihdr))))
	buf.Write(chunk)
	require.NoError(t, binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(chunk)))

	return buf.Bytes()
}

func TestNormalize_TooLarge(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name          string
		width, height uint32
	}{
		{name: "square", width: 20000, height: 20000},
		{name: "wide strip", width: 1 << 20, height: 64},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := imaging.Normalize(pngHeader(t, tt.width, tt.height), 100)
			require.ErrorIs(t, err, imaging.ErrImageTooLarge)
		})
	}
}
