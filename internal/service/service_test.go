package service_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Nik0lakt/cafeteria-project/internal/mocks"
	"github.com/Nik0lakt/cafeteria-project/internal/service"
)

var fixedNow = time.Date(2026, 3, 10, 13, 30, 0, 0, time.Local)

type deps struct {
	repo      *mocks.MockRepository
	sessions  *mocks.MockSessionStore
	extractor *mocks.MockExtractor
	notifier  *mocks.MockNotifier
	limiter   *mocks.MockFrameLimiter
}

func newService(t *testing.T, opts service.Options) (*service.Service, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)

	d := deps{
		repo:      mocks.NewMockRepository(ctrl),
		sessions:  mocks.NewMockSessionStore(ctrl),
		extractor: mocks.NewMockExtractor(ctrl),
		notifier:  mocks.NewMockNotifier(ctrl),
		limiter:   mocks.NewMockFrameLimiter(ctrl),
	}

	if opts.Now == nil {
		opts.Now = func() time.Time { return fixedNow }
	}

	return service.New(d.repo, d.sessions, d.extractor, d.notifier, d.limiter, opts), d
}

// runInTx makes the InTx mock call its callback like the real repository does.
func runInTx(repo *mocks.MockRepository) *gomock.Call {
	return repo.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func pngImage(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		for y := range h {
			img.Set(x, y, color.RGBA{R: uint8(x * 3), G: uint8(y * 5), B: 90, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func TestOptions_Defaults(t *testing.T) {
	t.Parallel()

	s, d := newService(t, service.Options{})

	// Zero options: frames stop at the default bound.
	session := passedSession(false)
	session.FramesProcessed = service.DefaultMaxFrames

	d.sessions.EXPECT().Get(gomock.Any(), session.ID).Return(session, nil)

	status, err := s.SubmitFrame(context.Background(), session.ID, []byte("frame"))
	require.NoError(t, err)
	require.Equal(t, "given_up", status.String())
}
