package service_test

import (
	"bytes"
	"context"
	"errors"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Nik0lakt/cafeteria-project/internal/entity"
	"github.com/Nik0lakt/cafeteria-project/internal/service"
)

func TestService_EnrollFace(t *testing.T) {
	t.Parallel()

	s, d := newService(t, service.Options{PhotoMaxSide: 100})
	img := pngImage(t, 400, 200)
	descriptor := entity.Descriptor{0.4, 0.3, 0.2, 0.1}

	var photo []byte

	d.repo.EXPECT().EmployeeByCard(gomock.Any(), "04A1B2C3").Return(enrolled, nil)
	d.extractor.EXPECT().Extract(gomock.Any(), img).Return(descriptor, true)
	d.repo.EXPECT().SaveFace(gomock.Any(), enrolled.ID, descriptor, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, _ entity.Descriptor, p []byte) error {
			photo = p
			return nil
		},
	)

	got, err := s.EnrollFace(context.Background(), "04A1B2C3", img)
	require.NoError(t, err)
	require.Equal(t, descriptor, got)

	// Stored photo is a JPEG scaled to fit 100px.
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(photo))
	require.NoError(t, err)
	require.Equal(t, 100, cfg.Width)
	require.Equal(t, 50, cfg.Height)
}

func TestService_EnrollFace_Errors(t *testing.T) {
	t.Parallel()

	t.Run("card not bound", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, service.Options{})

		d.repo.EXPECT().EmployeeByCard(gomock.Any(), "FFFF").Return(entity.Employee{}, entity.ErrCardNotBound)

		_, err := s.EnrollFace(context.Background(), "FFFF", pngImage(t, 8, 8))
		require.ErrorIs(t, err, entity.ErrCardNotBound)
	})

	t.Run("not an image", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, service.Options{})

		d.repo.EXPECT().EmployeeByCard(gomock.Any(), gomock.Any()).Return(enrolled, nil)

		_, err := s.EnrollFace(context.Background(), "04A1B2C3", []byte("not an image"))
		require.ErrorIs(t, err, entity.ErrNoFaceFound)
	})

	t.Run("no face", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, service.Options{})

		d.repo.EXPECT().EmployeeByCard(gomock.Any(), gomock.Any()).Return(enrolled, nil)
		d.extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(nil, false)

		_, err := s.EnrollFace(context.Background(), "04A1B2C3", pngImage(t, 8, 8))
		require.ErrorIs(t, err, entity.ErrNoFaceFound)
	})

	t.Run("save fails", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, service.Options{})
		errDB := errors.New("db down")

		d.repo.EXPECT().EmployeeByCard(gomock.Any(), gomock.Any()).Return(enrolled, nil)
		d.extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(entity.Descriptor{1}, true)
		d.repo.EXPECT().SaveFace(gomock.Any(), enrolled.ID, gomock.Any(), gomock.Any()).Return(errDB)

		_, err := s.EnrollFace(context.Background(), "04A1B2C3", pngImage(t, 8, 8))
		require.ErrorIs(t, err, errDB)
	})
}

func TestService_Transactions(t *testing.T) {
	t.Parallel()

	s, d := newService(t, service.Options{})

	txs := []entity.Transaction{{EmployeeID: enrolled.ID, AmountTotal: 10_000}}

	d.repo.EXPECT().Employee(gomock.Any(), enrolled.ID).Return(enrolled, nil)
	d.repo.EXPECT().Transactions(gomock.Any(), enrolled.ID, entity.TransactionFilter{
		Page:    1,
		Limit:   entity.DefaultPageLimit,
		SortBy:  entity.SortByCreatedAt,
		OrderBy: entity.DESC,
	}).Return(txs, 1, nil)

	got, total, err := s.Transactions(context.Background(), enrolled.ID, entity.TransactionFilter{})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, txs, got)

	_, _, err = s.Transactions(context.Background(), enrolled.ID, entity.TransactionFilter{SortBy: "name"})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	d.repo.EXPECT().Employee(gomock.Any(), int64(99)).Return(entity.Employee{}, entity.ErrEmployeeNotFound)

	_, _, err = s.Transactions(context.Background(), 99, entity.TransactionFilter{})
	require.ErrorIs(t, err, entity.ErrEmployeeNotFound)
}
