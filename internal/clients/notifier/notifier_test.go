package notifier_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Nik0lakt/cafeteria-project/internal/clients/notifier"
	"github.com/Nik0lakt/cafeteria-project/internal/entity"
	"github.com/Nik0lakt/cafeteria-project/internal/mocks"
)

func TestNotifier_SendReceipt(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	p := mocks.NewMockPublisher(ctrl)

	r := entity.Receipt{TransactionID: uuid.Must(uuid.NewV4()), Amount: 15_000}

	p.EXPECT().Publish(gomock.Any(), r.TransactionID.String(), entity.NotificationEvent{
		Type:    entity.NotificationReceipt,
		Receipt: &r,
	}).Return(nil)

	notifier.New(p).SendReceipt(context.Background(), r)
}

func TestNotifier_SendManualPaymentReport(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	p := mocks.NewMockPublisher(ctrl)

	r := entity.ManualPaymentReport{TransactionID: uuid.Must(uuid.NewV4()), LivePhoto: []byte{1}}

	// Publish errors are swallowed.
	p.EXPECT().Publish(gomock.Any(), r.TransactionID.String(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, event any) error {
			e, ok := event.(entity.NotificationEvent)
			require.True(t, ok)
			require.Equal(t, entity.NotificationManualPayment, e.Type)
			require.Nil(t, e.Receipt)
			require.Equal(t, r, *e.Report)

			return errors.New("broker down")
		},
	)

	notifier.New(p).SendManualPaymentReport(context.Background(), r)
}
