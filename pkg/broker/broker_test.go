package broker_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/Nik0lakt/cafeteria-project/pkg/broker"
)

type fakeWriter struct {
	mu   sync.Mutex
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.err != nil {
		return w.err
	}

	w.msgs = append(w.msgs, msgs...)

	return nil
}

func (w *fakeWriter) Close() error { return nil }

type fakeReader struct {
	ch        chan kafka.Message
	mu        sync.Mutex
	committed []int64
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	select {
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	case m := <-r.ch:
		return m, nil
	}
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}

	return nil
}

func (r *fakeReader) Close() error { return nil }

func (r *fakeReader) committedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.committed)
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProducer_Publish(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	p := broker.NewProducerWithWriter(discard(), w, "notifications")

	err := p.Publish(context.Background(), "tx-1", map[string]string{"type": "receipt"})
	require.NoError(t, err)

	require.Len(t, w.msgs, 1)
	require.Equal(t, "notifications", w.msgs[0].Topic)
	require.Equal(t, []byte("tx-1"), w.msgs[0].Key)
	require.JSONEq(t, `{"type":"receipt"}`, string(w.msgs[0].Value))

	w.err = errors.New("broker down")
	require.Error(t, p.Publish(context.Background(), "tx-2", struct{}{}))

	require.Error(t, p.Publish(context.Background(), "tx-3", make(chan int)))
}

func TestConsumer_DispatchesByTopic(t *testing.T) {
	t.Parallel()

	r := &fakeReader{ch: make(chan kafka.Message)}
	c := broker.NewConsumerWithReader(discard(), r)

	got := make(chan string, 3)

	c.Handle("notifications", func(_ context.Context, msg kafka.Message) error {
		var v map[string]string
		if err := json.Unmarshal(msg.Value, &v); err != nil {
			return err
		}

		got <- v["type"]

		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	c.Consume(ctx)

	r.ch <- kafka.Message{Topic: "notifications", Offset: 1, Value: []byte(`{"type":"receipt"}`)}
	r.ch <- kafka.Message{Topic: "notifications", Offset: 2, Value: []byte(`not json`)}
	r.ch <- kafka.Message{Topic: "other", Offset: 3}
	r.ch <- kafka.Message{Topic: "notifications", Offset: 4, Value: []byte(`{"type":"manual_payment"}`)}

	require.Equal(t, "receipt", <-got)
	require.Equal(t, "manual_payment", <-got)

	require.Eventually(t, func() bool { return r.committedCount() == 4 }, time.Second, 5*time.Millisecond)

	cancel()
	c.Close()
}

func TestConsumer_RecoversHandlerPanic(t *testing.T) {
	t.Parallel()

	r := &fakeReader{ch: make(chan kafka.Message)}
	c := broker.NewConsumerWithReader(discard(), r)

	c.Handle("t", func(context.Context, kafka.Message) error {
		panic("bad handler")
	})

	ctx, cancel := context.WithCancel(context.Background())
	c.Consume(ctx)

	r.ch <- kafka.Message{Topic: "t", Offset: 1}
	r.ch <- kafka.Message{Topic: "t", Offset: 2}

	require.Eventually(t, func() bool { return r.committedCount() == 2 }, time.Second, 5*time.Millisecond)

	cancel()
	c.Close()
}
