package broker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"

	"github.com/segmentio/kafka-go"
)

type HandlerFunc func(ctx context.Context, msg kafka.Message) error

// Reader is the subset of *kafka.Reader used by Consumer.
type Reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Consumer struct {
	l        *slog.Logger
	r        Reader
	handlers map[string]HandlerFunc
	wg       sync.WaitGroup
}

func NewConsumer(l *slog.Logger, brokers []string, groupID string, topics []string) *Consumer {
	l = l.WithGroup("kafka").With("group", groupID)

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     brokers,
		GroupID:     groupID,
		GroupTopics: topics,
		Logger:      slogAt(l, slog.LevelDebug),
		ErrorLogger: slogAt(l, slog.LevelError),
	})

	return NewConsumerWithReader(l, r)
}

func NewConsumerWithReader(l *slog.Logger, r Reader) *Consumer {
	return &Consumer{
		l:        l,
		r:        r,
		handlers: make(map[string]HandlerFunc),
	}
}

// Handle registers fn for topic. Must be called before Consume.
func (c *Consumer) Handle(topic string, fn HandlerFunc) {
	c.handlers[topic] = fn
}

// Consume reads messages in the background until ctx is done.
// Handler errors are logged and the message is committed anyway.
func (c *Consumer) Consume(ctx context.Context) {
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		for {
			msg, err := c.r.FetchMessage(ctx)
			if err != nil {
				if ctx.Err() != nil || errors.Is(err, context.Canceled) {
					return
				}

				c.l.Error("fetch message", "error", err)

				continue
			}

			c.dispatch(ctx, msg)

			err = c.r.CommitMessages(ctx, msg)
			if err != nil && ctx.Err() == nil {
				c.l.Error("commit message", "error", err, "offset", msg.Offset)
			}
		}
	}()
}

func (c *Consumer) dispatch(ctx context.Context, msg kafka.Message) {
	l := c.l.With("topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)

	defer func() {
		if r := recover(); r != nil {
			l.Error("handler panic", "error", r, "stack", string(debug.Stack()))
		}
	}()

	fn, ok := c.handlers[msg.Topic]
	if !ok {
		l.Warn("no handler for topic")
		return
	}

	err := fn(ctx, msg)
	if err != nil {
		l.Error(fmt.Sprintf("handle message: %s", err))
	}
}

// Close waits for the consume loop and closes the reader.
func (c *Consumer) Close() {
	c.wg.Wait()

	err := c.r.Close()
	if err != nil {
		c.l.Error(fmt.Sprintf("close kafka reader: %s", err))
	}
}
