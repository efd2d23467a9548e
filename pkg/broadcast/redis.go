package broadcast

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/walletdesk/pkg/logger"
)

// ErrSubscribe indicates the Redis channel subscription could not be confirmed.
var ErrSubscribe = errors.New("broadcast: failed to subscribe to redis channel")

// Redis is a Broadcaster shared by every process subscribed to the same Redis
// channel. Values are JSON encoded on publish and fanned out locally through a
// Memory broadcaster on receipt.
type Redis[T any] struct {
	client  redis.UniversalClient
	channel string
	pubsub  *redis.PubSub
	local   *Memory[T]
	logger  *slog.Logger

	once sync.Once
	done chan struct{}
}

// NewRedis subscribes to channel and starts relaying messages to local
// subscribers. It blocks until Redis confirms the subscription.
func NewRedis[T any](ctx context.Context, client redis.UniversalClient, channel string, bufferSize int, log *slog.Logger) (*Redis[T], error) {
	if log == nil {
		log = logger.Noop()
	}

	pubsub := client.Subscribe(ctx, channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, errors.Join(ErrSubscribe, err)
	}

	b := &Redis[T]{
		client:  client,
		channel: channel,
		pubsub:  pubsub,
		local:   NewMemory[T](bufferSize),
		logger:  log.With(logger.Component("broadcast"), slog.String("channel", channel)),
		done:    make(chan struct{}),
	}
	go b.relay()
	return b, nil
}

func (b *Redis[T]) relay() {
	defer close(b.done)

	for msg := range b.pubsub.Channel() {
		var v T
		if err := json.Unmarshal([]byte(msg.Payload), &v); err != nil {
			b.logger.Warn("dropping undecodable message", logger.Error(err))
			continue
		}
		b.local.Publish(context.Background(), v)
	}
}

func (b *Redis[T]) Subscribe(ctx context.Context) Subscriber[T] {
	return b.local.Subscribe(ctx)
}

// Publish sends v to the Redis channel. Local subscribers receive it when
// Redis delivers it back, like every other process.
func (b *Redis[T]) Publish(ctx context.Context, v T) {
	payload, err := json.Marshal(v)
	if err != nil {
		b.logger.ErrorContext(ctx, "failed to encode message", logger.Error(err))
		return
	}
	if err := b.client.Publish(ctx, b.channel, payload).Err(); err != nil {
		b.logger.ErrorContext(ctx, "failed to publish message", logger.Error(err))
	}
}

// Len returns the number of local subscribers.
func (b *Redis[T]) Len() int {
	return b.local.Len()
}

// Close unsubscribes from Redis and closes local subscribers. The client is
// left open.
func (b *Redis[T]) Close() error {
	var err error
	b.once.Do(func() {
		err = b.pubsub.Close()
		<-b.done
		_ = b.local.Close()
	})
	return err
}
