// Package notification is the user-facing toast side-channel. The cart calls
// it opportunistically after an add; it is best-effort and never part of the
// cart's invariant contract.
package notification

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/elanicia/storefront/internal/log"
)

type Sink interface {
	Notify(c context.Context, message string) error
}

// LogSink writes the toast to the log, the fallback when no transport is
// configured.
type LogSink struct{}

func (LogSink) Notify(c context.Context, message string) error {
	zerolog.Ctx(c).
		Info().
		Str(log.KEY_TAG, "LogSink Notify").
		Str(log.KEY_MESSAGE, message).
		Msg("user notification")
	return nil
}

// RedisSink publishes the toast on a redis channel for UI fragments listening
// out of process.
type RedisSink struct {
	client  *redis.Client
	channel string
}

func NewRedisSink(client *redis.Client, channel string) *RedisSink {
	return &RedisSink{client: client, channel: channel}
}

func (s *RedisSink) Notify(c context.Context, message string) error {
	err := s.client.Publish(c, s.channel, message).Err()
	if err != nil {
		return fmt.Errorf("failed publishing notification with error=%w", err)
	}
	return nil
}
