// Package publisher pushes live game snapshots onto Redis streams for
// downstream consumers.
package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	liveStream  = "events.live.ncaaw"
	playsStream = "events.plays.ncaaw"
)

// RedisStreamPublisher publishes game updates to Redis streams
type RedisStreamPublisher struct {
	client *redis.Client
}

// NewRedisStreamPublisher creates a publisher from an existing client
func NewRedisStreamPublisher(client *redis.Client) *RedisStreamPublisher {
	return &RedisStreamPublisher{
		client: client,
	}
}

// PublishLiveGameUpdate publishes a live game snapshot to the stream
func (rsp *RedisStreamPublisher) PublishLiveGameUpdate(ctx context.Context, gameData interface{}) error {
	return rsp.publish(ctx, liveStream, gameData)
}

// PublishPlayByPlay publishes a play-by-play snapshot to the stream
func (rsp *RedisStreamPublisher) PublishPlayByPlay(ctx context.Context, playData interface{}) error {
	return rsp.publish(ctx, playsStream, playData)
}

func (rsp *RedisStreamPublisher) publish(ctx context.Context, stream string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return rsp.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		MaxLen: 1000,
		Approx: true,
		Values: map[string]interface{}{
			"data":      string(data),
			"timestamp": time.Now().Unix(),
		},
	}).Err()
}
