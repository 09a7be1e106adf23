// Package redisclient publishes created tweets to a Redis stream for
// downstream consumers.
package redisclient

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xgumball/fwitter3clone/internal/model"
)

// Stream is the default stream created tweets are appended to.
const Stream = "tweets"

// NewClient connects to Redis and verifies the connection.
func NewClient(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}

// CreateConsumerGroup creates the consumer group on the stream if it
// does not already exist.
func CreateConsumerGroup(ctx context.Context, client *redis.Client, stream, group string) error {
	err := client.XGroupCreateMkStream(ctx, stream, group, "0").Err()
	if err != nil {
		// BUSYGROUP means the group already exists
		if !strings.Contains(err.Error(), "BUSYGROUP") {
			return err
		}
	}
	return nil
}

// StreamPublisher appends created tweets to a Redis stream.
type StreamPublisher struct {
	Client     *redis.Client
	StreamName string
}

func NewStreamPublisher(client *redis.Client) *StreamPublisher {
	return &StreamPublisher{Client: client, StreamName: Stream}
}

func (p *StreamPublisher) PublishTweet(ctx context.Context, t model.Tweet) error {
	return p.Client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.StreamName,
		Values: map[string]interface{}{
			"id":         strconv.FormatInt(t.ID, 10),
			"username":   t.Username,
			"status":     t.Status,
			"created_at": t.CreatedAt.Format(time.RFC3339),
		},
	}).Err()
}
