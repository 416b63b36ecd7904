package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/kalah-backend/internal/entity"
)

var ErrEmptyGameID = errors.New("game id is empty")

const eventBuffer = 64

// Client publishes game events on redis pub/sub and streams them back to watchers.
type Client struct {
	logger *slog.Logger
	client *redis.Client
}

func New(logger *slog.Logger, client *redis.Client) *Client {
	return &Client{
		logger: logger.With("component", "events"),
		client: client,
	}
}

func channelName(gameID string) string {
	return "kalah:game:" + gameID + ":events"
}

// Publish - sends the events of one turn, in order, to the game channel.
func (that *Client) Publish(ctx context.Context, gameID string, events []entity.Event) error {
	if gameID == "" {
		return ErrEmptyGameID
	}

	if len(events) == 0 {
		return nil
	}

	pipe := that.client.Pipeline()
	for _, event := range events {
		eventJSON, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to marshal event: %w", err)
		}

		pipe.Publish(ctx, channelName(gameID), eventJSON)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to publish events: %w", err)
	}

	return nil
}

// Subscribe - streams the events of a game until ctx is done. The channel is closed
// when the subscription ends.
func (that *Client) Subscribe(ctx context.Context, gameID string) (<-chan entity.Event, error) {
	if gameID == "" {
		return nil, ErrEmptyGameID
	}

	log := that.logger.With("method", "Subscribe", "gameID", gameID)

	pubsub := that.client.Subscribe(ctx, channelName(gameID))

	// wait for the subscription to be confirmed, so no event published afterwards is lost
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	events := make(chan entity.Event, eventBuffer)

	go func() {
		defer close(events)
		defer func() {
			if err := pubsub.Close(); err != nil {
				log.Error("failed to close subscription", "error", err)
			}
		}()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}

				var event entity.Event
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					log.Error("failed to unmarshal event", "error", err)
					continue
				}

				select {
				case events <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return events, nil
}
