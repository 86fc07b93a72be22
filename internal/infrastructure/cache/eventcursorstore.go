package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const eventCursorKey = "gateway:events:cursor"

// EventCursorStore persists the newest seen gateway event id across
// restarts so the poller never rescans the full event log.
type EventCursorStore struct {
	client *redis.Client
}

// NewEventCursorStore creates a new EventCursorStore instance.
func NewEventCursorStore(client *redis.Client) *EventCursorStore {
	return &EventCursorStore{client: client}
}

// GetCursor returns the last saved event id, or "" if not found.
func (s *EventCursorStore) GetCursor(ctx context.Context) (string, error) {
	val, err := s.client.Get(ctx, eventCursorKey).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("failed to get event cursor: %w", err)
	}
	return val, nil
}

// SetCursor persists the newest seen event id.
func (s *EventCursorStore) SetCursor(ctx context.Context, eventID string) error {
	if err := s.client.Set(ctx, eventCursorKey, eventID, 0).Err(); err != nil {
		return fmt.Errorf("failed to save event cursor: %w", err)
	}
	return nil
}
