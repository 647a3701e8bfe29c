package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"eventify/internal/models"
)

const eventTTL = 5 * time.Minute

// EventCache keeps hot single-event lookups out of MySQL. Entries expire on
// their own; writes to an event delete its entry eagerly.
type EventCache struct {
	Client *redis.Client
}

func NewEventCache(client *redis.Client) *EventCache {
	return &EventCache{Client: client}
}

func eventKey(id int64) string {
	return fmt.Sprintf("event:%d", id)
}

func (c *EventCache) GetEvent(ctx context.Context, id int64) (*models.Event, bool) {
	val, err := c.Client.Get(ctx, eventKey(id)).Result()
	if err != nil {
		return nil, false
	}

	event := &models.Event{}
	if err := json.Unmarshal([]byte(val), event); err != nil {
		// Corrupt entry; drop it and fall through to the database.
		c.Client.Del(ctx, eventKey(id))
		return nil, false
	}
	return event, true
}

func (c *EventCache) SetEvent(ctx context.Context, event *models.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	c.Client.Set(ctx, eventKey(event.ID), data, eventTTL)
}

func (c *EventCache) InvalidateEvent(ctx context.Context, id int64) {
	c.Client.Del(ctx, eventKey(id))
}
