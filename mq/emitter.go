package mq

import (
	"context"
	"encoding/json"
	"log"

	"monbillet/models"
	"monbillet/rdx"
)

const eventsChannel = "billet-events"

// Emit publishes a domain event to Redis; subscribers index or fan it out.
func Emit(eventName string, content models.Index) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	payload, _ := json.Marshal(map[string]json.RawMessage{
		eventName: data,
	})

	if err := rdx.Conn.Publish(context.Background(), eventsChannel, payload).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s: %v", eventName, err)
	}
}

// StartEventWorker drains the event channel. Today it only logs; the
// search-indexing consumer hangs off the same subscription.
func StartEventWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, eventsChannel)
	ch := sub.Channel()

	log.Println("[EventWorker] Listening for domain events...")

	for msg := range ch {
		var event map[string]models.Index
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[EventWorker] Failed to parse event: %v", err)
			continue
		}
		for name, idx := range event {
			log.Printf("[EventWorker] %s entity=%s id=%s", name, idx.EntityType, idx.EntityId)
		}
	}
}
