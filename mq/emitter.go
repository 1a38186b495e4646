// Package mq publishes domain events to a Redis channel and runs the worker
// that fans them out into stored notifications.
package mq

import (
	"context"
	"encoding/json"
	"log"

	"grabgood/models"
	"grabgood/rdx"
)

const eventsChannel = "domain-events"

// Emit publishes a domain event. Failures are logged, never surfaced to the
// request path: notifications are best-effort.
func Emit(eventName string, evt models.Event) {
	evt.Name = eventName
	data, err := json.Marshal(evt)
	if err != nil {
		log.Printf("[mq] marshal %s: %v", eventName, err)
		return
	}
	if err := rdx.Conn.Publish(context.Background(), eventsChannel, data).Err(); err != nil {
		log.Printf("[mq] publish %s: %v", eventName, err)
	}
}
