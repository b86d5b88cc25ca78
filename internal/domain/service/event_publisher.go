package service

import (
	"context"
	"time"
)

// Store operation kinds carried by StoreEvent.
const (
	StoreOpPut    = "put"
	StoreOpDelete = "delete"
)

// StoreEvent announces that a store key changed. It is an informational
// broadcast with no ordering or delivery guarantee, mirroring the storage
// "changed" notification other views observe to refresh themselves.
type StoreEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For tracing, when available.
	Key        string    `json:"key"`                  // The store key that changed.
	Op         string    `json:"op"`                   // One of the StoreOp constants.
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing store-changed events.
type EventPublisher interface {
	// PublishStoreEvent publishes a store-changed event, best effort.
	PublishStoreEvent(ctx context.Context, event *StoreEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
