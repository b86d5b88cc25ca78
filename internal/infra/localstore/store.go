// Package localstore contains the concrete implementation of the persistence
// layer: a local key-value store of JSON documents, one value per string key.
// It is the Go counterpart of the browser local storage the flows were built
// around, with writes announced through the event publisher.
package localstore

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned when a key has no stored value.
var ErrKeyNotFound = errors.New("store key not found")

// Store is the injected key-value abstraction every repository builds on.
// Values are JSON-serialized; Get unmarshals into out.
type Store interface {
	// Get reads the value stored under key into out.
	Get(ctx context.Context, key string, out any) error

	// Put serializes value and stores it under key, replacing any prior value.
	Put(ctx context.Context, key string, value any) error

	// Delete removes the value stored under key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
