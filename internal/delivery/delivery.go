// Package delivery defines the transports the application serves on.
package delivery

import "context"

// Delivery is a long-running transport, such as an HTTP server. Serve blocks
// until the transport stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
