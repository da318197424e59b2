// Package delivery contains the transports that expose the usecases.
package delivery

import "context"

// Delivery is a long-running server started by a cmd binary.
type Delivery interface {
	// Serve blocks until the server stops.
	Serve(ctx context.Context) error
}
