// Package delivery defines the contract every transport entry point fulfils.
package delivery

import "context"

// Delivery represents a server that can be started by the composition root.
type Delivery interface {
	// Serve blocks and runs the delivery until it fails or is shut down.
	Serve(ctx context.Context) error
}
