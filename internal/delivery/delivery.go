// Package delivery defines the contract every transport entrypoint fulfills.
package delivery

import "context"

// Delivery is implemented by servers that carry traffic into the application.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
