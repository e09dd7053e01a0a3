// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is a serving transport (currently only HTTP) managed by the
// application lifecycle.
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}
