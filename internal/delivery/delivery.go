// Package delivery defines the entry points that expose the application
// to the outside world.
package delivery

import "context"

// Delivery is a serving surface started from main. Serve blocks until the
// server stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
