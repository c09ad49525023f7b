// Package delivery defines the contract every transport entrypoint (HTTP
// server, workers) fulfills so main can serve them uniformly.
package delivery

import "context"

// Delivery is a long-running transport endpoint. Serve blocks until the
// endpoint stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
