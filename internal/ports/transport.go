package ports

import (
	"context"
	"time"

	"github.com/bft-labs/httpcheck/internal/domain"
)

// Transport performs a single request/response exchange.
type Transport interface {
	// Send writes the serialized request and returns everything the peer
	// sent until it closed the connection, decoded as text. timeout bounds
	// every blocking socket operation.
	Send(ctx context.Context, req domain.Request, timeout time.Duration) (string, error)
}
