package httpcheck

import (
	"context"
	"time"

	"github.com/bft-labs/httpcheck/internal/adapters/tcp"
	"github.com/bft-labs/httpcheck/internal/domain"
)

// DefaultTimeout bounds each socket operation when no timeout is configured.
const DefaultTimeout = 5 * time.Second

// Request describes one raw HTTP/1.1 request. See NewRequest for defaults.
type Request = domain.Request

// ConnectionError reports a socket failure tied to a host and port.
type ConnectionError = domain.ConnectionError

// ErrConnectionFailure matches any *ConnectionError with errors.Is.
var ErrConnectionFailure = domain.ErrConnectionFailure

// NewRequest returns a GET / request for host:port.
func NewRequest(host string, port int) Request {
	return domain.NewRequest(host, port)
}

// Client sends raw requests. The zero value is not usable; call New.
type Client struct {
	timeout   time.Duration
	transport Transport
}

// New creates a Client.
func New(opts ...Option) *Client {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.timeout <= 0 {
		o.timeout = DefaultTimeout
	}

	transport := o.transport
	if transport == nil {
		transport = tcp.NewTransport(o.dialer, o.logger)
	}

	return &Client{
		timeout:   o.timeout,
		transport: transport,
	}
}

// Do sends req and returns the raw response text. An empty Path or Method is
// replaced by "/" or "GET". Any socket failure is returned as a
// *ConnectionError and no partial response is returned.
func (c *Client) Do(ctx context.Context, req Request) (string, error) {
	return c.transport.Send(ctx, req.WithDefaults(), c.timeout)
}

// Perform sends req with the given timeout using a default Client. A timeout
// <= 0 means DefaultTimeout.
func Perform(ctx context.Context, req Request, timeout time.Duration) (string, error) {
	return New(WithTimeout(timeout)).Do(ctx, req)
}
