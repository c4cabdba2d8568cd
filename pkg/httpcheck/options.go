package httpcheck

import (
	"time"

	"github.com/bft-labs/httpcheck/internal/ports"
	"github.com/bft-labs/httpcheck/pkg/log"
)

// Dialer opens stream connections. *net.Dialer satisfies this interface.
type Dialer = ports.Dialer

// Transport performs one request/response exchange.
type Transport = ports.Transport

// Option configures optional behavior of a Client.
type Option func(*options)

type options struct {
	timeout   time.Duration
	logger    log.Logger
	dialer    Dialer
	transport Transport
}

func defaultOptions() options {
	return options{
		timeout: DefaultTimeout,
		logger:  log.NewNoopLogger(),
	}
}

// WithTimeout sets the bound applied to the dial and to each write and read.
// If not provided, or if d <= 0, DefaultTimeout is used.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithLogger sets a logger for transport phase transitions.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDialer sets a custom dialer, e.g. one bound to a local address.
// Ignored when WithTransport is also given.
func WithDialer(d Dialer) Option {
	return func(o *options) {
		o.dialer = d
	}
}

// WithTransport replaces the TCP transport entirely. Mostly useful in tests.
func WithTransport(t Transport) Option {
	return func(o *options) {
		o.transport = t
	}
}
