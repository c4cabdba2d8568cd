package domain

import (
	"errors"
	"fmt"
	"net"
	"strconv"
)

// Domain errors represent error conditions in the httpcheck domain.
// They can be checked with errors.Is.
var (
	// ErrConnectionFailure matches every *ConnectionError.
	ErrConnectionFailure = errors.New("httpcheck: connection failure")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("httpcheck: invalid configuration")
)

// ConnectionError reports a socket failure while talking to Host:Port.
// Phase is where the exchange was when it failed: Connecting, Sending or
// Receiving.
type ConnectionError struct {
	Host  string
	Port  int
	Phase Phase
	Err   error
}

// Addr returns host:port in dialable form.
func (e *ConnectionError) Addr() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to %s:%d -> %v", e.Host, e.Port, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrConnectionFailure) true for any ConnectionError.
func (e *ConnectionError) Is(target error) bool {
	return target == ErrConnectionFailure
}

// Timeout reports whether the underlying cause was a timeout.
func (e *ConnectionError) Timeout() bool {
	var ne net.Error
	return errors.As(e.Err, &ne) && ne.Timeout()
}
