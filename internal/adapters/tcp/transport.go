// Package tcp implements the raw request/response exchange over a plain TCP
// socket.
package tcp

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"strconv"
	"time"

	"github.com/bft-labs/httpcheck/internal/codec"
	"github.com/bft-labs/httpcheck/internal/domain"
	"github.com/bft-labs/httpcheck/internal/ports"
	"github.com/bft-labs/httpcheck/pkg/log"
)

// ReadBufferSize is the size of each read from the socket.
const ReadBufferSize = 4096

// errShortWrite is reported when the peer accepted fewer bytes than the
// payload without the socket returning an error.
var errShortWrite = errors.New("short write")

var _ ports.Transport = (*Transport)(nil)

// Transport implements ports.Transport over TCP.
type Transport struct {
	dialer ports.Dialer
	logger ports.Logger
}

// NewTransport creates a TCP transport. A nil dialer uses net.Dialer with
// the per-call timeout; a nil logger discards everything.
func NewTransport(dialer ports.Dialer, logger ports.Logger) *Transport {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Transport{
		dialer: dialer,
		logger: logger,
	}
}

// exchange tracks one call through its phases.
type exchange struct {
	req    domain.Request
	phase  domain.Phase
	logger ports.Logger
}

// enter moves the exchange to next. It reports false and stays put when the
// transition is not allowed.
func (x *exchange) enter(next domain.Phase, fields ...log.Field) bool {
	if !x.phase.CanTransitionTo(next) {
		x.logger.Warn("invalid phase transition", log.Stringer("from", x.phase), log.Stringer("to", next))
		return false
	}
	fields = append(fields,
		log.Stringer("from", x.phase),
		log.Stringer("to", next),
		log.String("host", x.req.Host),
		log.Int("port", x.req.Port),
	)
	x.logger.Debug("phase", fields...)
	x.phase = next
	return true
}

// fail moves the exchange to Failed and wraps err with the phase it failed in.
func (x *exchange) fail(err error) error {
	failed := x.phase
	x.enter(domain.PhaseFailed)
	x.logger.Debug("exchange failed", log.Stringer("phase", failed), log.Err(err))
	return &domain.ConnectionError{
		Host:  x.req.Host,
		Port:  x.req.Port,
		Phase: failed,
		Err:   err,
	}
}

// Send dials req.Host:req.Port, writes the serialized request, and reads until
// the peer closes the connection. timeout bounds the dial and each write and
// read individually. The connection is closed on every return path.
func (t *Transport) Send(ctx context.Context, req domain.Request, timeout time.Duration) (string, error) {
	x := &exchange{req: req, phase: domain.PhaseIdle, logger: t.logger}
	addr := net.JoinHostPort(req.Host, strconv.Itoa(req.Port))

	x.enter(domain.PhaseConnecting, log.Duration("timeout", timeout))
	conn, err := t.dial(ctx, addr, timeout)
	if err != nil {
		return "", x.fail(err)
	}
	defer conn.Close()
	x.enter(domain.PhaseConnected)

	x.enter(domain.PhaseSending)
	payload := req.Bytes()
	if err := conn.SetWriteDeadline(deadline(timeout)); err != nil {
		return "", x.fail(err)
	}
	n, err := conn.Write(payload)
	if err == nil && n < len(payload) {
		err = errShortWrite
	}
	if err != nil {
		return "", x.fail(err)
	}
	t.logger.Debug("request sent", log.Int("bytes", n))

	x.enter(domain.PhaseReceiving)
	raw, err := readAll(conn, timeout)
	if err != nil {
		return "", x.fail(err)
	}
	t.logger.Debug("response received", log.Int("bytes", len(raw)))

	x.enter(domain.PhaseClosed)
	return codec.DecodeUTF8(raw), nil
}

func (t *Transport) dial(ctx context.Context, addr string, timeout time.Duration) (net.Conn, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if t.dialer != nil {
		return t.dialer.DialContext(ctx, "tcp", addr)
	}
	d := &net.Dialer{Timeout: timeout}
	return d.DialContext(ctx, "tcp", addr)
}

// readAll reads fixed-size chunks until EOF, re-arming the deadline before
// each read. Chunks are kept in arrival order.
func readAll(conn net.Conn, timeout time.Duration) ([]byte, error) {
	var out bytes.Buffer
	buf := make([]byte, ReadBufferSize)
	for {
		if err := conn.SetReadDeadline(deadline(timeout)); err != nil {
			return nil, err
		}
		n, err := conn.Read(buf)
		out.Write(buf[:n])
		if errors.Is(err, io.EOF) {
			return out.Bytes(), nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// deadline returns the zero time, meaning no deadline, for a non-positive timeout.
func deadline(timeout time.Duration) time.Time {
	if timeout <= 0 {
		return time.Time{}
	}
	return time.Now().Add(timeout)
}
