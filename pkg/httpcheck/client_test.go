package httpcheck

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/bft-labs/httpcheck/internal/domain"
)

// recordingTransport captures the arguments of Send.
type recordingTransport struct {
	req     domain.Request
	timeout time.Duration
	resp    string
	err     error
}

func (r *recordingTransport) Send(ctx context.Context, req domain.Request, timeout time.Duration) (string, error) {
	r.req = req
	r.timeout = timeout
	return r.resp, r.err
}

func TestNew_Defaults(t *testing.T) {
	c := New()

	if c.timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", c.timeout, DefaultTimeout)
	}
	if c.transport == nil {
		t.Fatal("transport is nil")
	}
}

func TestNew_NonPositiveTimeoutUsesDefault(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Second} {
		rt := &recordingTransport{}
		c := New(WithTransport(rt), WithTimeout(d))

		if _, err := c.Do(context.Background(), NewRequest("h", 1)); err != nil {
			t.Fatalf("Do() error: %v", err)
		}
		if rt.timeout != DefaultTimeout {
			t.Errorf("WithTimeout(%v): transport got %v, want %v", d, rt.timeout, DefaultTimeout)
		}
	}
}

func TestClient_Do(t *testing.T) {
	rt := &recordingTransport{resp: "HTTP/1.1 204 No Content\r\n\r\n"}
	c := New(WithTransport(rt), WithTimeout(750*time.Millisecond))

	got, err := c.Do(context.Background(), Request{Host: "example.test", Port: 8080})
	if err != nil {
		t.Fatalf("Do() error: %v", err)
	}
	if got != rt.resp {
		t.Errorf("Do() = %q, want %q", got, rt.resp)
	}
	if rt.timeout != 750*time.Millisecond {
		t.Errorf("timeout = %v, want 750ms", rt.timeout)
	}
	if rt.req.Path != "/" || rt.req.Method != "GET" {
		t.Errorf("defaults not applied: %+v", rt.req)
	}
}

func TestClient_DoPropagatesConnectionError(t *testing.T) {
	cause := &domain.ConnectionError{Host: "h", Port: 1, Phase: domain.PhaseConnecting, Err: errors.New("refused")}
	c := New(WithTransport(&recordingTransport{err: cause}))

	got, err := c.Do(context.Background(), NewRequest("h", 1))
	if !errors.Is(err, ErrConnectionFailure) {
		t.Errorf("Do() error = %v, want ErrConnectionFailure", err)
	}
	if got != "" {
		t.Errorf("Do() returned %q alongside an error", got)
	}
}

func TestPerform(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		buf := make([]byte, 1024)
		_, _ = conn.Read(buf)
		_, _ = conn.Write([]byte("HTTP/1.1 200 OK\r\n\r\n"))
	}()

	req := NewRequest("127.0.0.1", ln.Addr().(*net.TCPAddr).Port)
	got, err := Perform(context.Background(), req, 5*time.Second)
	if err != nil {
		t.Fatalf("Perform() error: %v", err)
	}
	if got != "HTTP/1.1 200 OK\r\n\r\n" {
		t.Errorf("Perform() = %q", got)
	}
}

func TestWithDialer(t *testing.T) {
	d := &net.Dialer{LocalAddr: &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1)}}
	c := New(WithDialer(d))
	if c.transport == nil {
		t.Fatal("transport is nil")
	}
}
