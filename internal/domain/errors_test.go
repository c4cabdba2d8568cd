package domain

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"
	"testing"
)

func TestConnectionError(t *testing.T) {
	cause := syscall.ECONNREFUSED
	err := &ConnectionError{Host: "127.0.0.1", Port: 9, Phase: PhaseConnecting, Err: cause}

	msg := err.Error()
	if !strings.Contains(msg, "127.0.0.1:9") {
		t.Errorf("Error() = %q, want host:port", msg)
	}
	if !strings.Contains(msg, cause.Error()) {
		t.Errorf("Error() = %q, want cause %q", msg, cause.Error())
	}
	if !errors.Is(err, ErrConnectionFailure) {
		t.Error("errors.Is(err, ErrConnectionFailure) = false")
	}
	if !errors.Is(err, syscall.ECONNREFUSED) {
		t.Error("errors.Is(err, ECONNREFUSED) = false")
	}
	if errors.Is(err, ErrInvalidConfig) {
		t.Error("errors.Is(err, ErrInvalidConfig) = true")
	}

	wrapped := fmt.Errorf("probe: %w", err)
	var ce *ConnectionError
	if !errors.As(wrapped, &ce) || ce.Port != 9 {
		t.Errorf("errors.As did not recover ConnectionError from %v", wrapped)
	}
}

func TestConnectionError_Addr(t *testing.T) {
	err := &ConnectionError{Host: "::1", Port: 8080}
	if got := err.Addr(); got != "[::1]:8080" {
		t.Errorf("Addr() = %q, want [::1]:8080", got)
	}
}

func TestConnectionError_Timeout(t *testing.T) {
	timeout := &ConnectionError{Host: "h", Port: 1, Err: os.ErrDeadlineExceeded}
	if !timeout.Timeout() {
		t.Error("Timeout() = false for deadline exceeded")
	}

	refused := &ConnectionError{Host: "h", Port: 1, Err: syscall.ECONNREFUSED}
	if refused.Timeout() {
		t.Error("Timeout() = true for connection refused")
	}
}
