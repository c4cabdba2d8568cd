package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestZerologAdapter_Fields(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewZerologAdapterWithLogger(zerolog.New(&buf))

	adapter.Info("dialing",
		String("addr", "127.0.0.1:80"),
		Int("port", 80),
		Duration("timeout", 5*time.Second),
		Err(errors.New("boom")),
	)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal log line %q: %v", buf.String(), err)
	}
	if entry["message"] != "dialing" {
		t.Errorf("message = %v, want dialing", entry["message"])
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v, want info", entry["level"])
	}
	if entry["addr"] != "127.0.0.1:80" {
		t.Errorf("addr = %v, want 127.0.0.1:80", entry["addr"])
	}
	if entry["port"] != float64(80) {
		t.Errorf("port = %v, want 80", entry["port"])
	}
	if entry["error"] != "boom" {
		t.Errorf("error = %v, want boom", entry["error"])
	}
}

func TestZerologAdapter_DisabledLevel(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewZerologAdapterWithLogger(zerolog.New(&buf).Level(zerolog.ErrorLevel))

	adapter.Debug("hidden", String("k", "v"))
	adapter.Warn("hidden")

	if buf.Len() != 0 {
		t.Errorf("expected no output below error level, got %q", buf.String())
	}

	adapter.Error("shown")
	if buf.Len() == 0 {
		t.Error("expected output at error level")
	}
}
