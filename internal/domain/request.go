package domain

import (
	"strings"

	"github.com/bft-labs/httpcheck/internal/codec"
)

const (
	// DefaultPath is the request-target used when none is given.
	DefaultPath = "/"

	// DefaultMethod is the method used when none is given.
	DefaultMethod = "GET"
)

// Request describes a single raw HTTP/1.1 request.
// It is a value type; nothing in this package mutates a Request after
// construction.
type Request struct {
	// Host is a hostname or IP literal. It is used for dialing and as the
	// value of the Host header.
	Host string

	// Port is the TCP port, 1-65535.
	Port int

	// Path is the request-target, sent as is.
	Path string

	// Method is sent as is; callers upper-case it if they want to.
	Method string

	// Headers are raw header lines appended after Host and Connection.
	// A nil slice and an empty slice are equivalent.
	Headers []string
}

// NewRequest returns a Request for host:port with the default path and method.
func NewRequest(host string, port int) Request {
	return Request{
		Host:   host,
		Port:   port,
		Path:   DefaultPath,
		Method: DefaultMethod,
	}
}

// WithDefaults returns a copy of r with an empty Path or Method replaced by
// the defaults.
func (r Request) WithDefaults() Request {
	if r.Path == "" {
		r.Path = DefaultPath
	}
	if r.Method == "" {
		r.Method = DefaultMethod
	}
	return r
}

// String returns the serialized request as text, before ASCII encoding.
func (r Request) String() string {
	var b strings.Builder
	b.WriteString(r.Method)
	b.WriteByte(' ')
	b.WriteString(r.Path)
	b.WriteString(" HTTP/1.1\r\n")
	b.WriteString("Host: ")
	b.WriteString(r.Host)
	b.WriteString("\r\n")
	b.WriteString("Connection: close\r\n")
	for _, h := range r.Headers {
		b.WriteString(h)
		b.WriteString("\r\n")
	}
	b.WriteString("\r\n")
	return b.String()
}

// Bytes serializes the request. Characters outside ASCII are dropped; the
// header block always ends with an empty line.
func (r Request) Bytes() []byte {
	return codec.EncodeASCII(r.String())
}
