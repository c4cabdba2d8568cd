// Package domain contains the core types of httpcheck.
//
// It does no I/O and has no dependencies on logging or the CLI. It holds the
// request model and its serialization, the per-exchange phases, and the
// error taxonomy.
//
// # Types
//
//   - [Request]: a single raw HTTP/1.1 request (host, port, path, method, headers)
//   - [Phase]: where an exchange is in its lifecycle
//   - [ConnectionError]: a socket failure, tied to host, port and phase
package domain
