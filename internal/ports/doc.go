// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// # Port Interfaces
//
//   - [Dialer]: Opens the outbound stream connection
//   - [Transport]: Performs one request/response exchange
//   - [Logger]: Structured logging abstraction
//
// # Usage
//
// pkg/httpcheck depends only on these interfaces. Infrastructure adapters
// (internal/adapters) implement them with concrete implementations (TCP
// sockets, zerolog, etc.), so tests can swap in in-memory connections.
package ports
