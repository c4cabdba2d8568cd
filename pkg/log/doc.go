// Package log provides a logging abstraction for httpcheck components.
//
// This package defines a Logger interface that can be implemented by
// any logging library. A zerolog adapter and a no-op logger are provided.
//
// # Usage
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//
// Or, for tests and library defaults:
//
//	logger := log.NewNoopLogger()
package log
