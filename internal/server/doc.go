// Package server wires and runs the application's HTTP transport.
//
// It provides orchestration for the server lifecycle, including startup,
// signal handling, and graceful shutdown with a configurable drain timeout.
package server
