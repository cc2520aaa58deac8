// Package server wires and runs the application's HTTP servers.
//
// It provides orchestration for server lifecycles, including startup,
// signal handling, and graceful shutdown.
package server
