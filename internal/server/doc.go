// Package server runs the stub feed server's HTTP transport, including
// startup, signal handling and graceful shutdown.
package server
