// Package server runs the mock node transports.
//
// It starts the HTTP and gRPC servers enabled in the configuration, waits
// for a termination signal and shuts both down gracefully.
package server
