// Package client wraps the VoxKeeper gRPC API for the CLI: per-call
// timeouts, the access token obtained from verification, and mapping of
// status codes to client errors.
package client
