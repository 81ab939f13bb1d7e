// Package server runs the HTTP server of the auth service and shuts it down
// gracefully on a termination signal.
package server
