// Package server runs the HTTP server and shuts it down gracefully on
// SIGTERM, SIGINT or SIGQUIT.
package server
