// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the lifecycle contract of the transport server.
//
// RunServer blocks until shutdown is requested; Shutdown releases the
// listener and waits for in-flight requests.
type Server interface {
	RunServer()
	Shutdown()
}
