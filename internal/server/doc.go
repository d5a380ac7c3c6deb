// Package server owns the lifecycle of the portal's HTTP transport: it
// starts the listener, waits for termination signals, and shuts the server
// down gracefully so in-flight requests can finish.
package server
