// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// The dispatcher port is implemented by the command dispatch bridge and called
// by the application layer. The repository port is implemented by the storage
// adapter and called only from the bridge's run loop.
package ports
