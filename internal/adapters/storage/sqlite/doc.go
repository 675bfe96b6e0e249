// Package sqlite is the storage adapter: an embedded SQLite engine (DB, Space)
// and the Repository that translates todo operations into engine calls.
//
// The engine keeps a single connection and an inter-process file lock, so a
// database file has exactly one writer. The Repository is not safe for
// concurrent use; the dispatch bridge's run loop is its only caller.
//
// Errors leaving this package belong to the domain taxonomy: rows that cannot
// be decoded wrap domain.ErrFieldDecode, every other engine error wraps
// domain.ErrEngineFailure, and a tripped circuit breaker returns
// domain.ErrUnavailable.
package sqlite
