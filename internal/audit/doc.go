// Package audit implements the internal audit event model, sink
// implementations, and the asynchronous dispatcher used by the login
// flow. The root package re-exports the event and sink types.
package audit
