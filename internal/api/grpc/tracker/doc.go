// Package tracker exposes the tracking service over gRPC. It converts
// between the wire types in internal/pb/v1 and the domain models, and it
// keeps transport concerns (status codes, stream lifecycles) out of the
// service itself.
package tracker
