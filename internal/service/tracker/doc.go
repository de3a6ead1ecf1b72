// Package tracker implements the megaship presence tracking service and
// the server command built around it. It wires the ingest normalizer, the
// presence state machine, the commander traffic aggregates, the bounded
// event history and the stream fan-out into one unit behind the gRPC API.
package tracker
