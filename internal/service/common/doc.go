// Package common holds helpers shared by the client-side commands,
// chiefly the gRPC client wrapper around the tracker API.
package common
