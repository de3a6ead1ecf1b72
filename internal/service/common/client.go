//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/findcptn/megaship-tracker/internal/config"
	pb "github.com/findcptn/megaship-tracker/internal/pb/v1"
)

// Client wraps the gRPC TrackerService client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the tracker server.
	conn *grpc.ClientConn
	// api is the generated TrackerService client interface.
	api pb.TrackerServiceClient

	// callTimeout is the default timeout for individual unary RPC calls.
	// Streams are bounded by their caller's context instead.
	callTimeout time.Duration
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for unary service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

// errAddressRequired is returned when a required address value is missing.
var errAddressRequired = errors.New("address must be provided")

// Dial establishes a gRPC connection to the tracker server.
// Note: this uses insecure transport credentials; deploy on a trusted network
// or terminate TLS in a proxy until native TLS is added.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	// Use the non-context NewClient API recommended by grpc-go
	// (DialContext is deprecated as of grpc-go v1.60+).
	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial tracker server: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         pb.NewTrackerServiceClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// GetCurrentState retrieves the presence records, traffic and feed counters.
func (c *Client) GetCurrentState(ctx context.Context) (*pb.GetCurrentStateResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.GetCurrentState(callCtx, new(pb.GetCurrentStateRequest))
	if err != nil {
		return nil, fmt.Errorf("get current state: %w", err)
	}

	return response, nil
}

// GetRecentEvents retrieves up to limit recent status events.
// A zero limit returns everything the server retains.
func (c *Client) GetRecentEvents(ctx context.Context, limit int32) (*pb.GetRecentEventsResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.GetRecentEvents(callCtx, &pb.GetRecentEventsRequest{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("get recent events: %w", err)
	}

	return response, nil
}

// SubmitObservation feeds one manual observation to the server.
func (c *Client) SubmitObservation(
	ctx context.Context,
	ship, system string,
	at time.Time,
	kind pb.SignalKind,
) (*pb.SubmitObservationResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	request := &pb.SubmitObservationRequest{
		ShipName:   ship,
		SystemName: system,
		Timestamp:  timestamppb.New(at),
		SignalKind: kind,
	}

	response, err := c.api.SubmitObservation(callCtx, request)
	if err != nil {
		return nil, fmt.Errorf("submit observation: %w", err)
	}

	return response, nil
}

// StreamStatus opens a status event stream. The stream lives until ctx is
// canceled or the server drops the subscription.
func (c *Client) StreamStatus(ctx context.Context) (grpc.ServerStreamingClient[pb.StatusEvent], error) {
	stream, err := c.api.StreamStatus(ctx, new(pb.StreamStatusRequest))
	if err != nil {
		return nil, fmt.Errorf("open status stream: %w", err)
	}

	return stream, nil
}

// StreamNotifications opens a notification stream.
func (c *Client) StreamNotifications(ctx context.Context) (grpc.ServerStreamingClient[pb.Notification], error) {
	stream, err := c.api.StreamNotifications(ctx, new(pb.StreamNotificationsRequest))
	if err != nil {
		return nil, fmt.Errorf("open notification stream: %w", err)
	}

	return stream, nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
