package tracker

import (
	"context"
	"sort"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/findcptn/megaship-tracker/internal/domain/presence"
	"github.com/findcptn/megaship-tracker/internal/domain/traffic"
	"github.com/findcptn/megaship-tracker/internal/feed"
	"github.com/findcptn/megaship-tracker/internal/ingest"
	pb "github.com/findcptn/megaship-tracker/internal/pb/v1"
)

// Service abstracts the business operations the transport layer depends on.
type Service interface {
	Submit(ctx context.Context, raw ingest.RawObservation) (ingest.Result, error)
	CurrentRecords() []*presence.Record
	TrafficSnapshot() map[string]traffic.Stats
	Stats() feed.Stats
	RecentEvents(limit int) []presence.StatusEvent
	SubscribeStatus() (<-chan presence.StatusEvent, func())
	SubscribeNotifications() (<-chan presence.Notification, func())
}

// Server implements the TrackerService gRPC API.
type Server struct {
	pb.UnimplementedTrackerServiceServer

	// service provides the business logic for tracker operations.
	service Service
}

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// SubmitObservation feeds one manual observation into the tracking pipeline.
func (s *Server) SubmitObservation(
	ctx context.Context,
	req *pb.SubmitObservationRequest,
) (*pb.SubmitObservationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if req.GetTimestamp() == nil {
		return nil, status.Error(codes.InvalidArgument, "timestamp is required")
	}

	raw := ingest.RawObservation{
		Ship:      req.GetShipName(),
		System:    req.GetSystemName(),
		Timestamp: req.GetTimestamp().AsTime(),
		Kind:      kindFromProto(req.GetSignalKind()),
	}

	result, err := s.service.Submit(ctx, raw)
	if err != nil {
		return nil, status.Error(codes.Unavailable, "tracker is shutting down")
	}

	response := &pb.SubmitObservationResponse{
		Accepted: result == ingest.Accepted,
	}

	if result != ingest.Accepted {
		response.Reason = result.String()
	}

	return response, nil
}

// GetCurrentState returns the presence records, commander traffic and
// feed counters in one snapshot.
func (s *Server) GetCurrentState(
	_ context.Context,
	_ *pb.GetCurrentStateRequest,
) (*pb.GetCurrentStateResponse, error) {
	records := s.service.CurrentRecords()
	trafficStats := s.service.TrafficSnapshot()
	stats := s.service.Stats()

	response := &pb.GetCurrentStateResponse{
		Records: make([]*pb.PresenceRecord, 0, len(records)),
		Traffic: make([]*pb.SystemTraffic, 0, len(trafficStats)),
		Stats: &pb.FeedStats{
			MessagesReceived:  stats.MessagesReceived,
			MessagesProcessed: stats.MessagesProcessed,
			SignalsChecked:    stats.SignalsChecked,
			FleetCarriersSeen: stats.FleetCarriersSeen,
		},
	}

	for _, record := range records {
		response.Records = append(response.Records, toProtoRecord(record))
	}

	systems := make([]string, 0, len(trafficStats))
	for system := range trafficStats {
		systems = append(systems, system)
	}

	sort.Strings(systems)

	for _, system := range systems {
		entry := trafficStats[system]
		response.Traffic = append(response.Traffic, &pb.SystemTraffic{
			System:        system,
			Commanders:    int32(entry.Commanders),
			JumpsTo:       int32(entry.JumpsTo),
			JumpsFrom:     int32(entry.JumpsFrom),
			FleetCarriers: int32(entry.FleetCarriers),
		})
	}

	return response, nil
}

// GetRecentEvents returns the retained status events in chronological order.
func (s *Server) GetRecentEvents(
	_ context.Context,
	req *pb.GetRecentEventsRequest,
) (*pb.GetRecentEventsResponse, error) {
	if req.GetLimit() < 0 {
		return nil, status.Error(codes.InvalidArgument, "limit must not be negative")
	}

	events := s.service.RecentEvents(int(req.GetLimit()))

	response := &pb.GetRecentEventsResponse{
		Events: make([]*pb.StatusEvent, 0, len(events)),
	}

	for i := range events {
		response.Events = append(response.Events, toProtoEvent(&events[i]))
	}

	return response, nil
}

// StreamStatus streams status events to the client until it disconnects
// or falls too far behind.
func (s *Server) StreamStatus(_ *pb.StreamStatusRequest, stream pb.TrackerService_StreamStatusServer) error {
	events, cancel := s.service.SubscribeStatus()
	defer cancel()

	for {
		select {
		case <-stream.Context().Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return status.Error(codes.Unavailable, "subscription dropped")
			}

			if err := stream.Send(toProtoEvent(&event)); err != nil {
				return err
			}
		}
	}
}

// StreamNotifications streams jump and appearance notifications. External
// dispatchers attach here; delivery is fire-and-forget from the core.
func (s *Server) StreamNotifications(
	_ *pb.StreamNotificationsRequest,
	stream pb.TrackerService_StreamNotificationsServer,
) error {
	notifications, cancel := s.service.SubscribeNotifications()
	defer cancel()

	for {
		select {
		case <-stream.Context().Done():
			return nil
		case notification, ok := <-notifications:
			if !ok {
				return status.Error(codes.Unavailable, "subscription dropped")
			}

			if err := stream.Send(toProtoNotification(&notification)); err != nil {
				return err
			}
		}
	}
}

// kindFromProto maps the wire signal kind onto the domain enum.
// Unspecified maps to zero, which the normalizer rejects as malformed.
func kindFromProto(kind pb.SignalKind) presence.SignalKind {
	switch kind {
	case pb.SignalKind_SIGNAL_KIND_PRESENT:
		return presence.KindPresent
	case pb.SignalKind_SIGNAL_KIND_MISSING:
		return presence.KindMissing
	default:
		return 0
	}
}

// statusToProto maps the domain status onto the wire enum.
func statusToProto(status presence.Status) pb.ShipStatus {
	switch status {
	case presence.StatusNotDetected:
		return pb.ShipStatus_SHIP_STATUS_NOT_DETECTED
	case presence.StatusDetected:
		return pb.ShipStatus_SHIP_STATUS_DETECTED
	case presence.StatusSignalMissing:
		return pb.ShipStatus_SHIP_STATUS_SIGNAL_MISSING
	case presence.StatusMissing:
		return pb.ShipStatus_SHIP_STATUS_MISSING
	case presence.StatusIrregularVisit:
		return pb.ShipStatus_SHIP_STATUS_IRREGULAR_VISIT
	default:
		return pb.ShipStatus_SHIP_STATUS_UNSPECIFIED
	}
}

// toProtoRecord converts a domain presence record to its wire form.
func toProtoRecord(record *presence.Record) *pb.PresenceRecord {
	if record == nil {
		return &pb.PresenceRecord{}
	}

	var lastDetectedAt, missingSince *timestamppb.Timestamp

	if !record.LastDetectedAt.IsZero() {
		lastDetectedAt = timestamppb.New(record.LastDetectedAt)
	}

	if !record.MissingSince.IsZero() {
		missingSince = timestamppb.New(record.MissingSince)
	}

	return &pb.PresenceRecord{
		Ship:               record.Ship,
		Status:             statusToProto(record.Status),
		System:             record.System,
		IrregularSystem:    record.IrregularSystem,
		ConsecutiveMissing: int32(record.ConsecutiveMissing),
		LastDetectedAt:     lastDetectedAt,
		MissingSince:       missingSince,
	}
}

// toProtoEvent converts a domain status event to its wire form.
func toProtoEvent(event *presence.StatusEvent) *pb.StatusEvent {
	return &pb.StatusEvent{
		Id:                 event.ID,
		Ship:               event.Ship,
		Status:             statusToProto(event.Status),
		System:             event.System,
		ConsecutiveMissing: int32(event.ConsecutiveMissing),
		Degrading:          event.Degrading,
		Timestamp:          timestamppb.New(event.Timestamp),
	}
}

// toProtoNotification converts a domain notification to its wire form.
func toProtoNotification(notification *presence.Notification) *pb.Notification {
	kind := pb.NotificationKind_NOTIFICATION_KIND_UNSPECIFIED

	switch notification.Kind {
	case presence.NotifyJumped:
		kind = pb.NotificationKind_NOTIFICATION_KIND_JUMPED
	case presence.NotifyAppeared:
		kind = pb.NotificationKind_NOTIFICATION_KIND_APPEARED
	}

	return &pb.Notification{
		Kind:           kind,
		Ship:           notification.Ship,
		System:         notification.System,
		PreviousSystem: notification.PreviousSystem,
		Timestamp:      timestamppb.New(notification.Timestamp),
	}
}
