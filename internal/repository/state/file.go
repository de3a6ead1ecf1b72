package state

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/findcptn/megaship-tracker/internal/config"
	"github.com/findcptn/megaship-tracker/internal/domain/presence"
	pb "github.com/findcptn/megaship-tracker/internal/pb/v1"
)

// Repository defines persistence operations for the tracked presence records.
type Repository interface {
	Load(ctx context.Context) ([]*presence.Record, error)
	Save(ctx context.Context, records []*presence.Record) error
}

// FileRepository persists presence records to a JSON file on disk.
// JSON is produced and consumed via protobuf JSON (protojson) to stay
// compatible with the generated API types.
type FileRepository struct {
	// path is the filesystem location of the JSON state file.
	path string
	// mu protects concurrent access to the state file.
	mu sync.Mutex
}

// ErrNotFound is returned when the state file does not exist yet.
var ErrNotFound = errors.New("state not found")

// NewFileRepository creates a repository that reads/writes JSON at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Load reads the records from disk.
func (r *FileRepository) Load(_ context.Context) ([]*presence.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read state file: %w", err)
	}

	var stored pb.GetCurrentStateResponse
	if err = protojson.Unmarshal(contents, &stored); err != nil {
		return nil, fmt.Errorf("decode state file: %w", err)
	}

	records := make([]*presence.Record, 0, len(stored.GetRecords()))
	for _, protoRecord := range stored.GetRecords() {
		records = append(records, fromProto(protoRecord))
	}

	return records, nil
}

// Save writes the records to disk using JSON representation.
func (r *FileRepository) Save(_ context.Context, records []*presence.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := &pb.GetCurrentStateResponse{
		Records: make([]*pb.PresenceRecord, 0, len(records)),
	}

	for _, record := range records {
		stored.Records = append(stored.Records, toProto(record))
	}

	marshalOptions := protojson.MarshalOptions{
		EmitUnpopulated: true,
	}

	data, err := marshalOptions.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}

	return nil
}

// fromProto converts a protobuf PresenceRecord into the domain model.
func fromProto(protoRecord *pb.PresenceRecord) *presence.Record {
	var lastDetectedAt, missingSince time.Time

	if ts := protoRecord.GetLastDetectedAt(); ts != nil {
		lastDetectedAt = ts.AsTime()
	}

	if ts := protoRecord.GetMissingSince(); ts != nil {
		missingSince = ts.AsTime()
	}

	return &presence.Record{
		Ship:               protoRecord.GetShip(),
		Status:             statusFromProto(protoRecord.GetStatus()),
		System:             protoRecord.GetSystem(),
		IrregularSystem:    protoRecord.GetIrregularSystem(),
		ConsecutiveMissing: int(protoRecord.GetConsecutiveMissing()),
		LastDetectedAt:     lastDetectedAt,
		MissingSince:       missingSince,
	}
}

// toProto converts the domain record into its protobuf representation.
func toProto(record *presence.Record) *pb.PresenceRecord {
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

// statusFromProto maps the wire status onto the domain enum.
func statusFromProto(status pb.ShipStatus) presence.Status {
	switch status {
	case pb.ShipStatus_SHIP_STATUS_DETECTED:
		return presence.StatusDetected
	case pb.ShipStatus_SHIP_STATUS_SIGNAL_MISSING:
		return presence.StatusSignalMissing
	case pb.ShipStatus_SHIP_STATUS_MISSING:
		return presence.StatusMissing
	case pb.ShipStatus_SHIP_STATUS_IRREGULAR_VISIT:
		return presence.StatusIrregularVisit
	default:
		return presence.StatusNotDetected
	}
}

// statusToProto maps the domain enum onto the wire status.
func statusToProto(status presence.Status) pb.ShipStatus {
	switch status {
	case presence.StatusDetected:
		return pb.ShipStatus_SHIP_STATUS_DETECTED
	case presence.StatusSignalMissing:
		return pb.ShipStatus_SHIP_STATUS_SIGNAL_MISSING
	case presence.StatusMissing:
		return pb.ShipStatus_SHIP_STATUS_MISSING
	case presence.StatusIrregularVisit:
		return pb.ShipStatus_SHIP_STATUS_IRREGULAR_VISIT
	case presence.StatusNotDetected:
		return pb.ShipStatus_SHIP_STATUS_NOT_DETECTED
	default:
		return pb.ShipStatus_SHIP_STATUS_UNSPECIFIED
	}
}
