// Package ledger implements loop-prevention: detecting that an inbound
// activity is the bounceback of something this system itself uploaded
// earlier, so a source handler can drop it before it ever reaches the
// splitter.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	shared "github.com/syncforge/core/pkg"
	pb "github.com/syncforge/core/pkg/types/pb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// sourceToDestination maps an inbound ActivitySource to the destination
// name it would have been uploaded under, for vendors that are symmetric
// (the same vendor can be both a source and a destination). Sources with no
// symmetric destination are simply absent from this map.
var sourceToDestination = map[pb.ActivitySource]string{
	pb.ActivitySource_SOURCE_HEVY:   "hevy",
	pb.ActivitySource_SOURCE_STRAVA: "strava",
	pb.ActivitySource_SOURCE_FITBIT: "fitbit",
}

// Ledger checks and records loop-prevention rows keyed
// "<destination>:<destination_id>".
type Ledger struct {
	db shared.Database
}

func New(db shared.Database) *Ledger {
	return &Ledger{db: db}
}

// Key builds the canonical, lowercase ledger row id for a destination and
// the vendor's external id for the uploaded activity.
func Key(destination, externalID string) string {
	return fmt.Sprintf("%s:%s", strings.ToLower(destination), strings.ToLower(externalID))
}

// IsBounceback reports whether an inbound activity from source with
// externalID was itself uploaded by this system earlier. Fail-open: a store
// error is logged and treated as "not a bounceback" so a genuine activity is
// never dropped because the ledger was briefly unavailable.
func (l *Ledger) IsBounceback(ctx context.Context, userID string, source pb.ActivitySource, externalID string) (bool, error) {
	destination, ok := sourceToDestination[source]
	if !ok {
		return false, nil
	}

	key := Key(destination, externalID)
	rec, err := l.db.GetUploadedActivity(ctx, userID, key)
	if err != nil {
		slog.Warn("ledger lookup failed, proceeding as non-bounceback", "key", key, "error", err)
		return false, err
	}
	return rec != nil, nil
}

// Record writes a ledger row marking destinationID as uploaded to
// destination for userID, so a future inbound webhook for the same activity
// is recognized as a bounceback.
func (l *Ledger) Record(ctx context.Context, userID, destination, destinationID string, source pb.ActivitySource, externalID string, startTime *timestamppb.Timestamp) error {
	key := Key(destination, destinationID)
	return l.db.SetUploadedActivity(ctx, userID, &pb.UploadedActivityRecord{
		Id:            key,
		Destination:   strings.ToLower(destination),
		DestinationId: destinationID,
		Source:        source,
		ExternalId:    externalID,
		StartTime:     startTime,
		UploadedAt:    timestamppb.New(time.Now()),
	})
}
