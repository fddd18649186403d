package mockuploader

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/cloudevents/sdk-go/v2/event"

	"github.com/syncforge/core/pkg/bootstrap"
	"github.com/syncforge/core/pkg/framework"
	"github.com/syncforge/core/pkg/ledger"
	"github.com/syncforge/core/pkg/pipelinerun"
	pb "github.com/syncforge/core/pkg/types/pb"
)

const destination = "mock"

var (
	svc     *bootstrap.Service
	svcOnce sync.Once
	svcErr  error
)

func init() {
	functions.CloudEvent("MockUpload", MockUpload)
}

func initService(ctx context.Context) (*bootstrap.Service, error) {
	if svc != nil {
		return svc, nil
	}
	svcOnce.Do(func() {
		baseSvc, err := bootstrap.NewService(ctx)
		if err != nil {
			slog.Error("Failed to initialize service", "error", err)
			svcErr = err
			return
		}
		svc = baseSvc
	})
	return svc, svcErr
}

// MockUpload is the entry point for the mock destination. It exercises the
// full uploader contract (ledger write, PipelineRun sub-status, sync count)
// without talking to a real vendor, so integration tests can drive the
// pipeline end to end.
func MockUpload(ctx context.Context, e event.Event) error {
	svc, err := initService(ctx)
	if err != nil {
		return fmt.Errorf("service init failed: %v", err)
	}
	return framework.WrapCloudEvent("mock-uploader", svc, MockHandler())(ctx, e)
}

// MockHandler returns the handler for the mock destination: it exercises
// the full uploader contract (ledger write, PipelineRun sub-status, sync
// count) without talking to a real vendor.
func MockHandler() framework.HandlerFunc {
	return func(ctx context.Context, e event.Event, fwCtx *framework.FrameworkContext) (interface{}, error) {
		var eventPayload pb.EnrichedActivityEvent
		if err := json.Unmarshal(e.Data(), &eventPayload); err != nil {
			return nil, fmt.Errorf("json.Unmarshal: %w", err)
		}

		fwCtx.Logger.Info("Mock upload received",
			"activity_id", eventPayload.ActivityId,
			"pipeline_id", eventPayload.PipelineId,
			"user_id", eventPayload.UserId,
			"name", eventPayload.Name,
		)

		useUpdate := false
		externalID := fmt.Sprintf("mock-%s", eventPayload.ActivityId)
		if eventPayload.UseUpdateMethod {
			if run, err := fwCtx.Service.DB.GetPipelineRun(ctx, eventPayload.PipelineExecutionId); err == nil && run != nil {
				if prior, ok := run.Destinations[destination]; ok && prior.Status == pb.DestinationSubStatus_DESTINATION_SUB_STATUS_SUCCESS && prior.ExternalId != "" {
					useUpdate = true
					externalID = prior.ExternalId
				}
			}
		}

		syncedActivity := &pb.SynchronizedActivity{
			ActivityId:          eventPayload.ActivityId,
			Title:               eventPayload.Name,
			Description:         eventPayload.Description,
			Type:                eventPayload.ActivityType,
			Source:              eventPayload.Source.String(),
			StartTime:           eventPayload.StartTime,
			SyncedAt:            timestamppb.Now(),
			PipelineId:          eventPayload.PipelineId,
			PipelineExecutionId: fwCtx.PipelineExecutionId,
			Destinations: map[string]string{
				destination: externalID,
			},
		}

		if err := fwCtx.Service.DB.SetSynchronizedActivity(ctx, eventPayload.UserId, syncedActivity); err != nil {
			fwCtx.Logger.Error("Failed to persist synchronized activity", "error", err)
			return nil, fmt.Errorf("failed to persist synchronized activity: %w", err)
		}

		// The loop-prevention ledger row must exist before the PipelineRun
		// sub-status is observable as SUCCESS.
		l := ledger.New(fwCtx.Service.DB)
		if err := l.Record(ctx, eventPayload.UserId, destination, externalID, eventPayload.Source, eventPayload.ActivityId, eventPayload.StartTime); err != nil {
			fwCtx.Logger.Warn("Failed to write ledger row", "error", err)
		}

		now := timestamppb.Now()
		if err := fwCtx.Service.DB.UpdatePipelineRun(ctx, eventPayload.PipelineExecutionId, map[string]interface{}{
			fmt.Sprintf("destinations.%s.destination", destination):  destination,
			fmt.Sprintf("destinations.%s.status", destination):       int32(pb.DestinationSubStatus_DESTINATION_SUB_STATUS_SUCCESS),
			fmt.Sprintf("destinations.%s.external_id", destination):  externalID,
			fmt.Sprintf("destinations.%s.updated_at", destination):   now.AsTime(),
			fmt.Sprintf("destinations.%s.used_update", destination):  useUpdate,
		}); err != nil {
			fwCtx.Logger.Error("Failed to record destination result", "error", err)
		}
		pipelinerun.Finalize(ctx, fwCtx.Service.DB, eventPayload.PipelineExecutionId)

		if !useUpdate {
			if err := fwCtx.Service.DB.IncrementSyncCount(ctx, eventPayload.UserId); err != nil {
				fwCtx.Logger.Warn("Failed to increment sync count", "error", err)
			}
		}

		fwCtx.Logger.Info("Mock upload complete", "activity_id", eventPayload.ActivityId, "mock_external_id", externalID, "used_update", useUpdate)

		return map[string]interface{}{
			"status":           "SUCCESS",
			"mock_external_id": externalID,
			"activity_id":      eventPayload.ActivityId,
			"pipeline_id":      eventPayload.PipelineId,
			"used_update":      useUpdate,
		}, nil
	}
}
