package router

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/cloudevents/sdk-go/v2/event"
	"google.golang.org/protobuf/types/known/timestamppb"

	shared "github.com/syncforge/core/pkg"
	"github.com/syncforge/core/pkg/bootstrap"
	"github.com/syncforge/core/pkg/framework"
	"github.com/syncforge/core/pkg/infrastructure/pubsub"
	"github.com/syncforge/core/pkg/types"
	pb "github.com/syncforge/core/pkg/types/pb"
)

var (
	svc     *bootstrap.Service
	svcOnce sync.Once
	svcErr  error
)

func init() {
	functions.CloudEvent("RouteActivity", RouteActivity)
}

func initService(ctx context.Context) (*bootstrap.Service, error) {
	if svc != nil {
		return svc, nil
	}
	svcOnce.Do(func() {
		svc, svcErr = bootstrap.NewService(ctx)
		if svcErr != nil {
			slog.Error("Failed to initialize service", "error", svcErr)
		}
	})
	return svc, svcErr
}

// RouteActivity is the entry point
func RouteActivity(ctx context.Context, e event.Event) error {
	svc, err := initService(ctx)
	if err != nil {
		return fmt.Errorf("service init failed: %v", err)
	}
	return framework.WrapCloudEvent("router", svc, RouteHandler)(ctx, e)
}

// RouteHandler fans an enriched activity out to one topic per destination.
// It does not transform content: by the time an activity reaches here, the
// enricher has already composed name/description/tags, and the router's
// only job is "who gets a copy, and did we tell PipelineRun about it".
func RouteHandler(ctx context.Context, e event.Event, fwCtx *framework.FrameworkContext) (interface{}, error) {
	var msg types.PubSubMessage
	if err := e.DataAs(&msg); err != nil {
		return nil, fmt.Errorf("event.DataAs: %v", err)
	}

	var eventPayload pb.EnrichedActivityEvent
	if err := json.Unmarshal(msg.Message.Data, &eventPayload); err != nil {
		return nil, fmt.Errorf("json unmarshal: %v", err)
	}

	fwCtx.Logger.Info("Starting routing", "source", eventPayload.Source, "pipeline", eventPayload.PipelineId, "destinations", eventPayload.Destinations)

	now := timestamppb.Now()
	routings := []string{}
	var firstErr error

	for _, dest := range eventPayload.Destinations {
		topic, ok := shared.TopicForDestination(dest)
		if !ok {
			fwCtx.Logger.Warn("Unknown destination, marking failed", "dest", dest)
			if err := fwCtx.Service.DB.UpdatePipelineRun(ctx, eventPayload.PipelineExecutionId, map[string]interface{}{
				fmt.Sprintf("destinations.%s.status", dest):     int32(pb.DestinationSubStatus_DESTINATION_SUB_STATUS_FAILED),
				fmt.Sprintf("destinations.%s.error", dest):      "no uploader registered for destination",
				fmt.Sprintf("destinations.%s.updated_at", dest): now.AsTime(),
			}); err != nil {
				fwCtx.Logger.Error("Failed to record unknown-destination result", "dest", dest, "error", err)
			}
			continue
		}

		ce, err := pubsub.NewCloudEvent("router", "com.syncforge.activity.destination", eventPayload)
		if err != nil {
			return nil, fmt.Errorf("build cloud event: %w", err)
		}

		msgID, err := fwCtx.Service.Pub.PublishCloudEvent(ctx, topic, ce)
		if err != nil {
			fwCtx.Logger.Error("Failed to publish to destination topic", "dest", dest, "topic", topic, "error", err)
			firstErr = err
			continue
		}

		if err := fwCtx.Service.DB.UpdatePipelineRun(ctx, eventPayload.PipelineExecutionId, map[string]interface{}{
			fmt.Sprintf("destinations.%s.destination", dest): dest,
			fmt.Sprintf("destinations.%s.status", dest):      int32(pb.DestinationSubStatus_DESTINATION_SUB_STATUS_PENDING),
			fmt.Sprintf("destinations.%s.updated_at", dest):  now.AsTime(),
		}); err != nil {
			fwCtx.Logger.Error("Failed to record pending destination result", "dest", dest, "error", err)
		}

		routings = append(routings, dest+":"+msgID)
	}

	fwCtx.Logger.Info("Routed activity", "routes", routings)
	if firstErr != nil && len(routings) == 0 {
		return nil, fmt.Errorf("all destination publishes failed: %w", firstErr)
	}
	return map[string]interface{}{
		"routings": routings,
	}, nil
}
