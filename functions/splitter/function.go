// Package splitter implements the pipeline splitter: it takes one raw
// activity envelope off topic-raw and fans it out to one envelope per
// matching, enabled pipeline configuration on topic-pipeline, minting a
// PipelineRun row for each.
package splitter

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/cloudevents/sdk-go/v2/event"
	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/timestamppb"

	shared "github.com/syncforge/core/pkg"
	"github.com/syncforge/core/pkg/bootstrap"
	"github.com/syncforge/core/pkg/domain/tier"
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
	functions.CloudEvent("SplitActivity", SplitActivity)
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

func SplitActivity(ctx context.Context, e event.Event) error {
	svc, err := initService(ctx)
	if err != nil {
		return fmt.Errorf("service init failed: %v", err)
	}
	return framework.WrapCloudEvent("splitter", svc, SplitHandler)(ctx, e)
}

// pipelineExecutionID is deterministic over (raw_message_id, pipeline_id) so
// a redelivered raw message fans out to the same set of PipelineRun rows
// instead of creating duplicates. A message with no raw_message_id (e.g. a
// manually re-triggered message) gets a fresh id per pipeline instead, since
// there is nothing to dedup against.
func pipelineExecutionID(rawMessageID, pipelineID string) string {
	if rawMessageID == "" {
		return uuid.NewString()
	}
	sum := sha256.Sum256([]byte(rawMessageID + ":" + pipelineID))
	return "run-" + hex.EncodeToString(sum[:16])
}

// SplitHandler fans one raw activity out to one envelope per matching,
// enabled pipeline configuration, minting a PipelineRun row for each.
func SplitHandler(ctx context.Context, e event.Event, fwCtx *framework.FrameworkContext) (interface{}, error) {
	var msg types.PubSubMessage
	if err := e.DataAs(&msg); err != nil {
		return nil, fmt.Errorf("event.DataAs: %v", err)
	}

	var raw pb.ActivityPayload
	if err := json.Unmarshal(msg.Message.Data, &raw); err != nil {
		return nil, fmt.Errorf("json unmarshal: %v", err)
	}

	fwCtx.Logger.Info("Splitting raw activity", "user", raw.UserId, "source", raw.Source.String())

	user, err := fwCtx.Service.DB.GetUser(ctx, raw.UserId)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	var matches []*pb.PipelineConfig
	for _, p := range user.Pipelines {
		if p.Source == raw.Source.String() && !p.Disabled {
			matches = append(matches, p)
		}
	}

	if len(matches) == 0 {
		fwCtx.Logger.Info("No pipeline configured for source, skipping", "source", raw.Source.String())
		return map[string]interface{}{
			"status": "SKIPPED",
			"reason": "no_pipeline_for_source",
		}, nil
	}

	allowed, denyReason := tier.CanSync(user)

	activityID := raw.ActivityId
	if activityID == "" {
		activityID = uuid.NewString()
	}

	fanout := []string{}
	for _, p := range matches {
		execID := pipelineExecutionID(raw.RawMessageId, p.Id)
		now := timestamppb.Now()

		if !allowed {
			run := &pb.PipelineRun{
				PipelineExecutionId: execID,
				PipelineId:          p.Id,
				UserId:              raw.UserId,
				ActivityId:          activityID,
				Status:              pb.PipelineRunStatus_PIPELINE_RUN_FAILED,
				Reason:              denyReason,
				CreatedAt:           now,
				UpdatedAt:           now,
			}
			if err := fwCtx.Service.DB.SetPipelineRun(ctx, run); err != nil {
				fwCtx.Logger.Error("Failed to record tier-denied PipelineRun", "pipeline", p.Id, "error", err)
			}
			continue
		}

		if existing, err := fwCtx.Service.DB.GetPipelineRun(ctx, execID); err == nil && existing != nil && existing.PipelineExecutionId != "" {
			fwCtx.Logger.Info("PipelineRun already exists for this raw message, skipping republish", "pipeline_execution_id", execID)
			continue
		}

		destinations := make(map[string]*pb.DestinationResult, len(p.Destinations))
		for _, d := range p.Destinations {
			destinations[d] = &pb.DestinationResult{
				Destination: d,
				Status:      pb.DestinationSubStatus_DESTINATION_SUB_STATUS_PENDING,
			}
		}

		run := &pb.PipelineRun{
			PipelineExecutionId: execID,
			PipelineId:          p.Id,
			UserId:              raw.UserId,
			ActivityId:          activityID,
			Status:              pb.PipelineRunStatus_PIPELINE_RUN_PENDING,
			Destinations:        destinations,
			CreatedAt:           now,
			UpdatedAt:           now,
		}
		if err := fwCtx.Service.DB.SetPipelineRun(ctx, run); err != nil {
			return nil, fmt.Errorf("create pipeline run for %s: %w", p.Id, err)
		}

		envelope := raw
		envelope.ActivityId = activityID
		envelope.PipelineId = p.Id
		envelope.PipelineExecutionId = execID

		ce, err := pubsub.NewCloudEvent("splitter", "com.syncforge.activity.pipeline", envelope)
		if err != nil {
			return nil, fmt.Errorf("build cloud event: %w", err)
		}
		if _, err := fwCtx.Service.Pub.PublishCloudEvent(ctx, shared.TopicPipelineActivity, ce); err != nil {
			return nil, fmt.Errorf("publish pipeline envelope for %s: %w", p.Id, err)
		}

		fanout = append(fanout, execID)
	}

	fwCtx.Logger.Info("Split complete", "pipelines_fanned_out", fanout)
	return map[string]interface{}{
		"status":        "SUCCESS",
		"activity_id":   activityID,
		"pipeline_runs": fanout,
	}, nil
}
