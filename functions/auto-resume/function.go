// Package auto_resume implements the background sweep that unblocks a
// pipeline run stuck in AWAITING_INPUT once its PendingInput row has gone
// unanswered past auto_deadline. It is triggered by Cloud Scheduler the same
// way the parkrun results poll is, and republishes the original envelope
// with resume flags so the enricher runs exactly the one provider that
// raised the pause, forcing it to fall back to its own default instead of
// waiting forever.
package auto_resume

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	cloudevents "github.com/cloudevents/sdk-go/v2"
	"google.golang.org/protobuf/types/known/timestamppb"

	shared "github.com/syncforge/core/pkg"
	"github.com/syncforge/core/pkg/bootstrap"
	"github.com/syncforge/core/pkg/framework"
	infrapubsub "github.com/syncforge/core/pkg/infrastructure/pubsub"
	pb "github.com/syncforge/core/pkg/types/pb"
)

var (
	svc     *bootstrap.Service
	svcOnce sync.Once
	svcErr  error
)

func init() {
	functions.CloudEvent("SweepAutoResume", SweepAutoResume)
}

func initService(ctx context.Context) (*bootstrap.Service, error) {
	if svc != nil {
		return svc, svcErr
	}
	svcOnce.Do(func() {
		svc, svcErr = bootstrap.NewService(ctx)
	})
	return svc, svcErr
}

// SweepAutoResume is triggered on a schedule (Cloud Scheduler -> Pub/Sub) to
// claim and resume every PendingInput whose auto_deadline has elapsed.
func SweepAutoResume(ctx context.Context, e cloudevents.Event) error {
	svc, err := initService(ctx)
	if err != nil {
		return fmt.Errorf("service init failed: %v", err)
	}
	return framework.WrapCloudEvent("auto-resume", svc, sweepHandler)(ctx, e)
}

func sweepHandler(ctx context.Context, e cloudevents.Event, fwCtx *framework.FrameworkContext) (interface{}, error) {
	now := time.Now()

	pending, err := fwCtx.Service.DB.ListPendingInputsPastDeadline(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("list pending inputs past deadline: %w", err)
	}

	if len(pending) == 0 {
		fwCtx.Logger.Info("No pending inputs past auto_deadline")
		return map[string]interface{}{"status": "SUCCESS", "resumed": 0}, nil
	}

	fwCtx.Logger.Info("Auto-resuming pending inputs", "count", len(pending))

	var resumed, failed int
	for _, input := range pending {
		if input.Status != pb.PendingInput_STATUS_WAITING {
			continue
		}

		// Claim it before republishing: a concurrent user resolution racing
		// this sweep loses the Update below once the resolver has already
		// moved the row to COMPLETED, since the conditional check is on the
		// read we just did rather than a transaction. This makes a double
		// resume harmless rather than impossible: the provider's own resume
		// handling is idempotent on a second pass with no new input_data.
		claimErr := fwCtx.Service.DB.UpdatePendingInput(ctx, input.ActivityId, map[string]interface{}{
			"status":     int32(pb.PendingInput_STATUS_EXPIRED),
			"updated_at": timestamppb.Now(),
		})
		if claimErr != nil {
			fwCtx.Logger.Warn("Failed to claim pending input, skipping", "activity_id", input.ActivityId, "error", claimErr)
			failed++
			continue
		}

		if err := republish(ctx, fwCtx, input); err != nil {
			fwCtx.Logger.Error("Failed to republish resume envelope", "activity_id", input.ActivityId, "error", err)
			failed++
			continue
		}

		resumed++
	}

	return map[string]interface{}{
		"status":    "SUCCESS",
		"resumed":   resumed,
		"failed":    failed,
		"processed": len(pending),
	}, nil
}

// republish resubmits the pending input's original envelope to
// topic-pipeline with resume flags set: is_resume, resume_only_enrichers
// scoped to the one provider that paused, do_not_retry so that provider
// can't pause again, and an empty input_data forcing it to pick its own
// default.
func republish(ctx context.Context, fwCtx *framework.FrameworkContext, input *pb.PendingInput) error {
	if input.OriginalPayload == nil {
		return fmt.Errorf("pending input %s has no original_payload to resume", input.ActivityId)
	}

	resumePayload := *input.OriginalPayload
	resumePayload.IsResume = true
	resumePayload.ResumePendingInputId = input.ActivityId
	resumePayload.ResumeOnlyEnrichers = []string{input.EnricherProviderId}
	resumePayload.DoNotRetry = true
	resumePayload.PipelineId = input.PipelineId
	resumePayload.PipelineExecutionId = input.PipelineExecutionId
	resumePayload.ActivityId = input.ActivityId

	ce, err := infrapubsub.NewCloudEvent("auto-resume", "com.syncforge.activity.pipeline", &resumePayload)
	if err != nil {
		return fmt.Errorf("build cloud event: %w", err)
	}

	if _, err := fwCtx.Service.Pub.PublishCloudEvent(ctx, shared.TopicPipelineActivity, ce); err != nil {
		return fmt.Errorf("publish resume envelope: %w", err)
	}

	slog.Info("Auto-resumed pending input", "activity_id", input.ActivityId, "provider", input.EnricherProviderId)
	return nil
}
