// Package enricher runs the enricher engine as a Cloud Function, triggered
// both by the normal topic-pipeline delivery and by lag-topic redelivery
// once a provider has asked to be retried later.
package enricher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/cloudevents/sdk-go/v2/event"

	shared "github.com/syncforge/core/pkg"
	"github.com/syncforge/core/pkg/bootstrap"
	"github.com/syncforge/core/pkg/framework"
	"github.com/syncforge/core/pkg/registry"
	"github.com/syncforge/core/pkg/types"
	pb "github.com/syncforge/core/pkg/types/pb"
)

var (
	svc     *bootstrap.Service
	engine  *Engine
	svcOnce sync.Once
	svcErr  error
)

func init() {
	functions.CloudEvent("EnrichActivity", EnrichActivity)
	functions.CloudEvent("EnrichLagRetry", EnrichLagRetry)
}

func initService(ctx context.Context) (*bootstrap.Service, *Engine, error) {
	if svc != nil {
		return svc, engine, svcErr
	}
	svcOnce.Do(func() {
		baseSvc, err := bootstrap.NewService(ctx)
		if err != nil {
			slog.Error("Failed to initialize service", "error", err)
			svcErr = err
			return
		}
		svc = baseSvc
		engine = NewEngine(svc, registry.Build(svc))
	})
	return svc, engine, svcErr
}

// EnrichActivity is the entry point for a fresh delivery off topic-pipeline
// (first pass, or a user-resolved resume republish).
func EnrichActivity(ctx context.Context, e event.Event) error {
	svc, eng, err := initService(ctx)
	if err != nil {
		return fmt.Errorf("service init failed: %v", err)
	}
	return framework.WrapCloudEvent("enricher", svc, enrichHandler(eng, false))(ctx, e)
}

// EnrichLagRetry is the entry point for a redelivery off topic-lag: the
// envelope is unchanged, but this pass is marked so a second retryable
// error from the same provider counts toward the lag-attempt budget
// instead of looping forever.
func EnrichLagRetry(ctx context.Context, e event.Event) error {
	svc, eng, err := initService(ctx)
	if err != nil {
		return fmt.Errorf("service init failed: %v", err)
	}
	return framework.WrapCloudEvent("enricher-lag", svc, enrichHandler(eng, true))(ctx, e)
}

func enrichHandler(eng *Engine, isLagRetry bool) framework.HandlerFunc {
	return func(ctx context.Context, e event.Event, fwCtx *framework.FrameworkContext) (interface{}, error) {
		var payload pb.ActivityPayload
		if err := unmarshalEnvelope(e, &payload); err != nil {
			return nil, err
		}

		doNotRetry := payload.DoNotRetry
		if isLagRetry {
			run, err := fwCtx.Service.DB.GetPipelineRun(ctx, payload.PipelineExecutionId)
			if err == nil && run != nil && run.LagAttempts >= shared.MaxLagAttempts {
				fwCtx.Logger.Warn("Lag attempt budget exhausted, forcing do_not_retry", "pipeline_execution_id", payload.PipelineExecutionId, "attempts", run.LagAttempts)
				doNotRetry = true
			}
		}

		fwCtx.Logger.Info("Enriching activity",
			"user", payload.UserId, "pipeline", payload.PipelineId,
			"is_resume", payload.IsResume, "is_lag_retry", isLagRetry, "do_not_retry", doNotRetry)

		result, err := eng.Process(ctx, &payload, doNotRetry, fwCtx.Logger)
		if err != nil {
			reason := ""
			if result != nil {
				reason = result.Reason
			}
			return map[string]interface{}{"status": StatusFailed, "reason": reason}, err
		}

		out := map[string]interface{}{
			"status":      result.Status,
			"activity_id": payload.ActivityId,
			"pipeline_id": payload.PipelineId,
		}
		if result.Reason != "" {
			out["reason"] = result.Reason
		}
		if result.LagRetryAfter > 0 {
			out["retry_after_seconds"] = result.LagRetryAfter.Seconds()
		}
		return out, nil
	}
}

// unmarshalEnvelope accepts either a raw ActivityPayload (as published
// directly by the splitter/lag scheduler) or one wrapped in a Pub/Sub push
// envelope, since both shapes can reach this function depending on how the
// subscription is configured.
func unmarshalEnvelope(e event.Event, payload *pb.ActivityPayload) error {
	data := e.Data()

	var msg types.PubSubMessage
	if err := json.Unmarshal(data, &msg); err == nil && len(msg.Message.Data) > 0 {
		return json.Unmarshal(msg.Message.Data, payload)
	}

	if err := json.Unmarshal(data, payload); err != nil {
		return fmt.Errorf("unmarshal activity payload: %w", err)
	}
	return nil
}
