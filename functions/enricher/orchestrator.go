package enricher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	shared "github.com/syncforge/core/pkg"
	"github.com/syncforge/core/pkg/bootstrap"
	"github.com/syncforge/core/pkg/descbuilder"
	fit "github.com/syncforge/core/pkg/domain/file_generators"
	providers "github.com/syncforge/core/pkg/enricher_providers"
	"github.com/syncforge/core/pkg/enricher_providers/user_input"
	fitglueerrors "github.com/syncforge/core/pkg/errors"
	"github.com/syncforge/core/pkg/infrastructure/pubsub"
	"github.com/syncforge/core/pkg/plugin"
	pb "github.com/syncforge/core/pkg/types/pb"
)

// Engine runs a single pipeline's enricher chain, strictly in declared
// order, against one envelope. It owns every PipelineRun transition and
// downstream publish for the activity it is handed; callers only translate
// the returned Result into a wrapper status string.
type Engine struct {
	svc       *bootstrap.Service
	providers map[pb.EnricherProviderType]providers.Provider
}

func NewEngine(svc *bootstrap.Service, registry map[pb.EnricherProviderType]providers.Provider) *Engine {
	return &Engine{svc: svc, providers: registry}
}

// Status strings mirror pb.ExecutionStatus's "STATUS_*" vocabulary so
// function.go can hand them straight to the framework wrapper's custom
// status override.
const (
	StatusSuccess  = "SUCCESS"
	StatusSkipped  = "SKIPPED"
	StatusFailed   = "FAILED"
	StatusLagRetry = "LAG_RETRY"
	StatusWaiting  = "WAITING"
)

// Result summarizes one Process call for logging and for the caller's
// decision about whether to schedule a lag redelivery.
type Result struct {
	Status        string
	Reason        string
	LagRetryAfter time.Duration
	Event         *pb.EnrichedActivityEvent
}

// Process executes the pipeline identified by payload.PipelineId end to end:
// it loads the user and pipeline config, runs the enricher chain, and on a
// clean finish publishes the enriched envelope to topic-enriched. doNotRetry
// forces every provider down its non-retrying path, used once a run has
// exhausted its lag-attempt budget or is arriving via auto-resume.
func (eng *Engine) Process(ctx context.Context, payload *pb.ActivityPayload, doNotRetry bool, logger *slog.Logger) (*Result, error) {
	user, err := eng.svc.DB.GetUser(ctx, payload.UserId)
	if err != nil {
		return eng.fail(ctx, payload, fmt.Errorf("get user: %w", err))
	}

	var cfg *pb.PipelineConfig
	for _, p := range user.Pipelines {
		if p.Id == payload.PipelineId {
			cfg = p
			break
		}
	}
	if cfg == nil {
		return eng.fail(ctx, payload, fmt.Errorf("pipeline %s not found for user %s", payload.PipelineId, payload.UserId))
	}

	activity, err := eng.resolveActivity(ctx, payload)
	if err != nil {
		return eng.fail(ctx, payload, err)
	}

	var pendingInput *pb.PendingInput
	resumeSet := map[string]bool{}
	if payload.IsResume {
		for _, id := range payload.ResumeOnlyEnrichers {
			resumeSet[id] = true
		}
		pendingInput, err = eng.svc.DB.GetPendingInput(ctx, payload.ResumePendingInputId)
		if err != nil {
			return eng.fail(ctx, payload, fmt.Errorf("get pending input: %w", err))
		}
	}

	ctx = user_input.WithResumeContext(ctx, user_input.ResumeContext{
		ActivityID:          payload.ActivityId,
		PipelineID:          payload.PipelineId,
		PipelineExecutionID: payload.PipelineExecutionId,
		UserID:              payload.UserId,
	})

	builder := descbuilder.New(activity.Description)
	name := activity.Name
	activityType := activity.Type
	var tags []string
	metadata := map[string]string{}
	var applied []string

	for _, step := range cfg.Enrichers {
		if payload.IsResume && !resumeSet[step.ProviderType.String()] {
			logger.Info("Skipping enricher step not listed for resume", "provider", step.ProviderType.String())
			continue
		}

		provider, ok := eng.providers[step.ProviderType]
		if !ok {
			return eng.fail(ctx, payload, fmt.Errorf("enricher provider not registered: %s", step.ProviderType.String()))
		}

		inputs := make(map[string]string, len(step.Inputs))
		for k, v := range step.Inputs {
			inputs[k] = v
		}
		if payload.IsResume && resumeSet[step.ProviderType.String()] && pendingInput != nil {
			for k, v := range pendingInput.InputData {
				inputs[k] = v
			}
		}

		// Only providers that publish a config schema manifest get
		// validated; one that never registered one (no manifest found) is
		// trusted to validate its own inputs in Enrich.
		if manifest, ok := plugin.GetEnricherManifest(step.ProviderType); ok {
			if err := plugin.ValidateConfigAgainstSchema(inputs, manifest.ConfigSchema); err != nil {
				return eng.fail(ctx, payload, fitglueerrors.Wrap(err, fitglueerrors.CodePipelineInvalidConfig, fmt.Sprintf("enricher %s config", provider.Name())))
			}
		}

		res, err := provider.Enrich(ctx, activity, user, inputs, doNotRetry)
		if err != nil {
			if re, ok := providers.AsRetryable(err); ok && !doNotRetry {
				return eng.scheduleLag(ctx, payload, re)
			}
			return eng.fail(ctx, payload, fmt.Errorf("enricher %s: %w", provider.Name(), err))
		}

		if res.HaltPipeline {
			if res.AwaitingInput {
				return eng.awaitInput(ctx, payload, res.HaltReason)
			}
			return eng.skip(ctx, payload, res.HaltReason)
		}

		applied = append(applied, provider.Name())
		header := res.SectionHeader
		if header == "" && res.Description != "" {
			header = provider.Name()
		}
		builder.Apply(header, res.Description)
		if res.Name != "" {
			name = res.Name
		}
		if res.NameSuffix != "" {
			name += res.NameSuffix
		}
		if res.ActivityType != pb.ActivityType_ACTIVITY_TYPE_UNSPECIFIED {
			activityType = res.ActivityType
		}
		tags = unionTags(tags, res.Tags)
		for k, v := range res.Metadata {
			metadata[k] = v
		}
		mergeStreams(activity, res)
	}

	if payload.IsResume && pendingInput != nil {
		now := timestamppb.Now()
		if err := eng.svc.DB.UpdatePendingInput(ctx, pendingInput.ActivityId, map[string]interface{}{
			"status":       int32(pb.PendingInput_STATUS_COMPLETED),
			"completed_at": now.AsTime(),
			"updated_at":   now.AsTime(),
		}); err != nil {
			logger.Warn("Failed to mark pending input completed", "error", err)
		}
	}

	useUpdate := eng.hasSuccessfulDestination(ctx, payload.PipelineExecutionId)

	event := &pb.EnrichedActivityEvent{
		UserId:              payload.UserId,
		Source:              payload.Source,
		ActivityId:          payload.ActivityId,
		PipelineId:          payload.PipelineId,
		PipelineExecutionId: payload.PipelineExecutionId,
		ActivityData:        activity,
		Name:                name,
		Description:         builder.String(),
		ActivityType:        activityType,
		StartTime:           activity.StartTime,
		AppliedEnrichments:  applied,
		EnrichmentMetadata:  metadata,
		Destinations:        cfg.Destinations,
		Tags:                tags,
		UseUpdateMethod:     useUpdate,
	}

	bucketName := eng.svc.Config.GCSArtifactBucket
	if bucketName == "" {
		bucketName = "syncforge-artifacts"
	}

	if fitBytes, err := fit.GenerateFitFile(activity); err != nil {
		logger.Warn("Failed to generate FIT file", "error", err)
	} else if len(fitBytes) > 0 {
		objName := fmt.Sprintf("activities/%s/%s.fit", payload.UserId, payload.ActivityId)
		if err := eng.svc.Store.Write(ctx, bucketName, objName, fitBytes); err != nil {
			logger.Warn("Failed to write FIT file artifact", "error", err)
		} else {
			event.FitFileUri = fmt.Sprintf("gs://%s/%s", bucketName, objName)
		}
	}

	if len(event.Description) > shared.DescriptionSizeCeiling {
		objName := fmt.Sprintf("activities/%s/%s.json", payload.UserId, payload.ActivityId)
		fullBytes, err := json.Marshal(event)
		if err != nil {
			return eng.fail(ctx, payload, fmt.Errorf("marshal oversized envelope: %w", err))
		}
		if err := eng.svc.Store.Write(ctx, bucketName, objName, fullBytes); err != nil {
			return eng.fail(ctx, payload, fmt.Errorf("write oversized envelope: %w", err))
		}
		event.ActivityDataUri = fmt.Sprintf("gs://%s/%s", bucketName, objName)
		event.ActivityData = nil
		event.Description = event.Description[:shared.DescriptionSizeCeiling] + "... (truncated, full description at activity_data_uri)"
	}

	ce, err := pubsub.NewCloudEvent("enricher", "com.syncforge.activity.enriched", event)
	if err != nil {
		return eng.fail(ctx, payload, fmt.Errorf("build cloud event: %w", err))
	}
	if _, err := eng.svc.Pub.PublishCloudEvent(ctx, shared.TopicEnrichedActivity, ce); err != nil {
		return eng.fail(ctx, payload, fmt.Errorf("publish enriched activity: %w", err))
	}

	now := timestamppb.Now()
	if err := eng.svc.DB.UpdatePipelineRun(ctx, payload.PipelineExecutionId, map[string]interface{}{
		"status":     int32(pb.PipelineRunStatus_PIPELINE_RUN_RUNNING),
		"updated_at": now.AsTime(),
	}); err != nil {
		logger.Warn("Failed to mark pipeline run running", "error", err)
	}

	return &Result{Status: StatusSuccess, Event: event}, nil
}

func (eng *Engine) resolveActivity(ctx context.Context, payload *pb.ActivityPayload) (*pb.StandardizedActivity, error) {
	if payload.StandardizedActivity != nil {
		return payload.StandardizedActivity, nil
	}
	if payload.ActivityDataUri == "" {
		return nil, fmt.Errorf("envelope carries neither standardized_activity nor activity_data_uri")
	}

	bucketName, objectName, err := parseGCSURI(payload.ActivityDataUri)
	if err != nil {
		return nil, err
	}
	data, err := eng.svc.Store.Read(ctx, bucketName, objectName)
	if err != nil {
		return nil, fmt.Errorf("read activity data blob: %w", err)
	}
	var activity pb.StandardizedActivity
	if err := json.Unmarshal(data, &activity); err != nil {
		return nil, fmt.Errorf("unmarshal activity data blob: %w", err)
	}
	return &activity, nil
}

func parseGCSURI(uri string) (bucket, object string, err error) {
	rest := strings.TrimPrefix(uri, "gs://")
	if rest == uri {
		return "", "", fmt.Errorf("not a gs:// uri: %s", uri)
	}
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("malformed gs:// uri: %s", uri)
	}
	return parts[0], parts[1], nil
}

func (eng *Engine) hasSuccessfulDestination(ctx context.Context, pipelineExecutionID string) bool {
	run, err := eng.svc.DB.GetPipelineRun(ctx, pipelineExecutionID)
	if err != nil || run == nil {
		return false
	}
	for _, d := range run.Destinations {
		if d.Status == pb.DestinationSubStatus_DESTINATION_SUB_STATUS_SUCCESS && d.ExternalId != "" {
			return true
		}
	}
	return false
}

func (eng *Engine) fail(ctx context.Context, payload *pb.ActivityPayload, cause error) (*Result, error) {
	now := timestamppb.Now()
	if err := eng.svc.DB.UpdatePipelineRun(ctx, payload.PipelineExecutionId, map[string]interface{}{
		"status":     int32(pb.PipelineRunStatus_PIPELINE_RUN_FAILED),
		"reason":     cause.Error(),
		"updated_at": now.AsTime(),
	}); err != nil {
		slog.Warn("Failed to record failed pipeline run", "error", err)
	}
	return &Result{Status: StatusFailed, Reason: cause.Error()}, cause
}

func (eng *Engine) awaitInput(ctx context.Context, payload *pb.ActivityPayload, reason string) (*Result, error) {
	now := timestamppb.Now()
	if err := eng.svc.DB.UpdatePipelineRun(ctx, payload.PipelineExecutionId, map[string]interface{}{
		"status":     int32(pb.PipelineRunStatus_PIPELINE_RUN_AWAITING_INPUT),
		"reason":     reason,
		"updated_at": now.AsTime(),
	}); err != nil {
		slog.Warn("Failed to record awaiting-input pipeline run", "error", err)
	}

	// Stash the originating envelope on the PendingInput row the provider
	// just created so the auto-resume sweep can republish it verbatim once
	// auto_deadline elapses. Stored as a JSON string, matching the converter's
	// encoding of PendingInput.OriginalPayload.
	if payloadBytes, err := json.Marshal(payload); err != nil {
		slog.Warn("Failed to marshal original payload for pending input", "error", err)
	} else if err := eng.svc.DB.UpdatePendingInput(ctx, payload.ActivityId, map[string]interface{}{
		"original_payload": string(payloadBytes),
		"updated_at":       now.AsTime(),
	}); err != nil {
		slog.Warn("Failed to stash original payload on pending input", "error", err)
	}

	return &Result{Status: StatusWaiting, Reason: reason}, nil
}

func (eng *Engine) skip(ctx context.Context, payload *pb.ActivityPayload, reason string) (*Result, error) {
	now := timestamppb.Now()
	if err := eng.svc.DB.UpdatePipelineRun(ctx, payload.PipelineExecutionId, map[string]interface{}{
		"status":     int32(pb.PipelineRunStatus_PIPELINE_RUN_SKIPPED),
		"reason":     reason,
		"updated_at": now.AsTime(),
	}); err != nil {
		slog.Warn("Failed to record skipped pipeline run", "error", err)
	}
	return &Result{Status: StatusSkipped, Reason: reason}, nil
}

func (eng *Engine) scheduleLag(ctx context.Context, payload *pb.ActivityPayload, re *providers.RetryableError) (*Result, error) {
	now := timestamppb.Now()
	run, _ := eng.svc.DB.GetPipelineRun(ctx, payload.PipelineExecutionId)
	attempts := int32(1)
	if run != nil {
		attempts = run.LagAttempts + 1
	}
	if err := eng.svc.DB.UpdatePipelineRun(ctx, payload.PipelineExecutionId, map[string]interface{}{
		"lag_attempts": attempts,
		"updated_at":   now.AsTime(),
	}); err != nil {
		slog.Warn("Failed to record lag attempt", "error", err)
	}

	ce, err := pubsub.NewCloudEvent("enricher", "com.syncforge.activity.pipeline", payload)
	if err != nil {
		return eng.fail(ctx, payload, fmt.Errorf("build lag cloud event: %w", err))
	}
	ce.SetExtension("origin", "lag-queue")
	ce.SetExtension("retryAfterSeconds", int64(re.RetryAfter.Seconds()))
	if _, err := eng.svc.Pub.PublishCloudEvent(ctx, shared.TopicEnrichmentLag, ce); err != nil {
		return eng.fail(ctx, payload, fmt.Errorf("publish to lag topic: %w", err))
	}

	return &Result{Status: StatusLagRetry, Reason: re.Reason, LagRetryAfter: re.RetryAfter}, nil
}

func unionTags(existing, added []string) []string {
	if len(added) == 0 {
		return existing
	}
	seen := make(map[string]bool, len(existing))
	for _, t := range existing {
		seen[t] = true
	}
	for _, t := range added {
		if !seen[t] {
			existing = append(existing, t)
			seen[t] = true
		}
	}
	return existing
}

// mergeStreams overlays a provider's raw per-sample streams onto the
// activity's first session/lap by index, creating that lap if the activity
// has none yet (e.g. a strength-only payload enriched with a GPS track).
func mergeStreams(activity *pb.StandardizedActivity, res *providers.EnrichmentResult) {
	if len(res.HeartRateStream) == 0 && len(res.PowerStream) == 0 &&
		len(res.PositionLatStream) == 0 && len(res.PositionLongStream) == 0 {
		return
	}
	if len(activity.Sessions) == 0 {
		activity.Sessions = append(activity.Sessions, &pb.Session{})
	}
	session := activity.Sessions[0]
	if len(session.Laps) == 0 {
		session.Laps = append(session.Laps, &pb.Lap{StartTime: activity.StartTime})
	}
	lap := session.Laps[0]

	maxLen := len(lap.Records)
	for _, stream := range [][]int{res.HeartRateStream, res.PowerStream} {
		if len(stream) > maxLen {
			maxLen = len(stream)
		}
	}
	if len(res.PositionLatStream) > maxLen {
		maxLen = len(res.PositionLatStream)
	}
	if len(res.PositionLongStream) > maxLen {
		maxLen = len(res.PositionLongStream)
	}
	for len(lap.Records) < maxLen {
		lap.Records = append(lap.Records, &pb.Record{})
	}

	for i, v := range res.HeartRateStream {
		lap.Records[i].HeartRate = int32(v)
	}
	for i, v := range res.PowerStream {
		lap.Records[i].Power = int32(v)
	}
	for i, v := range res.PositionLatStream {
		lap.Records[i].PositionLat = v
	}
	for i, v := range res.PositionLongStream {
		lap.Records[i].PositionLong = v
	}
}
