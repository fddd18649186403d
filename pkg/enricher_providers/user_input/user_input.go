package user_input

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/syncforge/core/pkg/bootstrap"
	"github.com/syncforge/core/pkg/enricher_providers"
	pb "github.com/syncforge/core/pkg/types/pb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// UserInputProvider pauses a pipeline until a user supplies one or more
// fields (e.g. a workout title). On first encounter it creates a
// PendingInput row and halts; on resume, the engine has already merged the
// resolved fields into inputs and the provider simply applies them.
type UserInputProvider struct {
	service *bootstrap.Service
}

func (p *UserInputProvider) SetService(s *bootstrap.Service) {
	p.service = s
}
func (p *UserInputProvider) Name() string { return "user_input" }
func (p *UserInputProvider) ProviderType() pb.EnricherProviderType {
	return pb.EnricherProviderType_ENRICHER_PROVIDER_USER_INPUT
}

// ResumeContext carries the identifiers the engine fills in ahead of an
// Enrich call so the provider knows which activity and pipeline the
// PendingInput it creates belongs to.
type ResumeContext struct {
	ActivityID          string
	PipelineID          string
	PipelineExecutionID string
	UserID              string
}

type resumeCtxKey struct{}

// WithResumeContext attaches a ResumeContext for Enrich to read.
func WithResumeContext(ctx context.Context, rc ResumeContext) context.Context {
	return context.WithValue(ctx, resumeCtxKey{}, rc)
}

func resumeContextFrom(ctx context.Context) (ResumeContext, bool) {
	rc, ok := ctx.Value(resumeCtxKey{}).(ResumeContext)
	return rc, ok
}

func (p *UserInputProvider) Enrich(ctx context.Context, activity *pb.StandardizedActivity, user *pb.UserRecord, inputs map[string]string, doNotRetry bool) (*enricher_providers.EnrichmentResult, error) {
	if p.service == nil {
		return nil, fmt.Errorf("service not initialized")
	}

	fields := parseFields(inputs["fields"])

	// Resolved fields arrive pre-merged into `inputs` by the engine on a
	// resume pass. If every required field is present, apply them.
	if allPresent(inputs, fields) {
		res := &enricher_providers.EnrichmentResult{
			Metadata: map[string]string{"user_input_applied": "true"},
		}
		if v, ok := inputs["title"]; ok {
			res.Name = v
		}
		if v, ok := inputs["description"]; ok {
			res.Description = v
		}
		return res, nil
	}

	// Auto-resume past the deadline with nothing supplied: apply a
	// best-effort default instead of pausing forever.
	if doNotRetry {
		return &enricher_providers.EnrichmentResult{
			Metadata: map[string]string{"user_input_applied": "default"},
		}, nil
	}

	rc, ok := resumeContextFrom(ctx)
	if !ok || rc.ActivityID == "" {
		return nil, fmt.Errorf("user_input: missing resume context")
	}

	pending := &pb.PendingInput{
		ActivityId:          rc.ActivityID,
		UserId:              rc.UserID,
		PipelineId:          rc.PipelineID,
		PipelineExecutionId: rc.PipelineExecutionID,
		EnricherProviderId:  p.ProviderType().String(),
		RequiredFields:      fields,
		Status:              pb.PendingInput_STATUS_WAITING,
		AutoDeadline:        timestamppb.New(time.Now().Add(24 * time.Hour)),
	}
	if err := p.service.DB.CreatePendingInput(ctx, pending); err != nil {
		return nil, fmt.Errorf("create pending input: %w", err)
	}

	return &enricher_providers.EnrichmentResult{
		HaltPipeline:  true,
		HaltReason:    "awaiting_user_input",
		AwaitingInput: true,
	}, nil
}

func allPresent(inputs map[string]string, fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(inputs[f]) == "" {
			return false
		}
	}
	return true
}

func parseFields(s string) []string {
	if s == "" {
		return []string{"description"}
	}
	parts := strings.Split(s, ",")
	var out []string
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return []string{"description"}
	}
	return out
}
