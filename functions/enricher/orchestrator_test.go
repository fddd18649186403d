package enricher

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/cloudevents/sdk-go/v2/event"

	"github.com/syncforge/core/pkg/bootstrap"
	providers "github.com/syncforge/core/pkg/enricher_providers"
	"github.com/syncforge/core/pkg/testing/mocks"
	pb "github.com/syncforge/core/pkg/types/pb"
)

type stubProvider struct {
	name   string
	pType  pb.EnricherProviderType
	result *providers.EnrichmentResult
	err    error
	calls  int
}

func (s *stubProvider) Name() string                         { return s.name }
func (s *stubProvider) ProviderType() pb.EnricherProviderType { return s.pType }
func (s *stubProvider) Enrich(ctx context.Context, activity *pb.StandardizedActivity, user *pb.UserRecord, inputs map[string]string, doNotRetry bool) (*providers.EnrichmentResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newTestSvc(db *mocks.MockDatabase, pub *mocks.MockPublisher) *bootstrap.Service {
	return &bootstrap.Service{
		DB:     db,
		Pub:    pub,
		Store:  &mocks.MockBlobStore{},
		Config: &bootstrap.Config{ProjectID: "test-project", GCSArtifactBucket: "test-bucket"},
	}
}

func basePayload() *pb.ActivityPayload {
	return &pb.ActivityPayload{
		UserId:              "user-1",
		Source:              pb.ActivitySource_SOURCE_HEVY,
		ActivityId:          "activity-1",
		PipelineId:          "pipe-1",
		PipelineExecutionId: "pipeline-exec-1",
		StandardizedActivity: &pb.StandardizedActivity{
			Name:        "Raw Workout",
			Description: "raw description",
			Type:        pb.ActivityType_ACTIVITY_TYPE_WORKOUT,
		},
	}
}

func TestEngineProcess_RunsChainInOrderAndPublishes(t *testing.T) {
	published := []string{}
	mockDB := &mocks.MockDatabase{
		GetUserFunc: func(ctx context.Context, id string) (*pb.UserRecord, error) {
			return &pb.UserRecord{
				UserId: id,
				Pipelines: []*pb.PipelineConfig{
					{
						Id:     "pipe-1",
						Source: "SOURCE_HEVY",
						Enrichers: []*pb.EnricherConfig{
							{ProviderType: pb.EnricherProviderType_ENRICHER_PROVIDER_MOCK},
						},
						Destinations: []string{"mock"},
					},
				},
			}, nil
		},
		GetPipelineRunFunc: func(ctx context.Context, id string) (*pb.PipelineRun, error) {
			return &pb.PipelineRun{PipelineExecutionId: id, Destinations: map[string]*pb.DestinationResult{}}, nil
		},
		UpdatePipelineRunFunc: func(ctx context.Context, id string, data map[string]interface{}) error { return nil },
	}
	mockPub := &mocks.MockPublisher{
		PublishCloudEventFunc: func(ctx context.Context, topic string, e event.Event) (string, error) {
			published = append(published, topic)
			return "msg-1", nil
		},
	}
	svc := newTestSvc(mockDB, mockPub)

	mock := &stubProvider{
		name:   "mock",
		pType:  pb.EnricherProviderType_ENRICHER_PROVIDER_MOCK,
		result: &providers.EnrichmentResult{Name: "Enriched Workout", Description: "mock contribution", Tags: []string{"auto"}},
	}
	eng := NewEngine(svc, map[pb.EnricherProviderType]providers.Provider{
		pb.EnricherProviderType_ENRICHER_PROVIDER_MOCK: mock,
	})

	result, err := eng.Process(context.Background(), basePayload(), false, slog.Default())
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if result.Status != StatusSuccess {
		t.Fatalf("expected SUCCESS, got %s", result.Status)
	}
	if mock.calls != 1 {
		t.Fatalf("expected provider called once, got %d", mock.calls)
	}
	if result.Event.Name != "Enriched Workout" {
		t.Errorf("expected overridden name, got %q", result.Event.Name)
	}
	if len(published) != 1 || published[0] != "topic-enriched-activity" {
		t.Fatalf("expected one publish to topic-enriched-activity, got %v", published)
	}
}

func TestEngineProcess_HaltPipelineSkipsRun(t *testing.T) {
	runUpdates := map[string]interface{}{}
	mockDB := &mocks.MockDatabase{
		GetUserFunc: func(ctx context.Context, id string) (*pb.UserRecord, error) {
			return &pb.UserRecord{
				UserId: id,
				Pipelines: []*pb.PipelineConfig{
					{
						Id:     "pipe-1",
						Source: "SOURCE_HEVY",
						Enrichers: []*pb.EnricherConfig{
							{ProviderType: pb.EnricherProviderType_ENRICHER_PROVIDER_ACTIVITY_FILTER},
						},
					},
				},
			}, nil
		},
		UpdatePipelineRunFunc: func(ctx context.Context, id string, data map[string]interface{}) error {
			for k, v := range data {
				runUpdates[k] = v
			}
			return nil
		},
	}
	svc := newTestSvc(mockDB, &mocks.MockPublisher{})
	filter := &stubProvider{
		name:   "activity_filter",
		pType:  pb.EnricherProviderType_ENRICHER_PROVIDER_ACTIVITY_FILTER,
		result: &providers.EnrichmentResult{HaltPipeline: true, HaltReason: "filtered_out"},
	}
	eng := NewEngine(svc, map[pb.EnricherProviderType]providers.Provider{
		pb.EnricherProviderType_ENRICHER_PROVIDER_ACTIVITY_FILTER: filter,
	})

	result, err := eng.Process(context.Background(), basePayload(), false, slog.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != StatusSkipped {
		t.Fatalf("expected SKIPPED, got %s", result.Status)
	}
	if status, ok := runUpdates["status"].(int32); !ok || status != int32(pb.PipelineRunStatus_PIPELINE_RUN_SKIPPED) {
		t.Errorf("expected SKIPPED pipeline run status, got %v", runUpdates["status"])
	}
}

func TestEngineProcess_AwaitingInputHaltsWithoutSkipping(t *testing.T) {
	runUpdates := map[string]interface{}{}
	mockDB := &mocks.MockDatabase{
		GetUserFunc: func(ctx context.Context, id string) (*pb.UserRecord, error) {
			return &pb.UserRecord{
				UserId: id,
				Pipelines: []*pb.PipelineConfig{
					{
						Id:     "pipe-1",
						Source: "SOURCE_HEVY",
						Enrichers: []*pb.EnricherConfig{
							{ProviderType: pb.EnricherProviderType_ENRICHER_PROVIDER_USER_INPUT},
						},
					},
				},
			}, nil
		},
		UpdatePipelineRunFunc: func(ctx context.Context, id string, data map[string]interface{}) error {
			for k, v := range data {
				runUpdates[k] = v
			}
			return nil
		},
	}
	svc := newTestSvc(mockDB, &mocks.MockPublisher{})
	waiter := &stubProvider{
		name:   "user_input",
		pType:  pb.EnricherProviderType_ENRICHER_PROVIDER_USER_INPUT,
		result: &providers.EnrichmentResult{HaltPipeline: true, HaltReason: "awaiting_user_input", AwaitingInput: true},
	}
	eng := NewEngine(svc, map[pb.EnricherProviderType]providers.Provider{
		pb.EnricherProviderType_ENRICHER_PROVIDER_USER_INPUT: waiter,
	})

	result, err := eng.Process(context.Background(), basePayload(), false, slog.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != StatusWaiting {
		t.Fatalf("expected WAITING, got %s", result.Status)
	}
	if status, ok := runUpdates["status"].(int32); !ok || status != int32(pb.PipelineRunStatus_PIPELINE_RUN_AWAITING_INPUT) {
		t.Errorf("expected AWAITING_INPUT pipeline run status, got %v", runUpdates["status"])
	}
}

func TestEngineProcess_RetryableErrorSchedulesLag(t *testing.T) {
	lagPublishes := []string{}
	mockDB := &mocks.MockDatabase{
		GetUserFunc: func(ctx context.Context, id string) (*pb.UserRecord, error) {
			return &pb.UserRecord{
				UserId: id,
				Pipelines: []*pb.PipelineConfig{
					{
						Id:     "pipe-1",
						Source: "SOURCE_HEVY",
						Enrichers: []*pb.EnricherConfig{
							{ProviderType: pb.EnricherProviderType_ENRICHER_PROVIDER_MOCK},
						},
					},
				},
			}, nil
		},
		GetPipelineRunFunc: func(ctx context.Context, id string) (*pb.PipelineRun, error) {
			return &pb.PipelineRun{PipelineExecutionId: id, LagAttempts: 0}, nil
		},
		UpdatePipelineRunFunc: func(ctx context.Context, id string, data map[string]interface{}) error { return nil },
	}
	mockPub := &mocks.MockPublisher{
		PublishCloudEventFunc: func(ctx context.Context, topic string, e event.Event) (string, error) {
			lagPublishes = append(lagPublishes, topic)
			return "msg-lag", nil
		},
	}
	svc := newTestSvc(mockDB, mockPub)

	retryErr := providers.NewRetryableError(nil, 30*time.Second, "waiting_on_vendor")
	flaky := &stubProvider{name: "mock", pType: pb.EnricherProviderType_ENRICHER_PROVIDER_MOCK, err: retryErr}
	eng := NewEngine(svc, map[pb.EnricherProviderType]providers.Provider{
		pb.EnricherProviderType_ENRICHER_PROVIDER_MOCK: flaky,
	})

	result, err := eng.Process(context.Background(), basePayload(), false, slog.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != StatusLagRetry {
		t.Fatalf("expected LAG_RETRY, got %s", result.Status)
	}
	if len(lagPublishes) != 1 || lagPublishes[0] != "topic-enrichment-lag" {
		t.Fatalf("expected one lag topic publish, got %v", lagPublishes)
	}
}
