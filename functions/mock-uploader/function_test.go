package mockuploader

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/cloudevents/sdk-go/v2/event"

	"github.com/syncforge/core/pkg/bootstrap"
	"github.com/syncforge/core/pkg/framework"
	"github.com/syncforge/core/pkg/testing/mocks"
	pb "github.com/syncforge/core/pkg/types/pb"
)

func TestMockUpload(t *testing.T) {
	var syncedActivity *pb.SynchronizedActivity
	ledgerWrites := []*pb.UploadedActivityRecord{}
	runUpdates := map[string]interface{}{}

	mockDB := &mocks.MockDatabase{
		SetSynchronizedActivityFunc: func(ctx context.Context, userId string, activity *pb.SynchronizedActivity) error {
			syncedActivity = activity
			return nil
		},
		UpdatePipelineRunFunc: func(ctx context.Context, id string, data map[string]interface{}) error {
			for k, v := range data {
				runUpdates[k] = v
			}
			return nil
		},
		SetUploadedActivityFunc: func(ctx context.Context, userID string, record *pb.UploadedActivityRecord) error {
			ledgerWrites = append(ledgerWrites, record)
			return nil
		},
	}

	svc = &bootstrap.Service{DB: mockDB}

	eventPayload := pb.EnrichedActivityEvent{
		UserId:              "user_mock",
		ActivityId:           "activity-mock-1",
		PipelineExecutionId:  "pipeline-exec-mock",
		Name:                 "Mock Workout",
		Source:               pb.ActivitySource_SOURCE_HEVY,
	}
	payloadBytes, _ := json.Marshal(&eventPayload)

	e := event.New()
	e.SetID("evt-mock")
	e.SetType("com.syncforge.activity.destination")
	e.SetSource("//pubsub")
	e.SetData(event.ApplicationJSON, payloadBytes)

	fwCtx := &framework.FrameworkContext{
		Service:             svc,
		Logger:              slog.Default(),
		ExecutionID:         "exec-test",
		PipelineExecutionId: eventPayload.PipelineExecutionId,
	}

	handler := MockHandler()
	if _, err := handler(context.Background(), e, fwCtx); err != nil {
		t.Fatalf("MockHandler failed: %v", err)
	}

	if syncedActivity == nil {
		t.Fatal("expected a synchronized activity to be persisted")
	}
	if syncedActivity.Destinations["mock"] != "mock-activity-mock-1" {
		t.Errorf("unexpected mock external id: %v", syncedActivity.Destinations)
	}
	if len(ledgerWrites) != 1 {
		t.Fatalf("expected one ledger write, got %d", len(ledgerWrites))
	}
	if status, ok := runUpdates["destinations.mock.status"].(int32); !ok || status != int32(pb.DestinationSubStatus_DESTINATION_SUB_STATUS_SUCCESS) {
		t.Errorf("expected SUCCESS sub-status, got %v", runUpdates["destinations.mock.status"])
	}
}
