package router

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/cloudevents/sdk-go/v2/event"

	"github.com/syncforge/core/pkg/bootstrap"
	"github.com/syncforge/core/pkg/testing/mocks"
	"github.com/syncforge/core/pkg/types"
	pb "github.com/syncforge/core/pkg/types/pb"
)

func TestRouteActivity(t *testing.T) {
	pipelineRunUpdates := map[string]map[string]interface{}{}

	mockDB := &mocks.MockDatabase{
		SetExecutionFunc:    func(ctx context.Context, record *pb.ExecutionRecord) error { return nil },
		UpdateExecutionFunc: func(ctx context.Context, id string, data map[string]interface{}) error { return nil },
		UpdatePipelineRunFunc: func(ctx context.Context, id string, data map[string]interface{}) error {
			if pipelineRunUpdates[id] == nil {
				pipelineRunUpdates[id] = map[string]interface{}{}
			}
			for k, v := range data {
				pipelineRunUpdates[id][k] = v
			}
			return nil
		},
	}

	publishedTopics := []string{}
	mockPub := &mocks.MockPublisher{
		PublishCloudEventFunc: func(ctx context.Context, topic string, e event.Event) (string, error) {
			publishedTopics = append(publishedTopics, topic)
			return "msg-routable", nil
		},
	}

	svc = &bootstrap.Service{
		DB:  mockDB,
		Pub: mockPub,
		Config: &bootstrap.Config{
			ProjectID: "test-project",
		},
	}

	eventPayload := pb.EnrichedActivityEvent{
		UserId:              "user_router",
		ActivityId:           "activity-123",
		FitFileUri:           "gs://bucket/file.fit",
		Description:          "Test Description",
		ActivityType:         pb.ActivityType_ACTIVITY_TYPE_WEIGHT_TRAINING,
		Name:                 "Test Workout",
		Source:               pb.ActivitySource_SOURCE_HEVY,
		Destinations:         []string{"strava", "no-such-vendor"},
		PipelineId:           "pipe-test-1",
		PipelineExecutionId:  "pipeline-exec-1",
	}
	payloadBytes, _ := json.Marshal(&eventPayload)

	psMsg := types.PubSubMessage{
		Message: struct {
			Data       []byte            `json:"data"`
			Attributes map[string]string `json:"attributes"`
		}{
			Data: payloadBytes,
		},
	}

	e := event.New()
	e.SetID("evt-router")
	e.SetType("google.cloud.pubsub.topic.v1.messagePublished")
	e.SetSource("//pubsub")
	e.SetData(event.ApplicationJSON, psMsg)

	if err := RouteActivity(context.Background(), e); err != nil {
		t.Fatalf("RouteActivity failed: %v", err)
	}

	if len(publishedTopics) != 1 {
		t.Fatalf("Expected 1 published topic, got %d: %v", len(publishedTopics), publishedTopics)
	}
	if publishedTopics[0] != "topic-job-upload-strava" {
		t.Errorf("Expected topic 'topic-job-upload-strava', got '%s'", publishedTopics[0])
	}

	runUpdates := pipelineRunUpdates["pipeline-exec-1"]
	if runUpdates == nil {
		t.Fatal("Expected a PipelineRun update")
	}
	if status, ok := runUpdates["destinations.strava.status"].(int32); !ok || status != int32(pb.DestinationSubStatus_DESTINATION_SUB_STATUS_PENDING) {
		t.Errorf("Expected strava destination PENDING, got %v", runUpdates["destinations.strava.status"])
	}
	if status, ok := runUpdates["destinations.no-such-vendor.status"].(int32); !ok || status != int32(pb.DestinationSubStatus_DESTINATION_SUB_STATUS_FAILED) {
		t.Errorf("Expected unknown destination FAILED, got %v", runUpdates["destinations.no-such-vendor.status"])
	}
}
