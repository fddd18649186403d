package stravauploader

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/cloudevents/sdk-go/v2/event"

	"github.com/syncforge/core/pkg/bootstrap"
	"github.com/syncforge/core/pkg/framework"
	"github.com/syncforge/core/pkg/testing/mocks"
	pb "github.com/syncforge/core/pkg/types/pb"
)

func TestUploadToStrava(t *testing.T) {
	ledgerWrites := []*pb.UploadedActivityRecord{}
	runUpdates := map[string]interface{}{}

	mockDB := &mocks.MockDatabase{
		GetUserFunc: func(ctx context.Context, id string) (*pb.UserRecord, error) {
			return &pb.UserRecord{
				UserId: id,
				Integrations: &pb.UserIntegrations{
					Strava: &pb.StravaIntegration{
						Enabled:      true,
						AccessToken:  "token-123",
						RefreshToken: "refresh-123",
					},
				},
			}, nil
		},
		SetExecutionFunc:    func(ctx context.Context, record *pb.ExecutionRecord) error { return nil },
		UpdateExecutionFunc: func(ctx context.Context, id string, data map[string]interface{}) error { return nil },
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

	mockStore := &mocks.MockBlobStore{
		ReadFunc: func(ctx context.Context, bucket, object string) ([]byte, error) {
			return []byte("MOCK_FIT_DATA"), nil
		},
	}

	var capturedAuth string
	httpClient := &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			capturedAuth = req.Header.Get("Authorization")
			return &http.Response{
				StatusCode: 201,
				Body:       io.NopCloser(bytes.NewBufferString(`{"id": 999, "activity_id": 555}`)),
				Header:     make(http.Header),
			}, nil
		}),
	}

	svc = &bootstrap.Service{
		DB:      mockDB,
		Store:   mockStore,
		Secrets: &mocks.MockSecretStore{},
		Config: &bootstrap.Config{
			ProjectID:         "test-project",
			GCSArtifactBucket: "test-bucket",
		},
	}

	eventPayload := pb.EnrichedActivityEvent{
		UserId:              "user_upload",
		ActivityId:           "activity-upload-1",
		PipelineExecutionId:  "pipeline-exec-upload",
		FitFileUri:           "gs://test-bucket/activities/user_upload/123.fit",
		Description:          "Test Activity",
		ActivityType:         pb.ActivityType_ACTIVITY_TYPE_WEIGHT_TRAINING,
		Name:                 "Test Workout",
		Source:               pb.ActivitySource_SOURCE_HEVY,
	}
	payloadBytes, _ := json.Marshal(&eventPayload)

	e := event.New()
	e.SetID("evt-upload")
	e.SetType("com.syncforge.activity.destination")
	e.SetSource("//pubsub")
	e.SetData(event.ApplicationJSON, payloadBytes)

	fwCtx := &framework.FrameworkContext{
		Service:             svc,
		Logger:              slog.Default(),
		ExecutionID:         "exec-test",
		PipelineExecutionId: eventPayload.PipelineExecutionId,
	}

	handler := uploadHandler(httpClient)
	outputs, err := handler(context.Background(), e, fwCtx)
	if err != nil {
		t.Fatalf("uploadHandler failed: %v", err)
	}

	if capturedAuth != "Bearer token-123" {
		t.Errorf("expected bearer token auth, got %q", capturedAuth)
	}

	out, ok := outputs.(map[string]interface{})
	if !ok {
		t.Fatalf("expected map output, got %T", outputs)
	}
	if out["status"] != "SUCCESS" {
		t.Errorf("expected SUCCESS status, got %v", out["status"])
	}

	if len(ledgerWrites) != 1 {
		t.Fatalf("expected one ledger write, got %d", len(ledgerWrites))
	}
	if ledgerWrites[0].Destination != "strava" {
		t.Errorf("expected ledger destination strava, got %s", ledgerWrites[0].Destination)
	}

	if status, ok := runUpdates["destinations.strava.status"].(int32); !ok || status != int32(pb.DestinationSubStatus_DESTINATION_SUB_STATUS_SUCCESS) {
		t.Errorf("expected SUCCESS sub-status recorded, got %v", runUpdates["destinations.strava.status"])
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
