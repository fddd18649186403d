package mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudevents/sdk-go/v2/event"
	pb "github.com/syncforge/core/pkg/types/pb"
)

// --- Mock Database ---
type MockDatabase struct {
	SetExecutionFunc    func(ctx context.Context, record *pb.ExecutionRecord) error
	UpdateExecutionFunc func(ctx context.Context, id string, data map[string]interface{}) error
	GetUserFunc         func(ctx context.Context, id string) (*pb.UserRecord, error)
	UpdateUserFunc      func(ctx context.Context, id string, data map[string]interface{}) error

	CreatePendingInputFunc func(ctx context.Context, input *pb.PendingInput) error
	GetPendingInputFunc    func(ctx context.Context, id string) (*pb.PendingInput, error)
	UpdatePendingInputFunc func(ctx context.Context, id string, data map[string]interface{}) error
	ListPendingInputsFunc  func(ctx context.Context, userID string) ([]*pb.PendingInput, error)

	GetCounterFunc              func(ctx context.Context, userId string, id string) (*pb.Counter, error)
	SetCounterFunc              func(ctx context.Context, userId string, counter *pb.Counter) error
	SetSynchronizedActivityFunc func(ctx context.Context, userId string, activity *pb.SynchronizedActivity) error

	GetPipelineRunFunc    func(ctx context.Context, pipelineExecutionID string) (*pb.PipelineRun, error)
	SetPipelineRunFunc    func(ctx context.Context, run *pb.PipelineRun) error
	UpdatePipelineRunFunc func(ctx context.Context, pipelineExecutionID string, data map[string]interface{}) error

	GetUploadedActivityFunc func(ctx context.Context, userID, ledgerKey string) (*pb.UploadedActivityRecord, error)
	SetUploadedActivityFunc func(ctx context.Context, userID string, record *pb.UploadedActivityRecord) error

	IncrementSyncCountFunc func(ctx context.Context, userID string) error
	ResetSyncCountFunc     func(ctx context.Context, userID string) error

	ListPendingInputsPastDeadlineFunc func(ctx context.Context, now time.Time) ([]*pb.PendingInput, error)
}

func (m *MockDatabase) SetExecution(ctx context.Context, record *pb.ExecutionRecord) error {
	if m.SetExecutionFunc != nil {
		return m.SetExecutionFunc(ctx, record)
	}
	return nil
}
func (m *MockDatabase) UpdateExecution(ctx context.Context, id string, data map[string]interface{}) error {
	if m.UpdateExecutionFunc != nil {
		return m.UpdateExecutionFunc(ctx, id, data)
	}
	return nil
}
func (m *MockDatabase) GetUser(ctx context.Context, id string) (*pb.UserRecord, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, fmt.Errorf("user not found")
}
func (m *MockDatabase) UpdateUser(ctx context.Context, id string, data map[string]interface{}) error {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, id, data)
	}
	return nil
}

func (m *MockDatabase) CreatePendingInput(ctx context.Context, input *pb.PendingInput) error {
	if m.CreatePendingInputFunc != nil {
		return m.CreatePendingInputFunc(ctx, input)
	}
	return nil
}

func (m *MockDatabase) GetPendingInput(ctx context.Context, id string) (*pb.PendingInput, error) {
	if m.GetPendingInputFunc != nil {
		return m.GetPendingInputFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockDatabase) UpdatePendingInput(ctx context.Context, id string, data map[string]interface{}) error {
	if m.UpdatePendingInputFunc != nil {
		return m.UpdatePendingInputFunc(ctx, id, data)
	}
	return nil
}

func (m *MockDatabase) ListPendingInputs(ctx context.Context, userID string) ([]*pb.PendingInput, error) {
	if m.ListPendingInputsFunc != nil {
		return m.ListPendingInputsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockDatabase) GetCounter(ctx context.Context, userId string, id string) (*pb.Counter, error) {
	if m.GetCounterFunc != nil {
		return m.GetCounterFunc(ctx, userId, id)
	}
	return nil, nil
}

func (m *MockDatabase) SetCounter(ctx context.Context, userId string, counter *pb.Counter) error {
	if m.SetCounterFunc != nil {
		return m.SetCounterFunc(ctx, userId, counter)
	}
	return nil
}

func (m *MockDatabase) SetSynchronizedActivity(ctx context.Context, userId string, activity *pb.SynchronizedActivity) error {
	if m.SetSynchronizedActivityFunc != nil {
		return m.SetSynchronizedActivityFunc(ctx, userId, activity)
	}
	return nil
}

// --- Sync Count (for tier limits) ---

func (m *MockDatabase) IncrementSyncCount(ctx context.Context, userID string) error {
	if m.IncrementSyncCountFunc != nil {
		return m.IncrementSyncCountFunc(ctx, userID)
	}
	return nil
}

func (m *MockDatabase) ResetSyncCount(ctx context.Context, userID string) error {
	if m.ResetSyncCountFunc != nil {
		return m.ResetSyncCountFunc(ctx, userID)
	}
	return nil
}

// --- Pipeline runs ---

func (m *MockDatabase) GetPipelineRun(ctx context.Context, pipelineExecutionID string) (*pb.PipelineRun, error) {
	if m.GetPipelineRunFunc != nil {
		return m.GetPipelineRunFunc(ctx, pipelineExecutionID)
	}
	return nil, fmt.Errorf("pipeline run not found")
}

func (m *MockDatabase) SetPipelineRun(ctx context.Context, run *pb.PipelineRun) error {
	if m.SetPipelineRunFunc != nil {
		return m.SetPipelineRunFunc(ctx, run)
	}
	return nil
}

func (m *MockDatabase) UpdatePipelineRun(ctx context.Context, pipelineExecutionID string, data map[string]interface{}) error {
	if m.UpdatePipelineRunFunc != nil {
		return m.UpdatePipelineRunFunc(ctx, pipelineExecutionID, data)
	}
	return nil
}

// --- Loop-prevention ledger ---

func (m *MockDatabase) GetUploadedActivity(ctx context.Context, userID, ledgerKey string) (*pb.UploadedActivityRecord, error) {
	if m.GetUploadedActivityFunc != nil {
		return m.GetUploadedActivityFunc(ctx, userID, ledgerKey)
	}
	return nil, nil
}

func (m *MockDatabase) SetUploadedActivity(ctx context.Context, userID string, record *pb.UploadedActivityRecord) error {
	if m.SetUploadedActivityFunc != nil {
		return m.SetUploadedActivityFunc(ctx, userID, record)
	}
	return nil
}

// --- Auto-resume ---

func (m *MockDatabase) ListPendingInputsPastDeadline(ctx context.Context, now time.Time) ([]*pb.PendingInput, error) {
	if m.ListPendingInputsPastDeadlineFunc != nil {
		return m.ListPendingInputsPastDeadlineFunc(ctx, now)
	}
	return nil, nil
}

// --- Mock Notification Service ---
type MockNotificationService struct {
	SendPushNotificationFunc func(ctx context.Context, userID string, title, body string, tokens []string, data map[string]string) error
}

func (m *MockNotificationService) SendPushNotification(ctx context.Context, userID string, title, body string, tokens []string, data map[string]string) error {
	if m.SendPushNotificationFunc != nil {
		return m.SendPushNotificationFunc(ctx, userID, title, body, tokens, data)
	}
	return nil
}

// --- Mock Publisher ---
type MockPublisher struct {
	PublishCloudEventFunc func(ctx context.Context, topic string, e event.Event) (string, error)
}

func (m *MockPublisher) PublishCloudEvent(ctx context.Context, topic string, e event.Event) (string, error) {
	if m.PublishCloudEventFunc != nil {
		return m.PublishCloudEventFunc(ctx, topic, e)
	}
	return "msg-id", nil
}

// --- Mock Storage ---
type MockBlobStore struct {
	WriteFunc func(ctx context.Context, bucket, object string, data []byte) error
	ReadFunc  func(ctx context.Context, bucket, object string) ([]byte, error)
}

func (m *MockBlobStore) Write(ctx context.Context, bucket, object string, data []byte) error {
	if m.WriteFunc != nil {
		return m.WriteFunc(ctx, bucket, object, data)
	}
	return nil
}
func (m *MockBlobStore) Read(ctx context.Context, bucket, object string) ([]byte, error) {
	if m.ReadFunc != nil {
		return m.ReadFunc(ctx, bucket, object)
	}
	return []byte("mock-data"), nil
}

// --- Mock Secrets ---
type MockSecretStore struct {
	GetSecretFunc func(ctx context.Context, projectID, name string) (string, error)
}

func (m *MockSecretStore) GetSecret(ctx context.Context, projectID, name string) (string, error) {
	if m.GetSecretFunc != nil {
		return m.GetSecretFunc(ctx, projectID, name)
	}
	return "mock-secret-value", nil
}
