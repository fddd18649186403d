// Package execution writes the append-only per-stage audit trail (§3
// ExecutionRecord, §4.7 Framework Wrapper). Every stage invocation gets a
// PENDING row the instant it's picked up, which is then updated in place as
// the handler starts and finishes; a resumed stage instead gets a brand new
// row linked to its predecessor via ParentExecutionId, so the trail is never
// rewritten, only extended.
package execution

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	pb "github.com/syncforge/core/pkg/types/pb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Database is the minimal slice of shared.Database this package needs.
// shared.Database satisfies it structurally; no import cycle required.
type Database interface {
	SetExecution(ctx context.Context, record *pb.ExecutionRecord) error
	UpdateExecution(ctx context.Context, id string, data map[string]interface{}) error
}

// ExecutionOptions carries the metadata the wrapper extracts from the
// incoming message before the handler runs.
type ExecutionOptions struct {
	UserID              string
	TestRunID           string
	TriggerType         string
	PipelineExecutionID string
}

func newExecutionID(service string) string {
	return fmt.Sprintf("%s-%d", service, time.Now().UnixNano())
}

// LogPending creates the execution record the moment a stage is invoked,
// before any handler logic has run. This is deliberately the very first
// write of a stage invocation: if the process dies before the handler even
// starts, the record still exists as evidence of the attempt.
func LogPending(ctx context.Context, db Database, service string, opts ExecutionOptions) (string, error) {
	execID := newExecutionID(service)
	now := timestamppb.Now()

	record := &pb.ExecutionRecord{
		ExecutionId: execID,
		Service:     service,
		Status:      pb.ExecutionStatus_STATUS_PENDING,
		Timestamp:   now,
		TriggerType: opts.TriggerType,
	}
	if opts.UserID != "" {
		record.UserId = &opts.UserID
	}
	if opts.TestRunID != "" {
		record.TestRunId = &opts.TestRunID
	}
	if opts.PipelineExecutionID != "" {
		record.PipelineExecutionId = &opts.PipelineExecutionID
	}

	if err := db.SetExecution(ctx, record); err != nil {
		return execID, fmt.Errorf("log pending: %w", err)
	}
	return execID, nil
}

// LogChildExecutionStart creates a fresh STARTED record linked to
// parentExecutionID, for a stage re-entered via resume (lag retry,
// pause/resume). The prior record is left untouched.
func LogChildExecutionStart(ctx context.Context, db Database, service string, parentExecutionID string, opts ExecutionOptions) (string, error) {
	execID := newExecutionID(service)
	now := timestamppb.Now()

	record := &pb.ExecutionRecord{
		ExecutionId:       execID,
		Service:           service,
		Status:            pb.ExecutionStatus_STATUS_STARTED,
		Timestamp:         now,
		StartTime:         now,
		TriggerType:       opts.TriggerType,
		ParentExecutionId: &parentExecutionID,
	}
	if opts.UserID != "" {
		record.UserId = &opts.UserID
	}
	if opts.TestRunID != "" {
		record.TestRunId = &opts.TestRunID
	}
	if opts.PipelineExecutionID != "" {
		record.PipelineExecutionId = &opts.PipelineExecutionID
	}

	if err := db.SetExecution(ctx, record); err != nil {
		return execID, fmt.Errorf("log child execution start: %w", err)
	}
	return execID, nil
}

// LogStart transitions the PENDING record created by LogPending to STARTED,
// filling in the metadata (user, test run, pipeline execution id) the
// wrapper could only extract after parsing the event body, plus the
// handler's inputs for the audit trail.
func LogStart(ctx context.Context, db Database, execID string, inputs interface{}, opts *ExecutionOptions) error {
	now := timestamppb.Now()
	updates := map[string]interface{}{
		"status":     int32(pb.ExecutionStatus_STATUS_STARTED),
		"timestamp":  now.AsTime(),
		"start_time": now.AsTime(),
	}

	if opts != nil {
		if opts.UserID != "" {
			updates["user_id"] = opts.UserID
		}
		if opts.TestRunID != "" {
			updates["test_run_id"] = opts.TestRunID
		}
		if opts.TriggerType != "" {
			updates["trigger_type"] = opts.TriggerType
		}
		if opts.PipelineExecutionID != "" {
			updates["pipeline_execution_id"] = opts.PipelineExecutionID
		}
	}

	if inputs != nil {
		if b, err := json.Marshal(inputs); err == nil {
			updates["inputs_json"] = string(b)
		}
	}

	if err := db.UpdateExecution(ctx, execID, updates); err != nil {
		return fmt.Errorf("log start: %w", err)
	}
	return nil
}

// LogSuccess marks the record SUCCESS and attaches the handler's outputs.
func LogSuccess(ctx context.Context, db Database, execID string, outputs interface{}) error {
	return LogExecutionStatus(ctx, db, execID, pb.ExecutionStatus_STATUS_SUCCESS, outputs)
}

// LogFailure marks the record FAILED with the error message recorded into
// the audit trail, plus whatever partial outputs the handler produced.
func LogFailure(ctx context.Context, db Database, execID string, err error, outputs interface{}) error {
	now := timestamppb.Now()
	updates := map[string]interface{}{
		"status":        int32(pb.ExecutionStatus_STATUS_FAILED),
		"timestamp":     now.AsTime(),
		"end_time":      now.AsTime(),
		"error_message": err.Error(),
	}
	if outputs != nil {
		if b, marshalErr := json.Marshal(outputs); marshalErr == nil {
			updates["outputs_json"] = string(b)
		}
	}

	if updateErr := db.UpdateExecution(ctx, execID, updates); updateErr != nil {
		return fmt.Errorf("log failure: %w", updateErr)
	}
	return nil
}

// LogExecutionStatus marks the record with an arbitrary terminal status
// (SUCCESS, SKIPPED, LAG_RETRY, WAITING) and attaches outputs. Used by the
// framework wrapper when a handler's returned status overrides the default
// SUCCESS/FAILED classification (e.g. a halted enricher reporting SKIPPED).
func LogExecutionStatus(ctx context.Context, db Database, execID string, status pb.ExecutionStatus, outputs interface{}) error {
	now := timestamppb.Now()
	updates := map[string]interface{}{
		"status":    int32(status),
		"timestamp": now.AsTime(),
		"end_time":  now.AsTime(),
	}
	if outputs != nil {
		if b, err := json.Marshal(outputs); err == nil {
			updates["outputs_json"] = string(b)
		}
	}

	if err := db.UpdateExecution(ctx, execID, updates); err != nil {
		return fmt.Errorf("log execution status: %w", err)
	}
	return nil
}
