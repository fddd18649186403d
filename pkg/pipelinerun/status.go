// Package pipelinerun finalizes the top-level status of a PipelineRun once
// every destination it fanned out to has reached a terminal sub-status.
package pipelinerun

import (
	"context"
	"log/slog"

	shared "github.com/syncforge/core/pkg"
	pb "github.com/syncforge/core/pkg/types/pb"
)

// Finalize re-reads the run and, if every destination has reached a
// terminal sub-status (SUCCESS or FAILED), writes the aggregate top-level
// status: SUCCESS if all destinations succeeded, FAILED if all failed,
// PARTIAL otherwise. A run still carrying a PENDING destination is left
// alone. Failure to finalize is logged, not propagated: the uploader that
// triggered this call has already recorded its own destination result.
func Finalize(ctx context.Context, db shared.Database, pipelineExecutionID string) {
	run, err := db.GetPipelineRun(ctx, pipelineExecutionID)
	if err != nil || run == nil {
		slog.Warn("pipelinerun: finalize lookup failed", "pipeline_execution_id", pipelineExecutionID, "error", err)
		return
	}

	if len(run.Destinations) == 0 {
		return
	}

	successCount, failCount := 0, 0
	for _, result := range run.Destinations {
		switch result.Status {
		case pb.DestinationSubStatus_DESTINATION_SUB_STATUS_SUCCESS:
			successCount++
		case pb.DestinationSubStatus_DESTINATION_SUB_STATUS_FAILED:
			failCount++
		default:
			return // still pending somewhere, nothing to finalize yet
		}
	}

	var status pb.PipelineRunStatus
	switch {
	case failCount == 0:
		status = pb.PipelineRunStatus_PIPELINE_RUN_SUCCESS
	case successCount == 0:
		status = pb.PipelineRunStatus_PIPELINE_RUN_FAILED
	default:
		status = pb.PipelineRunStatus_PIPELINE_RUN_PARTIAL
	}

	if err := db.UpdatePipelineRun(ctx, pipelineExecutionID, map[string]interface{}{
		"status": int32(status),
	}); err != nil {
		slog.Warn("pipelinerun: failed to write finalized status", "pipeline_execution_id", pipelineExecutionID, "error", err)
	}
}
