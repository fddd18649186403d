package stravauploader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/cloudevents/sdk-go/v2/event"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/syncforge/core/pkg/bootstrap"
	"github.com/syncforge/core/pkg/framework"
	"github.com/syncforge/core/pkg/infrastructure/oauth"
	"github.com/syncforge/core/pkg/ledger"
	"github.com/syncforge/core/pkg/pipelinerun"
	pb "github.com/syncforge/core/pkg/types/pb"
)

const destination = "strava"

var (
	svc     *bootstrap.Service
	svcOnce sync.Once
	svcErr  error
)

func init() {
	functions.CloudEvent("UploadToStrava", UploadToStrava)
}

func initService(ctx context.Context) (*bootstrap.Service, error) {
	if svc != nil {
		return svc, nil
	}
	svcOnce.Do(func() {
		baseSvc, err := bootstrap.NewService(ctx)
		if err != nil {
			slog.Error("Failed to initialize service", "error", err)
			svcErr = err
			return
		}
		svc = baseSvc
	})
	return svc, svcErr
}

// UploadToStrava is the entry point
func UploadToStrava(ctx context.Context, e event.Event) error {
	svc, err := initService(ctx)
	if err != nil {
		return fmt.Errorf("service init failed: %v", err)
	}
	return framework.WrapCloudEvent("strava-uploader", svc, uploadHandler(nil))(ctx, e)
}

// uploadHandler contains the business logic
// httpClient can be injected for testing; if nil, creates OAuth client
func uploadHandler(httpClient *http.Client) framework.HandlerFunc {
	return func(ctx context.Context, e event.Event, fwCtx *framework.FrameworkContext) (interface{}, error) {
		var eventPayload pb.EnrichedActivityEvent
		if err := json.Unmarshal(e.Data(), &eventPayload); err != nil {
			return nil, fmt.Errorf("json.Unmarshal: %w", err)
		}

		fwCtx.Logger.Info("Starting upload", "activity_id", eventPayload.ActivityId, "pipeline_id", eventPayload.PipelineId)

		markFailed := func(reason string) (map[string]interface{}, error) {
			recordDestinationResult(ctx, fwCtx, eventPayload.PipelineExecutionId, &pb.DestinationResult{
				Destination: destination,
				Status:      pb.DestinationSubStatus_DESTINATION_SUB_STATUS_FAILED,
				Error:       reason,
				UpdatedAt:   timestamppb.Now(),
			})
			pipelinerun.Finalize(ctx, fwCtx.Service.DB, eventPayload.PipelineExecutionId)
			return map[string]interface{}{"status": "FAILED", "error": reason}, fmt.Errorf("strava upload: %s", reason)
		}

		user, err := fwCtx.Service.DB.GetUser(ctx, eventPayload.UserId)
		if err != nil {
			return markFailed(fmt.Sprintf("user lookup failed: %v", err))
		}
		if user.Integrations == nil || user.Integrations.Strava == nil || !user.Integrations.Strava.Enabled {
			return markFailed("strava integration not linked or disabled")
		}

		// Create-vs-update: only treated as an update if a prior run already
		// delivered this activity_id to Strava and recorded its external id.
		useUpdate := false
		existingExternalID := ""
		if eventPayload.UseUpdateMethod {
			if run, err := fwCtx.Service.DB.GetPipelineRun(ctx, eventPayload.PipelineExecutionId); err == nil && run != nil {
				if prior, ok := run.Destinations[destination]; ok && prior.Status == pb.DestinationSubStatus_DESTINATION_SUB_STATUS_SUCCESS && prior.ExternalId != "" {
					useUpdate = true
					existingExternalID = prior.ExternalId
				}
			}
		}

		if httpClient == nil {
			tokenSource := oauth.NewFirestoreTokenSource(fwCtx.Service, eventPayload.UserId, destination)
			httpClient = oauth.NewClient(tokenSource)
		}

		var uploadResp stravaUploadResponse
		var uploadErr error
		if useUpdate {
			uploadResp, uploadErr = updateActivity(ctx, httpClient, existingExternalID, &eventPayload, fwCtx.Logger)
		} else {
			uploadResp, uploadErr = createActivity(ctx, httpClient, fwCtx.Service, &eventPayload, fwCtx.Logger)
		}
		if uploadErr != nil {
			return markFailed(uploadErr.Error())
		}

		externalID := fmt.Sprintf("%d", uploadResp.ActivityID)
		if useUpdate {
			externalID = existingExternalID
		}

		// The loop-prevention ledger row must exist before the PipelineRun
		// sub-status is observable as SUCCESS.
		l := ledger.New(fwCtx.Service.DB)
		if err := l.Record(ctx, eventPayload.UserId, destination, externalID, eventPayload.Source, eventPayload.ActivityId, eventPayload.StartTime); err != nil {
			fwCtx.Logger.Warn("Failed to write ledger row", "error", err)
		}

		recordDestinationResult(ctx, fwCtx, eventPayload.PipelineExecutionId, &pb.DestinationResult{
			Destination: destination,
			Status:      pb.DestinationSubStatus_DESTINATION_SUB_STATUS_SUCCESS,
			ExternalId:  externalID,
			UpdatedAt:   timestamppb.Now(),
			UsedUpdate:  useUpdate,
		})
		pipelinerun.Finalize(ctx, fwCtx.Service.DB, eventPayload.PipelineExecutionId)

		if !useUpdate {
			if err := fwCtx.Service.DB.IncrementSyncCount(ctx, eventPayload.UserId); err != nil {
				fwCtx.Logger.Warn("Failed to increment sync count", "error", err)
			}
		}

		fwCtx.Logger.Info("Upload complete", "strava_activity_id", uploadResp.ActivityID, "used_update", useUpdate)

		return map[string]interface{}{
			"status":             "SUCCESS",
			"strava_activity_id": uploadResp.ActivityID,
			"activity_id":        eventPayload.ActivityId,
			"pipeline_id":        eventPayload.PipelineId,
			"used_update":        useUpdate,
		}, nil
	}
}

// recordDestinationResult writes this destination's sub-status onto the
// PipelineRun document. Failure to record is logged, not propagated: the
// upload itself already succeeded or failed on its own terms.
func recordDestinationResult(ctx context.Context, fwCtx *framework.FrameworkContext, pipelineExecutionID string, result *pb.DestinationResult) {
	updates := map[string]interface{}{
		fmt.Sprintf("destinations.%s.destination", result.Destination):  result.Destination,
		fmt.Sprintf("destinations.%s.status", result.Destination):       int32(result.Status),
		fmt.Sprintf("destinations.%s.updated_at", result.Destination):   result.UpdatedAt.AsTime(),
		fmt.Sprintf("destinations.%s.used_update", result.Destination):  result.UsedUpdate,
	}
	if result.ExternalId != "" {
		updates[fmt.Sprintf("destinations.%s.external_id", result.Destination)] = result.ExternalId
	}
	if result.Error != "" {
		updates[fmt.Sprintf("destinations.%s.error", result.Destination)] = result.Error
	}
	if err := fwCtx.Service.DB.UpdatePipelineRun(ctx, pipelineExecutionID, updates); err != nil {
		fwCtx.Logger.Error("Failed to record destination result", "destination", result.Destination, "error", err)
	}
}

func createActivity(ctx context.Context, httpClient *http.Client, svc *bootstrap.Service, payload *pb.EnrichedActivityEvent, logger *slog.Logger) (stravaUploadResponse, error) {
	bucketName := svc.Config.GCSArtifactBucket
	if bucketName == "" {
		bucketName = "syncforge-artifacts"
	}
	objectName := strings.TrimPrefix(payload.FitFileUri, "gs://"+bucketName+"/")

	fileData, err := svc.Store.Read(ctx, bucketName, objectName)
	if err != nil {
		return stravaUploadResponse{}, fmt.Errorf("GCS read: %w", err)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, _ := writer.CreateFormFile("file", "activity.fit")
	part.Write(fileData)
	writer.WriteField("data_type", "fit")
	if payload.Name != "" {
		writer.WriteField("name", payload.Name)
	}
	if payload.Description != "" {
		writer.WriteField("description", payload.Description)
	}
	if payload.ActivityType != pb.ActivityType_ACTIVITY_TYPE_UNSPECIFIED {
		writer.WriteField("sport_type", payload.ActivityType.String())
	}
	writer.Close()

	logger.Info("Uploading to Strava",
		"title", payload.Name,
		"type", payload.ActivityType.String(),
		"description_preview", truncateString(payload.Description, 200),
	)

	req, err := http.NewRequestWithContext(ctx, "POST", "https://www.strava.com/api/v3/uploads", body)
	if err != nil {
		return stravaUploadResponse{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	httpResp, err := httpClient.Do(req)
	if err != nil {
		return stravaUploadResponse{}, fmt.Errorf("strava api error: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode >= 400 {
		bodyBytes, _ := io.ReadAll(httpResp.Body)
		return stravaUploadResponse{}, fmt.Errorf("strava upload failed: status %d: %s", httpResp.StatusCode, truncateString(string(bodyBytes), 500))
	}

	var uploadResp stravaUploadResponse
	json.NewDecoder(httpResp.Body).Decode(&uploadResp)

	if uploadResp.ActivityID == 0 {
		final, err := waitForUploadCompletion(ctx, httpClient, uploadResp.ID, logger)
		if err != nil {
			logger.Warn("Soft polling finished without final id (async processing continues)", "error", err)
		} else {
			uploadResp = *final
		}
	}

	if uploadResp.Error != "" {
		return uploadResp, fmt.Errorf("strava processing error: %s", uploadResp.Error)
	}
	return uploadResp, nil
}

// updateActivity patches name/description/type on an activity that a prior
// run already created, matching the replace-by-header composition already
// applied upstream: this call is a whole-field overwrite, not a merge,
// since the enricher engine already produced the final merged text.
func updateActivity(ctx context.Context, httpClient *http.Client, externalID string, payload *pb.EnrichedActivityEvent, logger *slog.Logger) (stravaUploadResponse, error) {
	update := map[string]interface{}{}
	if payload.Name != "" {
		update["name"] = payload.Name
	}
	if payload.Description != "" {
		update["description"] = payload.Description
	}
	if payload.ActivityType != pb.ActivityType_ACTIVITY_TYPE_UNSPECIFIED {
		update["sport_type"] = payload.ActivityType.String()
	}

	b, err := json.Marshal(update)
	if err != nil {
		return stravaUploadResponse{}, fmt.Errorf("marshal update: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "PUT", fmt.Sprintf("https://www.strava.com/api/v3/activities/%s", externalID), bytes.NewReader(b))
	if err != nil {
		return stravaUploadResponse{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return stravaUploadResponse{}, fmt.Errorf("strava api error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return stravaUploadResponse{}, fmt.Errorf("strava update failed: status %d: %s", resp.StatusCode, truncateString(string(bodyBytes), 500))
	}

	logger.Info("Updated existing strava activity", "activity_id", externalID)
	return stravaUploadResponse{}, nil
}

type stravaUploadResponse struct {
	ID         int64  `json:"id"`
	ExternalID string `json:"external_id"`
	ActivityID int64  `json:"activity_id"`
	Status     string `json:"status"`
	Error      string `json:"error"`
}

func waitForUploadCompletion(ctx context.Context, client *http.Client, uploadID int64, logger *slog.Logger) (*stravaUploadResponse, error) {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	timeout := time.After(15 * time.Second)

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timeout:
			return nil, fmt.Errorf("timeout waiting for upload processing")
		case <-ticker.C:
			req, err := http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("https://www.strava.com/api/v3/uploads/%d", uploadID), nil)
			if err != nil {
				return nil, err
			}

			resp, err := client.Do(req)
			if err != nil {
				logger.Warn("Failed to poll upload status", "error", err)
				continue
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				logger.Warn("Poll returned non-200 status", "status", resp.StatusCode)
				continue
			}

			var status stravaUploadResponse
			if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
				return nil, fmt.Errorf("failed to decode poll response: %w", err)
			}

			if status.ActivityID != 0 || status.Error != "" {
				return &status, nil
			}
		}
	}
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
