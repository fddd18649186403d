package firestore

import (
	"encoding/json"
	"time"

	pb "github.com/syncforge/core/pkg/types/pb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Helper to safely get string from map
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Helper to convert string to pointer, returns nil for empty strings
func stringPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Helper to safely get bool from map
func getBool(m map[string]interface{}, key string) bool {
	if v, ok := m[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// Helper to safely get time from map (handles time.Time from Firestore)
func getTime(m map[string]interface{}, key string) *timestamppb.Timestamp {
	if v, ok := m[key]; ok {
		if t, ok := v.(time.Time); ok {
			return timestamppb.New(t)
		}
	}
	return nil
}

// --- UserRecord Converters ---

func UserToFirestore(u *pb.UserRecord) map[string]interface{} {
	m := map[string]interface{}{
		"user_id":               u.UserId,
		"created_at":            u.CreatedAt.AsTime(),
		"tier":                  u.Tier,
		"is_admin":              u.IsAdmin,
		"sync_count_this_month": u.SyncCountThisMonth,
	}

	if u.TrialEndsAt != nil {
		m["trial_ends_at"] = u.TrialEndsAt.AsTime()
	}
	if u.SyncCountResetAt != nil {
		m["sync_count_reset_at"] = u.SyncCountResetAt.AsTime()
	}

	if u.Integrations != nil {
		integrations := make(map[string]interface{})
		if u.Integrations.Hevy != nil {
			integrations["hevy"] = map[string]interface{}{
				"enabled": u.Integrations.Hevy.Enabled,
				"api_key": u.Integrations.Hevy.ApiKey,
				"user_id": u.Integrations.Hevy.UserId,
			}
		}
		if u.Integrations.Fitbit != nil {
			integrations["fitbit"] = map[string]interface{}{
				"enabled":        u.Integrations.Fitbit.Enabled,
				"access_token":   u.Integrations.Fitbit.AccessToken,
				"refresh_token":  u.Integrations.Fitbit.RefreshToken,
				"expires_at":     u.Integrations.Fitbit.ExpiresAt.AsTime(),
				"fitbit_user_id": u.Integrations.Fitbit.FitbitUserId,
			}
		}
		if u.Integrations.Strava != nil {
			integrations["strava"] = map[string]interface{}{
				"enabled":       u.Integrations.Strava.Enabled,
				"access_token":  u.Integrations.Strava.AccessToken,
				"refresh_token": u.Integrations.Strava.RefreshToken,
				"expires_at":    u.Integrations.Strava.ExpiresAt.AsTime(),
				"athlete_id":    u.Integrations.Strava.AthleteId,
			}
		}
		m["integrations"] = integrations
	}

	if len(u.FcmTokens) > 0 {
		m["fcm_tokens"] = u.FcmTokens
	}

	if len(u.Pipelines) > 0 {
		pipelines := make([]map[string]interface{}, len(u.Pipelines))
		for i, p := range u.Pipelines {
			enrichers := make([]map[string]interface{}, len(p.Enrichers))
			for j, e := range p.Enrichers {
				enrichers[j] = map[string]interface{}{
					"provider_type": int32(e.ProviderType),
					"typed_config":  e.TypedConfig,
				}
			}
			pipelines[i] = map[string]interface{}{
				"id":           p.Id,
				"source":       p.Source,
				"disabled":     p.Disabled,
				"destinations": p.Destinations,
				"enrichers":    enrichers,
			}
		}
		m["pipelines"] = pipelines
	}

	return m
}

func FirestoreToUser(m map[string]interface{}) *pb.UserRecord {
	u := &pb.UserRecord{
		UserId:             getString(m, "user_id"),
		CreatedAt:          getTime(m, "created_at"),
		Tier:               getString(m, "tier"),
		IsAdmin:            getBool(m, "is_admin"),
		TrialEndsAt:        getTime(m, "trial_ends_at"),
		SyncCountResetAt:   getTime(m, "sync_count_reset_at"),
	}

	if v, ok := m["sync_count_this_month"]; ok {
		switch n := v.(type) {
		case int64:
			u.SyncCountThisMonth = int32(n)
		case int:
			u.SyncCountThisMonth = int32(n)
		case float64:
			u.SyncCountThisMonth = int32(n)
		}
	}

	if iMap, ok := m["integrations"].(map[string]interface{}); ok {
		u.Integrations = &pb.UserIntegrations{}
		if hMap, ok := iMap["hevy"].(map[string]interface{}); ok {
			u.Integrations.Hevy = &pb.HevyIntegration{
				Enabled: getBool(hMap, "enabled"),
				ApiKey:  getString(hMap, "api_key"),
				UserId:  getString(hMap, "user_id"),
			}
		}
		if fMap, ok := iMap["fitbit"].(map[string]interface{}); ok {
			u.Integrations.Fitbit = &pb.FitbitIntegration{
				Enabled:      getBool(fMap, "enabled"),
				AccessToken:  getString(fMap, "access_token"),
				RefreshToken: getString(fMap, "refresh_token"),
				ExpiresAt:    getTime(fMap, "expires_at"),
				FitbitUserId: getString(fMap, "fitbit_user_id"),
			}
		}
		if sMap, ok := iMap["strava"].(map[string]interface{}); ok {
			u.Integrations.Strava = &pb.StravaIntegration{
				Enabled:      getBool(sMap, "enabled"),
				AccessToken:  getString(sMap, "access_token"),
				RefreshToken: getString(sMap, "refresh_token"),
				ExpiresAt:    getTime(sMap, "expires_at"),
			}
			// Safe int64 conversion
			if v, ok := sMap["athlete_id"]; ok {
				// Firestore stores numbers as int64, float64 or int
				switch n := v.(type) {
				case int64:
					u.Integrations.Strava.AthleteId = n
				case int:
					u.Integrations.Strava.AthleteId = int64(n)
				case float64:
					u.Integrations.Strava.AthleteId = int64(n)
				}
			}
		}
	}

	if tokens, ok := m["fcm_tokens"].([]interface{}); ok {
		u.FcmTokens = make([]string, len(tokens))
		for i, v := range tokens {
			if s, ok := v.(string); ok {
				u.FcmTokens[i] = s
			}
		}
	} else if tokens, ok := m["fcm_tokens"].([]string); ok {
		u.FcmTokens = tokens
	}

	if pList, ok := m["pipelines"].([]interface{}); ok {
		u.Pipelines = make([]*pb.PipelineConfig, len(pList))
		for i, pRaw := range pList {
			if pMap, ok := pRaw.(map[string]interface{}); ok {
				// Enrichers
				var enrichers []*pb.EnricherConfig
				if eList, ok := pMap["enrichers"].([]interface{}); ok {
					enrichers = make([]*pb.EnricherConfig, len(eList))
					for j, eRaw := range eList {
						if eMap, ok := eRaw.(map[string]interface{}); ok {
							// TypedConfig
							typedConfig := make(map[string]string)
							if cMap, ok := eMap["typed_config"].(map[string]interface{}); ok {
								for k, v := range cMap {
									if s, ok := v.(string); ok {
										typedConfig[k] = s
									}
								}
							}

							ptype := pb.EnricherProviderType_ENRICHER_PROVIDER_UNSPECIFIED
							if v, ok := eMap["provider_type"]; ok {
								// int conversion
								switch n := v.(type) {
								case int64:
									ptype = pb.EnricherProviderType(n)
								case int:
									ptype = pb.EnricherProviderType(n)
								case float64:
									ptype = pb.EnricherProviderType(int32(n))
								}
							}

							enrichers[j] = &pb.EnricherConfig{
								ProviderType: ptype,
								TypedConfig:  typedConfig,
							}
						}
					}
				}

				// Destinations are stored as lowercase vendor names ("strava",
				// "fitbit", "mock"); tolerate the legacy upper-snake enum
				// strings too.
				var dests []string
				if dList, ok := pMap["destinations"].([]interface{}); ok {
					for _, d := range dList {
						s, ok := d.(string)
						if !ok {
							continue
						}
						switch s {
						case "DESTINATION_STRAVA":
							s = "strava"
						case "DESTINATION_FITBIT":
							s = "fitbit"
						case "DESTINATION_MOCK":
							s = "mock"
						}
						dests = append(dests, s)
					}
				}

				u.Pipelines[i] = &pb.PipelineConfig{
					Id:           getString(pMap, "id"),
					Source:       getString(pMap, "source"),
					Disabled:     getBool(pMap, "disabled"),
					Enrichers:    enrichers,
					Destinations: dests,
				}
			}
		}
	}

	return u
}

// --- Execution Record ---

func ExecutionToFirestore(e *pb.ExecutionRecord) map[string]interface{} {
	m := map[string]interface{}{
		"execution_id":          e.ExecutionId,
		"service":               e.Service,
		"status":                int32(e.Status), // Store enum as int or string? Protocol is int usually, logger used String()
		"timestamp":             e.Timestamp.AsTime(),
		"user_id":               e.UserId,
		"test_run_id":           e.TestRunId,
		"trigger_type":          e.TriggerType,
		"start_time":            e.StartTime.AsTime(),
		"end_time":              e.EndTime.AsTime(),
		"error_message":         e.ErrorMessage,
		"inputs_json":           e.InputsJson,
		"outputs_json":          e.OutputsJson,
		"pipeline_execution_id": e.PipelineExecutionId,
		"parent_execution_id":   e.ParentExecutionId,
	}
	return m
}

func FirestoreToExecution(m map[string]interface{}) *pb.ExecutionRecord {
	e := &pb.ExecutionRecord{
		ExecutionId:         getString(m, "execution_id"),
		Service:             getString(m, "service"),
		Timestamp:           getTime(m, "timestamp"),
		TriggerType:         getString(m, "trigger_type"), // Required field, not a pointer
		UserId:              stringPtrOrNil(getString(m, "user_id")),
		TestRunId:           stringPtrOrNil(getString(m, "test_run_id")),
		StartTime:           getTime(m, "start_time"),
		EndTime:             getTime(m, "end_time"),
		ErrorMessage:        stringPtrOrNil(getString(m, "error_message")),
		InputsJson:          stringPtrOrNil(getString(m, "inputs_json")),
		OutputsJson:         stringPtrOrNil(getString(m, "outputs_json")),
		PipelineExecutionId: stringPtrOrNil(getString(m, "pipeline_execution_id")),
	}

	if v, ok := m["status"]; ok {
		// Handle int or string legacy
		switch val := v.(type) {
		case int64:
			e.Status = pb.ExecutionStatus(val)
		case int:
			e.Status = pb.ExecutionStatus(int32(val))
		case string:
			// Use proto-generated map for all status values
			if enumVal, ok := pb.ExecutionStatus_value[val]; ok {
				e.Status = pb.ExecutionStatus(enumVal)
			} else {
				e.Status = pb.ExecutionStatus_STATUS_UNKNOWN
			}
		}
	}

	return e
}

// --- Counter Converters ---

func CounterToFirestore(c *pb.Counter) map[string]interface{} {
	return map[string]interface{}{
		"id":           c.Id,
		"count":        c.Count,
		"last_updated": c.LastUpdated.AsTime(),
	}
}

func FirestoreToCounter(m map[string]interface{}) *pb.Counter {
	c := &pb.Counter{
		Id:          getString(m, "id"),
		LastUpdated: getTime(m, "last_updated"),
	}
	// Handle number types
	if v, ok := m["count"]; ok {
		switch n := v.(type) {
		case int64:
			c.Count = n
		case int:
			c.Count = int64(n)
		case float64:
			c.Count = int64(n)
		}
	}
	return c
}

// --- PendingInput Converters ---

func PendingInputToFirestore(p *pb.PendingInput) map[string]interface{} {
	m := map[string]interface{}{
		"activity_id":            p.ActivityId,
		"user_id":                p.UserId,
		"status":                 int32(p.Status),
		"required_fields":        p.RequiredFields,
		"input_data":             p.InputData,
		"created_at":             p.CreatedAt.AsTime(),
		"updated_at":             p.UpdatedAt.AsTime(),
		"completed_at":           p.CompletedAt.AsTime(),
		"pipeline_id":            p.PipelineId,
		"pipeline_execution_id":  p.PipelineExecutionId,
		"enricher_provider_id":   p.EnricherProviderId,
	}

	if p.AutoDeadline != nil {
		m["auto_deadline"] = p.AutoDeadline.AsTime()
	}

	// Serialize original_payload to a JSON string so the resumer can republish it verbatim.
	if p.OriginalPayload != nil {
		jsonBytes, err := json.Marshal(p.OriginalPayload)
		if err == nil {
			m["original_payload"] = string(jsonBytes)
		}
	}
	return m
}

func FirestoreToPendingInput(m map[string]interface{}) *pb.PendingInput {
	p := &pb.PendingInput{
		ActivityId:          getString(m, "activity_id"),
		UserId:              getString(m, "user_id"),
		PipelineId:          getString(m, "pipeline_id"),
		PipelineExecutionId: getString(m, "pipeline_execution_id"),
		EnricherProviderId:  getString(m, "enricher_provider_id"),
		AutoDeadline:        getTime(m, "auto_deadline"),
		RequiredFields: func() []string {
			if v, ok := m["required_fields"].([]string); ok {
				return v
			}
			// Handle []interface{} from Firestore
			if v, ok := m["required_fields"].([]interface{}); ok {
				strs := make([]string, len(v))
				for i, s := range v {
					if str, ok := s.(string); ok {
						strs[i] = str
					}
				}
				return strs
			}
			return nil
		}(),
		InputData: func() map[string]string {
			if v, ok := m["input_data"].(map[string]interface{}); ok {
				out := make(map[string]string)
				for k, val := range v {
					if str, ok := val.(string); ok {
						out[k] = str
					}
				}
				return out
			}
			return nil
		}(),
		CreatedAt:   getTime(m, "created_at"),
		UpdatedAt:   getTime(m, "updated_at"),
		CompletedAt: getTime(m, "completed_at"),
	}

	if v, ok := m["status"]; ok {
		switch n := v.(type) {
		case int64:
			p.Status = pb.PendingInput_Status(n)
		case int:
			p.Status = pb.PendingInput_Status(int32(n))
		}
	}

	if v, ok := m["original_payload"]; ok {
		var jsonStr string
		switch val := v.(type) {
		case string:
			jsonStr = val
		case []byte:
			jsonStr = string(val)
		}
		if jsonStr != "" {
			var payload pb.ActivityPayload
			if err := json.Unmarshal([]byte(jsonStr), &payload); err == nil {
				p.OriginalPayload = &payload
			}
		}
	}
	return p
}

// --- SynchronizedActivity Converters ---

func SynchronizedActivityToFirestore(s *pb.SynchronizedActivity) map[string]interface{} {
	m := map[string]interface{}{
		"activity_id":           s.ActivityId,
		"title":                 s.Title,
		"description":           s.Description,
		"type":                  int32(s.Type),
		"source":                s.Source,
		"start_time":            s.StartTime.AsTime(),
		"synced_at":             s.SyncedAt.AsTime(),
		"pipeline_id":           s.PipelineId,
		"pipeline_execution_id": s.PipelineExecutionId,
	}

	if s.Destinations != nil {
		m["destinations"] = s.Destinations
	}

	return m
}

func FirestoreToSynchronizedActivity(m map[string]interface{}) *pb.SynchronizedActivity {
	s := &pb.SynchronizedActivity{
		ActivityId:          getString(m, "activity_id"),
		Title:               getString(m, "title"),
		Description:         getString(m, "description"),
		Source:              getString(m, "source"),
		StartTime:           getTime(m, "start_time"),
		SyncedAt:            getTime(m, "synced_at"),
		PipelineId:          getString(m, "pipeline_id"),
		PipelineExecutionId: getString(m, "pipeline_execution_id"),
	}

	if v, ok := m["type"]; ok {
		// Handle int or string legacy
		switch val := v.(type) {
		case int64:
			s.Type = pb.ActivityType(val)
		case int:
			s.Type = pb.ActivityType(int32(val))
		case string:
			if enumVal, ok := pb.ActivityType_value[val]; ok {
				s.Type = pb.ActivityType(enumVal)
			}
		}
	}

	if v, ok := m["destinations"].(map[string]interface{}); ok {
		dests := make(map[string]string)
		for k, val := range v {
			if str, ok := val.(string); ok {
				dests[k] = str
			}
		}
		s.Destinations = dests
	}

	return s
}

// --- PipelineRun Converters ---

func PipelineRunToFirestore(r *pb.PipelineRun) map[string]interface{} {
	m := map[string]interface{}{
		"pipeline_execution_id":  r.PipelineExecutionId,
		"pipeline_id":            r.PipelineId,
		"user_id":                r.UserId,
		"activity_id":            r.ActivityId,
		"status":                 int32(r.Status),
		"resume_pending_input_id": r.ResumePendingInputId,
		"reason":                 r.Reason,
		"lag_attempts":           r.LagAttempts,
		"created_at":             r.CreatedAt.AsTime(),
		"updated_at":             r.UpdatedAt.AsTime(),
	}

	if len(r.Destinations) > 0 {
		dests := make(map[string]interface{}, len(r.Destinations))
		for name, d := range r.Destinations {
			dests[name] = map[string]interface{}{
				"status":      int32(d.Status),
				"external_id": d.ExternalId,
				"error":       d.Error,
				"updated_at":  d.UpdatedAt.AsTime(),
				"used_update": d.UsedUpdate,
			}
		}
		m["destinations"] = dests
	}

	return m
}

func FirestoreToPipelineRun(m map[string]interface{}) *pb.PipelineRun {
	r := &pb.PipelineRun{
		PipelineExecutionId:  getString(m, "pipeline_execution_id"),
		PipelineId:           getString(m, "pipeline_id"),
		UserId:               getString(m, "user_id"),
		ActivityId:           getString(m, "activity_id"),
		ResumePendingInputId: getString(m, "resume_pending_input_id"),
		Reason:               getString(m, "reason"),
		CreatedAt:            getTime(m, "created_at"),
		UpdatedAt:            getTime(m, "updated_at"),
	}

	if v, ok := m["status"]; ok {
		switch n := v.(type) {
		case int64:
			r.Status = pb.PipelineRunStatus(n)
		case int:
			r.Status = pb.PipelineRunStatus(n)
		case float64:
			r.Status = pb.PipelineRunStatus(int32(n))
		}
	}

	if v, ok := m["lag_attempts"]; ok {
		switch n := v.(type) {
		case int64:
			r.LagAttempts = int32(n)
		case int:
			r.LagAttempts = int32(n)
		case float64:
			r.LagAttempts = int32(n)
		}
	}

	if dMap, ok := m["destinations"].(map[string]interface{}); ok {
		r.Destinations = make(map[string]*pb.DestinationResult, len(dMap))
		for name, raw := range dMap {
			dm, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			dr := &pb.DestinationResult{
				ExternalId: getString(dm, "external_id"),
				Error:      getString(dm, "error"),
				UpdatedAt:  getTime(dm, "updated_at"),
				UsedUpdate: getBool(dm, "used_update"),
			}
			if v, ok := dm["status"]; ok {
				switch n := v.(type) {
				case int64:
					dr.Status = pb.DestinationSubStatus(n)
				case int:
					dr.Status = pb.DestinationSubStatus(n)
				case float64:
					dr.Status = pb.DestinationSubStatus(int32(n))
				}
			}
			r.Destinations[name] = dr
		}
	}

	return r
}

// --- UploadedActivityRecord Converters (loop-prevention ledger) ---

func UploadedActivityRecordToFirestore(rec *pb.UploadedActivityRecord) map[string]interface{} {
	return map[string]interface{}{
		"id":             rec.Id,
		"destination":    rec.Destination,
		"destination_id": rec.DestinationId,
		"source":         int32(rec.Source),
		"external_id":    rec.ExternalId,
		"start_time":     rec.StartTime.AsTime(),
		"uploaded_at":    rec.UploadedAt.AsTime(),
	}
}

func FirestoreToUploadedActivityRecord(m map[string]interface{}) *pb.UploadedActivityRecord {
	rec := &pb.UploadedActivityRecord{
		Id:            getString(m, "id"),
		Destination:   getString(m, "destination"),
		DestinationId: getString(m, "destination_id"),
		ExternalId:    getString(m, "external_id"),
		StartTime:     getTime(m, "start_time"),
		UploadedAt:    getTime(m, "uploaded_at"),
	}

	if v, ok := m["source"]; ok {
		switch n := v.(type) {
		case int64:
			rec.Source = pb.ActivitySource(n)
		case int:
			rec.Source = pb.ActivitySource(n)
		case float64:
			rec.Source = pb.ActivitySource(int32(n))
		}
	}

	return rec
}
