package condition_matcher

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/syncforge/core/pkg/domain/activity"
	"github.com/syncforge/core/pkg/enricher_providers"
	pb "github.com/syncforge/core/pkg/types/pb"
)

// ConditionMatcherProvider applies a title/description template only when the
// activity satisfies every condition supplied in inputs (AND semantics). A
// condition that fails does not halt the pipeline: it returns a result
// carrying condition_matcher_applied=false so downstream steps still run,
// and the reason so callers can see why no template was applied.
type ConditionMatcherProvider struct{}

func NewConditionMatcherProvider() *ConditionMatcherProvider {
	return &ConditionMatcherProvider{}
}

func (p *ConditionMatcherProvider) Name() string {
	return "condition_matcher"
}

func (p *ConditionMatcherProvider) ProviderType() pb.EnricherProviderType {
	return pb.EnricherProviderType_ENRICHER_PROVIDER_CONDITION_MATCHER
}

func notApplied(reason string) *enricher_providers.EnrichmentResult {
	return &enricher_providers.EnrichmentResult{
		Metadata: map[string]string{
			"condition_matcher_applied": "false",
			"condition_fail_reason":     reason,
		},
	}
}

func (p *ConditionMatcherProvider) Enrich(ctx context.Context, act *pb.StandardizedActivity, user *pb.UserRecord, inputs map[string]string, doNotRetry bool) (*enricher_providers.EnrichmentResult, error) {
	// A. Activity Type
	if val, ok := inputs["activity_type"]; ok && val != "" {
		expectedType := activity.ParseActivityTypeFromString(val)
		if expectedType != pb.ActivityType_ACTIVITY_TYPE_UNSPECIFIED && act.Type != expectedType {
			return notApplied(fmt.Sprintf("Activity Type mismatch: expected %s, got %s", expectedType.String(), act.Type.String())), nil
		}
	}

	// B. Days of Week. Accepts "days" / "days_of_week" (three-letter names
	// like "Sat,Sun", or numeric 0=Sunday..6=Saturday).
	startTime := act.StartTime.AsTime()
	daysInput := firstNonEmpty(inputs, "days", "days_of_week")
	if daysInput != "" {
		if !matchesDay(startTime, daysInput) {
			return notApplied(fmt.Sprintf("Day of week mismatch: %s not in %s", startTime.Weekday().String(), daysInput)), nil
		}
	}

	// C. Time window. A location fix (if present) is used to estimate local
	// time from longitude; otherwise the activity's own UTC timestamp is
	// compared directly against the configured window.
	localTime := startTime
	lat, long, hasLoc := getStartLocation(act)
	if hasLoc {
		offset := long / 15.0
		localTime = startTime.Add(time.Duration(offset * float64(time.Hour)))
	}

	startStr := firstNonEmpty(inputs, "time_start", "start_time")
	endStr := firstNonEmpty(inputs, "time_end", "end_time")
	if startStr != "" && !checkTime(localTime, startStr, true) {
		return notApplied(fmt.Sprintf("Time window mismatch: before %s", startStr)), nil
	}
	if endStr != "" && !checkTime(localTime, endStr, false) {
		return notApplied(fmt.Sprintf("Time window mismatch: after %s", endStr)), nil
	}

	// D. Location (lat/long + radius). Both lat and long are required
	// together; supplying only one is a configuration error, not a
	// non-match, so it is surfaced as an error.
	latStr := firstNonEmpty(inputs, "location_lat")
	longStr := firstNonEmpty(inputs, "location_long")
	if latStr != "" || longStr != "" {
		if latStr == "" || longStr == "" {
			return nil, fmt.Errorf("both location_lat and location_long are required for location proximity matching")
		}
		if !hasLoc {
			return notApplied("Location mismatch: activity has no GPS fix"), nil
		}
		targetLat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid location_lat: %w", err)
		}
		targetLong, err := strconv.ParseFloat(longStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid location_long: %w", err)
		}
		radius := 200.0
		if radiusStr := firstNonEmpty(inputs, "radius_m", "location_radius"); radiusStr != "" {
			if r, err := strconv.ParseFloat(radiusStr, 64); err == nil {
				radius = r
			}
		}
		if dist := distanceMeters(lat, long, targetLat, targetLong); dist > radius {
			return notApplied(fmt.Sprintf("Location mismatch: %.0fm outside %.0fm radius", dist, radius)), nil
		}
	}

	// Every condition passed: apply the configured template.
	result := &enricher_providers.EnrichmentResult{
		Metadata: map[string]string{
			"condition_matcher_applied": "true",
		},
	}
	if titleTmpl := inputs["title_template"]; titleTmpl != "" {
		result.Name = titleTmpl
	}
	if descTmpl := inputs["description_template"]; descTmpl != "" {
		result.Description = descTmpl
	}
	return result, nil
}

func firstNonEmpty(inputs map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := inputs[k]; v != "" {
			return v
		}
	}
	return ""
}

var weekdayNums = map[string]time.Weekday{
	"0": time.Sunday, "1": time.Monday, "2": time.Tuesday, "3": time.Wednesday,
	"4": time.Thursday, "5": time.Friday, "6": time.Saturday,
}

func matchesDay(t time.Time, spec string) bool {
	current := t.Weekday()
	for _, tok := range strings.Split(spec, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if wd, ok := weekdayNums[tok]; ok && wd == current {
			return true
		}
		if len(tok) >= 3 && strings.EqualFold(tok[:3], current.String()[:3]) {
			return true
		}
	}
	return false
}

func getStartLocation(activity *pb.StandardizedActivity) (float64, float64, bool) {
	for _, session := range activity.Sessions {
		for _, lap := range session.Laps {
			for _, rec := range lap.Records {
				if rec.PositionLat != 0 || rec.PositionLong != 0 {
					return rec.PositionLat, rec.PositionLong, true
				}
			}
		}
	}
	return 0, 0, false
}

func distanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371000
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	deltaPhi := (lat2 - lat1) * math.Pi / 180
	deltaLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*
			math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return R * c
}

func checkTime(t time.Time, limitStr string, isStart bool) bool {
	parts := strings.Split(limitStr, ":")
	if len(parts) < 2 {
		return false
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	limitMins := h*60 + m
	currentMins := t.Hour()*60 + t.Minute()

	if isStart {
		return currentMins >= limitMins
	}
	return currentMins <= limitMins
}
