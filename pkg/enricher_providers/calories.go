package enricher_providers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/syncforge/core/pkg/plugin"
	pb "github.com/syncforge/core/pkg/types/pb"
)

// activityMETs holds the Metabolic Equivalent of Task for each activity
// type: higher MET means a more intense activity and more calories burned
// per hour for a given body weight.
var activityMETs = map[pb.ActivityType]float64{
	pb.ActivityType_ACTIVITY_TYPE_RUN:                              9.8,
	pb.ActivityType_ACTIVITY_TYPE_TRAIL_RUN:                        10.5,
	pb.ActivityType_ACTIVITY_TYPE_VIRTUAL_RUN:                      8.0,
	pb.ActivityType_ACTIVITY_TYPE_WALK:                             3.5,
	pb.ActivityType_ACTIVITY_TYPE_HIKE:                             6.0,
	pb.ActivityType_ACTIVITY_TYPE_RIDE:                             7.5,
	pb.ActivityType_ACTIVITY_TYPE_MOUNTAIN_BIKE_RIDE:               8.5,
	pb.ActivityType_ACTIVITY_TYPE_GRAVEL_RIDE:                      8.0,
	pb.ActivityType_ACTIVITY_TYPE_VIRTUAL_RIDE:                     6.8,
	pb.ActivityType_ACTIVITY_TYPE_EBIKE_RIDE:                       4.5,
	pb.ActivityType_ACTIVITY_TYPE_SWIM:                             8.0,
	pb.ActivityType_ACTIVITY_TYPE_WEIGHT_TRAINING:                  5.0,
	pb.ActivityType_ACTIVITY_TYPE_CROSSFIT:                         10.0,
	pb.ActivityType_ACTIVITY_TYPE_YOGA:                             3.0,
	pb.ActivityType_ACTIVITY_TYPE_PILATES:                          3.5,
	pb.ActivityType_ACTIVITY_TYPE_HIGH_INTENSITY_INTERVAL_TRAINING: 11.0,
	pb.ActivityType_ACTIVITY_TYPE_ROWING:                           7.0,
	pb.ActivityType_ACTIVITY_TYPE_ELLIPTICAL:                       5.0,
	pb.ActivityType_ACTIVITY_TYPE_STAIR_STEPPER:                    9.0,
	pb.ActivityType_ACTIVITY_TYPE_SOCCER:                           7.0,
	pb.ActivityType_ACTIVITY_TYPE_NORDIC_SKI:                       9.0,
	pb.ActivityType_ACTIVITY_TYPE_ALPINE_SKI:                       5.3,
	pb.ActivityType_ACTIVITY_TYPE_SNOWBOARD:                        5.3,
	pb.ActivityType_ACTIVITY_TYPE_KAYAKING:                         5.0,
	pb.ActivityType_ACTIVITY_TYPE_SURFING:                          3.0,
}

// defaultMET is used for activity types with no entry in activityMETs: a
// moderate-intensity fallback rather than reporting zero calories.
const defaultMET = 5.0

// defaultUserWeightKg is used when a pipeline has not configured a weight.
const defaultUserWeightKg = 70.0

// CaloriesProvider estimates calories burned from activity type, duration,
// and the user's configured body weight, using the standard
// MET × weight(kg) × duration(hours) formula.
type CaloriesProvider struct{}

func init() {
	plugin.RegisterEnricher(pb.EnricherProviderType_ENRICHER_PROVIDER_CALORIES, &pb.PluginManifest{
		Id:          "calories",
		Type:        pb.PluginType_PLUGIN_TYPE_ENRICHER,
		Name:        "Calories Burned",
		Description: "Estimates calories burned from activity type, duration, and body weight",
		Icon:        "🔥",
		Enabled:     true,
		ConfigSchema: []*pb.ConfigFieldSchema{
			{
				Key:          "user_weight",
				Label:        "Body Weight (kg)",
				Description:  "Used for the MET-based calorie estimate",
				FieldType:    pb.ConfigFieldType_CONFIG_FIELD_TYPE_NUMBER,
				Required:     false,
				DefaultValue: "70",
			},
		},
	})
}

func NewCaloriesProvider() *CaloriesProvider {
	return &CaloriesProvider{}
}

func (p *CaloriesProvider) Name() string {
	return "calories"
}

func (p *CaloriesProvider) ProviderType() pb.EnricherProviderType {
	return pb.EnricherProviderType_ENRICHER_PROVIDER_CALORIES
}

func (p *CaloriesProvider) Enrich(ctx context.Context, activity *pb.StandardizedActivity, user *pb.UserRecord, inputs map[string]string, doNotRetry bool) (*EnrichmentResult, error) {
	userWeight := defaultUserWeightKg
	if weightStr, ok := inputs["user_weight"]; ok && weightStr != "" {
		if w, err := strconv.ParseFloat(weightStr, 64); err == nil && w > 0 {
			userWeight = w
		}
	}

	var totalSeconds float64
	for _, session := range activity.Sessions {
		totalSeconds += session.TotalElapsedTime
	}
	durationHours := totalSeconds / 3600.0

	if durationHours <= 0 {
		return &EnrichmentResult{
			Metadata: map[string]string{
				"calories_status": "skipped",
				"status_detail":   "no duration data",
			},
		}, nil
	}

	met := activityMETs[activity.Type]
	if met == 0 {
		met = defaultMET
	}

	calories := met * userWeight * durationHours

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🔥 Calories: %.0f kcal", calories))

	return &EnrichmentResult{
		Description:   sb.String(),
		SectionHeader: "Calories",
		Metadata: map[string]string{
			"calories_status": "success",
			"calories":        fmt.Sprintf("%.0f", calories),
			"met_value":       fmt.Sprintf("%.1f", met),
			"duration_hours":  fmt.Sprintf("%.2f", durationHours),
			"weight_kg":       fmt.Sprintf("%.0f", userWeight),
		},
	}, nil
}
