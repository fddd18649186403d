// Package pb holds the wire types shared across syncforge/core's services.
//
// These were originally protobuf-generated; the generator and .proto sources
// are not part of this tree, so the types below are hand-written to match the
// same field names and JSON wire shape (snake_case via struct tags). Callers
// marshal/unmarshal them with encoding/json rather than protojson. Timestamp
// fields keep *timestamppb.Timestamp so the .AsTime()/.AsTime() idiom used
// throughout the codebase is unaffected.
package pb

import (
	"google.golang.org/protobuf/types/known/timestamppb"
)

// --- ActivityType ---

type ActivityType int32

const (
	ActivityType_ACTIVITY_TYPE_UNSPECIFIED ActivityType = iota
	ActivityType_ACTIVITY_TYPE_RUN
	ActivityType_ACTIVITY_TYPE_VIRTUAL_RUN
	ActivityType_ACTIVITY_TYPE_TRAIL_RUN
	ActivityType_ACTIVITY_TYPE_RIDE
	ActivityType_ACTIVITY_TYPE_VIRTUAL_RIDE
	ActivityType_ACTIVITY_TYPE_GRAVEL_RIDE
	ActivityType_ACTIVITY_TYPE_MOUNTAIN_BIKE_RIDE
	ActivityType_ACTIVITY_TYPE_EMOUNTAIN_BIKE_RIDE
	ActivityType_ACTIVITY_TYPE_EBIKE_RIDE
	ActivityType_ACTIVITY_TYPE_VELOMOBILE
	ActivityType_ACTIVITY_TYPE_HANDCYCLE
	ActivityType_ACTIVITY_TYPE_SWIM
	ActivityType_ACTIVITY_TYPE_WALK
	ActivityType_ACTIVITY_TYPE_HIKE
	ActivityType_ACTIVITY_TYPE_SNOWSHOE
	ActivityType_ACTIVITY_TYPE_WEIGHT_TRAINING
	ActivityType_ACTIVITY_TYPE_WORKOUT
	ActivityType_ACTIVITY_TYPE_CROSSFIT
	ActivityType_ACTIVITY_TYPE_ELLIPTICAL
	ActivityType_ACTIVITY_TYPE_STAIR_STEPPER
	ActivityType_ACTIVITY_TYPE_PILATES
	ActivityType_ACTIVITY_TYPE_YOGA
	ActivityType_ACTIVITY_TYPE_HIGH_INTENSITY_INTERVAL_TRAINING
	ActivityType_ACTIVITY_TYPE_ROWING
	ActivityType_ACTIVITY_TYPE_VIRTUAL_ROW
	ActivityType_ACTIVITY_TYPE_CANOEING
	ActivityType_ACTIVITY_TYPE_KAYAKING
	ActivityType_ACTIVITY_TYPE_STAND_UP_PADDLING
	ActivityType_ACTIVITY_TYPE_SURFING
	ActivityType_ACTIVITY_TYPE_WINDSURF
	ActivityType_ACTIVITY_TYPE_KITESURF
	ActivityType_ACTIVITY_TYPE_SAIL
	ActivityType_ACTIVITY_TYPE_ALPINE_SKI
	ActivityType_ACTIVITY_TYPE_BACKCOUNTRY_SKI
	ActivityType_ACTIVITY_TYPE_NORDIC_SKI
	ActivityType_ACTIVITY_TYPE_ROLLER_SKI
	ActivityType_ACTIVITY_TYPE_SNOWBOARD
	ActivityType_ACTIVITY_TYPE_ICE_SKATE
	ActivityType_ACTIVITY_TYPE_SOCCER
	ActivityType_ACTIVITY_TYPE_GOLF
	ActivityType_ACTIVITY_TYPE_TENNIS
	ActivityType_ACTIVITY_TYPE_SQUASH
	ActivityType_ACTIVITY_TYPE_RACQUETBALL
	ActivityType_ACTIVITY_TYPE_BADMINTON
	ActivityType_ACTIVITY_TYPE_TABLE_TENNIS
	ActivityType_ACTIVITY_TYPE_PICKLEBALL
	ActivityType_ACTIVITY_TYPE_ROCK_CLIMBING
	ActivityType_ACTIVITY_TYPE_SKATEBOARD
	ActivityType_ACTIVITY_TYPE_WHEELCHAIR
	ActivityType_ACTIVITY_TYPE_INLINE_SKATE
)

var activityTypeNames = map[ActivityType]string{
	ActivityType_ACTIVITY_TYPE_UNSPECIFIED:                      "ACTIVITY_TYPE_UNSPECIFIED",
	ActivityType_ACTIVITY_TYPE_RUN:                              "ACTIVITY_TYPE_RUN",
	ActivityType_ACTIVITY_TYPE_VIRTUAL_RUN:                      "ACTIVITY_TYPE_VIRTUAL_RUN",
	ActivityType_ACTIVITY_TYPE_TRAIL_RUN:                        "ACTIVITY_TYPE_TRAIL_RUN",
	ActivityType_ACTIVITY_TYPE_RIDE:                             "ACTIVITY_TYPE_RIDE",
	ActivityType_ACTIVITY_TYPE_VIRTUAL_RIDE:                     "ACTIVITY_TYPE_VIRTUAL_RIDE",
	ActivityType_ACTIVITY_TYPE_GRAVEL_RIDE:                      "ACTIVITY_TYPE_GRAVEL_RIDE",
	ActivityType_ACTIVITY_TYPE_MOUNTAIN_BIKE_RIDE:               "ACTIVITY_TYPE_MOUNTAIN_BIKE_RIDE",
	ActivityType_ACTIVITY_TYPE_EMOUNTAIN_BIKE_RIDE:              "ACTIVITY_TYPE_EMOUNTAIN_BIKE_RIDE",
	ActivityType_ACTIVITY_TYPE_EBIKE_RIDE:                       "ACTIVITY_TYPE_EBIKE_RIDE",
	ActivityType_ACTIVITY_TYPE_VELOMOBILE:                       "ACTIVITY_TYPE_VELOMOBILE",
	ActivityType_ACTIVITY_TYPE_HANDCYCLE:                        "ACTIVITY_TYPE_HANDCYCLE",
	ActivityType_ACTIVITY_TYPE_SWIM:                             "ACTIVITY_TYPE_SWIM",
	ActivityType_ACTIVITY_TYPE_WALK:                             "ACTIVITY_TYPE_WALK",
	ActivityType_ACTIVITY_TYPE_HIKE:                             "ACTIVITY_TYPE_HIKE",
	ActivityType_ACTIVITY_TYPE_SNOWSHOE:                         "ACTIVITY_TYPE_SNOWSHOE",
	ActivityType_ACTIVITY_TYPE_WEIGHT_TRAINING:                  "ACTIVITY_TYPE_WEIGHT_TRAINING",
	ActivityType_ACTIVITY_TYPE_WORKOUT:                          "ACTIVITY_TYPE_WORKOUT",
	ActivityType_ACTIVITY_TYPE_CROSSFIT:                         "ACTIVITY_TYPE_CROSSFIT",
	ActivityType_ACTIVITY_TYPE_ELLIPTICAL:                       "ACTIVITY_TYPE_ELLIPTICAL",
	ActivityType_ACTIVITY_TYPE_STAIR_STEPPER:                    "ACTIVITY_TYPE_STAIR_STEPPER",
	ActivityType_ACTIVITY_TYPE_PILATES:                          "ACTIVITY_TYPE_PILATES",
	ActivityType_ACTIVITY_TYPE_YOGA:                             "ACTIVITY_TYPE_YOGA",
	ActivityType_ACTIVITY_TYPE_HIGH_INTENSITY_INTERVAL_TRAINING: "ACTIVITY_TYPE_HIGH_INTENSITY_INTERVAL_TRAINING",
	ActivityType_ACTIVITY_TYPE_ROWING:                           "ACTIVITY_TYPE_ROWING",
	ActivityType_ACTIVITY_TYPE_VIRTUAL_ROW:                      "ACTIVITY_TYPE_VIRTUAL_ROW",
	ActivityType_ACTIVITY_TYPE_CANOEING:                         "ACTIVITY_TYPE_CANOEING",
	ActivityType_ACTIVITY_TYPE_KAYAKING:                         "ACTIVITY_TYPE_KAYAKING",
	ActivityType_ACTIVITY_TYPE_STAND_UP_PADDLING:                "ACTIVITY_TYPE_STAND_UP_PADDLING",
	ActivityType_ACTIVITY_TYPE_SURFING:                          "ACTIVITY_TYPE_SURFING",
	ActivityType_ACTIVITY_TYPE_WINDSURF:                         "ACTIVITY_TYPE_WINDSURF",
	ActivityType_ACTIVITY_TYPE_KITESURF:                         "ACTIVITY_TYPE_KITESURF",
	ActivityType_ACTIVITY_TYPE_SAIL:                             "ACTIVITY_TYPE_SAIL",
	ActivityType_ACTIVITY_TYPE_ALPINE_SKI:                       "ACTIVITY_TYPE_ALPINE_SKI",
	ActivityType_ACTIVITY_TYPE_BACKCOUNTRY_SKI:                  "ACTIVITY_TYPE_BACKCOUNTRY_SKI",
	ActivityType_ACTIVITY_TYPE_NORDIC_SKI:                       "ACTIVITY_TYPE_NORDIC_SKI",
	ActivityType_ACTIVITY_TYPE_ROLLER_SKI:                       "ACTIVITY_TYPE_ROLLER_SKI",
	ActivityType_ACTIVITY_TYPE_SNOWBOARD:                        "ACTIVITY_TYPE_SNOWBOARD",
	ActivityType_ACTIVITY_TYPE_ICE_SKATE:                        "ACTIVITY_TYPE_ICE_SKATE",
	ActivityType_ACTIVITY_TYPE_SOCCER:                           "ACTIVITY_TYPE_SOCCER",
	ActivityType_ACTIVITY_TYPE_GOLF:                             "ACTIVITY_TYPE_GOLF",
	ActivityType_ACTIVITY_TYPE_TENNIS:                           "ACTIVITY_TYPE_TENNIS",
	ActivityType_ACTIVITY_TYPE_SQUASH:                           "ACTIVITY_TYPE_SQUASH",
	ActivityType_ACTIVITY_TYPE_RACQUETBALL:                      "ACTIVITY_TYPE_RACQUETBALL",
	ActivityType_ACTIVITY_TYPE_BADMINTON:                        "ACTIVITY_TYPE_BADMINTON",
	ActivityType_ACTIVITY_TYPE_TABLE_TENNIS:                     "ACTIVITY_TYPE_TABLE_TENNIS",
	ActivityType_ACTIVITY_TYPE_PICKLEBALL:                       "ACTIVITY_TYPE_PICKLEBALL",
	ActivityType_ACTIVITY_TYPE_ROCK_CLIMBING:                    "ACTIVITY_TYPE_ROCK_CLIMBING",
	ActivityType_ACTIVITY_TYPE_SKATEBOARD:                       "ACTIVITY_TYPE_SKATEBOARD",
	ActivityType_ACTIVITY_TYPE_WHEELCHAIR:                       "ACTIVITY_TYPE_WHEELCHAIR",
	ActivityType_ACTIVITY_TYPE_INLINE_SKATE:                     "ACTIVITY_TYPE_INLINE_SKATE",
}

// ActivityType_value mirrors the protoc-gen-go enum value map convention.
var ActivityType_value = func() map[string]int32 {
	m := make(map[string]int32, len(activityTypeNames))
	for k, v := range activityTypeNames {
		m[v] = int32(k)
	}
	return m
}()

func (t ActivityType) String() string {
	if name, ok := activityTypeNames[t]; ok {
		return name
	}
	return "ACTIVITY_TYPE_UNSPECIFIED"
}

func (t ActivityType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *ActivityType) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}
	if v, ok := ActivityType_value[s]; ok {
		*t = ActivityType(v)
		return nil
	}
	*t = ActivityType_ACTIVITY_TYPE_UNSPECIFIED
	return nil
}

// --- ActivitySource ---

type ActivitySource int32

const (
	ActivitySource_SOURCE_UNSPECIFIED ActivitySource = iota
	ActivitySource_SOURCE_HEVY
	ActivitySource_SOURCE_STRAVA
	ActivitySource_SOURCE_FITBIT
	ActivitySource_SOURCE_FILE_UPLOAD
	ActivitySource_SOURCE_TEST
)

var activitySourceNames = map[ActivitySource]string{
	ActivitySource_SOURCE_UNSPECIFIED: "SOURCE_UNSPECIFIED",
	ActivitySource_SOURCE_HEVY:        "SOURCE_HEVY",
	ActivitySource_SOURCE_STRAVA:      "SOURCE_STRAVA",
	ActivitySource_SOURCE_FITBIT:      "SOURCE_FITBIT",
	ActivitySource_SOURCE_FILE_UPLOAD: "SOURCE_FILE_UPLOAD",
	ActivitySource_SOURCE_TEST:        "SOURCE_TEST",
}

var ActivitySource_value = func() map[string]int32 {
	m := make(map[string]int32, len(activitySourceNames))
	for k, v := range activitySourceNames {
		m[v] = int32(k)
	}
	return m
}()

func (s ActivitySource) String() string {
	if name, ok := activitySourceNames[s]; ok {
		return name
	}
	return "SOURCE_UNSPECIFIED"
}

func (s ActivitySource) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

func (s *ActivitySource) UnmarshalJSON(b []byte) error {
	str := string(b)
	if len(str) >= 2 && str[0] == '"' {
		str = str[1 : len(str)-1]
	}
	if v, ok := ActivitySource_value[str]; ok {
		*s = ActivitySource(v)
		return nil
	}
	*s = ActivitySource_SOURCE_UNSPECIFIED
	return nil
}

// --- Destination ---

type Destination int32

const (
	Destination_DESTINATION_UNSPECIFIED Destination = iota
	Destination_DESTINATION_STRAVA
	Destination_DESTINATION_FITBIT
	Destination_DESTINATION_MOCK
)

var destinationNames = map[Destination]string{
	Destination_DESTINATION_UNSPECIFIED: "DESTINATION_UNSPECIFIED",
	Destination_DESTINATION_STRAVA:      "DESTINATION_STRAVA",
	Destination_DESTINATION_FITBIT:      "DESTINATION_FITBIT",
	Destination_DESTINATION_MOCK:        "DESTINATION_MOCK",
}

var Destination_value = func() map[string]int32 {
	m := make(map[string]int32, len(destinationNames))
	for k, v := range destinationNames {
		m[v] = int32(k)
	}
	return m
}()

func (d Destination) String() string {
	if name, ok := destinationNames[d]; ok {
		return name
	}
	return "DESTINATION_UNSPECIFIED"
}

// --- EnricherProviderType ---

type EnricherProviderType int32

const (
	EnricherProviderType_ENRICHER_PROVIDER_UNSPECIFIED EnricherProviderType = iota
	EnricherProviderType_ENRICHER_PROVIDER_ACTIVITY_FILTER
	EnricherProviderType_ENRICHER_PROVIDER_CONDITION_MATCHER
	EnricherProviderType_ENRICHER_PROVIDER_MOCK
	EnricherProviderType_ENRICHER_PROVIDER_USER_INPUT
	EnricherProviderType_ENRICHER_PROVIDER_MUSCLE_HEATMAP
	EnricherProviderType_ENRICHER_PROVIDER_SOURCE_LINK
	EnricherProviderType_ENRICHER_PROVIDER_TYPE_MAPPER
	EnricherProviderType_ENRICHER_PROVIDER_AUTO_INCREMENT
	EnricherProviderType_ENRICHER_PROVIDER_PARKRUN
	EnricherProviderType_ENRICHER_PROVIDER_WORKOUT_SUMMARY
	EnricherProviderType_ENRICHER_PROVIDER_VIRTUAL_GPS
	EnricherProviderType_ENRICHER_PROVIDER_BRANDING
	EnricherProviderType_ENRICHER_PROVIDER_FITBIT_HEART_RATE
	EnricherProviderType_ENRICHER_PROVIDER_CALORIES
)

var enricherProviderTypeNames = map[EnricherProviderType]string{
	EnricherProviderType_ENRICHER_PROVIDER_UNSPECIFIED:       "ENRICHER_PROVIDER_UNSPECIFIED",
	EnricherProviderType_ENRICHER_PROVIDER_ACTIVITY_FILTER:   "ENRICHER_PROVIDER_ACTIVITY_FILTER",
	EnricherProviderType_ENRICHER_PROVIDER_CONDITION_MATCHER: "ENRICHER_PROVIDER_CONDITION_MATCHER",
	EnricherProviderType_ENRICHER_PROVIDER_MOCK:              "ENRICHER_PROVIDER_MOCK",
	EnricherProviderType_ENRICHER_PROVIDER_USER_INPUT:        "ENRICHER_PROVIDER_USER_INPUT",
	EnricherProviderType_ENRICHER_PROVIDER_MUSCLE_HEATMAP:    "ENRICHER_PROVIDER_MUSCLE_HEATMAP",
	EnricherProviderType_ENRICHER_PROVIDER_SOURCE_LINK:       "ENRICHER_PROVIDER_SOURCE_LINK",
	EnricherProviderType_ENRICHER_PROVIDER_TYPE_MAPPER:       "ENRICHER_PROVIDER_TYPE_MAPPER",
	EnricherProviderType_ENRICHER_PROVIDER_AUTO_INCREMENT:    "ENRICHER_PROVIDER_AUTO_INCREMENT",
	EnricherProviderType_ENRICHER_PROVIDER_PARKRUN:           "ENRICHER_PROVIDER_PARKRUN",
	EnricherProviderType_ENRICHER_PROVIDER_WORKOUT_SUMMARY:   "ENRICHER_PROVIDER_WORKOUT_SUMMARY",
	EnricherProviderType_ENRICHER_PROVIDER_VIRTUAL_GPS:       "ENRICHER_PROVIDER_VIRTUAL_GPS",
	EnricherProviderType_ENRICHER_PROVIDER_BRANDING:          "ENRICHER_PROVIDER_BRANDING",
	EnricherProviderType_ENRICHER_PROVIDER_FITBIT_HEART_RATE: "ENRICHER_PROVIDER_FITBIT_HEART_RATE",
	EnricherProviderType_ENRICHER_PROVIDER_CALORIES:          "ENRICHER_PROVIDER_CALORIES",
}

func (t EnricherProviderType) String() string {
	if name, ok := enricherProviderTypeNames[t]; ok {
		return name
	}
	return "ENRICHER_PROVIDER_UNSPECIFIED"
}

// --- ExecutionStatus ---

type ExecutionStatus int32

const (
	ExecutionStatus_STATUS_UNKNOWN ExecutionStatus = iota
	ExecutionStatus_STATUS_PENDING
	ExecutionStatus_STATUS_STARTED
	ExecutionStatus_STATUS_SUCCESS
	ExecutionStatus_STATUS_FAILED
	ExecutionStatus_STATUS_WAITING
	ExecutionStatus_STATUS_SKIPPED
	ExecutionStatus_STATUS_LAG_RETRY
)

var executionStatusNames = map[ExecutionStatus]string{
	ExecutionStatus_STATUS_UNKNOWN:   "STATUS_UNKNOWN",
	ExecutionStatus_STATUS_PENDING:   "STATUS_PENDING",
	ExecutionStatus_STATUS_STARTED:   "STATUS_STARTED",
	ExecutionStatus_STATUS_SUCCESS:   "STATUS_SUCCESS",
	ExecutionStatus_STATUS_FAILED:    "STATUS_FAILED",
	ExecutionStatus_STATUS_WAITING:   "STATUS_WAITING",
	ExecutionStatus_STATUS_SKIPPED:   "STATUS_SKIPPED",
	ExecutionStatus_STATUS_LAG_RETRY: "STATUS_LAG_RETRY",
}

var ExecutionStatus_value = func() map[string]int32 {
	m := make(map[string]int32, len(executionStatusNames))
	for k, v := range executionStatusNames {
		m[v] = int32(k)
	}
	return m
}()

func (s ExecutionStatus) String() string {
	if name, ok := executionStatusNames[s]; ok {
		return name
	}
	return "STATUS_UNKNOWN"
}

// --- PluginType ---

type PluginType int32

const (
	PluginType_PLUGIN_TYPE_UNSPECIFIED PluginType = iota
	PluginType_PLUGIN_TYPE_SOURCE
	PluginType_PLUGIN_TYPE_ENRICHER
	PluginType_PLUGIN_TYPE_DESTINATION
)

func (t PluginType) String() string {
	switch t {
	case PluginType_PLUGIN_TYPE_SOURCE:
		return "PLUGIN_TYPE_SOURCE"
	case PluginType_PLUGIN_TYPE_ENRICHER:
		return "PLUGIN_TYPE_ENRICHER"
	case PluginType_PLUGIN_TYPE_DESTINATION:
		return "PLUGIN_TYPE_DESTINATION"
	default:
		return "PLUGIN_TYPE_UNSPECIFIED"
	}
}

// --- ConfigFieldType ---

type ConfigFieldType int32

const (
	ConfigFieldType_CONFIG_FIELD_TYPE_UNSPECIFIED ConfigFieldType = iota
	ConfigFieldType_CONFIG_FIELD_TYPE_STRING
	ConfigFieldType_CONFIG_FIELD_TYPE_NUMBER
	ConfigFieldType_CONFIG_FIELD_TYPE_BOOLEAN
	ConfigFieldType_CONFIG_FIELD_TYPE_SELECT
	ConfigFieldType_CONFIG_FIELD_TYPE_MULTI_SELECT
	ConfigFieldType_CONFIG_FIELD_TYPE_KEY_VALUE_MAP
)

func (t ConfigFieldType) String() string {
	switch t {
	case ConfigFieldType_CONFIG_FIELD_TYPE_STRING:
		return "CONFIG_FIELD_TYPE_STRING"
	case ConfigFieldType_CONFIG_FIELD_TYPE_NUMBER:
		return "CONFIG_FIELD_TYPE_NUMBER"
	case ConfigFieldType_CONFIG_FIELD_TYPE_BOOLEAN:
		return "CONFIG_FIELD_TYPE_BOOLEAN"
	case ConfigFieldType_CONFIG_FIELD_TYPE_SELECT:
		return "CONFIG_FIELD_TYPE_SELECT"
	case ConfigFieldType_CONFIG_FIELD_TYPE_MULTI_SELECT:
		return "CONFIG_FIELD_TYPE_MULTI_SELECT"
	case ConfigFieldType_CONFIG_FIELD_TYPE_KEY_VALUE_MAP:
		return "CONFIG_FIELD_TYPE_KEY_VALUE_MAP"
	default:
		return "CONFIG_FIELD_TYPE_UNSPECIFIED"
	}
}

// --- MuscleGroup ---

type MuscleGroup int32

const (
	MuscleGroup_MUSCLE_GROUP_UNSPECIFIED MuscleGroup = iota
	MuscleGroup_MUSCLE_GROUP_CHEST
	MuscleGroup_MUSCLE_GROUP_UPPER_BACK
	MuscleGroup_MUSCLE_GROUP_LOWER_BACK
	MuscleGroup_MUSCLE_GROUP_LATS
	MuscleGroup_MUSCLE_GROUP_TRAPS
	MuscleGroup_MUSCLE_GROUP_SHOULDERS
	MuscleGroup_MUSCLE_GROUP_BICEPS
	MuscleGroup_MUSCLE_GROUP_TRICEPS
	MuscleGroup_MUSCLE_GROUP_FOREARMS
	MuscleGroup_MUSCLE_GROUP_ABDOMINALS
	MuscleGroup_MUSCLE_GROUP_QUADRICEPS
	MuscleGroup_MUSCLE_GROUP_HAMSTRINGS
	MuscleGroup_MUSCLE_GROUP_GLUTES
	MuscleGroup_MUSCLE_GROUP_CALVES
	MuscleGroup_MUSCLE_GROUP_ABDUCTORS
	MuscleGroup_MUSCLE_GROUP_ADDUCTORS
	MuscleGroup_MUSCLE_GROUP_NECK
	MuscleGroup_MUSCLE_GROUP_CARDIO
	MuscleGroup_MUSCLE_GROUP_FULL_BODY
	MuscleGroup_MUSCLE_GROUP_OTHER
)

var muscleGroupNames = map[MuscleGroup]string{
	MuscleGroup_MUSCLE_GROUP_UNSPECIFIED: "MUSCLE_GROUP_UNSPECIFIED",
	MuscleGroup_MUSCLE_GROUP_CHEST:       "MUSCLE_GROUP_CHEST",
	MuscleGroup_MUSCLE_GROUP_UPPER_BACK:  "MUSCLE_GROUP_UPPER_BACK",
	MuscleGroup_MUSCLE_GROUP_LOWER_BACK:  "MUSCLE_GROUP_LOWER_BACK",
	MuscleGroup_MUSCLE_GROUP_LATS:        "MUSCLE_GROUP_LATS",
	MuscleGroup_MUSCLE_GROUP_TRAPS:       "MUSCLE_GROUP_TRAPS",
	MuscleGroup_MUSCLE_GROUP_SHOULDERS:   "MUSCLE_GROUP_SHOULDERS",
	MuscleGroup_MUSCLE_GROUP_BICEPS:      "MUSCLE_GROUP_BICEPS",
	MuscleGroup_MUSCLE_GROUP_TRICEPS:     "MUSCLE_GROUP_TRICEPS",
	MuscleGroup_MUSCLE_GROUP_FOREARMS:    "MUSCLE_GROUP_FOREARMS",
	MuscleGroup_MUSCLE_GROUP_ABDOMINALS:  "MUSCLE_GROUP_ABDOMINALS",
	MuscleGroup_MUSCLE_GROUP_QUADRICEPS:  "MUSCLE_GROUP_QUADRICEPS",
	MuscleGroup_MUSCLE_GROUP_HAMSTRINGS:  "MUSCLE_GROUP_HAMSTRINGS",
	MuscleGroup_MUSCLE_GROUP_GLUTES:      "MUSCLE_GROUP_GLUTES",
	MuscleGroup_MUSCLE_GROUP_CALVES:      "MUSCLE_GROUP_CALVES",
	MuscleGroup_MUSCLE_GROUP_ABDUCTORS:   "MUSCLE_GROUP_ABDUCTORS",
	MuscleGroup_MUSCLE_GROUP_ADDUCTORS:   "MUSCLE_GROUP_ADDUCTORS",
	MuscleGroup_MUSCLE_GROUP_NECK:        "MUSCLE_GROUP_NECK",
	MuscleGroup_MUSCLE_GROUP_CARDIO:      "MUSCLE_GROUP_CARDIO",
	MuscleGroup_MUSCLE_GROUP_FULL_BODY:   "MUSCLE_GROUP_FULL_BODY",
	MuscleGroup_MUSCLE_GROUP_OTHER:       "MUSCLE_GROUP_OTHER",
}

func (m MuscleGroup) String() string {
	if name, ok := muscleGroupNames[m]; ok {
		return name
	}
	return "MUSCLE_GROUP_UNSPECIFIED"
}

// --- MuscleHeatmapStyle / WorkoutSummaryFormat ---

type MuscleHeatmapStyle int32

const (
	MuscleHeatmapStyle_MUSCLE_HEATMAP_STYLE_UNSPECIFIED MuscleHeatmapStyle = iota
	MuscleHeatmapStyle_MUSCLE_HEATMAP_STYLE_EMOJI_BARS
	MuscleHeatmapStyle_MUSCLE_HEATMAP_STYLE_PERCENTAGE
	MuscleHeatmapStyle_MUSCLE_HEATMAP_STYLE_TEXT_ONLY
)

func (s MuscleHeatmapStyle) String() string {
	switch s {
	case MuscleHeatmapStyle_MUSCLE_HEATMAP_STYLE_EMOJI_BARS:
		return "MUSCLE_HEATMAP_STYLE_EMOJI_BARS"
	case MuscleHeatmapStyle_MUSCLE_HEATMAP_STYLE_PERCENTAGE:
		return "MUSCLE_HEATMAP_STYLE_PERCENTAGE"
	case MuscleHeatmapStyle_MUSCLE_HEATMAP_STYLE_TEXT_ONLY:
		return "MUSCLE_HEATMAP_STYLE_TEXT_ONLY"
	default:
		return "MUSCLE_HEATMAP_STYLE_UNSPECIFIED"
	}
}

type WorkoutSummaryFormat int32

const (
	WorkoutSummaryFormat_WORKOUT_SUMMARY_FORMAT_UNSPECIFIED WorkoutSummaryFormat = iota
	WorkoutSummaryFormat_WORKOUT_SUMMARY_FORMAT_COMPACT
	WorkoutSummaryFormat_WORKOUT_SUMMARY_FORMAT_DETAILED
	WorkoutSummaryFormat_WORKOUT_SUMMARY_FORMAT_VERBOSE
)

func (f WorkoutSummaryFormat) String() string {
	switch f {
	case WorkoutSummaryFormat_WORKOUT_SUMMARY_FORMAT_COMPACT:
		return "WORKOUT_SUMMARY_FORMAT_COMPACT"
	case WorkoutSummaryFormat_WORKOUT_SUMMARY_FORMAT_DETAILED:
		return "WORKOUT_SUMMARY_FORMAT_DETAILED"
	case WorkoutSummaryFormat_WORKOUT_SUMMARY_FORMAT_VERBOSE:
		return "WORKOUT_SUMMARY_FORMAT_VERBOSE"
	default:
		return "WORKOUT_SUMMARY_FORMAT_UNSPECIFIED"
	}
}

// --- CloudEvent source/type enums (used to tag outbound CloudEvents) ---

type CloudEventSource int32

const (
	CloudEventSource_CLOUD_EVENT_SOURCE_UNSPECIFIED CloudEventSource = iota
	CloudEventSource_CLOUD_EVENT_SOURCE_SPLITTER
	CloudEventSource_CLOUD_EVENT_SOURCE_ENRICHER
	CloudEventSource_CLOUD_EVENT_SOURCE_ROUTER
	CloudEventSource_CLOUD_EVENT_SOURCE_UPLOADER
	CloudEventSource_CLOUD_EVENT_SOURCE_SCHEDULER
)

func (s CloudEventSource) String() string {
	switch s {
	case CloudEventSource_CLOUD_EVENT_SOURCE_SPLITTER:
		return "/syncforge/splitter"
	case CloudEventSource_CLOUD_EVENT_SOURCE_ENRICHER:
		return "/syncforge/enricher"
	case CloudEventSource_CLOUD_EVENT_SOURCE_ROUTER:
		return "/syncforge/router"
	case CloudEventSource_CLOUD_EVENT_SOURCE_UPLOADER:
		return "/syncforge/uploader"
	case CloudEventSource_CLOUD_EVENT_SOURCE_SCHEDULER:
		return "/syncforge/scheduler"
	default:
		return "/syncforge/unknown"
	}
}

type CloudEventType int32

const (
	CloudEventType_CLOUD_EVENT_TYPE_UNSPECIFIED CloudEventType = iota
	CloudEventType_CLOUD_EVENT_TYPE_ACTIVITY_RAW
	CloudEventType_CLOUD_EVENT_TYPE_PIPELINE_RUN
	CloudEventType_CLOUD_EVENT_TYPE_ACTIVITY_ENRICHED
	CloudEventType_CLOUD_EVENT_TYPE_ENRICHMENT_LAG
	CloudEventType_CLOUD_EVENT_TYPE_DESTINATION_JOB
)

func (t CloudEventType) String() string {
	switch t {
	case CloudEventType_CLOUD_EVENT_TYPE_ACTIVITY_RAW:
		return "com.syncforge.activity.raw"
	case CloudEventType_CLOUD_EVENT_TYPE_PIPELINE_RUN:
		return "com.syncforge.pipeline.run"
	case CloudEventType_CLOUD_EVENT_TYPE_ACTIVITY_ENRICHED:
		return "com.syncforge.activity.enriched"
	case CloudEventType_CLOUD_EVENT_TYPE_ENRICHMENT_LAG:
		return "com.syncforge.enrichment.lag"
	case CloudEventType_CLOUD_EVENT_TYPE_DESTINATION_JOB:
		return "com.syncforge.destination.job"
	default:
		return "com.syncforge.unknown"
	}
}

// --- PendingInput.Status ---

type PendingInput_Status int32

const (
	PendingInput_STATUS_UNSPECIFIED PendingInput_Status = iota
	PendingInput_STATUS_WAITING
	PendingInput_STATUS_COMPLETED
	PendingInput_STATUS_EXPIRED
)

func (s PendingInput_Status) String() string {
	switch s {
	case PendingInput_STATUS_WAITING:
		return "STATUS_WAITING"
	case PendingInput_STATUS_COMPLETED:
		return "STATUS_COMPLETED"
	case PendingInput_STATUS_EXPIRED:
		return "STATUS_EXPIRED"
	default:
		return "STATUS_UNSPECIFIED"
	}
}

// --- Domain model structs ---

type HevyIntegration struct {
	Enabled bool   `json:"enabled"`
	ApiKey  string `json:"api_key"`
	UserId  string `json:"user_id"`
}

type FitbitIntegration struct {
	Enabled      bool                    `json:"enabled"`
	AccessToken  string                  `json:"access_token"`
	RefreshToken string                  `json:"refresh_token"`
	ExpiresAt    *timestamppb.Timestamp  `json:"expires_at,omitempty"`
	FitbitUserId string                  `json:"fitbit_user_id"`
}

type StravaIntegration struct {
	Enabled      bool                   `json:"enabled"`
	AccessToken  string                 `json:"access_token"`
	RefreshToken string                 `json:"refresh_token"`
	ExpiresAt    *timestamppb.Timestamp `json:"expires_at,omitempty"`
	AthleteId    int64                  `json:"athlete_id"`
}

type UserIntegrations struct {
	Hevy   *HevyIntegration   `json:"hevy,omitempty"`
	Fitbit *FitbitIntegration `json:"fitbit,omitempty"`
	Strava *StravaIntegration `json:"strava,omitempty"`
}

type EnricherConfig struct {
	ProviderType EnricherProviderType `json:"provider_type"`
	Name         string               `json:"name"`
	TypedConfig  map[string]string    `json:"typed_config,omitempty"`
	Inputs       map[string]string    `json:"inputs,omitempty"`
}

type PipelineConfig struct {
	Id     string `json:"id"`
	Source string `json:"source"`
	// Disabled excludes this pipeline from matching new raw activities.
	// Zero-value (false) means enabled, matching the data model's "enabled
	// pipelines" default.
	Disabled     bool              `json:"disabled,omitempty"`
	Enrichers    []*EnricherConfig `json:"enrichers,omitempty"`
	Destinations []string          `json:"destinations,omitempty"`
}

type UserRecord struct {
	UserId       string                 `json:"user_id"`
	CreatedAt    *timestamppb.Timestamp `json:"created_at,omitempty"`
	Integrations *UserIntegrations      `json:"integrations,omitempty"`
	FcmTokens    []string               `json:"fcm_tokens,omitempty"`
	Pipelines    []*PipelineConfig      `json:"pipelines,omitempty"`
	Tier         string                 `json:"tier,omitempty"`

	// IsAdmin grants the effective Athlete tier regardless of Tier/trial.
	IsAdmin bool `json:"is_admin,omitempty"`
	// TrialEndsAt, while in the future, also grants the effective Athlete tier.
	TrialEndsAt *timestamppb.Timestamp `json:"trial_ends_at,omitempty"`
	// SyncCountThisMonth is incremented once per successful destination upload
	// and reset when SyncCountResetAt falls in a prior calendar month.
	SyncCountThisMonth int32                  `json:"sync_count_this_month,omitempty"`
	SyncCountResetAt   *timestamppb.Timestamp `json:"sync_count_reset_at,omitempty"`
}

// --- Activity domain model ---

type Record struct {
	Timestamp    *timestamppb.Timestamp `json:"timestamp,omitempty"`
	HeartRate    int32                  `json:"heart_rate,omitempty"`
	Power        int32                  `json:"power,omitempty"`
	Cadence      int32                  `json:"cadence,omitempty"`
	Speed        float64                `json:"speed,omitempty"`
	Altitude     float64                `json:"altitude,omitempty"`
	PositionLat  float64                `json:"position_lat,omitempty"`
	PositionLong float64                `json:"position_long,omitempty"`
}

type Lap struct {
	StartTime        *timestamppb.Timestamp `json:"start_time,omitempty"`
	TotalElapsedTime float64                `json:"total_elapsed_time,omitempty"`
	TotalDistance    float64                `json:"total_distance,omitempty"`
	Records          []*Record              `json:"records,omitempty"`
}

type StrengthSet struct {
	StartTime             *timestamppb.Timestamp `json:"start_time,omitempty"`
	ExerciseName          string                 `json:"exercise_name,omitempty"`
	PrimaryMuscleGroup    MuscleGroup            `json:"primary_muscle_group,omitempty"`
	SecondaryMuscleGroups []MuscleGroup          `json:"secondary_muscle_groups,omitempty"`
	WeightKg              float64                `json:"weight_kg,omitempty"`
	Reps                  int32                  `json:"reps,omitempty"`
	DistanceMeters        float64                `json:"distance_meters,omitempty"`
	DurationSeconds       int32                  `json:"duration_seconds,omitempty"`
	SupersetId            string                 `json:"superset_id,omitempty"`
	SetType               string                 `json:"set_type,omitempty"`
}

type Session struct {
	TotalElapsedTime float64        `json:"total_elapsed_time,omitempty"`
	TotalDistance    float64        `json:"total_distance,omitempty"`
	Laps             []*Lap         `json:"laps,omitempty"`
	StrengthSets     []*StrengthSet `json:"strength_sets,omitempty"`
}

type StandardizedActivity struct {
	Name        string                 `json:"name,omitempty"`
	Description string                 `json:"description,omitempty"`
	Type        ActivityType           `json:"type,omitempty"`
	Source      string                 `json:"source,omitempty"`
	ExternalId  string                 `json:"external_id,omitempty"`
	StartTime   *timestamppb.Timestamp `json:"start_time,omitempty"`
	Sessions    []*Session             `json:"sessions,omitempty"`
}

type ActivityPayload struct {
	UserId               string                `json:"user_id"`
	Source               ActivitySource        `json:"source"`
	Timestamp            string                `json:"timestamp,omitempty"`
	RawMessageId         string                `json:"raw_message_id,omitempty"`
	StandardizedActivity *StandardizedActivity `json:"standardized_activity,omitempty"`

	// ActivityId is minted once by the splitter and carried through every
	// downstream envelope so enricher/router/uploader writes key off the
	// same row.
	ActivityId          string `json:"activity_id,omitempty"`
	PipelineId          string `json:"pipeline_id,omitempty"`
	PipelineExecutionId string `json:"pipeline_execution_id,omitempty"`

	// Resume fields, set by the resumer when a PendingInput is completed.
	IsResume             bool     `json:"is_resume,omitempty"`
	ResumePendingInputId string   `json:"resume_pending_input_id,omitempty"`
	ResumeOnlyEnrichers  []string `json:"resume_only_enrichers,omitempty"`

	// DoNotRetry forces every provider on this pass to treat a retryable
	// error as terminal instead of scheduling lag. Set by the auto-resume
	// driver on its forced republish so a provider that still can't resolve
	// its input falls back to its own default instead of pausing forever.
	DoNotRetry bool `json:"do_not_retry,omitempty"`

	// UseUpdateMethod tells an uploader this activity_id was already
	// delivered to at least one destination, so vendors that support it
	// should PATCH/update rather than create.
	UseUpdateMethod bool `json:"use_update_method,omitempty"`

	OriginalPayloadUri string            `json:"original_payload_uri,omitempty"`
	FitFileUri         string            `json:"fit_file_uri,omitempty"`
	ActivityDataUri    string            `json:"activity_data_uri,omitempty"`
	Tags               []string          `json:"tags,omitempty"`
	EnrichmentMetadata map[string]string `json:"enrichment_metadata,omitempty"`
}

type EnrichedActivityEvent struct {
	UserId              string                 `json:"user_id"`
	Source              ActivitySource         `json:"source"`
	ActivityId           string                `json:"activity_id"`
	PipelineId           string                `json:"pipeline_id"`
	PipelineExecutionId  string                `json:"pipeline_execution_id,omitempty"`
	ActivityData         *StandardizedActivity `json:"activity_data,omitempty"`
	Name                 string                `json:"name"`
	Description          string                `json:"description"`
	ActivityType         ActivityType          `json:"activity_type"`
	StartTime            *timestamppb.Timestamp `json:"start_time,omitempty"`
	FitFileUri           string                `json:"fit_file_uri,omitempty"`
	AppliedEnrichments   []string              `json:"applied_enrichments,omitempty"`
	EnrichmentMetadata   map[string]string     `json:"enrichment_metadata,omitempty"`
	Destinations         []string              `json:"destinations,omitempty"`
	Tags                 []string              `json:"tags,omitempty"`
	ActivityDataUri      string                `json:"activity_data_uri,omitempty"`

	// UseUpdateMethod tells each uploader whether this activity_id was
	// already delivered to its destination, so the create-vs-update
	// contract (see uploader package) issues a PATCH instead of a create.
	UseUpdateMethod bool `json:"use_update_method,omitempty"`
}

// --- Execution / PipelineRun / PendingInput ---

type ExecutionRecord struct {
	ExecutionId         string                 `json:"execution_id"`
	Service             string                 `json:"service"`
	Status              ExecutionStatus        `json:"status"`
	Timestamp           *timestamppb.Timestamp `json:"timestamp,omitempty"`
	UserId              *string                `json:"user_id,omitempty"`
	TestRunId           *string                `json:"test_run_id,omitempty"`
	TriggerType         string                 `json:"trigger_type"`
	StartTime           *timestamppb.Timestamp `json:"start_time,omitempty"`
	EndTime             *timestamppb.Timestamp `json:"end_time,omitempty"`
	ErrorMessage        *string                `json:"error_message,omitempty"`
	InputsJson          *string                `json:"inputs_json,omitempty"`
	OutputsJson         *string                `json:"outputs_json,omitempty"`
	PipelineExecutionId *string                `json:"pipeline_execution_id,omitempty"`
	// ParentExecutionId links a resumed stage's record back to the attempt
	// that preceded it (lag retry, pause/resume). Execution records are
	// append-only: a resume never mutates a prior record, it adds a new one.
	ParentExecutionId *string `json:"parent_execution_id,omitempty"`
}

type PendingInput struct {
	ActivityId      string                 `json:"activity_id"`
	UserId          string                 `json:"user_id"`
	Status          PendingInput_Status    `json:"status"`
	RequiredFields  []string               `json:"required_fields,omitempty"`
	InputData       map[string]string      `json:"input_data,omitempty"`
	OriginalPayload *ActivityPayload       `json:"original_payload,omitempty"`
	CreatedAt       *timestamppb.Timestamp `json:"created_at,omitempty"`
	UpdatedAt       *timestamppb.Timestamp `json:"updated_at,omitempty"`
	CompletedAt     *timestamppb.Timestamp `json:"completed_at,omitempty"`

	// PipelineId/PipelineExecutionId identify the run this pause belongs to.
	PipelineId          string `json:"pipeline_id,omitempty"`
	PipelineExecutionId string `json:"pipeline_execution_id,omitempty"`
	// EnricherProviderId is the name of the provider that raised the pause.
	EnricherProviderId string `json:"enricher_provider_id,omitempty"`
	// AutoDeadline marks when an unanswered pause should auto-expire.
	AutoDeadline *timestamppb.Timestamp `json:"auto_deadline,omitempty"`
}

// --- PipelineRun ---

type PipelineRunStatus int32

const (
	PipelineRunStatus_PIPELINE_RUN_UNSPECIFIED PipelineRunStatus = iota
	PipelineRunStatus_PIPELINE_RUN_PENDING
	PipelineRunStatus_PIPELINE_RUN_RUNNING
	PipelineRunStatus_PIPELINE_RUN_AWAITING_INPUT
	PipelineRunStatus_PIPELINE_RUN_SUCCESS
	PipelineRunStatus_PIPELINE_RUN_PARTIAL
	PipelineRunStatus_PIPELINE_RUN_FAILED
	PipelineRunStatus_PIPELINE_RUN_SKIPPED
)

func (s PipelineRunStatus) String() string {
	switch s {
	case PipelineRunStatus_PIPELINE_RUN_PENDING:
		return "PENDING"
	case PipelineRunStatus_PIPELINE_RUN_RUNNING:
		return "RUNNING"
	case PipelineRunStatus_PIPELINE_RUN_AWAITING_INPUT:
		return "AWAITING_INPUT"
	case PipelineRunStatus_PIPELINE_RUN_SUCCESS:
		return "SUCCESS"
	case PipelineRunStatus_PIPELINE_RUN_PARTIAL:
		return "PARTIAL"
	case PipelineRunStatus_PIPELINE_RUN_FAILED:
		return "FAILED"
	case PipelineRunStatus_PIPELINE_RUN_SKIPPED:
		return "SKIPPED"
	default:
		return "UNSPECIFIED"
	}
}

type DestinationSubStatus int32

const (
	DestinationSubStatus_DESTINATION_SUB_STATUS_PENDING DestinationSubStatus = iota
	DestinationSubStatus_DESTINATION_SUB_STATUS_SUCCESS
	DestinationSubStatus_DESTINATION_SUB_STATUS_FAILED
)

func (s DestinationSubStatus) String() string {
	switch s {
	case DestinationSubStatus_DESTINATION_SUB_STATUS_SUCCESS:
		return "SUCCESS"
	case DestinationSubStatus_DESTINATION_SUB_STATUS_FAILED:
		return "FAILED"
	default:
		return "PENDING"
	}
}

// DestinationResult records the outcome of a single destination's upload
// attempt within a PipelineRun.
type DestinationResult struct {
	Destination   string                 `json:"destination"`
	Status        DestinationSubStatus   `json:"status"`
	ExternalId    string                 `json:"external_id,omitempty"`
	Error         string                 `json:"error,omitempty"`
	UpdatedAt     *timestamppb.Timestamp `json:"updated_at,omitempty"`
	UsedUpdate    bool                   `json:"used_update,omitempty"`
}

// PipelineRun is the per-activity execution record for one pipeline: it
// tracks overall status plus a per-destination sub-status map so a partial
// failure (e.g. Strava succeeds, Fitbit fails) is visible without losing the
// destinations that did succeed.
type PipelineRun struct {
	PipelineExecutionId string                        `json:"pipeline_execution_id"`
	PipelineId          string                        `json:"pipeline_id"`
	UserId              string                        `json:"user_id"`
	ActivityId          string                         `json:"activity_id"`
	Status              PipelineRunStatus              `json:"status"`
	Destinations        map[string]*DestinationResult  `json:"destinations,omitempty"`
	ResumePendingInputId string                        `json:"resume_pending_input_id,omitempty"`
	Reason              string                         `json:"reason,omitempty"`
	LagAttempts         int32                          `json:"lag_attempts,omitempty"`
	CreatedAt           *timestamppb.Timestamp          `json:"created_at,omitempty"`
	UpdatedAt           *timestamppb.Timestamp          `json:"updated_at,omitempty"`
}

// --- UploadedActivityRecord (loop-prevention ledger row) ---

// UploadedActivityRecord is keyed "<destination>:<destination_id>" and
// exists solely so an inbound webhook for a destination's own write-back can
// be recognized and dropped before it re-enters the pipeline as a new
// source activity.
type UploadedActivityRecord struct {
	Id            string                 `json:"id"`
	Destination   string                 `json:"destination"`
	DestinationId string                 `json:"destination_id"`
	Source        ActivitySource         `json:"source"`
	ExternalId    string                 `json:"external_id"`
	StartTime     *timestamppb.Timestamp `json:"start_time,omitempty"`
	UploadedAt    *timestamppb.Timestamp `json:"uploaded_at,omitempty"`
}

type Counter struct {
	Id          string                 `json:"id"`
	Count       int64                  `json:"count"`
	LastUpdated *timestamppb.Timestamp `json:"last_updated,omitempty"`
}

type SynchronizedActivity struct {
	ActivityId          string                 `json:"activity_id"`
	Title               string                 `json:"title"`
	Description         string                 `json:"description"`
	Type                ActivityType           `json:"type"`
	Source              string                 `json:"source"`
	StartTime           *timestamppb.Timestamp `json:"start_time,omitempty"`
	SyncedAt            *timestamppb.Timestamp `json:"synced_at,omitempty"`
	PipelineId          string                 `json:"pipeline_id"`
	PipelineExecutionId string                 `json:"pipeline_execution_id,omitempty"`
	Destinations        map[string]string      `json:"destinations,omitempty"`
}

// --- Plugin manifests ---

type ConfigFieldOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type ConfigFieldValidation struct {
	MinValue  *float64 `json:"min_value,omitempty"`
	MaxValue  *float64 `json:"max_value,omitempty"`
	MinLength *int32   `json:"min_length,omitempty"`
	MaxLength *int32   `json:"max_length,omitempty"`
	Pattern   *string  `json:"pattern,omitempty"`
}

type ConfigFieldSchema struct {
	Key          string                 `json:"key"`
	Label        string                 `json:"label"`
	Description  string                 `json:"description"`
	FieldType    ConfigFieldType        `json:"field_type"`
	Required     bool                   `json:"required"`
	DefaultValue string                 `json:"default_value,omitempty"`
	Options      []*ConfigFieldOption   `json:"options,omitempty"`
	Validation   *ConfigFieldValidation `json:"validation,omitempty"`
}

type PluginManifest struct {
	Id                   string               `json:"id"`
	Type                 PluginType           `json:"type"`
	Name                 string               `json:"name"`
	Description          string               `json:"description"`
	Icon                 string               `json:"icon,omitempty"`
	Enabled              bool                 `json:"enabled"`
	ConfigSchema         []*ConfigFieldSchema `json:"config_schema,omitempty"`
	EnricherProviderType *int32               `json:"enricher_provider_type,omitempty"`
	DestinationType      *int32               `json:"destination_type,omitempty"`
}

type PluginRegistryResponse struct {
	Sources      []*PluginManifest `json:"sources,omitempty"`
	Enrichers    []*PluginManifest `json:"enrichers,omitempty"`
	Destinations []*PluginManifest `json:"destinations,omitempty"`
}
