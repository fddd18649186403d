package shared

const (
	ProjectID = "syncforge-project" // Can be overridden by env var in main if needed

	TopicRawActivity      = "topic-raw-activity"
	TopicPipelineActivity = "topic-pipeline-activity"
	TopicEnrichedActivity = "topic-enriched-activity"
	TopicEnrichmentLag    = "topic-enrichment-lag"

	TopicJobUploadStrava = "topic-job-upload-strava"
	TopicJobUploadMock   = "topic-job-upload-mock"

	CollectionUsers           = "users"
	CollectionExecutions      = "executions"
	CollectionPendingInputs   = "pending_inputs"
	CollectionPipelineRuns    = "pipeline_runs"
	CollectionUploadedActivities = "uploaded_activities"

	// DescriptionSizeCeiling bounds how large a composed description may get
	// before the enricher spills the full envelope to blob storage and
	// publishes a slimmed-down message carrying only activity_data_uri.
	DescriptionSizeCeiling = 8000

	// MaxLagAttempts bounds how many times a single pipeline run may be
	// redelivered via the lag topic before the enricher forces do_not_retry.
	MaxLagAttempts = 5
)

// destinationUploadTopics maps a destination to the topic its uploader
// function subscribes to. The router looks up each PipelineConfig
// destination here; an unknown destination is a configuration error, not a
// retryable one.
var destinationUploadTopics = map[string]string{
	"strava": TopicJobUploadStrava,
	"mock":   TopicJobUploadMock,
}

// TopicForDestination returns the upload topic for a destination name, and
// false if the destination has no registered uploader.
func TopicForDestination(destination string) (string, bool) {
	topic, ok := destinationUploadTopics[destination]
	return topic, ok
}
