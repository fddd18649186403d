package enricher_providers

import (
	"context"
	"errors"
	"fmt"
	"time"

	pb "github.com/syncforge/core/pkg/types/pb"
)

// EnrichmentResult represents the outcome of an enrichment provider. A
// provider returns a partial result: only the fields it means to set should
// be non-zero. The engine merges successive results in declared order.
type EnrichmentResult struct {
	// Overrides (empty/zero means "leave as-is").
	Name          string
	Description   string
	NameSuffix    string
	SectionHeader string
	ActivityType  pb.ActivityType

	Tags []string

	// Raw data stream overlays, merged into the activity's first lap by index.
	HeartRateStream    []int
	PowerStream        []int
	PositionLatStream  []float64
	PositionLongStream []float64

	// HaltPipeline stops further enrichment and destination fan-out for this
	// activity. HaltReason is recorded on the execution record. AwaitingInput
	// distinguishes a halt caused by a freshly created PendingInput (the run
	// should land in AWAITING_INPUT) from every other halt reason (logic
	// gates, filters: the run lands in SKIPPED).
	HaltPipeline  bool
	HaltReason    string
	AwaitingInput bool

	// Metadata is appended into the event's enrichment_metadata map.
	Metadata map[string]string
}

// Provider defines the contract every enrichment plugin implements.
type Provider interface {
	// Name returns the provider's unique identifier (e.g. "activity_filter").
	Name() string

	// ProviderType returns the enum value this provider is registered under.
	ProviderType() pb.EnricherProviderType

	// Enrich applies the provider's logic to the activity. inputs carries the
	// user's per-pipeline configuration for this provider. doNotRetry is set
	// by the engine once a lag-retry budget is exhausted; a provider that
	// would otherwise return a RetryableError must instead produce its best
	// available result.
	Enrich(ctx context.Context, activity *pb.StandardizedActivity, user *pb.UserRecord, inputs map[string]string, doNotRetry bool) (*EnrichmentResult, error)
}

// RetryableError signals that a provider's data is not yet available and the
// activity should be redelivered after RetryAfter via the lag topic.
type RetryableError struct {
	cause      error
	RetryAfter time.Duration
	Reason     string
}

func NewRetryableError(cause error, retryAfter time.Duration, reason string) error {
	return &RetryableError{cause: cause, RetryAfter: retryAfter, Reason: reason}
}

func (e *RetryableError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("retryable: %s: %v", e.Reason, e.cause)
	}
	return fmt.Sprintf("retryable: %s", e.Reason)
}

func (e *RetryableError) Unwrap() error {
	return e.cause
}

// AsRetryable reports whether err (or something it wraps) is a RetryableError.
func AsRetryable(err error) (*RetryableError, bool) {
	var re *RetryableError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
