// Package registry builds the enricher provider dispatch table explicitly
// at startup, indexed by provider_type. This replaces the init()-time
// side-effect registration the provider packages used to rely on: dispatch
// is now a plain map lookup built once and handed to every orchestrator
// instance, with no package-level mutable state.
package registry

import (
	"github.com/syncforge/core/pkg/bootstrap"
	providers "github.com/syncforge/core/pkg/enricher_providers"
	"github.com/syncforge/core/pkg/enricher_providers/activity_filter"
	"github.com/syncforge/core/pkg/enricher_providers/auto_increment"
	"github.com/syncforge/core/pkg/enricher_providers/condition_matcher"
	"github.com/syncforge/core/pkg/enricher_providers/mock"
	"github.com/syncforge/core/pkg/enricher_providers/parkrun"
	"github.com/syncforge/core/pkg/enricher_providers/user_input"
	pb "github.com/syncforge/core/pkg/types/pb"
)

// serviceAware is implemented by providers that need access to shared
// infrastructure (credential storage, HTTP clients) beyond the per-call
// activity/user/inputs arguments.
type serviceAware interface {
	SetService(*bootstrap.Service)
}

// Build constructs every known enricher provider and indexes it by
// ProviderType. Call once per process; the returned map is read-only at
// steady state and safe to share across concurrent workers.
func Build(svc *bootstrap.Service) map[pb.EnricherProviderType]providers.Provider {
	all := []providers.Provider{
		activity_filter.NewActivityFilterProvider(),
		condition_matcher.NewConditionMatcherProvider(),
		mock.NewMockProvider(),
		&user_input.UserInputProvider{},
		providers.NewMuscleHeatmapProvider(),
		providers.NewSourceLinkProvider(),
		providers.NewTypeMapperProvider(),
		&auto_increment.AutoIncrementProvider{},
		parkrun.NewParkrunProvider(),
		providers.NewWorkoutSummaryProvider(),
		providers.NewVirtualGPSProvider(),
		providers.NewBrandingProvider(),
		providers.NewFitBitHeartRate(),
		providers.NewCaloriesProvider(),
	}

	byType := make(map[pb.EnricherProviderType]providers.Provider, len(all))
	for _, p := range all {
		if sa, ok := p.(serviceAware); ok {
			sa.SetService(svc)
		}
		byType[p.ProviderType()] = p
	}
	return byType
}
