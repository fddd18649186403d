package enricher_providers

import (
	"context"

	pb "github.com/syncforge/core/pkg/types/pb"
)

// BrandingProvider adds a footer to the activity description
type BrandingProvider struct{}

func NewBrandingProvider() *BrandingProvider {
	return &BrandingProvider{}
}

func (p *BrandingProvider) Name() string {
	return "branding"
}

func (p *BrandingProvider) ProviderType() pb.EnricherProviderType {
	return pb.EnricherProviderType_ENRICHER_PROVIDER_BRANDING
}

func (p *BrandingProvider) Enrich(ctx context.Context, activity *pb.StandardizedActivity, user *pb.UserRecord, inputConfig map[string]string, doNotRetry bool) (*EnrichmentResult, error) {
	message := inputConfig["message"]
	if message == "" {
		message = "Posted via fitglue.tech 💪"
	}

	return &EnrichmentResult{
		Description:   message,
		SectionHeader: "branding",
		Metadata: map[string]string{
			"message": message,
		},
	}, nil
}
