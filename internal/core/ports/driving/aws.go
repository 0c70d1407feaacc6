package driving

import (
	"context"

	"github.com/custodia-labs/bucketeer/internal/core/domain"
)

// AWSService exposes AWS profile discovery and bucket listing.
type AWSService interface {
	// Profiles returns the configured AWS profiles, "default" first.
	Profiles(ctx context.Context) ([]string, error)

	// ListBuckets lists buckets for profile.
	// An empty profile means the currently selected profile.
	ListBuckets(ctx context.Context, profile string) ([]domain.Bucket, error)
}
