package driven

import (
	"context"

	"github.com/custodia-labs/bucketeer/internal/core/domain"
)

// ProfileSource lists the AWS profiles configured on this machine.
type ProfileSource interface {
	// Profiles returns profile names, "default" first.
	Profiles(ctx context.Context) ([]string, error)
}

// BucketLister lists the S3 buckets visible to a profile.
type BucketLister interface {
	ListBuckets(ctx context.Context, profile string) ([]domain.Bucket, error)
}
