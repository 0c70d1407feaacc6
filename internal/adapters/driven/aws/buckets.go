package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/custodia-labs/bucketeer/internal/core/domain"
	"github.com/custodia-labs/bucketeer/internal/core/ports/driven"
)

// Ensure BucketLister implements the interface.
var _ driven.BucketLister = (*BucketLister)(nil)

// S3API is the subset of the S3 client used for bucket listing.
type S3API interface {
	ListBuckets(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error)
}

// ClientFactory builds an S3 client for a profile.
type ClientFactory func(ctx context.Context, profile string) (S3API, error)

// BucketLister lists S3 buckets using the credentials of a named profile.
type BucketLister struct {
	newClient ClientFactory
}

// NewBucketLister creates a bucket lister. If factory is nil, clients are
// built from the shared AWS config.
func NewBucketLister(factory ClientFactory) *BucketLister {
	if factory == nil {
		factory = NewS3Client
	}
	return &BucketLister{newClient: factory}
}

// NewS3Client loads the AWS config for profile and returns an S3 client.
// The "default" profile uses the SDK's default credential chain.
func NewS3Client(ctx context.Context, profile string) (S3API, error) {
	var opts []func(*config.LoadOptions) error
	if profile != "" && profile != domain.DefaultProfile {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}
	return s3.NewFromConfig(cfg), nil
}

// ListBuckets returns every bucket the profile can see.
func (b *BucketLister) ListBuckets(ctx context.Context, profile string) ([]domain.Bucket, error) {
	client, err := b.newClient(ctx, profile)
	if err != nil {
		return nil, err
	}

	var buckets []domain.Bucket
	input := &s3.ListBucketsInput{}
	for {
		out, err := client.ListBuckets(ctx, input)
		if err != nil {
			return nil, err
		}

		for _, bucket := range out.Buckets {
			buckets = append(buckets, domain.Bucket{
				Name:      aws.ToString(bucket.Name),
				CreatedAt: aws.ToTime(bucket.CreationDate),
			})
		}

		if aws.ToString(out.ContinuationToken) == "" {
			break
		}
		input = &s3.ListBucketsInput{ContinuationToken: out.ContinuationToken}
	}
	return buckets, nil
}
