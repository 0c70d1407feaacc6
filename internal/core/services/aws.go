package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/custodia-labs/bucketeer/internal/core/domain"
	"github.com/custodia-labs/bucketeer/internal/core/ports/driven"
	"github.com/custodia-labs/bucketeer/internal/core/ports/driving"
	"github.com/custodia-labs/bucketeer/internal/logger"
)

// Ensure AWSService implements the interface.
var _ driving.AWSService = (*AWSService)(nil)

// AWSService exposes AWS profile discovery and bucket listing.
type AWSService struct {
	profiles driven.ProfileSource
	buckets  driven.BucketLister
	settings driving.SettingsService
}

// NewAWSService creates a new AWS service.
func NewAWSService(
	profiles driven.ProfileSource,
	buckets driven.BucketLister,
	settings driving.SettingsService,
) *AWSService {
	return &AWSService{
		profiles: profiles,
		buckets:  buckets,
		settings: settings,
	}
}

// Profiles returns the configured AWS profiles, "default" first.
func (s *AWSService) Profiles(ctx context.Context) ([]string, error) {
	if s.profiles == nil {
		return nil, fmt.Errorf("%w: no profile source configured", domain.ErrNotFound)
	}
	profiles, err := s.profiles.Profiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("read aws profiles: %w", err)
	}
	return profiles, nil
}

// ListBuckets lists buckets for profile, falling back to the selected profile.
func (s *AWSService) ListBuckets(ctx context.Context, profile string) ([]domain.Bucket, error) {
	if s.buckets == nil {
		return nil, fmt.Errorf("%w: no bucket lister configured", domain.ErrNotFound)
	}

	if profile == "" {
		profile = domain.DefaultProfile
		if s.settings != nil {
			settings, err := s.settings.Get(ctx)
			if err != nil {
				return nil, err
			}
			profile = settings.SelectedProfile
		}
	}

	logger.Debug("listing buckets for profile %q", profile)
	buckets, err := s.buckets.ListBuckets(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("list buckets for %s: %w", profile, err)
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Name < buckets[j].Name
	})
	return buckets, nil
}
