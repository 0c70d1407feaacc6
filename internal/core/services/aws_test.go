package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bucketeer/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/bucketeer/internal/core/domain"
)

type stubProfiles struct {
	profiles []string
	err      error
}

func (s *stubProfiles) Profiles(context.Context) ([]string, error) {
	return s.profiles, s.err
}

type stubBuckets struct {
	buckets []domain.Bucket
	err     error
	profile string
}

func (s *stubBuckets) ListBuckets(_ context.Context, profile string) ([]domain.Bucket, error) {
	s.profile = profile
	return s.buckets, s.err
}

func TestAWSService_Profiles(t *testing.T) {
	service := NewAWSService(&stubProfiles{profiles: []string{"default", "dev"}}, nil, nil)

	profiles, err := service.Profiles(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"default", "dev"}, profiles)
}

func TestAWSService_Profiles_Error(t *testing.T) {
	service := NewAWSService(&stubProfiles{err: errors.New("no such file")}, nil, nil)

	_, err := service.Profiles(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read aws profiles")
}

func TestAWSService_Profiles_NotConfigured(t *testing.T) {
	service := NewAWSService(nil, nil, nil)

	_, err := service.Profiles(context.Background())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAWSService_ListBuckets_SortsByName(t *testing.T) {
	lister := &stubBuckets{buckets: []domain.Bucket{{Name: "zeta"}, {Name: "alpha"}, {Name: "mid"}}}
	service := NewAWSService(nil, lister, nil)

	buckets, err := service.ListBuckets(context.Background(), "dev")

	require.NoError(t, err)
	assert.Equal(t, "dev", lister.profile)
	require.Len(t, buckets, 3)
	assert.Equal(t, "alpha", buckets[0].Name)
	assert.Equal(t, "zeta", buckets[2].Name)
}

func TestAWSService_ListBuckets_UsesSelectedProfile(t *testing.T) {
	ctx := context.Background()
	settings := newSettingsService(memory.NewDisk())
	require.NoError(t, settings.SetSelectedProfile(ctx, "prod"))

	lister := &stubBuckets{}
	service := NewAWSService(nil, lister, settings)

	_, err := service.ListBuckets(ctx, "")

	require.NoError(t, err)
	assert.Equal(t, "prod", lister.profile)
}

func TestAWSService_ListBuckets_DefaultWithoutSettings(t *testing.T) {
	lister := &stubBuckets{}
	service := NewAWSService(nil, lister, nil)

	_, err := service.ListBuckets(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "default", lister.profile)
}

func TestAWSService_ListBuckets_Error(t *testing.T) {
	service := NewAWSService(nil, &stubBuckets{err: errors.New("access denied")}, nil)

	_, err := service.ListBuckets(context.Background(), "dev")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "list buckets for dev")
	assert.Contains(t, err.Error(), "access denied")
}

func TestAWSService_ListBuckets_StoreUnavailable(t *testing.T) {
	settings := NewSettingsService(NewStore(nilLoader(), ""))
	service := NewAWSService(nil, &stubBuckets{}, settings)

	_, err := service.ListBuckets(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
