package main

import (
	"fmt"

	"github.com/custodia-labs/bucketeer/internal/adapters/driven/aws"
	"github.com/custodia-labs/bucketeer/internal/adapters/driven/config/file"
	"github.com/custodia-labs/bucketeer/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/bucketeer/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/bucketeer/internal/adapters/driving/cli"
	"github.com/custodia-labs/bucketeer/internal/config"
	"github.com/custodia-labs/bucketeer/internal/core/ports/driven"
	"github.com/custodia-labs/bucketeer/internal/core/services"
	"github.com/custodia-labs/bucketeer/internal/logger"
)

// newServices builds the settings store and services for cfg.
// The store is created once here and shared by every service.
func newServices(cfg *config.Config) (*cli.Services, error) {
	loader, closer, err := newLoader(cfg.Settings)
	if err != nil {
		return nil, err
	}

	store := services.NewStore(loader, cfg.Settings.File)
	settings := services.NewSettingsService(store)

	profiles := aws.NewProfileSource(cfg.AWS.ConfigFile)
	logger.Debug("aws config file %s", profiles.Path())

	return &cli.Services{
		Settings: settings,
		AWS:      services.NewAWSService(profiles, aws.NewBucketLister(nil), settings),
		Close:    closer,
	}, nil
}

func newLoader(cfg config.SettingsConfig) (driven.StoreLoader, func() error, error) {
	switch cfg.Backend {
	case config.BackendFile, "":
		l, err := file.NewLoader(cfg.Dir)
		if err != nil {
			return nil, nil, err
		}
		return l, nil, nil
	case config.BackendSQLite:
		l, err := sqlite.NewLoader(cfg.Dir)
		if err != nil {
			return nil, nil, err
		}
		return l, l.Close, nil
	case config.BackendMemory:
		return memory.NewDisk().Loader(), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown settings backend %q", cfg.Backend)
	}
}
