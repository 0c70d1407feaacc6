// Package cli provides the cobra command tree for bucketeer.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bucketeer/internal/config"
	"github.com/custodia-labs/bucketeer/internal/core/ports/driving"
	"github.com/custodia-labs/bucketeer/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services bundles the ports the commands call into.
type Services struct {
	Settings driving.SettingsService
	AWS      driving.AWSService

	// Close releases backend resources. May be nil.
	Close func() error
}

// Factory builds services from the loaded configuration.
type Factory func(cfg *config.Config) (*Services, error)

var (
	cfgFile string
	v       = config.New()
	factory Factory

	settingsService driving.SettingsService
	awsService      driving.AWSService
	closeServices   func() error
)

var errSettingsNotConfigured = errors.New("settings service not configured")

var rootCmd = &cobra.Command{
	Use:   "bucketeer",
	Short: "Browse S3 buckets across your AWS profiles",
	Long: `bucketeer lists the AWS profiles configured on this machine and the
S3 buckets each one can see. The selected profile and edit mode are
remembered between runs in a local settings file.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./config.toml or ~/.bucketeer/config.toml)")
	flags.String("settings-file", "", "settings file name (default .settings.dat)")
	flags.String("backend", "", "settings backend: file, sqlite or memory")
	flags.BoolP("verbose", "v", false, "enable debug output")

	_ = v.BindPFlag(config.KeySettingsFile, flags.Lookup("settings-file"))
	_ = v.BindPFlag(config.KeySettingsBackend, flags.Lookup("backend"))
	_ = v.BindPFlag(config.KeyVerbose, flags.Lookup("verbose"))
}

// SetFactory sets the function used to build services before each command.
func SetFactory(f Factory) {
	factory = f
}

// SetServices injects services directly, bypassing the factory.
func SetServices(s *Services) {
	if s == nil {
		settingsService, awsService, closeServices = nil, nil, nil
		return
	}
	settingsService = s.Settings
	awsService = s.AWS
	closeServices = s.Close
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command and releases the services afterwards,
// whether or not the command failed.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if closeErr := teardown(); closeErr != nil {
		return errors.Join(err, closeErr)
	}
	return err
}

func setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	logger.SetVerbose(cfg.Verbose)

	if factory == nil || settingsService != nil {
		return nil
	}

	logger.Section("Setup")
	logger.Debug("settings backend %s, file %s", cfg.Settings.Backend, cfg.Settings.File)

	services, err := factory(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}
	SetServices(services)
	return nil
}

func teardown() error {
	if closeServices == nil {
		return nil
	}
	closeFn := closeServices
	closeServices = nil
	if err := closeFn(); err != nil {
		return fmt.Errorf("failed to close services: %w", err)
	}
	return nil
}
