package aws

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"github.com/aws/aws-sdk-go-v2/config"

	"github.com/custodia-labs/bucketeer/internal/core/domain"
	"github.com/custodia-labs/bucketeer/internal/core/ports/driven"
)

// Ensure ProfileSource implements the interface.
var _ driven.ProfileSource = (*ProfileSource)(nil)

var profileHeader = regexp.MustCompile(`\[profile\s+([^\]]+)\]|\[default\]`)

// ProfileSource reads profile names from the AWS shared config file.
type ProfileSource struct {
	path string
}

// NewProfileSource creates a profile source for path. If path is empty,
// AWS_CONFIG_FILE is used, then the SDK's default location.
func NewProfileSource(path string) *ProfileSource {
	if path == "" {
		path = os.Getenv("AWS_CONFIG_FILE")
	}
	if path == "" {
		path = config.DefaultSharedConfigFilename()
	}
	return &ProfileSource{path: path}
}

// Path returns the config file path.
func (p *ProfileSource) Path() string {
	return p.path
}

// Profiles returns "default" followed by every named profile in file order.
func (p *ProfileSource) Profiles(_ context.Context) ([]string, error) {
	content, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read AWS config: %w", err)
	}
	return ParseProfiles(string(content)), nil
}

// ParseProfiles extracts profile names from shared config content.
func ParseProfiles(content string) []string {
	profiles := []string{domain.DefaultProfile}
	seen := map[string]bool{domain.DefaultProfile: true}

	for _, m := range profileHeader.FindAllStringSubmatch(content, -1) {
		name := m[1]
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		profiles = append(profiles, name)
	}
	return profiles
}
