package tui

import "errors"

// ErrMissingSettingsService is returned when the settings service is not provided.
var ErrMissingSettingsService = errors.New("tui: settings service is required")

// ErrMissingAWSService is returned when the AWS service is not provided.
var ErrMissingAWSService = errors.New("tui: aws service is required")
