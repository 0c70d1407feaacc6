package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bucketeer/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage stored settings",
	Long: `View and change the settings bucketeer remembers between runs.

Known keys:
  isEditMode          - bool, whether edit mode is enabled
  selectedAwsProfile  - string, the AWS profile used for bucket listings`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a single setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a single setting and save it",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

var settingsEditModeCmd = &cobra.Command{
	Use:       "edit-mode [on|off|toggle]",
	Short:     "Show or change edit mode",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"on", "off", "toggle"},
	RunE:      runSettingsEditMode,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsEditModeCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Printf("  Edit mode:        %s\n", onOff(settings.EditMode))
	cmd.Printf("  Selected profile: %s\n", settings.SelectedProfile)
	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	info, ok := domain.LookupKey(args[0])
	if !ok {
		return unknownKeyError(args[0])
	}

	settings, err := settingsService.Get(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	switch info.Name {
	case domain.IsEditMode.Name():
		cmd.Println(strconv.FormatBool(settings.EditMode))
	case domain.SelectedAwsProfile.Name():
		cmd.Println(settings.SelectedProfile)
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	info, ok := domain.LookupKey(args[0])
	if !ok {
		return unknownKeyError(args[0])
	}

	switch info.Name {
	case domain.IsEditMode.Name():
		enabled, err := parseBool(args[1])
		if err != nil {
			return err
		}
		if err := settingsService.SetEditMode(cmd.Context(), enabled); err != nil {
			return fmt.Errorf("failed to set %s: %w", info.Name, err)
		}
	case domain.SelectedAwsProfile.Name():
		if err := settingsService.SetSelectedProfile(cmd.Context(), args[1]); err != nil {
			return fmt.Errorf("failed to set %s: %w", info.Name, err)
		}
	}

	cmd.Printf("Set %s to %s\n", info.Name, strings.TrimSpace(args[1]))
	return nil
}

func runSettingsEditMode(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	if len(args) == 0 {
		settings, err := settingsService.Get(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		cmd.Printf("Edit mode is %s\n", onOff(settings.EditMode))
		return nil
	}

	var enabled bool
	if args[0] == "toggle" {
		var err error
		enabled, err = settingsService.ToggleEditMode(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to toggle edit mode: %w", err)
		}
	} else {
		var err error
		enabled, err = parseBool(args[0])
		if err != nil {
			return err
		}
		if err := settingsService.SetEditMode(cmd.Context(), enabled); err != nil {
			return fmt.Errorf("failed to set edit mode: %w", err)
		}
	}

	cmd.Printf("Edit mode is %s\n", onOff(enabled))
	return nil
}

// parseBool accepts on/off and yes/no in addition to strconv forms.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "yes", "y":
		return true, nil
	case "off", "no", "n":
		return false, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, fmt.Errorf("%w: %q is not a boolean", domain.ErrInvalidInput, s)
	}
	return b, nil
}

func unknownKeyError(key string) error {
	names := make([]string, 0, len(domain.AllKeys()))
	for _, k := range domain.AllKeys() {
		names = append(names, k.Name)
	}
	return fmt.Errorf("%w: %q (known keys: %s)", domain.ErrUnknownKey, key, strings.Join(names, ", "))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
