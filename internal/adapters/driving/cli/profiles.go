package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bucketeer/internal/core/domain"
)

var profilesCmd = &cobra.Command{
	Use:     "profiles",
	Aliases: []string{"profile"},
	Short:   "List and select AWS profiles",
	RunE:    runProfilesList,
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List AWS profiles from the shared config file",
	RunE:  runProfilesList,
}

var profilesUseCmd = &cobra.Command{
	Use:   "use [name]",
	Short: "Select the AWS profile used for bucket listings",
	Long: `Select the AWS profile used for bucket listings.

Without a name, the configured profiles are listed and one can be
picked by number.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProfilesUse,
}

func init() {
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesUseCmd)
	rootCmd.AddCommand(profilesCmd)
}

func runProfilesList(cmd *cobra.Command, _ []string) error {
	if awsService == nil {
		return errors.New("aws service not configured")
	}

	profiles, err := awsService.Profiles(cmd.Context())
	if err != nil {
		return err
	}

	selected := ""
	if settingsService != nil {
		if settings, err := settingsService.Get(cmd.Context()); err == nil {
			selected = settings.SelectedProfile
		}
	}

	for _, p := range profiles {
		marker := "  "
		if p == selected {
			marker = "* "
		}
		cmd.Println(marker + p)
	}
	return nil
}

func runProfilesUse(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	var profile string
	if len(args) == 1 {
		profile = args[0]
	} else {
		if awsService == nil {
			return errors.New("aws service not configured")
		}
		profiles, err := awsService.Profiles(cmd.Context())
		if err != nil {
			return err
		}
		if len(profiles) == 0 {
			return fmt.Errorf("%w: no AWS profiles configured", domain.ErrNotFound)
		}

		for i, p := range profiles {
			cmd.Printf("  %d. %s\n", i+1, p)
		}
		cmd.Print("\nEnter choice [1]: ")
		input := readLine(bufio.NewReader(cmd.InOrStdin()))
		profile = profiles[parseChoice(input, len(profiles), 1)-1]
	}

	if err := settingsService.SetSelectedProfile(cmd.Context(), profile); err != nil {
		return fmt.Errorf("failed to select profile: %w", err)
	}
	cmd.Printf("Selected profile: %s\n", strings.TrimSpace(profile))
	return nil
}

func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}
