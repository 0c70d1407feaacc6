package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/bucketeer/internal/adapters/driving/tui"
)

var errNotTerminal = errors.New("the TUI needs an interactive terminal")

// isTerminal reports whether stdin is attached to a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for bucketeer.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Select profile
  b        - Buckets for the selected profile
  e        - Toggle edit mode
  r        - Refresh buckets
  Esc      - Back
  ?        - Toggle help
  q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	app, err := tui.NewApp(&tui.Ports{
		Settings: settingsService,
		AWS:      awsService,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if !isTerminal() {
		return errNotTerminal
	}

	app.WithContext(cmd.Context())
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
