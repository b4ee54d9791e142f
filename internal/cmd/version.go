package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var checkOnly bool

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information and check for updates",
		Long: `Display the current worklogger version and optionally check for updates.

Examples:
  worklogger version           # Show current version
  worklogger version --check   # Check if update is available`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion()
		},
	}

	cmd.Flags().BoolVar(&checkOnly, "check", false, "Check for updates without installing")

	return cmd
}

func runVersion() error {
	fmt.Printf("worklogger version %s\n", appVersion)

	if !checkOnly {
		return nil
	}

	ctrl, settings, err := newController()
	if err != nil {
		return err
	}

	decision, err := ctrl.CheckForUpdate()
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}

	if !decision.Available {
		fmt.Printf("You are running the latest version (latest release: %s)\n", decision.LatestVersion)
		return nil
	}

	fmt.Printf("Update available: %s -> %s\n", appVersion, decision.LatestVersion)
	if decision.ChosenAsset == nil {
		fmt.Fprintf(os.Stderr, "No automatic artifact for this platform; download manually: %s\n", settings.ManualURL)
		return nil
	}
	fmt.Println("Run 'worklogger update' to install.")
	return nil
}
