package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/redjoy12/Work-Logger/internal/interactive"
	"github.com/redjoy12/Work-Logger/internal/output"
	"github.com/redjoy12/Work-Logger/internal/update"
)

var assumeYes bool

func newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Download and install the latest release",
		Long: `Check for a newer release and install it.

Running as a packaged binary, the new artifact is downloaded and a detached
helper swaps the executable and restarts the application; this process exits
as soon as the helper is launched. Running from a source checkout, the
working copy is synced with the release branch instead and no restart
happens.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate()
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Install without asking for confirmation")

	return cmd
}

func runUpdate() error {
	ctrl, settings, err := newController()
	if err != nil {
		return err
	}

	fmt.Println("Checking for updates...")
	decision, err := ctrl.CheckForUpdate()
	if err != nil {
		return fmt.Errorf("update check failed: %w", err)
	}

	if !decision.Available {
		fmt.Printf("Already up to date (latest release: %s)\n", decision.LatestVersion)
		return nil
	}

	fmt.Printf("Update available: %s -> %s\n", appVersion, decision.LatestVersion)
	if verbose && decision.Notes != "" {
		fmt.Printf("\nRelease notes:\n%s\n\n", decision.Notes)
	}

	if decision.ChosenAsset == nil {
		fmt.Printf("No automatic artifact for this platform; download manually: %s\n", settings.ManualURL)
		return nil
	}

	if !assumeYes {
		prompter := interactive.NewPrompter(os.Stdin, os.Stdout)
		if !prompter.Confirm(fmt.Sprintf("Install version %s now?", decision.LatestVersion)) {
			fmt.Println("Update skipped.")
			return nil
		}
	}

	events := make(chan update.Event)
	if err := ctrl.ConfirmInstall(decision, events); err != nil {
		return err
	}

	var flowErr error
	for ev := range events {
		switch ev.State {
		case update.StateDownloading:
			output.Progress(os.Stdout, ev.Percent)
		case update.StateDownloaded:
			output.ProgressDone(os.Stdout)
			fmt.Println("Download complete.")
		case update.StateInstalling:
			if ev.Message != "" {
				fmt.Println(ev.Message)
			} else {
				fmt.Println("Installing...")
			}
		case update.StateRestarting:
			fmt.Println(ev.Message)
			// The helper is waiting for this process to release the
			// executable. Exit now; the helper relaunches us.
			os.Exit(0)
		case update.StateSynced:
			fmt.Println(ev.Message)
		case update.StateDownloadFailed, update.StateInstallFailed:
			output.ProgressDone(os.Stdout)
			flowErr = ev.Err
		}
	}

	if flowErr != nil {
		return fmt.Errorf("update failed: %w", flowErr)
	}
	return nil
}
