package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/redjoy12/Work-Logger/internal/output"
	"github.com/redjoy12/Work-Logger/internal/update"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check whether a newer release is published",
		Long: `Query the release feed and report whether an update is available.

The exit code is 0 whether or not an update exists; only a failed check
(network error, malformed feed) exits non-zero.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck()
		},
	}
}

// checkReport is the decision plus the manual-download address, so every
// output format renders from the same value.
type checkReport struct {
	update.Decision `yaml:",inline"`
	ManualURL       string `json:"manual_url,omitempty" yaml:"manual_url,omitempty"`
}

// String renders the decision and, when no artifact matched, where to get
// the release by hand.
func (r checkReport) String() string {
	s := r.Decision.String()
	if r.Available && r.ChosenAsset == nil && r.ManualURL != "" {
		s += "\nDownload manually: " + r.ManualURL
	}
	return s
}

func runCheck() error {
	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	ctrl, settings, err := newController()
	if err != nil {
		return err
	}

	decision, err := ctrl.CheckForUpdate()
	if err != nil {
		return fmt.Errorf("update check failed: %w", err)
	}

	report := checkReport{Decision: *decision}
	if decision.Available && decision.ChosenAsset == nil {
		report.ManualURL = settings.ManualURL
	}

	w := output.NewWriter(os.Stdout, format)
	return w.Write(report)
}
