package cmd

import (
	"os"
	"time"

	"github.com/redjoy12/Work-Logger/internal/config"
	"github.com/redjoy12/Work-Logger/internal/gitsync"
	"github.com/redjoy12/Work-Logger/internal/update"
)

// newController builds the update controller from the settings file and the
// process execution context. The context is detected once here and passed
// through read-only.
func newController() (*update.Controller, config.Settings, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return nil, settings, err
	}

	ctx := update.DetectContext()

	feed := update.NewFeedClient(settings.Owner, settings.Repo).
		WithTimeout(time.Duration(settings.TimeoutSeconds) * time.Second)
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		feed = feed.WithToken(token)
	}

	// The source-checkout fallback syncs the working directory the
	// application was started from.
	syncer := gitsync.NewSyncer("", settings.Branch)

	ctrl := update.NewController(
		appVersion,
		ctx,
		feed,
		update.NewDownloader(),
		update.NewReplacer(),
		syncer,
	)

	return ctrl, settings, nil
}
