package update

import (
	"fmt"
	"os"
	"sync"
)

// State names a point in the controller's flow.
type State string

const (
	StateIdle            State = "idle"
	StateChecking        State = "checking"
	StateUpToDate        State = "up-to-date"
	StateCheckFailed     State = "check-failed"
	StateUpdateAvailable State = "update-available"
	StateDownloading     State = "downloading"
	StateDownloaded      State = "downloaded"
	StateDownloadFailed  State = "download-failed"
	StateInstalling      State = "installing"
	StateRestarting      State = "restarting"
	StateInstallFailed   State = "install-failed"

	// StateSynced is the terminal success of the non-packaged path: the
	// source checkout was updated in place, no restart happens.
	StateSynced State = "synced"
)

// Event is one progress or completion notification from a running install
// flow. Events are delivered over the channel the caller supplied, so they
// can be consumed on whatever goroutine owns the user interface.
type Event struct {
	State   State
	Percent int // meaningful while State is StateDownloading
	Message string
	Err     error
}

// Controller drives the check -> download -> install flow. It is the only
// type the caller-facing surface talks to.
//
// At most one flow runs at a time; a check or install requested while one
// is active is rejected with ErrUpdateInFlight, never queued.
type Controller struct {
	currentVersion string
	ctx            ExecutionContext
	feed           Feed
	fetcher        Fetcher
	installer      Installer
	syncer         Syncer

	mu   sync.Mutex
	busy bool
}

// NewController wires a controller from its collaborators.
func NewController(currentVersion string, ctx ExecutionContext, feed Feed, fetcher Fetcher, installer Installer, syncer Syncer) *Controller {
	return &Controller{
		currentVersion: currentVersion,
		ctx:            ctx,
		feed:           feed,
		fetcher:        fetcher,
		installer:      installer,
		syncer:         syncer,
	}
}

func (c *Controller) acquire() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return ErrUpdateInFlight
	}
	c.busy = true
	return nil
}

func (c *Controller) release() {
	c.mu.Lock()
	c.busy = false
	c.mu.Unlock()
}

// CheckForUpdate queries the feed and decides whether a newer version is
// published. A malformed remote tag is absorbed by the comparator's
// conservative default and reports as "up to date". The returned Decision
// carries a nil ChosenAsset when no artifact matches the platform; that is
// the manual-download case, not an error.
func (c *Controller) CheckForUpdate() (*Decision, error) {
	if err := c.acquire(); err != nil {
		return nil, err
	}
	defer c.release()

	release, err := c.feed.FetchLatest()
	if err != nil {
		return nil, err
	}

	decision := &Decision{
		LatestVersion: release.TagName,
		Notes:         release.Notes,
	}

	if !IsNewer(release.TagName, c.currentVersion) {
		return decision, nil
	}

	decision.Available = true
	decision.ChosenAsset = SelectAsset(release.Assets, c.ctx)
	return decision, nil
}

// ConfirmInstall starts the download-then-install flow for a decision
// produced by CheckForUpdate. The flow runs on its own goroutine; progress
// and the terminal outcome arrive as Events on the supplied channel, which
// is closed when the flow ends.
//
// On the packaged path the terminal StateRestarting event means the
// detached helper has been launched and the caller must exit promptly to
// release the executable. On the non-packaged path the flow ends with
// StateSynced and the process keeps running.
func (c *Controller) ConfirmInstall(decision *Decision, events chan<- Event) error {
	if decision == nil || !decision.Available {
		return fmt.Errorf("no update to install")
	}
	if decision.ChosenAsset == nil {
		return ErrManualUpdateRequired
	}
	if err := c.acquire(); err != nil {
		return err
	}

	go c.run(decision, events)
	return nil
}

func (c *Controller) run(decision *Decision, events chan<- Event) {
	defer c.release()
	defer close(events)

	events <- Event{State: StateDownloading}
	artifact, err := c.fetcher.Download(decision.ChosenAsset.URL(), func(percent int) {
		events <- Event{State: StateDownloading, Percent: percent}
	})
	if err != nil {
		events <- Event{State: StateDownloadFailed, Err: err, Message: err.Error()}
		return
	}
	events <- Event{State: StateDownloaded, Percent: 100}

	events <- Event{State: StateInstalling}

	if c.ctx.Packaged {
		if err := c.installer.InstallAndRestart(artifact, c.ctx); err != nil {
			os.Remove(artifact)
			events <- Event{State: StateInstallFailed, Err: err, Message: err.Error()}
			return
		}
		// The helper deletes the artifact after copying it into place.
		events <- Event{
			State:   StateRestarting,
			Message: "restarting into version " + decision.LatestVersion,
		}
		return
	}

	// Source checkout: the downloaded archive is not applied, the working
	// copy is synced against the release branch instead.
	os.Remove(artifact)
	if dirty, err := c.syncer.HasUncommittedChanges(); err == nil && dirty {
		// Best effort warning; local edits don't block the sync.
		events <- Event{
			State:   StateInstalling,
			Message: "warning: working copy has uncommitted changes, the merge may fail",
		}
	}
	if err := c.syncer.Sync(); err != nil {
		events <- Event{State: StateInstallFailed, Err: err, Message: err.Error()}
		return
	}
	events <- Event{
		State:   StateSynced,
		Message: "source checkout updated to version " + decision.LatestVersion,
	}
}
